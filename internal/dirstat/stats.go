package dirstat

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// CategoryHidden is the category of files whose name starts with a dot.
	CategoryHidden = "hidden"
	// CategoryNoExtension is the category of files without an extension.
	CategoryNoExtension = "no_extension"
)

// CategoryStat represents statistics for a file category.
type CategoryStat struct {
	// Count is the number of files in this category.
	Count int64
	// Size is the cumulative size in bytes.
	Size int64
}

// Breakdown maps file categories to their statistics.
// Categories are remembered in the order they were first added.
type Breakdown struct {
	order []string
	stats map[string]CategoryStat
}

// Add accumulates stat into the given category.
func (b *Breakdown) Add(category string, stat CategoryStat) {
	if b.stats == nil {
		b.stats = make(map[string]CategoryStat)
	}

	current, ok := b.stats[category]
	if !ok {
		b.order = append(b.order, category)
	}

	current.Count += stat.Count
	current.Size += stat.Size
	b.stats[category] = current
}

// Merge adds every category of other into b.
func (b *Breakdown) Merge(other Breakdown) {
	for _, category := range other.order {
		b.Add(category, other.stats[category])
	}
}

// Get returns the statistics of a category.
func (b Breakdown) Get(category string) (CategoryStat, bool) {
	stat, ok := b.stats[category]

	return stat, ok
}

// Len returns the number of distinct categories.
func (b Breakdown) Len() int {
	return len(b.order)
}

// Categories returns the categories in first-seen order.
func (b Breakdown) Categories() []string {
	return slices.Clone(b.order)
}

// ByCount returns the categories sorted by descending count.
// Categories with equal counts keep their first-seen order.
func (b Breakdown) ByCount() []string {
	sorted := b.Categories()

	slices.SortStableFunc(sorted, func(x, y string) int {
		return cmp.Compare(b.stats[y].Count, b.stats[x].Count)
	})

	return sorted
}

// Stats holds aggregate statistics for a directory subtree.
type Stats struct {
	// Size is the cumulative size of all regular files in bytes.
	Size int64
	// Files is the number of regular files.
	Files int64
	// Categories breaks Size and Files down by file category.
	Categories Breakdown
}

// addFile records a single regular file.
func (s *Stats) addFile(name string, size int64) {
	s.Size += size
	s.Files++
	s.Categories.Add(Category(name), CategoryStat{Count: 1, Size: size})
}

// merge adds the totals of a subtree.
func (s *Stats) merge(other Stats) {
	s.Size += other.Size
	s.Files += other.Files
	s.Categories.Merge(other.Categories)
}

// Category derives the category of a file from its name.
func Category(name string) string {
	if strings.HasPrefix(name, ".") {
		return CategoryHidden
	}

	ext := filepath.Ext(name)
	if ext == "" {
		return CategoryNoExtension
	}

	return lower(strings.TrimPrefix(ext, "."))
}

// lower applies full Unicode lower-casing.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Options configures the directory tree analysis.
type Options struct {
	// Path is the directory to analyze.
	Path string
	// Limited indicates whether MaxDepth applies. The zero value walks the whole tree.
	Limited bool
	// MaxDepth is the deepest level printed, the root being level 0.
	MaxDepth int
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Fs is the file system to walk. Nil means the operating system.
	Fs afero.Fs
	// Logger receives debug output. Nil disables it.
	Logger *zerolog.Logger
}

// fs returns the configured file system.
func (o Options) fs() afero.Fs {
	if o.Fs == nil {
		return afero.NewOsFs()
	}

	return o.Fs
}

// logger returns the configured logger.
func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}

	return *o.Logger
}
