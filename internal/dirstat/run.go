package dirstat

import (
	"cmp"
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tree drawing characters.
const (
	branchMiddle = "├── "
	branchLast   = "└── "
	indentMiddle = "│   "
	indentLast   = "    "
)

// printer walks a directory tree and writes one line per directory.
type printer struct {
	fs        afero.Fs
	out       io.Writer
	log       zerolog.Logger
	collector *Collector
	limited   bool
	maxDepth  int
	hook      func(dirs int64, path string)
	visited   int64
}

// Run prints the directory tree rooted at opt.Path to out, depth-first and
// pre-order, with the size, file count and category breakdown of every
// directory. Children are ordered by name, ignoring case.
//
// If opt.Limited is set, directories deeper than opt.MaxDepth are
// not printed. The root is at depth 0.
//
// Subtrees that cannot be read are left out silently. An error is returned
// only when the root itself cannot be analyzed or writing to out fails.
// progressHook, if not nil, is called after every printed directory.
func Run(opt Options, out io.Writer, progressHook func(int64, string)) error {
	if opt.Path == "" {
		opt.Path = "."
	}

	root, err := filepath.Abs(opt.Path)
	if err != nil {
		return fmt.Errorf("resolving absolute path: %w", err)
	}

	log := opt.logger()
	fsys := opt.fs()

	p := &printer{
		fs:        fsys,
		out:       out,
		log:       log,
		collector: NewCollector(fsys, log),
		limited:   opt.Limited,
		maxDepth:  opt.MaxDepth,
		hook:      progressHook,
	}

	return p.visit(root, "", true, 0)
}

// visit prints dir and recurses into its subdirectories.
// Depth 0 is the root, which is printed without a branch.
func (p *printer) visit(dir, prefix string, isLast bool, depth int) error {
	if p.limited && depth > p.maxDepth {
		p.log.Debug().Str("path", dir).Int("depth", depth).Msg("beyond maximum depth")

		return nil
	}

	stats, err := p.collector.Collect(dir)
	if err != nil {
		return err
	}

	if err := p.printLine(dir, prefix, isLast, depth, stats); err != nil {
		return err
	}

	p.visited++
	if p.hook != nil {
		p.hook(p.visited, dir)
	}

	subdirs, err := p.subdirectories(dir)
	if err != nil {
		if IsSkippable(err) {
			p.log.Debug().Str("path", dir).Err(err).Msg("skipping subdirectories")

			return nil
		}

		return err
	}

	childPrefix := prefix + indentMiddle
	if isLast {
		childPrefix = prefix + indentLast
	}

	for i, name := range subdirs {
		path := filepath.Join(dir, name)

		if err := p.visit(path, childPrefix, i == len(subdirs)-1, depth+1); err != nil {
			if !IsSkippable(err) {
				return err
			}

			p.log.Debug().Str("path", path).Err(err).Msg("skipping directory")
		}
	}

	return nil
}

// printLine writes the line of a single directory.
func (p *printer) printLine(dir, prefix string, isLast bool, depth int, stats Stats) error {
	var breakdown string
	if stats.Files > 0 {
		breakdown = " (" + FormatBreakdown(stats.Categories) + ")"
	}

	summary := fmt.Sprintf("[%s, %s files%s]", FormatSize(float64(stats.Size)), humanize.Comma(stats.Files), breakdown)

	var err error

	if depth == 0 {
		_, err = fmt.Fprintf(p.out, "%s/ %s\n", rootLabel(dir), summary)
	} else {
		branch := branchMiddle
		if isLast {
			branch = branchLast
		}

		_, err = fmt.Fprintf(p.out, "%s%s%s/ %s\n", prefix, branch, filepath.Base(dir), summary)
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}

	return nil
}

// subdirectories lists the names of the direct subdirectories of dir,
// sorted case-insensitively. Symbolic links are not included.
func (p *printer) subdirectories(dir string) ([]string, error) {
	entries, err := afero.ReadDir(p.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("listing subdirectories of %q: %w", dir, err)
	}

	type subdir struct {
		name string
		key  string
	}

	caser := cases.Lower(language.Und)
	subdirs := make([]subdir, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, subdir{name: entry.Name(), key: caser.String(entry.Name())})
		}
	}

	slices.SortStableFunc(subdirs, func(a, b subdir) int {
		return cmp.Compare(a.key, b.key)
	})

	names := make([]string, len(subdirs))
	for i, s := range subdirs {
		names[i] = s.name
	}

	return names, nil
}

// rootLabel returns the display name of the root directory.
// The file-system root has an empty label.
func rootLabel(root string) string {
	base := filepath.Base(root)
	if base == string(filepath.Separator) {
		return ""
	}

	return base
}
