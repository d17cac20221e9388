package dirstat

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// ErrOutput marks failures to write the rendered tree.
var ErrOutput = errors.New("writing output")

// IsSkippable reports whether err is a permission or OS-level access error
// on a single file-system entry. Such entries are left out of the totals.
func IsSkippable(err error) bool {
	if err == nil || errors.Is(err, ErrOutput) {
		return false
	}

	var (
		pathErr    *fs.PathError
		linkErr    *os.LinkError
		syscallErr *os.SyscallError
	)

	return errors.Is(err, fs.ErrPermission) ||
		errors.As(err, &pathErr) ||
		errors.As(err, &linkErr) ||
		errors.As(err, &syscallErr)
}

// Collector computes aggregate statistics of directory subtrees.
// Nothing is cached: every call walks the full subtree again.
type Collector struct {
	fs  afero.Fs
	log zerolog.Logger
}

// NewCollector creates a collector reading from fsys.
func NewCollector(fsys afero.Fs, log zerolog.Logger) *Collector {
	return &Collector{fs: fsys, log: log}
}

// Collect returns the total size, file count and category breakdown of dir
// and everything below it. Symbolic links are neither counted nor followed.
//
// If dir cannot be listed because access is denied, Collect returns empty
// stats and no error. Any other failure to list dir is returned. Entries
// below dir that fail are skipped.
func (c *Collector) Collect(dir string) (Stats, error) {
	var stats Stats

	entries, err := afero.ReadDir(c.fs, dir)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			c.log.Debug().Str("path", dir).Err(err).Msg("skipping unreadable directory")

			return Stats{}, nil
		}

		return Stats{}, fmt.Errorf("listing directory %q: %w", dir, err)
	}

	for _, entry := range entries {
		switch {
		case entry.Mode().IsRegular():
			stats.addFile(entry.Name(), entry.Size())
		case entry.IsDir():
			path := filepath.Join(dir, entry.Name())

			sub, err := c.Collect(path)
			if err != nil {
				if !IsSkippable(err) {
					return Stats{}, err
				}

				c.log.Debug().Str("path", path).Err(err).Msg("skipping directory")

				continue
			}

			stats.merge(sub)
		}
	}

	return stats, nil
}
