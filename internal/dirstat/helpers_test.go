package dirstat

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// faultyFs fails to open the configured paths.
type faultyFs struct {
	afero.Fs

	faults map[string]error
}

func (f faultyFs) Open(name string) (afero.File, error) {
	if err, ok := f.faults[filepath.Clean(name)]; ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}

	return f.Fs.Open(name)
}

// newTree creates an in-memory file system.
// structure maps paths to file contents; a trailing slash marks a directory.
func newTree(t *testing.T, structure map[string]string) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()

	for path, content := range structure {
		if path[len(path)-1] == '/' {
			require.NoError(t, fsys.MkdirAll(path, 0o755))

			continue
		}

		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
	}

	return fsys
}

// deny wraps fsys so that opening any of paths fails with a permission error.
func deny(fsys afero.Fs, paths ...string) afero.Fs {
	return fail(fsys, fs.ErrPermission, paths...)
}

// fail wraps fsys so that opening any of paths fails with err.
func fail(fsys afero.Fs, err error, paths ...string) afero.Fs {
	faults := make(map[string]error, len(paths))
	for _, p := range paths {
		faults[filepath.Clean(p)] = err
	}

	return faultyFs{Fs: fsys, faults: faults}
}
