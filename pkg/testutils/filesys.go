package testutils

import (
	"path"

	"github.com/mandelsoft/vfs/pkg/composefs"
	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/readonlyfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
)

// TestFileSystem provides an in-memory filesystem with a snapshot of the
// host directory dir mounted at the same relative path. The host directory
// is never modified. If readonly is set the snapshot rejects writes, the
// rest of the filesystem stays writable.
func TestFileSystem(dir string, readonly bool) (vfs.FileSystem, error) {
	snapshot := memoryfs.New()
	err := copyTree(osfs.OsFs, dir, snapshot, "/")
	if err != nil {
		return nil, err
	}

	root := memoryfs.New()
	err = root.MkdirAll(dir, 0o700)
	if err != nil {
		return nil, err
	}

	var mount vfs.FileSystem = snapshot
	if readonly {
		mount = readonlyfs.New(snapshot)
	}
	fs := composefs.New(root, "/tmp")
	err = fs.Mount(dir, mount)
	if err != nil {
		return nil, err
	}
	return fs, nil
}

func copyTree(src vfs.FileSystem, sdir string, dst vfs.FileSystem, ddir string) error {
	err := dst.MkdirAll(ddir, 0o755)
	if err != nil {
		return err
	}
	entries, err := vfs.ReadDir(src, sdir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		s, d := path.Join(sdir, e.Name()), path.Join(ddir, e.Name())
		if e.IsDir() {
			err = copyTree(src, s, dst, d)
		} else {
			var data []byte
			data, err = vfs.ReadFile(src, s)
			if err == nil {
				err = vfs.WriteFile(dst, d, data, 0o644)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
