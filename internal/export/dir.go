package export

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vango-dev/tips/internal/errors"
)

// DirPublisher writes artifacts below a root directory.
type DirPublisher struct {
	root string
}

// NewDirPublisher creates the root directory if needed.
func NewDirPublisher(root string) (*DirPublisher, error) {
	if root == "" {
		return nil, errors.New("E122").WithDetail("export directory is empty")
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, errors.New("E120").Wrap(err)
	}
	return &DirPublisher{root: root}, nil
}

// Root returns the export directory.
func (p *DirPublisher) Root() string { return p.root }

// Put writes body to root/key, creating parent directories.
func (p *DirPublisher) Put(ctx context.Context, key, _ string, body []byte) error {
	clean, err := CleanKey(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dst := filepath.Join(p.root, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.New("E120").Wrap(err)
	}

	// Write to a temp file and rename so readers never see a partial file
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".tips-*")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return errors.New("E120").Wrap(err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return errors.New("E120").Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		return errors.New("E120").Wrap(err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return errors.New("E120").Wrap(err)
	}
	return nil
}
