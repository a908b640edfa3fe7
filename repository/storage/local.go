package storage

import (
	"context"
	"os"
	"path/filepath"
)

// diskStore writes under a public directory, the dev-mode stand-in for S3.
type diskStore struct{ dir string }

func NewDisk(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &diskStore{dir: dir}, nil
}

func (d *diskStore) Save(_ context.Context, origName string, content []byte, _ string) (string, error) {
	name := objectName(origName)
	if err := os.WriteFile(filepath.Join(d.dir, name), content, 0o644); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
