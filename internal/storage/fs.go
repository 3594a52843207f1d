package storage

import (
	"io"
	"os"
	"path/filepath"
)

// FSStore keeps blobs as plain files under a base directory.
type FSStore struct{ base string }

func NewFSStore(base string) (*FSStore, error) {
	if base == "" {
		base = "./data"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{base: base}, nil
}

func (s *FSStore) Base() string { return s.base }

func (s *FSStore) Put(key string, r io.Reader) (string, error) {
	return s.write(key, r, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
}

func (s *FSStore) Create(key string, r io.Reader) (string, error) {
	return s.write(key, r, os.O_WRONLY|os.O_CREATE|os.O_EXCL)
}

func (s *FSStore) write(key string, r io.Reader, flag int) (string, error) {
	dst, err := s.Path(key)
	if err != nil {
		return "", err
	}
	// the root may have been removed since the store was opened
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	f, err := os.OpenFile(dst, flag, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Clean(key)), nil
}

func (s *FSStore) Get(key string) (io.ReadCloser, error) {
	p, err := s.Path(key)
	if err != nil {
		return nil, err
	}
	return os.Open(p)
}

func (s *FSStore) Path(key string) (string, error) {
	if key == "" || !filepath.IsLocal(key) {
		return "", ErrInvalidKey
	}
	return filepath.Join(s.base, filepath.Clean(key)), nil
}
