package storage

import (
	"errors"
	"io"
)

// ErrInvalidKey is returned for empty keys and keys that leave the store root.
var ErrInvalidKey = errors.New("storage: invalid key")

type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	// Create is Put that fails with an error matching fs.ErrExist when key
	// is already taken.
	Create(key string, r io.Reader) (string, error)
	Get(key string) (io.ReadCloser, error)
	Path(key string) (string, error) // local filesystem path for key
}
