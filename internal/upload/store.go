package upload

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"linkjobs/internal/domain"
)

// Blob kinds, used as key prefixes so photos and resumes never collide.
const (
	KindImage = "img"
	KindCV    = "cv"
)

// BlobStore persists uploaded files under opaque keys. The local
// directory store below is one implementation; object storage would be
// another.
type BlobStore interface {
	Save(kind, filename string, r io.Reader) (key string, err error)
	Open(key string) (io.ReadSeekCloser, error)
}

// DirStore keeps blobs as plain files in a single flat directory.
type DirStore struct {
	Dir      string
	MaxBytes int64
}

func NewDirStore(dir string, maxBytes int64) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DirStore{Dir: dir, MaxBytes: maxBytes}, nil
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeName reduces an uploaded filename to a single safe path
// segment: base name only, unsafe runes stripped, no leading or
// trailing dots. Returns "" when nothing usable survives.
func SanitizeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = unsafeChars.ReplaceAllString(name, "")
	name = strings.Trim(name, ".")
	if name == "" || strings.Contains(name, "..") {
		return ""
	}
	return name
}

// Save writes the blob under a fresh key derived from the sanitized
// filename. Oversized uploads are removed again, never left partial.
func (s *DirStore) Save(kind, filename string, r io.Reader) (string, error) {
	base := SanitizeName(filename)
	if base == "" {
		return "", domain.ErrValidation
	}
	key := kind + "-" + uuid.NewString() + "-" + base

	f, err := os.Create(filepath.Join(s.Dir, key))
	if err != nil {
		return "", err
	}
	n, err := io.Copy(f, io.LimitReader(r, s.MaxBytes+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}
	if s.MaxBytes > 0 && n > s.MaxBytes {
		_ = os.Remove(f.Name())
		return "", domain.ErrPayloadTooLarge
	}
	return key, nil
}

// Open retrieves a stored blob by key. Keys are re-sanitized here since
// they arrive from request paths.
func (s *DirStore) Open(key string) (io.ReadSeekCloser, error) {
	clean := SanitizeName(key)
	if clean == "" || clean != key {
		return nil, domain.ErrNotFound
	}
	f, err := os.Open(filepath.Join(s.Dir, clean))
	if os.IsNotExist(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}
