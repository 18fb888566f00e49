// Package output writes generated user records to JSON files.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"path/filepath"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zforge/internal/user"
)

var (
	// ErrIO is returned when a directory or file cannot be created or written.
	ErrIO = errors.New("io failure")
	// ErrSerialization is returned when records cannot be encoded or decoded.
	ErrSerialization = errors.New("serialization failure")
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Writer persists record sets as indented JSON arrays.
type Writer struct {
	fs zfilesystem.ReadWriteFileFS
}

// New creates a writer over fsys. Paths passed to Save are slash-separated
// and relative to the root of fsys.
func New(fsys zfilesystem.ReadWriteFileFS) *Writer {
	return &Writer{fs: fsys}
}

// Open returns a writer rooted at the parent directory of the OS path p,
// along with the file name to hand to Save. The parent need not exist yet.
func Open(p string) (*Writer, string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return nil, "", fmt.Errorf("%w: resolve %s: %w", ErrIO, p, err)
	}

	return New(zfilesystem.NewOSFileSystem(filepath.Dir(abs))), filepath.Base(abs), nil
}

// Save writes records to name as a single JSON array with two-space
// indentation, creating parent directories as needed.
func (w *Writer) Save(records []user.Record, name string) error {
	if records == nil {
		records = []user.Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode records: %w", ErrSerialization, err)
	}
	data = append(data, '\n')

	// "." resolves to the filesystem root, which may not exist yet
	dir := path.Dir(name)
	if err := w.fs.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrIO, dir, err)
	}

	if err := w.fs.WriteFile(name, data, filePerm); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, name, err)
	}

	return nil
}

// Load reads a file written by Save.
func (w *Writer) Load(name string) ([]user.Record, error) {
	data, err := w.fs.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, name, err)
	}

	var records []user.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrSerialization, name, err)
	}

	return records, nil
}
