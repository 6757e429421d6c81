package storage

import (
	"io/fs"
	"os"
	"sync"
)

// Reader provides access to raw config file contents.
// A missing file must be reported with an error satisfying errors.Is(err, fs.ErrNotExist).
type Reader interface {
	ReadFile(path string) ([]byte, error)
}

// OSReader reads files from the local filesystem.
type OSReader struct{}

// NewOSReader returns a Reader backed by os.ReadFile.
func NewOSReader() OSReader {
	return OSReader{}
}

// ReadFile returns the contents of the file at path.
func (OSReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// MemoryReader keeps file contents in-memory and guards access with a RWMutex.
type MemoryReader struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemoryReader initialises a reader with a copy of the provided files.
func NewMemoryReader(files map[string]string) *MemoryReader {
	r := &MemoryReader{files: make(map[string][]byte, len(files))}
	for path, content := range files {
		r.files[path] = []byte(content)
	}
	return r
}

// ReadFile returns a defensive copy of the stored contents.
func (r *MemoryReader) ReadFile(path string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return cloneBytes(data), nil
}

func cloneBytes(src []byte) []byte {
	out := make([]byte, len(src))
	copy(out, src)
	return out
}
