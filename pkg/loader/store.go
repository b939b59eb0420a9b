package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-logr/logr"
)

// MemoryStore keeps the document text in memory. It is the store used when
// nothing has to reach the disk.
type MemoryStore struct {
	mu         sync.Mutex
	contents   string
	hasChanges bool
}

// NewMemoryStore returns a store holding contents with no pending changes.
func NewMemoryStore(contents string) *MemoryStore {
	return &MemoryStore{contents: contents}
}

func (s *MemoryStore) SetContents(contents string, hasChanges bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contents = contents
	s.hasChanges = hasChanges
}

func (s *MemoryStore) Contents() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contents
}

// HasChanges reports whether contents changed since the store was created or
// last flushed.
func (s *MemoryStore) HasChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasChanges
}

// FileStore is a MemoryStore backed by a file. SetContents only records the
// text; Flush writes it. Writes replace the file atomically, so a failed
// write leaves the previous document in place.
type FileStore struct {
	MemoryStore
	path   string
	backup bool
	lgr    logr.Logger
}

// StoreOption configures a FileStore.
type StoreOption func(*FileStore)

// WithBackup keeps the previous file as <path>.bak on every flush.
func WithBackup(enabled bool) StoreOption {
	return func(s *FileStore) { s.backup = enabled }
}

// WithLogger sets the logger used for write events.
func WithLogger(lgr logr.Logger) StoreOption {
	return func(s *FileStore) { s.lgr = lgr }
}

// OpenFileStore reads path and returns a store holding its text.
func OpenFileStore(path string, opts ...StoreOption) (*FileStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := &FileStore{
		MemoryStore: MemoryStore{contents: string(data)},
		path:        path,
		lgr:         logr.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *FileStore) Path() string { return s.path }

// Flush writes pending changes to the file. It is a no-op without changes.
func (s *FileStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasChanges {
		return nil
	}
	if s.backup {
		if err := copyFile(s.path, s.path+".bak"); err != nil {
			return fmt.Errorf("writing backup: %w", err)
		}
	}
	if err := writeFileAtomic(s.path, []byte(s.contents)); err != nil {
		return err
	}
	s.hasChanges = false
	s.lgr.V(1).Info("document written", "file", s.path, "bytes", len(s.contents), "backup", s.backup)
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if st, err := os.Stat(path); err == nil {
		mode = st.Mode().Perm()
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return writeFileAtomic(dst, data)
}
