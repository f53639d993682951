package filesystem

import (
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
)

// Memory is an in-memory FS. Directories are implicit; MkdirAll only
// records them. It is safe for concurrent use.
type Memory struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]struct{}
}

// NewMemory creates an empty in-memory filesystem
func NewMemory() *Memory {
	return &Memory{
		files: make(map[string][]byte),
		dirs:  make(map[string]struct{}),
	}
}

func (m *Memory) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.files[filepath.Clean(name)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *Memory) WriteFile(name string, data []byte, _ fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	buf := make([]byte, len(data))
	copy(buf, data)
	m.files[filepath.Clean(name)] = buf
	return nil
}

func (m *Memory) MkdirAll(path string, _ fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dirs[filepath.Clean(path)] = struct{}{}
	return nil
}

// Files returns the names of all written files, sorted
func (m *Memory) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
