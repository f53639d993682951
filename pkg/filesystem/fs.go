package filesystem

import "io/fs"

// FS is the minimal set of file operations an export needs. Paths use the
// host separator.
type FS interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
}
