// Package filesystem provides the file systems an export is written to.
//
// NewOS writes to disk. NewMemory keeps every file in memory, which backs
// dry runs and tests.
package filesystem
