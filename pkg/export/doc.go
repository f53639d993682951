// Package export lays classified install items out as a file tree.
//
// Export runs in two steps. Plan allocates a path for every item in batch
// order and renders its content, without touching the filesystem. Write
// then materializes the bundle under a root directory in sorted path order,
// so writing the same bundle twice produces byte-identical trees.
//
// Every export also carries a manifest: one entry per item, recording where
// the item was written and the compare key of its payload. Warning items
// have no file and appear only in the manifest. A manifest can be read back
// to diff two exports without reparsing their records.
package export
