// Package paths lays install items out as a file tree.
//
// Every item of an export is written to "<folder>/<name><ext>": Script items
// share one scripts folder, everything else is grouped by entity kind. Names
// come from the item's display name and are cleaned so that the tree is
// valid on Windows, macOS and Linux alike.
//
// # Allocation
//
// An Allocator threads the set of claimed paths through one export:
//
//	alloc := paths.NewAllocator(paths.Options{})
//	for _, item := range items {
//	    p := alloc.Allocate(item)
//	    // write item to p
//	}
//
// Allocation never fails. When the preferred path is taken it falls back to
// "<display name>_<unique key>", and then to a numbered variant, so items
// with distinct identities always receive distinct paths. The result depends
// only on the order of the batch, which keeps repeated exports of unchanged
// input byte-for-byte comparable.
package paths
