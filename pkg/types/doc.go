// Package types defines the install item model shared by the classifier, the
// path allocator, the exporter and the differ.
//
// A Reference names a PLM entity (or a synthetic script unit) by kind and
// unique key. An InstallItem pairs a Reference with a variant-specific Body,
// the References it depends on, and a content fingerprint used to detect
// changes between two exported snapshots.
package types
