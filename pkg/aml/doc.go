// Package aml holds the record-level vocabulary of the PLM exchange format.
//
// A record is an <Item> element carrying the entity type, an id or a where
// predicate, an optional action verb and a handful of underscore-prefixed
// marker attributes added by the export tooling. This package knows how to
// read records out of an AML document and how to serialize them, both in the
// canonical form used for checksums and fingerprints and in the indented form
// written to disk.
//
// # Canonical form
//
// Checksums must be reproducible across runs and platforms, so they are
// computed over a fixed serialization:
//
//   - attributes are sorted by namespace and key on every element;
//   - whitespace-only text is dropped from elements that contain elements;
//   - end tags, text and attribute values use canonical XML escaping;
//   - there is no prolog and no indentation; output is UTF-8.
//
// Two records that differ only in attribute order or pretty-printing have the
// same canonical form.
package aml
