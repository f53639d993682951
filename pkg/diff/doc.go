// Package diff compares two exports item by item.
//
// Items are paired by reference identity (Reference.Key) and classified by
// their compare keys. Either side can come from freshly classified items or
// from a manifest written by an earlier export.
package diff
