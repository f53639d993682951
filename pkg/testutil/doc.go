// Package testutil provides helpers for building AML records in tests.
//
// All test data should be defined inline as XML literals, not in external
// files. Helpers fail the test immediately on malformed input.
package testutil
