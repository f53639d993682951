package testutil

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

// Record parses a single XML element literal and returns it detached from
// any document.
func Record(t testing.TB, xml string) *etree.Element {
	t.Helper()

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(xml), "invalid record literal")
	root := doc.Root()
	require.NotNil(t, root, "record literal has no element")
	return root.Copy()
}

// Records parses each literal with Record.
func Records(t testing.TB, xml ...string) []*etree.Element {
	t.Helper()

	out := make([]*etree.Element, 0, len(xml))
	for _, x := range xml {
		out = append(out, Record(t, x))
	}
	return out
}

// AMLDocument wraps record literals in an <AML> root.
func AMLDocument(xml ...string) string {
	return "<AML>" + strings.Join(xml, "") + "</AML>"
}
