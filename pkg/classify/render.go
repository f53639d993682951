package classify

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/amlpack/pkg/aml"
	"github.com/beevik/etree"
)

// RenderName builds a one-line label for a record, e.g.
// "Update of ItemType: Part (Post)". The where predicate, when present, is
// used in place of "<type>: <name>". override replaces the record id.
func RenderName(record *etree.Element, override string) string {
	var b strings.Builder

	if verb, ok := aml.Attr(record, aml.AttrAction); ok {
		b.WriteString(capitalize(verb))
		b.WriteString(" of")
	}

	if where, ok := aml.Attr(record, aml.AttrWhere); ok {
		b.WriteString(" ")
		b.WriteString(where)
	} else {
		if kind, ok := aml.Attr(record, aml.AttrType); ok {
			b.WriteString(" ")
			b.WriteString(kind)
			b.WriteString(":")
		}
		if override != "" {
			b.WriteString(" ")
			b.WriteString(override)
		} else if id, ok := aml.Attr(record, aml.AttrID); ok {
			b.WriteString(" ")
			b.WriteString(id)
		}
	}

	if subtype, ok := aml.Attr(record, aml.AttrScriptType); ok {
		b.WriteString(" (")
		b.WriteString(subtype)
		b.WriteString(")")
	}

	return strings.TrimSpace(b.String())
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
