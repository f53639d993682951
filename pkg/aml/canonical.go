package aml

import "github.com/beevik/etree"

var canonicalSettings = etree.WriteSettings{
	CanonicalEndTags: true,
	CanonicalText:    true,
	CanonicalAttrVal: true,
}

// Canonical returns the canonical serialization of e. The element itself is
// not modified. A nil element serializes to nil.
func Canonical(e *etree.Element) []byte {
	if e == nil {
		return nil
	}
	c := e.Copy()
	normalize(c)

	doc := etree.NewDocument()
	doc.WriteSettings = canonicalSettings
	doc.SetRoot(c)
	// Writing into the document's in-memory buffer cannot fail.
	b, _ := doc.WriteToBytes()
	return b
}

func normalize(e *etree.Element) {
	e.SortAttrs()
	children := e.ChildElements()
	if len(children) > 0 {
		var blanks []etree.Token
		for _, tok := range e.Child {
			if cd, ok := tok.(*etree.CharData); ok && cd.IsWhitespace() {
				blanks = append(blanks, cd)
			}
		}
		for _, tok := range blanks {
			e.RemoveChild(tok)
		}
	}
	for _, c := range children {
		normalize(c)
	}
}

// Document wraps a copy of payload in an <AML> root and serializes it with
// two-space indentation and no prolog. A nil payload yields an empty root.
func Document(payload *etree.Element) ([]byte, error) {
	doc := etree.NewDocument()
	root := doc.CreateElement(TagAML)
	if payload != nil {
		root.AddChild(payload.Copy())
	}
	doc.Indent(2)
	return doc.WriteToBytes()
}
