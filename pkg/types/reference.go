package types

import (
	"strings"

	"github.com/arthur-debert/amlpack/pkg/aml"
	"github.com/beevik/etree"
	"github.com/google/uuid"
)

// ScriptKind is the sentinel kind given to synthetic script units.
const ScriptKind = "*Script"

// Reference identifies an entity within one export. Kind and UniqueKey are
// the identity; DisplayName is cosmetic and may be filled in later.
type Reference struct {
	Kind        string
	UniqueKey   string
	DisplayName string
}

// NewReference creates a reference without a display name
func NewReference(kind, uniqueKey string) Reference {
	return Reference{Kind: kind, UniqueKey: uniqueKey}
}

// Key returns the stable identity string "<Kind>: <UniqueKey>".
func (r Reference) Key() string {
	return r.Kind + ": " + r.UniqueKey
}

// String renders the reference for humans, preferring the display name.
func (r Reference) String() string {
	if r.DisplayName != "" {
		return r.Kind + ": " + r.DisplayName
	}
	return r.Key()
}

// Same reports whether two references share an identity.
func (r Reference) Same(other Reference) bool {
	return r.Kind == other.Kind && r.UniqueKey == other.UniqueKey
}

// ReferenceFromRecord reads the declared reference of a record. The unique
// key is the id attribute, falling back to the where predicate. The display
// name comes from the _keyed_name attribute or a keyed_name child.
func ReferenceFromRecord(e *etree.Element) Reference {
	ref := Reference{Kind: aml.AttrValue(e, aml.AttrType)}
	if id, ok := aml.Attr(e, aml.AttrID); ok {
		ref.UniqueKey = id
	} else {
		ref.UniqueKey = aml.AttrValue(e, aml.AttrWhere)
	}

	if name := aml.AttrValue(e, aml.AttrKeyedName); name != "" {
		ref.DisplayName = name
	} else if e != nil {
		if child := e.SelectElement(aml.TagKeyedName); child != nil {
			ref.DisplayName = strings.TrimSpace(child.Text())
		}
	}
	return ref
}

// IsGUID reports whether s is GUID-shaped: 32 hex digits, optionally dashed,
// braced or prefixed with urn:uuid:.
func IsGUID(s string) bool {
	return uuid.Validate(s) == nil
}
