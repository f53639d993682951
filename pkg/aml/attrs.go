package aml

import "github.com/beevik/etree"

// Element tags
const (
	TagAML       = "AML"
	TagItem      = "Item"
	TagKeyedName = "keyed_name"
)

// Record attributes
const (
	AttrType   = "type"
	AttrID     = "id"
	AttrWhere  = "where"
	AttrAction = "action"

	// AttrDependencyCheck marks a read-only prerequisite check.
	AttrDependencyCheck = "_dependency_check"
	// AttrIsScript forces a record to be treated as a script when set to "1".
	AttrIsScript = "_is_script"
	// AttrScriptType names the script subtype shown in rendered labels.
	AttrScriptType = "_script_type"
	// AttrKeyedName carries a display name resolved at export time.
	AttrKeyedName = "_keyed_name"
)

// Attr returns the value of the attribute key and whether it is present.
func Attr(e *etree.Element, key string) (string, bool) {
	if e == nil {
		return "", false
	}
	a := e.SelectAttr(key)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// AttrValue returns the value of the attribute key, or "" when absent.
func AttrValue(e *etree.Element, key string) string {
	v, _ := Attr(e, key)
	return v
}

// HasAttr reports whether the attribute key is present, even if empty.
func HasAttr(e *etree.Element, key string) bool {
	_, ok := Attr(e, key)
	return ok
}
