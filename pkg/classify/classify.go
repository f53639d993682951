package classify

import (
	"github.com/arthur-debert/amlpack/pkg/aml"
	"github.com/arthur-debert/amlpack/pkg/internal/hashutil"
	"github.com/arthur-debert/amlpack/pkg/types"
	"github.com/beevik/etree"
)

// MethodKind is the entity kind of server methods.
const MethodKind = "Method"

// KeyedNameFunc resolves a display name for a record that carries none.
type KeyedNameFunc func(record *etree.Element) string

// Classify builds the install item for one record. It never fails and does
// not modify the record; resolve may be nil.
func Classify(record *etree.Element, resolve KeyedNameFunc) *types.InstallItem {
	ref := types.ReferenceFromRecord(record)
	item := &types.InstallItem{
		Reference: ref,
		Body:      types.Create{Element: record},
	}

	if types.IsGUID(ref.Kind) {
		item.InstalledID = ref.Kind
	} else {
		item.InstalledID = aml.AttrValue(record, aml.AttrID)
	}

	if aml.HasAttr(record, aml.AttrDependencyCheck) {
		item.Body = types.DependencyCheck{Element: record}
		resolveName(item, record, resolve)
		return item
	}

	if verb, ok := aml.Attr(record, aml.AttrAction); ok {
		switch {
		case IsCreateVerb(verb):
			// installs the entity as declared
		case IsBenignVerb(verb):
			if dependsOnTarget(verb, ref.Kind) {
				item.Dependencies = []types.Reference{ref}
			}
			rekeyAsScript(item, record)
		default:
			item.Dependencies = []types.Reference{MethodReference(verb)}
			rekeyAsScript(item, record)
		}
	}

	if aml.AttrValue(record, aml.AttrIsScript) == "1" {
		if item.Reference.DisplayName == "" {
			item.Reference.DisplayName = RenderName(record, "")
		}
		item.Body = types.Script{Element: record}
	}

	resolveName(item, record, resolve)
	return item
}

// MethodReference references the server method called name.
func MethodReference(name string) types.Reference {
	return types.Reference{
		Kind:        MethodKind,
		UniqueKey:   "[Method].[name] = '" + name + "'",
		DisplayName: name,
	}
}

// ScriptKey derives the sentinel unique key of a script record from the
// identity of the entity it targets and a checksum of its canonical form.
func ScriptKey(target types.Reference, record *etree.Element) string {
	return target.Key() + " " + hashutil.Checksum(aml.Canonical(record))
}

func rekeyAsScript(item *types.InstallItem, record *etree.Element) {
	item.Reference = types.Reference{
		Kind:        types.ScriptKind,
		UniqueKey:   ScriptKey(item.Reference, record),
		DisplayName: RenderName(record, ""),
	}
	item.Body = types.Script{Element: record}
}

func resolveName(item *types.InstallItem, record *etree.Element, resolve KeyedNameFunc) {
	if resolve == nil || item.Reference.DisplayName != "" {
		return
	}
	item.Reference.DisplayName = resolve(record)
}
