package classify

import (
	"github.com/arthur-debert/amlpack/pkg/aml"
	"github.com/arthur-debert/amlpack/pkg/types"
	"github.com/beevik/etree"
)

// FromDependency builds a placeholder that checks ref exists in the target
// before dependent items are applied.
func FromDependency(ref types.Reference) *types.InstallItem {
	e := etree.NewElement(aml.TagItem)
	e.CreateAttr(aml.AttrType, ref.Kind)
	if types.IsGUID(ref.UniqueKey) {
		e.CreateAttr(aml.AttrID, ref.UniqueKey)
	} else {
		e.CreateAttr(aml.AttrWhere, ref.UniqueKey)
	}
	e.CreateAttr(aml.AttrAction, "get")
	e.CreateAttr(aml.AttrDependencyCheck, "1")
	if ref.DisplayName != "" {
		e.CreateAttr(aml.AttrKeyedName, ref.DisplayName)
	}

	return &types.InstallItem{
		Reference: ref,
		Body:      types.DependencyCheck{Element: e},
	}
}

// FromWarning builds a non-executable item that surfaces message for ref.
func FromWarning(ref types.Reference, message string) *types.InstallItem {
	return &types.InstallItem{
		Reference: ref,
		Body:      types.Warning{Message: message},
	}
}
