package types

import (
	"fmt"

	"github.com/beevik/etree"
)

// Variant discriminates install items.
type Variant int

const (
	VariantCreate Variant = iota
	VariantScript
	VariantDependencyCheck
	VariantWarning
)

var variantNames = map[Variant]string{
	VariantCreate:          "Create",
	VariantScript:          "Script",
	VariantDependencyCheck: "DependencyCheck",
	VariantWarning:         "Warning",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant is the inverse of Variant.String.
func ParseVariant(s string) (Variant, error) {
	for v, name := range variantNames {
		if name == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown variant %q", s)
}

// Body is the variant-specific part of an install item. The set of
// implementations is closed.
type Body interface {
	Variant() Variant
	isBody()
}

// Create installs an entity from its full record.
type Create struct {
	Element *etree.Element
}

// Script applies an action to an entity that already exists.
type Script struct {
	Element *etree.Element
}

// DependencyCheck verifies that a prerequisite exists in the target.
type DependencyCheck struct {
	Element *etree.Element
}

// Warning surfaces a non-fatal export condition. It has no XML payload.
type Warning struct {
	Message string
}

func (Create) Variant() Variant          { return VariantCreate }
func (Script) Variant() Variant          { return VariantScript }
func (DependencyCheck) Variant() Variant { return VariantDependencyCheck }
func (Warning) Variant() Variant         { return VariantWarning }

func (Create) isBody()          {}
func (Script) isBody()          {}
func (DependencyCheck) isBody() {}
func (Warning) isBody()         {}
