package types

import (
	"bytes"
	"io"
	"sync"

	"github.com/arthur-debert/amlpack/pkg/aml"
	"github.com/arthur-debert/amlpack/pkg/internal/hashutil"
	"github.com/beevik/etree"
)

// InstallItem is one deployable unit of an export. Items are built once and
// shared by pointer; only Reference.DisplayName is refined afterwards, by the
// keyed-name backfill pass.
type InstallItem struct {
	Reference Reference
	// InstalledID is the machine id of the entity this item ultimately
	// affects. Script items share it with the Create item of their entity.
	InstalledID  string
	OverridePath string
	Body         Body
	Dependencies []Reference

	keyOnce sync.Once
	key     string
}

// Variant returns the discriminator of the item's body.
func (i *InstallItem) Variant() Variant {
	return i.Body.Variant()
}

// Payload returns the XML payload, or nil for warnings.
func (i *InstallItem) Payload() *etree.Element {
	switch b := i.Body.(type) {
	case Create:
		return b.Element
	case Script:
		return b.Element
	case DependencyCheck:
		return b.Element
	}
	return nil
}

// Key returns the identity of the item's reference.
func (i *InstallItem) Key() string {
	return i.Reference.Key()
}

// Name returns the label shown for the item.
func (i *InstallItem) Name() string {
	switch b := i.Body.(type) {
	case Create:
		return "Install of " + i.Reference.String()
	case DependencyCheck:
		return "Check of Dependency " + i.Reference.String()
	case Warning:
		return b.Message
	}
	return i.Reference.DisplayName
}

func (i *InstallItem) String() string {
	return i.Name()
}

// CompareKey returns the content fingerprint of the payload: the SHA256 of
// its canonical form, in lowercase hex. Warnings are fingerprinted by their
// message. The value is computed once and safe to request concurrently.
func (i *InstallItem) CompareKey() string {
	i.keyOnce.Do(func() {
		if w, ok := i.Body.(Warning); ok {
			i.key = hashutil.Fingerprint([]byte(w.Message))
			return
		}
		i.key = hashutil.Fingerprint(aml.Canonical(i.Payload()))
	})
	return i.key
}

// Content returns the payload wrapped in an <AML> root, indented with two
// spaces and without a prolog.
func (i *InstallItem) Content() ([]byte, error) {
	return aml.Document(i.Payload())
}

// OpenRead returns a reader over Content.
func (i *InstallItem) OpenRead() (io.Reader, error) {
	b, err := i.Content()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}
