package paths

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/amlpack/pkg/types"
)

// Layout defaults
const (
	// DefaultScriptsFolder holds every Script item of an export
	DefaultScriptsFolder = "_Scripts"

	// DefaultExtension is appended to every allocated file name
	DefaultExtension = ".xml"
)

// Options configures an Allocator
type Options struct {
	ScriptsFolder string
	Extension     string
}

// Allocator assigns collision-free relative paths to the items of one
// export. It carries the set of paths already claimed, so a batch must be
// allocated in a single sequential pass over one Allocator. It is not safe
// for concurrent use.
type Allocator struct {
	scriptsFolder string
	extension     string
	claimed       map[string]struct{}
}

// NewAllocator creates an allocator with nothing claimed
func NewAllocator(opts Options) *Allocator {
	folder := opts.ScriptsFolder
	if folder == "" {
		folder = DefaultScriptsFolder
	}
	ext := opts.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return &Allocator{
		scriptsFolder: folder,
		extension:     ext,
		claimed:       make(map[string]struct{}),
	}
}

// Folder returns the folder an item is written to: the scripts folder for
// Script items, the entity kind otherwise.
func (a *Allocator) Folder(item *types.InstallItem) string {
	if item.Variant() == types.VariantScript {
		return a.scriptsFolder
	}
	return CleanFileName(item.Reference.Kind)
}

// Allocate claims and returns the path of item. The display name is
// preferred, then the unique key. On collision the unique key is appended
// to the display name, and if that is taken too a numeric suffix is added.
// An OverridePath is returned as-is, with separators normalized to "/",
// even when it is already claimed; callers check OverrideTaken first.
func (a *Allocator) Allocate(item *types.InstallItem) string {
	if item.OverridePath != "" {
		p := OverridePath(item)
		a.Claim(p)
		return p
	}

	ref := item.Reference
	folder := a.Folder(item)

	name := ref.DisplayName
	if name == "" {
		name = ref.UniqueKey
	}
	p := a.join(folder, name)

	if a.IsClaimed(p) {
		p = a.join(folder, ref.DisplayName+"_"+ref.UniqueKey)
	}

	if a.IsClaimed(p) {
		stem := strings.TrimSuffix(p, a.extension)
		for n := 2; ; n++ {
			candidate := fmt.Sprintf("%s_%d%s", stem, n, a.extension)
			if !a.IsClaimed(candidate) {
				p = candidate
				break
			}
		}
	}

	a.Claim(p)
	return p
}

// OverridePath returns the override path of item with separators
// normalized to "/", or "" when it has none.
func OverridePath(item *types.InstallItem) string {
	return strings.ReplaceAll(item.OverridePath, `\`, "/")
}

// OverrideTaken reports whether item carries an override path that is
// already claimed.
func (a *Allocator) OverrideTaken(item *types.InstallItem) bool {
	return item.OverridePath != "" && a.IsClaimed(OverridePath(item))
}

// Claim marks p as taken. It reports false if p was already claimed.
func (a *Allocator) Claim(p string) bool {
	k := claimKey(p)
	if _, ok := a.claimed[k]; ok {
		return false
	}
	a.claimed[k] = struct{}{}
	return true
}

// IsClaimed reports whether p is taken. Comparison ignores case so that
// layouts stay valid on case-insensitive file systems.
func (a *Allocator) IsClaimed(p string) bool {
	_, ok := a.claimed[claimKey(p)]
	return ok
}

// Len returns the number of claimed paths
func (a *Allocator) Len() int {
	return len(a.claimed)
}

func (a *Allocator) join(folder, name string) string {
	return folder + "/" + CleanFileName(name) + a.extension
}

func claimKey(p string) string {
	return strings.ToLower(p)
}
