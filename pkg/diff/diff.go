package diff

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/amlpack/pkg/types"
)

// File is one side of a comparison
type File interface {
	Key() string
	CompareKey() string
	String() string
}

// Status classifies a change
type Status int

const (
	Unchanged Status = iota
	Added
	Removed
	Changed
)

var statusNames = map[Status]string{
	Unchanged: "unchanged",
	Added:     "added",
	Removed:   "removed",
	Changed:   "changed",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalText renders the status by name
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Change pairs the base and head version of one item. Base is nil for
// added items and Head is nil for removed ones.
type Change struct {
	Key    string
	Status Status
	Base   File
	Head   File
}

// Label names the change for display, preferring the head side. Sides
// with an empty name fall through to the key.
func (c Change) Label() string {
	for _, f := range []File{c.Head, c.Base} {
		if f == nil {
			continue
		}
		if s := f.String(); s != "" {
			return s
		}
	}
	return c.Key
}

// Compare pairs base and head by key and classifies each pair. Repeated
// keys on one side are paired in order of appearance. The result is sorted
// by key.
func Compare(base, head []File) []Change {
	baseByKey := group(base)
	headByKey := group(head)

	keys := make([]string, 0, len(baseByKey)+len(headByKey))
	for k := range baseByKey {
		keys = append(keys, k)
	}
	for k := range headByKey {
		if _, ok := baseByKey[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var changes []Change
	for _, k := range keys {
		b, h := baseByKey[k], headByKey[k]
		for i := 0; i < len(b) || i < len(h); i++ {
			c := Change{Key: k}
			switch {
			case i >= len(b):
				c.Status, c.Head = Added, h[i]
			case i >= len(h):
				c.Status, c.Base = Removed, b[i]
			default:
				c.Base, c.Head = b[i], h[i]
				if b[i].CompareKey() == h[i].CompareKey() {
					c.Status = Unchanged
				} else {
					c.Status = Changed
				}
			}
			changes = append(changes, c)
		}
	}
	return changes
}

func group(files []File) map[string][]File {
	out := make(map[string][]File, len(files))
	for _, f := range files {
		out[f.Key()] = append(out[f.Key()], f)
	}
	return out
}

// Items adapts install items for Compare
func Items(items []*types.InstallItem) []File {
	out := make([]File, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// Summary counts changes per status
type Summary struct {
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Changed   int `json:"changed"`
	Unchanged int `json:"unchanged"`
}

// Summarize tallies changes
func Summarize(changes []Change) Summary {
	var s Summary
	for _, c := range changes {
		switch c.Status {
		case Added:
			s.Added++
		case Removed:
			s.Removed++
		case Changed:
			s.Changed++
		default:
			s.Unchanged++
		}
	}
	return s
}

// HasChanges reports whether anything was added, removed or changed
func (s Summary) HasChanges() bool {
	return s.Added+s.Removed+s.Changed > 0
}

func (s Summary) String() string {
	return fmt.Sprintf("%d added, %d removed, %d changed, %d unchanged",
		s.Added, s.Removed, s.Changed, s.Unchanged)
}
