package paths_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arthur-debert/amlpack/pkg/paths"
	"github.com/arthur-debert/amlpack/pkg/types"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func item(body types.Body, kind, key, name string) *types.InstallItem {
	return &types.InstallItem{
		Reference: types.Reference{Kind: kind, UniqueKey: key, DisplayName: name},
		Body:      body,
	}
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name string
		item *types.InstallItem
		want string
	}{
		{
			name: "create goes under its kind",
			item: item(types.Create{}, "Part", "1", "Part A"),
			want: "Part/Part A.xml",
		},
		{
			name: "script goes under the scripts folder",
			item: item(types.Script{}, types.ScriptKind, "Part: 1 abc", "Edit of Part: Part A"),
			want: "_Scripts/Edit of Part Part A.xml",
		},
		{
			name: "unique key without display name",
			item: item(types.DependencyCheck{}, "ItemType", "ABC", ""),
			want: "ItemType/ABC.xml",
		},
		{
			name: "kind is cleaned",
			item: item(types.Create{}, "Life/Cycle", "1", "Map"),
			want: "LifeCycle/Map.xml",
		},
		{
			name: "override path",
			item: &types.InstallItem{Body: types.Create{}, OverridePath: `Custom\dir\x.xml`},
			want: "Custom/dir/x.xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc := paths.NewAllocator(paths.Options{})
			assert.Equal(t, tt.want, alloc.Allocate(tt.item))
			assert.True(t, alloc.IsClaimed(tt.want))
		})
	}
}

func TestAllocateCollisions(t *testing.T) {
	alloc := paths.NewAllocator(paths.Options{})

	var got []string
	for i := 1; i <= 4; i++ {
		got = append(got, alloc.Allocate(item(types.Create{}, "Part", fmt.Sprint(i), "Widget")))
	}

	assert.Equal(t, []string{
		"Part/Widget.xml",
		"Part/Widget_2.xml",
		"Part/Widget_3.xml",
		"Part/Widget_4.xml",
	}, got)
	assert.Equal(t, 4, alloc.Len())
}

func TestAllocateIDSuffixedFallback(t *testing.T) {
	alloc := paths.NewAllocator(paths.Options{})

	first := alloc.Allocate(item(types.Create{}, "Part", "AAA", "Widget"))
	second := alloc.Allocate(item(types.Create{}, "Part", "BBB", "Widget"))
	third := alloc.Allocate(item(types.Create{}, "Part", "CCC", "Widget"))

	assert.Equal(t, "Part/Widget.xml", first)
	assert.Equal(t, "Part/Widget_BBB.xml", second)
	assert.Equal(t, "Part/Widget_CCC.xml", third)
}

func TestAllocateNumericFallback(t *testing.T) {
	alloc := paths.NewAllocator(paths.Options{})

	// "a/b" and "ab" clean to the same file name
	first := alloc.Allocate(item(types.Create{}, "Part", "a/b", "X"))
	second := alloc.Allocate(item(types.Create{}, "Part", "ab", "X"))
	third := alloc.Allocate(item(types.Create{}, "Part", "a:b", "X"))

	assert.Equal(t, "Part/X.xml", first)
	assert.Equal(t, "Part/X_ab.xml", second)
	assert.Equal(t, "Part/X_ab_2.xml", third)
}

func TestAllocateIgnoresCase(t *testing.T) {
	alloc := paths.NewAllocator(paths.Options{})

	first := alloc.Allocate(item(types.Create{}, "Part", "1", "widget"))
	second := alloc.Allocate(item(types.Create{}, "Part", "2", "Widget"))

	assert.Equal(t, "Part/widget.xml", first)
	assert.Equal(t, "Part/Widget_2.xml", second)
}

func TestAllocateOptions(t *testing.T) {
	alloc := paths.NewAllocator(paths.Options{ScriptsFolder: "scripts", Extension: "aml"})

	assert.Equal(t, "scripts/Edit.aml", alloc.Allocate(item(types.Script{}, types.ScriptKind, "k", "Edit")))
}

func TestAllocateIsDeterministic(t *testing.T) {
	batch := []*types.InstallItem{
		item(types.Create{}, "Part", "1", "A"),
		item(types.Script{}, types.ScriptKind, "Part: 1 x", "Edit of Part: A"),
		item(types.Create{}, "Part", "2", "A"),
		item(types.Script{}, types.ScriptKind, "Part: 1 y", "Edit of Part: A"),
	}

	run := func() []string {
		alloc := paths.NewAllocator(paths.Options{})
		var out []string
		for _, it := range batch {
			out = append(out, alloc.Allocate(it))
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestClaim(t *testing.T) {
	alloc := paths.NewAllocator(paths.Options{})

	assert.True(t, alloc.Claim("Part/A.xml"))
	assert.False(t, alloc.Claim("part/a.XML"))
	assert.Equal(t, "Part/A_1.xml", alloc.Allocate(item(types.Create{}, "Part", "1", "A")))
}

func TestOverrideTaken(t *testing.T) {
	alloc := paths.NewAllocator(paths.Options{})
	override := &types.InstallItem{Body: types.Create{}, OverridePath: `part\widget.XML`}

	assert.False(t, alloc.OverrideTaken(override))
	assert.False(t, alloc.OverrideTaken(item(types.Create{}, "Part", "1", "Widget")))

	assert.Equal(t, "Part/Widget.xml", alloc.Allocate(item(types.Create{}, "Part", "1", "Widget")))
	assert.True(t, alloc.OverrideTaken(override))
	assert.Equal(t, "part/widget.XML", paths.OverridePath(override))
}

func TestAllocateDistinctProperty(t *testing.T) {
	names := []string{"", "A", "a", "A:", "Part/1", "CON", "..", " x ", "Edit of Part: A"}
	kinds := []string{"Part", "part", "Part:", "Method"}

	rapid.Check(t, func(rt *rapid.T) {
		type ident struct{ kind, key string }
		idents := rapid.SliceOfDistinct(
			rapid.Custom(func(rt *rapid.T) ident {
				return ident{
					kind: rapid.SampledFrom(kinds).Draw(rt, "kind"),
					key:  rapid.StringMatching(`[a-zA-Z0-9:/ _.]{0,6}`).Draw(rt, "key"),
				}
			}),
			func(id ident) ident { return id },
		).Draw(rt, "idents")

		alloc := paths.NewAllocator(paths.Options{})
		seen := make(map[string]bool)
		for i, id := range idents {
			var body types.Body = types.Create{}
			if rapid.Bool().Draw(rt, fmt.Sprintf("script%d", i)) {
				body = types.Script{}
			}
			name := rapid.SampledFrom(names).Draw(rt, fmt.Sprintf("name%d", i))

			p := alloc.Allocate(item(body, id.kind, id.key, name))
			k := strings.ToLower(p)
			if seen[k] {
				rt.Fatalf("path %q allocated twice", p)
			}
			seen[k] = true
		}
	})
}
