package types_test

import (
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/arthur-debert/amlpack/pkg/testutil"
	"github.com/arthur-debert/amlpack/pkg/types"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func createItem(t testing.TB, xml string) *types.InstallItem {
	rec := testutil.Record(t, xml)
	return &types.InstallItem{
		Reference: types.ReferenceFromRecord(rec),
		Body:      types.Create{Element: rec},
	}
}

func TestVariant(t *testing.T) {
	tests := []struct {
		body types.Body
		want types.Variant
		name string
	}{
		{types.Create{}, types.VariantCreate, "Create"},
		{types.Script{}, types.VariantScript, "Script"},
		{types.DependencyCheck{}, types.VariantDependencyCheck, "DependencyCheck"},
		{types.Warning{}, types.VariantWarning, "Warning"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &types.InstallItem{Body: tt.body}
			assert.Equal(t, tt.want, item.Variant())
			assert.Equal(t, tt.name, tt.want.String())

			parsed, err := types.ParseVariant(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, parsed)
		})
	}

	_, err := types.ParseVariant("Delete")
	assert.Error(t, err)
}

func TestName(t *testing.T) {
	ref := types.Reference{Kind: "Part", UniqueKey: "1", DisplayName: "Part A"}

	tests := []struct {
		name string
		item *types.InstallItem
		want string
	}{
		{"create", &types.InstallItem{Reference: ref, Body: types.Create{}}, "Install of Part: Part A"},
		{"dependency", &types.InstallItem{Reference: ref, Body: types.DependencyCheck{}}, "Check of Dependency Part: Part A"},
		{"script", &types.InstallItem{Reference: ref, Body: types.Script{}}, "Part A"},
		{"warning", &types.InstallItem{Reference: ref, Body: types.Warning{Message: "missing"}}, "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.Name())
		})
	}
}

func TestCompareKey(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		item := createItem(t, `<Item type="Part" id="1" action="add"><name>A</name></Item>`)
		first := item.CompareKey()
		assert.Equal(t, first, item.CompareKey())
		assert.Regexp(t, "^[0-9a-f]{64}$", first)
	})

	t.Run("identical payloads share a key", func(t *testing.T) {
		a := createItem(t, `<Item type="Part" id="1" action="add"><name>A</name></Item>`)
		b := createItem(t, `<Item type="Part" id="1" action="add"><name>A</name></Item>`)
		assert.Equal(t, a.CompareKey(), b.CompareKey())
	})

	t.Run("formatting does not change the key", func(t *testing.T) {
		a := createItem(t, `<Item type="Part" id="1" action="add"><name>A</name></Item>`)
		b := createItem(t, "<Item action=\"add\" id=\"1\" type=\"Part\">\n  <name>A</name>\n</Item>")
		assert.Equal(t, a.CompareKey(), b.CompareKey())
	})

	t.Run("any payload change changes the key", func(t *testing.T) {
		a := createItem(t, `<Item type="Part" id="1" action="add"><name>A</name></Item>`)
		b := createItem(t, `<Item type="Part" id="1" action="add"><name>B</name></Item>`)
		assert.NotEqual(t, a.CompareKey(), b.CompareKey())
	})

	t.Run("display name is not part of the key", func(t *testing.T) {
		a := createItem(t, `<Item type="Part" id="1" action="add"/>`)
		before := a.CompareKey()
		a.Reference.DisplayName = "renamed"
		assert.Equal(t, before, a.CompareKey())
	})

	t.Run("warnings are keyed by message", func(t *testing.T) {
		a := &types.InstallItem{Body: types.Warning{Message: "one"}}
		b := &types.InstallItem{Body: types.Warning{Message: "two"}}
		assert.NotEqual(t, a.CompareKey(), b.CompareKey())
	})
}

func TestCompareKeyConcurrent(t *testing.T) {
	item := createItem(t, `<Item type="Part" id="1" action="add"><name>A</name></Item>`)

	keys := make([]string, 32)
	var wg sync.WaitGroup
	for i := range keys {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			keys[i] = item.CompareKey()
		}(i)
	}
	wg.Wait()

	for _, k := range keys {
		assert.Equal(t, keys[0], k)
	}
}

func TestCompareKeyProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		names := rapid.SliceOfNDistinct(rapid.StringMatching(`[A-Za-z0-9 ]{0,12}`), 2, 2, func(s string) string { return s }).Draw(rt, "names")

		build := func(name string) *types.InstallItem {
			e := etree.NewElement("Item")
			e.CreateAttr("type", "Part")
			e.CreateAttr("id", "1")
			e.CreateElement("name").SetText(name)
			return &types.InstallItem{Body: types.Create{Element: e}}
		}

		a1, a2, b := build(names[0]), build(names[0]), build(names[1])
		if a1.CompareKey() != a2.CompareKey() {
			rt.Fatalf("identical payloads produced different keys")
		}
		if a1.CompareKey() == b.CompareKey() {
			rt.Fatalf("payloads %q and %q collided", names[0], names[1])
		}
	})
}

func TestOpenRead(t *testing.T) {
	item := createItem(t, `<Item type="Part" id="1" action="add"><name>A</name></Item>`)

	r, err := item.OpenRead()
	require.NoError(t, err)
	b, err := io.ReadAll(r)
	require.NoError(t, err)

	text := string(b)
	assert.True(t, strings.HasPrefix(text, "<AML>\n  <Item "), text)
	assert.Contains(t, text, "\n    <name>A</name>\n")
	assert.NotContains(t, text, "<?xml")
}

func TestOpenReadWarning(t *testing.T) {
	item := &types.InstallItem{Body: types.Warning{Message: "x"}}
	assert.Nil(t, item.Payload())

	b, err := item.Content()
	require.NoError(t, err)
	assert.Contains(t, string(b), "<AML/>")
}
