package classify_test

import (
	"testing"

	"github.com/arthur-debert/amlpack/pkg/classify"
	"github.com/arthur-debert/amlpack/pkg/testutil"
	"github.com/arthur-debert/amlpack/pkg/types"
	"github.com/stretchr/testify/assert"
)

func classifyAll(t *testing.T, xml ...string) []*types.InstallItem {
	t.Helper()
	var items []*types.InstallItem
	for _, rec := range testutil.Records(t, xml...) {
		items = append(items, classify.Classify(rec, nil))
	}
	return items
}

func TestBackfill(t *testing.T) {
	items := classifyAll(t,
		`<Item type="Part" id="42" action="edit"/>`,
		`<Item type="Part" id="42" action="add" _keyed_name="Part A"/>`,
	)
	script := items[0]
	assert.Equal(t, "Edit of Part: 42", script.Reference.DisplayName)

	renamed := classify.Backfill(items)

	assert.Equal(t, 1, renamed)
	assert.Equal(t, "Edit of Part: Part A", script.Reference.DisplayName)
	assert.Equal(t, "Part A", items[1].Reference.DisplayName, "create items are untouched")
}

func TestBackfillOnlyMatchesCreates(t *testing.T) {
	items := classifyAll(t,
		`<Item type="Part" id="42" action="edit"/>`,
		`<Item type="Part" id="42" action="get" _dependency_check="1" _keyed_name="Check"/>`,
		`<Item type="Part" id="7" action="add" _keyed_name="Other"/>`,
	)

	assert.Equal(t, 0, classify.Backfill(items))
	assert.Equal(t, "Edit of Part: 42", items[0].Reference.DisplayName)
}

func TestBackfillKeepsIdentity(t *testing.T) {
	items := classifyAll(t,
		`<Item type="Part" id="42" action="add" _keyed_name="Part A"/>`,
		`<Item type="Part" id="42" action="PromoteItem" _script_type="Release"/>`,
	)
	before := items[1].Reference.UniqueKey
	key := items[1].CompareKey()

	classify.Backfill(items)

	assert.Equal(t, "PromoteItem of Part: Part A (Release)", items[1].Reference.DisplayName)
	assert.Equal(t, before, items[1].Reference.UniqueKey)
	assert.Equal(t, key, items[1].CompareKey())
}

func TestBackfillFirstCreateWins(t *testing.T) {
	items := classifyAll(t,
		`<Item type="Part" id="42" action="add" _keyed_name="First"/>`,
		`<Item type="Part" id="42" action="merge" _keyed_name="Second"/>`,
		`<Item type="Part" id="42" action="lock"/>`,
	)

	classify.Backfill(items)

	assert.Equal(t, "Lock of Part: First", items[2].Reference.DisplayName)
}

func TestBackfillIgnoresEmptyIDs(t *testing.T) {
	items := classifyAll(t,
		`<Item type="Part" where="[Part].[name]='A'" action="add" _keyed_name="A"/>`,
		`<Item type="Part" where="[Part].[name]='A'" action="edit"/>`,
	)

	assert.Equal(t, 0, classify.Backfill(items))
}
