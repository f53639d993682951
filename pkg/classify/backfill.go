package classify

import (
	"github.com/arthur-debert/amlpack/pkg/logging"
	"github.com/arthur-debert/amlpack/pkg/types"
)

// Backfill renames Script items after the Create item of the entity they
// act on, matched by InstalledID. It must run over a complete batch and
// returns the number of items renamed. When several Create items share an
// InstalledID the first one wins.
func Backfill(items []*types.InstallItem) int {
	names := make(map[string]string)
	for _, item := range items {
		if item.Variant() != types.VariantCreate || item.InstalledID == "" {
			continue
		}
		if _, seen := names[item.InstalledID]; !seen {
			names[item.InstalledID] = item.Reference.DisplayName
		}
	}

	renamed := 0
	for _, item := range items {
		if item.Variant() != types.VariantScript {
			continue
		}
		name, ok := names[item.InstalledID]
		if !ok {
			continue
		}
		item.Reference.DisplayName = RenderName(item.Payload(), name)
		renamed++
	}

	logger := logging.GetLogger("classify.backfill")
	logger.Debug().
		Int("creates", len(names)).
		Int("renamed", renamed).
		Msg("Backfilled keyed names")
	return renamed
}
