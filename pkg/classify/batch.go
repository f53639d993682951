package classify

import (
	"fmt"

	"github.com/arthur-debert/amlpack/pkg/logging"
	"github.com/arthur-debert/amlpack/pkg/types"
	"github.com/beevik/etree"
	"github.com/sourcegraph/conc/iter"
)

// Options configures ClassifyAll
type Options struct {
	// Workers bounds parallel classification; 0 uses GOMAXPROCS.
	Workers int
	// KeyedName resolves display names for records that carry none.
	KeyedName KeyedNameFunc
	// DependencyChecks appends placeholders for dependencies that no item
	// in the batch provides.
	DependencyChecks bool
}

// ClassifyAll classifies every record, then backfills keyed names over the
// finished batch. Item order follows record order.
func ClassifyAll(records []*etree.Element, opts Options) []*types.InstallItem {
	logger := logging.GetLogger("classify")
	done := logging.LogOperationStart(logger, "classify")
	defer done()

	mapper := iter.Mapper[*etree.Element, *types.InstallItem]{MaxGoroutines: opts.Workers}
	items := mapper.Map(records, func(record **etree.Element) *types.InstallItem {
		return Classify(*record, opts.KeyedName)
	})

	Backfill(items)

	if opts.DependencyChecks {
		items = append(items, Prerequisites(items)...)
	}

	counts := CountByVariant(items)
	logger.Info().
		Int("records", len(records)).
		Int("create", counts[types.VariantCreate]).
		Int("script", counts[types.VariantScript]).
		Int("dependency_check", counts[types.VariantDependencyCheck]).
		Int("warning", counts[types.VariantWarning]).
		Msg("Classified batch")
	return items
}

// Prerequisites returns a DependencyCheck placeholder for every dependency
// that is not provided by an item of the batch, in order of first use.
// Dependencies without a unique key cannot be checked and yield a Warning.
func Prerequisites(items []*types.InstallItem) []*types.InstallItem {
	provided := make(map[string]bool, len(items))
	for _, item := range items {
		provided[item.Key()] = true
	}

	var out []*types.InstallItem
	for _, item := range items {
		for _, dep := range item.Dependencies {
			key := dep.Key()
			if provided[key] {
				continue
			}
			provided[key] = true
			if dep.UniqueKey == "" {
				out = append(out, FromWarning(dep,
					fmt.Sprintf("Unresolved dependency of %s: %s has no id or where clause", item.Name(), dep.Kind)))
				continue
			}
			out = append(out, FromDependency(dep))
		}
	}
	return out
}

// CountByVariant tallies items per variant.
func CountByVariant(items []*types.InstallItem) map[types.Variant]int {
	counts := make(map[types.Variant]int, 4)
	for _, item := range items {
		counts[item.Variant()]++
	}
	return counts
}
