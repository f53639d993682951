package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/amlpack/pkg/diff"
	"github.com/arthur-debert/amlpack/pkg/types"
)

var statusMarkers = map[diff.Status]string{
	diff.Added:     "+",
	diff.Removed:   "-",
	diff.Changed:   "~",
	diff.Unchanged: "=",
}

var statusStyles = map[diff.Status]string{
	diff.Added:     "Added",
	diff.Removed:   "Removed",
	diff.Changed:   "Changed",
	diff.Unchanged: "Unchanged",
}

// DiffReport renders one line per change followed by the summary.
// Unchanged items are listed only when all is set.
func DiffReport(s *Sheet, changes []diff.Change, all bool) string {
	var b strings.Builder
	b.WriteString(s.Render("Header", "Changes"))
	b.WriteString("\n")

	listed := 0
	for _, c := range changes {
		if c.Status == diff.Unchanged && !all {
			continue
		}
		listed++
		status := fmt.Sprintf("%s %-9s", statusMarkers[c.Status], c.Status)
		b.WriteString(s.Render(statusStyles[c.Status], status))
		b.WriteString(" ")
		b.WriteString(s.Render("Path", c.Label()))
		if c.Label() != c.Key {
			b.WriteString(s.Render("Muted", "  "+c.Key))
		}
		b.WriteString("\n")
	}
	if listed == 0 {
		b.WriteString(s.Render("Muted", "No differences"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Render("Muted", diff.Summarize(changes).String()))
	b.WriteString("\n")
	return b.String()
}

var reportVariants = []types.Variant{
	types.VariantCreate,
	types.VariantScript,
	types.VariantDependencyCheck,
	types.VariantWarning,
}

// ExportReport renders the per-variant counts of an export, the warnings
// it raised and, when files is non-empty, the planned file list.
func ExportReport(s *Sheet, title string, items []*types.InstallItem, files []string) string {
	counts := make(map[types.Variant]int, len(reportVariants))
	for _, item := range items {
		counts[item.Variant()]++
	}

	var b strings.Builder
	b.WriteString(s.Render("Header", title))
	b.WriteString("\n")

	for _, v := range reportVariants {
		b.WriteString(s.Render(v.String(), v.String()))
		b.WriteString(fmt.Sprintf("%d\n", counts[v]))
	}

	for _, item := range items {
		if item.Variant() == types.VariantWarning {
			b.WriteString(s.Render("Warning", "warning"))
			b.WriteString(item.Name())
			b.WriteString("\n")
		}
	}

	if len(files) > 0 {
		b.WriteString("\n")
		for _, f := range files {
			b.WriteString(s.Render("Path", f))
			b.WriteString("\n")
		}
	}
	return b.String()
}
