package tui

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Joe-Costa/ClusterPopulator/internal/plan"
)

// PreviewReport renders the directory tree a plan would create plus
// per-extension and per-department counts. It lists the same layout a real
// run would write, derived from the plan alone.
func PreviewReport(root string, pl *plan.Plan) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Directory structure") + "\n")
	b.WriteString(root + "\n")
	for _, d := range pl.Directories() {
		depth := strings.Count(d, string(filepath.Separator)) + 1
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(dirStyle.Render(filepath.Base(d)+"/") + "\n")
	}

	extCounts := make(map[string]int)
	deptCounts := make(map[string]int)
	for _, f := range pl.Files {
		extCounts[f.Ext]++
		deptCounts[f.Department]++
	}

	b.WriteString("\n" + titleStyle.Render("Files by extension") + "\n")
	writeCounts(&b, extCounts)
	b.WriteString("\n" + titleStyle.Render("Files by department") + "\n")
	writeCounts(&b, deptCounts)
	return b.String()
}

// writeCounts prints counts largest first, name as tiebreak so output is
// stable for a given plan.
func writeCounts(b *strings.Builder, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		fmt.Fprintf(b, "  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-18s", k)),
			countStyle.Render(fmt.Sprintf("%d", counts[k])))
	}
}
