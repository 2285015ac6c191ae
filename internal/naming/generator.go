package naming

import (
	"fmt"
	"math/rand/v2"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/Joe-Costa/ClusterPopulator/internal/catalog"
	"github.com/Joe-Costa/ClusterPopulator/internal/rng"
)

// Generator composes department-appropriate base names and picks the
// extension and content kind that go with them. All draws come from the
// caller-supplied stream, so composition is replayable per file index.
type Generator struct {
	profile Profile
}

// NewGenerator returns a composer that sanitizes through the given profile.
func NewGenerator(profile Profile) *Generator {
	return &Generator{profile: profile}
}

var namePatterns = []string{"date", "version", "date_version", "name", "simple"}

// Compose returns a sanitized file name plus its extension and content kind
// for one department. Draw order is fixed (extension, prefix, pattern,
// components, kind); changing it changes every seeded layout.
func (g *Generator) Compose(r *rand.Rand, d catalog.Department) (name, ext, kind string) {
	weights := make([]int, len(d.Extensions))
	for i, rule := range d.Extensions {
		weights[i] = catalog.WeightFor(rule.Ext)
	}
	rule := d.Extensions[rng.WeightedIndex(r, weights)]

	base := d.Prefixes[r.IntN(len(d.Prefixes))]
	switch namePatterns[r.IntN(len(namePatterns))] {
	case "date":
		base += "_" + dateString(r)
	case "version":
		base += "_" + versionString(r)
	case "date_version":
		base += "_" + dateString(r) + "_" + versionString(r)
	case "name":
		base += "_" + gofakeit.NewFaker(r, false).LastName()
		if r.IntN(2) == 0 {
			base += "_" + dateString(r)
		}
	}

	kind = rule.Kinds[r.IntN(len(rule.Kinds))]
	return g.profile.FileName(base + rule.Ext), rule.Ext, kind
}

// dateString renders a plausible document date in one of several office
// conventions. Dates come from a fixed window so plans replay across years.
func dateString(r *rand.Rand) string {
	year := 2023 + r.IntN(3)
	month := 1 + r.IntN(12)
	day := 1 + r.IntN(28)
	switch r.IntN(6) {
	case 0:
		return fmt.Sprintf("%04d%02d%02d", year, month, day)
	case 1:
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	case 2:
		return fmt.Sprintf("%04d_%02d_%02d", year, month, day)
	case 3:
		return fmt.Sprintf("%02d%02d%04d", month, day, year)
	case 4:
		return fmt.Sprintf("%04d%02d", year, month)
	default:
		return fmt.Sprintf("Q%d_%04d", (month-1)/3+1, year)
	}
}

func versionString(r *rand.Rand) string {
	switch r.IntN(6) {
	case 0:
		return fmt.Sprintf("v%d.%d", 1+r.IntN(5), r.IntN(10))
	case 1:
		return fmt.Sprintf("v%d", 1+r.IntN(10))
	case 2:
		return fmt.Sprintf("rev%d", 1+r.IntN(20))
	case 3:
		return fmt.Sprintf("draft%d", 1+r.IntN(5))
	case 4:
		return "final"
	default:
		return "approved"
	}
}
