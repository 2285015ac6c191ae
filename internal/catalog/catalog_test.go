package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShape(t *testing.T) {
	require.Len(t, Departments, 8)
	for _, d := range Departments {
		assert.NotEmpty(t, d.Name)
		assert.Positive(t, d.Weight, "%s weight", d.Name)
		assert.GreaterOrEqual(t, len(d.Subdirs), 5, "%s subdirs", d.Name)
		assert.LessOrEqual(t, len(d.Subdirs), 6, "%s subdirs", d.Name)
		assert.NotEmpty(t, d.Prefixes, "%s prefixes", d.Name)
		require.NotEmpty(t, d.Extensions, "%s extensions", d.Name)
		for _, rule := range d.Extensions {
			assert.NotEmpty(t, rule.Kinds, "%s %s kinds", d.Name, rule.Ext)
			assert.Contains(t, ExtensionWeights, rule.Ext, "%s %s has no global weight", d.Name, rule.Ext)
		}
	}
}

// The weight tables are contract: demo tooling pins distributions on them.
func TestDepartmentWeightsArePinned(t *testing.T) {
	want := map[string]int{
		"Finance":         15,
		"Human_Resources": 12,
		"Marketing":       15,
		"Sales":           18,
		"Operations":      12,
		"Legal":           8,
		"IT":              12,
		"Executive":       8,
	}
	require.Len(t, Departments, len(want))
	for _, d := range Departments {
		assert.Equal(t, want[d.Name], d.Weight, d.Name)
	}
}

func TestExtensionWeightsArePinned(t *testing.T) {
	want := map[string]int{
		".docx": 20, ".xlsx": 20, ".pdf": 25, ".txt": 5, ".json": 5,
		".csv": 8, ".pptx": 8, ".xml": 3, ".html": 3, ".md": 3,
	}
	assert.Equal(t, want, ExtensionWeights)
}

func TestWeightFor(t *testing.T) {
	assert.Equal(t, 25, WeightFor(".pdf"))
	assert.Equal(t, defaultExtensionWeight, WeightFor(".bin"))
}

func TestByName(t *testing.T) {
	d, ok := ByName("Legal")
	require.True(t, ok)
	assert.Equal(t, "Legal", d.Name)

	_, ok = ByName("Warehouse")
	assert.False(t, ok)
}

func TestYearsFixedRange(t *testing.T) {
	assert.Equal(t, []string{"2021", "2022", "2023", "2024", "2025"}, Years)
}
