package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joe-Costa/ClusterPopulator/internal/catalog"
	"github.com/Joe-Costa/ClusterPopulator/internal/rng"
)

func TestComposeIsDeterministic(t *testing.T) {
	dept, ok := catalog.ByName("Finance")
	require.True(t, ok)

	gen := NewGenerator(POSIX)
	for i := 0; i < 50; i++ {
		n1, e1, k1 := gen.Compose(rng.New(42).Plan(i), dept)
		n2, e2, k2 := gen.Compose(rng.New(42).Plan(i), dept)
		require.Equal(t, n1, n2)
		require.Equal(t, e1, e2)
		require.Equal(t, k1, k2)
	}
}

func TestComposeStaysWithinDepartmentRules(t *testing.T) {
	gen := NewGenerator(POSIX)
	src := rng.New(7)
	for _, dept := range catalog.Departments {
		for i := 0; i < 30; i++ {
			name, ext, kind := gen.Compose(src.Plan(i), dept)

			require.True(t, strings.HasSuffix(name, ext), "name %q ext %q", name, ext)
			rule := findRule(t, dept, ext)
			assert.Contains(t, rule.Kinds, kind)

			prefixed := false
			for _, p := range dept.Prefixes {
				if strings.HasPrefix(name, POSIX.FileName(p)) {
					prefixed = true
					break
				}
			}
			assert.True(t, prefixed, "name %q has no %s prefix", name, dept.Name)
		}
	}
}

func TestComposeWindowsNamesAreLegal(t *testing.T) {
	gen := NewGenerator(Windows)
	src := rng.New(99)
	for _, dept := range catalog.Departments {
		for i := 0; i < 30; i++ {
			name, _, _ := gen.Compose(src.Plan(i), dept)
			assert.Equal(t, name, Windows.FileName(name), "not idempotent for %q", name)
			assert.LessOrEqual(t, len(name), MaxNameLength)
		}
	}
}

func findRule(t *testing.T, d catalog.Department, ext string) catalog.ExtensionRule {
	t.Helper()
	for _, rule := range d.Extensions {
		if rule.Ext == ext {
			return rule
		}
	}
	t.Fatalf("extension %s not in %s rules", ext, d.Name)
	return catalog.ExtensionRule{}
}
