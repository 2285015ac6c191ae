package content

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joe-Costa/ClusterPopulator/internal/rng"
)

func TestFakeValuesReplayWithStream(t *testing.T) {
	for name, fn := range map[string]func(*rand.Rand) string{
		"full name":   fullName,
		"company":     company,
		"catchphrase": catchphrase,
		"sentence":    sentence,
		"job title":   jobTitle,
	} {
		t.Run(name, func(t *testing.T) {
			a := fn(rng.New(42).Content(7))
			b := fn(rng.New(42).Content(7))
			require.NotEmpty(t, a)
			assert.Equal(t, a, b)
		})
	}
}

func TestFakeValuesVaryAcrossIndexes(t *testing.T) {
	src := rng.New(42)
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		seen[fullName(src.Content(i))] = true
	}
	assert.Greater(t, len(seen), 1, "every index drew the same name")
}

func TestParagraphsHonorCount(t *testing.T) {
	out := paragraphs(rng.New(1).Content(0), 3)
	require.NotEmpty(t, out)
	assert.Equal(t, 3, strings.Count(out, "\n\n")+1)
}
