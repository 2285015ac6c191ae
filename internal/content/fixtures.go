package content

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// Small sampled values shared by the payload renderers. Fake data comes from
// gofakeit seeded with the caller's derived stream, so every name and company
// replays with the seed like any other draw.

func faker(r *rand.Rand) *gofakeit.Faker {
	return gofakeit.NewFaker(r, false)
}

func fullName(r *rand.Rand) string {
	return faker(r).Name()
}

func company(r *rand.Rand) string {
	return faker(r).Company()
}

func catchphrase(r *rand.Rand) string {
	return faker(r).Slogan()
}

func sentence(r *rand.Rand) string {
	return faker(r).Sentence(8 + r.IntN(8))
}

func jobTitle(r *rand.Rand) string {
	return faker(r).JobTitle()
}

func paragraphs(r *rand.Rand, count int) string {
	return faker(r).LoremIpsumParagraph(count, 4+r.IntN(3), 10+r.IntN(8), "\n\n")
}

func isoDate(r *rand.Rand) string {
	return fmt.Sprintf("%04d-%02d-%02d", 2023+r.IntN(3), 1+r.IntN(12), 1+r.IntN(28))
}

func money(r *rand.Rand, lo, hi float64) float64 {
	v := lo + r.Float64()*(hi-lo)
	return float64(int(v*100)) / 100
}

// newID draws a UUID from the derived stream, so identifiers replay with the
// seed instead of coming from the system entropy pool.
func newID(r *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(streamReader{r})
	if err != nil {
		// streamReader never fails; keep the producer total anyway.
		return "00000000-0000-0000-0000-000000000000"
	}
	return id.String()
}

func shortID(r *rand.Rand) string {
	return newID(r)[:8]
}

// streamReader adapts a derived stream to io.Reader for UUID generation.
type streamReader struct {
	r *rand.Rand
}

func (s streamReader) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(buf[:], s.r.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}
