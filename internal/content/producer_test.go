package content

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joe-Costa/ClusterPopulator/internal/catalog"
	"github.com/Joe-Costa/ClusterPopulator/internal/rng"
)

func TestProduceCoversEveryCatalogedExtension(t *testing.T) {
	gen := NewGenerator()
	src := rng.New(42)

	i := 0
	for _, dept := range catalog.Departments {
		for _, rule := range dept.Extensions {
			for _, kind := range rule.Kinds {
				payload := gen.Produce(rule.Ext, kind, src.Content(i))
				require.NotEmpty(t, payload, "%s %s", rule.Ext, kind)
				assert.True(t, utf8.Valid(payload), "%s %s not utf8", rule.Ext, kind)
				i++
			}
		}
	}
}

func TestProduceIsDeterministic(t *testing.T) {
	gen := NewGenerator()
	for _, tc := range []struct{ ext, kind string }{
		{".txt", "memo"},
		{".json", "invoice"},
		{".csv", "employees"},
		{".pdf", "contract"},
		{".pptx", "presentation"},
	} {
		a := gen.Produce(tc.ext, tc.kind, rng.New(42).Content(5))
		b := gen.Produce(tc.ext, tc.kind, rng.New(42).Content(5))
		assert.Equal(t, a, b, "%s %s", tc.ext, tc.kind)
	}
}

func TestDifferentIndexesProduceDifferentPayloads(t *testing.T) {
	gen := NewGenerator()
	src := rng.New(42)
	a := gen.Produce(".txt", "memo", src.Content(0))
	b := gen.Produce(".txt", "memo", src.Content(1))
	assert.NotEqual(t, a, b)
}

func TestJSONPayloadsAreValid(t *testing.T) {
	gen := NewGenerator()
	src := rng.New(9)
	for i, kind := range []string{"invoice", "employee", "log", "project", "config"} {
		payload := gen.Produce(".json", kind, src.Content(i))
		assert.True(t, json.Valid(payload), "kind %s: %s", kind, payload)
	}
}

func TestCSVPayloadsParse(t *testing.T) {
	gen := NewGenerator()
	src := rng.New(9)
	for i, kind := range []string{"employees", "invoices", "data"} {
		payload := gen.Produce(".csv", kind, src.Content(i))
		rows, err := csv.NewReader(strings.NewReader(string(payload))).ReadAll()
		require.NoError(t, err, kind)
		require.Greater(t, len(rows), 1, kind)
		for _, row := range rows[1:] {
			assert.Len(t, row, len(rows[0]), kind)
		}
	}
}

func TestHTMLPayloadShape(t *testing.T) {
	payload := string(NewGenerator().Produce(".html", "page", rng.New(1).Content(0)))
	assert.True(t, strings.HasPrefix(payload, "<!DOCTYPE html>"))
	assert.Contains(t, payload, "</html>")
}

func TestXMLPayloadShape(t *testing.T) {
	gen := NewGenerator()
	data := string(gen.Produce(".xml", "data", rng.New(1).Content(0)))
	assert.True(t, strings.HasPrefix(data, `<?xml version="1.0"`))
	assert.Contains(t, data, "</records>")

	conf := string(gen.Produce(".xml", "config", rng.New(1).Content(1)))
	assert.Contains(t, conf, "</configuration>")
}

func TestUnknownExtensionFallsBackToMemo(t *testing.T) {
	payload := string(NewGenerator().Produce(".bin", "whatever", rng.New(1).Content(0)))
	assert.Contains(t, payload, "MEMORANDUM")
}

func TestShortIDIsDeterministic(t *testing.T) {
	a := shortID(rng.New(42).Content(3))
	b := shortID(rng.New(42).Content(3))
	assert.Equal(t, a, b)
	assert.Len(t, a, 8)
}
