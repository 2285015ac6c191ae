// Package content produces placeholder payloads for planned files. Payloads
// are extension-appropriate boilerplate, not format-valid office documents;
// every byte is drawn from the caller-supplied stream so a seeded run writes
// the same tree twice.
package content

import (
	"math/rand/v2"
)

// Producer maps an extension and content kind to a byte payload.
type Producer interface {
	Produce(ext, kind string, r *rand.Rand) []byte
}

// Generator is the default producer covering every cataloged extension.
type Generator struct{}

// NewGenerator returns the default producer.
func NewGenerator() *Generator {
	return &Generator{}
}

// Produce renders the payload for one planned file. Unknown extensions fall
// back to a plain-text memo.
func (g *Generator) Produce(ext, kind string, r *rand.Rand) []byte {
	switch ext {
	case ".txt":
		return textPayload(kind, r)
	case ".json":
		return jsonPayload(kind, r)
	case ".csv":
		return csvPayload(kind, r)
	case ".md":
		return markdownPayload(kind, r)
	case ".html":
		return htmlPayload(kind, r)
	case ".xml":
		return xmlPayload(kind, r)
	case ".docx", ".pdf", ".xlsx", ".pptx":
		return documentPayload(ext, kind, r)
	default:
		return textPayload("memo", r)
	}
}
