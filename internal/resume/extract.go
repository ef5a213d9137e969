// Package resume extracts plain text from uploaded resume documents.
package resume

import (
	"path"
	"strings"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

// Extractor dispatches text extraction on the file extension. It satisfies
// ports.TextExtractor.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (Extractor) Text(filename string, data []byte) (string, error) {
	switch strings.ToLower(path.Ext(filename)) {
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	case ".txt":
		return string(data), nil
	default:
		return "", domain.ErrUnsupportedDocument
	}
}
