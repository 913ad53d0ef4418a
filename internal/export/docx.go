// Package export renders translated text into downloadable document formats.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
)

// DOCXContentType is the MIME type of a word-processing download.
const DOCXContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DOCX renders text as a word-processing document, one paragraph per line.
// The document is built in memory.
func DOCX(text string) ([]byte, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}

	for _, line := range strings.Split(text, "\n") {
		doc.AddParagraph(strings.TrimSuffix(line, "\r"))
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing document: %w", err)
	}
	return buf.Bytes(), nil
}
