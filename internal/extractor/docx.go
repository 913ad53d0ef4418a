package extractor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	docxMainPart = "word/document.xml"
	wordprocNS   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
)

var errNoDocumentPart = errors.New("docx archive has no " + docxMainPart)

// extractDOCX joins the text of the body paragraphs with a single newline.
// Only paragraphs that are direct children of w:body count; paragraphs in
// tables or content controls are skipped.
func extractDOCX(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("opening docx archive: %w", err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == docxMainPart {
			part = f
			break
		}
	}
	if part == nil {
		return "", errNoDocumentPart
	}

	rc, err := part.Open()
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", docxMainPart, err)
	}
	defer func() { _ = rc.Close() }()

	paragraphs, err := readBodyParagraphs(rc)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", docxMainPart, err)
	}
	return strings.Join(paragraphs, "\n"), nil
}

// readBodyParagraphs walks the document XML and collects the run text of every
// top-level paragraph. Inside a run, w:tab becomes a tab, w:cr and
// text-wrapping w:br a newline; page and column breaks add nothing. Text of
// paragraphs nested inside a paragraph (text boxes) is not part of it.
func readBodyParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		current    strings.Builder
		stack      []string
		inPara     bool
		inText     bool
		nested     int
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			if t.Name.Space != wordprocNS {
				name = "?" + name
			}
			switch {
			case name == "p" && len(stack) == 2 && stack[1] == "body":
				inPara = true
				current.Reset()
			case name == "p" && inPara:
				nested++
			}
			// Run content only; w:tab under w:pPr/w:tabs is a tab stop.
			if inPara && nested == 0 && len(stack) > 0 && stack[len(stack)-1] == "r" {
				switch name {
				case "t":
					inText = true
				case "tab":
					current.WriteByte('\t')
				case "cr":
					current.WriteByte('\n')
				case "br":
					if isLineBreak(t) {
						current.WriteByte('\n')
					}
				}
			}
			stack = append(stack, name)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, errors.New("unbalanced document xml")
			}
			name := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if name == "t" {
				inText = false
			}
			if name == "p" && inPara {
				if len(stack) == 2 {
					paragraphs = append(paragraphs, current.String())
					inPara = false
				} else if nested > 0 {
					nested--
				}
			}
		case xml.CharData:
			if inPara && inText && nested == 0 {
				current.Write(t)
			}
		}
	}

	if len(stack) != 0 {
		return nil, errors.New("truncated document xml")
	}
	return paragraphs, nil
}

// isLineBreak reports whether a w:br is a text-wrapping break, the default
// when w:type is absent.
func isLineBreak(el xml.StartElement) bool {
	for _, a := range el.Attr {
		if a.Name.Local == "type" {
			return a.Value == "" || a.Value == "textWrapping"
		}
	}
	return true
}
