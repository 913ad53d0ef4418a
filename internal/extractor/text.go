package extractor

import (
	"errors"
	"unicode/utf8"
)

var errInvalidUTF8 = errors.New("text is not valid UTF-8")

// extractPlainText returns the bytes verbatim. No BOM stripping, no trimming.
func extractPlainText(content []byte) (string, error) {
	if !utf8.Valid(content) {
		return "", errInvalidUTF8
	}
	return string(content), nil
}
