package domain

import (
	"strings"

	"golang.org/x/text/language"
)

// DocumentFormat is the extraction strategy resolved from an uploaded file name.
type DocumentFormat string

const (
	FormatPDF         DocumentFormat = "pdf"
	FormatDOCX        DocumentFormat = "docx"
	FormatPlainText   DocumentFormat = "txt"
	FormatUnsupported DocumentFormat = "unsupported"
)

// formatSuffixes is matched case-sensitively, so "REPORT.PDF" is unsupported.
var formatSuffixes = []struct {
	suffix string
	format DocumentFormat
}{
	{".pdf", FormatPDF},
	{".docx", FormatDOCX},
	{".txt", FormatPlainText},
}

// FormatFromFileName resolves the document format from the file name suffix.
func FormatFromFileName(fileName string) DocumentFormat {
	for _, s := range formatSuffixes {
		if strings.HasSuffix(fileName, s.suffix) {
			return s.format
		}
	}
	return FormatUnsupported
}

// SupportedExtensions lists the accepted upload extensions without the dot.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(formatSuffixes))
	for _, s := range formatSuffixes {
		exts = append(exts, strings.TrimPrefix(s.suffix, "."))
	}
	return exts
}

// Language is a translation target. Only the values in Languages are valid.
type Language string

const (
	LanguageArabic     Language = "Arabic"
	LanguageChinese    Language = "Chinese"
	LanguageEnglish    Language = "English"
	LanguageFrench     Language = "French"
	LanguageGerman     Language = "German"
	LanguageHindi      Language = "Hindi"
	LanguageItalian    Language = "Italian"
	LanguageJapanese   Language = "Japanese"
	LanguageKorean     Language = "Korean"
	LanguagePortuguese Language = "Portuguese"
	LanguageRussian    Language = "Russian"
	LanguageSpanish    Language = "Spanish"
	LanguageTurkish    Language = "Turkish"
)

// Languages is the fixed, ordered set of supported target languages.
var Languages = []Language{
	LanguageArabic,
	LanguageChinese,
	LanguageEnglish,
	LanguageFrench,
	LanguageGerman,
	LanguageHindi,
	LanguageItalian,
	LanguageJapanese,
	LanguageKorean,
	LanguagePortuguese,
	LanguageRussian,
	LanguageSpanish,
	LanguageTurkish,
}

// languageTags maps each supported language to its BCP 47 tag.
var languageTags = map[Language]language.Tag{
	LanguageArabic:     language.Arabic,
	LanguageChinese:    language.Chinese,
	LanguageEnglish:    language.English,
	LanguageFrench:     language.French,
	LanguageGerman:     language.German,
	LanguageHindi:      language.Hindi,
	LanguageItalian:    language.Italian,
	LanguageJapanese:   language.Japanese,
	LanguageKorean:     language.Korean,
	LanguagePortuguese: language.Portuguese,
	LanguageRussian:    language.Russian,
	LanguageSpanish:    language.Spanish,
	LanguageTurkish:    language.Turkish,
}

// ParseLanguage validates user input against the supported set.
// Matching is exact; "french" is rejected.
func ParseLanguage(s string) (Language, error) {
	l := Language(s)
	if _, ok := languageTags[l]; !ok {
		return "", ErrUnsupportedLanguage
	}
	return l, nil
}

// Tag returns the BCP 47 tag for the language, or language.Und when unknown.
func (l Language) Tag() language.Tag {
	if tag, ok := languageTags[l]; ok {
		return tag
	}
	return language.Und
}

// LanguageFromTag finds the supported language whose tag has the same base
// language as tag.
func LanguageFromTag(tag language.Tag) (Language, bool) {
	base, _ := tag.Base()
	for _, l := range Languages {
		b, _ := languageTags[l].Base()
		if b == base {
			return l, true
		}
	}
	return "", false
}
