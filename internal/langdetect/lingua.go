// Package langdetect guesses the source language of extracted text.
package langdetect

import (
	"strings"
	"sync"
	"unicode"

	lingua "github.com/pemistahl/lingua-go"
	"golang.org/x/text/language"

	"doctranslate/internal/domain"
)

// minLetters is the smallest sample worth running the detector on.
const minLetters = 6

// sampleRunes caps how much of a document is fed to the detector.
const sampleRunes = 4000

// supported maps lingua languages onto the translator's language set by
// ISO 639-1 code. Languages outside the set are never reported.
var supported = func() map[lingua.Language]domain.Language {
	m := make(map[lingua.Language]domain.Language, len(domain.Languages))
	for _, l := range lingua.AllLanguages() {
		tag, err := language.Parse(strings.ToLower(l.IsoCode639_1().String()))
		if err != nil {
			continue
		}
		if target, ok := domain.LanguageFromTag(tag); ok {
			m[l] = target
		}
	}
	return m
}()

// Detector implements port.LanguageDetector over the supported languages only.
// The underlying models load lazily on first use.
type Detector struct {
	once     sync.Once
	detector lingua.LanguageDetector
}

// New returns a Detector. Building the lingua models is deferred.
func New() *Detector {
	return &Detector{}
}

func (d *Detector) Detect(text string) (domain.Language, bool) {
	sample := sampleOf(text)
	if sample == "" {
		return "", false
	}

	detected, ok := d.get().DetectLanguageOf(sample)
	if !ok {
		return "", false
	}
	l, ok := supported[detected]
	return l, ok
}

func (d *Detector) get() lingua.LanguageDetector {
	d.once.Do(func() {
		languages := make([]lingua.Language, 0, len(supported))
		for l := range supported {
			languages = append(languages, l)
		}
		d.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build()
	})
	return d.detector
}

// sampleOf trims text to a bounded prefix and rejects samples with too few letters.
func sampleOf(text string) string {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return ""
	}
	if runes := []rune(sample); len(runes) > sampleRunes {
		sample = string(runes[:sampleRunes])
	}

	letters := 0
	for _, r := range sample {
		if unicode.IsLetter(r) {
			letters++
			if letters >= minLetters {
				return sample
			}
		}
	}
	return ""
}
