package language

import (
	"strings"
	"unicode"

	"github.com/pemistahl/lingua-go"

	"github.com/miriam-legal/backend/pkg/logger"
)

// Unknown is the sentinel code returned when detection fails or the
// input is degenerate (empty, whitespace, purely numeric).
const Unknown = "unknown"

// maxSampleRunes bounds how much text the detector examines.
const maxSampleRunes = 1000

// Detector wraps a lingua statistical n-gram language detector. Lingua
// carries no internal randomness, so identical input always produces
// the identical code across calls and process restarts.
type Detector struct {
	detector lingua.LanguageDetector
}

func NewDetector() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()

	logger.Info("Language detector initialized")

	return &Detector{detector: detector}
}

// Detect returns the lowercase ISO 639-1 code of the best-guess
// language for the first 1000 runes of text, or Unknown.
func (d *Detector) Detect(text string) string {
	sample := truncateRunes(strings.TrimSpace(text), maxSampleRunes)
	if sample == "" || !containsLetter(sample) {
		return Unknown
	}

	lang, ok := d.detector.DetectLanguageOf(sample)
	if !ok {
		return Unknown
	}

	return strings.ToLower(lang.IsoCode639_1().String())
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
