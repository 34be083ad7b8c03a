// Package lexicon provides an in-process emotion oracle that scores text by
// looking words up in a small emotion lexicon.
package lexicon

import (
	"context"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/justestif/go-mood-playlists/internal/emotion"
)

// Vocabulary is the oracle's fixed emotion vocabulary, in tie-break order.
var Vocabulary = []string{"Happy", "Angry", "Surprise", "Sad", "Fear"}

// suffixes are stripped, longest first, when a word is not in the lexicon.
var suffixes = []string{"ness", "ing", "ed", "ly", "es", "s"}

// Oracle scores text as the share of lexicon hits per emotion.
// Scores are rounded to two decimals and sum to roughly 1 when any word
// matched; otherwise every score is zero.
type Oracle struct {
	words map[string]string
}

// New creates an Oracle using the built-in lexicon.
func New() *Oracle {
	return &Oracle{words: builtinWords()}
}

// Score implements emotion.TextOracle. It never fails.
func (o *Oracle) Score(_ context.Context, text string) (emotion.Scores, error) {
	counts := make(map[string]int, len(Vocabulary))
	total := 0
	for _, word := range tokenize(text) {
		if label, ok := o.lookup(word); ok {
			counts[label]++
			total++
		}
	}

	scores := make(emotion.Scores, len(Vocabulary))
	for i, label := range Vocabulary {
		scores[i] = emotion.Score{Emotion: label}
		if total > 0 {
			scores[i].Value = round2(float64(counts[label]) / float64(total))
		}
	}
	return scores, nil
}

func (o *Oracle) lookup(word string) (string, bool) {
	if label, ok := o.words[word]; ok {
		return label, true
	}
	for _, suffix := range suffixes {
		stem, found := strings.CutSuffix(word, suffix)
		if !found || len(stem) < 3 {
			continue
		}
		if label, ok := o.words[stem]; ok {
			return label, true
		}
		// "scared" -> "scare", "hoping" -> "hope"
		if label, ok := o.words[stem+"e"]; ok {
			return label, true
		}
	}
	return "", false
}

// tokenize lowercases text and splits it into letter runs.
func tokenize(text string) []string {
	lower := cases.Lower(language.Und).String(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
