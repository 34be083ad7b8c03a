// Package mood normalizes raw emotion labels into the fixed set of mood buckets
// used to pick playlists.
package mood

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Bucket is a coarse mood category used to select playlists.
type Bucket string

// Mood buckets.
const (
	Happy     Bucket = "happy"
	Sad       Bucket = "sad"
	Energetic Bucket = "energetic"
	Calm      Bucket = "calm"
	Excited   Bucket = "excited"
	Chill     Bucket = "chill"
	Dark      Bucket = "dark"
	Romantic  Bucket = "romantic"
)

// Fallback is the bucket used for labels that have no mapping.
const Fallback = Chill

// Buckets lists every mood bucket in display order.
var Buckets = []Bucket{Happy, Sad, Energetic, Calm, Excited, Chill, Dark, Romantic}

// emotionToMood maps lowercase emotion labels from any oracle to a bucket.
var emotionToMood = map[string]Bucket{
	"happy":        Happy,
	"sad":          Sad,
	"angry":        Energetic,
	"fear":         Calm,
	"surprise":     Excited,
	"neutral":      Chill,
	"disgust":      Dark,
	"joy":          Happy,
	"anticipation": Excited,
	"trust":        Calm,
	"positive":     Happy,
	"negative":     Sad,
	"worry":        Calm,
	"love":         Romantic,
}

// Normalize lowercases and trims a raw emotion label.
func Normalize(label string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(label))
}

// Map returns the mood bucket for an emotion label.
// Lookup is case-insensitive; unknown labels map to Fallback.
func Map(label string) Bucket {
	if b, ok := emotionToMood[Normalize(label)]; ok {
		return b
	}
	return Fallback
}

// IsValid reports whether b is one of the known buckets.
func IsValid(b Bucket) bool {
	return slices.Contains(Buckets, b)
}

// Mapping is a single emotion to bucket pair, used for display.
type Mapping struct {
	Emotion string `json:"emotion"`
	Mood    Bucket `json:"mood"`
}

// Mappings returns the emotion table sorted by bucket order, then emotion.
func Mappings() []Mapping {
	out := make([]Mapping, 0, len(emotionToMood))
	for _, b := range Buckets {
		var group []string
		for emotion, target := range emotionToMood {
			if target == b {
				group = append(group, emotion)
			}
		}
		slices.Sort(group)
		for _, emotion := range group {
			out = append(out, Mapping{Emotion: emotion, Mood: b})
		}
	}
	return out
}

// Description returns a short human-readable description of a bucket.
func Description(b Bucket) string {
	switch b {
	case Happy:
		return "Bright, upbeat songs to match a good mood"
	case Sad:
		return "Slow, reflective songs for heavier moments"
	case Energetic:
		return "High-energy tracks to burn off steam"
	case Calm:
		return "Soft, steady music to settle the nerves"
	case Excited:
		return "Party and dance tracks for high spirits"
	case Dark:
		return "Heavy, intense sounds with darker tones"
	case Romantic:
		return "Love songs and date-night classics"
	default:
		return "Laid-back beats for just hanging out"
	}
}
