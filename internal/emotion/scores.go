package emotion

import (
	"context"
	"errors"
)

// Score is an oracle's confidence for one emotion, in [0, 1].
type Score struct {
	Emotion string  `json:"emotion"`
	Value   float64 `json:"value"`
}

// Scores are oracle confidences in the oracle's declared vocabulary order.
// The order is significant: it breaks ties in Top.
type Scores []Score

// HasSignal reports whether any score is non-zero.
func (s Scores) HasSignal() bool {
	for _, sc := range s {
		if sc.Value != 0 {
			return true
		}
	}
	return false
}

// Top returns the highest scoring emotion; the first maximum wins.
func (s Scores) Top() (emotion string, value float64, ok bool) {
	for _, sc := range s {
		if !ok || sc.Value > value {
			emotion, value, ok = sc.Emotion, sc.Value, true
		}
	}
	return emotion, value, ok
}

// TextOracle scores text against a fixed emotion vocabulary.
// Implementations return one entry per vocabulary emotion; zeros are allowed.
type TextOracle interface {
	Score(ctx context.Context, text string) (Scores, error)
}

// Sentinel errors.
var (
	// ErrNoEmotionDetected is returned when neither keywords nor the oracle
	// produced a signal.
	ErrNoEmotionDetected = errors.New("no emotion detected")

	// ErrTextAnalysis is returned when the text oracle itself fails.
	ErrTextAnalysis = errors.New("text analysis failed")
)
