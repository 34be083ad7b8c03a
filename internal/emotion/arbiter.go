package emotion

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// strongKeywordCount is the keyword hit count that always beats the oracle.
	strongKeywordCount = 2

	// confidentOracleScore is the oracle score below which any keyword hit wins.
	confidentOracleScore = 0.3
)

// Arbiter combines keyword evidence with a TextOracle to pick one emotion.
type Arbiter struct {
	oracle TextOracle
}

// NewArbiter creates an Arbiter backed by the given oracle.
func NewArbiter(oracle TextOracle) *Arbiter {
	return &Arbiter{oracle: oracle}
}

// Resolve returns the winning emotion label for raw text.
//
// Keyword evidence wins over the oracle when it has at least two hits, or
// when it has any hit and the oracle's best score is below 0.3. Without an
// oracle signal the keyword winner is used; with neither, Resolve returns
// ErrNoEmotionDetected.
func (a *Arbiter) Resolve(ctx context.Context, raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrNoEmotionDetected
	}

	keywordScores := ScoreKeywords(cases.Lower(language.Und).String(trimmed))
	keywordWinner, keywordTop, hasKeywords := keywordScores.Top()

	// The oracle sees the original text, casing and all.
	oracleScores, err := a.oracle.Score(ctx, raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTextAnalysis, err)
	}

	if oracleScores.HasSignal() {
		oracleWinner, oracleTop, _ := oracleScores.Top()
		if hasKeywords && preferKeywords(keywordTop, oracleTop) {
			return keywordWinner, nil
		}
		return oracleWinner, nil
	}

	if hasKeywords {
		return keywordWinner, nil
	}
	return "", ErrNoEmotionDetected
}

func preferKeywords(keywordTop int, oracleTop float64) bool {
	return keywordTop >= strongKeywordCount || (keywordTop > 0 && oracleTop < confidentOracleScore)
}
