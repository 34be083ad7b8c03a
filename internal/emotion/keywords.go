// Package emotion infers a raw emotion label from free text by arbitrating
// between a keyword classifier and an external scoring oracle.
package emotion

import "strings"

// KeywordGroup is an emotion and the lowercase substrings that signal it.
type KeywordGroup struct {
	Emotion  string
	Keywords []string
}

// KeywordTable lists the keyword groups in tie-break order.
var KeywordTable = []KeywordGroup{
	{Emotion: "happy", Keywords: []string{"happy", "joy", "excited", "great", "wonderful", "amazing", "fantastic", "love", "glad", "cheerful", "delighted", "thrilled", "excellent", "good", "awesome", "perfect"}},
	{Emotion: "sad", Keywords: []string{"sad", "unhappy", "depressed", "lonely", "miserable", "down", "blue", "disappointed", "upset", "hurt", "heartbroken", "crying", "tears", "awful", "terrible", "bad"}},
	{Emotion: "angry", Keywords: []string{"angry", "mad", "furious", "irritated", "annoyed", "frustrated", "rage", "pissed", "hate", "disgusted", "outraged"}},
	{Emotion: "fear", Keywords: []string{"scared", "afraid", "fear", "anxious", "worried", "nervous", "terrified", "frightened", "panic"}},
	{Emotion: "surprise", Keywords: []string{"surprised", "shocked", "amazed", "astonished", "wow", "incredible", "unbelievable"}},
	{Emotion: "neutral", Keywords: []string{"okay", "fine", "alright", "normal", "meh", "whatever"}},
}

// KeywordScore is the number of distinct keywords of one emotion found in a text.
type KeywordScore struct {
	Emotion string
	Count   int
}

// KeywordScores holds non-zero keyword counts in KeywordTable order.
type KeywordScores []KeywordScore

// Top returns the emotion with the highest count. Ties go to the earlier
// entry. ok is false when there are no scores.
func (s KeywordScores) Top() (emotion string, count int, ok bool) {
	for _, ks := range s {
		if !ok || ks.Count > count {
			emotion, count, ok = ks.Emotion, ks.Count, true
		}
	}
	return emotion, count, ok
}

// ScoreKeywords counts, per emotion, how many of its keywords appear as
// substrings of text. The text must already be lowercased and trimmed.
// Emotions without matches are omitted.
func ScoreKeywords(text string) KeywordScores {
	if text == "" {
		return nil
	}

	var scores KeywordScores
	for _, group := range KeywordTable {
		count := 0
		for _, kw := range group.Keywords {
			if strings.Contains(text, kw) {
				count++
			}
		}
		if count > 0 {
			scores = append(scores, KeywordScore{Emotion: group.Emotion, Count: count})
		}
	}
	return scores
}
