package lexicon

import (
	"context"
	"testing"
)

func TestOracle_Score(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[string]float64
	}{
		{
			name: "no lexicon words",
			text: "The train leaves at nine",
			want: map[string]float64{},
		},
		{
			name: "single emotion",
			text: "I am so happy and glad",
			want: map[string]float64{"Happy": 1},
		},
		{
			name: "mixed emotions share the total",
			text: "I'm happy but also scared",
			want: map[string]float64{"Happy": 0.5, "Fear": 0.5},
		},
		{
			name: "suffix stripping",
			text: "Everyone was laughing while I was worrying",
			want: map[string]float64{"Happy": 0.5, "Fear": 0.5},
		},
		{
			name: "case insensitive",
			text: "FURIOUS",
			want: map[string]float64{"Angry": 1},
		},
		{
			name: "rounded to two decimals",
			text: "sad sad angry",
			want: map[string]float64{"Sad": 0.67, "Angry": 0.33},
		},
		{
			name: "empty text",
			text: "",
			want: map[string]float64{},
		},
	}

	o := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := o.Score(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("Score() error = %v", err)
			}
			if len(scores) != len(Vocabulary) {
				t.Fatalf("Score() returned %d entries, want %d", len(scores), len(Vocabulary))
			}
			for i, s := range scores {
				if s.Emotion != Vocabulary[i] {
					t.Errorf("scores[%d].Emotion = %q, want %q", i, s.Emotion, Vocabulary[i])
				}
				if s.Value != tt.want[s.Emotion] {
					t.Errorf("score for %s = %v, want %v", s.Emotion, s.Value, tt.want[s.Emotion])
				}
			}
		})
	}
}

func TestBuiltinWords_Unique(t *testing.T) {
	seen := make(map[string]string)
	for _, label := range Vocabulary {
		for _, w := range wordsByEmotion[label] {
			if prev, ok := seen[w]; ok {
				t.Errorf("word %q listed under both %s and %s", w, prev, label)
			}
			seen[w] = label
		}
	}
}
