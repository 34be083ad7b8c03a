// Package ollama provides a text emotion oracle backed by an Ollama LLM service.
// The model is asked to rate the text against a fixed emotion vocabulary and
// to answer with a JSON object of scores.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/justestif/go-mood-playlists/internal/emotion"
)

const (
	defaultBaseURL = "http://localhost:11434"
	defaultModel   = "llama3.2"
)

// Vocabulary is the emotion vocabulary the model scores, in tie-break order.
var Vocabulary = []string{"joy", "sad", "angry", "fear", "surprise", "disgust", "love", "neutral"}

const systemPrompt = "You rate the emotions expressed in a short piece of text written by a user describing how they feel.\n\nRules:\nReturn ONLY a JSON object. No conversational text.\nUse exactly these keys: joy, sad, angry, fear, surprise, disgust, love, neutral.\nEach value is a confidence between 0.0 and 1.0.\nIf the text expresses no emotion at all, return 0.0 for every key."

// Client scores text through the Ollama chat API.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Format   string        `json:"format,omitempty"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
	Error   string      `json:"error,omitempty"`
}

// NewClient creates a client for the Ollama instance at baseURL.
// Empty arguments fall back to the local default instance and model.
func NewClient(baseURL, model string) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Score implements emotion.TextOracle.
func (c *Client) Score(ctx context.Context, text string) (emotion.Scores, error) {
	payload := chatRequest{
		Model:  c.model,
		Stream: false,
		Format: "json",
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("ollama: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ollama: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("ollama: unexpected status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("ollama: decode response: %w", err)
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("ollama: %s", parsed.Error)
	}

	if strings.TrimSpace(parsed.Message.Content) == "" {
		return nil, fmt.Errorf("ollama: empty response")
	}

	var raw map[string]float64
	if err := json.Unmarshal([]byte(parsed.Message.Content), &raw); err != nil {
		return nil, fmt.Errorf("ollama: decode scores: %w", err)
	}

	return toScores(raw), nil
}

// toScores orders the model's answer by Vocabulary. Missing keys score zero,
// unknown keys are ignored and values are clamped to [0, 1].
func toScores(raw map[string]float64) emotion.Scores {
	lowered := make(map[string]float64, len(raw))
	for k, v := range raw {
		lowered[strings.ToLower(strings.TrimSpace(k))] = v
	}

	scores := make(emotion.Scores, len(Vocabulary))
	for i, label := range Vocabulary {
		scores[i] = emotion.Score{Emotion: label, Value: clamp(lowered[label])}
	}
	return scores
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
