package facial

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const userAgent = "go-mood-playlists/1.0"

// Sentinel errors.
var (
	// ErrNoFace is returned when the service found no face to analyze.
	ErrNoFace = errors.New("no face detected")

	// ErrServiceUnavailable is returned on non-2xx responses from the service.
	ErrServiceUnavailable = errors.New("facial analysis service unavailable")
)

// Client talks to a DeepFace-compatible REST service (POST /analyze).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a facial analysis client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// analyzeRequest is the JSON body for POST /analyze.
type analyzeRequest struct {
	Img              string   `json:"img"`
	Actions          []string `json:"actions"`
	EnforceDetection bool     `json:"enforce_detection"`
}

// analyzeResult is one analyzed face.
type analyzeResult struct {
	DominantEmotion string             `json:"dominant_emotion"`
	Emotion         map[string]float64 `json:"emotion,omitempty"`
}

// analyzeResponse is the JSON response for POST /analyze.
type analyzeResponse struct {
	Results []analyzeResult `json:"results"`
	Error   string          `json:"error,omitempty"`
}

// Analyze returns the dominant emotion of the first face in the image.
// Detection is not enforced, so the service analyzes the whole frame when it
// cannot locate a face.
func (c *Client) Analyze(ctx context.Context, img Image) (string, error) {
	body, err := json.Marshal(analyzeRequest{
		Img:              img.DataURL(),
		Actions:          []string{"emotion"},
		EnforceDetection: false,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling analyze request: %w", err)
	}

	respBody, err := c.doRequest(ctx, body)
	if err != nil {
		return "", fmt.Errorf("analyzing image: %w", err)
	}

	var resp analyzeResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("parsing analyze response: %w", err)
	}
	if resp.Error != "" {
		return "", fmt.Errorf("analyze error: %s", resp.Error)
	}
	if len(resp.Results) == 0 || strings.TrimSpace(resp.Results[0].DominantEmotion) == "" {
		return "", ErrNoFace
	}

	return resp.Results[0].DominantEmotion, nil
}

// doRequest performs a single POST /analyze request. There is no retry.
func (c *Client) doRequest(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	}

	return respBody, nil
}
