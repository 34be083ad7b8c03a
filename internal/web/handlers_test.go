package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/justestif/go-mood-playlists/internal/config"
	"github.com/justestif/go-mood-playlists/internal/db"
	"github.com/justestif/go-mood-playlists/internal/detect"
	"github.com/justestif/go-mood-playlists/internal/emotion"
	"github.com/justestif/go-mood-playlists/internal/facial"
	"github.com/justestif/go-mood-playlists/internal/lexicon"
	"github.com/justestif/go-mood-playlists/internal/playlists"
	webfs "github.com/justestif/go-mood-playlists/web"
)

type stubFacial struct{ label string }

func (s stubFacial) Analyze(_ context.Context, _ facial.Image) (string, error) {
	return s.label, nil
}

type stubLive struct{ results []playlists.SearchResult }

func (s stubLive) SearchPlaylists(_ context.Context, _ string, _ int) ([]playlists.SearchResult, error) {
	return s.results, nil
}

type stubHistory struct {
	detections []db.Detection
}

func (s *stubHistory) List(_ context.Context, limit int) ([]db.Detection, error) {
	if limit < len(s.detections) {
		return s.detections[:limit], nil
	}
	return s.detections, nil
}

func (s *stubHistory) Get(_ context.Context, id uuid.UUID) (*db.Detection, error) {
	for _, d := range s.detections {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, db.ErrNotFound
}

type testOptions struct {
	facial  detect.FacialOracle
	live    playlists.LiveSource
	history HistoryStore
	caps    config.Capabilities
}

func newTestServer(t *testing.T, opts testOptions) *httptest.Server {
	t.Helper()

	templates, err := fs.Sub(webfs.TemplatesFS, "templates")
	if err != nil {
		t.Fatalf("templates sub fs: %v", err)
	}
	static, err := fs.Sub(webfs.StaticFS, "static")
	if err != nil {
		t.Fatalf("static sub fs: %v", err)
	}

	var providerOpts []playlists.Option
	if opts.live != nil {
		providerOpts = append(providerOpts, playlists.WithLiveSource(opts.live))
	}
	provider, err := playlists.NewProvider(providerOpts...)
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}

	var detectOpts []detect.Option
	if opts.facial != nil {
		detectOpts = append(detectOpts, detect.WithFacialOracle(opts.facial))
	}
	detector := detect.New(emotion.NewArbiter(lexicon.New()), provider, detectOpts...)

	srv, err := NewServer(ServerConfig{
		Addr:         "127.0.0.1:0",
		Detector:     detector,
		History:      opts.history,
		Capabilities: opts.caps,
		TemplatesFS:  templates,
		StaticFS:     static,
	})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, ts *httptest.Server, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(ts.URL+"/detect_emotion", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /detect_emotion: %v", err)
	}
	defer resp.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp, out
}

func TestDetectEmotion_Text(t *testing.T) {
	ts := newTestServer(t, testOptions{})

	resp, out := postJSON(t, ts, `{"text": "I am so happy and excited today, this is great!"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %v)", resp.StatusCode, out)
	}
	if out["mood"] != "happy" {
		t.Errorf("mood = %v, want happy", out["mood"])
	}
	if out["method"] != "text" {
		t.Errorf("method = %v, want text", out["method"])
	}
	list, ok := out["playlists"].([]any)
	if !ok || len(list) != 3 {
		t.Fatalf("playlists = %v, want 3 entries", out["playlists"])
	}
	first := list[0].(map[string]any)
	for _, key := range []string{"name", "url", "image"} {
		if _, ok := first[key]; !ok {
			t.Errorf("playlist entry missing %q", key)
		}
	}
}

func TestDetectEmotion_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    testOptions
		body    string
		wantMsg string
	}{
		{
			name:    "empty object",
			body:    `{}`,
			wantMsg: detect.MsgNoInput,
		},
		{
			name:    "malformed json",
			body:    `{"text": `,
			wantMsg: detect.MsgNoInput,
		},
		{
			name:    "no emotion in text",
			body:    `{"text": "the table is brown"}`,
			wantMsg: detect.MsgNoEmotion,
		},
		{
			name:    "undecodable image wins over text",
			opts:    testOptions{facial: stubFacial{label: "happy"}},
			body:    `{"image": "data:image/jpeg;base64,bm90IGFuIGltYWdl", "text": "I am happy and glad"}`,
			wantMsg: detect.MsgFacialFailed,
		},
		{
			name:    "facial unavailable",
			body:    `{"image": "data:image/jpeg;base64,bm90IGFuIGltYWdl"}`,
			wantMsg: detect.MsgFacialUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, tt.opts)

			resp, out := postJSON(t, ts, tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			if out["error"] != tt.wantMsg {
				t.Errorf("error = %q, want %q", out["error"], tt.wantMsg)
			}
		})
	}
}

func TestDetectEmotion_LiveImageNull(t *testing.T) {
	ts := newTestServer(t, testOptions{live: stubLive{results: []playlists.SearchResult{
		{Name: "Sad Songs", URL: "https://open.spotify.com/playlist/1"},
	}}})

	resp, err := http.Post(ts.URL+"/detect_emotion", "application/json",
		strings.NewReader(`{"text": "I feel so sad and lonely"}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("reading body: %v", err)
	}
	body := buf.String()
	if !strings.Contains(body, `"image":null`) {
		t.Errorf("body = %s, want image null", body)
	}
	if !strings.Contains(body, `"mood":"sad"`) {
		t.Errorf("body = %s, want mood sad", body)
	}
}

func TestHome(t *testing.T) {
	tests := []struct {
		name        string
		opts        testOptions
		contains    []string
		notContains []string
	}{
		{
			name:        "text only",
			contains:    []string{"Text Emotion Detection", "/static/app.js", "curated playlists"},
			notContains: []string{"capture-btn", "Recent Detections"},
		},
		{
			name: "facial, live and history",
			opts: testOptions{
				facial: stubFacial{},
				live:   stubLive{},
				history: &stubHistory{detections: []db.Detection{
					{ID: uuid.New(), Emotion: "joy", Mood: "happy", Method: "text", CreatedAt: time.Now()},
				}},
			},
			contains:    []string{"capture-btn", "Recent Detections", "Joy"},
			notContains: []string{"curated playlists"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, tt.opts)

			resp, err := http.Get(ts.URL + "/")
			if err != nil {
				t.Fatalf("GET /: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}
			var buf bytes.Buffer
			if _, err := buf.ReadFrom(resp.Body); err != nil {
				t.Fatalf("reading body: %v", err)
			}
			body := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(body, s) {
					t.Errorf("body missing %q", s)
				}
			}
			for _, s := range tt.notContains {
				if strings.Contains(body, s) {
					t.Errorf("body unexpectedly contains %q", s)
				}
			}
		})
	}
}

func TestDetectForm(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"happy", "I am so happy and excited today", "Happy Hits"},
		{"empty", "", detect.MsgNoInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, testOptions{})

			resp, err := http.PostForm(ts.URL+"/detect", url.Values{"text": {tt.text}})
			if err != nil {
				t.Fatalf("POST /detect: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}
			var buf bytes.Buffer
			if _, err := buf.ReadFrom(resp.Body); err != nil {
				t.Fatalf("reading body: %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("body = %s, want it to contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name string
		opts testOptions
		want config.Capabilities
	}{
		{
			name: "nothing wired",
			opts: testOptions{caps: config.Capabilities{Facial: true, LivePlaylists: true, History: true}},
			want: config.Capabilities{},
		},
		{
			name: "everything wired",
			opts: testOptions{
				facial:  stubFacial{},
				live:    stubLive{},
				history: &stubHistory{},
				caps:    config.Capabilities{LLMText: true},
			},
			want: config.Capabilities{Facial: true, LivePlaylists: true, LLMText: true, History: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, tt.opts)

			resp, err := http.Get(ts.URL + "/healthz")
			if err != nil {
				t.Fatalf("GET /healthz: %v", err)
			}
			defer resp.Body.Close()

			var got healthResponse
			if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
				t.Fatalf("decoding: %v", err)
			}
			if got.Status != "ok" || got.Capabilities != tt.want {
				t.Errorf("health = %+v, want ok with %+v", got, tt.want)
			}
		})
	}
}

func TestMoods(t *testing.T) {
	ts := newTestServer(t, testOptions{})

	resp, err := http.Get(ts.URL + "/api/moods")
	if err != nil {
		t.Fatalf("GET /api/moods: %v", err)
	}
	defer resp.Body.Close()

	var got moodsResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if len(got.Buckets) != 8 {
		t.Errorf("buckets = %d, want 8", len(got.Buckets))
	}
	if len(got.Mappings) != 14 {
		t.Errorf("mappings = %d, want 14", len(got.Mappings))
	}
	if got.Fallback != "chill" {
		t.Errorf("fallback = %q, want chill", got.Fallback)
	}
}

func TestHistory(t *testing.T) {
	known := db.Detection{ID: uuid.New(), Emotion: "fear", Mood: "calm", Method: "facial", CreatedAt: time.Now()}
	history := &stubHistory{detections: []db.Detection{
		known,
		{ID: uuid.New(), Emotion: "sad", Mood: "sad", Method: "text", CreatedAt: time.Now()},
	}}

	tests := []struct {
		name       string
		history    HistoryStore
		path       string
		wantStatus int
	}{
		{"disabled", nil, "/api/history", http.StatusNotFound},
		{"list", history, "/api/history", http.StatusOK},
		{"list limited", history, "/api/history?limit=1", http.StatusOK},
		{"bad limit", history, "/api/history?limit=zero", http.StatusBadRequest},
		{"entry", history, "/api/history/" + known.ID.String(), http.StatusOK},
		{"entry missing", history, "/api/history/" + uuid.New().String(), http.StatusNotFound},
		{"entry bad id", history, "/api/history/not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, testOptions{history: tt.history})

			resp, err := http.Get(ts.URL + tt.path)
			if err != nil {
				t.Fatalf("GET %s: %v", tt.path, err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestHistory_LimitApplied(t *testing.T) {
	history := &stubHistory{detections: []db.Detection{
		{ID: uuid.New(), Emotion: "joy", Mood: "happy", Method: "text"},
		{ID: uuid.New(), Emotion: "sad", Mood: "sad", Method: "text"},
	}}
	ts := newTestServer(t, testOptions{history: history})

	resp, err := http.Get(ts.URL + "/api/history?limit=1")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	var got []db.Detection
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if len(got) != 1 || got[0].Emotion != "joy" {
		t.Errorf("history = %+v, want first detection only", got)
	}
}

func TestStatic(t *testing.T) {
	ts := newTestServer(t, testOptions{})

	resp, err := http.Get(ts.URL + "/static/style.css")
	if err != nil {
		t.Fatalf("GET /static/style.css: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
