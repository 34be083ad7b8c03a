package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/justestif/go-mood-playlists/internal/config"
	"github.com/justestif/go-mood-playlists/internal/db"
	"github.com/justestif/go-mood-playlists/internal/detect"
	"github.com/justestif/go-mood-playlists/internal/mood"
)

// maxBodyBytes bounds request bodies; webcam frames arrive as data URLs.
const maxBodyBytes = 10 << 20

// homeHistoryLimit is how many recent detections the home page shows.
const homeHistoryLimit = 5

// HistoryStore reads stored detections.
type HistoryStore interface {
	List(ctx context.Context, limit int) ([]db.Detection, error)
	Get(ctx context.Context, id uuid.UUID) (*db.Detection, error)
}

// Handlers contains HTTP handlers for the web application.
type Handlers struct {
	detector     *detect.Service
	history      HistoryStore
	capabilities config.Capabilities
	templates    *Templates
	logger       *zap.Logger
}

// NewHandlers creates a new Handlers instance. history may be nil.
func NewHandlers(detector *detect.Service, history HistoryStore, caps config.Capabilities, templates *Templates, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		detector:     detector,
		history:      history,
		capabilities: caps,
		templates:    templates,
		logger:       logger,
	}
}

// Home handles the home page (GET /).
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	data := HomePageData{
		PageData: PageData{
			Title:       "Mood Playlists",
			CurrentPath: r.URL.Path,
		},
		FacialEnabled: h.detector.FacialEnabled(),
		LivePlaylists: h.detector.LivePlaylists(),
	}

	if h.history != nil {
		recent, err := h.history.List(r.Context(), homeHistoryLimit)
		if err != nil {
			h.logger.Warn("loading recent detections", zap.Error(err))
		}
		data.Recent = recent
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.Render(w, "home", data); err != nil {
		h.logger.Error("rendering home", zap.Error(err))
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
		return
	}
}

// DetectEmotion detects an emotion from a JSON body (POST /detect_emotion).
func (h *Handlers) DetectEmotion(w http.ResponseWriter, r *http.Request) {
	var in detect.Input
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
		h.logger.Info("invalid detection request", zap.Error(err))
		writeError(w, http.StatusBadRequest, detect.UserMessage(detect.ErrNoInput))
		return
	}

	result, err := h.detector.Detect(r.Context(), in)
	if err != nil {
		writeError(w, http.StatusBadRequest, detect.UserMessage(err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// DetectForm detects an emotion from a submitted text form and renders the
// result fragment (POST /detect). Errors render inside the fragment, so the
// status stays 200 for HTMX to swap it in.
func (h *Handlers) DetectForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		h.renderResult(w, ResultData{Error: detect.UserMessage(detect.ErrNoInput)})
		return
	}

	var in detect.Input
	if text := r.PostForm.Get("text"); text != "" {
		in.Text = &text
	}

	result, err := h.detector.Detect(r.Context(), in)
	if err != nil {
		h.renderResult(w, ResultData{Error: detect.UserMessage(err)})
		return
	}
	h.renderResult(w, ResultData{Result: result})
}

func (h *Handlers) renderResult(w http.ResponseWriter, data ResultData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.RenderPartial(w, "result", data); err != nil {
		h.logger.Error("rendering result", zap.Error(err))
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
	}
}

type healthResponse struct {
	Status       string              `json:"status"`
	Capabilities config.Capabilities `json:"capabilities"`
}

// Health reports liveness and enabled capabilities (GET /healthz).
// Wired collaborators take precedence over what configuration asked for.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	caps := h.capabilities
	caps.Facial = h.detector.FacialEnabled()
	caps.LivePlaylists = h.detector.LivePlaylists()
	caps.History = h.history != nil
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Capabilities: caps})
}

type bucketInfo struct {
	Name        mood.Bucket `json:"name"`
	Description string      `json:"description"`
}

type moodsResponse struct {
	Buckets  []bucketInfo   `json:"buckets"`
	Mappings []mood.Mapping `json:"mappings"`
	Fallback mood.Bucket    `json:"fallback"`
}

// Moods lists the mood buckets and the emotion mapping (GET /api/moods).
func (h *Handlers) Moods(w http.ResponseWriter, r *http.Request) {
	buckets := make([]bucketInfo, len(mood.Buckets))
	for i, b := range mood.Buckets {
		buckets[i] = bucketInfo{Name: b, Description: mood.Description(b)}
	}
	writeJSON(w, http.StatusOK, moodsResponse{
		Buckets:  buckets,
		Mappings: mood.Mappings(),
		Fallback: mood.Fallback,
	})
}

// History lists recent detections (GET /api/history?limit=N).
func (h *Handlers) History(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		writeError(w, http.StatusNotFound, "Detection history is not enabled.")
		return
	}

	limit := db.DefaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, 100)
	}

	detections, err := h.history.List(r.Context(), limit)
	if err != nil {
		h.logger.Error("listing detections", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to load history.")
		return
	}
	if detections == nil {
		detections = []db.Detection{}
	}
	writeJSON(w, http.StatusOK, detections)
}

// HistoryEntry returns one stored detection (GET /api/history/{id}).
func (h *Handlers) HistoryEntry(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		writeError(w, http.StatusNotFound, "Detection history is not enabled.")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid detection id")
		return
	}

	d, err := h.history.Get(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "detection not found")
		return
	}
	if err != nil {
		h.logger.Error("loading detection", zap.String("id", id.String()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to load history.")
		return
	}
	writeJSON(w, http.StatusOK, d)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
