// Package detect resolves user input to an emotion, a mood and playlists.
package detect

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/justestif/go-mood-playlists/internal/db"
	"github.com/justestif/go-mood-playlists/internal/emotion"
	"github.com/justestif/go-mood-playlists/internal/facial"
	"github.com/justestif/go-mood-playlists/internal/mood"
	"github.com/justestif/go-mood-playlists/internal/playlists"
)

// Method names the path that produced a detection.
type Method string

const (
	MethodFacial Method = "facial"
	MethodText   Method = "text"
)

// Input is one detection request. A nil field is absent; a non-nil Image
// selects the facial path even when it is empty.
type Input struct {
	Text  *string `json:"text"`
	Image *string `json:"image"` // data URL
}

// Result is a successful detection.
type Result struct {
	Emotion   string            `json:"emotion"`
	Mood      mood.Bucket       `json:"mood"`
	Playlists []playlists.Entry `json:"playlists"`
	Method    Method            `json:"method"`
}

// FacialOracle returns the dominant emotion label for a face image.
type FacialOracle interface {
	Analyze(ctx context.Context, img facial.Image) (string, error)
}

// Recorder stores successful detections.
type Recorder interface {
	Create(ctx context.Context, d *db.Detection) error
}

// Service runs detections.
type Service struct {
	arbiter   *emotion.Arbiter
	playlists *playlists.Provider
	facial    FacialOracle
	recorder  Recorder
	logger    *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithFacialOracle enables image input. Without it, images are rejected
// with ErrFacialUnavailable.
func WithFacialOracle(oracle FacialOracle) Option {
	return func(s *Service) {
		s.facial = oracle
	}
}

// WithRecorder stores every successful detection. Recording failures are
// logged and never fail the detection.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

// WithLogger sets the service logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a detection service.
func New(arbiter *emotion.Arbiter, provider *playlists.Provider, opts ...Option) *Service {
	s := &Service{
		arbiter:   arbiter,
		playlists: provider,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FacialEnabled reports whether image input is accepted.
func (s *Service) FacialEnabled() bool {
	return s.facial != nil
}

// LivePlaylists reports whether playlists come from a live search source.
func (s *Service) LivePlaylists() bool {
	return s.playlists.Live()
}

// Detect resolves in to a result. An image, when present, decides the
// outcome on its own: its failures are returned even if text was also given.
func (s *Service) Detect(ctx context.Context, in Input) (*Result, error) {
	label, method, err := s.resolve(ctx, in)
	if err != nil {
		s.logger.Info("detection failed", zap.Error(err))
		return nil, err
	}

	emo := mood.Normalize(label)
	bucket := mood.Map(emo)
	s.logger.Debug("emotion resolved",
		zap.String("raw", label),
		zap.String("emotion", emo),
		zap.String("mood", string(bucket)),
		zap.String("method", string(method)),
	)

	result := &Result{
		Emotion:   emo,
		Mood:      bucket,
		Playlists: s.playlists.Get(ctx, bucket),
		Method:    method,
	}
	s.record(ctx, result)
	return result, nil
}

func (s *Service) resolve(ctx context.Context, in Input) (string, Method, error) {
	if in.Image != nil {
		if s.facial == nil {
			return "", "", ErrFacialUnavailable
		}
		img, err := facial.DecodeDataURL(*in.Image)
		if err != nil {
			return "", "", fmt.Errorf("%w: %w", ErrImageDecode, err)
		}
		label, err := s.facial.Analyze(ctx, img)
		if err != nil {
			return "", "", fmt.Errorf("%w: %w", ErrFacialDetection, err)
		}
		if strings.TrimSpace(label) == "" {
			return "", "", fmt.Errorf("%w: empty emotion label", ErrFacialDetection)
		}
		return label, MethodFacial, nil
	}

	if in.Text != nil && strings.TrimSpace(*in.Text) != "" {
		label, err := s.arbiter.Resolve(ctx, *in.Text)
		if err != nil {
			return "", "", err
		}
		return label, MethodText, nil
	}

	return "", "", ErrNoInput
}

func (s *Service) record(ctx context.Context, r *Result) {
	if s.recorder == nil {
		return
	}

	names := make([]string, len(r.Playlists))
	for i, p := range r.Playlists {
		names[i] = p.Name
	}
	d := &db.Detection{
		Emotion:   r.Emotion,
		Mood:      string(r.Mood),
		Method:    string(r.Method),
		Playlists: names,
	}
	if err := s.recorder.Create(ctx, d); err != nil {
		s.logger.Warn("recording detection failed", zap.Error(err))
	}
}
