package detect

import (
	"errors"

	"github.com/justestif/go-mood-playlists/internal/emotion"
)

// Common errors. Every one of them is a client-facing failure.
var (
	// ErrImageDecode is returned when the submitted image cannot be decoded.
	ErrImageDecode = errors.New("image could not be decoded")

	// ErrFacialDetection is returned when the facial oracle fails.
	ErrFacialDetection = errors.New("facial detection failed")

	// ErrFacialUnavailable is returned when an image is submitted but no
	// facial oracle is configured.
	ErrFacialUnavailable = errors.New("facial detection unavailable")

	// ErrNoInput is returned when neither an image nor usable text is given.
	ErrNoInput = errors.New("no usable input")
)

// Messages shown to the user, one per error kind.
const (
	MsgFacialFailed      = "Facial detection failed. Please ensure your face is clearly visible."
	MsgFacialUnavailable = "Facial emotion detection is currently unavailable. The facial analysis service is not configured. Please use Text Emotion Detection instead."
	MsgNoEmotion         = "Could not detect emotion from text. Please provide more descriptive text about your feelings."
	MsgTextAnalysis      = "Text analysis failed. Please try again."
	MsgNoInput           = "Could not detect emotion. Please try again with clearer input."
)

// UserMessage returns the message shown to the user for a detection error.
// Unrecognized errors get the generic no-input message.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrImageDecode), errors.Is(err, ErrFacialDetection):
		return MsgFacialFailed
	case errors.Is(err, ErrFacialUnavailable):
		return MsgFacialUnavailable
	case errors.Is(err, emotion.ErrNoEmotionDetected):
		return MsgNoEmotion
	case errors.Is(err, emotion.ErrTextAnalysis):
		return MsgTextAnalysis
	default:
		return MsgNoInput
	}
}
