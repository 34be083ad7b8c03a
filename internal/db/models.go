package db

import (
	"time"

	"github.com/google/uuid"
)

// Detection is one successful emotion detection.
type Detection struct {
	ID        uuid.UUID `json:"id"`
	Emotion   string    `json:"emotion"`
	Mood      string    `json:"mood"`
	Method    string    `json:"method"`
	Playlists []string  `json:"playlists"` // playlist names returned to the user
	CreatedAt time.Time `json:"created_at"`
}
