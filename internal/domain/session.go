package domain

import (
	"time"

	"github.com/google/uuid"

	"cv-studio/internal/model"
)

// Presentation state lives beside the document but is orthogonal to it:
// templates and the export pipeline read it, never write it.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Session is one editing session: the current document snapshot plus the
// process-wide presentation choices. The document field always holds a
// complete immutable snapshot; Dispatch swaps it wholesale.
type Session struct {
	ID        uuid.UUID    `json:"id"`
	Resume    model.Resume `json:"resume"`
	Template  string       `json:"template"`
	Language  string       `json:"language"`
	Theme     string       `json:"theme"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// NewSession starts a session on the seeded document, mirroring the
// defaults a fresh editor opens with.
func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New(),
		Resume:    model.Seed(),
		Template:  "classic",
		Language:  "km",
		Theme:     ThemeLight,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
