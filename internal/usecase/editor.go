package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"cv-studio/internal/adapter/repository"
	"cv-studio/internal/domain"
	"cv-studio/internal/i18n"
	"cv-studio/internal/model"
	"cv-studio/internal/template"
	"cv-studio/pkg/ai"
)

var (
	// ErrInvalidOp covers envelopes that fail shape validation.
	ErrInvalidOp = errors.New("invalid op")

	// ErrSummaryInFlight rejects a second generation request for the same
	// session while one is still running.
	ErrSummaryInFlight = errors.New("summary generation already in flight")
)

// SummaryClient is the text-generation collaborator used to draft a
// summary paragraph. A failed call leaves the document untouched.
type SummaryClient interface {
	GenerateSummary(ctx context.Context, req ai.SummaryRequest) (string, error)
}

// Editor owns the session lifecycle and every user-driven mutation path:
// ops, settings, photo ingestion, and summary drafting.
type Editor struct {
	repo        *repository.SessionsRepo
	summarizer  SummaryClient
	summaryBusy sync.Map // session id -> struct{}
}

func NewEditor(repo *repository.SessionsRepo, summarizer SummaryClient) *Editor {
	return &Editor{repo: repo, summarizer: summarizer}
}

// CreateSession starts a session on the seeded document.
func (e *Editor) CreateSession() *domain.Session {
	s := domain.NewSession()
	e.repo.Save(s)
	log.Printf("editor: session %s created", s.ID)
	return s
}

func (e *Editor) Session(id string) (*domain.Session, error) {
	return e.repo.Get(id)
}

// EndSession discards the session and its document. There is no undo; the
// document only ever lived in memory.
func (e *Editor) EndSession(id string) error {
	if _, err := e.repo.Get(id); err != nil {
		return err
	}
	e.repo.Delete(id)
	log.Printf("editor: session %s ended", id)
	return nil
}

// Dispatch validates a raw op envelope, applies it to the session's
// document and swaps in the resulting snapshot. add_item entries without
// an id get a fresh one minted here; the reducer itself never invents ids.
func (e *Editor) Dispatch(id string, raw []byte) (*domain.Session, error) {
	s, err := e.repo.Get(id)
	if err != nil {
		return nil, err
	}

	if err := model.ValidateOp(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOp, err)
	}

	var op model.Op
	if err := json.Unmarshal(raw, &op); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOp, err)
	}

	if op.Type == model.OpAddItem && len(op.Item) > 0 {
		if op.Item, err = ensureItemID(op.Item); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOp, err)
		}
	}

	s.Resume = model.Apply(s.Resume, op)
	s.UpdatedAt = time.Now()
	e.repo.Save(s)
	return s, nil
}

func ensureItemID(item json.RawMessage) (json.RawMessage, error) {
	var m map[string]any
	if err := json.Unmarshal(item, &m); err != nil {
		return nil, err
	}
	if id, _ := m["id"].(string); id == "" {
		m["id"] = uuid.NewString()
	}
	return json.Marshal(m)
}

// Settings carries the presentation-state changes of a session; nil fields
// are left alone.
type Settings struct {
	Template *string `json:"template"`
	Language *string `json:"language"`
	Theme    *string `json:"theme"`
}

func (e *Editor) UpdateSettings(id string, st Settings) (*domain.Session, error) {
	s, err := e.repo.Get(id)
	if err != nil {
		return nil, err
	}

	if st.Template != nil {
		if !template.Known(*st.Template) {
			return nil, fmt.Errorf("%w: unknown template %q", ErrInvalidOp, *st.Template)
		}
		s.Template = *st.Template
	}
	if st.Language != nil {
		if !i18n.Supported(*st.Language) {
			return nil, fmt.Errorf("%w: unknown language %q", ErrInvalidOp, *st.Language)
		}
		s.Language = *st.Language
	}
	if st.Theme != nil {
		if *st.Theme != domain.ThemeLight && *st.Theme != domain.ThemeDark {
			return nil, fmt.Errorf("%w: unknown theme %q", ErrInvalidOp, *st.Theme)
		}
		s.Theme = *st.Theme
	}

	s.UpdatedAt = time.Now()
	e.repo.Save(s)
	return s, nil
}

// Preview renders the session's document through its active template as a
// full standalone page. Rendering is re-run in full on every call; there
// is no partial re-render contract.
func (e *Editor) Preview(id string) (string, error) {
	s, err := e.repo.Get(id)
	if err != nil {
		return "", err
	}
	frag, err := template.Render(s.Template, s.Resume, i18n.For(s.Language))
	if err != nil {
		return "", err
	}
	return template.Page(frag, s.Language, s.Theme), nil
}

// GenerateSummary asks the collaborator to draft a summary from the
// current profile and applies it only on success. One request per session
// at a time; concurrent attempts are rejected, not queued.
func (e *Editor) GenerateSummary(ctx context.Context, id string) (*domain.Session, error) {
	s, err := e.repo.Get(id)
	if err != nil {
		return nil, err
	}

	if _, busy := e.summaryBusy.LoadOrStore(id, struct{}{}); busy {
		return nil, ErrSummaryInFlight
	}
	defer e.summaryBusy.Delete(id)

	req := ai.SummaryRequest{
		Name:  s.Resume.Profile.Name,
		Title: s.Resume.Profile.Title,
	}
	for _, exp := range s.Resume.Experience {
		req.Experience = append(req.Experience, fmt.Sprintf("%s at %s", exp.Title, exp.Company))
	}
	for _, sk := range s.Resume.Skills {
		req.Skills = append(req.Skills, sk.Name)
	}

	summary, err := e.summarizer.GenerateSummary(ctx, req)
	if err != nil {
		log.Printf("editor: summary generation failed for session %s: %v", id, err)
		return nil, fmt.Errorf("generate summary: %w", err)
	}

	s.Resume = model.Apply(s.Resume, model.Op{Type: model.OpUpdateSummary, Value: summary})
	s.UpdatedAt = time.Now()
	e.repo.Save(s)
	return s, nil
}
