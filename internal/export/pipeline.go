package export

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"

	"cv-studio/internal/domain"
	"cv-studio/internal/i18n"
	"cv-studio/internal/template"
)

// Oversampling factor for the capture. 3x keeps text sharp after the
// bitmap is scaled down to fit the page.
const CaptureScale = 3.0

// Filename is the deterministic name of the export artifact.
const Filename = "resume.pdf"

var (
	// ErrExportInFlight rejects a second export while one is running.
	// Concurrent attempts are rejected, never queued.
	ErrExportInFlight = errors.New("export already in flight")

	// ErrPrintUnavailable surfaces a print engine that cannot be opened.
	ErrPrintUnavailable = errors.New("print surface unavailable")
)

// Capturer rasterizes a standalone HTML document into a PNG bitmap.
type Capturer interface {
	Capture(ctx context.Context, html string, scale float64) ([]byte, error)
}

// PrintEngine pushes a standalone HTML document through a native print
// facility and returns the printed result.
type PrintEngine interface {
	PrintToPDF(ctx context.Context, html string) ([]byte, error)
}

// Artifact is a finished export handed back to the caller.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Pipeline converts the currently rendered layout of a session into export
// artifacts. Both delivery paths snapshot the rendered markup, never the
// raw document, and both force light-theme presentation for the duration
// of the capture.
type Pipeline struct {
	capturer Capturer
	printer  PrintEngine
	inFlight atomic.Bool
}

func NewPipeline(c Capturer, p PrintEngine) *Pipeline {
	return &Pipeline{capturer: c, printer: p}
}

// acquireLight forces light-theme presentation and returns a release func.
// The release runs on every exit path, so a failed capture can never leave
// the session stuck in the wrong theme.
func acquireLight(s *domain.Session) func() {
	prev := s.Theme
	s.Theme = domain.ThemeLight
	return func() { s.Theme = prev }
}

// renderPage renders the session's active template into the standalone
// document both export paths consume. One derivation serves both paths so
// they cannot drift apart.
func renderPage(s *domain.Session) (string, error) {
	frag, err := template.Render(s.Template, s.Resume, i18n.For(s.Language))
	if err != nil {
		return "", err
	}
	return template.Page(frag, s.Language, s.Theme), nil
}

// ExportPDF runs the raster path: capture the rendered layout as a bitmap
// at CaptureScale, then assemble a single-page document of the requested
// size with the bitmap aspect-fit and centered.
func (p *Pipeline) ExportPDF(ctx context.Context, s *domain.Session, page PageSize) (*Artifact, error) {
	if !p.inFlight.CompareAndSwap(false, true) {
		return nil, ErrExportInFlight
	}
	defer p.inFlight.Store(false)

	release := acquireLight(s)
	defer release()

	html, err := renderPage(s)
	if err != nil {
		return nil, fmt.Errorf("render for export: %w", err)
	}

	pngData, err := p.capturer.Capture(ctx, html, CaptureScale)
	if err != nil {
		log.Printf("export: capture failed: %v", err)
		return nil, fmt.Errorf("capture: %w", err)
	}

	pdf, err := AssemblePDF(pngData, page)
	if err != nil {
		return nil, err
	}

	return &Artifact{Filename: Filename, ContentType: "application/pdf", Data: pdf}, nil
}

// Print runs the native print path: the same rendered markup is rebuilt as
// a standalone document and handed to the host's print engine. It does not
// go through the rasterizer.
func (p *Pipeline) Print(ctx context.Context, s *domain.Session) (*Artifact, error) {
	release := acquireLight(s)
	defer release()

	html, err := renderPage(s)
	if err != nil {
		return nil, fmt.Errorf("render for print: %w", err)
	}

	pdf, err := p.printer.PrintToPDF(ctx, html)
	if err != nil {
		if errors.Is(err, ErrPrintUnavailable) {
			return nil, err
		}
		log.Printf("export: print failed: %v", err)
		return nil, fmt.Errorf("print: %w", err)
	}

	return &Artifact{Filename: Filename, ContentType: "application/pdf", Data: pdf}, nil
}
