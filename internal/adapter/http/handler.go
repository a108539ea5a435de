package http

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"cv-studio/internal/adapter/repository"
	"cv-studio/internal/export"
	"cv-studio/internal/usecase"
)

type Handler struct {
	editor   *usecase.Editor
	pipeline *export.Pipeline
}

func NewHandler(e *usecase.Editor, p *export.Pipeline) *Handler {
	return &Handler{editor: e, pipeline: p}
}

// Register mounts all session routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/sessions", h.CreateSession)
	app.Delete("/sessions/:id", h.EndSession)
	app.Get("/sessions/:id/resume", h.GetResume)
	app.Post("/sessions/:id/ops", h.DispatchOp)
	app.Post("/sessions/:id/photo", h.UploadPhoto)
	app.Post("/sessions/:id/summary/generate", h.GenerateSummary)
	app.Put("/sessions/:id/settings", h.UpdateSettings)
	app.Get("/sessions/:id/preview", h.Preview)
	app.Post("/sessions/:id/export/pdf", h.ExportPDF)
	app.Post("/sessions/:id/export/print", h.Print)
}

func (h *Handler) CreateSession(c *fiber.Ctx) error {
	s := h.editor.CreateSession()
	return c.Status(fiber.StatusCreated).JSON(s)
}

func (h *Handler) EndSession(c *fiber.Ctx) error {
	if err := h.editor.EndSession(c.Params("id")); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	s, err := h.editor.Session(c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(s.Resume)
}

func (h *Handler) DispatchOp(c *fiber.Ctx) error {
	s, err := h.editor.Dispatch(c.Params("id"), c.Body())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(s.Resume)
}

func (h *Handler) UploadPhoto(c *fiber.Ctx) error {
	fh, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing photo file"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable photo file"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable photo file"})
	}

	s, err := h.editor.IngestPhoto(c.Params("id"), data)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(s.Resume.Profile)
}

func (h *Handler) GenerateSummary(c *fiber.Ctx) error {
	s, err := h.editor.GenerateSummary(c.Context(), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"summary": s.Resume.Summary})
}

func (h *Handler) UpdateSettings(c *fiber.Ctx) error {
	var st usecase.Settings
	if err := c.BodyParser(&st); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	s, err := h.editor.UpdateSettings(c.Params("id"), st)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"template": s.Template, "language": s.Language, "theme": s.Theme})
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	html, err := h.editor.Preview(c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	s, err := h.editor.Session(c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	page, err := export.PageByName(c.Query("page"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	art, err := h.pipeline.ExportPDF(c.Context(), s, page)
	if err != nil {
		return respondErr(c, err)
	}
	return sendArtifact(c, art)
}

func (h *Handler) Print(c *fiber.Ctx) error {
	s, err := h.editor.Session(c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}

	art, err := h.pipeline.Print(c.Context(), s)
	if err != nil {
		return respondErr(c, err)
	}
	return sendArtifact(c, art)
}

func sendArtifact(c *fiber.Ctx, art *export.Artifact) error {
	c.Set(fiber.HeaderContentType, art.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", art.Filename))
	return c.Send(art.Data)
}

func respondErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	case errors.Is(err, usecase.ErrInvalidOp), errors.Is(err, usecase.ErrNotImage):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, export.ErrExportInFlight), errors.Is(err, usecase.ErrSummaryInFlight):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, export.ErrPrintUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	log.Printf("http: internal error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
