package http

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-studio/internal/adapter/repository"
	"cv-studio/internal/export"
	"cv-studio/internal/model"
	"cv-studio/internal/usecase"
	"cv-studio/pkg/ai"
)

type stubSummarizer struct {
	out string
	err error
}

func (s *stubSummarizer) GenerateSummary(context.Context, ai.SummaryRequest) (string, error) {
	return s.out, s.err
}

type stubCapturer struct{ data []byte }

func (s *stubCapturer) Capture(context.Context, string, float64) ([]byte, error) {
	return s.data, nil
}

type stubPrinter struct{ err error }

func (s *stubPrinter) PrintToPDF(context.Context, string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF stub"), nil
}

func smallPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 8))))
	return buf.Bytes()
}

func newApp(t *testing.T, printerErr error) (*fiber.App, string) {
	t.Helper()
	editor := usecase.NewEditor(repository.NewSessionsRepo(), &stubSummarizer{out: "A drafted summary."})
	pipeline := export.NewPipeline(&stubCapturer{data: smallPNG(t)}, &stubPrinter{err: printerErr})

	app := fiber.New()
	NewHandler(editor, pipeline).Register(app)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/sessions", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.ID)
	return app, created.ID
}

func TestSessionLifecycle(t *testing.T) {
	app, id := newApp(t, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/sessions/"+id+"/resume", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var r model.Resume
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&r))
	assert.Equal(t, "LIM CHILONG", r.Profile.Name)
	assert.Len(t, r.Skills, 3)

	t.Run("unknown session is 404", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/sessions/nope/resume", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("ending a session discards it", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/sessions/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/sessions/"+id+"/resume", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestDispatchOpRoute(t *testing.T) {
	app, id := newApp(t, nil)

	body := strings.NewReader(`{"type":"delete_item","section":"skills","id":"skill2"}`)
	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/ops", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var r model.Resume
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&r))
	require.Len(t, r.Skills, 2)
	assert.Equal(t, "skill1", r.Skills[0].ID)
	assert.Equal(t, "skill3", r.Skills[1].ID)

	t.Run("malformed envelope is 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/ops", strings.NewReader(`{"type":"reset"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestSettingsAndPreviewRoutes(t *testing.T) {
	app, id := newApp(t, nil)

	body := strings.NewReader(`{"template":"modern","language":"en","theme":"dark"}`)
	req := httptest.NewRequest(http.MethodPut, "/sessions/"+id+"/settings", body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/sessions/"+id+"/preview", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	html, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(html), "LIM CHILONG")
	assert.Contains(t, string(html), "modern")
	assert.Contains(t, string(html), `class="dark"`)
}

func TestSummaryRoute(t *testing.T) {
	app, id := newApp(t, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/summary/generate", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "A drafted summary.", out["summary"])
}

func TestPhotoRoute(t *testing.T) {
	app, id := newApp(t, nil)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("photo", "me.png")
	require.NoError(t, err)
	_, err = fw.Write(smallPNG(t))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/photo", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var p model.Profile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	require.NotNil(t, p.Photo)
	assert.Contains(t, *p.Photo, "data:image/png;base64,")
}

func TestExportRoutes(t *testing.T) {
	app, id := newApp(t, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/export/pdf", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "resume.pdf")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	t.Run("unknown page size is 400", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/export/pdf?page=tabloid", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("print path", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/export/print", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestPrintUnavailableRoute(t *testing.T) {
	app, id := newApp(t, export.ErrPrintUnavailable)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/export/print", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
