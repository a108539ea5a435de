package usecase

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cv-studio/internal/domain"
	"cv-studio/internal/model"
)

// ErrNotImage rejects uploads whose content is not an image.
var ErrNotImage = errors.New("uploaded file is not an image")

// PhotoDataURI turns uploaded image bytes into a self-contained data URI,
// the inline reference form the document stores for the profile photo.
func PhotoDataURI(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrNotImage
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// IngestPhoto converts an uploaded image into a data URI and applies an
// UpdatePhoto mutation to the session's document.
func (e *Editor) IngestPhoto(id string, data []byte) (*domain.Session, error) {
	s, err := e.repo.Get(id)
	if err != nil {
		return nil, err
	}

	uri, err := PhotoDataURI(data)
	if err != nil {
		return nil, err
	}

	s.Resume = model.Apply(s.Resume, model.Op{Type: model.OpUpdatePhoto, Photo: &uri})
	s.UpdatedAt = time.Now()
	e.repo.Save(s)
	return s, nil
}
