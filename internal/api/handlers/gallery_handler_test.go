// filepath: internal/api/handlers/gallery_handler_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"studiohub/internal/models"
	"studiohub/internal/services"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// newUploadRequest builds a multipart POST with an optional file part plus
// the metadata fields.
func newUploadRequest(t *testing.T, filename string, content []byte, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if filename != "" {
		part, err := w.CreateFormFile("photo", filename)
		assert.NoError(t, err)
		_, err = part.Write(content)
		assert.NoError(t, err)
	}
	for k, v := range fields {
		assert.NoError(t, w.WriteField(k, v))
	}
	assert.NoError(t, w.Close())

	req, _ := http.NewRequest("POST", "/admin/gallery/add", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestAddPhoto(t *testing.T) {
	h, m := newTestHandlers(t)

	photo := &models.GalleryPhoto{
		ID:       7,
		Title:    "First Dance",
		ImageURL: "/static/uploads/gallery/01ABC_dance.jpg",
		Featured: true,
	}
	expectedForm := services.PhotoForm{
		Title:    "First Dance",
		Category: "wedding",
		Featured: true,
	}
	m.Gallery.On("AddPhoto", mock.Anything, mock.Anything, expectedForm).Return(photo, nil)
	m.Auditor.On("Log", mock.Anything, "gallery.upload", mock.Anything, "photo:7", mock.Anything)

	rr := httptest.NewRecorder()
	req := newUploadRequest(t, "dance.jpg", []byte("fake image bytes"), map[string]string{
		"title":    "First Dance",
		"category": "wedding",
		"featured": "true",
	})
	h.AddPhoto(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	m.Gallery.AssertExpectations(t)
	m.Auditor.AssertExpectations(t)

	var resp UploadResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "/static/uploads/gallery/01ABC_dance.jpg", resp.ImageURL)
}

func TestAddPhotoMissingFile(t *testing.T) {
	h, m := newTestHandlers(t)

	rr := httptest.NewRecorder()
	req := newUploadRequest(t, "", nil, map[string]string{"title": "no file"})
	h.AddPhoto(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	m.Gallery.AssertNotCalled(t, "AddPhoto", mock.Anything, mock.Anything, mock.Anything)

	var errResp ErrorResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
	assert.Equal(t, "No file uploaded", errResp.Error)
}

func TestAddPhotoInvalidType(t *testing.T) {
	h, m := newTestHandlers(t)

	m.Gallery.On("AddPhoto", mock.Anything, mock.Anything, mock.Anything).Return(nil, services.ErrUnsupported)

	rr := httptest.NewRecorder()
	req := newUploadRequest(t, "malware.exe", []byte("MZ"), nil)
	h.AddPhoto(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var errResp ErrorResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
	assert.Equal(t, "Invalid file type", errResp.Error)
}

func TestAddPhotoTooLarge(t *testing.T) {
	h, m := newTestHandlers(t)
	h.Cfg.MaxUploadBytes = 64 // Tiny ceiling for the test

	rr := httptest.NewRecorder()
	req := newUploadRequest(t, "huge.jpg", bytes.Repeat([]byte("x"), 4096), nil)
	h.AddPhoto(rr, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	m.Gallery.AssertNotCalled(t, "AddPhoto", mock.Anything, mock.Anything, mock.Anything)
}
