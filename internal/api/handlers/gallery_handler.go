// filepath: internal/api/handlers/gallery_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"studiohub/internal/logging"
	"studiohub/internal/services"
	"studiohub/internal/services/auth"
)

// maxMultipartMemory bounds how much of a parsed form is kept in memory;
// larger file parts spill to temp files.
const maxMultipartMemory = 4 << 20

// AddPhoto handles the authenticated gallery upload. The route is wrapped in
// RequireAdminJSON, so an unauthenticated request never reaches this handler.
// Responses are structured JSON: 201 on success, 400 for a missing or invalid
// file, 413 when the payload exceeds the configured ceiling.
func (h *Handlers) AddPhoto(w http.ResponseWriter, r *http.Request) {
	// Enforce the upload ceiling before anything is written to disk.
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadBytes)

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondWithError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Upload exceeds the %d byte limit", h.Cfg.MaxUploadBytes))
			return
		}
		respondWithError(w, http.StatusBadRequest, "Failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	form := services.PhotoForm{
		Title:       r.FormValue("title"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
		Featured:    r.FormValue("featured") == "true",
	}

	photo, err := h.GallerySvc.AddPhoto(file, header, form)
	if err != nil {
		if errors.Is(err, services.ErrUnsupported) {
			respondWithError(w, http.StatusBadRequest, "Invalid file type")
			return
		}
		if errors.Is(err, services.ErrValidation) {
			respondWithError(w, http.StatusBadRequest, "No file uploaded")
			return
		}
		logging.Log.Errorf("AddPhoto: upload failed: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to store photo")
		return
	}

	actor := ""
	if adminID, ok := auth.AdminID(r.Context()); ok {
		actor = fmt.Sprintf("%d", adminID)
	}
	h.Auditor.Log(r.Context(), "gallery.upload", actor, fmt.Sprintf("photo:%d", photo.ID), map[string]interface{}{
		"filename": header.Filename,
		"size":     header.Size,
		"featured": photo.Featured,
	})

	respondWithJSON(w, http.StatusCreated, UploadResponse{
		Success:  true,
		Message:  "Photo uploaded successfully",
		ID:       photo.ID,
		ImageURL: photo.ImageURL,
	})
}
