// filepath: internal/services/gallery_service.go
package services

import (
	"database/sql"
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"strings"
	"studiohub/internal/config"
	"studiohub/internal/logging"
	"studiohub/internal/media"
	"studiohub/internal/models"
	"studiohub/internal/repository"
	"studiohub/internal/storage"

	"github.com/oklog/ulid/v2"
)

// allowedExtensions is the image extension whitelist, matched case-insensitively.
var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

var _ GalleryService = (*galleryService)(nil)

// galleryService implements GalleryService.
type galleryService struct {
	Repo *repository.Repository
	Cfg  *config.Config
}

// NewGalleryService creates a new GalleryService.
func NewGalleryService(repo *repository.Repository, cfg *config.Config) *galleryService {
	return &galleryService{Repo: repo, Cfg: cfg}
}

// AllowedFile reports whether a filename carries one of the accepted image
// extensions. Filenames without an extension are rejected.
func AllowedFile(filename string) bool {
	i := strings.LastIndex(filename, ".")
	if i < 0 || i == len(filename)-1 {
		return false
	}
	return allowedExtensions[strings.ToLower(filename[i+1:])]
}

// AddPhoto validates an upload, saves the file (plus a best-effort thumbnail)
// under the gallery uploads directory and records the GalleryPhoto row.
// On a database failure the saved files are removed again, so a failed upload
// leaves no partial state.
func (s *galleryService) AddPhoto(file multipart.File, header *multipart.FileHeader, form PhotoForm) (*models.GalleryPhoto, error) {
	if header == nil || header.Filename == "" {
		return nil, fmt.Errorf("%w: no file uploaded", ErrValidation)
	}
	if !AllowedFile(header.Filename) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, header.Filename)
	}

	// A ULID prefix keeps concurrent uploads of the same filename from
	// colliding; the sanitized original name is kept for operators.
	filename := fmt.Sprintf("%s_%s", ulid.Make().String(), storage.SanitizeFilename(header.Filename))

	filePath, err := storage.UploadPath(s.Cfg.Uploads.Root, storage.GalleryDir, filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	size, err := storage.SaveFile(file, filePath)
	if err != nil {
		return nil, fmt.Errorf("could not save upload: %w", err)
	}
	logging.Log.Debugf("Saved gallery upload %s (%d bytes)", filename, size)

	// Thumbnail generation is best-effort: the gallery falls back to the
	// full image when no thumbnail exists.
	thumbURL := sql.NullString{}
	thumbName := strings.TrimSuffix(filename, path.Ext(filename)) + ".jpg"
	thumbPath, err := storage.UploadPath(s.Cfg.Uploads.Root, storage.ThumbsDir, thumbName)
	if err == nil {
		if _, seekErr := file.Seek(0, 0); seekErr == nil {
			if thumbErr := media.CreateThumbnail(file, thumbPath); thumbErr != nil {
				logging.Log.Warnf("Could not create thumbnail for %s: %v", filename, thumbErr)
			} else {
				thumbURL = sql.NullString{String: s.publicURL(storage.ThumbsDir, thumbName), Valid: true}
			}
		}
	}

	photo := &models.GalleryPhoto{
		Title:       strings.TrimSpace(form.Title),
		ImageURL:    s.publicURL(storage.GalleryDir, filename),
		ThumbURL:    thumbURL,
		Description: form.Description,
		Featured:    form.Featured,
	}
	if c := strings.TrimSpace(form.Category); c != "" {
		photo.Category = sql.NullString{String: c, Valid: true}
	}

	created, err := s.Repo.CreatePhoto(photo)
	if err != nil {
		// Roll the file writes back so no orphaned upload remains.
		os.Remove(filePath)
		if thumbURL.Valid {
			os.Remove(thumbPath)
		}
		return nil, fmt.Errorf("could not record photo: %w", err)
	}

	return created, nil
}

// publicURL builds the URL the saved file is served under.
func (s *galleryService) publicURL(sub, filename string) string {
	return path.Join(s.Cfg.Uploads.PublicPrefix, sub, filename)
}
