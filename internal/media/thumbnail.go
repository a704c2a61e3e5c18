// filepath: internal/media/thumbnail.go
// Package media generates JPEG thumbnails for gallery uploads.
package media

import (
	"fmt"
	"image"
	"image/jpeg"

	// Import decoders for common formats
	_ "image/gif"
	_ "image/png"
	"io"
	"os"

	"github.com/nfnt/resize"
)

// ThumbMaxSide defines the bounding box for gallery thumbnails.
// The aspect ratio is maintained.
const ThumbMaxSide = 400

// CreateThumbnail decodes an image and writes a JPEG thumbnail scaled to fit
// within a ThumbMaxSide bounding box. Formats without a registered decoder
// (e.g. webp) return an error; callers treat thumbnails as best-effort.
func CreateThumbnail(imageData io.Reader, thumbPath string) error {
	img, _, err := image.Decode(imageData)
	if err != nil {
		return fmt.Errorf("could not decode image for thumbnail: %w", err)
	}

	// Thumbnail never scales up.
	thumb := resize.Thumbnail(ThumbMaxSide, ThumbMaxSide, img, resize.Lanczos3)

	f, err := os.Create(thumbPath)
	if err != nil {
		return fmt.Errorf("could not create thumbnail file: %w", err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, thumb, &jpeg.Options{Quality: 75}); err != nil {
		os.Remove(thumbPath) // Clean up failed write
		return fmt.Errorf("failed to encode thumbnail to jpeg: %w", err)
	}

	return nil
}
