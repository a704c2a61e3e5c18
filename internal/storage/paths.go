// filepath: internal/storage/paths.go
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Subdirectories of the uploads root.
const (
	GalleryDir  = "gallery"
	ThumbsDir   = "gallery/thumbs"
	PackagesDir = "packages"
)

// unsafeFilenameChars matches everything that is not a safe filename character.
var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// EnsureUploadDirs creates the fixed upload subdirectories under root.
func EnsureUploadDirs(root string) error {
	for _, sub := range []string{GalleryDir, ThumbsDir, PackagesDir} {
		if err := os.MkdirAll(filepath.Join(root, sub), 0755); err != nil {
			return fmt.Errorf("could not create upload directory %s: %w", sub, err)
		}
	}
	return nil
}

// SanitizeFilename strips path components and metacharacters from an
// uploaded filename, leaving only [a-zA-Z0-9._-]. The extension is preserved.
func SanitizeFilename(name string) string {
	// Drop any directory components, from either path flavour.
	name = filepath.Base(name)
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "upload"
	}
	return name
}

// UploadPath joins root, a fixed subdirectory and a filename, guarding
// against path traversal.
func UploadPath(root, sub, filename string) (string, error) {
	dir := filepath.Join(root, sub)
	full := filepath.Clean(filepath.Join(dir, filename))

	// --- SECURITY: Prevent Path Traversal ---
	cleanedDir := filepath.Clean(dir)
	if !strings.HasPrefix(full, cleanedDir+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid path: potential path traversal")
	}

	return full, nil
}
