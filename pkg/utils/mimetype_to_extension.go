package utils

import "strings"

// mimeTypeToExtension maps the image MIME types thumbnails may arrive as to
// their usual file extensions.
var mimeTypeToExtension = map[string]string{
	"image/avif":    ".avif",
	"image/bmp":     ".bmp",
	"image/gif":     ".gif",
	"image/heic":    ".heic",
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/svg+xml": ".svg",
	"image/tiff":    ".tif",
	"image/webp":    ".webp",
	"image/x-icon":  ".ico",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME
// type, defaulting to ".bin" when none is known.
func GetExtensionFromMimeType(mimeType string) string {
	// Remove parameters if present (e.g. "image/svg+xml; charset=utf-8")
	cleaned := strings.Split(mimeType, ";")[0]
	if ext, ok := mimeTypeToExtension[strings.TrimSpace(cleaned)]; ok {
		return ext
	}

	return ".bin"
}
