package domain

import (
	"fmt"
	"slices"
)

// Image content types accepted for destination photos and avatars.
var imageTypes = []string{"image/jpeg", "image/png", "image/webp"}

// CheckImage returns a form message describing why an uploaded image is
// rejected, or "" when it is acceptable.
func CheckImage(contentType string, size, maxBytes int) string {
	switch {
	case size == 0:
		return "berkas kosong"
	case size > maxBytes:
		return fmt.Sprintf("ukuran maksimal %d MB", maxBytes>>20)
	case !slices.Contains(imageTypes, contentType):
		return "format harus JPG, PNG, atau WEBP"
	default:
		return ""
	}
}
