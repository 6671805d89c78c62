package upload

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"mymessages-post-service/internal/custom_errors"
)

// mimeTypes maps the declared content types accepted for post images to the
// extension their stored file gets. Everything else is rejected before any
// byte is written.
var mimeTypes = map[string]string{
	"image/png":  "png",
	"image/jpg":  "jpg",
	"image/jpeg": "jpg",
}

func Classify(mimeType string) (string, error) {
	ext, ok := mimeTypes[mimeType]
	if !ok {
		return "", custom_errors.ErrUnsupportedMediaType
	}
	return ext, nil
}

// StorageName derives the stored filename: the normalized original name, the
// upload timestamp in milliseconds and the extension Classify produced.
// Timestamping keeps names collision-resistant without a name registry.
func StorageName(originalName string, ext string) string {
	return fmt.Sprintf("%s-%d.%s", normalize(originalName), time.Now().UnixMilli(), ext)
}

func normalize(name string) string {
	name = filepath.Base(name)
	name = strings.ToLower(name)
	return strings.Join(strings.Fields(name), "-")
}
