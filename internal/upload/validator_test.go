package upload

import (
	"fmt"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mymessages-post-service/internal/custom_errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		wantExt  string
		wantErr  error
	}{
		{
			name:     "png",
			mimeType: "image/png",
			wantExt:  "png",
		},
		{
			name:     "jpeg",
			mimeType: "image/jpeg",
			wantExt:  "jpg",
		},
		{
			name:     "jpg",
			mimeType: "image/jpg",
			wantExt:  "jpg",
		},
		{
			name:     "bmp rejected",
			mimeType: "image/bmp",
			wantErr:  custom_errors.ErrUnsupportedMediaType,
		},
		{
			name:     "gif rejected",
			mimeType: "image/gif",
			wantErr:  custom_errors.ErrUnsupportedMediaType,
		},
		{
			name:     "empty rejected",
			mimeType: "",
			wantErr:  custom_errors.ErrUnsupportedMediaType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := Classify(tt.mimeType)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, ext)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantExt, ext)
			}
		})
	}
}

func TestStorageName(t *testing.T) {
	t.Run("NormalizesAndAppendsTimestamp", func(t *testing.T) {
		before := time.Now().UnixMilli()
		name := StorageName("My Holiday Photo.png", "png")
		after := time.Now().UnixMilli()

		re := regexp.MustCompile(`^my-holiday-photo\.png-(\d+)\.png$`)
		matches := re.FindStringSubmatch(name)
		require.NotNil(t, matches, "unexpected name %q", name)

		ts, err := strconv.ParseInt(matches[1], 10, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, ts, before)
		assert.LessOrEqual(t, ts, after)
	})

	t.Run("StripsDirectoryComponents", func(t *testing.T) {
		name := StorageName("../../etc/passwd", "png")
		assert.Regexp(t, `^passwd-\d+\.png$`, name)
	})

	t.Run("CollapsesWhitespaceRuns", func(t *testing.T) {
		name := StorageName("a  b\tc.jpg", "jpg")
		assert.Regexp(t, `^a-b-c\.jpg-\d+\.jpg$`, name)
	})

	t.Run("ExtensionComesFromClassify", func(t *testing.T) {
		ext, err := Classify("image/png")
		require.NoError(t, err)
		name := StorageName("shot.jpeg", ext)
		assert.Regexp(t, fmt.Sprintf(`\.%s$`, ext), name)
	})
}
