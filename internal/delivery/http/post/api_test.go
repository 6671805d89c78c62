package post_http

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"mymessages-post-service/internal/delivery/http/middleware"
	"mymessages-post-service/internal/logger"
	post_service "mymessages-post-service/internal/service/post"
	"mymessages-post-service/internal/storage"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T, svc post_service.Service, files storage.FileStorage) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.New("test")
	router := gin.New()
	api := NewPostHTTPService(svc, files, log)
	api.RegisterRoutes(router, middleware.Auth(testSecret, log))
	return router
}

func bearerToken(t *testing.T, userID int64) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

// multipartBody assembles a form with the given text fields and, when
// fileName is non-empty, an image part carrying contentType.
func multipartBody(t *testing.T, fields map[string]string, fileName, contentType string) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if fileName != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="image"; filename="`+fileName+`"`)
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("image bytes"))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}
