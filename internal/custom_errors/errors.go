package custom_errors

import "errors"

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrForbidden      = errors.New("access denied")
	ErrPostValidation = errors.New("post validation failed")

	ErrDatabaseQuery = errors.New("database query error")
	ErrDatabaseScan  = errors.New("database scan error")

	ErrCacheMiss = errors.New("cache miss")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFileStorage          = errors.New("file storage error")

	ErrInvalidToken = errors.New("invalid token")
)
