package disk

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"mymessages-post-service/internal/custom_errors"
	"mymessages-post-service/internal/logger"
	"mymessages-post-service/internal/storage"
)

type FileStorage struct {
	root string
	log  *logger.Logger
}

func NewFileStorage(root string, log *logger.Logger) (storage.FileStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		log.Error("Failed to create storage directory",
			slog.String("root", root),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrFileStorage
	}
	return &FileStorage{root: root, log: log}, nil
}

func (s *FileStorage) Save(ctx context.Context, name string, r io.Reader) error {
	path := filepath.Join(s.root, filepath.Base(name))

	f, err := os.Create(path)
	if err != nil {
		s.log.Error("Failed to create file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return custom_errors.ErrFileStorage
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		s.log.Error("Failed to write file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return custom_errors.ErrFileStorage
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		s.log.Error("Failed to close file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return custom_errors.ErrFileStorage
	}

	return nil
}

func (s *FileStorage) Remove(ctx context.Context, name string) error {
	path := filepath.Join(s.root, filepath.Base(name))
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		s.log.Error("Failed to remove file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return custom_errors.ErrFileStorage
	}
	return nil
}
