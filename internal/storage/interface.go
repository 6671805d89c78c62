package storage

import (
	"context"
	"io"
)

//go:generate mockery --name FileStorage --dir . --output ../../mocks/storage --outpkg mocks --filename FileStorage.go
type FileStorage interface {
	// Save persists the file under name and must succeed before any record
	// referencing the file is written.
	Save(ctx context.Context, name string, r io.Reader) error
	Remove(ctx context.Context, name string) error
}
