// Package noop provides the local-mode object storage: uploads are
// acknowledged without being stored anywhere.
package noop

import (
	"context"

	"sortsense/internal/port"
)

// Storage implements port.ObjectStorage by discarding the object.
type Storage struct{}

// NewStorage creates the no-op storage.
func NewStorage() *Storage {
	return &Storage{}
}

func (s *Storage) Upload(_ context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	return &port.UploadOutput{Location: "local://" + input.Key}, nil
}
