package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sortsense/internal/domain"
)

// MockClassifier is a mock implementation of port.Classifier.
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, imageBytes []byte) ([]domain.ClassifiedItem, error) {
	args := m.Called(ctx, imageBytes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClassifiedItem), args.Error(1)
}
