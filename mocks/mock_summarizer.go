package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sortsense/internal/domain"
)

// MockSummarizer is a mock implementation of port.Summarizer.
type MockSummarizer struct {
	mock.Mock
}

func (m *MockSummarizer) Tip(ctx context.Context, label string, route domain.Route) (string, error) {
	args := m.Called(ctx, label, route)
	return args.String(0), args.Error(1)
}

func (m *MockSummarizer) KpiSummary(ctx context.Context, kpis domain.Kpis) (string, error) {
	args := m.Called(ctx, kpis)
	return args.String(0), args.Error(1)
}
