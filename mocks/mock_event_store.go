package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sortsense/internal/domain"
)

// MockEventStore is a mock implementation of port.EventStore.
type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) RecordWasteEvents(ctx context.Context, events []domain.WasteEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockEventStore) RecordInvoiceLines(ctx context.Context, lines []domain.InvoiceLine) error {
	args := m.Called(ctx, lines)
	return args.Error(0)
}

func (m *MockEventStore) GetKpis(ctx context.Context) (*domain.Kpis, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Kpis), args.Error(1)
}

func (m *MockEventStore) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
