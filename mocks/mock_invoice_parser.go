package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sortsense/internal/domain"
)

// MockInvoiceParser is a mock implementation of port.InvoiceParser.
type MockInvoiceParser struct {
	mock.Mock
}

func (m *MockInvoiceParser) Parse(ctx context.Context, pdfBytes []byte) (*domain.ParsedInvoice, error) {
	args := m.Called(ctx, pdfBytes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParsedInvoice), args.Error(1)
}
