package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sortsense/internal/domain"
	"sortsense/internal/service"
)

// MockUploadService is a mock implementation of service.UploadService.
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) UploadImage(ctx context.Context, input service.UploadInput) (*service.ImageUploadResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImageUploadResult), args.Error(1)
}

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) UploadInvoice(ctx context.Context, input service.UploadInput) (*service.InvoiceUploadResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InvoiceUploadResult), args.Error(1)
}

// MockKpiService is a mock implementation of service.KpiService.
type MockKpiService struct {
	mock.Mock
}

func (m *MockKpiService) GetKpis(ctx context.Context) (*domain.Kpis, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Kpis), args.Error(1)
}

func (m *MockKpiService) Reset(ctx context.Context) (*domain.Kpis, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Kpis), args.Error(1)
}
