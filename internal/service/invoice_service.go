package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"sortsense/internal/config"
	"sortsense/internal/domain"
	"sortsense/internal/port"
)

// InvoiceUploadResult carries the extraction outcome back to the handler.
type InvoiceUploadResult struct {
	Parsed  *domain.ParsedInvoice `json:"parsed"`
	S3Key   string                `json:"s3_key,omitempty"`
	Warning string                `json:"warning,omitempty"`
}

// InvoiceService defines the invoice upload-parse-record contract.
type InvoiceService interface {
	UploadInvoice(ctx context.Context, input UploadInput) (*InvoiceUploadResult, error)
}

type invoiceService struct {
	parser  port.InvoiceParser
	store   port.EventStore
	storage port.ObjectStorage
	cfg     *config.S3Config
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	parser port.InvoiceParser,
	store port.EventStore,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) InvoiceService {
	return &invoiceService{
		parser:  parser,
		store:   store,
		storage: storage,
		cfg:     cfg,
	}
}

func (s *invoiceService) UploadInvoice(ctx context.Context, input UploadInput) (*InvoiceUploadResult, error) {
	data, err := readUpload(input, s.cfg.MaxFileSizeMB, domain.AllowedInvoiceContentTypes)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("invoices/%d_%s", time.Now().Unix(), input.Header.Filename)
	if err := archiveUpload(ctx, s.storage, s.cfg.Bucket, key, data, input.Header); err != nil {
		return nil, err
	}

	parsed, err := s.parser.Parse(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvoiceParseFailed, err)
	}

	result := &InvoiceUploadResult{Parsed: parsed, S3Key: key}

	if err := s.store.RecordInvoiceLines(ctx, parsed.Lines); err != nil {
		log.Printf("invoiceService.UploadInvoice: %v: %v", domain.ErrPersistenceFailed, err)
		result.Warning = "invoice parsed but line recording failed"
	}

	return result, nil
}
