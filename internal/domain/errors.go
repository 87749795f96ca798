package domain

import "errors"

var (
	ErrEmptyFile            = errors.New("uploaded file is empty")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrClassificationFailed = errors.New("image classification failed")
	ErrInvoiceParseFailed   = errors.New("invoice parsing failed")
	ErrPersistenceFailed    = errors.New("event write to warehouse failed")
	ErrAggregationFailed    = errors.New("kpi aggregation query failed")
	ErrArchiveFailed        = errors.New("upload archive to storage failed")
	ErrResetUnavailable     = errors.New("kpi reset is unavailable against the warehouse")
)
