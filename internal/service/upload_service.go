package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"sortsense/internal/config"
	"sortsense/internal/domain"
	"sortsense/internal/port"
)

// UploadInput is the DTO for upload requests on either endpoint.
type UploadInput struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// ImageUploadResult carries the classification outcome back to the handler.
// Warning is set when the response succeeded but the warehouse write did not.
type ImageUploadResult struct {
	Items   []domain.ClassifiedItem `json:"items"`
	S3Key   string                  `json:"s3_key,omitempty"`
	Warning string                  `json:"warning,omitempty"`
}

// UploadService defines the image upload-classify-record contract.
type UploadService interface {
	UploadImage(ctx context.Context, input UploadInput) (*ImageUploadResult, error)
}

type uploadService struct {
	classifier port.Classifier
	summarizer port.Summarizer
	store      port.EventStore
	storage    port.ObjectStorage
	cfg        *config.S3Config
}

// NewUploadService creates a new UploadService implementation.
func NewUploadService(
	classifier port.Classifier,
	summarizer port.Summarizer,
	store port.EventStore,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) UploadService {
	return &uploadService{
		classifier: classifier,
		summarizer: summarizer,
		store:      store,
		storage:    storage,
		cfg:        cfg,
	}
}

func (s *uploadService) UploadImage(ctx context.Context, input UploadInput) (*ImageUploadResult, error) {
	data, err := readUpload(input, s.cfg.MaxFileSizeMB, domain.AllowedImageContentTypes)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("waste/%d_%s", time.Now().Unix(), input.Header.Filename)
	if err := archiveUpload(ctx, s.storage, s.cfg.Bucket, key, data, input.Header); err != nil {
		return nil, err
	}

	items, err := s.classifier.Classify(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrClassificationFailed, err)
	}

	for i := range items {
		tip, tipErr := s.summarizer.Tip(ctx, items[i].Label, items[i].Route)
		if tipErr != nil {
			log.Printf("uploadService.UploadImage: tip generation failed for %s: %v", items[i].Label, tipErr)
			continue
		}
		items[i].Tip = tip
	}

	result := &ImageUploadResult{Items: items, S3Key: key}

	events := make([]domain.WasteEvent, 0, len(items))
	now := time.Now().UTC()
	for _, item := range items {
		meta, _ := json.Marshal(map[string]interface{}{
			"label":  item.Label,
			"s3_key": key,
			"tip":    item.Tip,
		})
		events = append(events, domain.WasteEvent{
			EventID:     uuid.New(),
			Timestamp:   now,
			Source:      domain.SourceImage,
			Label:       item.Label,
			Route:       item.Route,
			Confidence:  item.Confidence,
			EstWeightKg: item.EstWeightKg,
			Metadata:    string(meta),
		})
	}

	if err := s.store.RecordWasteEvents(ctx, events); err != nil {
		// Classification already succeeded; surface the write failure
		// without discarding the result.
		log.Printf("uploadService.UploadImage: %v: %v", domain.ErrPersistenceFailed, err)
		result.Warning = "classification succeeded but event recording failed"
	}

	return result, nil
}

// readUpload validates and fully reads a multipart upload. The detected
// content type must be allowed for the endpoint; callers pick the map.
func readUpload(input UploadInput, maxSizeMB int64, allowed map[string]domain.FileType) ([]byte, error) {
	if input.Header.Size == 0 {
		return nil, domain.ErrEmptyFile
	}
	maxBytes := maxSizeMB * 1024 * 1024
	if maxBytes > 0 && input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	data, err := io.ReadAll(input.File)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if len(data) == 0 {
		return nil, domain.ErrEmptyFile
	}

	detected := http.DetectContentType(data[:min(len(data), 512)])
	if _, ok := allowed[detected]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	return data, nil
}

func archiveUpload(ctx context.Context, storage port.ObjectStorage, bucket, key string, data []byte, header *multipart.FileHeader) error {
	_, err := storage.Upload(ctx, port.UploadInput{
		Bucket:      bucket,
		Key:         key,
		Body:        bytes.NewReader(data),
		ContentType: header.Header.Get("Content-Type"),
		Size:        int64(len(data)),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrArchiveFailed, err)
	}
	return nil
}
