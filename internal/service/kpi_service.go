package service

import (
	"context"
	"fmt"
	"log"

	"sortsense/internal/domain"
	"sortsense/internal/port"
)

// KpiService serves the aggregate KPI view and the dev-only reset.
type KpiService interface {
	GetKpis(ctx context.Context) (*domain.Kpis, error)
	Reset(ctx context.Context) (*domain.Kpis, error)
}

type kpiService struct {
	store      port.EventStore
	summarizer port.Summarizer
}

// NewKpiService creates a new KpiService implementation.
func NewKpiService(store port.EventStore, summarizer port.Summarizer) KpiService {
	return &kpiService{store: store, summarizer: summarizer}
}

func (s *kpiService) GetKpis(ctx context.Context) (*domain.Kpis, error) {
	kpis, err := s.store.GetKpis(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAggregationFailed, err)
	}

	// Summary is decoration: a generation failure never blocks the numbers.
	summary, err := s.summarizer.KpiSummary(ctx, *kpis)
	if err != nil {
		log.Printf("kpiService.GetKpis: summary generation failed: %v", err)
	} else {
		kpis.Summary = summary
	}

	return kpis, nil
}

func (s *kpiService) Reset(ctx context.Context) (*domain.Kpis, error) {
	if err := s.store.Reset(ctx); err != nil {
		return nil, err
	}
	kpis, err := s.store.GetKpis(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAggregationFailed, err)
	}
	return kpis, nil
}
