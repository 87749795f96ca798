// Package memory holds the local-mode event store: running per-route
// totals guarded by a mutex, so the KPI view works without a warehouse.
package memory

import (
	"context"
	"sync"

	"sortsense/internal/domain"
	"sortsense/internal/port"
)

// EventStore implements port.EventStore in process memory. Each record
// call applies all of its rows inside one critical section, so concurrent
// uploads never lose increments.
type EventStore struct {
	mu sync.Mutex

	recycleKg  float64
	compostKg  float64
	landfillKg float64

	events []domain.WasteEvent
	lines  []domain.InvoiceLine
}

// NewEventStore creates an empty in-memory event store.
func NewEventStore() *EventStore {
	return &EventStore{}
}

var _ port.EventStore = (*EventStore)(nil)

func (s *EventStore) RecordWasteEvents(_ context.Context, events []domain.WasteEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range events {
		switch e.Route {
		case domain.RouteRecycle:
			s.recycleKg += e.EstWeightKg
		case domain.RouteCompost:
			s.compostKg += e.EstWeightKg
		case domain.RouteLandfill:
			s.landfillKg += e.EstWeightKg
		}
	}
	s.events = append(s.events, events...)
	return nil
}

func (s *EventStore) RecordInvoiceLines(_ context.Context, lines []domain.InvoiceLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, lines...)
	return nil
}

func (s *EventStore) GetKpis(_ context.Context) (*domain.Kpis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &domain.Kpis{
		RecycleKg:     s.recycleKg,
		CompostKg:     s.compostKg,
		LandfillKg:    s.landfillKg,
		DiversionRate: domain.DiversionRate(s.recycleKg, s.compostKg, s.landfillKg),
	}, nil
}

// Reset zeroes the counters and drops recorded rows. Only meaningful in
// local/dev mode.
func (s *EventStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recycleKg = 0
	s.compostKg = 0
	s.landfillKg = 0
	s.events = nil
	s.lines = nil
	return nil
}

// EventCount reports how many waste events have been recorded.
func (s *EventStore) EventCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}
