package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortsense/internal/domain"
	"sortsense/internal/repository/memory"
)

func sampleEvents() []domain.WasteEvent {
	return []domain.WasteEvent{
		{EventID: uuid.New(), Source: domain.SourceImage, Label: "plastic_bottle", Route: domain.RouteRecycle, EstWeightKg: 0.03},
		{EventID: uuid.New(), Source: domain.SourceImage, Label: "aluminum_can", Route: domain.RouteRecycle, EstWeightKg: 0.015},
		{EventID: uuid.New(), Source: domain.SourceImage, Label: "pizza_box_greasy", Route: domain.RouteLandfill, EstWeightKg: 0.4},
	}
}

func TestEventStore_RecordAndAggregate(t *testing.T) {
	store := memory.NewEventStore()
	require.NoError(t, store.RecordWasteEvents(context.Background(), sampleEvents()))

	kpis, err := store.GetKpis(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 0.045, kpis.RecycleKg, 1e-9)
	assert.Equal(t, 0.0, kpis.CompostKg)
	assert.InDelta(t, 0.4, kpis.LandfillKg, 1e-9)
	assert.Greater(t, kpis.LandfillKg, 0.0)
	assert.Less(t, kpis.DiversionRate, 1.0)
	assert.InDelta(t, 0.045/0.445, kpis.DiversionRate, 1e-9)
}

func TestEventStore_EmptyKpis(t *testing.T) {
	store := memory.NewEventStore()

	kpis, err := store.GetKpis(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0.0, kpis.RecycleKg)
	assert.Equal(t, 0.0, kpis.CompostKg)
	assert.Equal(t, 0.0, kpis.LandfillKg)
	assert.Equal(t, 0.0, kpis.DiversionRate)
}

func TestEventStore_Reset(t *testing.T) {
	store := memory.NewEventStore()
	require.NoError(t, store.RecordWasteEvents(context.Background(), sampleEvents()))
	require.NoError(t, store.Reset(context.Background()))

	kpis, err := store.GetKpis(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0.0, kpis.RecycleKg)
	assert.Equal(t, 0.0, kpis.CompostKg)
	assert.Equal(t, 0.0, kpis.LandfillKg)
	assert.Equal(t, 0.0, kpis.DiversionRate)
	assert.Equal(t, 0, store.EventCount())
}

func TestEventStore_ConcurrentRecordsNoLostUpdates(t *testing.T) {
	store := memory.NewEventStore()

	const uploads = 50
	var wg sync.WaitGroup
	for i := 0; i < uploads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.RecordWasteEvents(context.Background(), sampleEvents())
		}()
	}
	wg.Wait()

	kpis, err := store.GetKpis(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, uploads*0.045, kpis.RecycleKg, 1e-9)
	assert.InDelta(t, uploads*0.4, kpis.LandfillKg, 1e-9)
	assert.Equal(t, uploads*3, store.EventCount())
}

func TestEventStore_RecordInvoiceLines(t *testing.T) {
	store := memory.NewEventStore()
	lines := []domain.InvoiceLine{
		{InvoiceID: uuid.New(), Period: "2025-09", Vendor: "GreenCity", LineType: "recycling", WeightKg: 520, CostUSD: 180},
	}
	require.NoError(t, store.RecordInvoiceLines(context.Background(), lines))

	// Invoice lines don't feed the event KPIs.
	kpis, err := store.GetKpis(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, kpis.RecycleKg)
}
