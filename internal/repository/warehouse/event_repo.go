package warehouse

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"sortsense/internal/domain"
	"sortsense/internal/port"
)

type eventRepo struct {
	db *sqlx.DB
}

// NewEventStore creates a warehouse-backed EventStore.
func NewEventStore(db *sqlx.DB) port.EventStore {
	return &eventRepo{db: db}
}

const insertWasteEventQueryPostgres = `INSERT INTO waste_events
	(event_id, ts, source, label, route, confidence, est_weight_kg, metadata)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

// Snowflake will not assign a VARCHAR bind to the VARIANT metadata column,
// and PARSE_JSON is not allowed in a VALUES clause, so the snowflake insert
// goes through SELECT.
const insertWasteEventQuerySnowflake = `INSERT INTO waste_events
	(event_id, ts, source, label, route, confidence, est_weight_kg, metadata)
	SELECT ?, ?, ?, ?, ?, ?, ?, PARSE_JSON(?)`

func insertWasteEventQuery(driver string) string {
	if driver == "snowflake" {
		return insertWasteEventQuerySnowflake
	}
	return insertWasteEventQueryPostgres
}

const insertInvoiceLineQuery = `INSERT INTO invoice_lines
	(invoice_id, period, vendor, line_type, weight_kg, cost_usd, ts)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

// kpiQuery reads the derived totals view. Diversion rate is recomputed in
// Go so the [0,1] invariant holds even if the view definition drifts.
const kpiQuery = `SELECT
	COALESCE(recycle_kg, 0) AS recycle_kg,
	COALESCE(compost_kg, 0) AS compost_kg,
	COALESCE(landfill_kg, 0) AS landfill_kg
	FROM view_kpis`

func (r *eventRepo) RecordWasteEvents(ctx context.Context, events []domain.WasteEvent) error {
	q := r.db.Rebind(insertWasteEventQuery(r.db.DriverName()))
	for _, e := range events {
		if _, err := r.db.ExecContext(ctx, q,
			e.EventID, e.Timestamp, e.Source, e.Label, e.Route,
			e.Confidence, e.EstWeightKg, e.Metadata,
		); err != nil {
			return fmt.Errorf("eventRepo.RecordWasteEvents %s: %w", e.EventID, err)
		}
	}
	return nil
}

func (r *eventRepo) RecordInvoiceLines(ctx context.Context, lines []domain.InvoiceLine) error {
	q := r.db.Rebind(insertInvoiceLineQuery)
	for _, l := range lines {
		if _, err := r.db.ExecContext(ctx, q,
			l.InvoiceID, l.Period, l.Vendor, l.LineType,
			l.WeightKg, l.CostUSD, l.Timestamp,
		); err != nil {
			return fmt.Errorf("eventRepo.RecordInvoiceLines %s: %w", l.InvoiceID, err)
		}
	}
	return nil
}

func (r *eventRepo) GetKpis(ctx context.Context) (*domain.Kpis, error) {
	var kpis domain.Kpis
	if err := r.db.GetContext(ctx, &kpis, kpiQuery); err != nil {
		return nil, fmt.Errorf("eventRepo.GetKpis: %w", err)
	}
	kpis.DiversionRate = domain.DiversionRate(kpis.RecycleKg, kpis.CompostKg, kpis.LandfillKg)
	return &kpis, nil
}

// Reset is unavailable against the warehouse: persisted rows are
// historical and never deleted.
func (r *eventRepo) Reset(_ context.Context) error {
	return domain.ErrResetUnavailable
}
