package domain

import (
	"time"

	"github.com/google/uuid"
)

// ClassifiedItem is one waste item recognized in an uploaded image.
// Immutable after creation; Tip is filled in best-effort and may be empty.
type ClassifiedItem struct {
	Label       string  `json:"label"`
	Route       Route   `json:"route"`
	Confidence  float64 `json:"confidence,omitempty"`
	EstWeightKg float64 `json:"est_weight_kg,omitempty"`
	Tip         string  `json:"tip,omitempty"`
}

// InvoiceLine is one extracted hauler invoice line.
type InvoiceLine struct {
	InvoiceID uuid.UUID `json:"invoice_id" db:"invoice_id"`
	Period    string    `json:"period" db:"period"`
	Vendor    string    `json:"vendor" db:"vendor"`
	LineType  string    `json:"line_type" db:"line_type"`
	WeightKg  float64   `json:"weight_kg" db:"weight_kg"`
	CostUSD   float64   `json:"cost_usd" db:"cost_usd"`
	Timestamp time.Time `json:"ts" db:"ts"`
}

// ParsedInvoice groups the lines extracted from a single invoice PDF.
type ParsedInvoice struct {
	InvoiceID uuid.UUID     `json:"invoice_id"`
	Period    string        `json:"period"`
	Vendor    string        `json:"vendor"`
	Lines     []InvoiceLine `json:"lines"`
}

// WasteEvent is the persisted, append-only warehouse row for a classified item.
type WasteEvent struct {
	EventID     uuid.UUID   `json:"event_id" db:"event_id"`
	Timestamp   time.Time   `json:"ts" db:"ts"`
	Source      EventSource `json:"source" db:"source"`
	Label       string      `json:"label" db:"label"`
	Route       Route       `json:"route" db:"route"`
	Confidence  float64     `json:"confidence" db:"confidence"`
	EstWeightKg float64     `json:"est_weight_kg" db:"est_weight_kg"`
	Metadata    string      `json:"metadata,omitempty" db:"metadata"`
}

// Kpis is a pure view over accumulated waste events, recomputed per request.
type Kpis struct {
	RecycleKg     float64 `json:"recycle_kg" db:"recycle_kg"`
	CompostKg     float64 `json:"compost_kg" db:"compost_kg"`
	LandfillKg    float64 `json:"landfill_kg" db:"landfill_kg"`
	DiversionRate float64 `json:"diversion_rate" db:"diversion_rate"`
	Summary       string  `json:"summary,omitempty" db:"-"`
}

// DiversionRate computes the fraction of tracked weight kept out of landfill.
// Returns 0 when nothing has been tracked.
func DiversionRate(recycleKg, compostKg, landfillKg float64) float64 {
	diverted := recycleKg + compostKg
	total := diverted + landfillKg
	if total == 0 {
		return 0
	}
	return diverted / total
}
