// Package export renders KPI snapshots as Excel workbooks for
// facilities-ops reporting.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"sortsense/internal/domain"
)

const sheetName = "KPIs"

// WriteKpiWorkbook renders the KPI snapshot as an xlsx workbook on w.
func WriteKpiWorkbook(w io.Writer, kpis domain.Kpis) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Recycle (kg)", kpis.RecycleKg},
		{"Compost (kg)", kpis.CompostKg},
		{"Landfill (kg)", kpis.LandfillKg},
		{"Diversion rate", kpis.DiversionRate},
		{"Generated at", time.Now().UTC().Format(time.RFC3339)},
	}
	if kpis.Summary != "" {
		rows = append(rows, []interface{}{"Summary", kpis.Summary})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell name for row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
