package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortsense/internal/invoice"
)

const sampleInvoiceText = `Recycling 520 kg $180
Landfill 260 kg $210
Compost 140 kg $90
Period 2025-09 Vendor GreenCity`

func TestParseText_FullInvoice(t *testing.T) {
	parsed, err := invoice.ParseText(sampleInvoiceText)
	require.NoError(t, err)

	assert.Equal(t, "2025-09", parsed.Period)
	assert.Equal(t, "GreenCity", parsed.Vendor)
	require.Len(t, parsed.Lines, 3)

	byType := map[string][2]float64{}
	for _, l := range parsed.Lines {
		assert.Equal(t, parsed.InvoiceID, l.InvoiceID)
		assert.Equal(t, "2025-09", l.Period)
		byType[l.LineType] = [2]float64{l.WeightKg, l.CostUSD}
	}
	assert.Equal(t, [2]float64{520, 180}, byType["recycling"])
	assert.Equal(t, [2]float64{140, 90}, byType["compost"])
	assert.Equal(t, [2]float64{260, 210}, byType["landfill"])
}

func TestParseText_PartialStreams(t *testing.T) {
	parsed, err := invoice.ParseText("Invoice: Acme Hauling\nLandfill 42.5 kg $31\nPeriod 2024-11")
	require.NoError(t, err)

	assert.Equal(t, "2024-11", parsed.Period)
	assert.Equal(t, "Acme Hauling", parsed.Vendor)
	require.Len(t, parsed.Lines, 1)
	assert.Equal(t, "landfill", parsed.Lines[0].LineType)
	assert.Equal(t, 42.5, parsed.Lines[0].WeightKg)
	assert.Equal(t, 31.0, parsed.Lines[0].CostUSD)
}

func TestParseText_DefaultsWhenHeaderMissing(t *testing.T) {
	parsed, err := invoice.ParseText("recycling 12 kg $4")
	require.NoError(t, err)

	assert.Equal(t, "2025-09", parsed.Period)
	assert.Equal(t, "Unknown Hauler", parsed.Vendor)
}

func TestParseText_NoStreamsIsError(t *testing.T) {
	_, err := invoice.ParseText("Dear customer, thank you for your business.")
	assert.Error(t, err)
}

func TestParseText_EmptyTextIsError(t *testing.T) {
	_, err := invoice.ParseText("")
	assert.Error(t, err)
}
