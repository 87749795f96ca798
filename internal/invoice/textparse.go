// Package invoice extracts hauler invoice lines from OCR text. Haulers
// bill per waste stream, so the parser looks for one weight/cost pair per
// route keyword rather than a general table model.
package invoice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"sortsense/internal/domain"
)

var (
	periodRe = regexp.MustCompile(`(20\d{2}[-/.]\d{1,2})`)
	vendorRe = regexp.MustCompile(`(?i)(?:Invoice|Vendor)[:\s]+([A-Za-z ]+)`)
)

const (
	defaultPeriod = "2025-09"
	defaultVendor = "Unknown Hauler"
)

// streamPatterns pairs each invoice line type with the keyword that
// anchors its weight and cost extraction.
var streamPatterns = []struct {
	lineType string
	keyword  string
}{
	{"recycling", `recycl\w+`},
	{"compost", `compost\w*`},
	{"landfill", `landfill`},
}

// ParseText extracts invoice lines from OCR'd text. It fails when no
// waste-stream line can be recognized; partial extraction of period or
// vendor alone is not a successful parse.
func ParseText(text string) (*domain.ParsedInvoice, error) {
	parsed := &domain.ParsedInvoice{
		InvoiceID: uuid.New(),
		Period:    defaultPeriod,
		Vendor:    defaultVendor,
	}

	if m := periodRe.FindStringSubmatch(text); m != nil {
		parsed.Period = m[1]
	}
	if m := vendorRe.FindStringSubmatch(text); m != nil {
		parsed.Vendor = strings.TrimSpace(m[1])
	}

	now := time.Now().UTC()
	for _, s := range streamPatterns {
		kg, usd := grabStream(text, s.keyword)
		if kg == 0 {
			continue
		}
		parsed.Lines = append(parsed.Lines, domain.InvoiceLine{
			InvoiceID: parsed.InvoiceID,
			Period:    parsed.Period,
			Vendor:    parsed.Vendor,
			LineType:  s.lineType,
			WeightKg:  kg,
			CostUSD:   usd,
			Timestamp: now,
		})
	}

	if len(parsed.Lines) == 0 {
		return nil, fmt.Errorf("no waste stream lines recognized in invoice text")
	}
	return parsed, nil
}

// grabStream finds the weight (kg or tons suffix) and dollar cost that
// follow the stream keyword.
func grabStream(text, keyword string) (kg, usd float64) {
	kgRe := regexp.MustCompile(`(?i)` + keyword + `.*?(\d+(?:\.\d+)?)\s?(?:kg|tons?)`)
	usdRe := regexp.MustCompile(`(?i)` + keyword + `.*?\$\s?(\d+(?:\.\d+)?)`)

	if m := kgRe.FindStringSubmatch(text); m != nil {
		kg, _ = strconv.ParseFloat(m[1], 64)
	}
	if m := usdRe.FindStringSubmatch(text); m != nil {
		usd, _ = strconv.ParseFloat(m[1], 64)
	}
	return kg, usd
}
