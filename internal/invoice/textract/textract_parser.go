package textract

import (
	"context"
	"fmt"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"

	"sortsense/internal/config"
	"sortsense/internal/domain"
	"sortsense/internal/invoice"
	"sortsense/internal/port"
)

// detector is the slice of the Textract client we use, extracted for testing.
type detector interface {
	DetectDocumentText(ctx context.Context, params *textract.DetectDocumentTextInput, optFns ...func(*textract.Options)) (*textract.DetectDocumentTextOutput, error)
}

// Parser implements port.InvoiceParser using AWS Textract document OCR
// followed by keyword extraction of the waste-stream lines.
type Parser struct {
	client  detector
	timeout time.Duration
}

// NewParser creates a Textract-backed invoice parser.
func NewParser(cfg *config.VisionConfig) (port.InvoiceParser, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	return newParser(textract.NewFromConfig(awsCfg), cfg), nil
}

// NewParserWithClient creates a parser with an injected Textract client
// (for testing).
func NewParserWithClient(client detector, cfg *config.VisionConfig) port.InvoiceParser {
	return newParser(client, cfg)
}

func newParser(client detector, cfg *config.VisionConfig) *Parser {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Parser{client: client, timeout: timeout}
}

func (p *Parser) Parse(ctx context.Context, pdfBytes []byte) (*domain.ParsedInvoice, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := p.client.DetectDocumentText(ctx, &textract.DetectDocumentTextInput{
		Document: &types.Document{Bytes: pdfBytes},
	})
	if err != nil {
		return nil, fmt.Errorf("textract detect document text: %w", err)
	}

	var lines []string
	for _, block := range out.Blocks {
		if block.BlockType == types.BlockTypeLine && block.Text != nil {
			lines = append(lines, *block.Text)
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no text detected in document")
	}

	parsed, err := invoice.ParseText(strings.Join(lines, "\n"))
	if err != nil {
		return nil, fmt.Errorf("extracting invoice lines: %w", err)
	}
	return parsed, nil
}
