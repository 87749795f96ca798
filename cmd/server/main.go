package main

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"sortsense/internal/classifier"
	"sortsense/internal/classifier/bedrock"
	classifiermock "sortsense/internal/classifier/mock"
	"sortsense/internal/config"
	"sortsense/internal/domain"
	"sortsense/internal/handler"
	"sortsense/internal/invoice"
	invoicemock "sortsense/internal/invoice/mock"
	"sortsense/internal/invoice/textract"
	"sortsense/internal/port"
	"sortsense/internal/repository/memory"
	"sortsense/internal/repository/warehouse"
	"sortsense/internal/router"
	"sortsense/internal/service"
	"sortsense/internal/storage/noop"
	s3storage "sortsense/internal/storage/s3"
	"sortsense/internal/summary"
	"sortsense/internal/summary/claude"
	"sortsense/internal/summary/static"
	"sortsense/internal/summary/writer"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func registerProviders() {
	classifier.RegisterProvider("bedrock", bedrock.NewClassifier)
	classifier.RegisterProvider("mock", classifiermock.NewClassifier)

	invoice.RegisterProvider("textract", textract.NewParser)
	invoice.RegisterProvider("mock", invoicemock.NewParser)

	summary.RegisterProvider("writer", writer.NewSummarizer)
	summary.RegisterProvider("claude", claude.NewSummarizer)
	summary.RegisterProvider("static", static.NewSummarizer)
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	registerProviders()

	mode := cfg.Mode()
	log.Printf("starting in %s mode", mode)

	// Adapter selection happens once here; handlers never branch on mode.
	var (
		db         *sqlx.DB
		store      port.EventStore
		storage    port.ObjectStorage
		classify   port.Classifier
		parse      port.InvoiceParser
		summarizer port.Summarizer
	)

	if mode == domain.ModeCloud {
		db, err = warehouse.NewDB(&cfg.Warehouse)
		if err != nil {
			return fmt.Errorf("failed to connect to warehouse: %w", err)
		}
		defer db.Close()
		store = warehouse.NewEventStore(db)

		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}

		classify, err = classifier.NewClassifier(&cfg.Vision)
		if err != nil {
			return fmt.Errorf("failed to initialize classifier: %w", err)
		}

		parse, err = invoice.NewParser(&cfg.Vision)
		if err != nil {
			return fmt.Errorf("failed to initialize invoice parser: %w", err)
		}
	} else {
		store = memory.NewEventStore()
		storage = noop.NewStorage()

		classify, err = classifier.NewClassifier(&config.VisionConfig{Provider: "mock"})
		if err != nil {
			return fmt.Errorf("failed to initialize mock classifier: %w", err)
		}
		parse, err = invoice.NewParser(&config.VisionConfig{OCRProvider: "mock"})
		if err != nil {
			return fmt.Errorf("failed to initialize mock invoice parser: %w", err)
		}
	}

	// Summaries degrade to templates when no API key is configured,
	// regardless of mode.
	summaryCfg := cfg.Summary
	if summaryCfg.APIKey == "" {
		summaryCfg.Provider = "static"
	}
	summarizer, err = summary.NewSummarizer(&summaryCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize summarizer: %w", err)
	}

	// Initialize services
	uploadSvc := service.NewUploadService(classify, summarizer, store, storage, &cfg.S3)
	invoiceSvc := service.NewInvoiceService(parse, store, storage, &cfg.S3)
	kpiSvc := service.NewKpiService(store, summarizer)

	// Initialize handlers
	uploadH := handler.NewUploadHandler(uploadSvc, invoiceSvc)
	kpiH := handler.NewKpiHandler(kpiSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(uploadH, kpiH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
