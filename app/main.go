package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"newscrub/app/api"
	"newscrub/app/cfg"
	"newscrub/app/cleaner"
	"newscrub/app/config"
	"newscrub/app/ingest"
	"newscrub/app/pipeline"
	"newscrub/app/record"
	"newscrub/app/report"
	"newscrub/app/validator"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	appConfig, err := cfg.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if appConfig == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appConfig.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	// Load pipeline configuration
	var pipelineConfig *config.PipelineConfig
	if appConfig.ConfigFile != "" {
		loader := config.NewLoader(appConfig.ConfigFile)
		pipelineConfig, err = loader.Load()
		if err != nil {
			log.Fatal("Failed to load pipeline configuration:", err)
		}
		log.Printf("Loaded pipeline configuration from %s", appConfig.ConfigFile)
	} else {
		pipelineConfig = config.Default()
		log.Printf("Using default pipeline configuration")
	}

	// Initialize core components
	textCleaner := cleaner.New(cleaner.Config{
		TextFields: pipelineConfig.Fields.Text,
		DateFields: pipelineConfig.Fields.Date,
	})
	recordValidator, err := validator.New(validator.Config{
		RequiredFields:   pipelineConfig.Validation.Required,
		Aliases:          pipelineConfig.Validation.Aliases,
		MinContentLength: pipelineConfig.Validation.MinContentLength,
	})
	if err != nil {
		log.Fatal("Invalid validation configuration:", err)
	}
	processor := pipeline.NewProcessor(textCleaner, recordValidator)

	if appConfig.Serve {
		runServer(appConfig, processor)
		return
	}

	if err := runBatch(appConfig, pipelineConfig, processor); err != nil {
		log.Fatal(err)
	}
}

// runBatch acquires raw records, runs them through the pipeline once
// and writes the output artifacts.
func runBatch(appConfig *cfg.Cfg, pipelineConfig *config.PipelineConfig, processor *pipeline.Processor) error {
	records, err := acquireRecords(appConfig, pipelineConfig)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no input records: provide --input or configure sources")
	}
	log.Printf("Acquired %d raw records", len(records))

	result := processor.Run(records)
	qualityReport := report.NewGenerator().Run(result.Summary)

	if err := os.MkdirAll(appConfig.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := writeJSON(filepath.Join(appConfig.OutputDir, "valid.json"), result.Valid); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(appConfig.OutputDir, "invalid.json"), result.Invalid); err != nil {
		return err
	}
	reportPath := filepath.Join(appConfig.OutputDir, "report.txt")
	if err := os.WriteFile(reportPath, []byte(qualityReport), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", reportPath, err)
	}

	log.Printf("Wrote %d valid and %d invalid records to %s",
		result.Summary.Valid, result.Summary.Invalid, appConfig.OutputDir)
	fmt.Print(qualityReport)
	return nil
}

// acquireRecords collects raw records from the input file and every
// configured source, in order. Sources are processed one at a time; a
// failing source aborts the run rather than silently shrinking the
// batch.
func acquireRecords(appConfig *cfg.Cfg, pipelineConfig *config.PipelineConfig) ([]record.Record, error) {
	ctx := context.Background()
	var records []record.Record

	if appConfig.InputFile != "" {
		fileRecords, err := ingest.LoadFile(appConfig.InputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", appConfig.InputFile, err)
		}
		log.Printf("Loaded %d records from %s", len(fileRecords), appConfig.InputFile)
		records = append(records, fileRecords...)
	}

	fetcher := ingest.NewFetcher(appConfig.UserAgent)
	scraper := ingest.NewScraper(appConfig.UserAgent)
	for _, source := range pipelineConfig.Sources {
		switch source.Type {
		case "feed":
			feedRecords, err := fetcher.Run(ctx, source.URL)
			if err != nil {
				return nil, fmt.Errorf("source %s: %w", source.Name, err)
			}
			log.Printf("Fetched %d records from feed %s", len(feedRecords), source.URL)
			records = append(records, feedRecords...)
		case "page":
			rec, err := scraper.Run(ctx, source.URL)
			if err != nil {
				return nil, fmt.Errorf("source %s: %w", source.Name, err)
			}
			records = append(records, rec)
		}
	}

	return records, nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func runServer(appConfig *cfg.Cfg, processor *pipeline.Processor) {
	log.Println("Initializing HTTP server...")
	handler := api.NewHandler(processor)
	server := api.NewServer(handler, appConfig.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appConfig.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on port %s", appConfig.Port)
		log.Printf("API endpoints available:")
		log.Printf("  Process batch: http://localhost:%s/process (POST)", appConfig.Port)
		log.Printf("  Quality report: http://localhost:%s/report (POST)", appConfig.Port)
		log.Printf("  Health check:  http://localhost:%s/health", appConfig.Port)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	case err := <-serverErrChan:
		log.Printf("Server error: %v", err)
	}

	log.Println("Shutting down server gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped")
	}
}
