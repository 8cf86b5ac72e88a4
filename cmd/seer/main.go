package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"StockSeer/internal/config"
	"StockSeer/internal/recorder"
	"StockSeer/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockSeer starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner := scheduler.NewRunner(ctx, cfg, rec)

	// One-shot batch unless a schedule is configured.
	if cfg.Schedule.Cron == "" {
		if err := runner.RunAll(); err != nil {
			log.Fatalf("[FATAL] batch: %v", err)
		}
		log.Println("[INFO] StockSeer finished")
		return
	}

	if err := runner.Schedule(cfg.Schedule.Cron); err != nil {
		log.Fatalf("[FATAL] register schedule: %v", err)
	}

	// Optional: run immediately on start. Runs to completion before the
	// scheduler starts so batches never overlap.
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing batch now")
		if err := runner.RunAll(); err != nil {
			log.Printf("[ERROR] startup batch: %v", err)
		}
	}

	runner.Start()
	defer runner.Stop()

	log.Printf("[INFO] StockSeer is running on schedule %q. Press Ctrl+C to stop.", cfg.Schedule.Cron)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StockSeer stopped")
}
