package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"OvernightExchange/internal/chart"
	"OvernightExchange/internal/config"
	"OvernightExchange/internal/feed"
	"OvernightExchange/internal/market"
	"OvernightExchange/internal/metrics"
	"OvernightExchange/internal/recorder"
	"OvernightExchange/internal/scheduler"
	"OvernightExchange/internal/series"
	"OvernightExchange/internal/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] OvernightExchange starting...")

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

	m := metrics.NewMetrics(cfg.Metrics.Namespace)

	// Init feed
	gen := series.NewGenerator(nil, nil)
	f := feed.New(cfg.Series.Symbol, gen, cfg.Series.BasePrice, cfg.Series.Length)

	// Context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, f, rec, m)
	if err := sched.Register(cfg.Schedule.TickCron); err != nil {
		log.Fatalf("[FATAL] register tick task: %v", err)
	}
	if err := sched.Start(); err != nil {
		log.Fatalf("[FATAL] start scheduler: %v", err)
	}
	defer sched.Stop()

	if last, ok := f.Latest(); ok {
		log.Printf("[INFO] %s", market.FormatTickerLine(f.Symbol(), last.Price, 0))
	}

	vp := chart.Viewport{Width: cfg.Chart.Width, Height: cfg.Chart.Height}
	srv := server.New(cfg.Server.Addr, f, rec, m, vp)

	log.Println("[INFO] OvernightExchange is running. Press Ctrl+C to stop.")
	if err := srv.Run(ctx); err != nil {
		log.Printf("[ERROR] http server: %v", err)
	}

	log.Println("[INFO] stopping...")
	sched.Stop()
	log.Println("[INFO] OvernightExchange stopped")
}
