package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"newsbrief/internal/app"
	"newsbrief/internal/config"
	"newsbrief/internal/logger"
	"newsbrief/internal/metrics"
	"newsbrief/internal/scheduler"
)

func main() {
	var (
		scheduled = flag.Bool("schedule", false, "run as a scheduled service")
		users     = flag.String("user", "", "comma-separated reader ids to generate digests for")
		monitor   = flag.Bool("monitor", false, "serve /health and /metrics over HTTP")
	)
	flag.Parse()

	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if *monitor || os.Getenv("ENABLE_HTTP_MONITORING") == "true" {
		go startMonitoringServer(cfg.MonitoringPort)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg, slog.Default())
	userIDs := splitIDs(*users)

	if *scheduled {
		sched := scheduler.New(cfg.ScheduleEvery, slog.Default().With("component", "scheduler"))
		sched.Run(ctx, func(t time.Time) {
			if err := application.Run(ctx, userIDs); err != nil {
				slog.Error("digest run failed", "error", err)
				metrics.Global.SetError(err.Error())
			}
		})
		return
	}

	if err := application.Run(ctx, userIDs); err != nil {
		slog.Error("digest run failed", "error", err)
		os.Exit(1)
	}
}

func splitIDs(s string) []string {
	if s == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func startMonitoringServer(port string) {
	http.HandleFunc("/health", healthHandler)
	http.HandleFunc("/metrics", metricsHandler)

	slog.Info("monitoring server listening", "port", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		slog.Error("monitoring server error", "error", err)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	status := "ok"
	if !stats["is_healthy"].(bool) {
		status = "error"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	response := map[string]interface{}{
		"status":     status,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func metricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(metrics.Global.GetStats())
}
