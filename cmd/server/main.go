package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"smedecl/internal/classification"
	classhandler "smedecl/internal/classification/handler"
	classmetrics "smedecl/internal/classification/metrics"
	"smedecl/internal/declaration"
	declhandler "smedecl/internal/declaration/handler"
	"smedecl/internal/platform/config"
	"smedecl/internal/platform/httpserver"
	"smedecl/internal/platform/logger"
	"smedecl/internal/platform/metrics"
	httptransport "smedecl/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	classifier := classification.NewService(log, classmetrics.New(reg))
	builder := declaration.NewBuilder(classifier, log, cfg.ClassifyConcurrency)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:         log,
		Classification: classhandler.New(classifier, log),
		Declarations:   declhandler.New(builder, log, cfg.MaxTargets),
		Metrics:        metrics.New(reg),
		Gatherer:       reg,
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting smedecl", "addr", cfg.Addr, "log_level", cfg.LogLevel.String())

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
