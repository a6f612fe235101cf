// The kantor-server binary serves the dashboard API: exchange rate and gold
// price series fetched live from the NBP API, plus health and metrics
// endpoints.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kantorfx/kantor"
	"github.com/kantorfx/kantor/internal/config"
	"github.com/kantorfx/kantor/internal/logging"
	"github.com/kantorfx/kantor/internal/metrics"
	"github.com/kantorfx/kantor/internal/server"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalln("failed to read config:", err)
	}

	logger := logging.NewLogger(slog.LevelDebug)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())

	client := kantor.New(
		&http.Client{},
		kantor.WithBaseURL(cfg.NBP.BaseURL),
		kantor.WithRequestTimeout(cfg.NBP.Timeout),
	)

	m := metrics.New(prometheus.DefaultRegisterer)

	srv := server.New(cfg, client, m, logger)

	logger.Info("starting server", "port", cfg.HTTPServer.Port, "upstream", cfg.NBP.BaseURL)
	done := srv.Start(ctx)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-sig
	cancel()
	<-done

	logger.Info("server stopped")
}
