// README: Entry point; loads config, wires services, serves the fare prediction page.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taxifare/internal/config"
	httptransport "taxifare/internal/http"
	"taxifare/internal/logger"
	"taxifare/internal/maps"
	"taxifare/internal/modules/mapview"
	"taxifare/internal/modules/pricing"
	"taxifare/internal/types"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewNamed(cfg.AppEnv, "taxifare-web")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := pricing.NewClient(cfg.Predict.URL, cfg.Predict.Timeout)
	pricingSvc := pricing.NewService(client, log)

	renderer := mapview.NewRenderer(types.Point{Lat: cfg.Map.CenterLat, Lng: cfg.Map.CenterLng}, cfg.Map.Zoom)

	var geocoder *maps.GeocodeService
	if cfg.Maps.APIKey != "" {
		geocoder, err = maps.NewGeocodeService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatal("geocoder init", zap.Error(err))
		}
	} else {
		log.Info("no maps api key; address lookup disabled")
	}

	server := httptransport.NewServer(httptransport.ServerDeps{
		Pricing:   pricingSvc,
		Renderer:  renderer,
		Geocoder:  geocoder,
		LookupURL: cfg.LookupURL,
		Log:       log,
	})
	handler, err := server.Routes()
	if err != nil {
		log.Fatal("build routes", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Predict.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server starting",
			zap.String("addr", cfg.HTTP.Addr),
			zap.String("predict_url", cfg.Predict.URL),
			zap.Duration("predict_timeout", cfg.Predict.Timeout),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down taxifare-web...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}
	log.Info("taxifare-web stopped")
}
