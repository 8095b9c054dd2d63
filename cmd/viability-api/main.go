// README: Entry point; loads config, wires services and runs the HTTP server until signaled.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"viability/internal/config"
	httptransport "viability/internal/http"
	"viability/internal/infra"
	"viability/internal/modules/params"
	"viability/internal/modules/pricing"
	"viability/internal/modules/projection"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	logger := infra.NewLogger(cfg.Log.Level, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var bookSource pricing.BookSource
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			logger.WithError(err).Fatal("connect postgres")
		}
		defer dbPool.Close()

		pricingStore := pricing.NewStore(dbPool)
		if err := pricingStore.EnsureSchema(ctx); err != nil {
			logger.WithError(err).Fatal("ensure pricing schema")
		}
		bookSource = pricingStore
	}

	var paramsStore params.Store = params.NewMemoryStore()
	if cfg.Redis.Addr != "" {
		redisClient := infra.NewRedis(cfg.Redis.Addr)
		defer redisClient.Close()

		redisStore := params.NewRedisStore(redisClient, cfg.Projection.ParamsVersion)
		removed, err := redisStore.Migrate(ctx)
		if err != nil {
			logger.WithError(err).Warn("purge stale params versions")
		} else if removed > 0 {
			logger.WithField("removed", removed).Info("purged stale params versions")
		}
		paramsStore = redisStore
	}

	market := projection.MarketStats{
		Population: cfg.Market.Population,
		SAMPct:     cfg.Market.SAMPct,
		SOMPct:     cfg.Market.SOMPct,
	}
	projectionSvc := projection.NewService(market, cfg.Projection.StartYear, logger)
	paramsSvc := params.NewService(paramsStore, logger)
	pricingSvc := pricing.NewService(bookSource, cfg.Pricing.File, cfg.Market.Municipality, logger)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Projection: projectionSvc,
		Params:     paramsSvc,
		Pricing:    pricingSvc,
		Logger:     logger,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("http shutdown")
		}
	}()

	logger.WithFields(logrus.Fields{
		"addr":         cfg.HTTP.Addr,
		"municipality": cfg.Market.Municipality,
		"postgres":     bookSource != nil,
		"redis":        cfg.Redis.Addr != "",
	}).Info("viability api listening")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Fatal("http server")
	}
}
