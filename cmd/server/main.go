// Command server runs the storefront API.
//
// @title        Storefront API
// @version      1.0
// @description  Storefront and back-office API with a uniform response envelope.
// @BasePath     /
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/yu-shop/storefront-api/internal/api"
	"github.com/yu-shop/storefront-api/internal/infrastructure/fixture"
	"github.com/yu-shop/storefront-api/internal/infrastructure/sessionstore"
	"github.com/yu-shop/storefront-api/internal/infrastructure/upstream"
	"github.com/yu-shop/storefront-api/internal/pkg/config"
	"github.com/yu-shop/storefront-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; absence is the normal production case.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	var stores api.Stores
	switch cfg.DataSource {
	case "upstream":
		gw := upstream.NewGateway(cfg.BaseURL, log)
		stores = api.Stores{
			Members:    upstream.NewMemberStore(gw),
			Products:   upstream.NewProductStore(gw),
			Categories: upstream.NewCategoryStore(gw),
			Carts:      upstream.NewCartStore(gw),
			Orders:     upstream.NewOrderStore(gw),
			AdminUsers: upstream.NewAdminUserStore(gw),
		}
		log.Info().Str("base_url", cfg.BaseURL).Msg("serving from upstream backend")
	default:
		stores = api.Stores{
			Members:    fixture.NewMemberStore(),
			Products:   fixture.NewProductStore(),
			Categories: fixture.NewCategoryStore(),
			Carts:      fixture.NewCartStore(),
			Orders:     fixture.NewOrderStore(),
			AdminUsers: fixture.NewAdminUserStore(),
		}
		log.Info().Msg("serving fixture data")
	}

	var rdb *redis.Client
	if cfg.Session.Backend == "redis" {
		var err error
		rdb, err = sessionstore.Connect(context.Background(), sessionstore.ConnectConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis connection failed")
		}
		defer rdb.Close()
	}

	e := api.NewRouter(cfg, stores, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
