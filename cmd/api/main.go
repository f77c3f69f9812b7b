package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/recordshop/vinylstore/internal/cart"
	"github.com/recordshop/vinylstore/internal/catalog"
	"github.com/recordshop/vinylstore/internal/config"
	"github.com/recordshop/vinylstore/internal/httpx"
	"github.com/recordshop/vinylstore/internal/identity"
	"github.com/recordshop/vinylstore/internal/logx"
	"github.com/recordshop/vinylstore/internal/orders"
	"github.com/recordshop/vinylstore/internal/store"
	"github.com/recordshop/vinylstore/internal/store/jsonfile"
	"github.com/recordshop/vinylstore/internal/store/postgres"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logx.New(cfg.ServiceName, cfg.LogLevel)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Record Store
	var st store.Store
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pg, err := postgres.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres connect")
		}
		defer pg.Close()
		st = pg
	default:
		fs, err := jsonfile.New(cfg.DataDir)
		if err != nil {
			log.Fatal().Err(err).Msg("open data dir")
		}
		st = fs
	}

	// Catalog seed
	catalogSvc := catalog.NewService(st)
	seeded, err := catalogSvc.EnsureSeeded(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("seed catalog")
	}
	if seeded {
		log.Info().Msg("product catalog seeded")
	}

	// Services & handlers
	tokens := identity.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	identitySvc := identity.NewService(st, tokens)
	cartSvc := cart.NewService(st)
	ordersSvc := orders.NewService(st, log)

	router := httpx.NewRouter(log, cfg.CORSOrigins)
	ah := &httpx.AuthHandler{Identity: identitySvc, TokenTTL: tokens.TTL(), Log: log}
	ah.Register(router)
	(&httpx.ProductsHandler{Catalog: catalogSvc, Log: log}).Register(router)
	(&httpx.CartHandler{Cart: cartSvc, Log: log}).Register(router)
	(&httpx.OrdersHandler{Orders: ordersSvc, Log: log}).Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("store", cfg.StoreDriver).Msg("HTTP listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
}
