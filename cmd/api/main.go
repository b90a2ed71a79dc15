package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	server "trybe_hotel/internal/adapters/http_server"
	"trybe_hotel/internal/adapters/observability"
	redisad "trybe_hotel/internal/adapters/redis"
	"trybe_hotel/internal/app"
	"trybe_hotel/internal/domain"
	"trybe_hotel/internal/seed"
	"trybe_hotel/internal/shared"
	"trybe_hotel/internal/storage/memory"
	mysqlrepo "trybe_hotel/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, cfg)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("api failed")
	}
	log.Info().Msg("API stopped")
}

// run blocks until ctx is cancelled or the server fails; deferred cleanups
// always run before it returns.
func run(ctx context.Context, cfg shared.Config) error {
	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// store
	var store domain.Store
	switch cfg.Store {
	case "memory":
		store = memory.New()
		log.Warn().Msg("using in-memory store; data is lost on exit")
	default:
		db, err := mysqlrepo.Open(ctx, mysqlrepo.Options{
			DSN:             cfg.MySQLDSN,
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxLifetime: cfg.DBConnLifetime,
		})
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()
		log.Info().Msg("database connection ok")

		if cfg.DBMigrate {
			if err := mysqlrepo.Migrate(ctx, db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
		store = mysqlrepo.NewStore(db)
	}

	// cache is optional; a nil domain.Cache disables it
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := rc.Ping(pctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, continuing; cache calls will miss")
		}
		cancel()
		cache = rc
	}

	svc := app.NewCatalogService(store, cache, cfg.CacheTTL)

	if cfg.SeedOnStart {
		f, err := seed.Load(cfg.SeedFile)
		if err != nil {
			return err
		}
		if _, err := seed.Apply(ctx, svc, f); err != nil {
			return err
		}
	}

	// http
	srv := server.New(server.Options{RateRPS: cfg.RateRPS, RateBurst: cfg.RateBurst})
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{C: svc})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Str("store", cfg.Store).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(sctx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
