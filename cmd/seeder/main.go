package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"

	"trybe_hotel/internal/adapters/observability"
	"trybe_hotel/internal/app"
	"trybe_hotel/internal/seed"
	"trybe_hotel/internal/shared"
	mysqlrepo "trybe_hotel/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()
	file := flag.String("file", cfg.SeedFile, "fixture JSON file (empty uses the embedded default)")
	flag.Parse()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, cfg, *file)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Msg("seeding completed")
}

func run(ctx context.Context, cfg shared.Config, file string) error {
	f, err := seed.Load(file)
	if err != nil {
		return err
	}
	log.Info().
		Str("file", file).
		Int("cities", len(f.Cities)).
		Int("hotels", len(f.Hotels)).
		Int("rooms", len(f.Rooms)).
		Msg("seeder starting")

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
	log.Info().Msg("db ping ok")

	if cfg.DBMigrate {
		if err := mysqlrepo.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// no cache: the API's cached lists expire on their own TTL
	svc := app.NewCatalogService(mysqlrepo.NewStore(db), nil, 0)
	_, err = seed.Apply(ctx, svc, f)
	return err
}
