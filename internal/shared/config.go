package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	HTTPAddr    string
	MetricsAddr string

	Store          string // mysql | memory
	MySQLDSN       string
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBConnLifetime time.Duration
	DBMigrate      bool

	RedisAddr string // empty disables the cache
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	RateRPS   float64
	RateBurst int

	SeedFile    string
	SeedOnStart bool
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Msg("not an integer, using default")
		}
		return def
	}
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
			log.Warn().Str("key", k).Msg("not a number, using default")
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		LogLevel:    env("LOG_LEVEL", "info"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),

		Store:          strings.ToLower(env("STORE", "mysql")),
		MySQLDSN:       env("MYSQL_DSN", "root:root@tcp(localhost:3306)/trybehotel?parseTime=true&charset=utf8mb4&loc=UTC"),
		DBMaxOpenConns: atoi("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns: atoi("DB_MAX_IDLE_CONNS", 10),
		DBConnLifetime: time.Duration(atoi("DB_CONN_MAX_LIFETIME_SECONDS", 300)) * time.Second,
		DBMigrate:      envBool("DB_MIGRATE", true),

		RedisAddr: env("REDIS_ADDR", ""),
		RedisPass: env("REDIS_PASSWORD", ""),
		RedisDB:   atoi("REDIS_DB", 0),
		CacheTTL:  time.Duration(atoi("CACHE_TTL_SECONDS", 60)) * time.Second,

		RateRPS:   atof("RATE_LIMIT_RPS", 0),
		RateBurst: atoi("RATE_LIMIT_BURST", 20),

		SeedFile:    env("SEED_FILE", ""),
		SeedOnStart: envBool("SEED_ON_START", false),
	}
	if c.Store != "mysql" && c.Store != "memory" {
		log.Warn().Str("store", c.Store).Msg("unknown STORE, falling back to mysql")
		c.Store = "mysql"
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
