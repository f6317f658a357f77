package config

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config carries the process configuration, read from the environment with
// .env autoload for local runs.
type Config struct {
	// DBType selects the gorm driver: "sqlite" (default) or "postgres".
	DBType string
	// DSN is the database path (sqlite) or connection string (postgres).
	DSN string
	// RedisAddr enables the link cache when non-empty.
	RedisAddr string
	// CacheCodec selects the cache encoder: gzip (default), brotli, lz4, none.
	CacheCodec string
	// KafkaBrokers enables link event publishing when non-empty.
	KafkaBrokers string
	// SweepCron schedules the orphan sweep job.
	SweepCron string
}

func LoadConfig() *Config {
	return &Config{
		DBType:       envOr("EXLINK_DB", "sqlite"),
		DSN:          envOr("EXLINK_DSN", "exlink.db"),
		RedisAddr:    os.Getenv("EXLINK_REDIS_ADDR"),
		CacheCodec:   envOr("EXLINK_CACHE_CODEC", "gzip"),
		KafkaBrokers: os.Getenv("EXLINK_KAFKA_BROKERS"),
		SweepCron:    envOr("EXLINK_SWEEP_CRON", "@every 15m"),
	}
}

// GetDb opens the configured database.
func GetDb(cnf *Config) (*gorm.DB, error) {
	switch cnf.DBType {
	case "postgres":
		return gorm.Open(postgres.Open(cnf.DSN), &gorm.Config{})
	default:
		if cnf.DBType != "sqlite" {
			logrus.Warnf("unknown db type %q, falling back to sqlite", cnf.DBType)
		}
		return gorm.Open(sqlite.Open(cnf.DSN), &gorm.Config{})
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
