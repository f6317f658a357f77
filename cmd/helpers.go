package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/traininglab/exlink/internal/cache"
	"github.com/traininglab/exlink/internal/compress"
	"github.com/traininglab/exlink/internal/config"
	"github.com/traininglab/exlink/internal/queue"
	"github.com/traininglab/exlink/internal/store"
)

// openStore builds the gorm store from the environment config.
func openStore() (*store.GormStore, error) {
	cnf := config.LoadConfig()
	db, err := config.GetDb(cnf)
	if err != nil {
		return nil, err
	}

	return store.NewGormStore(db), nil
}

// linkCache returns the redis cache when configured, a nop otherwise.
func linkCache() cache.LinkCache {
	cnf := config.LoadConfig()
	if cnf.RedisAddr == "" {
		return cache.NewNopLinkCache()
	}
	return cache.NewRedisLinkCache(cnf.RedisAddr, cacheEncoder(cnf.CacheCodec))
}

func cacheEncoder(codec string) compress.Compress {
	switch codec {
	case "brotli":
		return compress.NewBrotli()
	case "lz4":
		return compress.NewLZ4()
	case "none":
		return compress.NewNop()
	default:
		return compress.NewGZip()
	}
}

// linkQueue returns the kafka queue when configured, a nop otherwise.
func linkQueue() queue.LinkQueue {
	cnf := config.LoadConfig()
	if cnf.KafkaBrokers == "" {
		return queue.NewNopLinkQueue()
	}

	q, err := queue.NewKafkaLinkQueue(cnf.KafkaBrokers)
	if err != nil {
		logrus.Warnf("kafka unavailable, events disabled: %v", err)
		return queue.NewNopLinkQueue()
	}

	return q
}

func checkMissingFlags(cmd *cobra.Command, flags []string) bool {
	var missingFlags []string
	var providedFlags []string
	for _, required := range flags {
		if cmd.Flag(required).Changed == false {
			missingFlags = append(missingFlags, required)
		} else {
			value := cmd.Flag(required).Value.String()
			providedFlags = append(providedFlags, fmt.Sprintf("--%s=%s", required, value))
		}
	}

	if len(missingFlags) > 0 {
		var msg string
		for _, f := range missingFlags {
			msg += fmt.Sprintf("--%s ", f)
		}

		color.Red("missing: %s\n", msg)
		if len(providedFlags) > 0 {
			provided := strings.Join(providedFlags, " ")
			color.Green("provide: %s\n", provided)
		}

		cmd.Println("")

		cmd.Usage()

		return true
	}

	return false
}
