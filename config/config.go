package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	RoundRobinTimeQuantum int
	CacheMaxCost          int64
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once and
// returns the shared instance.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		config, err = Load("./")
		if err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// Load reads config.yaml from dir. A missing file falls back to defaults,
// and SCHEDULER_* environment variables (optionally from a .env file)
// override both.
func Load(dir string) (*SchedulerConfig, error) {
	// .env is optional
	_ = godotenv.Load(strings.TrimSuffix(dir, "/") + "/.env")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("cache.max_cost", 1<<20)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log_level"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		CacheMaxCost:          v.GetInt64("cache.max_cost"),
	}
	if cfg.RoundRobinTimeQuantum <= 0 {
		return nil, fmt.Errorf("scheduler.round_robin.time_quantum must be positive, got %d", cfg.RoundRobinTimeQuantum)
	}
	return cfg, nil
}
