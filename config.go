package main

import (
	"os"
	"strconv"

	flag "github.com/spf13/pflag"
)

type config struct {
	Port     string
	Root     string
	StatsDSN string
	Stats    bool
}

// loadConfig reads defaults from the environment (.env is loaded by
// godotenv/autoload in main.go) and lets command-line flags override them.
func loadConfig(args []string) (*config, error) {
	cfg := &config{
		Port:     getEnv("PORT", "8080"),
		Root:     getEnv("SITE_ROOT", "."),
		StatsDSN: getEnv("STATS_DSN", ":memory:"),
		Stats:    getEnvBool("STATS_ENABLED", false),
	}

	fs := flag.NewFlagSet("digital-cv", flag.ContinueOnError)
	fs.StringVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.StringVarP(&cfg.Root, "root", "r", cfg.Root, "site root containing templates/, styles/ and assets/")
	fs.StringVar(&cfg.StatsDSN, "stats-dsn", cfg.StatsDSN, "sqlite DSN for visit counting")
	fs.BoolVar(&cfg.Stats, "stats", cfg.Stats, "count visits and serve public counts at /stats")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}
