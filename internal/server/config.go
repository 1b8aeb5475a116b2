package server

import (
	"flag"
	"os"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Address  string `env:"RUN_ADDRESS"`
	LogLevel string `env:"LOG_LEVEL"`
}

// NewConfig reads flags first; environment variables override them.
func NewConfig() (*Config, error) {
	return newConfig(flag.CommandLine, os.Args[1:])
}

func newConfig(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg, err := parseFlags(fs, args)
	if err != nil {
		return nil, err
	}

	err = env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseFlags(fs *flag.FlagSet, args []string) (*Config, error) {
	var cfg Config

	fs.StringVar(&cfg.Address, "a", "127.0.0.1:8080", "address and port for server")
	fs.StringVar(&cfg.LogLevel, "l", "info", "log level (debug, info, warn, error)")
	err := fs.Parse(args)

	return &cfg, err
}
