package config

import (
	"flag"
	"os"

	"github.com/caarlos0/env/v6"
)

const DefaultNumber = "4539148803436467"

type Config struct {
	Number   string `env:"CARD_NUMBER"`
	LogLevel string `env:"LOG_LEVEL"`
}

func BuildConfig() (Config, error) {
	return buildConfig(flag.CommandLine, os.Args[1:])
}

func buildConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := cfg.buildFromFlags(fs, args); err != nil {
		return cfg, err
	}
	err := cfg.buildFromEnv()
	return cfg, err
}

func (cfg *Config) buildFromFlags(fs *flag.FlagSet, args []string) error {
	fs.StringVar(&cfg.Number, "n", DefaultNumber, "number to check")
	fs.StringVar(&cfg.LogLevel, "l", "warn", "log level (debug, info, warn, error)")
	return fs.Parse(args)
}

func (cfg *Config) buildFromEnv() error {
	return env.Parse(cfg)
}
