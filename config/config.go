package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	App   AppConfig   `envPrefix:"APP_"`
	Data  DataConfig  `envPrefix:"DATA_"`
	Chart ChartConfig `envPrefix:"CHART_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"glucose-insights"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Port        int    `env:"PORT" envDefault:"8050"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// DataConfig locates the readings spreadsheet. A relative File is resolved
// against the install directory of the binary.
type DataConfig struct {
	File  string `env:"FILE" envDefault:"glucose_data.xlsx"`
	Sheet string `env:"SHEET"`
}

type ChartConfig struct {
	Width  int `env:"WIDTH" envDefault:"1024"`
	Height int `env:"HEIGHT" envDefault:"480"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	return cfg, nil
}
