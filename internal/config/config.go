package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"OvernightExchange/internal/scheduler"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Series struct {
		Symbol    string  `yaml:"symbol"`
		BasePrice float64 `yaml:"base_price"`
		Length    int     `yaml:"length"`
	} `yaml:"series"`
	Schedule struct {
		TickCron string `yaml:"tick_cron"`
	} `yaml:"schedule"`
	Chart struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"chart"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Metrics struct {
		Namespace string `yaml:"namespace"`
	} `yaml:"metrics"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("SYMBOL"); v != "" {
		cfg.Series.Symbol = v
	}
	if v := os.Getenv("BASE_PRICE"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parse BASE_PRICE: %w", err)
		}
		cfg.Series.BasePrice = p
	}
	if v := os.Getenv("SERIES_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse SERIES_LENGTH: %w", err)
		}
		cfg.Series.Length = n
	}
	if v := os.Getenv("TICK_CRON"); v != "" {
		cfg.Schedule.TickCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("METRICS_NAMESPACE"); v != "" {
		cfg.Metrics.Namespace = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Series.Symbol == "" {
		cfg.Series.Symbol = "BTC/USDT"
	}
	if cfg.Series.BasePrice == 0 {
		cfg.Series.BasePrice = 67450
	}
	if cfg.Series.Length == 0 {
		cfg.Series.Length = 50
	}
	if cfg.Schedule.TickCron == "" {
		cfg.Schedule.TickCron = scheduler.DefaultTickSpec
	}
	if cfg.Chart.Width == 0 {
		cfg.Chart.Width = 800
	}
	if cfg.Chart.Height == 0 {
		cfg.Chart.Height = 256
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = "overnight_exchange"
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.Series.BasePrice <= 0 {
		return fmt.Errorf("series.base_price must be positive")
	}
	if c.Series.Length < 2 {
		return fmt.Errorf("series.length must be at least 2")
	}
	if _, err := scheduler.Parser.Parse(c.Schedule.TickCron); err != nil {
		return fmt.Errorf("schedule.tick_cron: %w", err)
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart.width and chart.height must be positive")
	}
	return nil
}
