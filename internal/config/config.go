package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"VortexEdge/internal/collector"
	"VortexEdge/internal/strategy"
	"VortexEdge/internal/universe"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Universe struct {
		Symbols   []string `yaml:"symbols"`
		ChunkSize int      `yaml:"chunk_size"`
	} `yaml:"universe"`
	Providers struct {
		FinnhubKey        string  `yaml:"finnhub_key"`
		AlphaVantageKey   string  `yaml:"alpha_vantage_key"`
		HistoryDays       int     `yaml:"history_days"`
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
		ChunkPauseMS      int     `yaml:"chunk_pause_ms"`
	} `yaml:"providers"`
	Schedule struct {
		ScanCron  string `yaml:"scan_cron"`
		PulseCron string `yaml:"pulse_cron"`
	} `yaml:"schedule"`
	Redis struct {
		Addr       string `yaml:"addr"`
		Password   string `yaml:"password"`
		DB         int    `yaml:"db"`
		TTLMinutes int    `yaml:"ttl_minutes"`
	} `yaml:"redis"`
	Database struct {
		SQLitePath  string `yaml:"sqlite_path"`
		PostgresDSN string `yaml:"postgres_dsn"`
	} `yaml:"database"`
	Strategy StrategySection `yaml:"strategy"`
	Proxy    string          `yaml:"proxy"`
}

// StrategySection mirrors strategy.Config with yaml tags; zero fields fall
// back to the engine defaults. Load seeds Weights with the default table,
// so a weights block overrides per key and an absent block changes nothing.
type StrategySection struct {
	RSIPeriod       int               `yaml:"rsi_period"`
	ATRPeriod       int               `yaml:"atr_period"`
	VolumeSMAPeriod int               `yaml:"volume_sma_period"`
	ZScorePeriod    int               `yaml:"z_score_period"`
	NRLookback      int               `yaml:"nr_lookback"`
	TrendLookback   int               `yaml:"trend_lookback"`
	MinPrice        float64           `yaml:"min_price"`
	MinHistory      int               `yaml:"min_history"`
	MaxParallel     int               `yaml:"max_parallel"`
	Weights         *strategy.Weights `yaml:"weights"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	// Seed the weights before decoding so a partial strategy.weights block
	// overrides only the keys it names; unnamed weights keep their
	// defaults instead of zeroing out.
	defaults := strategy.DefaultWeights()
	cfg.Strategy.Weights = &defaults

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
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		cfg.Providers.FinnhubKey = v
	}
	if v := os.Getenv("ALPHA_VANTAGE_API_KEY"); v != "" {
		cfg.Providers.AlphaVantageKey = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Database.PostgresDSN = v
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("MIN_PRICE"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Strategy.MinPrice = p
		}
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if len(cfg.Universe.Symbols) == 0 {
		cfg.Universe.Symbols = universe.Default
	}
	if cfg.Universe.ChunkSize == 0 {
		cfg.Universe.ChunkSize = 10
	}
	if cfg.Providers.HistoryDays == 0 {
		cfg.Providers.HistoryDays = 30
	}
	if cfg.Providers.RequestsPerSecond == 0 {
		cfg.Providers.RequestsPerSecond = 5
	}
	if cfg.Providers.Burst == 0 {
		cfg.Providers.Burst = 10
	}
	if cfg.Providers.ChunkPauseMS == 0 {
		cfg.Providers.ChunkPauseMS = 100
	}
	if cfg.Schedule.ScanCron == "" {
		cfg.Schedule.ScanCron = "0 */15 * * * 1-5"
	}
	if cfg.Schedule.PulseCron == "" {
		cfg.Schedule.PulseCron = "0 */5 * * * 1-5"
	}
	if cfg.Redis.TTLMinutes == 0 {
		cfg.Redis.TTLMinutes = 15
	}

	return cfg, nil
}

// Validate checks the fields that have no sane fallback.
func (c *Config) Validate() error {
	if c.Universe.ChunkSize < 0 {
		return fmt.Errorf("universe.chunk_size must not be negative")
	}
	if c.Strategy.MinPrice < 0 {
		return fmt.Errorf("strategy.min_price must not be negative")
	}
	if c.Database.SQLitePath != "" && c.Database.PostgresDSN != "" {
		return fmt.Errorf("configure either database.sqlite_path or database.postgres_dsn, not both")
	}
	return nil
}

// StrategyConfig merges the engine defaults with the overrides from the
// strategy section.
func (c *Config) StrategyConfig() strategy.Config {
	out := strategy.DefaultConfig()
	s := c.Strategy
	if s.RSIPeriod > 0 {
		out.RSIPeriod = s.RSIPeriod
	}
	if s.ATRPeriod > 0 {
		out.ATRPeriod = s.ATRPeriod
	}
	if s.VolumeSMAPeriod > 0 {
		out.VolumeSMAPeriod = s.VolumeSMAPeriod
	}
	if s.ZScorePeriod > 0 {
		out.ZScorePeriod = s.ZScorePeriod
	}
	if s.NRLookback > 0 {
		out.NRLookback = s.NRLookback
	}
	if s.TrendLookback > 0 {
		out.TrendLookback = s.TrendLookback
	}
	if s.MinPrice > 0 {
		out.MinPrice = s.MinPrice
	}
	if s.MinHistory > 0 {
		out.MinHistory = s.MinHistory
	}
	if s.MaxParallel > 0 {
		out.MaxParallel = s.MaxParallel
	}
	if s.Weights != nil {
		out.Weights = *s.Weights
	}
	return out
}

// CollectorConfig builds the collector tuning from the providers section.
func (c *Config) CollectorConfig() collector.Config {
	return collector.Config{
		HistoryDays:       c.Providers.HistoryDays,
		ChunkSize:         c.Universe.ChunkSize,
		ChunkPause:        time.Duration(c.Providers.ChunkPauseMS) * time.Millisecond,
		RequestsPerSecond: c.Providers.RequestsPerSecond,
		Burst:             c.Providers.Burst,
	}
}

// CacheTTL returns the candle cache TTL.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Redis.TTLMinutes) * time.Minute
}
