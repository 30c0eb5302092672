package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"StockScout/internal/strategy"
)

// Config holds all application configuration.
type Config struct {
	Universe      []string         `yaml:"universe"`
	TopN          int              `yaml:"top_n"`
	TakeProfitPct float64          `yaml:"take_profit_pct"`
	StopLossPct   float64          `yaml:"stop_loss_pct"`
	LookbackDays  int              `yaml:"lookback_days"`
	DefaultBudget float64          `yaml:"default_budget"`
	Weights       strategy.Weights `yaml:"weights"`
	Telegram      struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Schedule struct {
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

func defaultConfig() *Config {
	cfg := &Config{
		Universe:      []string{"AAPL", "MSFT", "AMZN", "NVDA", "TSLA"},
		TopN:          3,
		TakeProfitPct: 0.10,
		StopLossPct:   0.05,
		LookbackDays:  90,
		Weights:       strategy.DefaultWeights(),
	}
	cfg.Schedule.ScanCron = "0 0 22 * * 1-5"
	return cfg
}

// Load reads config from a YAML file layered over the built-in defaults,
// then applies environment variable overrides. Defaults are seeded before
// the file is parsed, so an explicit zero in the file survives to
// Validate and is rejected there instead of being silently replaced.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	for i, s := range cfg.Universe {
		cfg.Universe[i] = strings.ToUpper(strings.TrimSpace(s))
	}

	return cfg, nil
}

// applyEnv layers environment variables over the file values. A variable
// that is present but malformed is a configuration error, never a silent
// fallback to whatever the file had.
func applyEnv(cfg *Config) error {
	if v := os.Getenv("UNIVERSE"); v != "" {
		cfg.Universe = splitSymbols(v)
	}
	if err := envInt("TOP_N", &cfg.TopN); err != nil {
		return err
	}
	if err := envFloat("TAKE_PROFIT_PCT", &cfg.TakeProfitPct); err != nil {
		return err
	}
	if err := envFloat("STOP_LOSS_PCT", &cfg.StopLossPct); err != nil {
		return err
	}
	if err := envInt("LOOKBACK_DAYS", &cfg.LookbackDays); err != nil {
		return err
	}
	if err := envFloat("DEFAULT_BUDGET", &cfg.DefaultBudget); err != nil {
		return err
	}
	envString("TELEGRAM_TOKEN", &cfg.Telegram.BotToken)
	envString("TELEGRAM_CHAT_ID", &cfg.Telegram.ChatID)
	envString("DATA_BASE_URL", &cfg.DataSource.BaseURL)
	envString("DATA_API_KEY", &cfg.DataSource.APIKey)
	envString("SCAN_CRON", &cfg.Schedule.ScanCron)
	envString("SQLITE_PATH", &cfg.Database.SQLitePath)
	envString("HTTPS_PROXY", &cfg.Proxy)
	return nil
}

func envString(name string, dst *string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

func envInt(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("env %s: invalid value %q", name, v)
	}
	*dst = n
	return nil
}

func envFloat(name string, dst *float64) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("env %s: invalid value %q", name, v)
	}
	*dst = f
	return nil
}

func splitSymbols(v string) []string {
	parts := strings.Split(v, ",")
	symbols := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}

// Validate checks that the pipeline can run at all. Failures here are the
// only condition that exits the process non-zero.
func (c *Config) Validate() error {
	if len(c.Universe) == 0 {
		return fmt.Errorf("universe must not be empty")
	}
	seen := make(map[string]bool, len(c.Universe))
	for _, s := range c.Universe {
		if s == "" {
			return fmt.Errorf("universe contains an empty symbol")
		}
		if seen[s] {
			return fmt.Errorf("universe contains duplicate symbol %s", s)
		}
		seen[s] = true
	}
	if c.TopN < 1 {
		return fmt.Errorf("top_n must be at least 1")
	}
	if c.TakeProfitPct <= 0 || c.TakeProfitPct >= 1 {
		return fmt.Errorf("take_profit_pct must be in (0,1)")
	}
	if c.StopLossPct <= 0 || c.StopLossPct >= 1 {
		return fmt.Errorf("stop_loss_pct must be in (0,1)")
	}
	if c.LookbackDays < 50 {
		return fmt.Errorf("lookback_days must be at least 50")
	}
	if c.Weights.Momentum <= 0 || c.Weights.RSI <= 0 || c.Weights.Trend < 0 || c.Weights.Change <= 0 {
		return fmt.Errorf("weights must be positive (trend may be zero)")
	}
	return nil
}
