package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"StockScout/internal/strategy"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if len(cfg.Universe) == 0 {
		t.Error("expected a default universe")
	}
	if cfg.TopN != 3 {
		t.Errorf("expected default top_n 3, got %d", cfg.TopN)
	}
	if cfg.TakeProfitPct != 0.10 || cfg.StopLossPct != 0.05 {
		t.Errorf("unexpected default percentages: %v / %v", cfg.TakeProfitPct, cfg.StopLossPct)
	}
	if cfg.Weights != strategy.DefaultWeights() {
		t.Errorf("expected default weights, got %+v", cfg.Weights)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
universe: [spy, qqq]
top_n: 2
take_profit_pct: 0.15
stop_loss_pct: 0.08
weights:
  momentum: 8
  rsi: 1
  trend: 0.5
  change: 4
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg.Universe, []string{"SPY", "QQQ"}) {
		t.Errorf("symbols must be trimmed and upper-cased, got %v", cfg.Universe)
	}
	if cfg.TopN != 2 || cfg.TakeProfitPct != 0.15 {
		t.Errorf("yaml values not applied: %+v", cfg)
	}
	if cfg.Weights.Momentum != 8 {
		t.Errorf("yaml weights not applied: %+v", cfg.Weights)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("UNIVERSE", "aapl, msft ,nvda")
	t.Setenv("TOP_N", "2")
	t.Setenv("TAKE_PROFIT_PCT", "0.20")
	t.Setenv("TELEGRAM_TOKEN", "tok")
	t.Setenv("TELEGRAM_CHAT_ID", "chat")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg.Universe, []string{"AAPL", "MSFT", "NVDA"}) {
		t.Errorf("UNIVERSE override not applied: %v", cfg.Universe)
	}
	if cfg.TopN != 2 {
		t.Errorf("TOP_N override not applied: %d", cfg.TopN)
	}
	if cfg.TakeProfitPct != 0.20 {
		t.Errorf("TAKE_PROFIT_PCT override not applied: %v", cfg.TakeProfitPct)
	}
	if cfg.Telegram.BotToken != "tok" || cfg.Telegram.ChatID != "chat" {
		t.Errorf("telegram overrides not applied: %+v", cfg.Telegram)
	}
}

func TestLoad_MalformedEnvRejected(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"TOP_N", "three"},
		{"TAKE_PROFIT_PCT", "ten-percent"},
		{"STOP_LOSS_PCT", "5%"},
		{"LOOKBACK_DAYS", "ninety"},
		{"DEFAULT_BUDGET", "1,000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.name, tt.value)
			_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
			if err == nil {
				t.Fatalf("%s=%q must fail Load, not fall back silently", tt.name, tt.value)
			}
			if !strings.Contains(err.Error(), tt.name) {
				t.Errorf("error should name the offending variable: %v", err)
			}
		})
	}
}

func TestLoad_ExplicitZeroNotDefaulted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
take_profit_pct: 0
top_n: 0
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TakeProfitPct != 0 || cfg.TopN != 0 {
		t.Errorf("explicit zeros must not be promoted to defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("explicit zero take_profit_pct/top_n must fail validation")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, _ := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default ok", func(c *Config) {}, false},
		{"empty universe", func(c *Config) { c.Universe = nil }, true},
		{"duplicate symbol", func(c *Config) { c.Universe = []string{"AAPL", "AAPL"} }, true},
		{"zero top_n", func(c *Config) { c.TopN = 0 }, true},
		{"negative top_n", func(c *Config) { c.TopN = -1 }, true},
		{"take profit zero", func(c *Config) { c.TakeProfitPct = 0 }, true},
		{"take profit one", func(c *Config) { c.TakeProfitPct = 1 }, true},
		{"stop loss negative", func(c *Config) { c.StopLossPct = -0.05 }, true},
		{"lookback too short", func(c *Config) { c.LookbackDays = 30 }, true},
		{"zero momentum weight", func(c *Config) { c.Weights.Momentum = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected a validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
