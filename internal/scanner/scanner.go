package scanner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"StockScout/internal/allocator"
	"StockScout/internal/collector"
	"StockScout/internal/config"
	"StockScout/internal/model"
	"StockScout/internal/notifier"
	"StockScout/internal/recorder"
	"StockScout/internal/strategy"

	"github.com/robfig/cron/v3"
)

// Scanner runs the scan pipeline: collect → score → rank → allocate →
// report. It also owns the cron schedule and Telegram command handling
// for daemon mode.
type Scanner struct {
	Cron       *cron.Cron
	Collector  *collector.Collector
	Config     *config.Config
	Dispatcher *notifier.Dispatcher
	Recorder   recorder.Recorder
	Ctx        context.Context
}

// NewScanner creates a new Scanner.
func NewScanner(ctx context.Context, col *collector.Collector, cfg *config.Config, disp *notifier.Dispatcher, rec recorder.Recorder) *Scanner {
	return &Scanner{
		Cron:       cron.New(cron.WithSeconds()),
		Collector:  col,
		Config:     cfg,
		Dispatcher: disp,
		Recorder:   rec,
		Ctx:        ctx,
	}
}

// Run executes one full scan with the given budget, delivers the report,
// and records the result. Per-symbol failures are collected into the
// result; only an invalid budget is returned as an error.
func (s *Scanner) Run(budget float64) (*model.ScanResult, error) {
	log.Printf("[INFO] scanning universe: %v", s.Collector.Universe)

	collected, dropped := s.Collector.CollectUniverse()

	scored := make([]model.ScoredSymbol, len(collected))
	for i, c := range collected {
		scored[i] = model.ScoredSymbol{
			Symbol:     c.Symbol,
			Indicators: c.Indicators,
			Score:      s.Config.Weights.Score(c.Indicators),
		}
		log.Printf("[INFO] %s: score=%.3f price=$%.2f rsi=%.1f",
			c.Symbol, scored[i].Score, c.Indicators.LastPrice, c.Indicators.RSI14)
	}

	ranked := strategy.Rank(scored, s.Config.TopN)

	res := &model.ScanResult{
		RequestedN: s.Config.TopN,
		Dropped:    dropped,
		ScannedAt:  time.Now(),
	}

	plan, err := allocator.Allocate(ranked, budget, s.Config.TakeProfitPct, s.Config.StopLossPct)
	switch {
	case err == nil:
		res.Plan = plan
	case errors.Is(err, allocator.ErrNoPicks):
		log.Println("[WARN] no eligible picks for this scan")
	default:
		return nil, err
	}

	report := notifier.FormatScanReport(res)
	s.Dispatcher.Dispatch(s.Ctx, report)

	if err := s.Recorder.RecordScan(res); err != nil {
		log.Printf("[ERROR] record scan: %v", err)
	}
	return res, nil
}

// RegisterCron schedules the scan for daemon mode, funded by the
// configured default budget.
func (s *Scanner) RegisterCron() error {
	if s.Config.DefaultBudget <= 0 {
		return fmt.Errorf("scheduled scans need a positive default_budget")
	}
	if _, err := s.Cron.AddFunc(s.Config.Schedule.ScanCron, s.scheduledScan); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scanner) Start() {
	s.Cron.Start()
	log.Println("[INFO] scan schedule started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scanner) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scan schedule stopped")
}

func (s *Scanner) scheduledScan() {
	log.Println("[INFO] running scheduled scan")
	if _, err := s.Run(s.Config.DefaultBudget); err != nil {
		log.Printf("[ERROR] scheduled scan: %v", err)
	}
}

// HandleCommand processes a Telegram command and returns a reply.
func (s *Scanner) HandleCommand(command string) string {
	switch command {
	case "/scan":
		go s.scheduledScan()
		return "Scan started, report follows."
	case "/config":
		return notifier.FormatConfigSummary(
			s.Config.Universe, s.Config.TopN,
			s.Config.TakeProfitPct, s.Config.StopLossPct, s.Config.DefaultBudget)
	default:
		return "Available commands:\n• /scan — run a scan now\n• /config — show scan parameters"
	}
}
