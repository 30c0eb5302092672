package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"StockScout/internal/collector"
	"StockScout/internal/config"
	"StockScout/internal/notifier"
	"StockScout/internal/recorder"
	"StockScout/internal/scanner"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockScout starting...")

	budgetFlag := flag.Float64("budget", 0, "total USD budget (e.g. 1000)")
	daemonFlag := flag.Bool("daemon", false, "run scheduled scans instead of a single run")
	flag.Parse()
	budgetSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "budget" {
			budgetSet = true
		}
	})

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] load .env: %v", err)
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRestFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init collector
	col := collector.NewCollector(fetcher, cfg.Universe, cfg.LookbackDays)

	// Init report sinks: Telegram when configured, console otherwise
	var primary notifier.Sink
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		primary = tn
	} else {
		log.Println("[WARN] Telegram not configured, reports go to console only")
	}
	disp := notifier.NewDispatcher(primary)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sc := scanner.NewScanner(ctx, col, cfg, disp, rec)

	if *daemonFlag {
		runDaemon(ctx, cancel, sc, tn)
		return
	}

	budget, err := resolveBudget(*budgetFlag, budgetSet, os.Stdin)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	if _, err := sc.Run(budget); err != nil {
		log.Fatalf("[FATAL] scan: %v", err)
	}
}

// resolveBudget returns the budget from the -budget flag when it was
// passed, or prompts for one interactively. Both sources converge on one
// positive number; an explicit zero or negative flag is rejected rather
// than falling through to the prompt.
func resolveBudget(flagValue float64, flagSet bool, in io.Reader) (float64, error) {
	if flagSet {
		if flagValue <= 0 {
			return 0, fmt.Errorf("budget must be positive, got %.2f", flagValue)
		}
		return flagValue, nil
	}

	fmt.Print("Enter budget in USD (e.g. 1000): ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("read budget: %w", err)
	}
	budget, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil || budget <= 0 {
		return 0, fmt.Errorf("invalid budget %q", strings.TrimSpace(line))
	}
	return budget, nil
}

func runDaemon(ctx context.Context, cancel context.CancelFunc, sc *scanner.Scanner, tn *notifier.TelegramNotifier) {
	if err := sc.RegisterCron(); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sc.Start()
	defer sc.Stop()

	if tn != nil {
		go tn.StartPolling(ctx, sc.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing scan now")
		go sc.HandleCommand("/scan")
	}

	log.Println("[INFO] StockScout is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StockScout stopped")
}
