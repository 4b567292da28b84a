package main

import (
	"context"
	"fmt"
	"log"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/logger"
	"github.com/yourusername/gridiron-edge/internal/odds"
	"github.com/yourusername/gridiron-edge/internal/oddsapi"
)

// Build information - set via ldflags
var (
	Version = "dev"
)

var (
	configFile string
	marketKey  string
	limitFlag  int
	appLog     *logrus.Logger
	cfg        *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config/config.yaml", "Path to configuration file")
	rootCmd.Flags().StringVarP(&marketKey, "market", "m", "", "Sport key for the outrights market (default: configured market)")
	rootCmd.Flags().IntVarP(&limitFlag, "limit", "n", 0, "Show only the top N outcomes by implied probability")
}

var rootCmd = &cobra.Command{
	Use:     "futures",
	Short:   "Show championship futures board with implied probabilities",
	Long:    `Fetches season-long outright odds, deduplicates each outcome across bookmakers keeping the best price, and prints the board ranked by implied probability.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadWithDefaults(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		appLog = logger.New(cfg.App.LogLevel, cfg.App.Environment)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFutures(cmd.Context())
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func runFutures(ctx context.Context) error {
	market := marketKey
	if market == "" {
		market = cfg.OddsAPI.MarketKey
	}
	if market == "" {
		return fmt.Errorf("no market key configured; set odds_api.market_key or pass --market")
	}

	client, err := oddsapi.NewClient(cfg.OddsAPI.BaseURL, cfg.OddsAPI.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create odds client: %w", err)
	}

	appLog.WithField("market", market).Info("Fetching futures odds")

	outcomes, err := client.GetFuturesOdds(ctx, market)
	if err != nil {
		return fmt.Errorf("failed to fetch futures odds: %w", err)
	}
	if len(outcomes) == 0 {
		fmt.Println("No futures outcomes posted for this market.")
		return nil
	}

	board := odds.RankByImplied(odds.DedupeBestPrice(outcomes))
	if limitFlag > 0 && limitFlag < len(board) {
		board = board[:limitFlag]
	}

	fmt.Printf("\nFutures board - %s (%d outcomes)\n\n", market, len(board))
	fmt.Printf("  %-36s %8s %9s\n", "OUTCOME", "ODDS", "IMPLIED")
	for i := range board {
		o := &board[i]
		fmt.Printf("  %-36s %8s %8.1f%%\n", o.Name, odds.FormatAmerican(o.AmericanOdds), o.ImpliedProb)
	}
	fmt.Println()

	return nil
}
