package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/gridiron-edge/internal/cache"
	"github.com/yourusername/gridiron-edge/internal/cfbd"
	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/edge"
	"github.com/yourusername/gridiron-edge/internal/logger"
	"github.com/yourusername/gridiron-edge/internal/service"
)

// Build information - set via ldflags
var (
	Version = "dev"
)

var (
	configFile string
	yearFlag   int
	weekFlag   int
	legsFlag   int
	stakeFlag  string
	appLog     *logrus.Logger
	cfg        *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config/config.yaml", "Path to configuration file")
	rootCmd.Flags().IntVarP(&yearFlag, "year", "y", 0, "Season year (default: current season)")
	rootCmd.Flags().IntVarP(&weekFlag, "week", "w", 0, "Display week 1-20 (default: current week)")
	rootCmd.Flags().IntVarP(&legsFlag, "legs", "l", 0, "Number of parlay legs (2-6)")
	rootCmd.Flags().StringVarP(&stakeFlag, "stake", "s", "100", "Stake amount for payout projection")
}

var rootCmd = &cobra.Command{
	Use:     "parlays",
	Short:   "Enumerate parlay combinations from the weekly betting card",
	Long:    `Builds the weekly pick card, pools the highest-confidence tier A and B picks, and enumerates every parlay combination of the requested size ranked by joint cover probability.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadWithDefaults(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		appLog = logger.New(cfg.App.LogLevel, cfg.App.Environment)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParlays(cmd.Context())
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func runParlays(ctx context.Context) error {
	season, week := service.CurrentWeek(time.Now())
	if yearFlag != 0 {
		season = yearFlag
	}
	if weekFlag != 0 {
		week = weekFlag
	}
	legs := legsFlag
	if legs == 0 {
		legs = cfg.Parlay.DefaultLegs
	}
	if legs < edge.MinParlayLegs || legs > edge.MaxParlayLegs {
		return fmt.Errorf("legs must be between %d and %d, got %d", edge.MinParlayLegs, edge.MaxParlayLegs, legs)
	}

	stake, err := decimal.NewFromString(stakeFlag)
	if err != nil || stake.IsNegative() {
		return fmt.Errorf("invalid stake %q", stakeFlag)
	}

	svc, cleanup, err := buildPicksService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := svc.Run(ctx, season, week)
	if err != nil {
		return fmt.Errorf("pick run failed: %w", err)
	}

	pool := edge.ParlayPool(result.AllPicks, legs)
	combos, err := edge.EnumerateParlays(result.AllPicks, legs)
	if err != nil {
		return fmt.Errorf("cannot build %d-leg parlays from a pool of %d picks: %w", legs, len(pool), err)
	}

	payout := edge.PayoutMultiplier(legs)
	returns := edge.ParlayReturns(stake, legs)

	fmt.Printf("\n%d %s - %d-leg parlays from a pool of %d picks\n", result.Season, service.WeekLabel(result.Week), legs, len(pool))
	fmt.Printf("Payout at -110 per leg: %.2fx (%s stake returns %s)\n\n", payout, stake.StringFixed(2), returns.StringFixed(2))

	shown := cfg.Parlay.ShowTop
	if shown > len(combos) {
		shown = len(combos)
	}
	for i := 0; i < shown; i++ {
		combo := combos[i]
		fmt.Printf("#%d  joint cover probability %.4f\n", i+1, combo.JointProb)
		for j := range combo.Legs {
			leg := &combo.Legs[j]
			fmt.Printf("    %-42s %s  cover %.3f  tier %s\n", leg.Matchup(), leg.Label(), leg.CoverProb, leg.Tier)
		}
		fmt.Println()
	}
	if len(combos) > shown {
		fmt.Printf("(%d more combinations not shown)\n", len(combos)-shown)
	}

	return nil
}

func buildPicksService(ctx context.Context) (*service.WeeklyPicksService, func(), error) {
	httpLog := log.New(os.Stderr, "cfbd-http: ", log.LstdFlags)
	httpCfg := cfbd.DefaultHTTPClientConfig()
	httpCfg.Timeout = time.Duration(cfg.CFBD.TimeoutSeconds) * time.Second
	httpCfg.MaxRetries = cfg.CFBD.MaxRetries
	httpCfg.RateLimit = cfg.CFBD.RateLimit

	client, err := cfbd.NewClient(cfg.CFBD.BaseURL, cfg.CFBD.BearerToken, httpCfg, httpLog)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create CFBD client: %w", err)
	}

	store, err := cache.NewSnapshotStore(cfg.Cache.Dir, cfg.CacheTTL())
	if err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to create snapshot cache: %w", err)
	}

	svc := service.NewWeeklyPicksService(client, store, nil, &cfg.Model, appLog)
	return svc, func() { client.Close() }, nil
}
