// Package main provides the entry point for the weekly picks CLI tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/cache"
	"github.com/yourusername/gridiron-edge/internal/cfbd"
	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/export"
	"github.com/yourusername/gridiron-edge/internal/logger"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/record"
	"github.com/yourusername/gridiron-edge/internal/repository"
	"github.com/yourusername/gridiron-edge/internal/service"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		year       = flag.Int("year", 0, "Season year (default: current season)")
		week       = flag.Int("week", 0, "Display week 1-20; 16-20 are postseason (default: current week)")
		view       = flag.String("view", "all", "View: all, strong, top")
		csvPath    = flag.String("csv", "", "Export picks to a CSV file")
		save       = flag.Bool("save", false, "Persist the run snapshot to the database")
		grade      = flag.Bool("grade", false, "Grade picks against final scores (completed weeks only)")
		history    = flag.Bool("history", false, "List saved run snapshots for the season and exit")
		runID      = flag.String("run", "", "Show a saved run snapshot by ID and exit")
	)
	flag.Parse()

	cfg := loadConfigWithSecrets(*configPath)
	appLog := logger.New(cfg.App.LogLevel, cfg.App.Environment)
	ctx := context.Background()

	season, displayWeek := service.CurrentWeek(time.Now())
	if *year != 0 {
		season = *year
	}
	if *week != 0 {
		displayWeek = *week
	}

	if *runID != "" {
		renderSavedRun(ctx, cfg, appLog, *runID)
		return
	}

	if *history {
		renderHistory(ctx, cfg, appLog, season)
		return
	}

	svc, cleanup := buildService(ctx, cfg, appLog, *save)
	defer cleanup()

	appLog.WithFields(logrus.Fields{
		"season": season,
		"week":   displayWeek,
		"view":   *view,
	}).Info("Computing weekly picks")

	result, err := svc.Run(ctx, season, displayWeek)
	if err != nil {
		appLog.WithError(err).Fatal("Pick run failed")
	}

	renderResult(result, *view, cfg.Model.TopN)

	if *grade {
		renderRecord(result)
	}

	if *csvPath != "" {
		if err := export.WritePicksFile(*csvPath, result.AllPicks); err != nil {
			appLog.WithError(err).Fatal("CSV export failed")
		}
		appLog.WithField("path", *csvPath).Info("Picks exported")
	}
}

func loadConfigWithSecrets(path string) *config.Config {
	cfg, err := config.LoadWithDefaults(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			log.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			log.Fatalf("Failed to load secrets: %v", err)
		}
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

func buildService(ctx context.Context, cfg *config.Config, appLog *logrus.Logger, save bool) (*service.WeeklyPicksService, func()) {
	httpLog := log.New(os.Stderr, "cfbd-http: ", log.LstdFlags)
	httpCfg := cfbd.DefaultHTTPClientConfig()
	httpCfg.Timeout = time.Duration(cfg.CFBD.TimeoutSeconds) * time.Second
	httpCfg.MaxRetries = cfg.CFBD.MaxRetries
	httpCfg.RateLimit = cfg.CFBD.RateLimit
	client, err := cfbd.NewClient(cfg.CFBD.BaseURL, cfg.CFBD.BearerToken, httpCfg, httpLog)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to create CFBD client")
	}

	store, err := cache.NewSnapshotStore(cfg.Cache.Dir, cfg.CacheTTL())
	if err != nil {
		appLog.WithError(err).Fatal("Failed to create snapshot cache")
	}

	var repos *repository.Repositories
	cleanup := func() { client.Close() }

	if save && cfg.Database.Enabled {
		db, err := database.NewDB(ctx, &cfg.Database)
		if err != nil {
			appLog.WithError(err).Fatal("Failed to connect to database")
		}
		repos, err = repository.NewRepositories(db)
		if err != nil {
			appLog.WithError(err).Fatal("Failed to initialize repositories")
		}
		cleanup = func() {
			db.Close()
			client.Close()
		}
	} else if save {
		appLog.Warn("--save requested but database is disabled in config; skipping persistence")
	}

	return service.NewWeeklyPicksService(client, store, repos, &cfg.Model, appLog), cleanup
}

func renderResult(result *service.WeeklyPicks, view string, topN int) {
	header := fmt.Sprintf("%d %s", result.Season, service.WeekLabel(result.Week))

	switch view {
	case "strong":
		fmt.Printf("\n%s - strong picks (%d)\n\n", header, len(result.Strong))
		renderPicks(result.Strong)
	case "top":
		fmt.Printf("\n%s - top %d by cover probability\n\n", header, topN)
		renderPicks(result.Top)
	default:
		fmt.Printf("\n%s - all games by edge (%d)\n\n", header, len(result.AllPicks))
		renderPicks(result.AllPicks)
	}
}

func openRepositories(ctx context.Context, cfg *config.Config, appLog *logrus.Logger) (*repository.Repositories, func()) {
	if !cfg.Database.Enabled {
		appLog.Fatal("Saved runs require the database; enable it in config")
	}

	db, err := database.NewDB(ctx, &cfg.Database)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to connect to database")
	}

	repos, err := repository.NewRepositories(db)
	if err != nil {
		db.Close()
		appLog.WithError(err).Fatal("Failed to initialize repositories")
	}

	return repos, db.Close
}

func renderSavedRun(ctx context.Context, cfg *config.Config, appLog *logrus.Logger, rawID string) {
	id, err := models.ParsePickRunID(rawID)
	if err != nil {
		appLog.WithError(err).Fatal("Invalid run ID")
	}

	repos, closeDB := openRepositories(ctx, cfg, appLog)
	defer closeDB()

	run, err := repos.PickRuns.GetByID(ctx, id)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to load run")
	}

	fmt.Printf("\nSaved run %s - %d %s (provider %s, created %s)\n\n",
		run.ID, run.Season, service.WeekLabel(run.Week), run.Provider,
		run.CreatedAt.Format(time.RFC3339))
	renderPicks(run.Picks)
}

func renderHistory(ctx context.Context, cfg *config.Config, appLog *logrus.Logger, season int) {
	repos, closeDB := openRepositories(ctx, cfg, appLog)
	defer closeDB()

	runs, err := repos.PickRuns.ListForSeason(ctx, season)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to list pick runs")
	}
	if len(runs) == 0 {
		fmt.Printf("No saved runs for the %d season.\n", season)
		return
	}

	fmt.Printf("\nSaved runs - %d season (%d)\n\n", season, len(runs))
	fmt.Printf("  %-36s %-20s %-10s %s\n", "RUN ID", "WEEK", "PROVIDER", "CREATED")
	for _, run := range runs {
		fmt.Printf("  %-36s %-20s %-10s %s\n",
			run.ID, service.WeekLabel(run.Week), run.Provider,
			run.CreatedAt.Format(time.RFC3339))
	}

	// Show the most recent run's card in full.
	latest, err := repos.PickRuns.GetByID(ctx, runs[0].ID)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to load latest run")
	}
	fmt.Printf("\nLatest run (%s):\n\n", service.WeekLabel(latest.Week))
	renderPicks(latest.Picks)
}

func renderRecord(result *service.WeeklyPicks) {
	games := make(map[string]*models.Game, len(result.Games))
	for i := range result.Games {
		g := &result.Games[i]
		games[g.HomeTeam+"|"+g.AwayTeam] = g
	}

	rec := &record.Record{}
	graded := 0
	for i := range result.AllPicks {
		p := &result.AllPicks[i]
		g, ok := games[p.HomeTeam+"|"+p.AwayTeam]
		if !ok || !g.IsFinal() {
			continue
		}
		res := record.GradeGame(p, g)
		rec.Add(res)
		if res != record.ResultNoAction {
			graded++
			fmt.Printf("  %-42s %-16s %4s  (%d-%d)\n", p.Matchup(), p.Label(), res, *g.HomeScore, *g.AwayScore)
		}
	}

	if graded == 0 {
		fmt.Println("  No final scores available to grade yet.")
		return
	}

	roi, _ := rec.ROI().Float64()
	fmt.Printf("\n  Record: %s  hit rate %.1f%%  ROI %+.1f%% at -110\n\n",
		rec, rec.HitRate()*100, roi*100)
}

func renderPicks(picks []models.Pick) {
	if len(picks) == 0 {
		fmt.Println("  (no picks)")
		return
	}

	fmt.Printf("  %-42s %8s %8s %7s %7s %5s  %s\n",
		"MATCHUP", "MODEL", "MARKET", "EDGE", "COVER", "TIER", "PICK")
	for i := range picks {
		p := &picks[i]
		fmt.Printf("  %-42s %8.2f %8.1f %7.2f %7.3f %5s  %s\n",
			p.Matchup(), p.ModelSpreadHome, p.MarketSpreadHome,
			p.EdgePoints, p.CoverProb, p.Tier, p.Label())
	}
	fmt.Println()
}
