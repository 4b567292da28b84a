// Package export renders pick runs to CSV for spreadsheet analysis.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// csvHeader matches the pick fields column for column. The picked team is
// recoverable from side plus the matchup, so it gets no column of its own.
var csvHeader = []string{
	"home_team",
	"away_team",
	"provider",
	"home_rating",
	"away_rating",
	"model_spread_home",
	"market_spread_home",
	"edge_points",
	"cover_prob",
	"tier",
	"side",
}

// WritePicks writes picks as CSV, header first, preserving input order.
func WritePicks(w io.Writer, picks []models.Pick) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range picks {
		p := &picks[i]
		row := []string{
			p.HomeTeam,
			p.AwayTeam,
			p.Provider,
			formatFloat(p.HomeRating),
			formatFloat(p.AwayRating),
			formatFloat(p.ModelSpreadHome),
			formatFloat(p.MarketSpreadHome),
			formatFloat(p.EdgePoints),
			strconv.FormatFloat(p.CoverProb, 'f', 3, 64),
			string(p.Tier),
			string(p.Side),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", p.Matchup(), err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WritePicksFile writes picks to a CSV file, creating or truncating it.
func WritePicksFile(path string, picks []models.Pick) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}

	if err := WritePicks(f, picks); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close CSV file: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
