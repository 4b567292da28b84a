package edge

import (
	"fmt"

	"github.com/yourusername/gridiron-edge/internal/config"
)

// FromConfig builds model parameters from application configuration.
// Postseason weeks are mostly neutral site, so the caller flips the
// home-field value through the postseason flag.
func FromConfig(cfg *config.ModelConfig, postseason bool) (Params, error) {
	if cfg.StdDev <= 0 {
		return Params{}, fmt.Errorf("std_dev must be positive, got %v", cfg.StdDev)
	}
	if cfg.TierA <= cfg.TierB || cfg.TierB <= cfg.TierC {
		return Params{}, fmt.Errorf("tier thresholds must descend: a=%v b=%v c=%v", cfg.TierA, cfg.TierB, cfg.TierC)
	}

	homeField := cfg.HomeField
	if postseason {
		homeField = cfg.PostseasonHomeField
	}

	return Params{
		HomeField:         homeField,
		StdDev:            cfg.StdDev,
		PreferredProvider: cfg.PreferredProvider,
		Thresholds: Thresholds{
			TierA: cfg.TierA,
			TierB: cfg.TierB,
			TierC: cfg.TierC,
		},
	}, nil
}
