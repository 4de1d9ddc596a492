// Package cfg loads the evaluator configuration: defaults first, optional
// YAML overrides, then validation. Every numeric constant the strategy
// depends on is versioned here instead of being scattered through the
// algorithms.
package cfg

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"gridlab/pkg/analysis"
	"gridlab/pkg/montecarlo"
	"gridlab/pkg/optimizer"
	"gridlab/pkg/simulation"
	"gridlab/pkg/utility/fixed"
)

var validate = validator.New()

type Config struct {
	Version     string `yaml:"version" default:"1"`
	Development bool   `yaml:"development" default:"false"`

	Fees struct {
		MakerPct    float64 `yaml:"maker_pct" default:"0.0002" validate:"gte=0,lt=1"`
		TakerPct    float64 `yaml:"taker_pct" default:"0.0004" validate:"gte=0,lt=1"`
		SlippagePct float64 `yaml:"slippage_pct" default:"0.0005" validate:"gte=0,lt=1"`
		IntradayPct float64 `yaml:"intraday_pct" default:"0.01" validate:"gt=0,lt=1"`
	} `yaml:"fees"`

	MonteCarlo struct {
		Seed           int64 `yaml:"seed" default:"0"`
		Workers        int   `yaml:"workers" default:"0" validate:"gte=0"`
		SampleLimit    int   `yaml:"sample_limit" default:"100" validate:"gte=1"`
		BaselineWindow int   `yaml:"baseline_window" default:"90" validate:"gte=2"`
	} `yaml:"monte_carlo"`

	Analysis struct {
		SeasonalWindow     int     `yaml:"seasonal_window" default:"30" validate:"gte=2"`
		RangeWindow        int     `yaml:"range_window" default:"90" validate:"gte=2"`
		RecencyDecay       float64 `yaml:"recency_decay" default:"50" validate:"gt=0"`
		MinRangeHistory    int     `yaml:"min_range_history" default:"180" validate:"gte=1"`
		FallbackBandPct    float64 `yaml:"fallback_band_pct" default:"0.15" validate:"gt=0,lt=1"`
		VolatilityWindow   int     `yaml:"volatility_window" default:"30" validate:"gte=2"`
		HighVolThreshold   float64 `yaml:"high_vol_threshold" default:"0.04" validate:"gt=0"`
		TrendThreshold     float64 `yaml:"trend_threshold" default:"0.05" validate:"gt=0"`
		BucketWidth        float64 `yaml:"bucket_width" default:"500" validate:"gt=0"`
		TopZones           int     `yaml:"top_zones" default:"5" validate:"gte=1"`
		FallbackVolatility float64 `yaml:"fallback_volatility" default:"0.02" validate:"gt=0"`
	} `yaml:"analysis"`

	Optimizer struct {
		MinCoveragePct        float64 `yaml:"min_coverage_pct" default:"0.08" validate:"gt=0,lt=1"`
		VolatileCoveragePct   float64 `yaml:"volatile_coverage_pct" default:"0.12" validate:"gt=0,lt=1"`
		LevelsRanging         int     `yaml:"levels_ranging" default:"50" validate:"gte=1"`
		LevelsTrending        int     `yaml:"levels_trending" default:"40" validate:"gte=1"`
		LevelsVolatile        int     `yaml:"levels_volatile" default:"60" validate:"gte=1"`
		MaintenanceMarginRate float64 `yaml:"maintenance_margin_rate" default:"0.005" validate:"gt=0,lt=1"`
		MarginRequirementRate float64 `yaml:"margin_requirement_rate" default:"0.01" validate:"gt=0,lt=1"`
		FundingFeeRate        float64 `yaml:"funding_fee_rate" default:"0.0001" validate:"gte=0,lt=1"`
		MinRecommended        float64 `yaml:"min_recommended" default:"50" validate:"gt=0"`
		ConfidenceDecay       float64 `yaml:"confidence_decay" default:"120" validate:"gt=0"`
	} `yaml:"optimizer"`
}

// Load applies defaults, merges the YAML file when a path is given and
// validates the result.
func Load(path string) (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("set defaults: %w", err)
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

func (c *Config) SimulationConfiguration() simulation.Configuration {
	return simulation.Configuration{
		MakerFee:      fixed.FromFloat64(c.Fees.MakerPct),
		TakerFee:      fixed.FromFloat64(c.Fees.TakerPct),
		Slippage:      fixed.FromFloat64(c.Fees.SlippagePct),
		IntradayRange: fixed.FromFloat64(c.Fees.IntradayPct),
	}
}

func (c *Config) MonteCarloConfiguration() montecarlo.Configuration {
	return montecarlo.Configuration{
		Seed:                c.MonteCarlo.Seed,
		WorkerCount:         c.MonteCarlo.Workers,
		SampleScenarioLimit: c.MonteCarlo.SampleLimit,
		BaselineWindow:      c.MonteCarlo.BaselineWindow,
		Simulation:          c.SimulationConfiguration(),
	}
}

func (c *Config) AnalysisConfiguration() analysis.Configuration {
	return analysis.Configuration{
		SeasonalWindow:     c.Analysis.SeasonalWindow,
		RangeWindow:        c.Analysis.RangeWindow,
		RecencyDecay:       c.Analysis.RecencyDecay,
		MinRangeHistory:    c.Analysis.MinRangeHistory,
		FallbackBandPct:    c.Analysis.FallbackBandPct,
		VolatilityWindow:   c.Analysis.VolatilityWindow,
		HighVolThreshold:   c.Analysis.HighVolThreshold,
		TrendThreshold:     c.Analysis.TrendThreshold,
		BucketWidth:        c.Analysis.BucketWidth,
		TopZones:           c.Analysis.TopZones,
		FallbackVolatility: c.Analysis.FallbackVolatility,
	}
}

func (c *Config) OptimizerConfiguration() optimizer.Configuration {
	return optimizer.Configuration{
		MinCoveragePct:        c.Optimizer.MinCoveragePct,
		VolatileCoveragePct:   c.Optimizer.VolatileCoveragePct,
		LevelsRanging:         c.Optimizer.LevelsRanging,
		LevelsTrending:        c.Optimizer.LevelsTrending,
		LevelsVolatile:        c.Optimizer.LevelsVolatile,
		MaintenanceMarginRate: c.Optimizer.MaintenanceMarginRate,
		MarginRequirementRate: c.Optimizer.MarginRequirementRate,
		FundingFeeRate:        c.Optimizer.FundingFeeRate,
		MinRecommended:        c.Optimizer.MinRecommended,
		Horizons:              []int{7, 30, 90, 180},
		ConfidenceDecay:       c.Optimizer.ConfidenceDecay,
	}
}
