package main

import (
	"flag"
	"os"
	"strconv"
)

const Version = "0.3.0"

type options struct {
	ConfigPath string
	DataSource string
	Symbol     string
	From       string
	To         string

	Investment  float64
	Leverage    float64
	Simulations int
	Projection  int
}

// parseOptions resolves flags with GRIDLAB_* environment fallbacks, so the
// binary works both interactively and from a scheduler.
func parseOptions() options {
	var o options

	flag.StringVar(&o.ConfigPath, "config", envStr("GRIDLAB_CONFIG", ""), "path to YAML configuration")
	flag.StringVar(&o.DataSource, "data", envStr("GRIDLAB_DATA", "data/candles.duckdb"), "duckdb database with daily candles")
	flag.StringVar(&o.Symbol, "symbol", envStr("GRIDLAB_SYMBOL", "btcusdt"), "symbol, selects the <symbol>_daily table")
	flag.StringVar(&o.From, "from", envStr("GRIDLAB_FROM", "2020-01-01"), "history start date, YYYY-MM-DD")
	flag.StringVar(&o.To, "to", envStr("GRIDLAB_TO", ""), "history end date, YYYY-MM-DD, empty means today")

	flag.Float64Var(&o.Investment, "investment", envFloat("GRIDLAB_INVESTMENT", 10000), "investment amount")
	flag.Float64Var(&o.Leverage, "leverage", envFloat("GRIDLAB_LEVERAGE", 1), "leverage multiplier, at least 1")
	flag.IntVar(&o.Simulations, "sims", envInt("GRIDLAB_SIMS", 1000), "number of Monte Carlo trials")
	flag.IntVar(&o.Projection, "days", envInt("GRIDLAB_DAYS", 90), "projection horizon in days")

	flag.Parse()
	return o
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
