package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"gridlab/internal/cfg"
	"gridlab/internal/dbg"
	"gridlab/pkg/analysis"
	"gridlab/pkg/common"
	"gridlab/pkg/data/duckdb"
	"gridlab/pkg/montecarlo"
	"gridlab/pkg/optimizer"
	"gridlab/pkg/utility/fixed"
)

func main() {
	_ = godotenv.Load()

	opts := parseOptions()

	conf, err := cfg.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration:", err)
		os.Exit(1)
	}

	logger := dbg.NewLogger(conf.Development)
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	logger.Info(fmt.Sprintf("gridlab %s", Version))
	defer logger.Info("done")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, logger, conf, opts); err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger, conf *cfg.Config, opts options) error {
	from, err := time.Parse(time.DateOnly, opts.From)
	if err != nil {
		return fmt.Errorf("parse from date: %w", err)
	}
	to := time.Now().UTC()
	if opts.To != "" {
		if to, err = time.Parse(time.DateOnly, opts.To); err != nil {
			return fmt.Errorf("parse to date: %w", err)
		}
	}

	reader := duckdb.NewReader(opts.DataSource)
	if err := reader.Connect(); err != nil {
		return fmt.Errorf("open candle store: %w", err)
	}
	defer reader.Close()

	candles, err := reader.LoadCandles(ctx, opts.Symbol, from, to)
	if err != nil {
		return fmt.Errorf("load candles: %w", err)
	}
	if len(candles) == 0 {
		return fmt.Errorf("no candles for %s between %s and %s", opts.Symbol, opts.From, to.Format(time.DateOnly))
	}
	logger.Info("candles loaded",
		zap.String("symbol", opts.Symbol),
		zap.Int("count", len(candles)),
		zap.Time("from", from),
		zap.Time("to", to))

	currentPrice := candles[len(candles)-1].Close
	investment := fixed.FromFloat64(opts.Investment)
	leverage := fixed.FromFloat64(opts.Leverage)

	analyzer := analysis.NewAnalyzer(logger, conf.AnalysisConfiguration())
	opt := optimizer.NewOptimizer(logger, analyzer, conf.OptimizerConfiguration())

	proposal, err := opt.Optimize(candles, currentPrice, leverage, investment)
	if err != nil {
		return fmt.Errorf("optimize grid: %w", err)
	}

	orchestrator := montecarlo.NewOrchestrator(logger, conf.MonteCarloConfiguration())
	result, err := orchestrator.Run(ctx, candles, proposal.Grid, investment, leverage, opts.Simulations, opts.Projection)
	if err != nil {
		return fmt.Errorf("monte carlo: %w", err)
	}

	printReport(logger, proposal, result)
	return nil
}

func printReport(logger *zap.Logger, p common.OptimizedGridParameters, r common.MonteCarloResult) {
	logger.Info("proposal",
		zap.String("regime", string(p.Regime)),
		zap.String("lower", p.Grid.LowerBound.String()),
		zap.String("upper", p.Grid.UpperBound.String()),
		zap.Int("levels", p.Grid.LevelCount),
		zap.Float64("risk_score", p.RiskScore),
		zap.String("recommended_amount", p.RecommendedAmount.String()),
		zap.String("liquidation_price", p.LiquidationPrice.String()))

	for _, h := range p.Horizons {
		logger.Info("horizon",
			zap.Int("days", h.HorizonDays),
			zap.Float64("expected_return_pct", h.ExpectedReturnPct),
			zap.Float64("success_probability", h.SuccessProbability),
			zap.Float64("estimated_apr", h.EstimatedAPR))
	}

	logger.Info("monte carlo",
		zap.String("run_id", r.RunID.String()),
		zap.Int("projection_days", r.ProjectionDays),
		zap.Float64("p10", r.Statistics.P10),
		zap.Float64("p50", r.Statistics.P50),
		zap.Float64("p90", r.Statistics.P90),
		zap.Float64("profit_probability", r.Statistics.ProfitProbability),
		zap.Float64("expected_trades", r.Statistics.ExpectedTrades),
		zap.Float64("expected_win_rate", r.Statistics.ExpectedWinRate))
}
