// Package duckdb loads historical daily candles from a DuckDB database. The
// evaluation core itself performs no I/O; this reader is the collaborator
// that feeds it.
package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb"

	"gridlab/pkg/common"
	"gridlab/pkg/utility/fixed"
)

type Reader struct {
	dataSourceName string
	db             *sql.DB
}

func NewReader(dataSourceName string) *Reader {
	return &Reader{
		dataSourceName: dataSourceName,
	}
}

func (r *Reader) Connect() error {
	db, err := sql.Open("duckdb", r.dataSourceName)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	r.db = db
	return nil
}

func (r *Reader) Close() {
	_ = r.db.Close()
}

// LoadCandles reads the symbol's daily candles in chronological order.
// High/low/volume columns may be NULL; absent values stay zero and the core
// falls back to the close price.
func (r *Reader) LoadCandles(ctx context.Context, symbol string, from, to time.Time) ([]common.Candle, error) {

	query := fmt.Sprintf(`SELECT ts, close, high, low, volume FROM %s_daily WHERE ts BETWEEN ? AND ? ORDER BY ts`, symbol)

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error preparing query: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var candles []common.Candle
	for rows.Next() {
		var (
			ts                time.Time
			close             float64
			high, low, volume sql.NullFloat64
		)
		if err := rows.Scan(&ts, &close, &high, &low, &volume); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}

		candle := common.Candle{
			TimeStamp: ts,
			Close:     fixed.FromFloat64(close),
		}
		if high.Valid {
			candle.High = fixed.FromFloat64(high.Float64)
		}
		if low.Valid {
			candle.Low = fixed.FromFloat64(low.Float64)
		}
		if volume.Valid {
			candle.Volume = fixed.FromFloat64(volume.Float64)
		}
		candles = append(candles, candle)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error scanning rows: %w", err)
	}
	return candles, nil
}
