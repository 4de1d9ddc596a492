package simulation

import (
	"gridlab/pkg/utility/fixed"
)

// Configuration collects the execution-cost constants. The defaults are part
// of the reproducibility contract; change them only through this structure.
type Configuration struct {
	MakerFee fixed.Point // fee rate applied on close, 0.02% default
	TakerFee fixed.Point // fee rate applied on open, 0.04% default
	Slippage fixed.Point // adverse fill adjustment, 0.05% default

	// IntradayRange approximates the day's high/low from the close, since no
	// intraday data reaches this core. Documented simplification.
	IntradayRange fixed.Point
}

func DefaultConfiguration() Configuration {
	return Configuration{
		MakerFee:      fixed.FromInt64(2, 4),  // 0.0002
		TakerFee:      fixed.FromInt64(4, 4),  // 0.0004
		Slippage:      fixed.FromInt64(5, 4),  // 0.0005
		IntradayRange: fixed.FromInt64(1, 2),  // 0.01
	}
}
