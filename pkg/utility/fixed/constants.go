package fixed

var (
	Zero    = FromInt(0, 0)
	One     = FromInt(1, 0)
	Hundred = FromInt(100, 0)

	// Sqrt90 is the 90-day annualization factor applied to the simulator's
	// Sharpe ratio. It is fixed regardless of the actual projection length.
	Sqrt90 = FromInt(90, 0).Sqrt()
)
