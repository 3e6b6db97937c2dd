package strategy

// Config carries every tunable the screening engine uses. The engine never
// reads files or environment variables; callers construct this explicitly.
type Config struct {
	RSIPeriod       int
	ATRPeriod       int
	VolumeSMAPeriod int
	ZScorePeriod    int
	NRLookback      int
	TrendLookback   int
	MinPrice        float64
	MinHistory      int
	MaxParallel     int
	Weights         Weights
}

// DefaultConfig returns the standard period set: RSI(14), ATR(14),
// volume SMA(14), z-score(20), NR7, $5 penny-stock floor and the 15-bar
// history minimum the RSI/ATR paths need.
func DefaultConfig() Config {
	return Config{
		RSIPeriod:       14,
		ATRPeriod:       14,
		VolumeSMAPeriod: 14,
		ZScorePeriod:    20,
		NRLookback:      7,
		TrendLookback:   20,
		MinPrice:        5,
		MinHistory:      15,
		MaxParallel:     8,
		Weights:         DefaultWeights(),
	}
}
