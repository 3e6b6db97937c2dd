package model

import "time"

// Trend direction flags.
const (
	TrendUp   = "Up"
	TrendDown = "Down"
)

// Contribution records one signal's points toward the composite score.
type Contribution struct {
	Name       string  `json:"name"`
	Points     float64 `json:"points"`
	Commentary string  `json:"commentary"`
}

// FeatureRecord is one symbol's fully computed metric snapshot for the
// latest candle in its series. Pointer fields are nil when the underlying
// indicator had insufficient history or a degenerate input; callers treat
// nil as "no signal", never as zero.
type FeatureRecord struct {
	Symbol        string         `json:"symbol"`
	Date          time.Time      `json:"date"`
	Price         float64        `json:"price"`
	ChangePct     float64        `json:"change_pct"`
	RSI           *float64       `json:"rsi,omitempty"`
	ATR           *float64       `json:"atr,omitempty"`
	ATRPct        *float64       `json:"atr_pct,omitempty"`
	ZScore        *float64       `json:"z_score,omitempty"`
	GapPct        *float64       `json:"gap_pct,omitempty"`
	RVOL          float64        `json:"rvol"`
	DollarVolM    float64        `json:"dollar_volume_m"`
	InsideBar     bool           `json:"inside_bar"`
	NR7           bool           `json:"nr7"`
	Trend         string         `json:"trend"`
	Score         float64        `json:"score"`
	Contributions []Contribution `json:"contributions,omitempty"`
	HistoryLen    int            `json:"-"`
}

// ScanReport is the ordered output of one screening pass.
type ScanReport struct {
	Opportunities []FeatureRecord `json:"opportunities"`
	ScannedCount  int             `json:"scanned_count"`
	Timestamp     time.Time       `json:"timestamp"`
}
