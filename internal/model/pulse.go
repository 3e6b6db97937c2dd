package model

import "time"

// SectorStrength is one sector ETF's standing against the benchmark.
type SectorStrength struct {
	Symbol           string  `json:"symbol"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	ChangePct        float64 `json:"change"`
	RelativeStrength float64 `json:"relative_strength"`
}

// PulseReport ranks the sector ETFs by relative strength against SPY.
type PulseReport struct {
	SPYChangePct float64          `json:"spy_change"`
	Sectors      []SectorStrength `json:"sectors"`
	UpdatedAt    time.Time        `json:"last_updated"`
}
