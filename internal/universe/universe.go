// Package universe holds the default scan universe and batching helpers.
package universe

// Default is the built-in scan universe, grouped by theme. Overridable via
// config.
var Default = []string{
	// Indices & ETFs
	"SPY", "QQQ", "IWM", "DIA", "TLT", "TQQQ", "SQQQ", "SOXL", "SOXS", "UVXY",
	"ARKK", "XBI", "HYG", "GLD", "SLV", "UNG", "USO", "FXI", "KWEB", "EWZ",

	// Mega-cap tech
	"NVDA", "TSLA", "AMD", "AAPL", "MSFT", "AMZN", "GOOGL", "META", "NFLX",

	// Semiconductors
	"AVGO", "TSM", "ASML", "LRCX", "AMAT", "MU", "INTC", "QCOM", "TXN", "ADI",
	"KLAC", "MRVL", "ARM", "SMCI", "ON", "MCHP", "STM",

	// Software & cloud
	"ORCL", "ADBE", "CRM", "IBM", "NOW", "INTU", "UBER", "ABNB", "PANW",
	"SNOW", "PLTR", "CRWD", "DDOG", "ZS", "NET", "TEAM", "WDAY", "ADSK",
	"FTNT", "MDB", "GTLB",

	// Financials
	"JPM", "BAC", "WFC", "C", "GS", "MS", "BLK", "AXP", "V", "MA", "PYPL",
	"COF", "USB", "PNC", "SCHW", "SOFI", "NU", "AFRM", "UPST",

	// Crypto & blockchain
	"COIN", "MSTR", "MARA", "RIOT", "CLSK", "BITF", "HUT", "HOOD", "IBIT",

	// Consumer & retail
	"WMT", "COST", "TGT", "HD", "LOW", "MCD", "SBUX", "CMG", "NKE", "LULU",
	"DIS", "CMCSA", "BKNG", "MAR", "HLT", "RCL", "CCL", "NCLH",

	// Industrial & energy
	"CAT", "DE", "BA", "LMT", "RTX", "GE", "HON", "MMM", "UPS", "FDX", "XOM",
	"CVX", "COP", "SLB", "HAL", "OXY", "EOG", "PXD", "VLO",

	// Healthcare
	"LLY", "UNH", "JNJ", "PFE", "MRK", "ABBV", "TMO", "DHR", "AMGN", "GILD",
	"BIIB", "VRTX", "REGN", "ISRG",

	// High beta / growth
	"GME", "AMC", "CHWY", "ROKU", "DKNG", "SQ", "SHOP", "U", "RBLX", "CVNA",
	"LCID", "RIVN", "NIO", "XPEV", "LI", "BABA", "PDD", "JD", "BIDU", "SNAP",
	"PINS", "ETSY",
}

// Sector pairs an SPDR sector ETF with its display name.
type Sector struct {
	Symbol string
	Name   string
}

// Sectors lists the eleven SPDR sector ETFs tracked by the market pulse.
var Sectors = []Sector{
	{"XLK", "Technology"},
	{"XLF", "Financials"},
	{"XLV", "Healthcare"},
	{"XLY", "Discretionary"},
	{"XLP", "Staples"},
	{"XLE", "Energy"},
	{"XLU", "Utilities"},
	{"XLI", "Industrials"},
	{"XLB", "Materials"},
	{"XLRE", "Real Estate"},
	{"XLC", "Communication"},
}

// Benchmark is the market reference symbol for relative strength.
const Benchmark = "SPY"

// Chunk splits symbols into batches of at most size, preserving order.
// A non-positive size yields the whole universe as a single batch.
func Chunk(symbols []string, size int) [][]string {
	if len(symbols) == 0 {
		return nil
	}
	if size <= 0 {
		size = len(symbols)
	}
	batches := make([][]string, 0, (len(symbols)+size-1)/size)
	for start := 0; start < len(symbols); start += size {
		end := start + size
		if end > len(symbols) {
			end = len(symbols)
		}
		batches = append(batches, symbols[start:end])
	}
	return batches
}
