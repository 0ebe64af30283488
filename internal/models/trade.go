package models

// Trade represents one closed options transaction mapped from a journal row.
// Trades are constructed once at ingestion and never mutated; date-range
// selection filters the list, it does not rewrite records.
type Trade struct {
	ID             string
	Timestamp      string // trade day as supplied by the source, joined by day-key
	Ticker         string
	OptionType     string
	Strike         float64
	ExpirationDate string
	Quantity       int
	BuyPrice       float64
	SellPrice      float64
	BuyTime        string // "HH:MM[:SS]" or "MM/DD/YYYY HH:MM:SS TZ"
	SellTime       string
	ProfitPercent  float64
	ProfitLoss     float64 // (SellPrice - BuyPrice) * Quantity * 100

	TradeThesis      string
	Rollup           string
	MarketConditions string
	TrendAlignment   string
	Setup            string
	Entry            string
	Exit             string
	RiskSizing       string
	BypassedRules    string
	BypassedArea     string
	AreasToImprove   string
	ChartScreenshot  string
}

// IsWin reports whether the trade closed with a positive P&L. Zero-P&L
// trades are neither wins nor losses.
func (t Trade) IsWin() bool { return t.ProfitLoss > 0 }

// IsLoss reports whether the trade closed with a negative P&L.
func (t Trade) IsLoss() bool { return t.ProfitLoss < 0 }

// ContractMultiplier is the fixed options contract multiplier applied when
// deriving P&L from per-contract prices.
const ContractMultiplier = 100

// DeriveProfitLoss computes the dollar P&L for an options trade from its
// per-contract entry and exit prices.
func DeriveProfitLoss(buyPrice, sellPrice float64, quantity int) float64 {
	return (sellPrice - buyPrice) * float64(quantity) * ContractMultiplier
}
