package analytics

import "math"

// ScoreAnchors are the scaling constants that map raw metrics onto the 0-100
// component scales. They are presentation heuristics, kept configurable
// rather than baked in.
type ScoreAnchors struct {
	// ProfitFactorExcellent is the profit factor that earns a full 100.
	ProfitFactorExcellent float64 `mapstructure:"profit_factor_excellent"`
	// WinLossExcellent is the avg win/loss ratio that earns a full 100.
	WinLossExcellent float64 `mapstructure:"win_loss_excellent"`
	// DrawdownScale is the dollar drawdown that zeroes the drawdown component.
	DrawdownScale float64 `mapstructure:"drawdown_scale"`
	// RecoveryScale multiplies the net-P&L-to-drawdown ratio.
	RecoveryScale float64 `mapstructure:"recovery_scale"`
}

// DefaultAnchors returns the standard anchor set.
func DefaultAnchors() ScoreAnchors {
	return ScoreAnchors{
		ProfitFactorExcellent: 3.0,
		WinLossExcellent:      3.0,
		DrawdownScale:         1000,
		RecoveryScale:         50,
	}
}

// ScoreComponents are the six 0-100 axes of the composite score.
type ScoreComponents struct {
	WinPercent     float64 `json:"winPercent"`
	ProfitFactor   float64 `json:"profitFactor"`
	Consistency    float64 `json:"consistency"`
	AvgWinLoss     float64 `json:"avgWinLoss"`
	MaxDrawdown    float64 `json:"maxDrawdown"`
	RecoveryFactor float64 `json:"recoveryFactor"`
}

// Score is the composite score: six components and their unweighted mean.
type Score struct {
	Components ScoreComponents `json:"components"`
	Overall    int             `json:"overall"`
}

// ComputeScore maps a metrics block onto the composite 0-100 score. With no
// losing history the recovery axis sits at its neutral midpoint of 50 rather
// than rewarding or punishing an undefined ratio.
func ComputeScore(m Metrics, a ScoreAnchors) Score {
	var c ScoreComponents

	c.WinPercent = clamp(m.TradeWinPercent, 0, 100)
	c.ProfitFactor = clamp(m.ProfitFactor/a.ProfitFactorExcellent*100, 0, 100)
	c.Consistency = clamp(m.DayWinPercent, 0, 100)
	c.AvgWinLoss = clamp(m.AvgWinLossRatio/a.WinLossExcellent*100, 0, 100)
	c.MaxDrawdown = clamp(100-m.MaxDrawdown/a.DrawdownScale*100, 0, 100)

	if m.TotalLoss > 0 && m.MaxDrawdown > 0 {
		c.RecoveryFactor = clamp(m.NetPnL/m.MaxDrawdown*a.RecoveryScale, 0, 100)
	} else {
		c.RecoveryFactor = 50
	}

	c.WinPercent = Round2(c.WinPercent)
	c.ProfitFactor = Round2(c.ProfitFactor)
	c.Consistency = Round2(c.Consistency)
	c.AvgWinLoss = Round2(c.AvgWinLoss)
	c.MaxDrawdown = Round2(c.MaxDrawdown)
	c.RecoveryFactor = Round2(c.RecoveryFactor)

	mean := (c.WinPercent + c.ProfitFactor + c.Consistency +
		c.AvgWinLoss + c.MaxDrawdown + c.RecoveryFactor) / 6
	return Score{Components: c, Overall: int(math.Round(mean))}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
