// Package business holds the four-metric business-health ledger and the pure
// transforms applied to it during a decision journey. The ledger itself is
// owned by the surrounding application; this package only computes.
package business

import "math"

// Bounds for a single decision's impact on the metrics.
const (
	CashFlowDeltaMin = -50000
	CashFlowDeltaMax = 25000
	PercentDeltaMin  = -25
	PercentDeltaMax  = 25
)

// Delta is the bounded four-field adjustment produced per decision.
//
// After validation all four fields are always present: out-of-range values are
// clamped, missing ones substituted, never left absent.
type Delta struct {
	CashFlow             int `json:"cash_flow"`
	CustomerSatisfaction int `json:"customer_satisfaction"`
	GrowthPotential      int `json:"growth_potential"`
	RiskLevel            int `json:"risk_level"`
}

// Clamp forces every field into its declared range.
func (d Delta) Clamp() Delta {
	d.CashFlow = clamp(d.CashFlow, CashFlowDeltaMin, CashFlowDeltaMax)
	d.CustomerSatisfaction = clamp(d.CustomerSatisfaction, PercentDeltaMin, PercentDeltaMax)
	d.GrowthPotential = clamp(d.GrowthPotential, PercentDeltaMin, PercentDeltaMax)
	d.RiskLevel = clamp(d.RiskLevel, PercentDeltaMin, PercentDeltaMax)
	return d
}

// Sum adds up all four fields. The fallback analysis keys its overall-outlook
// sentence on whether the sum is positive.
func (d Delta) Sum() int {
	return d.CashFlow + d.CustomerSatisfaction + d.GrowthPotential + d.RiskLevel
}

// Metrics is the cumulative business-health record of a journey.
//
// CashFlow is unbounded and may go negative. The three percentage fields stay
// within [0, 100].
type Metrics struct {
	CashFlow             int `json:"cash_flow"`
	CustomerSatisfaction int `json:"customer_satisfaction"`
	GrowthPotential      int `json:"growth_potential"`
	RiskLevel            int `json:"risk_level"`
}

// InitialMetrics returns the fixed starting state of every journey.
func InitialMetrics() Metrics {
	return Metrics{
		CashFlow:             100000,
		CustomerSatisfaction: 50,
		GrowthPotential:      50,
		RiskLevel:            30,
	}
}

// Apply adds the delta and clamps the percentage fields to [0, 100].
// CashFlow is never clamped.
func (m Metrics) Apply(d Delta) Metrics {
	m.CashFlow += d.CashFlow
	m.CustomerSatisfaction = clamp(m.CustomerSatisfaction+d.CustomerSatisfaction, 0, 100)
	m.GrowthPotential = clamp(m.GrowthPotential+d.GrowthPotential, 0, 100)
	m.RiskLevel = clamp(m.RiskLevel+d.RiskLevel, 0, 100)
	return m
}

// HealthScore derives an overall score in [0, 100] from the metrics.
//
// Cash flow is weighted against the initial bankroll and capped at 1 so that
// hoarding cash cannot push the score past the other metrics.
func (m Metrics) HealthScore() int {
	score := 0.4*math.Min(float64(m.CashFlow)/100000, 1) +
		0.3*(float64(m.CustomerSatisfaction)/100) +
		0.2*(float64(m.GrowthPotential)/100) -
		0.1*(float64(m.RiskLevel)/100)
	return clamp(int(math.Round(score*100)), 0, 100)
}

// Status describes the overall condition of the franchise.
type Status string

const (
	StatusThriving   Status = "Thriving"
	StatusStable     Status = "Stable"
	StatusChallenged Status = "Challenged"
	StatusStruggling Status = "Struggling"
	StatusCritical   Status = "Critical"
)

// StatusForScore maps a health score to a status with a one-line description.
func StatusForScore(score int) (Status, string) {
	switch {
	case score >= 80:
		return StatusThriving, "Your franchise is in excellent condition with strong financials and growth."
	case score >= 55:
		return StatusStable, "Your franchise is performing well with good prospects."
	case score >= 35:
		return StatusChallenged, "Your franchise faces some challenges but remains viable."
	case score >= 20:
		return StatusStruggling, "Your franchise is experiencing significant difficulties and needs attention."
	default:
		return StatusCritical, "Your franchise is in critical condition and at risk of failure."
	}
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
