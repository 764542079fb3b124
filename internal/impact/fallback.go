package impact

import (
	"strings"

	"github.com/vheikkine/franchiselab/internal/business"
	"github.com/vheikkine/franchiselab/internal/random"
)

// Fallback derives a delta from keyword triggers on the choice text alone.
// Each metric has an independent trigger; within a metric the first matching
// branch wins. Metrics without a match stay at zero.
func Fallback(choiceDescription string) business.Delta {
	var delta business.Delta
	lower := strings.ToLower(choiceDescription)

	switch {
	case containsAny(lower, "invest", "purchase", "buy", "spend"):
		delta.CashFlow = random.IntBetween(-25000, -10000)
	case containsAny(lower, "save", "reduce cost", "minimize"):
		delta.CashFlow = random.IntBetween(5000, 15000)
	}

	if containsAny(lower, "customer", "service", "experience", "quality") {
		delta.CustomerSatisfaction = random.IntBetween(5, 15)
	}

	if containsAny(lower, "expand", "grow", "improve", "upgrade") {
		delta.GrowthPotential = random.IntBetween(5, 15)
	}

	switch {
	case containsAny(lower, "safe", "secure", "protect"):
		delta.RiskLevel = random.IntBetween(-15, -5)
	case containsAny(lower, "risky", "aggressive", "ambitious"):
		delta.RiskLevel = random.IntBetween(5, 15)
	}

	return delta
}

func containsAny(text string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
