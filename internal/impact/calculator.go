// Package impact turns a decision into a bounded metrics delta, preferring
// the completion service and degrading to a keyword rule engine.
package impact

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/vheikkine/franchiselab/internal/ai"
	"github.com/vheikkine/franchiselab/internal/business"
	"github.com/vheikkine/franchiselab/internal/errors"
	"github.com/vheikkine/franchiselab/internal/heuristics"
)

const (
	maxAttempts      = 3
	calculatorSystem = "I will analyze the business decision and calculate metric impacts."
)

// Calculator computes metric deltas for decisions.
type Calculator struct {
	completer ai.Completer
	// pause is the wait between failed attempts.
	pause  time.Duration
	logger *slog.Logger
}

// NewCalculator wires a calculator to a completion backend. The pause applies
// between failed attempts.
func NewCalculator(completer ai.Completer, pause time.Duration, logger *slog.Logger) *Calculator {
	return &Calculator{
		completer: completer,
		pause:     pause,
		logger:    logger.With("source", "Calculator"),
	}
}

// Calculate produces the metrics delta for choosing choiceDescription in the
// given scenario, informed by the selected heuristics.
//
// The completion is asked for a JSON object with exactly the four metric
// keys. Up to three attempts are made, later ones with a random persona
// prefix on the prompt. An attempt fails on client failure, malformed JSON,
// or a missing key; out-of-range values are clamped rather than rejected.
// When all attempts fail the deterministic keyword fallback supplies the
// delta, so a delta is always returned.
func (c *Calculator) Calculate(ctx context.Context, scenarioDescription string, choiceDescription string, selected []heuristics.Heuristic) business.Delta {
	basePrompt := c.buildPrompt(scenarioDescription, choiceDescription, selected)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		prompt := basePrompt
		if attempt > 1 {
			time.Sleep(c.pause)
			prompt = ai.PersonaPrefix() + " " + basePrompt
		}

		delta, err := c.attempt(ctx, prompt)
		if err == nil {
			return delta
		}
		c.logger.Warn("impact calculation attempt failed",
			"attempt", attempt, "max_attempts", maxAttempts, errors.SlogError(err))
	}

	c.logger.Info("impact calculation fell back to keyword rules")
	return Fallback(choiceDescription)
}

func (c *Calculator) attempt(ctx context.Context, prompt string) (business.Delta, error) {
	text, err := c.completer.Complete(ctx, prompt, calculatorSystem)
	if err != nil {
		return business.Delta{}, errors.Wrap(err, "complete impact prompt")
	}

	var raw struct {
		CashFlow             *int `json:"cash_flow"`
		CustomerSatisfaction *int `json:"customer_satisfaction"`
		GrowthPotential      *int `json:"growth_potential"`
		RiskLevel            *int `json:"risk_level"`
	}
	if err := json.Unmarshal([]byte(ai.StripCodeFences(text)), &raw); err != nil {
		return business.Delta{}, errors.Wrap(err, "decode impact json")
	}
	if raw.CashFlow == nil || raw.CustomerSatisfaction == nil || raw.GrowthPotential == nil || raw.RiskLevel == nil {
		return business.Delta{}, errors.New("impact json missing required metrics")
	}

	delta := business.Delta{
		CashFlow:             *raw.CashFlow,
		CustomerSatisfaction: *raw.CustomerSatisfaction,
		GrowthPotential:      *raw.GrowthPotential,
		RiskLevel:            *raw.RiskLevel,
	}
	return delta.Clamp(), nil
}

func (c *Calculator) buildPrompt(scenarioDescription string, choiceDescription string, selected []heuristics.Heuristic) string {
	return fmt.Sprintf(`Analyze this business decision using relevant entrepreneurial heuristics:

Scenario: %s
Decision: %s

Relevant Heuristics:
%s

Based on these heuristics and the decision made, determine the impact on key business metrics.
Consider how the decision aligns with or contradicts each heuristic's principles.

Return ONLY a JSON object with these exact keys and value ranges:
{
    "cash_flow": <integer between %d and %d>,
    "customer_satisfaction": <integer between %d and %d>,
    "growth_potential": <integer between %d and %d>,
    "risk_level": <integer between %d and %d>
}

Ensure the response is valid JSON and includes all four metrics. For cash flow, consider typical franchise operations where most investments and impacts are moderate in scale.`,
		scenarioDescription, choiceDescription, heuristics.FormatForPrompt(selected),
		business.CashFlowDeltaMin, business.CashFlowDeltaMax,
		business.PercentDeltaMin, business.PercentDeltaMax,
		business.PercentDeltaMin, business.PercentDeltaMax,
		business.PercentDeltaMin, business.PercentDeltaMax)
}
