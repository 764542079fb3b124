// Package simulation orchestrates a multi-step decision journey over the
// selector, impact calculator, scenario generator, and analysis generator.
package simulation

import (
	"context"

	"github.com/vheikkine/franchiselab/internal/analysis"
	"github.com/vheikkine/franchiselab/internal/business"
	"github.com/vheikkine/franchiselab/internal/heuristics"
	"github.com/vheikkine/franchiselab/internal/impact"
	"github.com/vheikkine/franchiselab/internal/scenario"
)

// MaxDecisions is the number of decision steps in a journey.
const MaxDecisions = 5

// Decision records one completed step. Never mutated after append.
type Decision struct {
	Topic             string
	ChoiceTitle       string
	ChoiceDescription string
	Heuristics        []heuristics.Heuristic
	Impacts           business.Delta
	Analysis          string
	SubModuleName     string
}

// Journey is the cumulative state of one simulation run.
type Journey struct {
	Profile string
	Metrics business.Metrics
	History []Decision
}

// NewJourney starts a journey for a business profile with the fixed initial
// metrics.
func NewJourney(profile string) *Journey {
	return &Journey{
		Profile: profile,
		Metrics: business.InitialMetrics(),
	}
}

// Step returns the 1-based number of the next decision.
func (j *Journey) Step() int {
	return len(j.History) + 1
}

// Complete reports whether all decisions have been made.
func (j *Journey) Complete() bool {
	return len(j.History) >= MaxDecisions
}

// Engine wires the generation components into journey operations.
type Engine struct {
	selector   *heuristics.Selector
	calculator *impact.Calculator
	scenarios  *scenario.Generator
	analyses   *analysis.Generator
}

func NewEngine(selector *heuristics.Selector, calculator *impact.Calculator, scenarios *scenario.Generator, analyses *analysis.Generator) *Engine {
	return &Engine{
		selector:   selector,
		calculator: calculator,
		scenarios:  scenarios,
		analyses:   analyses,
	}
}

// Topics proposes decision topics for the journey's business profile.
func (e *Engine) Topics(ctx context.Context, journey *Journey) []string {
	return e.scenarios.Topics(ctx, journey.Profile)
}

// Scenario produces the scenario for the chosen topic at the journey's
// current step.
func (e *Engine) Scenario(ctx context.Context, journey *Journey, topic string) scenario.Scenario {
	return e.scenarios.TopicScenario(ctx, topic, journey.Profile, journey.Step())
}

// Decide completes one step: selects relevant heuristics for the chosen
// option, computes and applies the metrics delta, narrates the outcome, and
// appends the decision to the history. The updated journey reflects the new
// metrics when Decide returns.
func (e *Engine) Decide(ctx context.Context, journey *Journey, topic string, s scenario.Scenario, chosen scenario.Option) Decision {
	selected := e.selector.Select(ctx, s.Description, chosen.Description)
	impacts := e.calculator.Calculate(ctx, s.Description, chosen.Description, selected)
	journey.Metrics = journey.Metrics.Apply(impacts)

	decision := Decision{
		Topic:             topic,
		ChoiceTitle:       chosen.Title,
		ChoiceDescription: chosen.Description,
		Heuristics:        selected,
		Impacts:           impacts,
		Analysis:          e.analyses.DecisionAnalysis(ctx, s.Description, chosen.Title, impacts, selected),
		SubModuleName:     s.SubModuleName,
	}
	journey.History = append(journey.History, decision)
	return decision
}

// FinalAnalysis narrates the whole journey once it is complete.
func (e *Engine) FinalAnalysis(ctx context.Context, journey *Journey) string {
	history := make([]analysis.DecisionSummary, 0, len(journey.History))
	for _, d := range journey.History {
		history = append(history, analysis.DecisionSummary{
			Topic:   d.Topic,
			Choice:  d.ChoiceTitle,
			Impacts: d.Impacts,
		})
	}
	return e.analyses.FinalAnalysis(ctx, history, journey.Metrics)
}
