// Package analysis narrates decisions and whole journeys, tying heuristics
// to the observed metric impacts.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vheikkine/franchiselab/internal/ai"
	"github.com/vheikkine/franchiselab/internal/business"
	"github.com/vheikkine/franchiselab/internal/errors"
	"github.com/vheikkine/franchiselab/internal/heuristics"
)

// DecisionSummary is the slice of a decision record that the final analysis
// narrates.
type DecisionSummary struct {
	Topic   string
	Choice  string
	Impacts business.Delta
}

// Generator produces analysis text.
type Generator struct {
	completer ai.Completer
	logger    *slog.Logger
}

// NewGenerator wires an analysis generator to a completion backend.
func NewGenerator(completer ai.Completer, logger *slog.Logger) *Generator {
	return &Generator{
		completer: completer,
		logger:    logger.With("source", "AnalysisGenerator"),
	}
}

// DecisionAnalysis explains how the selected heuristics justify the observed
// impacts of one decision. On completion failure the templated fallback
// narrates each heuristic by its category instead.
func (g *Generator) DecisionAnalysis(ctx context.Context, scenarioDescription string, choiceTitle string, impacts business.Delta, selected []heuristics.Heuristic) string {
	prompt := fmt.Sprintf(`analyze this business decision using the provided heuristics as frameworks:

Scenario: %s
Choice Made: %s

Relevant Business Heuristics:
%s

Observed Impacts:
%s

Please provide an analysis that:
1. Explains how each relevant heuristic framework applies to this decision
2. Uses the heuristics to justify why specific impacts occurred
3. Connects the principles from the heuristics to the observed outcomes
4. Provides insights about the long-term implications based on these frameworks

Format the analysis to explicitly reference the heuristics and explain how their principles support the observed impacts. Keep the total analysis under 250 words.`,
		scenarioDescription, choiceTitle, heuristics.FormatForPrompt(selected), formatImpacts(impacts))

	text, err := g.completer.Complete(ctx, prompt,
		"I will analyze this business decision using the provided heuristic frameworks.")
	if err != nil {
		g.logger.Info("decision analysis fell back to templates", errors.SlogError(err))
		return FallbackDecisionAnalysis(choiceTitle, impacts, selected)
	}
	return text
}

func formatImpacts(impacts business.Delta) string {
	return fmt.Sprintf("Cash Flow: %+d\nCustomer Satisfaction: %+d\nGrowth Potential: %+d\nRisk Level: %+d",
		impacts.CashFlow, impacts.CustomerSatisfaction, impacts.GrowthPotential, impacts.RiskLevel)
}

// FallbackDecisionAnalysis assembles one paragraph per heuristic, switching
// on the heuristic's category to pick which metric's delta to narrate, and
// closes with an outlook keyed on the summed delta.
func FallbackDecisionAnalysis(choiceTitle string, impacts business.Delta, selected []heuristics.Heuristic) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analysis of the decision to %s:", strings.ToLower(choiceTitle))

	for _, h := range selected {
		fmt.Fprintf(&b, "\n\nApplying the %s: ", h.Name)
		switch h.Category {
		case heuristics.CategoryRisk:
			if impacts.RiskLevel > 0 {
				fmt.Fprintf(&b, "According to this framework, the increased risk level (%+d%%) suggests %s. ",
					impacts.RiskLevel, h.Applicability)
			} else {
				fmt.Fprintf(&b, "This framework supports the reduced risk level (%+d%%) through %s. ",
					impacts.RiskLevel, h.Applicability)
			}
		case heuristics.CategoryGrowth:
			if impacts.GrowthPotential > 0 {
				fmt.Fprintf(&b, "This decision aligns with the framework's emphasis on %s, leading to increased growth potential (%+d%%). ",
					h.Applicability, impacts.GrowthPotential)
			} else {
				fmt.Fprintf(&b, "The framework suggests that the reduced growth potential (%+d%%) may be due to deviation from %s. ",
					impacts.GrowthPotential, h.Applicability)
			}
		case heuristics.CategoryCustomer:
			if impacts.CustomerSatisfaction > 0 {
				fmt.Fprintf(&b, "Following this framework's principles about %s has positively impacted customer satisfaction (%+d%%). ",
					h.Applicability, impacts.CustomerSatisfaction)
			} else {
				fmt.Fprintf(&b, "The decrease in customer satisfaction (%+d%%) indicates a potential misalignment with the framework's guidance on %s. ",
					impacts.CustomerSatisfaction, h.Applicability)
			}
		case heuristics.CategoryFinancial:
			if impacts.CashFlow > 0 {
				fmt.Fprintf(&b, "The positive cash flow impact ($%+d) aligns with the framework's principles regarding %s. ",
					impacts.CashFlow, h.Applicability)
			} else {
				fmt.Fprintf(&b, "The framework suggests that the cash flow reduction ($%+d) may be justified if %s. ",
					impacts.CashFlow, h.Applicability)
			}
		default:
			fmt.Fprintf(&b, "This framework suggests that %s will influence the observed impacts on business metrics. ",
				h.Applicability)
		}
	}

	if impacts.Sum() > 0 {
		b.WriteString("\n\nBased on these frameworks, this decision appears well-aligned with established business principles and should contribute positively to long-term success.")
	} else {
		b.WriteString("\n\nWhile the immediate impacts may be challenging, these frameworks suggest the decision could provide valuable learning opportunities and potential for future adaptation.")
	}
	return b.String()
}

// FinalAnalysisUnavailable is returned when the aggregate analysis cannot be
// generated. There is deliberately no rule-based synthesis for the aggregate
// case.
const FinalAnalysisUnavailable = "Unable to generate comprehensive analysis. Please review the decision history and final metrics to assess your franchise's journey."

// FinalAnalysis summarizes the whole decision journey and final metrics in a
// single completion call. On failure it returns [FinalAnalysisUnavailable].
func (g *Generator) FinalAnalysis(ctx context.Context, history []DecisionSummary, final business.Metrics) string {
	var decisions []string
	for i, d := range history {
		decisions = append(decisions, fmt.Sprintf(
			"Decision %d: %s\nChoice: %s\nImpact: Cash Flow ($%+d), Customer Satisfaction (%+d%%), Growth (%+d%%), Risk (%+d%%)",
			i+1, d.Topic, d.Choice,
			d.Impacts.CashFlow, d.Impacts.CustomerSatisfaction, d.Impacts.GrowthPotential, d.Impacts.RiskLevel))
	}

	prompt := fmt.Sprintf(`Analyze this franchise's decision journey and provide a comprehensive strategic assessment:

Decision History:
%s

Final Business State:
- Cash Flow: $%d
- Customer Satisfaction: %d%%
- Growth Potential: %d%%
- Risk Level: %d%%

Provide a comprehensive analysis that:
1. Identifies key patterns and strategic themes across the decisions
2. Evaluates the overall effectiveness of the decision-making approach
3. Assesses how well the decisions balanced different business priorities
4. Suggests strategic recommendations for future decision-making
5. Highlights potential opportunities and challenges based on the current business state

Format the response with clear sections and bullet points where appropriate.`,
		strings.Join(decisions, "\n\n"),
		final.CashFlow, final.CustomerSatisfaction, final.GrowthPotential, final.RiskLevel)

	text, err := g.completer.Complete(ctx, prompt,
		"I will provide a comprehensive analysis of the franchise's decision journey.")
	if err != nil {
		g.logger.Info("final analysis unavailable", errors.SlogError(err))
		return FinalAnalysisUnavailable
	}
	return text
}
