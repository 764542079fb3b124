package analysis_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vheikkine/franchiselab/internal/ai"
	"github.com/vheikkine/franchiselab/internal/analysis"
	"github.com/vheikkine/franchiselab/internal/business"
	"github.com/vheikkine/franchiselab/internal/heuristics"
	"github.com/vheikkine/franchiselab/internal/testhelpers"
)

type stubCompleter struct {
	text    string
	err     error
	prompts []string
}

func (s *stubCompleter) Complete(_ context.Context, prompt string, _ string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.text, s.err
}

func catalogHeuristic(t *testing.T, id string) heuristics.Heuristic {
	t.Helper()
	catalog, err := heuristics.Default()
	require.NoError(t, err)
	h, ok := catalog.Get(id)
	require.True(t, ok, id)
	return h
}

func TestGenerator_DecisionAnalysis(t *testing.T) {
	stub := &stubCompleter{text: "The decision balances cash discipline against growth."}
	generator := analysis.NewGenerator(stub, testhelpers.NewLogger(io.Discard))

	text := generator.DecisionAnalysis(context.Background(),
		"Cash is tight.", "Delay Renovation",
		business.Delta{CashFlow: 8000},
		[]heuristics.Heuristic{catalogHeuristic(t, "cash_flow_discipline_heuristic")})

	assert.Equal(t, "The decision balances cash discipline against growth.", text)
	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "Choice Made: Delay Renovation")
	assert.Contains(t, stub.prompts[0], "Cash Flow: +8000")
	assert.Contains(t, stub.prompts[0], "Heuristic: Cash Flow Discipline Heuristic")
}

func TestGenerator_DecisionAnalysisFallsBack(t *testing.T) {
	stub := &stubCompleter{err: ai.ErrCompletionFailed}
	generator := analysis.NewGenerator(stub, testhelpers.NewLogger(io.Discard))

	text := generator.DecisionAnalysis(context.Background(),
		"scenario", "Expand Delivery",
		business.Delta{GrowthPotential: 10},
		[]heuristics.Heuristic{catalogHeuristic(t, "sustainable_growth_heuristic")})

	assert.Contains(t, text, "Analysis of the decision to expand delivery:")
	assert.Contains(t, text, "Applying the Sustainable Growth Heuristic:")
}

func TestFallbackDecisionAnalysis_CategoryBranches(t *testing.T) {
	impacts := business.Delta{CashFlow: -12000, CustomerSatisfaction: 8, GrowthPotential: -4, RiskLevel: 6}
	selected := []heuristics.Heuristic{
		catalogHeuristic(t, "risk_reward_balance_heuristic"),
		catalogHeuristic(t, "sustainable_growth_heuristic"),
		catalogHeuristic(t, "customer_first_principle"),
		catalogHeuristic(t, "cash_flow_discipline_heuristic"),
		catalogHeuristic(t, "workhard_testing_heuristic"),
	}

	text := analysis.FallbackDecisionAnalysis("Open A Kiosk", impacts, selected)

	assert.Contains(t, text, "increased risk level (+6%)")
	assert.Contains(t, text, "reduced growth potential (-4%)")
	assert.Contains(t, text, "positively impacted customer satisfaction (+8%)")
	assert.Contains(t, text, "cash flow reduction ($-12000)")
	// General heuristics get the generic sentence.
	assert.Contains(t, text, "will influence the observed impacts on business metrics")
	// Net delta is negative, so the cautious outlook closes the analysis.
	assert.Contains(t, text, "valuable learning opportunities")
}

func TestFallbackDecisionAnalysis_PositiveOutlook(t *testing.T) {
	text := analysis.FallbackDecisionAnalysis("Tidy Up", business.Delta{CustomerSatisfaction: 5}, nil)
	assert.Contains(t, text, "contribute positively to long-term success")
}

func TestGenerator_FinalAnalysis(t *testing.T) {
	stub := &stubCompleter{text: "A cautious but coherent journey."}
	generator := analysis.NewGenerator(stub, testhelpers.NewLogger(io.Discard))

	history := []analysis.DecisionSummary{
		{Topic: "Staff Management", Choice: "Structured Onboarding Program", Impacts: business.Delta{CashFlow: -15000, CustomerSatisfaction: 10}},
		{Topic: "Marketing Strategy", Choice: "Loyalty Program Launch", Impacts: business.Delta{CashFlow: -5000, GrowthPotential: 8}},
	}
	final := business.Metrics{CashFlow: 80000, CustomerSatisfaction: 60, GrowthPotential: 58, RiskLevel: 30}

	text := generator.FinalAnalysis(context.Background(), history, final)

	assert.Equal(t, "A cautious but coherent journey.", text)
	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "Decision 1: Staff Management")
	assert.Contains(t, stub.prompts[0], "Decision 2: Marketing Strategy")
	assert.Contains(t, stub.prompts[0], "Impact: Cash Flow ($-15000), Customer Satisfaction (+10%), Growth (+0%), Risk (+0%)")
	assert.Contains(t, stub.prompts[0], "Cash Flow: $80000")
}

func TestGenerator_FinalAnalysisApologyOnFailure(t *testing.T) {
	generator := analysis.NewGenerator(&stubCompleter{err: ai.ErrCompletionFailed}, testhelpers.NewLogger(io.Discard))

	text := generator.FinalAnalysis(context.Background(), nil, business.InitialMetrics())
	assert.Equal(t, analysis.FinalAnalysisUnavailable, text)
}
