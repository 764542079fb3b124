package business

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetrics_Apply(t *testing.T) {
	tests := []struct {
		name  string
		start Metrics
		delta Delta
		want  Metrics
	}{
		{
			name:  "typical decision",
			start: InitialMetrics(),
			delta: Delta{CashFlow: -20000, CustomerSatisfaction: 10, GrowthPotential: 8, RiskLevel: -5},
			want:  Metrics{CashFlow: 80000, CustomerSatisfaction: 60, GrowthPotential: 58, RiskLevel: 25},
		},
		{
			name:  "percentages clamp at 100",
			start: Metrics{CashFlow: 0, CustomerSatisfaction: 95, GrowthPotential: 90, RiskLevel: 92},
			delta: Delta{CashFlow: 0, CustomerSatisfaction: 25, GrowthPotential: 25, RiskLevel: 25},
			want:  Metrics{CashFlow: 0, CustomerSatisfaction: 100, GrowthPotential: 100, RiskLevel: 100},
		},
		{
			name:  "percentages clamp at 0",
			start: Metrics{CashFlow: 10000, CustomerSatisfaction: 5, GrowthPotential: 3, RiskLevel: 10},
			delta: Delta{CashFlow: 0, CustomerSatisfaction: -25, GrowthPotential: -25, RiskLevel: -25},
			want:  Metrics{CashFlow: 10000, CustomerSatisfaction: 0, GrowthPotential: 0, RiskLevel: 0},
		},
		{
			name:  "cash flow goes negative without clamping",
			start: Metrics{CashFlow: 20000, CustomerSatisfaction: 50, GrowthPotential: 50, RiskLevel: 50},
			delta: Delta{CashFlow: -50000, CustomerSatisfaction: 0, GrowthPotential: 0, RiskLevel: 0},
			want:  Metrics{CashFlow: -30000, CustomerSatisfaction: 50, GrowthPotential: 50, RiskLevel: 50},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.start.Apply(tt.delta))
		})
	}
}

func TestDelta_Clamp(t *testing.T) {
	delta := Delta{CashFlow: -80000, CustomerSatisfaction: 40, GrowthPotential: -30, RiskLevel: 12}
	clamped := delta.Clamp()
	require.Equal(t, Delta{CashFlow: -50000, CustomerSatisfaction: 25, GrowthPotential: -25, RiskLevel: 12}, clamped)

	// In-range values pass through unchanged.
	delta = Delta{CashFlow: 25000, CustomerSatisfaction: -25, GrowthPotential: 0, RiskLevel: 25}
	require.Equal(t, delta, delta.Clamp())
}

func TestMetrics_HealthScore(t *testing.T) {
	tests := []struct {
		name       string
		metrics    Metrics
		wantScore  int
		wantStatus Status
	}{
		{
			name:       "after the documented example decision",
			metrics:    Metrics{CashFlow: 80000, CustomerSatisfaction: 60, GrowthPotential: 58, RiskLevel: 25},
			wantScore:  59,
			wantStatus: StatusStable,
		},
		{
			name:       "initial state",
			metrics:    InitialMetrics(),
			wantScore:  62,
			wantStatus: StatusStable,
		},
		{
			name:       "cash hoarding is capped",
			metrics:    Metrics{CashFlow: 10000000, CustomerSatisfaction: 100, GrowthPotential: 100, RiskLevel: 0},
			wantScore:  90,
			wantStatus: StatusThriving,
		},
		{
			name:       "deep in the red",
			metrics:    Metrics{CashFlow: -50000, CustomerSatisfaction: 10, GrowthPotential: 10, RiskLevel: 90},
			wantScore:  0,
			wantStatus: StatusCritical,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := tt.metrics.HealthScore()
			require.Equal(t, tt.wantScore, score)
			status, description := StatusForScore(score)
			require.Equal(t, tt.wantStatus, status)
			require.NotEmpty(t, description)
		})
	}
}
