// Package repositories persists completed simulations and their decision
// histories.
package repositories

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/vheikkine/franchiselab/internal/business"
	"github.com/vheikkine/franchiselab/internal/db"
	"github.com/vheikkine/franchiselab/internal/errors"
	"github.com/vheikkine/franchiselab/internal/simulation"
)

// SimulationSummary is a persisted simulation run with its final state.
type SimulationSummary struct {
	ID                   int64     `db:"id"`
	Profile              string    `db:"profile"`
	CashFlow             int       `db:"cash_flow"`
	CustomerSatisfaction int       `db:"customer_satisfaction"`
	GrowthPotential      int       `db:"growth_potential"`
	RiskLevel            int       `db:"risk_level"`
	HealthScore          int       `db:"health_score"`
	Status               string    `db:"status"`
	FinalAnalysis        string    `db:"final_analysis"`
	CompletedAt          time.Time `db:"completed_at"`
}

// StoredDecision is one persisted step of a simulation.
type StoredDecision struct {
	ID                   int64  `db:"id"`
	SimulationID         int64  `db:"simulation_id"`
	Step                 int    `db:"step"`
	Topic                string `db:"topic"`
	SubModule            string `db:"sub_module"`
	ChoiceTitle          string `db:"choice_title"`
	ChoiceDescription    string `db:"choice_description"`
	HeuristicIDs         string `db:"heuristic_ids"`
	CashFlow             int    `db:"cash_flow"`
	CustomerSatisfaction int    `db:"customer_satisfaction"`
	GrowthPotential      int    `db:"growth_potential"`
	RiskLevel            int    `db:"risk_level"`
	Analysis             string `db:"analysis"`
}

// Heuristics splits the stored comma-separated heuristic ids.
func (d StoredDecision) Heuristics() []string {
	if d.HeuristicIDs == "" {
		return nil
	}
	return strings.Split(d.HeuristicIDs, ",")
}

type SimulationRepository struct {
	dbs    *db.DBs
	logger *slog.Logger
}

func NewSimulationRepository(dbs *db.DBs, logger *slog.Logger) *SimulationRepository {
	return &SimulationRepository{
		dbs:    dbs,
		logger: logger.With("source", "SimulationRepository"),
	}
}

// Save persists a completed journey with its final analysis and returns the
// simulation id.
func (r *SimulationRepository) Save(ctx context.Context, journey *simulation.Journey, finalAnalysis string) (int64, error) {
	tx, err := r.dbs.ReadWrite.BeginTxx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "begin transaction")
	}
	// Rollback is a no-op once the transaction has committed.
	defer func() {
		_ = tx.Rollback()
	}()

	score := journey.Metrics.HealthScore()
	status, _ := business.StatusForScore(score)
	stmt := `INSERT INTO simulations (profile, cash_flow, customer_satisfaction, growth_potential, risk_level, health_score, status, final_analysis)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, stmt,
		journey.Profile,
		journey.Metrics.CashFlow,
		journey.Metrics.CustomerSatisfaction,
		journey.Metrics.GrowthPotential,
		journey.Metrics.RiskLevel,
		score,
		string(status),
		finalAnalysis,
	)
	if err != nil {
		return 0, errors.Wrap(err, "insert simulation")
	}
	simulationID, err := result.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "read simulation id")
	}

	stmt = `INSERT INTO decisions (simulation_id, step, topic, sub_module, choice_title, choice_description, heuristic_ids, cash_flow, customer_satisfaction, growth_potential, risk_level, analysis)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, decision := range journey.History {
		ids := make([]string, 0, len(decision.Heuristics))
		for _, h := range decision.Heuristics {
			ids = append(ids, h.ID)
		}
		if _, err = tx.ExecContext(ctx, stmt,
			simulationID,
			i+1,
			decision.Topic,
			decision.SubModuleName,
			decision.ChoiceTitle,
			decision.ChoiceDescription,
			strings.Join(ids, ","),
			decision.Impacts.CashFlow,
			decision.Impacts.CustomerSatisfaction,
			decision.Impacts.GrowthPotential,
			decision.Impacts.RiskLevel,
			decision.Analysis,
		); err != nil {
			return 0, errors.Wrap(err, "insert decision", slog.Int("step", i+1))
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "commit transaction")
	}
	return simulationID, nil
}

// Get loads a simulation and its decisions ordered by step.
func (r *SimulationRepository) Get(ctx context.Context, id int64) (*SimulationSummary, []StoredDecision, error) {
	var summary SimulationSummary
	stmt := `SELECT id, profile, cash_flow, customer_satisfaction, growth_potential, risk_level, health_score, status, final_analysis, completed_at
FROM simulations WHERE id = ?`
	if err := r.dbs.ReadOnly.GetContext(ctx, &summary, stmt, id); err != nil {
		return nil, nil, errors.Wrap(err, "read simulation")
	}

	var decisions []StoredDecision
	stmt = `SELECT id, simulation_id, step, topic, sub_module, choice_title, choice_description, heuristic_ids, cash_flow, customer_satisfaction, growth_potential, risk_level, analysis
FROM decisions WHERE simulation_id = ? ORDER BY step`
	if err := r.dbs.ReadOnly.SelectContext(ctx, &decisions, stmt, id); err != nil {
		return nil, nil, errors.Wrap(err, "read decisions")
	}

	return &summary, decisions, nil
}

// ListRecent returns the most recently completed simulations, newest first.
func (r *SimulationRepository) ListRecent(ctx context.Context, limit int) ([]SimulationSummary, error) {
	var summaries []SimulationSummary
	stmt := `SELECT id, profile, cash_flow, customer_satisfaction, growth_potential, risk_level, health_score, status, final_analysis, completed_at
FROM simulations ORDER BY completed_at DESC, id DESC LIMIT ?`
	if err := r.dbs.ReadOnly.SelectContext(ctx, &summaries, stmt, limit); err != nil {
		return nil, errors.Wrap(err, "list simulations")
	}
	return summaries, nil
}
