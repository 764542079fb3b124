package main

import (
	"context"

	"github.com/vheikkine/franchiselab/internal/scenario"
	"github.com/vheikkine/franchiselab/internal/simulation"
)

const journeySessionKey = "journey"
const topicsSessionKey = "topics"
const currentTopicSessionKey = "currentTopic"
const currentScenarioSessionKey = "currentScenario"
const finalAnalysisSessionKey = "finalAnalysis"

// currentJourney loads the journey from the session, or nil when no journey
// has been started.
func (app *application) currentJourney(ctx context.Context) *simulation.Journey {
	journey, ok := app.sessionManager.Get(ctx, journeySessionKey).(simulation.Journey)
	if !ok {
		return nil
	}
	return &journey
}

func (app *application) putJourney(ctx context.Context, journey *simulation.Journey) {
	app.sessionManager.Put(ctx, journeySessionKey, *journey)
}

func (app *application) currentScenario(ctx context.Context) (scenario.Scenario, bool) {
	s, ok := app.sessionManager.Get(ctx, currentScenarioSessionKey).(scenario.Scenario)
	return s, ok
}

// clearJourney drops all journey state from the session.
func (app *application) clearJourney(ctx context.Context) {
	app.sessionManager.Remove(ctx, journeySessionKey)
	app.sessionManager.Remove(ctx, topicsSessionKey)
	app.sessionManager.Remove(ctx, currentTopicSessionKey)
	app.sessionManager.Remove(ctx, currentScenarioSessionKey)
	app.sessionManager.Remove(ctx, finalAnalysisSessionKey)
}
