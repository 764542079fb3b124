package main

import (
	"net/http"

	"github.com/vheikkine/franchiselab/internal/business"
	"github.com/vheikkine/franchiselab/internal/simulation"
)

type summaryTemplateData struct {
	metricsTemplateData
	HealthScore       int
	Status            business.Status
	StatusDescription string
	History           []simulation.Decision
	FinalAnalysis     string
}

// summary shows the final state of a completed journey.
func (app *application) summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	journey := app.currentJourney(ctx)
	if journey == nil || !journey.Complete() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	score := journey.Metrics.HealthScore()
	status, description := business.StatusForScore(score)

	data := summaryTemplateData{
		metricsTemplateData: metricsTemplateData{Metrics: journey.Metrics},
		HealthScore:         score,
		Status:              status,
		StatusDescription:   description,
		History:             journey.History,
		FinalAnalysis:       app.sessionManager.GetString(ctx, finalAnalysisSessionKey),
	}
	app.render(w, r, http.StatusOK, "summary", data)
}
