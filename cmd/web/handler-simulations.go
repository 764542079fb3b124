package main

import (
	"net/http"

	"github.com/vheikkine/franchiselab/internal/repositories"
)

const recentSimulationLimit = 10

type simulationsTemplateData struct {
	Simulations []repositories.SimulationSummary
}

// simulationList shows the most recently completed simulations.
func (app *application) simulationList(w http.ResponseWriter, r *http.Request) {
	simulations, err := app.simulations.ListRecent(r.Context(), recentSimulationLimit)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "simulations", simulationsTemplateData{Simulations: simulations})
}
