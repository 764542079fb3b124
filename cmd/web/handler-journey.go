package main

import (
	"net/http"
	"strings"

	"github.com/vheikkine/franchiselab/internal/scenario"
	"github.com/vheikkine/franchiselab/internal/simulation"
)

type topicsTemplateData struct {
	metricsTemplateData
	Step         int
	MaxDecisions int
	Topics       []string
}

type journeyTemplateData struct {
	metricsTemplateData
	Step         int
	MaxDecisions int
	Topic        string
	Scenario     scenario.Scenario
}

type decisionTemplateData struct {
	metricsTemplateData
	Decision        simulation.Decision
	JourneyComplete bool
}

// journeyStart creates a fresh journey from the submitted business profile
// and proposes the first round of topics.
func (app *application) journeyStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile := strings.TrimSpace(r.PostFormValue("profile"))
	if profile == "" {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	app.clearJourney(ctx)
	journey := simulation.NewJourney(profile)
	app.putJourney(ctx, journey)
	app.sessionManager.Put(ctx, topicsSessionKey, app.engine.Topics(ctx, journey))

	http.Redirect(w, r, "/journey/topics", http.StatusSeeOther)
}

// journeyTopics shows the topic choices for the next decision.
func (app *application) journeyTopics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	journey := app.currentJourney(ctx)
	if journey == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if journey.Complete() {
		http.Redirect(w, r, "/summary", http.StatusSeeOther)
		return
	}

	// Topics persist across steps but may be missing after a restart with a
	// stale session.
	topics, ok := app.sessionManager.Get(ctx, topicsSessionKey).([]string)
	if !ok || len(topics) == 0 {
		topics = app.engine.Topics(ctx, journey)
		app.sessionManager.Put(ctx, topicsSessionKey, topics)
	}

	data := topicsTemplateData{
		metricsTemplateData: metricsTemplateData{Metrics: journey.Metrics},
		Step:                journey.Step(),
		MaxDecisions:        simulation.MaxDecisions,
		Topics:              topics,
	}
	app.render(w, r, http.StatusOK, "topics", data)
}

// journeyTopic generates a scenario for the chosen topic and moves on to the
// decision page.
func (app *application) journeyTopic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	journey := app.currentJourney(ctx)
	if journey == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if journey.Complete() {
		http.Redirect(w, r, "/summary", http.StatusSeeOther)
		return
	}

	topic := strings.TrimSpace(r.PostFormValue("topic"))
	if topic == "" {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	s := app.engine.Scenario(ctx, journey, topic)
	app.sessionManager.Put(ctx, currentTopicSessionKey, topic)
	app.sessionManager.Put(ctx, currentScenarioSessionKey, s)

	http.Redirect(w, r, "/journey", http.StatusSeeOther)
}

// journey shows the pending scenario with its two options.
func (app *application) journey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	journey := app.currentJourney(ctx)
	if journey == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s, ok := app.currentScenario(ctx)
	if !ok {
		http.Redirect(w, r, "/journey/topics", http.StatusSeeOther)
		return
	}

	data := journeyTemplateData{
		metricsTemplateData: metricsTemplateData{Metrics: journey.Metrics},
		Step:                journey.Step(),
		MaxDecisions:        simulation.MaxDecisions,
		Topic:               app.sessionManager.GetString(ctx, currentTopicSessionKey),
		Scenario:            s,
	}
	app.render(w, r, http.StatusOK, "journey", data)
}

// journeyDecide resolves the chosen option, applies its impacts, and shows
// the decision analysis. The last decision also persists the finished
// simulation.
func (app *application) journeyDecide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	journey := app.currentJourney(ctx)
	if journey == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s, ok := app.currentScenario(ctx)
	if !ok {
		http.Redirect(w, r, "/journey/topics", http.StatusSeeOther)
		return
	}

	var chosen scenario.Option
	switch r.PostFormValue("option") {
	case "a":
		chosen = s.OptionA
	case "b":
		chosen = s.OptionB
	default:
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	topic := app.sessionManager.GetString(ctx, currentTopicSessionKey)
	decision := app.engine.Decide(ctx, journey, topic, s, chosen)
	app.putJourney(ctx, journey)
	app.sessionManager.Remove(ctx, currentTopicSessionKey)
	app.sessionManager.Remove(ctx, currentScenarioSessionKey)

	if journey.Complete() {
		final := app.engine.FinalAnalysis(ctx, journey)
		app.sessionManager.Put(ctx, finalAnalysisSessionKey, final)
		if _, err := app.simulations.Save(ctx, journey, final); err != nil {
			app.serverError(w, r, err)
			return
		}
	}

	data := decisionTemplateData{
		metricsTemplateData: metricsTemplateData{Metrics: journey.Metrics},
		Decision:            decision,
		JourneyComplete:     journey.Complete(),
	}
	if app.htmx.NewHandler(w, r).IsHxRequest() {
		app.renderPartial(w, r, http.StatusOK, "decision", data)
		return
	}
	app.render(w, r, http.StatusOK, "decision", data)
}

// journeyReset discards the journey state and returns to the profile form.
func (app *application) journeyReset(w http.ResponseWriter, r *http.Request) {
	app.clearJourney(r.Context())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
