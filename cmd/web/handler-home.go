package main

import (
	"net/http"
)

type homeTemplateData struct{}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	// A journey in progress resumes instead of showing the profile form.
	if journey := app.currentJourney(r.Context()); journey != nil && !journey.Complete() {
		http.Redirect(w, r, "/journey/topics", http.StatusSeeOther)
		return
	}

	app.render(w, r, http.StatusOK, "home", homeTemplateData{})
}
