package main

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/vheikkine/franchiselab/ui"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	fileServer := http.FileServer(http.FS(ui.Files))
	mux.Handle("GET /static/", cacheForeverHeaders(fileServer))

	session := alice.New(app.sessionManager.LoadAndSave, noSurf, commonContext)

	mux.Handle("GET /{$}", session.ThenFunc(app.home))
	mux.Handle("POST /journey/start", session.ThenFunc(app.journeyStart))
	mux.Handle("GET /journey/topics", session.ThenFunc(app.journeyTopics))
	mux.Handle("POST /journey/topic", session.ThenFunc(app.journeyTopic))
	mux.Handle("GET /journey", session.ThenFunc(app.journey))
	mux.Handle("POST /journey/decide", session.ThenFunc(app.journeyDecide))
	mux.Handle("POST /journey/reset", session.ThenFunc(app.journeyReset))
	mux.Handle("GET /summary", session.ThenFunc(app.summary))
	mux.Handle("GET /simulations", session.ThenFunc(app.simulationList))

	mux.HandleFunc("GET /api/healthy", app.healthy)

	return app.recoverPanic(app.logRequest(secureHeaders(mux)))
}
