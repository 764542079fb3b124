package main

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/vheikkine/franchiselab/internal/business"
	"github.com/vheikkine/franchiselab/internal/contexthelpers"
	"github.com/vheikkine/franchiselab/internal/errors"
	"github.com/vheikkine/franchiselab/internal/scenario"
	"github.com/vheikkine/franchiselab/internal/simulation"
	"github.com/vheikkine/franchiselab/ui"
)

func init() {
	// Session values serialized by scs.
	gob.Register(simulation.Journey{})
	gob.Register(scenario.Scenario{})
	gob.Register([]string{})
}

// pageTemplate returns a template for the given page name.
//
// pageName corresponds to a directory inside ui/templates/pages. It has to include a template named "page".
func (app *application) pageTemplate(pageName string) (*template.Template, error) {
	patterns := []string{
		"templates/base.gohtml",
		fmt.Sprintf("templates/pages/%s/*.gohtml", pageName),
	}

	// The FuncMap needs placeholders before parsing. They are overridden with
	// request-scoped values in the render functions.
	t, err := template.New(pageName).Funcs(template.FuncMap{
		"nonce": func() string {
			panic("not implemented")
		},
		"csrf": func() string {
			panic("not implemented")
		},
		"csrfToken": func() string {
			panic("not implemented")
		},
	}).ParseFS(ui.Files, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "parse page template", slog.String("page", pageName))
	}
	return t, nil
}

func (app *application) render(w http.ResponseWriter, r *http.Request, status int, file string, data any) {
	app.renderTemplate(w, r, status, file, "base", data)
}

// renderPartial renders only the page content without the base layout, used
// for htmx swaps targeting the main element.
func (app *application) renderPartial(w http.ResponseWriter, r *http.Request, status int, file string, data any) {
	app.renderTemplate(w, r, status, file, "page", data)
}

func (app *application) renderTemplate(w http.ResponseWriter, r *http.Request, status int, file string, rootTemplate string, data any) {
	t, err := app.pageTemplate(file)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "parse template", slog.String("template", file)))
		return
	}

	buf := new(bytes.Buffer)
	ctx := r.Context()
	nonce := fmt.Sprintf("nonce=%q", contexthelpers.CSPNonce(ctx))
	csrfToken := contexthelpers.CSRFToken(ctx)
	csrf := fmt.Sprintf("<input type=\"hidden\" name=\"csrf_token\" value=\"%s\"/>", csrfToken)
	t.Funcs(template.FuncMap{
		"nonce": func() template.HTMLAttr {
			return template.HTMLAttr(nonce) //nolint:gosec // We trust the nonce since it's not provided by user.
		},
		"csrf": func() template.HTML {
			return template.HTML(csrf) //nolint:gosec // We trust the csrf since it's not provided by user.
		},
		"csrfToken": func() string {
			return csrfToken
		},
	})
	if err = t.ExecuteTemplate(buf, rootTemplate, data); err != nil {
		app.serverError(w, r, errors.Wrap(err, "execute template", slog.String("template", file)))
		return
	}

	w.WriteHeader(status)

	_, _ = buf.WriteTo(w)
}

// metricsTemplateData is embedded by every page that shows the metrics panel.
type metricsTemplateData struct {
	Metrics business.Metrics
}
