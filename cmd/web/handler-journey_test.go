package main

import (
	"fmt"
	url2 "net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vheikkine/franchiselab/internal/analysis"
	"github.com/vheikkine/franchiselab/internal/simulation"
)

func Test_application_home(t *testing.T) {
	s := startTestServer(t, os.Stdout, testLookupEnv)

	doc := s.GetDoc(t, "/")
	assert.Equal(t, 1, doc.Find("form[action='/journey/start']").Length())
	assert.Equal(t, 1, doc.Find("textarea[name=profile]").Length())

	// Without a journey in the session, the journey pages land back on the
	// profile form.
	for _, urlPath := range []string{"/journey/topics", "/journey", "/summary"} {
		doc = s.GetDoc(t, urlPath)
		assert.Equal(t, 1, doc.Find("textarea[name=profile]").Length(), "expected %s to land on the profile form", urlPath)
	}
}

func Test_application_journey(t *testing.T) {
	s := startTestServer(t, os.Stdout, testLookupEnv)

	profile := "A family-run pizza franchise with two locations and a delivery fleet."
	doc := s.GetDoc(t, "/")
	doc = s.SubmitForm(t, doc, "/journey/start", url2.Values{"profile": {profile}})

	for step := 1; step <= simulation.MaxDecisions; step++ {
		// Topic page offers one form per topic.
		topicForms := doc.Find("form[action='/journey/topic']")
		require.GreaterOrEqual(t, topicForms.Length(), 1)
		assert.Contains(t, doc.Find("h1").Text(), fmt.Sprintf("Decision %d of %d", step, simulation.MaxDecisions))
		topic, ok := topicForms.First().Find("input[name=topic]").Attr("value")
		require.True(t, ok)
		require.NotEmpty(t, topic)

		// Choosing the topic redirects to the scenario with two options.
		doc = s.SubmitForm(t, doc, "/journey/topic", url2.Values{"topic": {topic}})
		assert.Contains(t, doc.Find("h1").Text(), topic)
		require.Equal(t, 2, doc.Find("form[action='/journey/decide']").Length())

		// Deciding shows the impact breakdown and analysis.
		doc = s.SubmitForm(t, doc, "/journey/decide", url2.Values{"option": {"a"}})
		assert.Contains(t, doc.Text(), "Cash Flow:")
		assert.Contains(t, doc.Text(), "Analysis")

		if step < simulation.MaxDecisions {
			assert.Equal(t, 1, doc.Find("a[href='/journey/topics']").Length())
			doc = s.GetDoc(t, "/journey/topics")
		} else {
			assert.Equal(t, 1, doc.Find("a[href='/summary']").Length())
		}
	}

	// The summary reports health, history, and the aggregate analysis. The
	// offline backend cannot synthesize the aggregate, so the canned notice
	// shows up.
	doc = s.GetDoc(t, "/summary")
	assert.Contains(t, doc.Find("h1").Text(), "Journey complete")
	assert.Contains(t, doc.Text(), "Business health:")
	assert.Contains(t, doc.Text(), analysis.FinalAnalysisUnavailable)
	assert.Equal(t, simulation.MaxDecisions, doc.Find("section.history ol li").Length())

	// The finished run shows up in the simulation listing.
	doc = s.GetDoc(t, "/simulations")
	assert.Contains(t, doc.Text(), profile)

	// Resetting returns to the profile form.
	doc = s.GetDoc(t, "/summary")
	doc = s.SubmitForm(t, doc, "/journey/reset", nil)
	assert.Equal(t, 1, doc.Find("textarea[name=profile]").Length())
}
