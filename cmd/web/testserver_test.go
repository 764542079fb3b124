package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	url2 "net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vheikkine/franchiselab/internal/errors"
	"github.com/vheikkine/franchiselab/internal/logging"
)

// waitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func waitForReady(ctx context.Context, endpoint string) error {
	timeout := 1 * time.Second
	client := http.Client{}
	startTime := time.Now()
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	for {
		if req, err = http.NewRequestWithContext(
			ctx,
			http.MethodGet,
			endpoint,
			nil,
		); err != nil {
			return errors.Wrap(err, "create request")
		}

		if resp, err = client.Do(req); err == nil {
			if resp.StatusCode == http.StatusOK {
				if err = resp.Body.Close(); err != nil {
					return errors.Wrap(err, "close response body")
				}
				return nil
			}
			if err = resp.Body.Close(); err != nil {
				return errors.Wrap(err, "close response body")
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(250 * time.Millisecond)
		}
	}
}

// testLookupEnv configures an in-memory database, a random port, and the
// offline completion backend so tests never reach the network.
func testLookupEnv(key string) (string, bool) {
	switch key {
	case "FRANCHISELAB_ADDR":
		return "localhost:0", true
	case "FRANCHISELAB_SQLITE_URL":
		return ":memory:", true
	case "FRANCHISELAB_AI_PROVIDER":
		return "offline", true
	case "FRANCHISELAB_AI_BACKOFF":
		return "0s", true
	default:
		return "", false
	}
}

type testServer struct {
	url    string
	client http.Client
}

// startTestServer starts the test server, waits for it to be ready, and return the server URL for testing.
func startTestServer(t *testing.T, w io.Writer, lookupEnv func(string) (string, bool)) testServer {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	// We need to grab the dynamically allocated port from the log output.
	addrCh := make(chan string, 1)
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: false,
		Level:     slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == "Addr" {
				addrCh <- a.Value.String()
			}
			return a
		},
	})))

	// Start the server and wait for it to be ready.
	go func() {
		if err := run(ctx, logger, lookupEnv); err != nil {
			cancel()
			assert.NoError(t, err)
		}
	}()
	select {
	case <-ctx.Done():
		t.Fatal("server failed to start")
		return testServer{} //nolint:exhaustruct // This is unreachable.
	case addr := <-addrCh:
		serverURL := fmt.Sprintf("http://%s", addr)
		if err := waitForReady(ctx, fmt.Sprintf("%s/api/healthy", serverURL)); err != nil {
			require.NoError(t, err)
		}
		jar, err := newUnsafeCookieJar()
		require.NoError(t, err)
		return testServer{
			url:    serverURL,
			client: http.Client{Jar: jar},
		}
	}
}

// Get fetches a URL and returns the response.
func (s *testServer) Get(t *testing.T, urlPath string) *http.Response {
	t.Helper()
	resp, err := s.client.Get(s.url + urlPath)
	require.NoError(t, err)
	return resp
}

// GetDoc fetches a URL and returns a goquery document.
func (s *testServer) GetDoc(t *testing.T, urlPath string) *goquery.Document {
	t.Helper()
	resp := s.Get(t, urlPath)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer func() {
		err := resp.Body.Close()
		require.NoError(t, err)
	}()
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}

// SubmitForm submits the form with action formActionURLPath found in doc,
// merging extra values on top of the form's CSRF token, and returns the
// response document. Pages can hold several forms with the same action, so
// the token is read from the first one.
func (s *testServer) SubmitForm(t *testing.T, doc *goquery.Document, formActionURLPath string, extra url2.Values) *goquery.Document {
	t.Helper()
	html, err := doc.Html()
	require.NoError(t, err)

	formSelector := fmt.Sprintf("form[action='%s']", formActionURLPath)
	form := doc.Find(formSelector).First()
	require.Equal(t, 1, form.Length(), "form %s not found in document:\n%s", formSelector, html)
	csrfToken, ok := form.Find("input[name=csrf_token]").Attr("value")
	require.True(t, ok, "csrf_token not found in form %s", formSelector)

	formData := url2.Values{}
	formData.Add("csrf_token", csrfToken)
	for key, values := range extra {
		for _, value := range values {
			formData.Add(key, value)
		}
	}
	data := strings.NewReader(formData.Encode())

	resp, err := s.client.Post(s.url+formActionURLPath, "application/x-www-form-urlencoded", data)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer func(Body io.ReadCloser) {
		err = Body.Close()
		assert.NoError(t, err)
	}(resp.Body)

	doc, err = goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}
