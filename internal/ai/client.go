// Package ai wraps the external text-completion service behind a small
// Completer interface. Every caller treats a failed completion as "use the
// deterministic fallback", never as a fatal error.
package ai

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vheikkine/franchiselab/internal/errors"
)

// ErrCompletionFailed signals that the completion service could not produce
// usable text within the retry budget.
var ErrCompletionFailed = errors.NewSentinel("completion failed")

// Completer produces text for a prompt. Implementations must return an error
// wrapping [ErrCompletionFailed] instead of panicking or blocking forever.
type Completer interface {
	Complete(ctx context.Context, prompt string, systemMessage string) (string, error)
}

const (
	defaultMaxRetries = 3
	defaultBackoff    = time.Second
)

// Config holds the settings for the hosted completion endpoint.
type Config struct {
	// BaseURL is the endpoint that accepts the form-encoded generation request.
	BaseURL string
	// APIKey is sent as a bearer token.
	APIKey string
	// BotID identifies the hosted bot template.
	BotID string
	// MaxRetries bounds the attempts per Complete call. Zero means the default of 3.
	MaxRetries int
	// Backoff is the pause between attempts. Zero means the default of 1s.
	Backoff time.Duration
}

// ProtoBotClient calls a hosted bot-template completion endpoint.
//
// The endpoint takes a bot identifier, a streaming flag, and two role-tagged
// messages, and answers either with a single JSON object or an SSE-style
// stream of data: chunks. See [ExtractText] for the response handling.
type ProtoBotClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	botID      string
	maxRetries int
	backoff    time.Duration
	logger     *slog.Logger
}

// NewProtoBotClient configures a client for the hosted completion endpoint.
func NewProtoBotClient(cfg Config, logger *slog.Logger) *ProtoBotClient {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	backoff := cfg.Backoff
	if backoff < 0 {
		backoff = defaultBackoff
	}
	return &ProtoBotClient{
		httpClient: &http.Client{Timeout: time.Minute},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		botID:      cfg.BotID,
		maxRetries: maxRetries,
		backoff:    backoff,
		logger:     logger.With("source", "ProtoBotClient"),
	}
}

// Complete sends the prompt with an assistant seed message and returns the
// extracted text.
//
// On transport failure, non-success status, or an empty payload the call is
// retried up to the configured budget with a pause in between. Retry prompts
// are prefixed with a freshly-randomized persona phrase to encourage response
// diversity rather than repeating the same failure mode. Exhausting the budget
// returns an error wrapping [ErrCompletionFailed].
func (c *ProtoBotClient) Complete(ctx context.Context, prompt string, systemMessage string) (string, error) {
	attemptPrompt := prompt
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if attempt > 1 {
			time.Sleep(c.backoff)
			// Vary the prompt slightly for the next attempt.
			attemptPrompt = PersonaPrefix() + "\n" + prompt
		}

		text, err := c.completeOnce(ctx, attemptPrompt, systemMessage)
		if err == nil {
			return text, nil
		}
		c.logger.Warn("completion attempt failed",
			"attempt", attempt, "max_retries", c.maxRetries, errors.SlogError(err))
	}
	return "", errors.Wrap(ErrCompletionFailed, "exhausted retries", slog.Int("max_retries", c.maxRetries))
}

func (c *ProtoBotClient) completeOnce(ctx context.Context, prompt string, systemMessage string) (string, error) {
	form := url.Values{}
	form.Set("_id", c.botID)
	form.Set("stream", "false")
	form.Set("message.assistant.0", systemMessage)
	form.Set("message.user.1", prompt)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "post completion request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("unexpected status", slog.Int("status", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read response body")
	}

	text := StripCodeFences(ExtractText(body))
	if text == "" {
		return "", errors.New("empty completion payload")
	}
	return text, nil
}

// StripCodeFences removes markdown code-fence markers that models wrap
// structured answers in.
func StripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```text", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
