package ai

import (
	"encoding/json"
	"strings"
)

const (
	streamDataPrefix = "data:"
	streamDone       = "[DONE]"
)

// chunk mirrors the interesting fields of one response payload. The service
// puts the generated text in "message" for chat-style bots and in "object"
// for structured bots, and tags bookkeeping chunks with an "event" field.
type chunk struct {
	Message string `json:"message"`
	Object  string `json:"object"`
	Event   string `json:"event"`
}

// ExtractText pulls the generated text out of a completion response body.
//
// Despite the stream=false request flag the service sometimes answers with an
// SSE-style stream of "data:" lines. In that case the final content-bearing
// chunk holds the full text, so the chunks are scanned from the end, skipping
// the [DONE] sentinel, loader and keepalive markers, and anything that fails
// to parse. A body without "data:" lines is decoded as a single JSON object.
// Returns the empty string when no text can be extracted.
func ExtractText(body []byte) string {
	chunks := streamChunks(string(body))
	if chunks == nil {
		var c chunk
		if err := json.Unmarshal(body, &c); err != nil {
			return ""
		}
		return c.text()
	}

	for i := len(chunks) - 1; i >= 0; i-- {
		payload := chunks[i]
		if payload == "" || payload == streamDone {
			continue
		}
		var c chunk
		if err := json.Unmarshal([]byte(payload), &c); err != nil {
			continue
		}
		if c.Event == "loader" || c.Event == "keepalive" {
			continue
		}
		if text := c.text(); text != "" {
			return text
		}
	}
	return ""
}

// streamChunks returns the payloads of all "data:" lines, or nil when the
// body is not an event stream.
func streamChunks(body string) []string {
	if !strings.Contains(body, streamDataPrefix) {
		return nil
	}
	var payloads []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, streamDataPrefix); ok {
			payloads = append(payloads, strings.TrimSpace(rest))
		}
	}
	return payloads
}

func (c chunk) text() string {
	if c.Message != "" {
		return c.Message
	}
	return c.Object
}
