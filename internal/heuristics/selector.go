package heuristics

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vheikkine/franchiselab/internal/ai"
	"github.com/vheikkine/franchiselab/internal/errors"
	"github.com/vheikkine/franchiselab/internal/random"
)

const (
	maxSelected          = 3
	selectorSystemPrompt = "I will analyze which heuristics are most relevant for this business decision."
)

// Selector picks the heuristics most relevant to a decision by asking the
// completion service, falling back to random sampling when it fails.
type Selector struct {
	catalog   *Catalog
	completer ai.Completer
	logger    *slog.Logger
}

// NewSelector wires a selector to a catalog and a completion backend.
func NewSelector(catalog *Catalog, completer ai.Completer, logger *slog.Logger) *Selector {
	return &Selector{
		catalog:   catalog,
		completer: completer,
		logger:    logger.With("source", "Selector"),
	}
}

// Select returns the heuristics judged most relevant to the scenario and the
// chosen action, at most three. Ids returned by the completion that are not
// in the catalog are dropped silently. When the completion fails or no valid
// id survives filtering, min(3, catalog size) heuristics are sampled uniformly
// at random so the caller always receives a usable set.
func (s *Selector) Select(ctx context.Context, scenarioDescription string, choiceDescription string) []Heuristic {
	prompt := fmt.Sprintf(`Given this business scenario and decision:

Scenario: %s
Decision: %s

Evaluate which of these heuristics are most relevant and would provide valuable insights:

%s

Return only the IDs of the 2-3 most relevant heuristics that would best help analyze this decision's impact.
Format: comma-separated list of heuristic IDs (e.g., "workhard_testing_heuristic,capital_follows_opportunity_principle")`,
		scenarioDescription, choiceDescription, s.catalog.PromptList())

	text, err := s.completer.Complete(ctx, prompt, selectorSystemPrompt)
	if err != nil {
		s.logger.Info("heuristic selection fell back to random sampling", errors.SlogError(err))
		return s.randomSample()
	}

	selected := s.parseSelection(text)
	if len(selected) == 0 {
		s.logger.Info("no valid heuristic ids in completion, sampling randomly", "completion", text)
		return s.randomSample()
	}
	return selected
}

func (s *Selector) parseSelection(text string) []Heuristic {
	var selected []Heuristic
	seen := make(map[string]bool)
	for _, id := range strings.Split(text, ",") {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		if h, ok := s.catalog.Get(id); ok {
			selected = append(selected, h)
			if len(selected) == maxSelected {
				break
			}
		}
	}
	return selected
}

func (s *Selector) randomSample() []Heuristic {
	return random.Sample(s.catalog.All(), min(maxSelected, s.catalog.Len()))
}
