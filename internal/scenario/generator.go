// Package scenario generates decision topics and two-option scenarios for a
// business profile, with deterministic fallbacks when the completion service
// is unavailable.
package scenario

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/vheikkine/franchiselab/internal/ai"
	"github.com/vheikkine/franchiselab/internal/errors"
	"github.com/vheikkine/franchiselab/internal/heuristics"
)

const maxTopics = 7

// Option is one of the two approaches offered by a scenario.
type Option struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Scenario is a single decision situation with two approaches. Immutable
// once presented.
type Scenario struct {
	Description   string `json:"description"`
	OptionA       Option `json:"option_a"`
	OptionB       Option `json:"option_b"`
	SubModuleName string `json:"sub_module_name,omitempty"`
}

// Generator produces topics and scenarios.
type Generator struct {
	completer ai.Completer
	selector  *heuristics.Selector
	logger    *slog.Logger
}

// NewGenerator wires a generator to a completion backend. The selector is
// used to seed fallback topics from relevant heuristics.
func NewGenerator(completer ai.Completer, selector *heuristics.Selector, logger *slog.Logger) *Generator {
	return &Generator{
		completer: completer,
		selector:  selector,
		logger:    logger.With("source", "Generator"),
	}
}

// Prompt phrase pools combined into each topics prompt so repeated journeys
// do not ask the model the exact same question.
var (
	perspectivePhrases = []string{
		"As an experienced franchise consultant,",
		"Taking the role of a business strategist,",
		"From the perspective of a seasoned entrepreneur,",
		"As a franchise industry expert,",
		"With years of business advisory experience,",
	}
	contextPhrases = []string{
		"considering the current market dynamics,",
		"taking into account industry trends,",
		"analyzing the business landscape,",
		"evaluating the competitive environment,",
		"examining the operational context,",
	}
	stylePhrases = []string{
		"provide insights on",
		"analyze and suggest",
		"evaluate and recommend",
		"assess and determine",
		"review and propose",
	}
)

func promptVariation() string {
	return fmt.Sprintf("%s %s %s",
		perspectivePhrases[rand.Intn(len(perspectivePhrases))],
		contextPhrases[rand.Intn(len(contextPhrases))],
		stylePhrases[rand.Intn(len(stylePhrases))])
}

// Topics returns up to seven decision topics for the business profile.
// Entries are stripped of enumeration prefixes and never empty. On completion
// failure a fixed topic list is returned, seeded with up to two topics
// derived from relevant heuristic names.
func (g *Generator) Topics(ctx context.Context, profile string) []string {
	prompt := fmt.Sprintf(`%s relevant scenario topics for this business:

Business Profile:
%s

Generate a list of scenario topics that:
1. Are specific to the business's industry and situation
2. Cover different aspects of business management (operations, finance, marketing, etc.)
3. Include both immediate challenges and long-term opportunities
4. Are realistic and actionable
5. Would have significant impact on business metrics (cash flow, customer satisfaction, growth potential, and risk level)

Format your response as a simple list of topics, one per line, with no numbers or bullet points. Keep each topic concise (2-4 words).`,
		promptVariation(), profile)

	text, err := g.completer.Complete(ctx, prompt,
		"I am a business scenario generator. I will create relevant scenario topics based on the business profile.")
	if err != nil {
		g.logger.Info("topic generation fell back to fixed topics", errors.SlogError(err))
		return g.FallbackTopics(ctx, profile)
	}

	topics := parseTopics(text)
	if len(topics) == 0 {
		return g.FallbackTopics(ctx, profile)
	}
	return topics
}

// parseTopics splits completion text into topic lines, trimming enumeration
// prefixes such as "1. ", "- " or "• ".
func parseTopics(text string) []string {
	var topics []string
	for _, line := range strings.Split(text, "\n") {
		topic := strings.TrimLeft(strings.TrimSpace(line), "0123456789. -•*")
		topic = strings.TrimSpace(topic)
		if topic == "" {
			continue
		}
		topics = append(topics, topic)
		if len(topics) == maxTopics {
			break
		}
	}
	return topics
}

var baseFallbackTopics = []string{
	"Staff Management",
	"Marketing Strategy",
	"Financial Planning",
	"Customer Service",
	"Technology Implementation",
}

// FallbackTopics returns a fixed five-topic list, with up to two leading
// topics synthesized from the names of heuristics relevant to the profile.
func (g *Generator) FallbackTopics(ctx context.Context, profile string) []string {
	var topics []string
	for _, h := range g.selector.Select(ctx, profile, profile) {
		topics = append(topics, topicFromHeuristicName(h.Name))
		if len(topics) == 2 {
			break
		}
	}
	return append(topics, baseFallbackTopics[:5-len(topics)]...)
}

// topicFromHeuristicName turns a heuristic name into a topic label.
func topicFromHeuristicName(name string) string {
	name = strings.ReplaceAll(name, "Heuristic", "")
	name = strings.ReplaceAll(name, "Framework", "")
	name = strings.TrimSpace(name)
	if strings.Contains(name, "Decision") {
		return strings.ReplaceAll(name, "Decision", "Strategy")
	}
	return name + " Initiative"
}

// TopicScenario produces the decision scenario for a topic at the given step
// of the journey (step starts at 1). The completion is asked for a JSON
// scenario naming a sub-focus of the topic for this step; the returned
// description must mention at least one word of the topic, a cheap relevance
// guard rather than a syntax check. Any failure selects a deterministic entry
// from the topic-family fallback tables instead.
func (g *Generator) TopicScenario(ctx context.Context, topic string, profile string, step int) Scenario {
	prompt := fmt.Sprintf(`create a specific scenario and decision options for this business situation:

Topic: %[1]s
Decision Step: %[2]d of 5
Business Profile: %[3]s

Create a scenario that addresses a specific aspect (sub-module) of %[1]s appropriate for step %[2]d and provides two distinct approaches to handling it.

The response must follow this exact JSON structure:
{
    "description": "A brief description of the situation that specifically relates to %[1]s (1-2 sentences)",
    "sub_module_name": "The name of the %[1]s aspect this step focuses on (2-3 words)",
    "option_a": {
        "title": "A short title for the first option (3-5 words)",
        "description": "Brief description of how this approach addresses the situation (1-2 sentences)"
    },
    "option_b": {
        "title": "A short title for the second option (3-5 words)",
        "description": "Brief description of how this approach addresses the situation (1-2 sentences)"
    }
}

Guidelines:
1. The scenario description must directly address %[1]s
2. Both options should be specific ways to handle the situation
3. Options should be distinct but both potentially viable
4. Make options realistic for the business profile
5. Avoid generic solutions`,
		topic, step, profile)

	text, err := g.completer.Complete(ctx, prompt,
		fmt.Sprintf("I will create a specific scenario and options for the topic: %s", topic))
	if err != nil {
		g.logger.Info("scenario generation fell back to topic tables",
			"topic", topic, "step", step, errors.SlogError(err))
		return FallbackScenario(topic, step)
	}

	var scenario Scenario
	if err := json.Unmarshal([]byte(ai.StripCodeFences(text)), &scenario); err != nil {
		g.logger.Info("scenario completion was not valid json", "topic", topic, errors.SlogError(err))
		return FallbackScenario(topic, step)
	}
	if !scenario.complete() || !mentionsTopic(scenario.Description, topic) {
		g.logger.Info("scenario completion failed validation", "topic", topic)
		return FallbackScenario(topic, step)
	}
	return scenario
}

func (s Scenario) complete() bool {
	return s.Description != "" &&
		s.OptionA.Title != "" && s.OptionA.Description != "" &&
		s.OptionB.Title != "" && s.OptionB.Description != ""
}

// mentionsTopic reports whether any word of the topic appears in the
// description, case-insensitively.
func mentionsTopic(description string, topic string) bool {
	lower := strings.ToLower(description)
	for _, word := range strings.Fields(strings.ToLower(topic)) {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
