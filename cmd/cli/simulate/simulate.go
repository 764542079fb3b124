package simulate

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vheikkine/franchiselab/internal/ai"
	"github.com/vheikkine/franchiselab/internal/analysis"
	"github.com/vheikkine/franchiselab/internal/business"
	"github.com/vheikkine/franchiselab/internal/heuristics"
	"github.com/vheikkine/franchiselab/internal/impact"
	"github.com/vheikkine/franchiselab/internal/random"
	"github.com/vheikkine/franchiselab/internal/scenario"
	"github.com/vheikkine/franchiselab/internal/simulation"
)

var Group = &cobra.Group{
	ID:    "simulate",
	Title: "Simulation",
}

func init() {
	Run.Flags().String("choice", "random", "option to pick at every step: a, b, or random")
}

var Run = &cobra.Command{
	Use:     "run [profile]",
	GroupID: "simulate",
	Short:   "Dry-run a journey",
	Long:    `Runs a full decision journey with the offline generators and prints each step`,
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		choice, err := cmd.Flags().GetString("choice")
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "invalid choice flag: %v\n", err)
			return
		}

		catalog, err := heuristics.Default()
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Catalog error: %v\n", err)
			return
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		completer := ai.OfflineCompleter{}
		selector := heuristics.NewSelector(catalog, completer, logger)
		engine := simulation.NewEngine(
			selector,
			impact.NewCalculator(completer, 0, logger),
			scenario.NewGenerator(completer, selector, logger),
			analysis.NewGenerator(completer, logger),
		)

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		journey := simulation.NewJourney(strings.Join(args, " "))
		printMetrics(out, journey.Metrics)

		for !journey.Complete() {
			topics := engine.Topics(ctx, journey)
			topic := topics[random.IntBetween(0, len(topics)-1)]
			s := engine.Scenario(ctx, journey, topic)

			chosen := s.OptionA
			switch choice {
			case "b":
				chosen = s.OptionB
			case "random":
				if random.IntBetween(0, 1) == 1 {
					chosen = s.OptionB
				}
			}

			decision := engine.Decide(ctx, journey, topic, s, chosen)
			_, _ = fmt.Fprintf(out, "\nDecision %d: %s", len(journey.History), decision.Topic)
			if decision.SubModuleName != "" {
				_, _ = fmt.Fprintf(out, " / %s", decision.SubModuleName)
			}
			_, _ = fmt.Fprintf(out, "\nChoice: %s\n", decision.ChoiceTitle)
			_, _ = fmt.Fprintf(out, "Impact: cash %+d, satisfaction %+d%%, growth %+d%%, risk %+d%%\n",
				decision.Impacts.CashFlow, decision.Impacts.CustomerSatisfaction,
				decision.Impacts.GrowthPotential, decision.Impacts.RiskLevel)
			printMetrics(out, journey.Metrics)
		}

		score := journey.Metrics.HealthScore()
		status, description := business.StatusForScore(score)
		_, _ = fmt.Fprintf(out, "\nHealth score: %d/100 (%s)\n%s\n", score, status, description)
	},
}

func printMetrics(out io.Writer, m business.Metrics) {
	_, _ = fmt.Fprintf(out, "Metrics: cash $%d, satisfaction %d%%, growth %d%%, risk %d%%\n",
		m.CashFlow, m.CustomerSatisfaction, m.GrowthPotential, m.RiskLevel)
}
