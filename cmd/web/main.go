package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/donseba/go-htmx"
	"github.com/joho/godotenv"
	"github.com/vheikkine/franchiselab/internal/ai"
	"github.com/vheikkine/franchiselab/internal/analysis"
	"github.com/vheikkine/franchiselab/internal/db"
	"github.com/vheikkine/franchiselab/internal/envstruct"
	"github.com/vheikkine/franchiselab/internal/errors"
	"github.com/vheikkine/franchiselab/internal/heuristics"
	"github.com/vheikkine/franchiselab/internal/impact"
	"github.com/vheikkine/franchiselab/internal/logging"
	"github.com/vheikkine/franchiselab/internal/pprofserver"
	"github.com/vheikkine/franchiselab/internal/repositories"
	"github.com/vheikkine/franchiselab/internal/scenario"
	"github.com/vheikkine/franchiselab/internal/simulation"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	htmx           *htmx.HTMX
	engine         *simulation.Engine
	simulations    *repositories.SimulationRepository
}

type config struct {
	Addr        string        `env:"FRANCHISELAB_ADDR" envDefault:"localhost:4000"`
	SQLiteURL   string        `env:"FRANCHISELAB_SQLITE_URL" envDefault:"./franchiselab.sqlite"`
	CatalogPath string        `env:"FRANCHISELAB_CATALOG_PATH" envDefault:""`
	AIProvider  string        `env:"FRANCHISELAB_AI_PROVIDER" envDefault:"offline"`
	AIRetries   int           `env:"FRANCHISELAB_AI_RETRIES" envDefault:"3"`
	AIBackoff   time.Duration `env:"FRANCHISELAB_AI_BACKOFF" envDefault:"1s"`

	ProtoBotsBaseURL string `env:"PROTOBOTS_BASE_URL" envDefault:"https://api.protobots.ai/proto_bots/generate_v2"`
	ProtoBotsAPIKey  string `env:"PROTOBOTS_API_KEY" envDefault:""`
	ProtoBotsBotID   string `env:"PROTOBOTS_BOT_ID" envDefault:""`
	OpenAIAPIKey     string `env:"OPENAI_API_KEY" envDefault:""`
}

// newCompleter picks the completion backend based on configuration. The
// offline backend makes every generation path use its deterministic fallback.
func newCompleter(cfg config, logger *slog.Logger) (ai.Completer, error) {
	switch cfg.AIProvider {
	case "protobots":
		return ai.NewProtoBotClient(ai.Config{
			BaseURL:    cfg.ProtoBotsBaseURL,
			APIKey:     cfg.ProtoBotsAPIKey,
			BotID:      cfg.ProtoBotsBotID,
			MaxRetries: cfg.AIRetries,
			Backoff:    cfg.AIBackoff,
		}, logger), nil
	case "openai":
		return ai.NewOpenAIClient(cfg.OpenAIAPIKey), nil
	case "offline":
		return ai.OfflineCompleter{}, nil
	default:
		return nil, errors.New("unknown AI provider", slog.String("provider", cfg.AIProvider))
	}
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "parse environment")
	}

	dbs, err := db.NewDB(cfg.SQLiteURL)
	if err != nil {
		return errors.Wrap(err, "connect database", slog.String("url", cfg.SQLiteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db", slog.String("url", cfg.SQLiteURL))

	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite.DB, 24*time.Hour)
	sessionManager.Lifetime = 12 * time.Hour

	catalog, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return errors.Wrap(err, "load heuristic catalog")
	}

	completer, err := newCompleter(cfg, logger)
	if err != nil {
		return err
	}

	selector := heuristics.NewSelector(catalog, completer, logger)
	engine := simulation.NewEngine(
		selector,
		impact.NewCalculator(completer, cfg.AIBackoff, logger),
		scenario.NewGenerator(completer, selector, logger),
		analysis.NewGenerator(completer, logger),
	)

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		htmx:           htmx.New(),
		engine:         engine,
		simulations:    repositories.NewSimulationRepository(dbs, logger),
	}

	return app.configureAndStartServer(ctx, cfg.Addr)
}

func loadCatalog(path string) (*heuristics.Catalog, error) {
	if path == "" {
		return heuristics.Default()
	}
	return heuristics.LoadFile(path)
}

func main() {
	ctx := context.Background()

	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
	logger := slog.New(loggerHandler)

	// Initialise pprof listening on localhost so that it's not open to the world.
	pprofserver.Launch("localhost:6060", logger)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.LogAttrs(ctx, slog.LevelError, "load .env", errors.SlogError(err))
		os.Exit(1)
	}

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server error", errors.SlogError(err))
		os.Exit(1)
	}
}
