package app

import (
	"context"
	"fmt"
	"time"

	"github.com/wanderjot/journal-backend/internal/command"
	"github.com/wanderjot/journal-backend/internal/datasources"
	"github.com/wanderjot/journal-backend/internal/datasources/genai"
	"github.com/wanderjot/journal-backend/internal/datasources/mysql"
	"github.com/wanderjot/journal-backend/internal/domain"
	"github.com/wanderjot/journal-backend/internal/transport/web/router"
	"github.com/wanderjot/journal-backend/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	repo, err := setupJournalRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up journal repository: %w", err)
	}

	gateway, err := setupModelGateway(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up model gateway: %w", err)
	}

	authMiddleware, err := router.SetupAuth0Middleware(
		MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
		MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
	)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	commands := router.Commands{
		RecordInterest: &command.RecordInterest{
			EntryFetcher:   repo,
			EntryPatcher:   repo,
			VectorGetter:   repo,
			VectorUpserter: repo,
			Embedder:       gateway.embedder,
			Weights:        domain.DefaultSignalWeights(),
			Now:            time.Now,
		},
		TranslateEntry: &command.TranslateEntry{
			CacheGetter:    repo,
			CachePutter:    repo,
			Translator:     gateway.translator,
			SourceLanguage: MustGetEnvAsString(ctx, "SOURCE_LANGUAGE"),
		},
		UpdateEntry: &command.UpdateEntry{
			EntryFetcher: repo,
			EntryUpdater: repo,
			EntryPatcher: repo,
			Invalidator:  repo,
			Embedder:     gateway.embedder,
		},
		EntryInsight: &command.GenerateEntryInsight{
			EntryFetcher: repo,
			Generator:    gateway.generator,
		},
	}

	httpRouter, err := router.MakeRouter(
		repo,
		commands,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "ENTRY_CACHE_MAX_AGE"),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:      MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:  MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostname: MustGetEnvAsString(ctx, "HTTP_AUTOCERT_HOSTNAME"),
			Router:           httpRouter,
		},
	}, nil
}

func setupJournalRepository(ctx context.Context) (datasources.JournalRepository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}

// modelGateway groups the model-backed dependencies so null and live
// implementations wire identically.
type modelGateway struct {
	embedder   datasources.Embedder
	translator datasources.Translator
	generator  datasources.InsightGenerator
}

func setupModelGateway(ctx context.Context) (modelGateway, error) {
	switch driver := MustGetEnvAsString(ctx, "GENAI_DRIVER"); driver {
	case "null":
		return modelGateway{
			embedder:   datasources.NullEmbedder{},
			translator: datasources.NullTranslator{},
			generator:  datasources.NullInsightGenerator{},
		}, nil
	case "gemini":
		cfg := genai.DefaultConfig(MustGetEnvAsString(ctx, "GENAI_API_KEY"))
		cfg.SourceLanguage = MustGetEnvAsString(ctx, "SOURCE_LANGUAGE")
		client := genai.NewClient(cfg, genai.NewDefaultThrottle())
		return modelGateway{
			embedder:   client,
			translator: client,
			generator:  client,
		}, nil
	default:
		return modelGateway{}, fmt.Errorf("unknown genai driver [%s]", driver)
	}
}
