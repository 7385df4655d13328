// Command achaperto-cli runs single resolutions against the configured providers.
package main

import (
	"context"
	"log/slog"
	"os"

	"achaperto/config"
	"achaperto/internal/domain/lifecycle"
	"achaperto/internal/infra/catalog"
	"achaperto/internal/infra/google"
	"achaperto/internal/infra/llm"
	"achaperto/internal/infra/pubsub"
	"achaperto/internal/usecase"
	"achaperto/internal/usecase/impl"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	root := NewRootCmd(&Dependencies{
		ConfigLoader:    config.New,
		ResolverFactory: newResolver,
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
	})

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newResolver wires the search service without the HTTP container.
func newResolver(ctx context.Context, cfg *config.Config, logger *slog.Logger) (usecase.SearchUsecase, func(), error) {
	client, err := google.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}

	cat, err := catalog.Load(cfg.Search.CatalogPath)
	if err != nil {
		return nil, nil, err
	}

	publisher, err := pubsub.Build(ctx, cfg.PubSub, logger)
	if err != nil {
		return nil, nil, err
	}

	svc, err := impl.NewSearchService(impl.SearchServiceParams{
		Geocoder:  google.NewGeocoder(client, cfg),
		Places:    google.NewPlacesProvider(client, cfg),
		Justifier: llm.NewJustifier(cfg, logger),
		Catalog:   cat,
		Publisher: publisher,
		Config:    cfg,
		Logger:    logger,
	})
	if err != nil {
		_ = publisher.Close()

		return nil, nil, err
	}

	cleanup := func() {
		if waiter, ok := svc.(usecase.EventWaiter); ok {
			waitCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
			if err := waiter.WaitForEvents(waitCtx); err != nil {
				logger.Warn("Search event still pending at exit", slog.Any("error", err))
			}
			cancel()
		}
		if err := publisher.Close(); err != nil {
			logger.Warn("Failed to close publisher", slog.Any("error", err))
		}
	}

	return svc, cleanup, nil
}
