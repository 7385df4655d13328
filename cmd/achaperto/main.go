package main

import (
	"context"
	"log/slog"
	"os"

	"achaperto/config"
	"achaperto/internal/delivery"
	"achaperto/internal/delivery/api"
	"achaperto/internal/delivery/api/router/handler"
	"achaperto/internal/delivery/middleware"
	"achaperto/internal/infra/catalog"
	"achaperto/internal/infra/geoip"
	"achaperto/internal/infra/google"
	"achaperto/internal/infra/llm"
	logs "achaperto/internal/infra/log"
	"achaperto/internal/infra/metrics"
	"achaperto/internal/infra/pubsub"
	"achaperto/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		catalog.Module,
		geoip.Module,
		pubsub.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		google.Module,
		fx.Provide(
			llm.NewJustifier,
			metrics.NewSearchObserver,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSearchService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewCountryGateMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSearchHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
