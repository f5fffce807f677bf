package main

import (
	"context"
	"log/slog"
	"os"

	"fitbot/config"
	"fitbot/internal/delivery"
	"fitbot/internal/delivery/http"
	"fitbot/internal/delivery/http/router/handler"
	"fitbot/internal/infra/llm"
	logs "fitbot/internal/infra/log"
	"fitbot/internal/infra/persistence"
	"fitbot/internal/infra/vectorindex"
	"fitbot/internal/usecase/impl"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

const tracerName = "fitbot"

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newTracer,
	)
}

func injectRepo() fx.Option {
	return persistence.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			llm.NewClient,
			llm.NewChatModel,
			llm.NewEmbedder,
		),
		vectorindex.Module,
	)
}

// newTracer returns the plan chain tracer from the global provider
func newTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCalculator,
			impl.NewContextRetriever,
			impl.NewPlanChain,
			impl.NewPlanService,
			impl.NewExerciseService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPlanHandler,
			handler.NewExerciseHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
