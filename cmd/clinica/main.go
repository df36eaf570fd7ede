package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"clinica/config"
	"clinica/internal/delivery"
	"clinica/internal/delivery/http"
	"clinica/internal/delivery/http/middleware"
	"clinica/internal/delivery/http/router/handler"
	"clinica/internal/infra/api"
	"clinica/internal/infra/auth"
	logs "clinica/internal/infra/log"
	"clinica/internal/infra/session"
	"clinica/internal/usecase"
	"clinica/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			bindSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		api.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			api.NewAuthGateway,
			api.NewPatientRepository,
			session.NewFileStore,
			auth.NewJWTDecoder,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewPatientService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPacienteHandler,
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

// bindSession wires the dispatcher to the session after both exist,
// then restores any persisted session once at boot.
func bindSession(ctx context.Context, client *api.Client, sess usecase.SessionUsecase) {
	client.BindSession(sess.CurrentToken, sess.Invalidate)
	sess.RestoreSession(ctx)
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
