package main

import (
	"context"
	"log/slog"
	"os"

	"bikeshare/config"
	"bikeshare/internal/delivery"
	"bikeshare/internal/delivery/http"
	"bikeshare/internal/delivery/http/middleware"
	"bikeshare/internal/delivery/http/router/handler"
	"bikeshare/internal/infra/auth"
	logs "bikeshare/internal/infra/log"
	"bikeshare/internal/infra/marketplace"
	"bikeshare/internal/infra/sanitize"
	"bikeshare/internal/infra/viewstate"
	"bikeshare/internal/usecase/impl"

	"go.uber.org/fx"
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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		marketplace.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			marketplace.NewCatalogRepository,
			marketplace.NewBookingRepository,
			marketplace.NewIdentityRepository,
			marketplace.NewReviewRepository,
			marketplace.NewSupportRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			sanitize.NewStrictSanitizer,
			viewstate.NewMemoryStore,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewSupportService,
			impl.NewDashboardService,
			impl.NewReservationService,
			impl.NewBikeService,
			impl.NewReviewService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewSupportHandler,
			handler.NewDashboardHandler,
			handler.NewReservationHandler,
			handler.NewBikeHandler,
			handler.NewReviewHandler,
			handler.NewNotificationHandler,
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
