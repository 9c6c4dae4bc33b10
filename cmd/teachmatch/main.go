package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"teachmatch/config"
	"teachmatch/internal/delivery"
	"teachmatch/internal/delivery/http"
	"teachmatch/internal/delivery/http/middleware"
	"teachmatch/internal/delivery/http/router/handler"
	"teachmatch/internal/delivery/worker"
	workerhandler "teachmatch/internal/delivery/worker/handler"
	"teachmatch/internal/domain/service"
	"teachmatch/internal/infra/auth"
	logs "teachmatch/internal/infra/log"
	"teachmatch/internal/infra/persistence/postgres"
	"teachmatch/internal/infra/pubsub"
	"teachmatch/internal/infra/push"
	"teachmatch/internal/realtime"
	"teachmatch/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewConversationRepository,
			postgres.NewMessageRepository,
			postgres.NewNotificationRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newPushSender,
			service.NewInstanceID,
			pubsub.NewEventPublisher,
			newHub,
			asBroadcaster,
			realtime.NewAuthenticator,
		),
	)
}

// newPushSender creates the push adapter. Firebase is optional; without it a
// no-op sender keeps the fan-out engine oblivious.
func newPushSender(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushSender, error) {
	if cfg.Firebase == nil {
		return push.NewNoopSender(logger), nil
	}

	sender, err := push.NewFCMSender(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create FCM sender: %w", err)
	}

	return sender, nil
}

// newHub creates the connection hub and ties it to the app lifecycle so every
// socket is closed on shutdown.
func newHub(lc fx.Lifecycle, logger *slog.Logger) *realtime.Hub {
	hub := realtime.NewHub(logger)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			hub.Close()

			return nil
		},
	})

	return hub
}

// asBroadcaster exposes the hub under the domain interface the services use.
func asBroadcaster(hub *realtime.Hub) service.RoomBroadcaster {
	return hub
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMessageService,
			impl.NewNotificationService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewConversationHandler,
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
			handler.NewRealtimeHandler,
			workerhandler.NewPushHandler,
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
			fx.Annotate(
				worker.NewServer,
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
