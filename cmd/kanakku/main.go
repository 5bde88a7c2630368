package main

import (
	"context"
	"log/slog"
	"os"

	"kanakku/config"
	"kanakku/internal/delivery"
	"kanakku/internal/delivery/api"
	"kanakku/internal/delivery/api/middleware"
	"kanakku/internal/delivery/api/router/handler"
	"kanakku/internal/domain/service"
	"kanakku/internal/infra/auth"
	"kanakku/internal/infra/firebaseapp"
	logs "kanakku/internal/infra/log"
	"kanakku/internal/infra/persistence"
	"kanakku/internal/infra/pubsub"
	"kanakku/internal/infra/qrcode"
	"kanakku/internal/infra/storage"
	"kanakku/internal/usecase/impl"

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
		firebaseapp.NewLazy,
	)
}

func injectRepo() fx.Option {
	return persistence.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewIdentityVerifier,
			storage.NewImageStorage,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(0, "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewShopService,
			impl.NewProductService,
			impl.NewTransactionService,
			impl.NewProfileService,
			impl.NewAccountService,
			impl.NewAnalyticsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewShopHandler,
			handler.NewProductHandler,
			handler.NewTransactionHandler,
			handler.NewProfileHandler,
			handler.NewAnalyticsHandler,
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
