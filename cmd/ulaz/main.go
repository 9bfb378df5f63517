package main

import (
	"context"
	"log/slog"
	"os"

	"ulaz/config"
	"ulaz/internal/delivery"
	"ulaz/internal/delivery/http"
	"ulaz/internal/delivery/http/middleware"
	"ulaz/internal/delivery/http/router/handler"
	"ulaz/internal/domain/repository"
	"ulaz/internal/domain/service"
	"ulaz/internal/infra/api"
	"ulaz/internal/infra/auth"
	logs "ulaz/internal/infra/log"
	"ulaz/internal/infra/qrcode"
	"ulaz/internal/infra/storage"
	"ulaz/internal/usecase/impl"

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
		newSessionRepository,
	)
}

// newSessionRepository selects the session backend from configuration. The
// in-memory store is the default and mirrors a single browser tab; redis is
// opted into for shells that must survive restarts.
func newSessionRepository(cfg *config.Config) (repository.SessionRepository, error) {
	if cfg.Session.Storage == "redis" && cfg.Session.Redis != nil {
		return storage.NewRedisRepository(cfg.Session.Redis)
	}

	return storage.NewMemoryRepository(), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewTokenDecoder,
			newPassService,
			api.NewClient,
			func(c *api.Client) service.AuthGateway { return c },
			func(c *api.Client) service.CatalogGateway { return c },
			func(c *api.Client) service.TicketGateway { return c },
			func(c *api.Client) service.CommentGateway { return c },
		),
	)
}

// newPassService creates a ticket pass renderer with dependency injection
func newPassService(cfg *config.Config) service.PassService {
	if cfg.Pass == nil {
		// Use default values if not configured
		return qrcode.NewPassService(256, "M")
	}

	return qrcode.NewPassService(cfg.Pass.Size, cfg.Pass.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewPurchaseService,
			impl.NewReviewService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewCatalogHandler,
			handler.NewPurchaseHandler,
			handler.NewReviewHandler,
			handler.NewAdminHandler,
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
