package main

import (
	"context"
	"log/slog"
	"os"

	"istiqdam/config"
	"istiqdam/internal/delivery"
	"istiqdam/internal/delivery/http"
	httpmiddleware "istiqdam/internal/delivery/http/middleware"
	"istiqdam/internal/delivery/http/router/handler"
	deliverymiddleware "istiqdam/internal/delivery/middleware"
	"istiqdam/internal/domain/repository"
	"istiqdam/internal/domain/service"
	"istiqdam/internal/infra/auth"
	"istiqdam/internal/infra/clock"
	"istiqdam/internal/infra/idgen"
	"istiqdam/internal/infra/importer"
	logs "istiqdam/internal/infra/log"
	"istiqdam/internal/infra/memstore"
	"istiqdam/internal/usecase"
	"istiqdam/internal/usecase/impl"

	"github.com/pkg/errors"
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
			seedStore,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		memstore.NewStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memstore.NewAccountRepository,
			memstore.NewOfficeRepository,
			memstore.NewWorkerRepository,
			memstore.NewReservationRepository,
			memstore.NewSessionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			idgen.NewUUIDGenerator,
			clock.NewSystemClock,
			importer.NewCSVImporter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewReservationService,
			impl.NewOfficeService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewOfficeHandler,
			handler.NewWorkerHandler,
			handler.NewReservationHandler,
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

type seedParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Store      *memstore.Store
	IDs        service.IDGenerator
	Hasher     service.PasswordHasher
	Importer   service.WorkerImporter
	OfficeRepo repository.OfficeRepository
	CatalogUC  usecase.CatalogUsecase
}

// seedStore loads the static office directory and credential table, then
// optionally bulk-imports an initial worker catalog from a CSV file.
func seedStore(ctx context.Context, params seedParams) error {
	if err := memstore.Seed(params.Store, params.IDs, params.Hasher, params.Logger); err != nil {
		return errors.Wrap(err, "failed to seed store")
	}

	if params.Config.Seed == nil || params.Config.Seed.WorkersCSV == "" {
		return nil
	}

	file, err := os.Open(params.Config.Seed.WorkersCSV)
	if err != nil {
		return errors.Wrap(err, "failed to open workers CSV")
	}
	defer file.Close()

	rows, err := params.Importer.Parse(file)
	if err != nil {
		return errors.Wrap(err, "failed to parse workers CSV")
	}

	// The demo catalog is listed under the first seeded office.
	offices, err := params.OfficeRepo.ListAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list seeded offices")
	}
	if len(offices) == 0 {
		return errors.New("no seeded office to own the imported catalog")
	}

	workers, err := params.CatalogUC.ImportWorkers(ctx, offices[0].ID, rows)
	if err != nil {
		return errors.Wrap(err, "failed to import workers CSV")
	}

	params.Logger.Info("Imported startup worker catalog",
		slog.String("file", params.Config.Seed.WorkersCSV),
		slog.Int("workers", len(workers)))

	return nil
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
