// Command reconcile runs one full reconciliation sweep over every enabled
// project and exits. Intended to be scheduled (cron or Cloud Scheduler).
package main

import (
	"context"
	"log/slog"
	"os"

	"enrollsync/config"
	"enrollsync/internal/infra/lms"
	logs "enrollsync/internal/infra/log"
	"enrollsync/internal/infra/persistence/postgres"
	"enrollsync/internal/infra/secrets"
	"enrollsync/internal/usecase"
	"enrollsync/internal/usecase/impl"

	"go.uber.org/fx"
)

type sweepParams struct {
	fx.In
	fx.Shutdowner

	Ctx        context.Context
	Logger     *slog.Logger
	Enrollment usecase.EnrollmentUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			runSweep,
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
			postgres.NewTokenRepository,
			postgres.NewRecordRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			secrets.NewProvider,
			lms.NewSession,
			lms.NewGateway,
			lms.NewClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEnrollmentService,
		),
	)
}

func runSweep(params sweepParams) {
	go func() {
		params.Logger.Info("Starting reconciliation run")

		if err := params.Enrollment.ReconcileAll(params.Ctx); err != nil {
			params.Logger.Error("Reconciliation run failed", slog.Any("error", err))
		}

		if err := params.Shutdown(); err != nil {
			params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
			os.Exit(1)
		}
	}()
}
