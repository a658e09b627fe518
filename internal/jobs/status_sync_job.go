package jobs

import (
	"context"
	"errors"
	"log/slog"

	"ordermail/internal/core/application/usecases/commands"
	"ordermail/internal/core/domain/model/order"
	"ordermail/internal/core/ports"
	"ordermail/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// StatusSyncJob polls the partner status feed for every order in production
// and runs a rejection processing pass over each fetched document. It covers
// partners that never push the status webhook.
type StatusSyncJob struct {
	handler    commands.ProcessOrderStatusCommandHandler
	provider   ports.OrderStatusProvider
	uowFactory commands.OrderUoWFactory
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStatusSyncJob creates a job that polls order statuses on the given cron
// schedule (six-field spec, seconds first).
func NewStatusSyncJob(
	handler commands.ProcessOrderStatusCommandHandler,
	provider ports.OrderStatusProvider,
	uowFactory commands.OrderUoWFactory,
	schedule string,
	logger *slog.Logger,
) *StatusSyncJob {
	return &StatusSyncJob{
		handler:    handler,
		provider:   provider,
		uowFactory: uowFactory,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "status_sync_job"),
	}
}

// Start begins polling on the configured schedule.
func (j *StatusSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Status sync job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status sync job started", "schedule", j.schedule)
	return nil
}

// Stop stops the status sync job.
func (j *StatusSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status sync job stopped")
}

// run executes one polling pass. Failures of individual orders are logged and
// skipped so a broken feed entry cannot stall the other orders.
func (j *StatusSyncJob) run(ctx context.Context) error {
	orders, err := j.listInProduction(ctx)
	if err != nil {
		return err
	}

	for _, ord := range orders {
		j.syncOrder(ctx, ord)
	}

	return nil
}

func (j *StatusSyncJob) listInProduction(ctx context.Context) ([]*order.Order, error) {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().GetAllInProduction(ctx)
}

func (j *StatusSyncJob) syncOrder(ctx context.Context, ord *order.Order) {
	report, err := j.provider.Fetch(ctx, ord.ID())
	if err != nil {
		// The partner may not know the order yet; that is not a system issue.
		if !errors.Is(err, errs.ErrObjectNotFound) {
			j.logger.ErrorContext(ctx, "Failed to fetch order status",
				"orderId", ord.ID().String(), "error", err)
		}
		return
	}

	if !report.HasRejections() {
		return
	}

	cmd, err := commands.NewProcessOrderStatusCommand(ord.ID(), report)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to build status command",
			"orderId", ord.ID().String(), "error", err)
		return
	}

	if err = j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Status processing pass failed",
			"orderId", ord.ID().String(), "error", err)
	}
}
