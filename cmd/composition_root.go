package cmd

import (
	"log/slog"

	"ordermail/internal/adapters/out/mailer"
	"ordermail/internal/adapters/out/postgres"
	"ordermail/internal/adapters/out/statusfeed"
	"ordermail/internal/core/application/usecases/commands"
	"ordermail/internal/core/application/usecases/queries"
	"ordermail/internal/core/ports"
	"ordermail/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateEmailSender() ports.OrderEmailSender {
	return mailer.NewHTTPEmailSender(c.config.MailGatewayURL, nil)
}

func (c *CompositionRoot) CreateStatusProvider() ports.OrderStatusProvider {
	return statusfeed.NewHTTPStatusProvider(c.config.StatusFeedURL, nil)
}

func (c *CompositionRoot) CreateProcessOrderStatusCommandHandler(
	logger *slog.Logger,
) commands.ProcessOrderStatusCommandHandler {
	var f commands.RejectionUoWFactory = FuncRejectionUoWFactory(func() commands.RejectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessOrderStatusCommandHandler(f, c.CreateEmailSender(), logger)
}

func (c *CompositionRoot) CreateSendOrderEmailCommandHandler() commands.SendOrderEmailCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendOrderEmailCommandHandler(f, c.CreateEmailSender())
}

func (c *CompositionRoot) CreateGetOrdersOnHoldQueryHandler() queries.GetOrdersOnHoldQueryHandler {
	return queries.NewGetOrdersOnHoldQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRejectionTrackersQueryHandler() queries.GetRejectionTrackersQueryHandler {
	return queries.NewGetRejectionTrackersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return jobs.NewJobManager(
		c.CreateProcessOrderStatusCommandHandler(logger),
		c.CreateStatusProvider(),
		f,
		c.config.StatusSyncSchedule,
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRejectionUoWFactory func() commands.RejectionUoW

func (f FuncRejectionUoWFactory) Create() commands.RejectionUoW {
	return f()
}
