package cmd

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/adapters/out/notify"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/arearepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, domain services, and use case handlers.
// It is the single place where concrete types meet the ports they implement.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	resolver *services.ServiceAreaResolver
	policy   *services.FulfillmentPolicy
	selector services.CandidateSelector
	notifier *notify.QueueNotifier
}

// NewCompositionRoot builds the object graph for the given configuration.
// The resolver reads active areas outside any business transaction; its
// cache TTL comes from the config.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	areaProvider := arearepo.NewGormServiceAreaRepository(gormDB, readOnlyTracker{})

	resolver, err := services.NewServiceAreaResolver(areaProvider, config.AreaCacheTTL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build area resolver: %w", err)
	}

	policy, err := services.NewFulfillmentPolicy(resolver)
	if err != nil {
		return nil, fmt.Errorf("failed to build fulfillment policy: %w", err)
	}

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		resolver:   resolver,
		policy:     policy,
		selector:   services.NewCandidateSelector(),
		notifier:   notify.NewQueueNotifier(config.NotifyQueueCapacity, logger),
	}, nil
}

// Notifier exposes the notification adapter so the application can close it
// on shutdown.
func (c *CompositionRoot) Notifier() *notify.QueueNotifier {
	return c.notifier
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.policy, nil)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.AcceptOrderUoWFactory = FuncAcceptOrderUoWFactory(func() commands.AcceptOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCreateServiceAreaCommandHandler() commands.CreateServiceAreaCommandHandler {
	var f commands.AreaUoWFactory = FuncAreaUoWFactory(func() commands.AreaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateServiceAreaCommandHandler(f, c.resolver, c.logger)
}

func (c *CompositionRoot) CreateCreateMealSlotCommandHandler() commands.CreateMealSlotCommandHandler {
	var f commands.SlotUoWFactory = FuncSlotUoWFactory(func() commands.SlotUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMealSlotCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePartnerLocationCommandHandler() commands.UpdatePartnerLocationCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePartnerLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateMatchCouriersCommandHandler() commands.MatchCouriersCommandHandler {
	var f commands.MatchingUoWFactory = FuncMatchingUoWFactory(func() commands.MatchingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMatchCouriersCommandHandler(f, c.selector, c.notifier)
}

func (c *CompositionRoot) CreateRetryMatchingCommandHandler() commands.RetryMatchingCommandHandler {
	return commands.NewRetryMatchingCommandHandler(c.CreateMatchCouriersCommandHandler(), c.orderUoWFactory())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRetryMatchingCommandHandler(), c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetUnassignedOrdersQueryHandler() queries.GetUnassignedOrdersQueryHandler {
	return queries.NewGetUnassignedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveServiceAreasQueryHandler() queries.GetActiveServiceAreasQueryHandler {
	return queries.NewGetActiveServiceAreasQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryWindowsQueryHandler() queries.GetDeliveryWindowsQueryHandler {
	return queries.NewGetDeliveryWindowsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// readOnlyTracker satisfies the repository tracker without recording
// anything. The resolver's area provider only ever reads.
type readOnlyTracker struct{}

func (readOnlyTracker) TrackAggregate(kernel.UUID, any) {}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAcceptOrderUoWFactory func() commands.AcceptOrderUoW

func (f FuncAcceptOrderUoWFactory) Create() commands.AcceptOrderUoW {
	return f()
}

type FuncMatchingUoWFactory func() commands.MatchingUoW

func (f FuncMatchingUoWFactory) Create() commands.MatchingUoW {
	return f()
}

type FuncAreaUoWFactory func() commands.AreaUoW

func (f FuncAreaUoWFactory) Create() commands.AreaUoW {
	return f()
}

type FuncSlotUoWFactory func() commands.SlotUoW

func (f FuncSlotUoWFactory) Create() commands.SlotUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}
