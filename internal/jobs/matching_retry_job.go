package jobs

import (
	"context"
	"log/slog"
	"sync"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// MatchingRetryJob periodically sweeps unassigned delivery orders and runs
// a matching round for each, widening the search radius on every attempt.
// Attempt counts live in memory; a restart begins counting from zero, which
// only means a few extra matching rounds for orders already in flight.
type MatchingRetryJob struct {
	retryHandler commands.RetryMatchingCommandHandler
	uowFactory   commands.OrderUoWFactory
	cron         *cron.Cron
	logger       *slog.Logger

	mu        sync.Mutex
	attempts  map[kernel.UUID]int
	escalated map[kernel.UUID]struct{}
}

// NewMatchingRetryJob creates the matching retry sweep. The unit of work
// factory is used read-only, to list the unassigned worklist each tick.
func NewMatchingRetryJob(
	retryHandler commands.RetryMatchingCommandHandler,
	uowFactory commands.OrderUoWFactory,
	logger *slog.Logger,
) *MatchingRetryJob {
	return &MatchingRetryJob{
		retryHandler: retryHandler,
		uowFactory:   uowFactory,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "matching_retry_job"),
		attempts:     make(map[kernel.UUID]int),
		escalated:    make(map[kernel.UUID]struct{}),
	}
}

// Start begins the matching retry job, sweeping every 30 seconds.
func (j *MatchingRetryJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Matching retry job started (sweeping every 30 seconds)")
	return nil
}

// Stop stops the matching retry job.
func (j *MatchingRetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Matching retry job stopped")
}

// sweep runs one matching round per unassigned order and advances the
// per-order attempt counter. Orders no longer unassigned drop out of the
// counter map.
func (j *MatchingRetryJob) sweep() {
	ctx := context.Background()

	orders, err := j.unassignedOrders(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list unassigned orders", "error", err)
		return
	}

	current := make(map[kernel.UUID]struct{}, len(orders))

	for _, orderID := range orders {
		current[orderID] = struct{}{}

		// An escalated order stays ReadyForPickup on the worklist until an
		// operator assigns it; automatic matching is done with it.
		if j.isEscalated(orderID) {
			continue
		}

		attempt := j.nextAttempt(orderID)

		cmd, cmdErr := commands.NewRetryMatchingCommand(orderID, attempt)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build retry command",
				"order_id", orderID.String(), "error", cmdErr)
			continue
		}

		result, handleErr := j.retryHandler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Matching round failed",
				"order_id", orderID.String(), "attempt", attempt, "error", handleErr)
			continue
		}

		if result.Escalated {
			j.markEscalated(orderID)
			j.logger.InfoContext(ctx, "Order flagged for manual assignment",
				"order_id", orderID.String(), "attempt", attempt)
			continue
		}

		if result.NotifiedCount > 0 {
			j.logger.InfoContext(ctx, "Matching round notified partners",
				"order_id", orderID.String(),
				"attempt", attempt,
				"notified", result.NotifiedCount,
				"trip_km", result.EstimatedDistanceKm,
			)
		}
	}

	j.prune(current)
}

// unassignedOrders lists the IDs of the current matching worklist.
func (j *MatchingRetryJob) unassignedOrders(ctx context.Context) ([]kernel.UUID, error) {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllUnassigned(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	return ids, nil
}

// nextAttempt returns the order's attempt number and advances the counter.
func (j *MatchingRetryJob) nextAttempt(orderID kernel.UUID) int {
	j.mu.Lock()
	defer j.mu.Unlock()

	attempt := j.attempts[orderID]
	j.attempts[orderID] = attempt + 1
	return attempt
}

// isEscalated reports whether automatic matching already gave up on the order.
func (j *MatchingRetryJob) isEscalated(orderID kernel.UUID) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	_, ok := j.escalated[orderID]
	return ok
}

// markEscalated takes the order off the automatic matching rotation.
func (j *MatchingRetryJob) markEscalated(orderID kernel.UUID) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.escalated[orderID] = struct{}{}
	delete(j.attempts, orderID)
}

// prune drops tracking state for orders that left the worklist.
func (j *MatchingRetryJob) prune(current map[kernel.UUID]struct{}) {
	j.mu.Lock()
	defer j.mu.Unlock()

	for orderID := range j.attempts {
		if _, ok := current[orderID]; !ok {
			delete(j.attempts, orderID)
		}
	}
	for orderID := range j.escalated {
		if _, ok := current[orderID]; !ok {
			delete(j.escalated, orderID)
		}
	}
}
