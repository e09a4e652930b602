// Package notify provides the outbound notification adapter for delivery
// partners. Notifications are queued and dispatched asynchronously by a
// background worker, so matching rounds never block on delivery.
package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// ErrQueueIsFull is returned when a notification cannot be enqueued because
// the dispatch queue is at capacity. Callers treat this as a failed,
// best-effort notification.
var ErrQueueIsFull = errors.New("notification queue is full")

// ErrNotifierIsClosed is returned when enqueueing after Close.
var ErrNotifierIsClosed = errors.New("notifier is closed")

// DefaultQueueCapacity bounds the dispatch queue when no explicit capacity
// is configured.
const DefaultQueueCapacity = 256

type eventKind int

const (
	assignmentAvailable eventKind = iota
	assignmentTaken
)

type envelope struct {
	kind         eventKind
	notification ports.AssignmentNotification
	orderID      kernel.UUID
	partnerID    kernel.UUID
}

// QueueNotifier implements ports.Notifier with a bounded in-process queue
// and a single dispatch worker. It also keeps the per-order record of
// notified partners that acceptance uses to send courtesy cancellations.
//
// The notified-partner record is in-memory only: after a restart, partners
// notified before the restart simply see their offer expire.
type QueueNotifier struct {
	queue  chan envelope
	done   chan struct{}
	logger *slog.Logger

	mu       sync.Mutex
	notified map[kernel.UUID][]kernel.UUID
	closed   bool

	wg sync.WaitGroup
}

// NewQueueNotifier creates a notifier with the given queue capacity and
// starts its dispatch worker. A non-positive capacity falls back to
// DefaultQueueCapacity.
func NewQueueNotifier(capacity int, logger *slog.Logger) *QueueNotifier {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}

	n := &QueueNotifier{
		queue:    make(chan envelope, capacity),
		done:     make(chan struct{}),
		logger:   logger.With("component", "notifier"),
		notified: make(map[kernel.UUID][]kernel.UUID),
	}

	n.wg.Add(1)
	go n.dispatchLoop()

	return n
}

// NotifyAssignmentAvailable queues an assignment offer for a partner and
// records the partner as notified for the order. A full queue fails the
// call without recording.
func (n *QueueNotifier) NotifyAssignmentAvailable(_ context.Context, notification ports.AssignmentNotification) error {
	if err := errors.Join(
		notification.OrderID.Validate(),
		notification.PartnerID.Validate(),
	); err != nil {
		return err
	}

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return ErrNotifierIsClosed
	}

	select {
	case n.queue <- envelope{kind: assignmentAvailable, notification: notification}:
	default:
		n.mu.Unlock()
		n.logger.Warn("notification queue full, dropping assignment offer",
			"order_id", notification.OrderID.String(),
			"partner_id", notification.PartnerID.String(),
		)
		return ErrQueueIsFull
	}

	n.notified[notification.OrderID] = append(n.notified[notification.OrderID], notification.PartnerID)
	n.mu.Unlock()

	return nil
}

// NotifyAssignmentTaken queues a courtesy notice that the order went to
// someone else and removes the partner from the order's notified record.
func (n *QueueNotifier) NotifyAssignmentTaken(_ context.Context, orderID kernel.UUID, partnerID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), partnerID.Validate()); err != nil {
		return err
	}

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return ErrNotifierIsClosed
	}

	select {
	case n.queue <- envelope{kind: assignmentTaken, orderID: orderID, partnerID: partnerID}:
	default:
		n.mu.Unlock()
		n.logger.Warn("notification queue full, dropping taken notice",
			"order_id", orderID.String(),
			"partner_id", partnerID.String(),
		)
		return ErrQueueIsFull
	}

	n.forget(orderID, partnerID)
	n.mu.Unlock()

	return nil
}

// NotifiedPartners returns the partners notified about the order so far.
func (n *QueueNotifier) NotifiedPartners(_ context.Context, orderID kernel.UUID) ([]kernel.UUID, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	partners := n.notified[orderID]
	out := make([]kernel.UUID, len(partners))
	copy(out, partners)
	return out, nil
}

// Close stops accepting new notifications, drains the queue and waits for
// the dispatch worker to finish.
func (n *QueueNotifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	n.mu.Unlock()

	close(n.done)
	n.wg.Wait()
}

// forget removes one notified-record entry. Caller holds the mutex.
func (n *QueueNotifier) forget(orderID kernel.UUID, partnerID kernel.UUID) {
	partners := n.notified[orderID]
	for i, id := range partners {
		if id.IsEqual(partnerID) {
			n.notified[orderID] = append(partners[:i], partners[i+1:]...)
			break
		}
	}
	if len(n.notified[orderID]) == 0 {
		delete(n.notified, orderID)
	}
}

// dispatchLoop delivers queued events until Close, then drains what is left.
func (n *QueueNotifier) dispatchLoop() {
	defer n.wg.Done()

	for {
		select {
		case event := <-n.queue:
			n.deliver(event)
		case <-n.done:
			for {
				select {
				case event := <-n.queue:
					n.deliver(event)
				default:
					return
				}
			}
		}
	}
}

// deliver hands one event to the partner-facing channel. The push gateway
// integration terminates here; delivery is logged so the offer trail is
// reconstructable from logs.
func (n *QueueNotifier) deliver(event envelope) {
	switch event.kind {
	case assignmentAvailable:
		n.logger.Info("assignment offer dispatched",
			"order_id", event.notification.OrderID.String(),
			"partner_id", event.notification.PartnerID.String(),
			"vendor_name", event.notification.VendorName,
			"delivery_address", event.notification.DeliveryText,
			"distance_km", event.notification.DistanceKm,
			"trip_km", event.notification.EstimatedDistanceKm,
			"payout", event.notification.PayoutAmount,
		)
	case assignmentTaken:
		n.logger.Info("assignment taken notice dispatched",
			"order_id", event.orderID.String(),
			"partner_id", event.partnerID.String(),
		)
	}
}
