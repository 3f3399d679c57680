package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"storefront/models"
	"storefront/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// forwardNext is the forward-only chain used when strict transitions are
// enabled. CANCELED stays reachable from any non-terminal status.
var forwardNext = map[models.OrderStatus]models.OrderStatus{
	models.StatusNew:         models.StatusWaitPayment,
	models.StatusWaitPayment: models.StatusPaid,
	models.StatusPaid:        models.StatusPacking,
	models.StatusPacking:     models.StatusShipped,
	models.StatusShipped:     models.StatusDone,
}

// IStatusService defines the interface for order status transitions.
type IStatusService interface {
	SetStatus(orderID uint, next models.OrderStatus, actorID int64) (*models.Order, error)
}

// StatusService implements IStatusService.
//
// By default the machine is deliberately permissive: any non-terminal order
// may move to any status, terminal or not, because operators confirm
// payments and shipments out of band and sometimes out of order. Strict
// forward-only mode is available via configuration; the permissive default
// matches how the shop actually runs.
type StatusService struct {
	orderRepo   repository.IOrderRepository
	operators   OperatorIdentity
	publisher   IEventPublisher
	notifier    INotifier
	eventsTopic string
	strict      bool
}

// NewStatusService creates a new StatusService instance.
func NewStatusService(orderRepo repository.IOrderRepository, operators OperatorIdentity, publisher IEventPublisher, notifier INotifier, eventsTopic string, strict bool) IStatusService {
	return &StatusService{
		orderRepo:   orderRepo,
		operators:   operators,
		publisher:   publisher,
		notifier:    notifier,
		eventsTopic: eventsTopic,
		strict:      strict,
	}
}

// SetStatus moves an order to next on behalf of an operator. The read of
// the current status and the write of the new one happen under a row lock,
// so concurrent transitions on the same order serialize. On success a
// status event is emitted and the customer is told; both are best-effort
// and never roll back the committed change.
func (s *StatusService) SetStatus(orderID uint, next models.OrderStatus, actorID int64) (*models.Order, error) {
	if !s.operators.IsOperator(actorID) {
		return nil, fmt.Errorf("user %d: %w", actorID, ErrUnauthorized)
	}

	var oldStatus models.OrderStatus
	order, err := s.orderRepo.UpdateOrder(orderID, func(order *models.Order) error {
		if order.Status.IsTerminal() {
			return fmt.Errorf("order %d is %s: %w", orderID, order.Status, ErrOrderTerminal)
		}
		if s.strict && !s.forwardAllowed(order.Status, next) {
			return fmt.Errorf("strict mode: %s -> %s: %w", order.Status, next, ErrTransitionNotAllowed)
		}
		oldStatus = order.Status
		order.Status = next
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", orderID, ErrOrderNotFound)
		}
		return nil, err
	}

	s.emitStatusChanged(order, oldStatus, next)
	return order, nil
}

func (s *StatusService) forwardAllowed(current, next models.OrderStatus) bool {
	if next == models.StatusCanceled {
		return true
	}
	return forwardNext[current] == next
}

func (s *StatusService) emitStatusChanged(order *models.Order, oldStatus, newStatus models.OrderStatus) {
	event := StatusChangedEvent{
		EventID:    uuid.NewString(),
		OrderID:    order.ID,
		UserID:     order.UserID,
		OldStatus:  string(oldStatus),
		NewStatus:  string(newStatus),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal status event for order %d: %v", order.ID, err)
		return
	}
	if err := s.publisher.Publish(s.eventsTopic, fmt.Sprintf("%d", order.ID), payload); err != nil {
		log.Printf("Failed to publish status event for order %d: %v", order.ID, err)
	}
	text := fmt.Sprintf("Order %d status updated: %s", order.ID, newStatus)
	if err := s.notifier.Notify(order.UserID, text); err != nil {
		log.Printf("Failed to notify user %d about order %d: %v", order.UserID, order.ID, err)
	}
}
