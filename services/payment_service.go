package services

import (
	"errors"
	"fmt"
	"log"

	"storefront/models"
	"storefront/repository"

	"gorm.io/gorm"
)

// IPaymentService defines the interface for the payment evidence ledger.
type IPaymentService interface {
	SubmitPayment(orderID uint, requesterID int64, method, reference string) (*models.Order, error)
	SubmitProof(orderID uint, requesterID int64, proofReference string) (*models.Order, error)
}

// PaymentService implements IPaymentService. Evidence is recorded against
// the order without touching its status; confirming payment stays a manual
// operator action.
type PaymentService struct {
	orderRepo repository.IOrderRepository
	operators OperatorIdentity
	notifier  INotifier
}

// NewPaymentService creates a new PaymentService instance.
func NewPaymentService(orderRepo repository.IOrderRepository, operators OperatorIdentity, notifier INotifier) IPaymentService {
	return &PaymentService{orderRepo: orderRepo, operators: operators, notifier: notifier}
}

// SubmitPayment records a payment claim (method + transaction reference) on
// the requester's own order. Overwrites earlier claims, keeps any proof.
func (s *PaymentService) SubmitPayment(orderID uint, requesterID int64, method, reference string) (*models.Order, error) {
	order, err := s.orderRepo.UpdateOrder(orderID, func(order *models.Order) error {
		if order.UserID != requesterID {
			return fmt.Errorf("order %d: %w", orderID, ErrNotOrderOwner)
		}
		order.PaymentMethod = method
		order.PaymentReference = reference
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", orderID, ErrOrderNotFound)
		}
		return nil, err
	}

	s.alertOperators(fmt.Sprintf("Payment submitted for order %d by user %d: %s ref %s (status %s)",
		order.ID, requesterID, method, reference, order.Status))
	return order, nil
}

// SubmitProof attaches a proof reference (e.g. a screenshot handle) to the
// requester's own order. Method and reference are backfilled with sentinel
// values only when still unset, so an order with any evidence never shows
// empty fields; existing claims are never erased.
func (s *PaymentService) SubmitProof(orderID uint, requesterID int64, proofReference string) (*models.Order, error) {
	order, err := s.orderRepo.UpdateOrder(orderID, func(order *models.Order) error {
		if order.UserID != requesterID {
			return fmt.Errorf("order %d: %w", orderID, ErrNotOrderOwner)
		}
		order.PaymentProofReference = proofReference
		if order.PaymentMethod == "" {
			order.PaymentMethod = models.PaymentMethodUnknown
		}
		if order.PaymentReference == "" {
			order.PaymentReference = models.PaymentRefPhotoProof
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", orderID, ErrOrderNotFound)
		}
		return nil, err
	}

	s.alertOperators(fmt.Sprintf("Payment proof received for order %d from user %d", order.ID, requesterID))
	return order, nil
}

// alertOperators runs after the evidence is durably recorded. Delivery is
// best-effort; a failed send never unwinds the write.
func (s *PaymentService) alertOperators(text string) {
	for _, operatorID := range s.operators.Operators() {
		if err := s.notifier.Notify(operatorID, text); err != nil {
			log.Printf("Failed to alert operator %d: %v", operatorID, err)
		}
	}
}
