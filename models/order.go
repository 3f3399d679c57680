package models

import (
	"fmt"

	"gorm.io/gorm"
)

// OrderStatus is the closed set of order states. It is validated at every
// boundary; free text never reaches the database.
type OrderStatus string

const (
	StatusNew         OrderStatus = "NEW"
	StatusWaitPayment OrderStatus = "WAIT_PAYMENT"
	StatusPaid        OrderStatus = "PAID"
	StatusPacking     OrderStatus = "PACKING"
	StatusShipped     OrderStatus = "SHIPPED"
	StatusDone        OrderStatus = "DONE"
	StatusCanceled    OrderStatus = "CANCELED"
)

// ParseOrderStatus maps a wire string onto the enum. Unknown strings are
// rejected so transports can fail fast before touching the core.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusNew, StatusWaitPayment, StatusPaid, StatusPacking, StatusShipped, StatusDone, StatusCanceled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// IsTerminal reports whether no further transition is permitted.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDone || s == StatusCanceled
}

// Sentinel payment fields written when a proof arrives before any payment
// claim, so evidence views never show empty method/reference.
const (
	PaymentMethodUnknown = "UNKNOWN"
	PaymentRefPhotoProof = "PHOTO_PROOF"
)

// Order is the immutable snapshot produced at checkout. TotalAmount always
// equals the sum of its line items and is fixed at creation; later catalog
// edits never touch it.
type Order struct {
	gorm.Model
	UserID                int64           `json:"user_id" gorm:"not null;index"`
	CustomerName          string          `json:"customer_name"`
	Phone                 string          `json:"phone"`
	Address               string          `json:"address"`
	Note                  string          `json:"note"`
	TotalAmount           int64           `json:"total_amount" gorm:"not null"`
	Status                OrderStatus     `json:"status" gorm:"type:varchar(16);not null"`
	PaymentMethod         string          `json:"payment_method"`
	PaymentReference      string          `json:"payment_reference"`
	PaymentProofReference string          `json:"payment_proof_reference"`
	Items                 []OrderLineItem `json:"items" gorm:"foreignKey:OrderID"`
}

// OrderLineItem is one product frozen at order-creation time. Never mutated
// after insert.
type OrderLineItem struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	OrderID   uint   `json:"order_id" gorm:"not null;index"`
	ProductID uint   `json:"product_id" gorm:"not null"`
	Name      string `json:"name" gorm:"not null"`
	UnitPrice int64  `json:"unit_price" gorm:"not null"`
	Quantity  int    `json:"quantity" gorm:"not null"`
}
