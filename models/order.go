package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCanceled  OrderStatus = "canceled"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type OrderItem struct {
	gorm.Model
	OrderID   uint    `json:"order_id" gorm:"index"`
	ProductID uint    `json:"product_id"`
	Product   Product `json:"product" gorm:"foreignKey:ProductID"`
	Quantity  int     `json:"quantity"`
	UnitPrice int64   `json:"unit_price"` // price in cents at order time
}

type Order struct {
	gorm.Model
	Reference     string        `json:"reference" gorm:"uniqueIndex"`
	CustomerID    uint          `json:"customer_id"`
	Customer      User          `json:"customer" gorm:"foreignKey:CustomerID"`
	Items         []OrderItem   `json:"items" gorm:"foreignKey:OrderID"`
	PickupTime    time.Time     `json:"pickup_time"`
	Status        OrderStatus   `json:"status"`
	SubTotal      int64         `json:"sub_total"` // cents, before promo
	Discount      int64         `json:"discount"`  // cents taken off by the promo
	Total         int64         `json:"total"`     // cents
	PromoCode     string        `json:"promo_code"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentRef    string        `json:"payment_ref"`
	Note          string        `json:"note"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.Status == "" {
		o.Status = StatusPending
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = PaymentUnpaid
	}
	// Booked slots are matched on the exact minute, so seconds must be zeroed
	o.PickupTime = o.PickupTime.Truncate(time.Minute)
	return nil
}

func (o *Order) UpdateStatus(tx *gorm.DB, newStatus OrderStatus) error {
	switch o.Status {
	case StatusPending:
		if newStatus != StatusConfirmed && newStatus != StatusCanceled {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case StatusConfirmed:
		if newStatus != StatusReady && newStatus != StatusCanceled {
			return fmt.Errorf("invalid transition from confirmed to %s", newStatus)
		}
	case StatusReady:
		if newStatus != StatusCompleted && newStatus != StatusCanceled {
			return fmt.Errorf("invalid transition from ready to %s", newStatus)
		}
	case StatusCompleted, StatusCanceled:
		return fmt.Errorf("no transitions allowed from %s", o.Status)
	}

	o.Status = newStatus
	if tx == nil {
		return nil
	}
	return tx.Save(o).Error
}

// CanTransition reports whether the status change is allowed without applying it.
func (o *Order) CanTransition(newStatus OrderStatus) bool {
	probe := Order{Status: o.Status}
	return probe.UpdateStatus(nil, newStatus) == nil
}
