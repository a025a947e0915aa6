package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
)

// PaymentOrder tracks the gateway order issued for an institution's plan.
// Amount is in minor currency units (paise).
type PaymentOrder struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InstitutionID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"institution_id"`
	Amount           int64     `gorm:"not null" json:"amount"`
	Currency         string    `gorm:"size:3;not null;default:'INR'" json:"currency"`
	GatewayOrderID   string    `gorm:"size:255;uniqueIndex;not null" json:"gateway_order_id"`
	GatewayPaymentID *string   `gorm:"size:255" json:"gateway_payment_id"`
	Status           string    `gorm:"size:20;not null;default:'PENDING'" json:"status"`

	Institution Institution `gorm:"foreignkey:InstitutionID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
