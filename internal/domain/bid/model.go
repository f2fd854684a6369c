package bid

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusCounter  Status = "counter"
)

// Part is one line of the parts list attached to a bid.
type Part struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
}

// VendorBid is one vendor's offer against a marketplace ticket.
// CounterOffer/CounterNotes are present only while status is counter;
// RejectionReason only when status is rejected.
type VendorBid struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	TicketID        uint             `gorm:"not null;index" json:"ticket_id"`
	VendorID        uint             `gorm:"not null;index" json:"vendor_id"`
	HourlyRate      decimal.Decimal  `gorm:"type:numeric(12,2)" json:"hourly_rate"`
	EstimatedHours  decimal.Decimal  `gorm:"type:numeric(8,2)" json:"estimated_hours"`
	ResponseTime    string           `gorm:"size:100" json:"response_time"`
	TotalAmount     decimal.Decimal  `gorm:"type:numeric(12,2)" json:"total_amount"`
	Parts           datatypes.JSON   `json:"parts"`
	AdditionalNotes string           `gorm:"type:text" json:"additional_notes"`
	Status          Status           `gorm:"size:20;not null;default:'pending';index" json:"status"`
	RejectionReason string           `gorm:"type:text" json:"rejection_reason,omitempty"`
	CounterOffer    *decimal.Decimal `gorm:"type:numeric(12,2)" json:"counter_offer,omitempty"`
	CounterNotes    string           `gorm:"type:text" json:"counter_notes,omitempty"`
	Approved        bool             `json:"approved"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// ComputeTotal derives the bid total from rate, hours and parts. Called on
// every mutation of any of the three inputs.
func ComputeTotal(rate, hours decimal.Decimal, parts []Part) decimal.Decimal {
	total := rate.Mul(hours)
	for _, p := range parts {
		total = total.Add(p.Cost.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return total
}
