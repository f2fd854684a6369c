package invoice

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Status string

const (
	StatusDraft   Status = "draft"
	StatusSent    Status = "sent"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// LineItem is an additional charge beyond the aggregated work orders.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice aggregates one or more work orders for a ticket.
// Invariants: subtotal = sum(work order totals) + sum(line item amounts);
// total = subtotal + tax.
type Invoice struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	TicketID     uint            `gorm:"not null;index" json:"ticket_id"`
	VendorID     uint            `gorm:"not null;index" json:"vendor_id"`
	WorkOrderIDs datatypes.JSON  `json:"work_order_ids"`
	LineItems    datatypes.JSON  `json:"line_items"`
	Subtotal     decimal.Decimal `gorm:"type:numeric(12,2)" json:"subtotal"`
	Tax          decimal.Decimal `gorm:"type:numeric(12,2)" json:"tax"`
	Total        decimal.Decimal `gorm:"type:numeric(12,2)" json:"total"`
	Status       Status          `gorm:"size:20;not null;default:'draft';index" json:"status"`
	Notes        string          `gorm:"type:text" json:"notes"`
	SentAt       *time.Time      `json:"sent_at"`
	DueAt        *time.Time      `json:"due_at"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ComputeTotals derives subtotal and total from the aggregated work-order
// costs, the additional line items and the tax amount.
func ComputeTotals(workOrderCosts []decimal.Decimal, items []LineItem, tax decimal.Decimal) (subtotal, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, c := range workOrderCosts {
		subtotal = subtotal.Add(c)
	}
	for _, it := range items {
		subtotal = subtotal.Add(it.Amount)
	}
	return subtotal, subtotal.Add(tax)
}
