package workorder

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Part is one part consumed during a work session.
type Part struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
}

// WorkOrder is one technician work session against an accepted ticket.
// Several may exist per ticket (return visits). Read-only once the ticket
// reaches ready_for_billing.
type WorkOrder struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	TicketID        uint            `gorm:"not null;index" json:"ticket_id"`
	TechnicianID    uint            `gorm:"not null;index" json:"technician_id"`
	WorkDescription string          `gorm:"type:text" json:"work_description"`
	TimeIn          time.Time       `json:"time_in"`
	TimeOut         *time.Time      `json:"time_out"`
	TotalHours      decimal.Decimal `gorm:"type:numeric(8,2)" json:"total_hours"`
	HourlyRate      decimal.Decimal `gorm:"type:numeric(12,2)" json:"hourly_rate"`
	PartsUsed       datatypes.JSON  `json:"parts_used"`
	OtherCharges    decimal.Decimal `gorm:"type:numeric(12,2)" json:"other_charges"`
	LaborCost       decimal.Decimal `gorm:"type:numeric(12,2)" json:"labor_cost"`
	PartsCost       decimal.Decimal `gorm:"type:numeric(12,2)" json:"parts_cost"`
	TotalCost       decimal.Decimal `gorm:"type:numeric(12,2)" json:"total_cost"`
	CompletionNotes string          `gorm:"type:text" json:"completion_notes"`
	Completed       bool            `gorm:"not null;default:false" json:"completed"`
	Images          datatypes.JSON  `json:"images"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ComputeCosts fills labor, parts and total cost from hours, rate, parts and
// other charges. totalCost = laborCost + partsCost + otherCharges.
func ComputeCosts(hours, rate decimal.Decimal, parts []Part, other decimal.Decimal) (labor, partsCost, total decimal.Decimal) {
	labor = hours.Mul(rate)
	partsCost = decimal.Zero
	for _, p := range parts {
		partsCost = partsCost.Add(p.Cost.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	total = labor.Add(partsCost).Add(other)
	return labor, partsCost, total
}
