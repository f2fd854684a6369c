package workorder

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateWorkOrderDTO struct {
	WorkDescription string          `json:"work_description" binding:"required"`
	TimeIn          time.Time       `json:"time_in" binding:"required"`
	TimeOut         *time.Time      `json:"time_out"`
	TotalHours      decimal.Decimal `json:"total_hours" binding:"required"`
	HourlyRate      decimal.Decimal `json:"hourly_rate" binding:"required"`
	PartsUsed       []Part          `json:"parts_used"`
	OtherCharges    decimal.Decimal `json:"other_charges"`
	CompletionNotes string          `json:"completion_notes"`
	// Completed marks the session finished; the ticket then advances to
	// pending_confirmation.
	Completed bool     `json:"completed"`
	Images    []string `json:"images"`
}
