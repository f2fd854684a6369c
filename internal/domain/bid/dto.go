package bid

import "github.com/shopspring/decimal"

type SubmitBidDTO struct {
	TicketID        uint            `json:"ticket_id" binding:"required"`
	HourlyRate      decimal.Decimal `json:"hourly_rate" binding:"required"`
	EstimatedHours  decimal.Decimal `json:"estimated_hours" binding:"required"`
	ResponseTime    string          `json:"response_time"`
	Parts           []Part          `json:"parts"`
	AdditionalNotes string          `json:"additional_notes"`
}

// UpdateBidDTO patches a pending bid. Nil fields are left untouched.
type UpdateBidDTO struct {
	HourlyRate      *decimal.Decimal `json:"hourly_rate"`
	EstimatedHours  *decimal.Decimal `json:"estimated_hours"`
	ResponseTime    *string          `json:"response_time"`
	Parts           *[]Part          `json:"parts"`
	AdditionalNotes *string          `json:"additional_notes"`
}

type Decision string

const (
	DecisionAccept  Decision = "accept"
	DecisionReject  Decision = "reject"
	DecisionCounter Decision = "counter"
)

// RespondDTO carries the organization's decision on a pending bid.
type RespondDTO struct {
	Decision Decision         `json:"decision" binding:"required"`
	Reason   string           `json:"reason"`
	Amount   *decimal.Decimal `json:"amount"`
	Notes    string           `json:"notes"`
}

// CounterResponseDTO is the vendor's reply to a counter-offer. Both fields
// are required; the bid returns to pending with the new total.
type CounterResponseDTO struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Notes  string          `json:"notes" binding:"required"`
}
