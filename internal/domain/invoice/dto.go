package invoice

import "github.com/shopspring/decimal"

type CreateInvoiceDTO struct {
	TicketID     uint            `json:"ticket_id" binding:"required"`
	WorkOrderIDs []uint          `json:"work_order_ids" binding:"required"`
	LineItems    []LineItem      `json:"line_items"`
	Tax          decimal.Decimal `json:"tax"`
	Notes        string          `json:"notes"`
}

type UpdateInvoiceStatusDTO struct {
	Status Status `json:"status" binding:"required"`
}
