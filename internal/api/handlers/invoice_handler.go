package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskscout/taskscout/internal/application"
	"github.com/taskscout/taskscout/internal/domain/invoice"
	"github.com/taskscout/taskscout/pkg/response"
	"github.com/taskscout/taskscout/pkg/utils"
)

type InvoiceHandler struct {
	svc *application.InvoiceService
}

func NewInvoiceHandler(svc *application.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

// Create godoc
// @Summary Create an invoice from a ticket's work orders
// @Tags invoices
// @Accept json
// @Produce json
// @Param input body invoice.CreateInvoiceDTO true "Invoice"
// @Success 201 {object} invoice.Invoice
// @Failure 403 {object} response.ErrorResponse "Role refusal"
// @Failure 409 {object} response.ErrorResponse "Ticket not ready for billing"
// @Router /api/invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input invoice.CreateInvoiceDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	inv, err := h.svc.CreateInvoice(claims, input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// UpdateStatus godoc
// @Summary Move an invoice between draft, sent and paid
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path int true "Invoice ID"
// @Param input body invoice.UpdateInvoiceStatusDTO true "Target status"
// @Success 200 {object} invoice.Invoice
// @Failure 409 {object} response.ErrorResponse "Invalid status change"
// @Router /api/invoices/{id}/status [put]
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid invoice id"})
		return
	}
	var input invoice.UpdateInvoiceStatusDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	inv, err := h.svc.UpdateStatus(id, claims, input.Status)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// Get godoc
// @Summary Get one invoice
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} invoice.Invoice
// @Failure 404 {object} response.ErrorResponse "Invoice not found"
// @Router /api/invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid invoice id"})
		return
	}
	inv, err := h.svc.GetInvoice(id)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// List godoc
// @Summary List invoices visible to the caller
// @Tags invoices
// @Produce json
// @Success 200 {array} invoice.Invoice
// @Router /api/invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	invoices, err := h.svc.ListInvoices(claims)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, invoices)
}
