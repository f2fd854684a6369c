package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskscout/taskscout/internal/application"
	"github.com/taskscout/taskscout/internal/domain/workorder"
	"github.com/taskscout/taskscout/pkg/response"
	"github.com/taskscout/taskscout/pkg/utils"
)

type WorkOrderHandler struct {
	svc *application.WorkOrderService
}

func NewWorkOrderHandler(svc *application.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{svc: svc}
}

// Create godoc
// @Summary Create a work order on a ticket
// @Tags work-orders
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body workorder.CreateWorkOrderDTO true "Work session"
// @Success 201 {object} workorder.WorkOrder
// @Failure 403 {object} response.ErrorResponse "Role refusal"
// @Failure 409 {object} response.ErrorResponse "Illegal transition"
// @Router /api/tickets/{id}/work-orders [post]
func (h *WorkOrderHandler) Create(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ticket id"})
		return
	}
	var input workorder.CreateWorkOrderDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	wo, err := h.svc.CreateWorkOrder(id, claims, input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, wo)
}

// Get godoc
// @Summary Get one work order
// @Tags work-orders
// @Produce json
// @Param id path int true "Work order ID"
// @Success 200 {object} workorder.WorkOrder
// @Failure 404 {object} response.ErrorResponse "Work order not found"
// @Router /api/work-orders/{id} [get]
func (h *WorkOrderHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid work order id"})
		return
	}
	wo, err := h.svc.GetWorkOrder(id)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, wo)
}

// ListByTicket godoc
// @Summary List work orders on a ticket
// @Tags work-orders
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {array} workorder.WorkOrder
// @Router /api/tickets/{id}/work-orders [get]
func (h *WorkOrderHandler) ListByTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ticket id"})
		return
	}
	orders, err := h.svc.ListByTicket(id)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
