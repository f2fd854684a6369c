package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskscout/taskscout/internal/application"
	"github.com/taskscout/taskscout/internal/domain/ticket"
	"github.com/taskscout/taskscout/internal/domain/user"
	"github.com/taskscout/taskscout/internal/storage"
	"github.com/taskscout/taskscout/pkg/response"
	"github.com/taskscout/taskscout/pkg/types"
	"github.com/taskscout/taskscout/pkg/utils"
)

type TicketHandler struct {
	svc *application.TicketService
}

func NewTicketHandler(svc *application.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

// Create godoc
// @Summary Create a maintenance ticket
// @Tags tickets
// @Accept mpfd
// @Produce json
// @Param input formData ticket.CreateTicketDTO true "Ticket info"
// @Param images formData file false "Media attachments"
// @Success 201 {object} ticket.Ticket
// @Failure 400 {object} response.ErrorResponse "Invalid input or missing media"
// @Router /api/tickets [post]
func (h *TicketHandler) Create(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input ticket.CreateTicketDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	var keys []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, file := range form.File["images"] {
			key, err := storage.UploadAttachment(c.Request.Context(), "tickets", file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Upload failed: " + err.Error()})
				return
			}
			keys = append(keys, key)
		}
	}

	t, err := h.svc.CreateTicket(claims, input, keys)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// List godoc
// @Summary List tickets visible to the caller
// @Tags tickets
// @Produce json
// @Success 200 {array} ticket.View
// @Router /api/tickets [get]
func (h *TicketHandler) List(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	views, err := h.svc.ListTickets(claims)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, views)
}

// Marketplace godoc
// @Summary List tickets open for bidding
// @Tags tickets
// @Produce json
// @Success 200 {array} ticket.Ticket
// @Router /api/tickets/marketplace [get]
func (h *TicketHandler) Marketplace(c *gin.Context) {
	tickets, err := h.svc.ListMarketplace()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// Get godoc
// @Summary Get one ticket with allowed actions
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} ticket.View
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /api/tickets/{id} [get]
func (h *TicketHandler) Get(c *gin.Context) {
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
	view, err := h.svc.GetTicket(id, user.Role(claims.Role))
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Accept godoc
// @Summary Accept a ticket (org routing or vendor/technician assignment)
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.AcceptTicketDTO false "Assignment"
// @Success 200 {object} ticket.Ticket
// @Failure 403 {object} response.ErrorResponse "Role or grant refusal"
// @Failure 409 {object} response.ErrorResponse "Illegal transition"
// @Router /api/tickets/{id}/accept [post]
func (h *TicketHandler) Accept(c *gin.Context) {
	h.transitionWithBody(c, func(id uint, claims *types.Claims, input ticket.AcceptTicketDTO) (*ticket.Ticket, error) {
		return h.svc.Accept(id, claims, input)
	})
}

// Reject godoc
// @Summary Reject a ticket with a reason
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.RejectTicketDTO true "Rejection reason"
// @Success 200 {object} ticket.Ticket
// @Failure 400 {object} response.ErrorResponse "Missing reason"
// @Router /api/tickets/{id}/reject [post]
func (h *TicketHandler) Reject(c *gin.Context) {
	claims, id, ok := h.claimsAndID(c)
	if !ok {
		return
	}
	var input ticket.RejectTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	t, err := h.svc.Reject(id, claims, input.Reason)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Start godoc
// @Summary Start work on an accepted ticket
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} ticket.Ticket
// @Router /api/tickets/{id}/start [post]
func (h *TicketHandler) Start(c *gin.Context) {
	h.transition(c, h.svc.Start)
}

// Confirm godoc
// @Summary Confirm completed work
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} ticket.Ticket
// @Router /api/tickets/{id}/confirm [post]
func (h *TicketHandler) Confirm(c *gin.Context) {
	h.transition(c, h.svc.ConfirmCompletion)
}

// RequestReturn godoc
// @Summary Send the technician back instead of confirming
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} ticket.Ticket
// @Router /api/tickets/{id}/return [post]
func (h *TicketHandler) RequestReturn(c *gin.Context) {
	h.transition(c, h.svc.RequestReturn)
}

// ReadyForBilling godoc
// @Summary Hand the ticket off to invoicing
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} ticket.Ticket
// @Router /api/tickets/{id}/ready-for-billing [post]
func (h *TicketHandler) ReadyForBilling(c *gin.Context) {
	h.transition(c, h.svc.MarkReadyForBilling)
}

// ForceClose godoc
// @Summary Force-close a ticket from any non-terminal status
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} ticket.Ticket
// @Router /api/tickets/{id}/force-close [post]
func (h *TicketHandler) ForceClose(c *gin.Context) {
	h.transition(c, h.svc.ForceClose)
}

// AddMilestone godoc
// @Summary Post a progress note on a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.CreateMilestoneDTO true "Note"
// @Success 201 {object} ticket.Milestone
// @Router /api/tickets/{id}/milestones [post]
func (h *TicketHandler) AddMilestone(c *gin.Context) {
	claims, id, ok := h.claimsAndID(c)
	if !ok {
		return
	}
	var input ticket.CreateMilestoneDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	m, err := h.svc.AddMilestone(id, claims, input.Note)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// ListMilestones godoc
// @Summary List progress notes on a ticket
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {array} ticket.Milestone
// @Router /api/tickets/{id}/milestones [get]
func (h *TicketHandler) ListMilestones(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ticket id"})
		return
	}
	milestones, err := h.svc.ListMilestones(id)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, milestones)
}

func (h *TicketHandler) claimsAndID(c *gin.Context) (*types.Claims, uint, bool) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return nil, 0, false
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ticket id"})
		return nil, 0, false
	}
	return claims, id, true
}

func (h *TicketHandler) transition(c *gin.Context, fn func(uint, *types.Claims) (*ticket.Ticket, error)) {
	claims, id, ok := h.claimsAndID(c)
	if !ok {
		return
	}
	t, err := fn(id, claims)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TicketHandler) transitionWithBody(c *gin.Context, fn func(uint, *types.Claims, ticket.AcceptTicketDTO) (*ticket.Ticket, error)) {
	claims, id, ok := h.claimsAndID(c)
	if !ok {
		return
	}
	var input ticket.AcceptTicketDTO
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
			return
		}
	}
	t, err := fn(id, claims, input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}
