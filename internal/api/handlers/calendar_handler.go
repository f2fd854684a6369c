package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskscout/taskscout/internal/application"
	"github.com/taskscout/taskscout/internal/domain/calendar"
	"github.com/taskscout/taskscout/pkg/response"
	"github.com/taskscout/taskscout/pkg/utils"
)

type CalendarHandler struct {
	svc *application.CalendarService
}

func NewCalendarHandler(svc *application.CalendarService) *CalendarHandler {
	return &CalendarHandler{svc: svc}
}

// Create godoc
// @Summary Book a visit or block a time slot
// @Tags calendar
// @Accept json
// @Produce json
// @Param input body calendar.CreateEventDTO true "Event"
// @Success 201 {object} calendar.Event
// @Failure 409 {object} response.ErrorResponse "Slot conflicts with blocked time"
// @Router /api/calendar/events [post]
func (h *CalendarHandler) Create(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input calendar.CreateEventDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	e, err := h.svc.CreateEvent(claims, input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// Delete godoc
// @Summary Delete a calendar event
// @Tags calendar
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} response.MessageResponse
// @Router /api/calendar/events/{id} [delete]
func (h *CalendarHandler) Delete(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid event id"})
		return
	}
	if err := h.svc.DeleteEvent(id, claims); err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Event deleted"})
}

// ListByTechnician godoc
// @Summary List a technician's calendar
// @Tags calendar
// @Produce json
// @Param id path int true "Technician user ID"
// @Success 200 {array} calendar.Event
// @Router /api/calendar/technicians/{id} [get]
func (h *CalendarHandler) ListByTechnician(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid technician id"})
		return
	}
	events, err := h.svc.ListByTechnician(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

// Availability godoc
// @Summary Get the scheduling window configuration
// @Tags calendar
// @Produce json
// @Success 200 {object} calendar.AvailabilityConfig
// @Router /api/availability/config [get]
func (h *CalendarHandler) Availability(c *gin.Context) {
	if h.svc.Availability == nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "availability config not loaded"})
		return
	}
	c.JSON(http.StatusOK, h.svc.Availability)
}
