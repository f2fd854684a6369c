package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskscout/taskscout/internal/application"
	"github.com/taskscout/taskscout/internal/domain/location"
	"github.com/taskscout/taskscout/pkg/response"
	"github.com/taskscout/taskscout/pkg/utils"
)

type LocationHandler struct {
	svc *application.LocationService
}

func NewLocationHandler(svc *application.LocationService) *LocationHandler {
	return &LocationHandler{svc: svc}
}

// Create godoc
// @Summary Create a property location
// @Tags locations
// @Accept json
// @Produce json
// @Param input body location.CreateLocationDTO true "Location"
// @Success 201 {object} location.Location
// @Failure 403 {object} response.ErrorResponse "Missing manage_locations permission"
// @Router /api/locations [post]
func (h *LocationHandler) Create(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input location.CreateLocationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	l, err := h.svc.CreateLocation(claims, input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

// Update godoc
// @Summary Update a location
// @Tags locations
// @Accept json
// @Produce json
// @Param id path int true "Location ID"
// @Param input body location.UpdateLocationDTO true "Fields to patch"
// @Success 200 {object} location.Location
// @Failure 404 {object} response.ErrorResponse "Location not found"
// @Router /api/locations/{id} [put]
func (h *LocationHandler) Update(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid location id"})
		return
	}
	var input location.UpdateLocationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	l, err := h.svc.UpdateLocation(id, claims, input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// Delete godoc
// @Summary Delete a location
// @Tags locations
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} response.MessageResponse
// @Router /api/locations/{id} [delete]
func (h *LocationHandler) Delete(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid location id"})
		return
	}
	if err := h.svc.DeleteLocation(id, claims); err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Location deleted"})
}

// Get godoc
// @Summary Get one location
// @Tags locations
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} location.Location
// @Failure 404 {object} response.ErrorResponse "Location not found"
// @Router /api/locations/{id} [get]
func (h *LocationHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid location id"})
		return
	}
	l, err := h.svc.GetLocation(id)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// ListByOrg godoc
// @Summary List locations of an organization
// @Tags locations
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {array} location.Location
// @Router /api/organizations/{id}/locations [get]
func (h *LocationHandler) ListByOrg(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid organization id"})
		return
	}
	locations, err := h.svc.ListByOrg(id)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}
