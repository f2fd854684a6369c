package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskscout/taskscout/internal/application"
	"github.com/taskscout/taskscout/internal/domain/support"
	"github.com/taskscout/taskscout/internal/domain/user"
	"github.com/taskscout/taskscout/pkg/response"
	"github.com/taskscout/taskscout/pkg/utils"
)

type SupportHandler struct {
	svc *application.SupportService
}

func NewSupportHandler(svc *application.SupportService) *SupportHandler {
	return &SupportHandler{svc: svc}
}

// Create godoc
// @Summary Open a support request
// @Tags support
// @Accept json
// @Produce json
// @Param input body support.CreateRequestDTO true "Request"
// @Success 201 {object} support.Request
// @Router /api/support-contact [post]
func (h *SupportHandler) Create(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input support.CreateRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	req, err := h.svc.CreateRequest(claims, input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

// List godoc
// @Summary List support requests (own, or all for maintenance admins)
// @Tags support
// @Produce json
// @Success 200 {array} support.Request
// @Router /api/support-contact [get]
func (h *SupportHandler) List(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	all := user.Role(claims.Role) == user.RoleMaintenanceAdmin
	reqs, err := h.svc.ListRequests(claims, all)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// Get godoc
// @Summary Get one support request with its thread
// @Tags support
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} support.Request
// @Failure 404 {object} response.ErrorResponse "Request not found"
// @Router /api/support-contact/{id} [get]
func (h *SupportHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request id"})
		return
	}
	req, err := h.svc.GetRequest(id)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// UpdateStatus godoc
// @Summary Update support request status
// @Tags support
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param input body object{status=string} true "Target status"
// @Success 200 {object} support.Request
// @Router /api/support-contact/{id}/status [put]
func (h *SupportHandler) UpdateStatus(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request id"})
		return
	}
	var input struct {
		Status support.Status `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	req, err := h.svc.UpdateStatus(id, claims, input.Status)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// AddMessage godoc
// @Summary Reply on a support thread
// @Tags support
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param input body support.CreateMessageDTO true "Message"
// @Success 201 {object} support.Message
// @Router /api/support-contact/{id}/messages [post]
func (h *SupportHandler) AddMessage(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request id"})
		return
	}
	var input support.CreateMessageDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	msg, err := h.svc.AddMessage(id, claims, input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}
