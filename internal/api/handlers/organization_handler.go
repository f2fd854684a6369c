package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskscout/taskscout/internal/application"
	"github.com/taskscout/taskscout/internal/domain/org"
	"github.com/taskscout/taskscout/pkg/response"
	"github.com/taskscout/taskscout/pkg/utils"
)

type OrgHandler struct {
	svc *application.OrgService
}

func NewOrgHandler(svc *application.OrgService) *OrgHandler {
	return &OrgHandler{svc: svc}
}

// Create godoc
// @Summary Create an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param input body org.CreateOrgDTO true "Organization"
// @Success 201 {object} org.Organization
// @Router /api/organizations [post]
func (h *OrgHandler) Create(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input org.CreateOrgDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	o, err := h.svc.CreateOrg(claims, input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// Update godoc
// @Summary Update an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Param input body org.UpdateOrgDTO true "Fields to patch"
// @Success 200 {object} org.Organization
// @Failure 404 {object} response.ErrorResponse "Organization not found"
// @Router /api/organizations/{id} [put]
func (h *OrgHandler) Update(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid organization id"})
		return
	}
	var input org.UpdateOrgDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	o, err := h.svc.UpdateOrg(id, claims, input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// Delete godoc
// @Summary Delete an organization
// @Tags organizations
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {object} response.MessageResponse
// @Router /api/organizations/{id} [delete]
func (h *OrgHandler) Delete(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid organization id"})
		return
	}
	if err := h.svc.DeleteOrg(id, claims); err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Organization deleted"})
}

// Get godoc
// @Summary Get one organization
// @Tags organizations
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {object} org.Organization
// @Failure 404 {object} response.ErrorResponse "Organization not found"
// @Router /api/organizations/{id} [get]
func (h *OrgHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid organization id"})
		return
	}
	o, err := h.svc.GetOrg(id)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// List godoc
// @Summary List organizations
// @Tags organizations
// @Produce json
// @Success 200 {array} org.Organization
// @Router /api/organizations [get]
func (h *OrgHandler) List(c *gin.Context) {
	orgs, err := h.svc.ListOrgs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, orgs)
}

// UpsertGrant godoc
// @Summary Set a sub-admin's permissions and vendor tiers
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Param input body org.SubAdminGrantDTO true "Grant"
// @Success 200 {object} org.SubAdminGrant
// @Failure 400 {object} response.ErrorResponse "Unknown permission or not a sub-admin"
// @Router /api/organizations/{id}/grants [put]
func (h *OrgHandler) UpsertGrant(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid organization id"})
		return
	}
	var input org.SubAdminGrantDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	g, err := h.svc.UpsertGrant(id, claims, input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// ToggleTier godoc
// @Summary Toggle one vendor-tier checkbox on a sub-admin grant
// @Tags organizations
// @Accept json
// @Produce json
// @Param user_id path int true "Sub-admin user ID"
// @Param input body org.ToggleTierDTO true "Tier and checked state"
// @Success 200 {object} org.SubAdminGrant
// @Failure 404 {object} response.ErrorResponse "Grant not found"
// @Router /api/grants/{user_id}/tiers [put]
func (h *OrgHandler) ToggleTier(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	userID, err := utils.ParseIDParam(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user id"})
		return
	}
	var input org.ToggleTierDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	g, err := h.svc.ToggleTier(userID, claims, input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// GetGrant godoc
// @Summary Get the grant of one sub-admin
// @Tags organizations
// @Produce json
// @Param user_id path int true "Sub-admin user ID"
// @Success 200 {object} org.SubAdminGrant
// @Failure 404 {object} response.ErrorResponse "Grant not found"
// @Router /api/grants/{user_id} [get]
func (h *OrgHandler) GetGrant(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user id"})
		return
	}
	g, err := h.svc.GetGrant(userID)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// ListGrants godoc
// @Summary List sub-admin grants of an organization
// @Tags organizations
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {array} org.SubAdminGrant
// @Router /api/organizations/{id}/grants [get]
func (h *OrgHandler) ListGrants(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid organization id"})
		return
	}
	grants, err := h.svc.ListGrants(id)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, grants)
}
