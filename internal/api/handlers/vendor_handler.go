package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskscout/taskscout/internal/application"
	"github.com/taskscout/taskscout/internal/domain/vendor"
	"github.com/taskscout/taskscout/pkg/response"
	"github.com/taskscout/taskscout/pkg/utils"
)

type VendorHandler struct {
	svc *application.VendorService
}

func NewVendorHandler(svc *application.VendorService) *VendorHandler {
	return &VendorHandler{svc: svc}
}

// Create godoc
// @Summary Create a maintenance vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param input body vendor.CreateVendorDTO true "Vendor"
// @Success 201 {object} vendor.MaintenanceVendor
// @Failure 400 {object} response.ErrorResponse "Invalid tier"
// @Router /api/maintenance-vendors [post]
func (h *VendorHandler) Create(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input vendor.CreateVendorDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	v, err := h.svc.CreateVendor(claims, input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// Update godoc
// @Summary Update a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path int true "Vendor ID"
// @Param input body vendor.UpdateVendorDTO true "Fields to patch"
// @Success 200 {object} vendor.MaintenanceVendor
// @Failure 404 {object} response.ErrorResponse "Vendor not found"
// @Router /api/maintenance-vendors/{id} [put]
func (h *VendorHandler) Update(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid vendor id"})
		return
	}
	var input vendor.UpdateVendorDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	v, err := h.svc.UpdateVendor(id, claims, input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// Delete godoc
// @Summary Delete a vendor
// @Tags vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {object} response.MessageResponse
// @Router /api/maintenance-vendors/{id} [delete]
func (h *VendorHandler) Delete(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid vendor id"})
		return
	}
	if err := h.svc.DeleteVendor(id, claims); err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Vendor deleted"})
}

// Get godoc
// @Summary Get one vendor
// @Tags vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {object} vendor.MaintenanceVendor
// @Failure 404 {object} response.ErrorResponse "Vendor not found"
// @Router /api/maintenance-vendors/{id} [get]
func (h *VendorHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid vendor id"})
		return
	}
	v, err := h.svc.GetVendor(id)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// List godoc
// @Summary List vendors
// @Tags vendors
// @Produce json
// @Success 200 {array} vendor.MaintenanceVendor
// @Router /api/maintenance-vendors [get]
func (h *VendorHandler) List(c *gin.Context) {
	vendors, err := h.svc.ListVendors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, vendors)
}

// LinkOrganization godoc
// @Summary Link a vendor to an organization
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path int true "Vendor ID"
// @Param input body object{org_id=int} true "Organization"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Vendor or organization not found"
// @Router /api/maintenance-vendors/{id}/organizations [post]
func (h *VendorHandler) LinkOrganization(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid vendor id"})
		return
	}
	var input struct {
		OrgID uint `json:"org_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	if err := h.svc.LinkOrganization(id, input.OrgID, claims); err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Vendor linked to organization"})
}

// ListOrganizations godoc
// @Summary List organizations served by a vendor
// @Tags vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {array} org.Organization
// @Router /api/maintenance-vendors/{id}/organizations [get]
func (h *VendorHandler) ListOrganizations(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid vendor id"})
		return
	}
	orgs, err := h.svc.ListOrganizations(id)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, orgs)
}
