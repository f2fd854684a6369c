package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskscout/taskscout/internal/application"
	"github.com/taskscout/taskscout/internal/domain/bid"
	"github.com/taskscout/taskscout/pkg/response"
	"github.com/taskscout/taskscout/pkg/types"
	"github.com/taskscout/taskscout/pkg/utils"
)

type BidHandler struct {
	svc *application.BidService
}

func NewBidHandler(svc *application.BidService) *BidHandler {
	return &BidHandler{svc: svc}
}

// Submit godoc
// @Summary Submit a bid on a marketplace ticket
// @Tags bids
// @Accept json
// @Produce json
// @Param input body bid.SubmitBidDTO true "Bid"
// @Success 201 {object} bid.VendorBid
// @Failure 409 {object} response.ErrorResponse "Ticket not open for bidding"
// @Router /api/marketplace/vendor-bids [post]
func (h *BidHandler) Submit(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input bid.SubmitBidDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	b, err := h.svc.SubmitBid(claims, input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// Update godoc
// @Summary Update a pending bid
// @Tags bids
// @Accept json
// @Produce json
// @Param id path int true "Bid ID"
// @Param input body bid.UpdateBidDTO true "Fields to patch"
// @Success 200 {object} bid.VendorBid
// @Failure 403 {object} response.ErrorResponse "Not the bid owner"
// @Failure 409 {object} response.ErrorResponse "Bid no longer pending"
// @Router /api/marketplace/bids/{id} [patch]
func (h *BidHandler) Update(c *gin.Context) {
	claims, id, ok := bidClaimsAndID(c)
	if !ok {
		return
	}
	var input bid.UpdateBidDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	b, err := h.svc.UpdateBid(id, claims, input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Respond godoc
// @Summary Accept, reject or counter a pending bid
// @Tags bids
// @Accept json
// @Produce json
// @Param id path int true "Bid ID"
// @Param input body bid.RespondDTO true "Decision"
// @Success 200 {object} bid.VendorBid
// @Failure 400 {object} response.ErrorResponse "Missing reason or counter fields"
// @Failure 409 {object} response.ErrorResponse "Bid no longer pending"
// @Router /api/marketplace/bids/{id}/respond [post]
func (h *BidHandler) Respond(c *gin.Context) {
	claims, id, ok := bidClaimsAndID(c)
	if !ok {
		return
	}
	var input bid.RespondDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	b, err := h.svc.Respond(id, claims, input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// RespondToCounter godoc
// @Summary Vendor reply to a counter-offer
// @Tags bids
// @Accept json
// @Produce json
// @Param id path int true "Bid ID"
// @Param input body bid.CounterResponseDTO true "Agreed amount and notes"
// @Success 200 {object} bid.VendorBid
// @Failure 409 {object} response.ErrorResponse "Bid has no open counter-offer"
// @Router /api/marketplace/bids/{id}/counter-response [post]
func (h *BidHandler) RespondToCounter(c *gin.Context) {
	claims, id, ok := bidClaimsAndID(c)
	if !ok {
		return
	}
	var input bid.CounterResponseDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	b, err := h.svc.RespondToCounter(id, claims, input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Get godoc
// @Summary Get one bid
// @Tags bids
// @Produce json
// @Param id path int true "Bid ID"
// @Success 200 {object} bid.VendorBid
// @Failure 404 {object} response.ErrorResponse "Bid not found"
// @Router /api/marketplace/bids/{id} [get]
func (h *BidHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid bid id"})
		return
	}
	b, err := h.svc.GetBid(id)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListByTicket godoc
// @Summary List bids on a ticket
// @Tags bids
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {array} bid.VendorBid
// @Router /api/tickets/{id}/bids [get]
func (h *BidHandler) ListByTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ticket id"})
		return
	}
	bids, err := h.svc.ListByTicket(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, bids)
}

// ListMine godoc
// @Summary List the calling vendor's bids
// @Tags bids
// @Produce json
// @Success 200 {array} bid.VendorBid
// @Router /api/marketplace/vendor-bids [get]
func (h *BidHandler) ListMine(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	if claims.VendorID == nil {
		c.JSON(http.StatusOK, []bid.VendorBid{})
		return
	}
	bids, err := h.svc.ListByVendor(*claims.VendorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, bids)
}

func bidClaimsAndID(c *gin.Context) (*types.Claims, uint, bool) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return nil, 0, false
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid bid id"})
		return nil, 0, false
	}
	return claims, id, true
}
