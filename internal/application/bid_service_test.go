package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/taskscout/taskscout/internal/domain/bid"
	"github.com/taskscout/taskscout/internal/domain/ticket"
	"github.com/taskscout/taskscout/internal/repository"
	"github.com/taskscout/taskscout/internal/repository/mock"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupBidServiceMocks(t *testing.T) (*BidService, *mock.MockBidRepo, *mock.MockTicketRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })
	silenceAudit(t)

	mockBid := mock.NewMockBidRepo(ctrl)
	mockTicket := mock.NewMockTicketRepo(ctrl)
	repos := &repository.Repos{
		Bid:    mockBid,
		Ticket: mockTicket,
	}
	svc := NewBidService(repos, nil, nil)
	return svc, mockBid, mockTicket
}

// --------------------- SubmitBid ---------------------

func TestSubmitBid_Success(t *testing.T) {
	svc, mockBid, mockTicket := setupBidServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusMarketplace}, nil)
	mockBid.EXPECT().Create(gomock.Any()).DoAndReturn(func(b *bid.VendorBid) error {
		b.ID = 11
		return nil
	})

	input := bid.SubmitBidDTO{
		TicketID:       1,
		HourlyRate:     decimal.NewFromInt(90),
		EstimatedHours: decimal.NewFromInt(4),
		Parts: []bid.Part{
			{Name: "compressor", Quantity: 1, Cost: decimal.NewFromInt(300)},
		},
	}
	b, err := svc.SubmitBid(vendorAdminClaims(4, 3), input)
	assert.NoError(t, err)
	assert.Equal(t, bid.StatusPending, b.Status)
	assert.Equal(t, uint(3), b.VendorID)
	assert.True(t, b.TotalAmount.Equal(decimal.NewFromInt(660)), "total = %s", b.TotalAmount)
}

func TestSubmitBid_TicketNotBiddable(t *testing.T) {
	svc, _, mockTicket := setupBidServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusAccepted}, nil)

	input := bid.SubmitBidDTO{TicketID: 1, HourlyRate: decimal.NewFromInt(90), EstimatedHours: decimal.NewFromInt(4)}
	_, err := svc.SubmitBid(vendorAdminClaims(4, 3), input)
	assert.ErrorIs(t, err, ErrTicketNotBiddable)
}

// --------------------- UpdateBid ---------------------

func TestUpdateBid_RecomputesTotal(t *testing.T) {
	svc, mockBid, mockTicket := setupBidServiceMocks(t)

	existing := bid.VendorBid{
		ID:             11,
		TicketID:       1,
		VendorID:       3,
		HourlyRate:     decimal.NewFromInt(90),
		EstimatedHours: decimal.NewFromInt(4),
		Status:         bid.StatusPending,
	}
	mockBid.EXPECT().GetByID(uint(11)).Return(existing, nil)
	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusMarketplace}, nil)
	mockBid.EXPECT().Update(gomock.Any()).Return(nil)

	rate := decimal.NewFromInt(100)
	got, err := svc.UpdateBid(11, vendorAdminClaims(4, 3), bid.UpdateBidDTO{HourlyRate: &rate})
	assert.NoError(t, err)
	assert.True(t, got.TotalAmount.Equal(decimal.NewFromInt(400)), "total = %s", got.TotalAmount)
}

func TestUpdateBid_NotOwner(t *testing.T) {
	svc, mockBid, _ := setupBidServiceMocks(t)

	mockBid.EXPECT().GetByID(uint(11)).Return(bid.VendorBid{ID: 11, VendorID: 3, Status: bid.StatusPending}, nil)

	_, err := svc.UpdateBid(11, vendorAdminClaims(4, 99), bid.UpdateBidDTO{})
	assert.ErrorIs(t, err, ErrNotBidOwner)
}

func TestUpdateBid_NotPending(t *testing.T) {
	svc, mockBid, _ := setupBidServiceMocks(t)

	mockBid.EXPECT().GetByID(uint(11)).Return(bid.VendorBid{ID: 11, VendorID: 3, Status: bid.StatusRejected}, nil)

	_, err := svc.UpdateBid(11, vendorAdminClaims(4, 3), bid.UpdateBidDTO{})
	assert.ErrorIs(t, err, ErrBidNotPending)
}

// --------------------- Respond ---------------------

func TestRespond_AcceptAssignsVendor(t *testing.T) {
	svc, mockBid, mockTicket := setupBidServiceMocks(t)

	pending := bid.VendorBid{ID: 11, TicketID: 1, VendorID: 3, Status: bid.StatusPending}
	mockBid.EXPECT().GetByID(uint(11)).Return(pending, nil)
	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusMarketplace}, nil)
	mockBid.EXPECT().Update(gomock.Any()).Return(nil)
	mockTicket.EXPECT().Update(gomock.Any()).DoAndReturn(func(tk *ticket.Ticket) error {
		assert.Equal(t, ticket.StatusAccepted, tk.Status)
		assert.Equal(t, uintPtr(3), tk.VendorID)
		return nil
	})

	got, err := svc.Respond(11, orgAdminClaims(2, 10), bid.RespondDTO{Decision: bid.DecisionAccept})
	assert.NoError(t, err)
	assert.Equal(t, bid.StatusAccepted, got.Status)
	assert.True(t, got.Approved)
}

func TestRespond_AcceptOnClosedTicket(t *testing.T) {
	svc, mockBid, mockTicket := setupBidServiceMocks(t)

	mockBid.EXPECT().GetByID(uint(11)).Return(bid.VendorBid{ID: 11, TicketID: 1, VendorID: 3, Status: bid.StatusPending}, nil)
	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusAccepted}, nil)

	_, err := svc.Respond(11, orgAdminClaims(2, 10), bid.RespondDTO{Decision: bid.DecisionAccept})
	assert.ErrorIs(t, err, ErrTicketNotBiddable)
}

func TestRespond_RejectRequiresReason(t *testing.T) {
	svc, mockBid, _ := setupBidServiceMocks(t)

	mockBid.EXPECT().GetByID(uint(11)).Return(bid.VendorBid{ID: 11, TicketID: 1, VendorID: 3, Status: bid.StatusPending}, nil)

	_, err := svc.Respond(11, orgAdminClaims(2, 10), bid.RespondDTO{Decision: bid.DecisionReject})
	assert.ErrorIs(t, err, ticket.ErrReasonRequired)
}

func TestRespond_RejectLeavesTicketOpen(t *testing.T) {
	svc, mockBid, _ := setupBidServiceMocks(t)

	// No ticket expectations: rejecting a bid must not touch the ticket.
	mockBid.EXPECT().GetByID(uint(11)).Return(bid.VendorBid{ID: 11, TicketID: 1, VendorID: 3, Status: bid.StatusPending}, nil)
	mockBid.EXPECT().Update(gomock.Any()).Return(nil)

	got, err := svc.Respond(11, orgAdminClaims(2, 10), bid.RespondDTO{Decision: bid.DecisionReject, Reason: "too expensive"})
	assert.NoError(t, err)
	assert.Equal(t, bid.StatusRejected, got.Status)
	assert.Equal(t, "too expensive", got.RejectionReason)
}

func TestRespond_CounterNeedsAmountAndNotes(t *testing.T) {
	svc, mockBid, _ := setupBidServiceMocks(t)

	mockBid.EXPECT().GetByID(uint(11)).Return(bid.VendorBid{ID: 11, TicketID: 1, VendorID: 3, Status: bid.StatusPending}, nil)

	_, err := svc.Respond(11, orgAdminClaims(2, 10), bid.RespondDTO{Decision: bid.DecisionCounter, Notes: "can you do 500?"})
	assert.ErrorIs(t, err, ErrCounterFieldsMissing)
}

func TestRespond_NotPending(t *testing.T) {
	svc, mockBid, _ := setupBidServiceMocks(t)

	mockBid.EXPECT().GetByID(uint(11)).Return(bid.VendorBid{ID: 11, Status: bid.StatusAccepted}, nil)

	_, err := svc.Respond(11, orgAdminClaims(2, 10), bid.RespondDTO{Decision: bid.DecisionAccept})
	assert.ErrorIs(t, err, ErrBidNotPending)
}

// --------------------- Counter round trip ---------------------

func TestRespondToCounter_ReturnsBidToPending(t *testing.T) {
	svc, mockBid, _ := setupBidServiceMocks(t)

	counter := decimal.NewFromInt(500)
	countered := bid.VendorBid{
		ID:           11,
		TicketID:     1,
		VendorID:     3,
		TotalAmount:  decimal.NewFromInt(660),
		Status:       bid.StatusCounter,
		CounterOffer: &counter,
		CounterNotes: "can you do 500?",
	}
	mockBid.EXPECT().GetByID(uint(11)).Return(countered, nil)
	mockBid.EXPECT().Update(gomock.Any()).Return(nil)

	input := bid.CounterResponseDTO{Amount: decimal.NewFromInt(550), Notes: "550 with same parts"}
	got, err := svc.RespondToCounter(11, vendorAdminClaims(4, 3), input)
	assert.NoError(t, err)
	assert.Equal(t, bid.StatusPending, got.Status)
	assert.True(t, got.TotalAmount.Equal(decimal.NewFromInt(550)))
	assert.Nil(t, got.CounterOffer)
	assert.Empty(t, got.CounterNotes)
}

func TestRespondToCounter_NotCountered(t *testing.T) {
	svc, mockBid, _ := setupBidServiceMocks(t)

	mockBid.EXPECT().GetByID(uint(11)).Return(bid.VendorBid{ID: 11, VendorID: 3, Status: bid.StatusPending}, nil)

	input := bid.CounterResponseDTO{Amount: decimal.NewFromInt(550), Notes: "ok"}
	_, err := svc.RespondToCounter(11, vendorAdminClaims(4, 3), input)
	assert.ErrorIs(t, err, ErrBidNotCountered)
}

func TestRespondToCounter_WrongVendor(t *testing.T) {
	svc, mockBid, _ := setupBidServiceMocks(t)

	counter := decimal.NewFromInt(500)
	mockBid.EXPECT().GetByID(uint(11)).Return(bid.VendorBid{ID: 11, VendorID: 3, Status: bid.StatusCounter, CounterOffer: &counter}, nil)

	input := bid.CounterResponseDTO{Amount: decimal.NewFromInt(550), Notes: "ok"}
	_, err := svc.RespondToCounter(11, vendorAdminClaims(4, 99), input)
	assert.ErrorIs(t, err, ErrNotBidOwner)
}

// --------------------- Lookups ---------------------

func TestGetBid_NotFound(t *testing.T) {
	svc, mockBid, _ := setupBidServiceMocks(t)

	mockBid.EXPECT().GetByID(uint(99)).Return(bid.VendorBid{}, gorm.ErrRecordNotFound)

	_, err := svc.GetBid(99)
	assert.ErrorIs(t, err, ErrBidNotFound)
}
