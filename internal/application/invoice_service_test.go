package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/taskscout/taskscout/internal/domain/invoice"
	"github.com/taskscout/taskscout/internal/domain/ticket"
	"github.com/taskscout/taskscout/internal/domain/workorder"
	"github.com/taskscout/taskscout/internal/repository"
	"github.com/taskscout/taskscout/internal/repository/mock"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupInvoiceServiceMocks(t *testing.T) (*InvoiceService, *mock.MockInvoiceRepo, *mock.MockTicketRepo, *mock.MockWorkOrderRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })
	silenceAudit(t)

	mockInvoice := mock.NewMockInvoiceRepo(ctrl)
	mockTicket := mock.NewMockTicketRepo(ctrl)
	mockWO := mock.NewMockWorkOrderRepo(ctrl)
	repos := &repository.Repos{
		Invoice:   mockInvoice,
		Ticket:    mockTicket,
		WorkOrder: mockWO,
	}
	svc := NewInvoiceService(repos, nil, nil)
	return svc, mockInvoice, mockTicket, mockWO
}

// --------------------- CreateInvoice ---------------------

func TestCreateInvoice_Success(t *testing.T) {
	svc, mockInvoice, mockTicket, mockWO := setupInvoiceServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusReadyForBilling, VendorID: uintPtr(3)}, nil)
	mockWO.EXPECT().GetByID(uint(21)).Return(workorder.WorkOrder{ID: 21, TicketID: 1, TotalCost: decimal.NewFromInt(120)}, nil)
	mockWO.EXPECT().GetByID(uint(22)).Return(workorder.WorkOrder{ID: 22, TicketID: 1, TotalCost: decimal.NewFromInt(80)}, nil)
	mockInvoice.EXPECT().Create(gomock.Any()).DoAndReturn(func(inv *invoice.Invoice) error {
		inv.ID = 5
		return nil
	})
	mockTicket.EXPECT().Update(gomock.Any()).DoAndReturn(func(tk *ticket.Ticket) error {
		assert.Equal(t, ticket.StatusBilled, tk.Status)
		return nil
	})

	input := invoice.CreateInvoiceDTO{
		TicketID:     1,
		WorkOrderIDs: []uint{21, 22},
		LineItems: []invoice.LineItem{
			{Description: "Disposal fee", Quantity: 1, Rate: decimal.NewFromInt(25), Amount: decimal.NewFromInt(25)},
		},
		Tax: decimal.NewFromFloat(22.50),
	}
	inv, err := svc.CreateInvoice(vendorAdminClaims(4, 3), input)
	assert.NoError(t, err)
	assert.Equal(t, invoice.StatusDraft, inv.Status)
	assert.Equal(t, uint(3), inv.VendorID)
	assert.True(t, inv.Subtotal.Equal(decimal.NewFromInt(225)), "subtotal = %s", inv.Subtotal)
	assert.True(t, inv.Total.Equal(decimal.NewFromFloat(247.50)), "total = %s", inv.Total)
}

func TestCreateInvoice_NoWorkOrders(t *testing.T) {
	svc, _, _, _ := setupInvoiceServiceMocks(t)

	_, err := svc.CreateInvoice(vendorAdminClaims(4, 3), invoice.CreateInvoiceDTO{TicketID: 1})
	assert.ErrorIs(t, err, ErrNoWorkOrders)
}

func TestCreateInvoice_WorkOrderFromOtherTicket(t *testing.T) {
	svc, _, mockTicket, mockWO := setupInvoiceServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusReadyForBilling, VendorID: uintPtr(3)}, nil)
	mockWO.EXPECT().GetByID(uint(21)).Return(workorder.WorkOrder{ID: 21, TicketID: 2}, nil)

	input := invoice.CreateInvoiceDTO{TicketID: 1, WorkOrderIDs: []uint{21}}
	_, err := svc.CreateInvoice(vendorAdminClaims(4, 3), input)
	assert.ErrorIs(t, err, ErrWorkOrderMismatch)
}

func TestCreateInvoice_TicketNotReady(t *testing.T) {
	svc, _, mockTicket, _ := setupInvoiceServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusCompleted}, nil)

	input := invoice.CreateInvoiceDTO{TicketID: 1, WorkOrderIDs: []uint{21}}
	_, err := svc.CreateInvoice(vendorAdminClaims(4, 3), input)
	assert.ErrorIs(t, err, ticket.ErrIllegalTransition)
}

// --------------------- UpdateStatus ---------------------

func TestUpdateStatus_SendStampsDueDate(t *testing.T) {
	svc, mockInvoice, _, _ := setupInvoiceServiceMocks(t)

	mockInvoice.EXPECT().GetByID(uint(5)).Return(invoice.Invoice{ID: 5, Status: invoice.StatusDraft}, nil)
	mockInvoice.EXPECT().Update(gomock.Any()).Return(nil)

	inv, err := svc.UpdateStatus(5, vendorAdminClaims(4, 3), invoice.StatusSent)
	assert.NoError(t, err)
	assert.Equal(t, invoice.StatusSent, inv.Status)
	assert.NotNil(t, inv.SentAt)
	assert.NotNil(t, inv.DueAt)
	assert.WithinDuration(t, inv.SentAt.Add(DefaultPaymentTerm), *inv.DueAt, time.Second)
}

func TestUpdateStatus_PaidFromSent(t *testing.T) {
	svc, mockInvoice, _, _ := setupInvoiceServiceMocks(t)

	mockInvoice.EXPECT().GetByID(uint(5)).Return(invoice.Invoice{ID: 5, Status: invoice.StatusSent}, nil)
	mockInvoice.EXPECT().Update(gomock.Any()).Return(nil)

	inv, err := svc.UpdateStatus(5, vendorAdminClaims(4, 3), invoice.StatusPaid)
	assert.NoError(t, err)
	assert.Equal(t, invoice.StatusPaid, inv.Status)
}

func TestUpdateStatus_PaidFromOverdue(t *testing.T) {
	svc, mockInvoice, _, _ := setupInvoiceServiceMocks(t)

	mockInvoice.EXPECT().GetByID(uint(5)).Return(invoice.Invoice{ID: 5, Status: invoice.StatusOverdue}, nil)
	mockInvoice.EXPECT().Update(gomock.Any()).Return(nil)

	inv, err := svc.UpdateStatus(5, vendorAdminClaims(4, 3), invoice.StatusPaid)
	assert.NoError(t, err)
	assert.Equal(t, invoice.StatusPaid, inv.Status)
}

func TestUpdateStatus_IllegalJump(t *testing.T) {
	svc, mockInvoice, _, _ := setupInvoiceServiceMocks(t)

	mockInvoice.EXPECT().GetByID(uint(5)).Return(invoice.Invoice{ID: 5, Status: invoice.StatusDraft}, nil)

	_, err := svc.UpdateStatus(5, vendorAdminClaims(4, 3), invoice.StatusPaid)
	assert.ErrorIs(t, err, ErrBadInvoiceStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, mockInvoice, _, _ := setupInvoiceServiceMocks(t)

	mockInvoice.EXPECT().GetByID(uint(99)).Return(invoice.Invoice{}, gorm.ErrRecordNotFound)

	_, err := svc.UpdateStatus(99, vendorAdminClaims(4, 3), invoice.StatusSent)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

// --------------------- SweepOverdue ---------------------

func TestSweepOverdue(t *testing.T) {
	svc, mockInvoice, _, _ := setupInvoiceServiceMocks(t)

	stale := []invoice.Invoice{
		{ID: 5, Status: invoice.StatusSent},
		{ID: 6, Status: invoice.StatusSent},
	}
	mockInvoice.EXPECT().ListSentBefore(gomock.Any()).Return(stale, nil)
	mockInvoice.EXPECT().Update(gomock.Any()).DoAndReturn(func(inv *invoice.Invoice) error {
		assert.Equal(t, invoice.StatusOverdue, inv.Status)
		return nil
	}).Times(2)

	flipped, err := svc.SweepOverdue()
	assert.NoError(t, err)
	assert.Equal(t, 2, flipped)
}

func TestSweepOverdue_NothingDue(t *testing.T) {
	svc, mockInvoice, _, _ := setupInvoiceServiceMocks(t)

	mockInvoice.EXPECT().ListSentBefore(gomock.Any()).Return(nil, nil)

	flipped, err := svc.SweepOverdue()
	assert.NoError(t, err)
	assert.Zero(t, flipped)
}
