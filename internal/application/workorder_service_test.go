package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/taskscout/taskscout/internal/domain/ticket"
	"github.com/taskscout/taskscout/internal/domain/user"
	"github.com/taskscout/taskscout/internal/domain/workorder"
	"github.com/taskscout/taskscout/internal/repository"
	"github.com/taskscout/taskscout/internal/repository/mock"
	"github.com/taskscout/taskscout/pkg/types"
)

// --------------------- Setup ---------------------
func setupWorkOrderServiceMocks(t *testing.T) (*WorkOrderService, *mock.MockWorkOrderRepo, *mock.MockTicketRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })
	silenceAudit(t)

	mockWO := mock.NewMockWorkOrderRepo(ctrl)
	mockTicket := mock.NewMockTicketRepo(ctrl)
	repos := &repository.Repos{
		WorkOrder: mockWO,
		Ticket:    mockTicket,
	}
	svc := NewWorkOrderService(repos, nil, nil)
	return svc, mockWO, mockTicket
}

func technicianClaims(userID, vendorID uint) *types.Claims {
	return &types.Claims{UserID: userID, Role: string(user.RoleTechnician), VendorID: uintPtr(vendorID)}
}

func baseWorkOrderInput() workorder.CreateWorkOrderDTO {
	return workorder.CreateWorkOrderDTO{
		WorkDescription: "Replaced shutoff valve",
		TimeIn:          time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		TotalHours:      decimal.NewFromFloat(2.5),
		HourlyRate:      decimal.NewFromInt(80),
		PartsUsed: []workorder.Part{
			{Name: "valve", Quantity: 2, Cost: decimal.NewFromInt(15)},
		},
		OtherCharges: decimal.NewFromInt(10),
	}
}

// --------------------- CreateWorkOrder ---------------------

func TestCreateWorkOrder_ComputesCosts(t *testing.T) {
	svc, mockWO, mockTicket := setupWorkOrderServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusInProgress}, nil)
	mockWO.EXPECT().Create(gomock.Any()).DoAndReturn(func(wo *workorder.WorkOrder) error {
		wo.ID = 21
		return nil
	})

	wo, err := svc.CreateWorkOrder(1, technicianClaims(7, 3), baseWorkOrderInput())
	assert.NoError(t, err)
	assert.Equal(t, uint(7), wo.TechnicianID)
	assert.True(t, wo.LaborCost.Equal(decimal.NewFromInt(200)), "labor = %s", wo.LaborCost)
	assert.True(t, wo.PartsCost.Equal(decimal.NewFromInt(30)), "parts = %s", wo.PartsCost)
	assert.True(t, wo.TotalCost.Equal(decimal.NewFromInt(240)), "total = %s", wo.TotalCost)
}

func TestCreateWorkOrder_FirstSessionStartsTicket(t *testing.T) {
	svc, mockWO, mockTicket := setupWorkOrderServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusAccepted}, nil)
	mockWO.EXPECT().Create(gomock.Any()).Return(nil)
	mockTicket.EXPECT().Update(gomock.Any()).DoAndReturn(func(tk *ticket.Ticket) error {
		assert.Equal(t, ticket.StatusInProgress, tk.Status)
		return nil
	})

	_, err := svc.CreateWorkOrder(1, technicianClaims(7, 3), baseWorkOrderInput())
	assert.NoError(t, err)
}

func TestCreateWorkOrder_CompletedAdvancesTicket(t *testing.T) {
	svc, mockWO, mockTicket := setupWorkOrderServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusInProgress}, nil)
	mockWO.EXPECT().Create(gomock.Any()).Return(nil)
	mockTicket.EXPECT().Update(gomock.Any()).DoAndReturn(func(tk *ticket.Ticket) error {
		assert.Equal(t, ticket.StatusPendingConfirmation, tk.Status)
		return nil
	})

	input := baseWorkOrderInput()
	input.Completed = true
	input.CompletionNotes = "all done"
	_, err := svc.CreateWorkOrder(1, technicianClaims(7, 3), input)
	assert.NoError(t, err)
}

func TestCreateWorkOrder_ReturnVisit(t *testing.T) {
	svc, mockWO, mockTicket := setupWorkOrderServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusReturnNeeded}, nil)
	mockWO.EXPECT().Create(gomock.Any()).Return(nil)
	mockTicket.EXPECT().Update(gomock.Any()).DoAndReturn(func(tk *ticket.Ticket) error {
		assert.Equal(t, ticket.StatusPendingConfirmation, tk.Status)
		return nil
	})

	input := baseWorkOrderInput()
	input.Completed = true
	_, err := svc.CreateWorkOrder(1, technicianClaims(7, 3), input)
	assert.NoError(t, err)
}

func TestCreateWorkOrder_FrozenAfterBillingHandoff(t *testing.T) {
	svc, _, mockTicket := setupWorkOrderServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusReadyForBilling}, nil)

	_, err := svc.CreateWorkOrder(1, technicianClaims(7, 3), baseWorkOrderInput())
	assert.ErrorIs(t, err, ErrWorkOrdersFrozen)
}

func TestCreateWorkOrder_FrozenAfterBilled(t *testing.T) {
	svc, _, mockTicket := setupWorkOrderServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusBilled}, nil)

	_, err := svc.CreateWorkOrder(1, technicianClaims(7, 3), baseWorkOrderInput())
	assert.ErrorIs(t, err, ErrWorkOrdersFrozen)
}

func TestCreateWorkOrder_OrganizationRoleDenied(t *testing.T) {
	svc, _, mockTicket := setupWorkOrderServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusInProgress}, nil)

	_, err := svc.CreateWorkOrder(1, orgAdminClaims(2, 10), baseWorkOrderInput())
	assert.ErrorIs(t, err, ticket.ErrRoleNotAllowed)
}
