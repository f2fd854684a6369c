package application

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/taskscout/taskscout/internal/domain/org"
	"github.com/taskscout/taskscout/internal/domain/ticket"
	"github.com/taskscout/taskscout/internal/domain/user"
	"github.com/taskscout/taskscout/internal/domain/vendor"
	"github.com/taskscout/taskscout/internal/repository"
	"github.com/taskscout/taskscout/internal/repository/mock"
	"github.com/taskscout/taskscout/pkg/types"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------

// silenceAudit swaps the audit writer for a no-op so tests don't race the
// fire-and-forget goroutine against the mock controller.
func silenceAudit(t *testing.T) {
	old := LogAudit
	LogAudit = func(repository.AuditRepo, uint, string, string, string, any, any) {}
	t.Cleanup(func() { LogAudit = old })
}

func setupTicketServiceMocks(t *testing.T) (*TicketService, *mock.MockTicketRepo, *mock.MockOrgRepo, *mock.MockVendorRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })
	silenceAudit(t)

	mockTicket := mock.NewMockTicketRepo(ctrl)
	mockOrg := mock.NewMockOrgRepo(ctrl)
	mockVendor := mock.NewMockVendorRepo(ctrl)
	repos := &repository.Repos{
		Ticket: mockTicket,
		Org:    mockOrg,
		Vendor: mockVendor,
	}
	svc := NewTicketService(repos, nil, nil)
	return svc, mockTicket, mockOrg, mockVendor
}

func uintPtr(v uint) *uint { return &v }

func orgAdminClaims(userID, orgID uint) *types.Claims {
	return &types.Claims{UserID: userID, Role: string(user.RoleOrgAdmin), OrgID: uintPtr(orgID)}
}

func vendorAdminClaims(userID, vendorID uint) *types.Claims {
	return &types.Claims{UserID: userID, Role: string(user.RoleMaintenanceAdmin), VendorID: uintPtr(vendorID)}
}

func rawJSON(t *testing.T, v any) []byte {
	raw, err := json.Marshal(v)
	assert.NoError(t, err)
	return raw
}

// --------------------- CreateTicket ---------------------

func TestCreateTicket_MarketplaceNeedsMedia(t *testing.T) {
	svc, _, _, _ := setupTicketServiceMocks(t)

	input := ticket.CreateTicketDTO{Title: "Leak", Description: "Kitchen sink", Marketplace: true}
	_, err := svc.CreateTicket(orgAdminClaims(1, 10), input, nil)
	assert.ErrorIs(t, err, ErrMediaRequired)
}

func TestCreateTicket_ResidentialGoesToMarketplace(t *testing.T) {
	svc, mockTicket, _, _ := setupTicketServiceMocks(t)

	claims := &types.Claims{UserID: 8, Role: string(user.RoleResidential)}
	mockTicket.EXPECT().Create(gomock.Any()).DoAndReturn(func(tk *ticket.Ticket) error {
		tk.ID = 42
		return nil
	})

	input := ticket.CreateTicketDTO{Title: "Broken heater", Description: "No heat upstairs"}
	created, err := svc.CreateTicket(claims, input, []string{"tickets/heater.jpg"})
	assert.NoError(t, err)
	assert.Equal(t, ticket.StatusMarketplace, created.Status)
	assert.Equal(t, uint(8), created.ReporterID)
	assert.Equal(t, ticket.PriorityMedium, created.Priority)
}

func TestCreateTicket_OrgDefaultsToPending(t *testing.T) {
	svc, mockTicket, _, _ := setupTicketServiceMocks(t)

	mockTicket.EXPECT().Create(gomock.Any()).Return(nil)

	input := ticket.CreateTicketDTO{Title: "Door jam", Description: "Suite 204", Priority: ticket.PriorityHigh}
	created, err := svc.CreateTicket(orgAdminClaims(2, 10), input, nil)
	assert.NoError(t, err)
	assert.Equal(t, ticket.StatusPending, created.Status)
	assert.Equal(t, ticket.PriorityHigh, created.Priority)
	assert.Equal(t, uintPtr(10), created.OrgID)
}

func TestCreateTicket_InvalidPriority(t *testing.T) {
	svc, _, _, _ := setupTicketServiceMocks(t)

	input := ticket.CreateTicketDTO{Title: "x", Description: "y", Priority: ticket.Priority("urgent")}
	_, err := svc.CreateTicket(orgAdminClaims(2, 10), input, nil)
	assert.Error(t, err)
}

// --------------------- Accept ---------------------

func TestAccept_OrgAdminRoutesVendor(t *testing.T) {
	svc, mockTicket, _, _ := setupTicketServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusPending}, nil)
	mockTicket.EXPECT().Update(gomock.Any()).Return(nil)

	got, err := svc.Accept(1, orgAdminClaims(2, 10), ticket.AcceptTicketDTO{VendorID: uintPtr(5)})
	assert.NoError(t, err)
	assert.Equal(t, ticket.StatusAccepted, got.Status)
	assert.Equal(t, uintPtr(5), got.VendorID)
}

func TestAccept_VendorAdminReassignsTechnician(t *testing.T) {
	svc, mockTicket, _, _ := setupTicketServiceMocks(t)

	existing := ticket.Ticket{ID: 1, Status: ticket.StatusAccepted, VendorID: uintPtr(3), AssigneeID: uintPtr(7)}
	mockTicket.EXPECT().GetByID(uint(1)).Return(existing, nil)
	mockTicket.EXPECT().Update(gomock.Any()).Return(nil)

	got, err := svc.Accept(1, vendorAdminClaims(4, 3), ticket.AcceptTicketDTO{AssigneeID: uintPtr(9)})
	assert.NoError(t, err)
	assert.Equal(t, ticket.StatusAccepted, got.Status)
	assert.Equal(t, uintPtr(9), got.AssigneeID)
	assert.Equal(t, uintPtr(3), got.VendorID)
}

func TestAccept_VendorAdminSelfAssigns(t *testing.T) {
	svc, mockTicket, _, _ := setupTicketServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusMarketplace}, nil)
	mockTicket.EXPECT().Update(gomock.Any()).Return(nil)

	got, err := svc.Accept(1, vendorAdminClaims(4, 3), ticket.AcceptTicketDTO{})
	assert.NoError(t, err)
	assert.Equal(t, uintPtr(4), got.AssigneeID)
	assert.Equal(t, uintPtr(3), got.VendorID)
}

func TestAccept_SubAdminWithoutGrant(t *testing.T) {
	svc, mockTicket, mockOrg, _ := setupTicketServiceMocks(t)

	claims := &types.Claims{UserID: 6, Role: string(user.RoleOrgSubAdmin), OrgID: uintPtr(10)}
	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusPending}, nil)
	mockOrg.EXPECT().GetGrantByUser(uint(6)).Return(org.SubAdminGrant{}, gorm.ErrRecordNotFound)

	_, err := svc.Accept(1, claims, ticket.AcceptTicketDTO{})
	assert.ErrorIs(t, err, ErrGrantMissing)
}

func TestAccept_SubAdminPermissionNotGranted(t *testing.T) {
	svc, mockTicket, mockOrg, _ := setupTicketServiceMocks(t)

	claims := &types.Claims{UserID: 6, Role: string(user.RoleOrgSubAdmin), OrgID: uintPtr(10)}
	grant := org.SubAdminGrant{
		UserID:      6,
		OrgID:       10,
		Permissions: rawJSON(t, []org.Permission{org.PermPlaceTicket}),
		VendorTiers: rawJSON(t, []org.Tier{}),
	}
	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusPending}, nil)
	mockOrg.EXPECT().GetGrantByUser(uint(6)).Return(grant, nil)

	_, err := svc.Accept(1, claims, ticket.AcceptTicketDTO{})
	assert.ErrorIs(t, err, ErrPermissionNotGranted)
}

func TestAccept_SubAdminVendorTierNotCovered(t *testing.T) {
	svc, mockTicket, mockOrg, mockVendor := setupTicketServiceMocks(t)

	claims := &types.Claims{UserID: 6, Role: string(user.RoleOrgSubAdmin), OrgID: uintPtr(10)}
	grant := org.SubAdminGrant{
		UserID:      6,
		OrgID:       10,
		Permissions: rawJSON(t, []org.Permission{org.PermAcceptTicket}),
		VendorTiers: rawJSON(t, []org.Tier{org.Tier1}),
	}
	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusPending}, nil)
	mockOrg.EXPECT().GetGrantByUser(uint(6)).Return(grant, nil)
	mockVendor.EXPECT().GetByID(uint(5)).Return(vendor.MaintenanceVendor{ID: 5, Tier: 3}, nil)

	_, err := svc.Accept(1, claims, ticket.AcceptTicketDTO{VendorID: uintPtr(5)})
	assert.ErrorIs(t, err, ErrVendorTierNotGranted)
}

func TestAccept_SubAdminTierCovered(t *testing.T) {
	svc, mockTicket, mockOrg, mockVendor := setupTicketServiceMocks(t)

	claims := &types.Claims{UserID: 6, Role: string(user.RoleOrgSubAdmin), OrgID: uintPtr(10)}
	grant := org.SubAdminGrant{
		UserID:      6,
		OrgID:       10,
		Permissions: rawJSON(t, []org.Permission{org.PermAcceptTicket}),
		VendorTiers: rawJSON(t, []org.Tier{org.Tier1, org.Tier2}),
	}
	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusPending}, nil)
	mockOrg.EXPECT().GetGrantByUser(uint(6)).Return(grant, nil)
	mockVendor.EXPECT().GetByID(uint(5)).Return(vendor.MaintenanceVendor{ID: 5, Tier: 2}, nil)
	mockTicket.EXPECT().Update(gomock.Any()).Return(nil)

	got, err := svc.Accept(1, claims, ticket.AcceptTicketDTO{VendorID: uintPtr(5)})
	assert.NoError(t, err)
	assert.Equal(t, ticket.StatusAccepted, got.Status)
}

// --------------------- Reject ---------------------

func TestReject_RequiresReason(t *testing.T) {
	svc, _, _, _ := setupTicketServiceMocks(t)

	_, err := svc.Reject(1, orgAdminClaims(2, 10), "  ")
	assert.ErrorIs(t, err, ticket.ErrReasonRequired)
}

func TestReject_Success(t *testing.T) {
	svc, mockTicket, _, _ := setupTicketServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusPending}, nil)
	mockTicket.EXPECT().Update(gomock.Any()).Return(nil)

	got, err := svc.Reject(1, orgAdminClaims(2, 10), "duplicate of #12")
	assert.NoError(t, err)
	assert.Equal(t, ticket.StatusRejected, got.Status)
	assert.Equal(t, "duplicate of #12", got.RejectionReason)
}

// --------------------- Transitions ---------------------

func TestStart_IllegalFromPending(t *testing.T) {
	svc, mockTicket, _, _ := setupTicketServiceMocks(t)

	claims := &types.Claims{UserID: 7, Role: string(user.RoleTechnician), VendorID: uintPtr(3)}
	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusPending}, nil)

	_, err := svc.Start(1, claims)
	assert.ErrorIs(t, err, ticket.ErrIllegalTransition)
}

func TestForceClose_Success(t *testing.T) {
	svc, mockTicket, _, _ := setupTicketServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusInProgress}, nil)
	mockTicket.EXPECT().Update(gomock.Any()).Return(nil)

	got, err := svc.ForceClose(1, orgAdminClaims(2, 10))
	assert.NoError(t, err)
	assert.Equal(t, ticket.StatusForceClosed, got.Status)
}

func TestGetTicket_NotFound(t *testing.T) {
	svc, mockTicket, _, _ := setupTicketServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(99)).Return(ticket.Ticket{}, gorm.ErrRecordNotFound)

	_, err := svc.GetTicket(99, user.RoleOrgAdmin)
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

// --------------------- Milestones ---------------------

func TestAddMilestone_OrganizationRoleDenied(t *testing.T) {
	svc, mockTicket, _, _ := setupTicketServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusInProgress}, nil)

	_, err := svc.AddMilestone(1, orgAdminClaims(2, 10), "arrived on site")
	assert.ErrorIs(t, err, ticket.ErrRoleNotAllowed)
}

func TestAddMilestone_TerminalTicket(t *testing.T) {
	svc, mockTicket, _, _ := setupTicketServiceMocks(t)

	claims := &types.Claims{UserID: 7, Role: string(user.RoleTechnician), VendorID: uintPtr(3)}
	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusBilled}, nil)

	_, err := svc.AddMilestone(1, claims, "late note")
	assert.ErrorIs(t, err, ticket.ErrIllegalTransition)
}

func TestAddMilestone_Success(t *testing.T) {
	svc, mockTicket, _, _ := setupTicketServiceMocks(t)

	claims := &types.Claims{UserID: 7, Role: string(user.RoleTechnician), VendorID: uintPtr(3)}
	mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{ID: 1, Status: ticket.StatusInProgress}, nil)
	mockTicket.EXPECT().CreateMilestone(gomock.Any()).DoAndReturn(func(m *ticket.Milestone) error {
		m.ID = 3
		return nil
	})

	m, err := svc.AddMilestone(1, claims, "replaced the valve")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), m.TicketID)
	assert.Equal(t, uint(7), m.AuthorID)
	assert.Equal(t, "replaced the valve", m.Note)
}
