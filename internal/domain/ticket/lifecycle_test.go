package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskscout/taskscout/internal/domain/user"
)

func TestAuthorizeTransitions(t *testing.T) {
	tests := []struct {
		name    string
		status  Status
		action  Action
		role    user.Role
		wantErr error
	}{
		{"org admin accepts pending", StatusPending, ActionAccept, user.RoleOrgAdmin, nil},
		{"sub admin accepts marketplace", StatusMarketplace, ActionAccept, user.RoleOrgSubAdmin, nil},
		{"technician cannot accept", StatusPending, ActionAccept, user.RoleTechnician, ErrRoleNotAllowed},
		{"residential cannot accept", StatusPending, ActionAccept, user.RoleResidential, ErrRoleNotAllowed},
		{"accept from in-progress is illegal", StatusInProgress, ActionAccept, user.RoleOrgAdmin, ErrIllegalTransition},
		{"org admin rejects open", StatusOpen, ActionReject, user.RoleOrgAdmin, nil},
		{"reject from accepted is illegal", StatusAccepted, ActionReject, user.RoleOrgAdmin, ErrIllegalTransition},
		{"technician starts accepted", StatusAccepted, ActionStart, user.RoleTechnician, nil},
		{"maintenance admin starts accepted", StatusAccepted, ActionStart, user.RoleMaintenanceAdmin, nil},
		{"org admin cannot start", StatusAccepted, ActionStart, user.RoleOrgAdmin, ErrRoleNotAllowed},
		{"start from pending is illegal", StatusPending, ActionStart, user.RoleTechnician, ErrIllegalTransition},
		{"technician creates work order in progress", StatusInProgress, ActionCreateWorkOrder, user.RoleTechnician, nil},
		{"work order on return visit", StatusReturnNeeded, ActionCreateWorkOrder, user.RoleTechnician, nil},
		{"residential confirms completion", StatusPendingConfirmation, ActionConfirmCompletion, user.RoleResidential, nil},
		{"org admin requests return", StatusPendingConfirmation, ActionRequestReturn, user.RoleOrgAdmin, nil},
		{"vendor cannot confirm completion", StatusPendingConfirmation, ActionConfirmCompletion, user.RoleMaintenanceAdmin, ErrRoleNotAllowed},
		{"maintenance admin marks ready for billing", StatusCompleted, ActionReadyForBilling, user.RoleMaintenanceAdmin, nil},
		{"org admin cannot mark ready for billing", StatusCompleted, ActionReadyForBilling, user.RoleOrgAdmin, ErrRoleNotAllowed},
		{"invoice only from ready_for_billing", StatusCompleted, ActionCreateInvoice, user.RoleMaintenanceAdmin, ErrIllegalTransition},
		{"invoice from ready_for_billing", StatusReadyForBilling, ActionCreateInvoice, user.RoleMaintenanceAdmin, nil},
		{"force close in progress", StatusInProgress, ActionForceClose, user.RoleOrgAdmin, nil},
		{"force close billed is illegal", StatusBilled, ActionForceClose, user.RoleMaintenanceAdmin, ErrIllegalTransition},
		{"sub admin cannot force close", StatusInProgress, ActionForceClose, user.RoleOrgSubAdmin, ErrRoleNotAllowed},
		{"bid on marketplace ticket", StatusMarketplace, ActionSubmitBid, user.RoleMaintenanceAdmin, nil},
		{"bid on accepted ticket is illegal", StatusAccepted, ActionSubmitBid, user.RoleMaintenanceAdmin, ErrIllegalTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := &Ticket{Status: tt.status}
			err := Authorize(tk, tt.action, tt.role)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestAuthorizeReaccept(t *testing.T) {
	tk := &Ticket{Status: StatusAccepted}

	// Only the vendor admin may re-trigger accept to reassign.
	assert.NoError(t, Authorize(tk, ActionAccept, user.RoleMaintenanceAdmin))
	assert.ErrorIs(t, Authorize(tk, ActionAccept, user.RoleOrgAdmin), ErrIllegalTransition)
	assert.ErrorIs(t, Authorize(tk, ActionAccept, user.RoleOrgSubAdmin), ErrIllegalTransition)
}

func TestNextStatus(t *testing.T) {
	assert.Equal(t, StatusAccepted, NextStatus(&Ticket{Status: StatusPending}, ActionAccept))
	assert.Equal(t, StatusInProgress, NextStatus(&Ticket{Status: StatusAccepted}, ActionStart))
	assert.Equal(t, StatusBilled, NextStatus(&Ticket{Status: StatusReadyForBilling}, ActionCreateInvoice))

	// Actions without a target leave the status alone.
	assert.Equal(t, StatusInProgress, NextStatus(&Ticket{Status: StatusInProgress}, ActionCreateWorkOrder))
	assert.Equal(t, StatusMarketplace, NextStatus(&Ticket{Status: StatusMarketplace}, ActionSubmitBid))
}

func TestRequiresReason(t *testing.T) {
	assert.True(t, RequiresReason(ActionReject))
	assert.False(t, RequiresReason(ActionAccept))
	assert.False(t, RequiresReason(ActionForceClose))
}

func TestAllowedActions(t *testing.T) {
	tk := &Ticket{Status: StatusPendingConfirmation}

	assert.ElementsMatch(t,
		[]Action{ActionConfirmCompletion, ActionRequestReturn},
		AllowedActions(tk, user.RoleResidential))
	assert.ElementsMatch(t,
		[]Action{ActionConfirmCompletion, ActionRequestReturn, ActionForceClose},
		AllowedActions(tk, user.RoleOrgAdmin))
	assert.Empty(t, AllowedActions(&Ticket{Status: StatusBilled}, user.RoleMaintenanceAdmin))
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusBilled.Terminal())
	assert.True(t, StatusForceClosed.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.False(t, StatusCompleted.Terminal())
	assert.False(t, StatusPending.Terminal())
}
