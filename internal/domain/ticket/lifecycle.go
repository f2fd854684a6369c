package ticket

import (
	"errors"

	"github.com/taskscout/taskscout/internal/domain/user"
)

// Action is a lifecycle operation requested against a ticket.
type Action string

const (
	ActionAccept            Action = "accept"
	ActionReject            Action = "reject"
	ActionStart             Action = "start"
	ActionCreateWorkOrder   Action = "create_work_order"
	ActionConfirmCompletion Action = "confirm_completion"
	ActionRequestReturn     Action = "request_return"
	ActionReadyForBilling   Action = "ready_for_billing"
	ActionCreateInvoice     Action = "create_invoice"
	ActionForceClose        Action = "force_close"
	ActionSubmitBid         Action = "submit_bid"
)

var (
	ErrIllegalTransition = errors.New("action not allowed in current ticket status")
	ErrRoleNotAllowed    = errors.New("role may not perform this action")
	ErrReasonRequired    = errors.New("a non-empty reason is required")
)

// Rule declares when an action is legal: the statuses it may fire from, the
// roles that may trigger it, and the status the ticket moves to. A zero Next
// leaves the status unchanged (the service decides any follow-up move).
type Rule struct {
	From           []Status
	Roles          []user.Role
	Next           Status
	RequiresReason bool
}

func (r Rule) allowsStatus(s Status) bool {
	for _, f := range r.From {
		if f == s {
			return true
		}
	}
	return false
}

func (r Rule) allowsRole(role user.Role) bool {
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// transitions is the single source of truth for the ticket state machine.
// Every handler and service consults this table instead of carrying its own
// status conditionals.
var transitions = map[Action]Rule{
	ActionAccept: {
		From:  []Status{StatusPending, StatusOpen, StatusMarketplace, StatusAccepted},
		Roles: []user.Role{user.RoleOrgAdmin, user.RoleOrgSubAdmin, user.RoleMaintenanceAdmin},
		Next:  StatusAccepted,
	},
	ActionReject: {
		From:           []Status{StatusPending, StatusOpen, StatusMarketplace},
		Roles:          []user.Role{user.RoleOrgAdmin, user.RoleOrgSubAdmin, user.RoleMaintenanceAdmin},
		Next:           StatusRejected,
		RequiresReason: true,
	},
	ActionStart: {
		From:  []Status{StatusAccepted},
		Roles: []user.Role{user.RoleTechnician, user.RoleMaintenanceAdmin},
		Next:  StatusInProgress,
	},
	ActionCreateWorkOrder: {
		From:  []Status{StatusInProgress, StatusReturnNeeded},
		Roles: []user.Role{user.RoleTechnician, user.RoleMaintenanceAdmin},
		// Next stays empty: completion of the work order decides whether the
		// ticket advances to pending_confirmation.
	},
	ActionConfirmCompletion: {
		From:  []Status{StatusPendingConfirmation},
		Roles: []user.Role{user.RoleOrgAdmin, user.RoleOrgSubAdmin, user.RoleResidential},
		Next:  StatusCompleted,
	},
	ActionRequestReturn: {
		From:  []Status{StatusPendingConfirmation},
		Roles: []user.Role{user.RoleOrgAdmin, user.RoleOrgSubAdmin, user.RoleResidential},
		Next:  StatusReturnNeeded,
	},
	ActionReadyForBilling: {
		From:  []Status{StatusCompleted},
		Roles: []user.Role{user.RoleMaintenanceAdmin},
		Next:  StatusReadyForBilling,
	},
	ActionCreateInvoice: {
		From:  []Status{StatusReadyForBilling},
		Roles: []user.Role{user.RoleMaintenanceAdmin},
		Next:  StatusBilled,
	},
	ActionForceClose: {
		From: []Status{
			StatusPending, StatusOpen, StatusMarketplace, StatusAccepted,
			StatusInProgress, StatusReturnNeeded, StatusPendingConfirmation,
			StatusCompleted, StatusReadyForBilling,
		},
		Roles: []user.Role{user.RoleOrgAdmin, user.RoleMaintenanceAdmin},
		Next:  StatusForceClosed,
	},
	ActionSubmitBid: {
		From:  []Status{StatusMarketplace},
		Roles: []user.Role{user.RoleMaintenanceAdmin},
		// Bids do not move the ticket; acceptance of a bid does.
	},
}

// Authorize checks the transition table for one action. Re-triggering accept
// on an already-accepted ticket is reserved for maintenance admins, who use
// it to reassign the technician; for them the action is idempotent with
// respect to status.
func Authorize(t *Ticket, action Action, role user.Role) error {
	rule, ok := transitions[action]
	if !ok {
		return ErrIllegalTransition
	}
	if !rule.allowsStatus(t.Status) {
		return ErrIllegalTransition
	}
	if !rule.allowsRole(role) {
		return ErrRoleNotAllowed
	}
	if action == ActionAccept && t.Status == StatusAccepted && role != user.RoleMaintenanceAdmin {
		return ErrIllegalTransition
	}
	return nil
}

// NextStatus returns the status the action moves the ticket to, or the
// current status when the table leaves the decision to the service.
func NextStatus(t *Ticket, action Action) Status {
	rule, ok := transitions[action]
	if !ok || rule.Next == "" {
		return t.Status
	}
	return rule.Next
}

// RequiresReason reports whether the action must carry a non-empty reason.
func RequiresReason(action Action) bool {
	return transitions[action].RequiresReason
}

// AllowedActions lists every action the role could legally trigger on the
// ticket right now. Clients use it to decide which controls to render.
func AllowedActions(t *Ticket, role user.Role) []Action {
	var out []Action
	for _, action := range []Action{
		ActionAccept, ActionReject, ActionStart, ActionCreateWorkOrder,
		ActionConfirmCompletion, ActionRequestReturn, ActionReadyForBilling, ActionCreateInvoice,
		ActionForceClose, ActionSubmitBid,
	} {
		if Authorize(t, action, role) == nil {
			out = append(out, action)
		}
	}
	return out
}
