package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/taskscout/taskscout/internal/cache"
	"github.com/taskscout/taskscout/internal/domain/org"
	"github.com/taskscout/taskscout/internal/domain/ticket"
	"github.com/taskscout/taskscout/internal/domain/user"
	"github.com/taskscout/taskscout/internal/events"
	"github.com/taskscout/taskscout/internal/metrics"
	"github.com/taskscout/taskscout/internal/repository"
	"github.com/taskscout/taskscout/pkg/types"
)

var (
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrMediaRequired        = errors.New("at least one media attachment is required")
	ErrGrantMissing         = errors.New("sub-admin has no grant for this organization")
	ErrPermissionNotGranted = errors.New("sub-admin permission not granted")
	ErrVendorTierNotGranted = errors.New("vendor tier not covered by sub-admin grant")
)

type TicketService struct {
	Repos *repository.Repos
	Cache *cache.Cache
	Hub   *events.Hub
}

func NewTicketService(repos *repository.Repos, c *cache.Cache, hub *events.Hub) *TicketService {
	return &TicketService{Repos: repos, Cache: c, Hub: hub}
}

// CreateTicket registers a new issue. Residential reporters and the explicit
// marketplace flag route the ticket into open bidding; those tickets must
// carry at least one media attachment.
func (s *TicketService) CreateTicket(actor *types.Claims, input ticket.CreateTicketDTO, attachmentKeys []string) (*ticket.Ticket, error) {
	marketplace := input.Marketplace || user.Role(actor.Role) == user.RoleResidential
	if marketplace && len(attachmentKeys) == 0 {
		return nil, ErrMediaRequired
	}

	status := ticket.StatusPending
	if marketplace {
		status = ticket.StatusMarketplace
	}

	priority := input.Priority
	if priority == "" {
		priority = ticket.PriorityMedium
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("invalid priority %q", input.Priority)
	}

	attachments, err := json.Marshal(attachmentKeys)
	if err != nil {
		return nil, err
	}

	t := &ticket.Ticket{
		Title:       input.Title,
		Description: input.Description,
		Priority:    priority,
		Status:      status,
		ReporterID:  actor.UserID,
		OrgID:       input.OrgID,
		LocationID:  input.LocationID,
		Attachments: attachments,
	}
	if t.OrgID == nil {
		t.OrgID = actor.OrgID
	}

	if err := s.Repos.Ticket.Create(t); err != nil {
		return nil, err
	}

	s.invalidate(cache.KeyTickets)
	go LogAudit(s.Repos.Audit, actor.UserID, "create", "ticket", fmt.Sprintf("%d", t.ID), nil, t)
	return t, nil
}

// Accept moves a ticket into accepted. Organization roles hand the ticket to
// a vendor; maintenance admins record a technician assignment and may
// re-trigger the action on an already-accepted ticket to reassign (status is
// unchanged in that case).
func (s *TicketService) Accept(id uint, actor *types.Claims, input ticket.AcceptTicketDTO) (*ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetByID(id)
	if err != nil {
		return nil, ErrTicketNotFound
	}
	old := t

	role := user.Role(actor.Role)
	if err := s.authorize(&t, ticket.ActionAccept, role); err != nil {
		return nil, err
	}

	if role == user.RoleOrgSubAdmin {
		if err := s.checkSubAdminAccept(actor, input.VendorID); err != nil {
			metrics.RecordTransition(string(ticket.ActionAccept), "denied")
			return nil, err
		}
	}

	switch {
	case role.IsVendor():
		assignee := actor.UserID // self-assign by default
		if input.AssigneeID != nil {
			assignee = *input.AssigneeID
		}
		t.AssigneeID = &assignee
		if t.VendorID == nil {
			t.VendorID = actor.VendorID
		}
	default:
		// Organization acceptance; technician assignment is left to the
		// vendor.
		if input.VendorID != nil {
			t.VendorID = input.VendorID
		}
	}

	t.Status = ticket.NextStatus(&t, ticket.ActionAccept)
	if err := s.Repos.Ticket.Update(&t); err != nil {
		metrics.RecordTransition(string(ticket.ActionAccept), "error")
		return nil, err
	}

	s.afterTransition(&t, old, ticket.ActionAccept, actor)
	return &t, nil
}

// Reject finalizes a ticket with a mandatory reason.
func (s *TicketService) Reject(id uint, actor *types.Claims, reason string) (*ticket.Ticket, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ticket.ErrReasonRequired
	}

	t, err := s.Repos.Ticket.GetByID(id)
	if err != nil {
		return nil, ErrTicketNotFound
	}
	old := t

	if err := s.authorize(&t, ticket.ActionReject, user.Role(actor.Role)); err != nil {
		return nil, err
	}

	t.Status = ticket.NextStatus(&t, ticket.ActionReject)
	t.RejectionReason = reason
	if err := s.Repos.Ticket.Update(&t); err != nil {
		metrics.RecordTransition(string(ticket.ActionReject), "error")
		return nil, err
	}

	s.afterTransition(&t, old, ticket.ActionReject, actor)
	return &t, nil
}

// Start opens the work phase. The client couples this with creating the
// first work order.
func (s *TicketService) Start(id uint, actor *types.Claims) (*ticket.Ticket, error) {
	return s.simpleTransition(id, actor, ticket.ActionStart)
}

// ConfirmCompletion is the organization's sign-off on finished work.
func (s *TicketService) ConfirmCompletion(id uint, actor *types.Claims) (*ticket.Ticket, error) {
	return s.simpleTransition(id, actor, ticket.ActionConfirmCompletion)
}

// RequestReturn sends the technician back instead of confirming completion.
func (s *TicketService) RequestReturn(id uint, actor *types.Claims) (*ticket.Ticket, error) {
	return s.simpleTransition(id, actor, ticket.ActionRequestReturn)
}

// MarkReadyForBilling is the vendor's hand-off to invoicing.
func (s *TicketService) MarkReadyForBilling(id uint, actor *types.Claims) (*ticket.Ticket, error) {
	return s.simpleTransition(id, actor, ticket.ActionReadyForBilling)
}

// ForceClose terminates a ticket from any non-terminal status.
func (s *TicketService) ForceClose(id uint, actor *types.Claims) (*ticket.Ticket, error) {
	return s.simpleTransition(id, actor, ticket.ActionForceClose)
}

func (s *TicketService) simpleTransition(id uint, actor *types.Claims, action ticket.Action) (*ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetByID(id)
	if err != nil {
		return nil, ErrTicketNotFound
	}
	old := t

	if err := s.authorize(&t, action, user.Role(actor.Role)); err != nil {
		return nil, err
	}

	t.Status = ticket.NextStatus(&t, action)
	if err := s.Repos.Ticket.Update(&t); err != nil {
		metrics.RecordTransition(string(action), "error")
		return nil, err
	}

	s.afterTransition(&t, old, action, actor)
	return &t, nil
}

func (s *TicketService) authorize(t *ticket.Ticket, action ticket.Action, role user.Role) error {
	if err := ticket.Authorize(t, action, role); err != nil {
		metrics.RecordTransition(string(action), "denied")
		return err
	}
	return nil
}

func (s *TicketService) afterTransition(t *ticket.Ticket, old ticket.Ticket, action ticket.Action, actor *types.Claims) {
	metrics.RecordTransition(string(action), "ok")
	s.invalidate(cache.KeyTickets)
	if s.Hub != nil {
		s.Hub.Broadcast(events.TicketEvent{
			TicketID: t.ID,
			Action:   string(action),
			From:     string(old.Status),
			To:       string(t.Status),
		})
	}
	go LogAudit(s.Repos.Audit, actor.UserID, string(action), "ticket", fmt.Sprintf("%d", t.ID), old, t)
}

// checkSubAdminAccept verifies the sub-admin grant: accept_ticket must be
// present, and a target vendor's tier must be covered by the tier set.
func (s *TicketService) checkSubAdminAccept(actor *types.Claims, vendorID *uint) error {
	grant, err := s.Repos.Org.GetGrantByUser(actor.UserID)
	if err != nil {
		return ErrGrantMissing
	}

	var perms []org.Permission
	if err := json.Unmarshal(grant.Permissions, &perms); err != nil {
		return ErrGrantMissing
	}
	hasAccept := false
	for _, p := range perms {
		if p == org.PermAcceptTicket {
			hasAccept = true
			break
		}
	}
	if !hasAccept {
		return ErrPermissionNotGranted
	}

	if vendorID == nil {
		return nil
	}
	v, err := s.Repos.Vendor.GetByID(*vendorID)
	if err != nil {
		return ErrVendorNotFound
	}
	var tiers []org.Tier
	if err := json.Unmarshal(grant.VendorTiers, &tiers); err != nil {
		return ErrGrantMissing
	}
	if !org.NewTierSet(tiers...).AllowsVendorTier(v.Tier) {
		return ErrVendorTierNotGranted
	}
	return nil
}

func (s *TicketService) GetTicket(id uint, role user.Role) (*ticket.View, error) {
	t, err := s.Repos.Ticket.GetByID(id)
	if err != nil {
		return nil, ErrTicketNotFound
	}
	return s.view(t, role), nil
}

// ListTickets serves the scoped ticket list through the cache; the key
// encodes the scope so each audience has its own entry.
func (s *TicketService) ListTickets(actor *types.Claims) ([]ticket.View, error) {
	ctx := context.Background()
	key := s.listKey(actor)

	var tickets []ticket.Ticket
	if s.Cache != nil {
		if err := s.Cache.Get(ctx, key, &tickets); err == nil {
			return s.views(tickets, user.Role(actor.Role)), nil
		}
	}

	tickets, err := s.listForActor(actor)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, tickets); err != nil {
			// Stale cache is worse than no cache; a failed write only costs
			// the next request a DB round trip.
			log.Printf("cache set %s: %v", key, err)
		}
	}
	return s.views(tickets, user.Role(actor.Role)), nil
}

// ListMarketplace returns open-bidding tickets for vendors to browse.
func (s *TicketService) ListMarketplace() ([]ticket.Ticket, error) {
	return s.Repos.Ticket.ListByStatus(ticket.StatusMarketplace)
}

func (s *TicketService) listForActor(actor *types.Claims) ([]ticket.Ticket, error) {
	role := user.Role(actor.Role)
	switch {
	case role == user.RoleTechnician:
		return s.Repos.Ticket.ListByAssignee(actor.UserID)
	case role == user.RoleMaintenanceAdmin && actor.VendorID != nil:
		return s.Repos.Ticket.ListByVendor(*actor.VendorID)
	case role.IsOrganization() && actor.OrgID != nil:
		return s.Repos.Ticket.ListByOrg(*actor.OrgID)
	case role == user.RoleResidential:
		return s.Repos.Ticket.ListByReporter(actor.UserID)
	default:
		return s.Repos.Ticket.List()
	}
}

func (s *TicketService) listKey(actor *types.Claims) string {
	return fmt.Sprintf("%s:list:%s:%d", cache.KeyTickets, actor.Role, actor.UserID)
}

func (s *TicketService) view(t ticket.Ticket, role user.Role) *ticket.View {
	return &ticket.View{
		Ticket:         t,
		StatusLabel:    t.Status.Label(),
		StatusColor:    t.Status.Color(),
		AllowedActions: ticket.AllowedActions(&t, role),
	}
}

func (s *TicketService) views(tickets []ticket.Ticket, role user.Role) []ticket.View {
	out := make([]ticket.View, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, *s.view(t, role))
	}
	return out
}

func (s *TicketService) invalidate(keys ...string) {
	if s.Cache != nil {
		s.Cache.Invalidate(context.Background(), keys...)
	}
}

// AddMilestone appends a progress note; only the working vendor side posts
// them.
func (s *TicketService) AddMilestone(ticketID uint, actor *types.Claims, note string) (*ticket.Milestone, error) {
	t, err := s.Repos.Ticket.GetByID(ticketID)
	if err != nil {
		return nil, ErrTicketNotFound
	}
	if !user.Role(actor.Role).IsVendor() {
		return nil, ticket.ErrRoleNotAllowed
	}
	if t.Status.Terminal() {
		return nil, ticket.ErrIllegalTransition
	}

	m := &ticket.Milestone{TicketID: t.ID, AuthorID: actor.UserID, Note: note}
	if err := s.Repos.Ticket.CreateMilestone(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *TicketService) ListMilestones(ticketID uint) ([]ticket.Milestone, error) {
	if _, err := s.Repos.Ticket.GetByID(ticketID); err != nil {
		return nil, ErrTicketNotFound
	}
	return s.Repos.Ticket.ListMilestones(ticketID)
}
