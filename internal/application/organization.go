package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/taskscout/taskscout/internal/cache"
	"github.com/taskscout/taskscout/internal/domain/org"
	"github.com/taskscout/taskscout/internal/domain/user"
	"github.com/taskscout/taskscout/internal/repository"
	"github.com/taskscout/taskscout/pkg/types"
)

var (
	ErrOrgNotFound       = errors.New("organization not found")
	ErrGrantNotFound     = errors.New("sub-admin grant not found")
	ErrNotSubAdmin       = errors.New("grants apply to org sub-admin users only")
	ErrUnknownPermission = errors.New("unknown permission")
)

type OrgService struct {
	Repos *repository.Repos
	Cache *cache.Cache
}

func NewOrgService(repos *repository.Repos, c *cache.Cache) *OrgService {
	return &OrgService{Repos: repos, Cache: c}
}

func (s *OrgService) CreateOrg(actor *types.Claims, input org.CreateOrgDTO) (*org.Organization, error) {
	o := &org.Organization{
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
		Email:   input.Email,
	}
	if err := s.Repos.Org.Create(o); err != nil {
		return nil, err
	}
	s.invalidate()
	go LogAudit(s.Repos.Audit, actor.UserID, "create", "organization", fmt.Sprintf("%d", o.ID), nil, o)
	return o, nil
}

func (s *OrgService) UpdateOrg(id uint, actor *types.Claims, input org.UpdateOrgDTO) (*org.Organization, error) {
	o, err := s.Repos.Org.GetByID(id)
	if err != nil {
		return nil, ErrOrgNotFound
	}
	old := o

	if input.Name != nil {
		o.Name = *input.Name
	}
	if input.Address != nil {
		o.Address = *input.Address
	}
	if input.Phone != nil {
		o.Phone = *input.Phone
	}
	if input.Email != nil {
		o.Email = *input.Email
	}

	if err := s.Repos.Org.Update(&o); err != nil {
		return nil, err
	}
	s.invalidate()
	go LogAudit(s.Repos.Audit, actor.UserID, "update", "organization", fmt.Sprintf("%d", o.ID), old, o)
	return &o, nil
}

func (s *OrgService) DeleteOrg(id uint, actor *types.Claims) error {
	if _, err := s.Repos.Org.GetByID(id); err != nil {
		return nil
	}
	if err := s.Repos.Org.Delete(id); err != nil {
		return err
	}
	s.invalidate()
	go LogAudit(s.Repos.Audit, actor.UserID, "delete", "organization", fmt.Sprintf("%d", id), nil, nil)
	return nil
}

func (s *OrgService) GetOrg(id uint) (*org.Organization, error) {
	o, err := s.Repos.Org.GetByID(id)
	if err != nil {
		return nil, ErrOrgNotFound
	}
	return &o, nil
}

func (s *OrgService) ListOrgs() ([]org.Organization, error) {
	return s.Repos.Org.List()
}

// UpsertGrant replaces a sub-admin's delegated permissions and vendor tiers.
// Tiers only survive alongside the accept_ticket permission, and the stored
// tier set is always downward-closed.
func (s *OrgService) UpsertGrant(orgID uint, actor *types.Claims, input org.SubAdminGrantDTO) (*org.SubAdminGrant, error) {
	if _, err := s.Repos.Org.GetByID(orgID); err != nil {
		return nil, ErrOrgNotFound
	}
	u, err := s.Repos.User.GetByID(input.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if u.Role != user.RoleOrgSubAdmin {
		return nil, ErrNotSubAdmin
	}
	for _, p := range input.Permissions {
		switch p {
		case org.PermPlaceTicket, org.PermAcceptTicket, org.PermAssignTicket,
			org.PermViewInvoices, org.PermManageLocations:
		default:
			return nil, ErrUnknownPermission
		}
	}

	tiers := org.NewTierSet(input.VendorTiers...)
	for _, t := range tiers.Slice() {
		tiers = org.SetTier(tiers, t, true)
	}
	tiers = org.TiersFor(input.Permissions, tiers)

	perms, err := json.Marshal(input.Permissions)
	if err != nil {
		return nil, err
	}
	tierJSON, err := json.Marshal(tiers.Slice())
	if err != nil {
		return nil, err
	}

	g, err := s.Repos.Org.GetGrantByUser(input.UserID)
	if err != nil {
		g = org.SubAdminGrant{UserID: input.UserID, OrgID: orgID}
		g.Permissions = perms
		g.VendorTiers = tierJSON
		if err := s.Repos.Org.CreateGrant(&g); err != nil {
			return nil, err
		}
	} else {
		old := g
		g.OrgID = orgID
		g.Permissions = perms
		g.VendorTiers = tierJSON
		if err := s.Repos.Org.UpdateGrant(&g); err != nil {
			return nil, err
		}
		go LogAudit(s.Repos.Audit, actor.UserID, "update", "sub_admin_grant", fmt.Sprintf("%d", g.ID), old, g)
		s.invalidate()
		return &g, nil
	}

	s.invalidate()
	go LogAudit(s.Repos.Audit, actor.UserID, "create", "sub_admin_grant", fmt.Sprintf("%d", g.ID), nil, g)
	return &g, nil
}

// ToggleTier applies one vendor-tier checkbox on a grant. The cascade is
// computed by the domain and persisted as the whole closed set.
func (s *OrgService) ToggleTier(userID uint, actor *types.Claims, input org.ToggleTierDTO) (*org.SubAdminGrant, error) {
	g, err := s.Repos.Org.GetGrantByUser(userID)
	if err != nil {
		return nil, ErrGrantNotFound
	}
	old := g

	var perms []org.Permission
	if len(g.Permissions) > 0 {
		if err := json.Unmarshal(g.Permissions, &perms); err != nil {
			return nil, err
		}
	}
	var stored []org.Tier
	if len(g.VendorTiers) > 0 {
		if err := json.Unmarshal(g.VendorTiers, &stored); err != nil {
			return nil, err
		}
	}

	next := org.SetTier(org.NewTierSet(stored...), input.Tier, *input.Checked)
	next = org.TiersFor(perms, next)

	raw, err := json.Marshal(next.Slice())
	if err != nil {
		return nil, err
	}
	g.VendorTiers = raw
	if err := s.Repos.Org.UpdateGrant(&g); err != nil {
		return nil, err
	}

	s.invalidate()
	go LogAudit(s.Repos.Audit, actor.UserID, "toggle_tier", "sub_admin_grant", fmt.Sprintf("%d", g.ID), old, g)
	return &g, nil
}

func (s *OrgService) GetGrant(userID uint) (*org.SubAdminGrant, error) {
	g, err := s.Repos.Org.GetGrantByUser(userID)
	if err != nil {
		return nil, ErrGrantNotFound
	}
	return &g, nil
}

func (s *OrgService) ListGrants(orgID uint) ([]org.SubAdminGrant, error) {
	if _, err := s.Repos.Org.GetByID(orgID); err != nil {
		return nil, ErrOrgNotFound
	}
	return s.Repos.Org.ListGrantsByOrg(orgID)
}

func (s *OrgService) invalidate() {
	if s.Cache != nil {
		s.Cache.Invalidate(context.Background(), cache.KeyOrgs)
	}
}
