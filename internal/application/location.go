package application

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/taskscout/taskscout/internal/domain/location"
	"github.com/taskscout/taskscout/internal/domain/org"
	"github.com/taskscout/taskscout/internal/domain/ticket"
	"github.com/taskscout/taskscout/internal/domain/user"
	"github.com/taskscout/taskscout/internal/repository"
	"github.com/taskscout/taskscout/pkg/types"
)

var ErrLocationNotFound = errors.New("location not found")

type LocationService struct {
	Repos *repository.Repos
}

func NewLocationService(repos *repository.Repos) *LocationService {
	return &LocationService{Repos: repos}
}

// canManage gates location writes. Org admins always may; sub-admins need the
// manage_locations permission on their grant.
func (s *LocationService) canManage(actor *types.Claims) error {
	switch user.Role(actor.Role) {
	case user.RoleOrgAdmin:
		return nil
	case user.RoleOrgSubAdmin:
		g, err := s.Repos.Org.GetGrantByUser(actor.UserID)
		if err != nil {
			return ErrGrantMissing
		}
		var perms []org.Permission
		if len(g.Permissions) > 0 {
			if err := json.Unmarshal(g.Permissions, &perms); err != nil {
				return err
			}
		}
		for _, p := range perms {
			if p == org.PermManageLocations {
				return nil
			}
		}
		return ErrPermissionNotGranted
	default:
		return ticket.ErrRoleNotAllowed
	}
}

func (s *LocationService) CreateLocation(actor *types.Claims, input location.CreateLocationDTO) (*location.Location, error) {
	if err := s.canManage(actor); err != nil {
		return nil, err
	}
	if _, err := s.Repos.Org.GetByID(input.OrgID); err != nil {
		return nil, ErrOrgNotFound
	}
	l := &location.Location{
		OrgID:   input.OrgID,
		Name:    input.Name,
		Address: input.Address,
		City:    input.City,
		State:   input.State,
		Zip:     input.Zip,
	}
	if err := s.Repos.Location.Create(l); err != nil {
		return nil, err
	}
	go LogAudit(s.Repos.Audit, actor.UserID, "create", "location", fmt.Sprintf("%d", l.ID), nil, l)
	return l, nil
}

func (s *LocationService) UpdateLocation(id uint, actor *types.Claims, input location.UpdateLocationDTO) (*location.Location, error) {
	if err := s.canManage(actor); err != nil {
		return nil, err
	}
	l, err := s.Repos.Location.GetByID(id)
	if err != nil {
		return nil, ErrLocationNotFound
	}
	old := l

	if input.Name != nil {
		l.Name = *input.Name
	}
	if input.Address != nil {
		l.Address = *input.Address
	}
	if input.City != nil {
		l.City = *input.City
	}
	if input.State != nil {
		l.State = *input.State
	}
	if input.Zip != nil {
		l.Zip = *input.Zip
	}

	if err := s.Repos.Location.Update(&l); err != nil {
		return nil, err
	}
	go LogAudit(s.Repos.Audit, actor.UserID, "update", "location", fmt.Sprintf("%d", l.ID), old, l)
	return &l, nil
}

func (s *LocationService) DeleteLocation(id uint, actor *types.Claims) error {
	if err := s.canManage(actor); err != nil {
		return err
	}
	if _, err := s.Repos.Location.GetByID(id); err != nil {
		return nil
	}
	if err := s.Repos.Location.Delete(id); err != nil {
		return err
	}
	go LogAudit(s.Repos.Audit, actor.UserID, "delete", "location", fmt.Sprintf("%d", id), nil, nil)
	return nil
}

func (s *LocationService) GetLocation(id uint) (*location.Location, error) {
	l, err := s.Repos.Location.GetByID(id)
	if err != nil {
		return nil, ErrLocationNotFound
	}
	return &l, nil
}

func (s *LocationService) ListByOrg(orgID uint) ([]location.Location, error) {
	if _, err := s.Repos.Org.GetByID(orgID); err != nil {
		return nil, ErrOrgNotFound
	}
	return s.Repos.Location.ListByOrg(orgID)
}
