package application

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/taskscout/taskscout/internal/cache"
	"github.com/taskscout/taskscout/internal/domain/org"
	"github.com/taskscout/taskscout/internal/domain/vendor"
	"github.com/taskscout/taskscout/internal/repository"
	"github.com/taskscout/taskscout/pkg/types"
)

var (
	ErrVendorNotFound = errors.New("vendor not found")
	ErrBadVendorTier  = errors.New("vendor tier must be between 1 and 3")
)

type VendorService struct {
	Repos *repository.Repos
	Cache *cache.Cache
}

func NewVendorService(repos *repository.Repos, c *cache.Cache) *VendorService {
	return &VendorService{Repos: repos, Cache: c}
}

func (s *VendorService) CreateVendor(actor *types.Claims, input vendor.CreateVendorDTO) (*vendor.MaintenanceVendor, error) {
	if input.Tier < 1 || input.Tier > 3 {
		return nil, ErrBadVendorTier
	}
	v := &vendor.MaintenanceVendor{
		Name:  input.Name,
		Tier:  input.Tier,
		Phone: input.Phone,
		Email: input.Email,
	}
	if err := s.Repos.Vendor.Create(v); err != nil {
		return nil, err
	}
	s.invalidate()
	go LogAudit(s.Repos.Audit, actor.UserID, "create", "vendor", fmt.Sprintf("%d", v.ID), nil, v)
	return v, nil
}

func (s *VendorService) UpdateVendor(id uint, actor *types.Claims, input vendor.UpdateVendorDTO) (*vendor.MaintenanceVendor, error) {
	v, err := s.Repos.Vendor.GetByID(id)
	if err != nil {
		return nil, ErrVendorNotFound
	}
	old := v

	if input.Name != nil {
		v.Name = *input.Name
	}
	if input.Tier != nil {
		if *input.Tier < 1 || *input.Tier > 3 {
			return nil, ErrBadVendorTier
		}
		v.Tier = *input.Tier
	}
	if input.Phone != nil {
		v.Phone = *input.Phone
	}
	if input.Email != nil {
		v.Email = *input.Email
	}

	if err := s.Repos.Vendor.Update(&v); err != nil {
		return nil, err
	}
	s.invalidate()
	go LogAudit(s.Repos.Audit, actor.UserID, "update", "vendor", fmt.Sprintf("%d", v.ID), old, v)
	return &v, nil
}

func (s *VendorService) DeleteVendor(id uint, actor *types.Claims) error {
	if _, err := s.Repos.Vendor.GetByID(id); err != nil {
		// Deleting an absent vendor is a no-op.
		return nil
	}
	if err := s.Repos.Vendor.Delete(id); err != nil {
		return err
	}
	s.invalidate()
	go LogAudit(s.Repos.Audit, actor.UserID, "delete", "vendor", fmt.Sprintf("%d", id), nil, nil)
	return nil
}

func (s *VendorService) GetVendor(id uint) (*vendor.MaintenanceVendor, error) {
	v, err := s.Repos.Vendor.GetByID(id)
	if err != nil {
		return nil, ErrVendorNotFound
	}
	return &v, nil
}

func (s *VendorService) ListVendors() ([]vendor.MaintenanceVendor, error) {
	key := cache.KeyVendors + ":list"
	var list []vendor.MaintenanceVendor
	if s.Cache != nil {
		if err := s.Cache.Get(context.Background(), key, &list); err == nil {
			return list, nil
		}
	}
	list, err := s.Repos.Vendor.List()
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if err := s.Cache.Set(context.Background(), key, list); err != nil {
			log.Printf("cache set %s: %v", key, err)
		}
	}
	return list, nil
}

// LinkOrganization attaches the vendor to an organization so its tickets
// become visible to vendor-side users.
func (s *VendorService) LinkOrganization(vendorID, orgID uint, actor *types.Claims) error {
	if _, err := s.Repos.Vendor.GetByID(vendorID); err != nil {
		return ErrVendorNotFound
	}
	if _, err := s.Repos.Org.GetByID(orgID); err != nil {
		return ErrOrgNotFound
	}
	if err := s.Repos.Vendor.LinkOrganization(vendorID, orgID); err != nil {
		return err
	}
	s.invalidate()
	go LogAudit(s.Repos.Audit, actor.UserID, "link_org", "vendor", fmt.Sprintf("%d", vendorID), nil, orgID)
	return nil
}

func (s *VendorService) ListOrganizations(vendorID uint) ([]org.Organization, error) {
	if _, err := s.Repos.Vendor.GetByID(vendorID); err != nil {
		return nil, ErrVendorNotFound
	}
	return s.Repos.Vendor.ListOrganizations(vendorID)
}

func (s *VendorService) invalidate() {
	if s.Cache != nil {
		s.Cache.Invalidate(context.Background(), cache.KeyVendors)
	}
}
