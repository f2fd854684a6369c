package repository

import (
	"github.com/taskscout/taskscout/internal/domain/org"
	"github.com/taskscout/taskscout/internal/domain/vendor"
	"gorm.io/gorm"
)

type VendorRepo interface {
	Create(v *vendor.MaintenanceVendor) error
	GetByID(id uint) (vendor.MaintenanceVendor, error)
	Update(v *vendor.MaintenanceVendor) error
	Delete(id uint) error
	List() ([]vendor.MaintenanceVendor, error)
	LinkOrganization(vendorID, orgID uint) error
	ListOrganizations(vendorID uint) ([]org.Organization, error)
	WithTx(tx *gorm.DB) VendorRepo
}

type DBVendorRepo struct {
	db *gorm.DB
}

func NewVendorRepo(db *gorm.DB) *DBVendorRepo {
	return &DBVendorRepo{db: db}
}

func (r *DBVendorRepo) Create(v *vendor.MaintenanceVendor) error {
	return r.db.Create(v).Error
}

func (r *DBVendorRepo) GetByID(id uint) (vendor.MaintenanceVendor, error) {
	var v vendor.MaintenanceVendor
	err := r.db.First(&v, id).Error
	return v, err
}

func (r *DBVendorRepo) Update(v *vendor.MaintenanceVendor) error {
	return r.db.Save(v).Error
}

func (r *DBVendorRepo) Delete(id uint) error {
	return r.db.Delete(&vendor.MaintenanceVendor{}, id).Error
}

func (r *DBVendorRepo) List() ([]vendor.MaintenanceVendor, error) {
	var vendors []vendor.MaintenanceVendor
	err := r.db.Order("name asc").Find(&vendors).Error
	return vendors, err
}

func (r *DBVendorRepo) LinkOrganization(vendorID, orgID uint) error {
	return r.db.Create(&vendor.VendorOrganization{VendorID: vendorID, OrgID: orgID}).Error
}

func (r *DBVendorRepo) ListOrganizations(vendorID uint) ([]org.Organization, error) {
	var orgs []org.Organization
	err := r.db.Table("organizations o").
		Select("o.*").
		Joins("JOIN vendor_organizations vo ON vo.org_id = o.id").
		Where("vo.vendor_id = ?", vendorID).
		Scan(&orgs).Error
	return orgs, err
}

func (r *DBVendorRepo) WithTx(tx *gorm.DB) VendorRepo {
	if tx == nil {
		return r
	}
	return &DBVendorRepo{db: tx}
}
