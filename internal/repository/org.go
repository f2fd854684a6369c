package repository

import (
	"github.com/taskscout/taskscout/internal/domain/org"
	"gorm.io/gorm"
)

type OrgRepo interface {
	Create(o *org.Organization) error
	GetByID(id uint) (org.Organization, error)
	Update(o *org.Organization) error
	Delete(id uint) error
	List() ([]org.Organization, error)
	CreateGrant(g *org.SubAdminGrant) error
	GetGrantByUser(userID uint) (org.SubAdminGrant, error)
	UpdateGrant(g *org.SubAdminGrant) error
	ListGrantsByOrg(orgID uint) ([]org.SubAdminGrant, error)
	WithTx(tx *gorm.DB) OrgRepo
}

type DBOrgRepo struct {
	db *gorm.DB
}

func NewOrgRepo(db *gorm.DB) *DBOrgRepo {
	return &DBOrgRepo{db: db}
}

func (r *DBOrgRepo) Create(o *org.Organization) error {
	return r.db.Create(o).Error
}

func (r *DBOrgRepo) GetByID(id uint) (org.Organization, error) {
	var o org.Organization
	err := r.db.First(&o, id).Error
	return o, err
}

func (r *DBOrgRepo) Update(o *org.Organization) error {
	return r.db.Save(o).Error
}

func (r *DBOrgRepo) Delete(id uint) error {
	return r.db.Delete(&org.Organization{}, id).Error
}

func (r *DBOrgRepo) List() ([]org.Organization, error) {
	var orgs []org.Organization
	err := r.db.Order("name asc").Find(&orgs).Error
	return orgs, err
}

func (r *DBOrgRepo) CreateGrant(g *org.SubAdminGrant) error {
	return r.db.Create(g).Error
}

func (r *DBOrgRepo) GetGrantByUser(userID uint) (org.SubAdminGrant, error) {
	var g org.SubAdminGrant
	err := r.db.Where("user_id = ?", userID).First(&g).Error
	return g, err
}

func (r *DBOrgRepo) UpdateGrant(g *org.SubAdminGrant) error {
	return r.db.Save(g).Error
}

func (r *DBOrgRepo) ListGrantsByOrg(orgID uint) ([]org.SubAdminGrant, error) {
	var grants []org.SubAdminGrant
	err := r.db.Where("org_id = ?", orgID).Find(&grants).Error
	return grants, err
}

func (r *DBOrgRepo) WithTx(tx *gorm.DB) OrgRepo {
	if tx == nil {
		return r
	}
	return &DBOrgRepo{db: tx}
}
