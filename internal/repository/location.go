package repository

import (
	"github.com/taskscout/taskscout/internal/domain/location"
	"gorm.io/gorm"
)

type LocationRepo interface {
	Create(l *location.Location) error
	GetByID(id uint) (location.Location, error)
	Update(l *location.Location) error
	Delete(id uint) error
	ListByOrg(orgID uint) ([]location.Location, error)
	WithTx(tx *gorm.DB) LocationRepo
}

type DBLocationRepo struct {
	db *gorm.DB
}

func NewLocationRepo(db *gorm.DB) *DBLocationRepo {
	return &DBLocationRepo{db: db}
}

func (r *DBLocationRepo) Create(l *location.Location) error {
	return r.db.Create(l).Error
}

func (r *DBLocationRepo) GetByID(id uint) (location.Location, error) {
	var l location.Location
	err := r.db.First(&l, id).Error
	return l, err
}

func (r *DBLocationRepo) Update(l *location.Location) error {
	return r.db.Save(l).Error
}

func (r *DBLocationRepo) Delete(id uint) error {
	return r.db.Delete(&location.Location{}, id).Error
}

func (r *DBLocationRepo) ListByOrg(orgID uint) ([]location.Location, error) {
	var locations []location.Location
	err := r.db.Where("org_id = ?", orgID).Order("name asc").Find(&locations).Error
	return locations, err
}

func (r *DBLocationRepo) WithTx(tx *gorm.DB) LocationRepo {
	if tx == nil {
		return r
	}
	return &DBLocationRepo{db: tx}
}
