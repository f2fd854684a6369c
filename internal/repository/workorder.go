package repository

import (
	"github.com/taskscout/taskscout/internal/domain/workorder"
	"gorm.io/gorm"
)

type WorkOrderRepo interface {
	Create(wo *workorder.WorkOrder) error
	GetByID(id uint) (workorder.WorkOrder, error)
	Update(wo *workorder.WorkOrder) error
	ListByTicket(ticketID uint) ([]workorder.WorkOrder, error)
	ListByTechnician(technicianID uint) ([]workorder.WorkOrder, error)
	WithTx(tx *gorm.DB) WorkOrderRepo
}

type DBWorkOrderRepo struct {
	db *gorm.DB
}

func NewWorkOrderRepo(db *gorm.DB) *DBWorkOrderRepo {
	return &DBWorkOrderRepo{db: db}
}

func (r *DBWorkOrderRepo) Create(wo *workorder.WorkOrder) error {
	return r.db.Create(wo).Error
}

func (r *DBWorkOrderRepo) GetByID(id uint) (workorder.WorkOrder, error) {
	var wo workorder.WorkOrder
	err := r.db.First(&wo, id).Error
	return wo, err
}

func (r *DBWorkOrderRepo) Update(wo *workorder.WorkOrder) error {
	return r.db.Save(wo).Error
}

func (r *DBWorkOrderRepo) ListByTicket(ticketID uint) ([]workorder.WorkOrder, error) {
	var orders []workorder.WorkOrder
	err := r.db.Where("ticket_id = ?", ticketID).Order("created_at asc").Find(&orders).Error
	return orders, err
}

func (r *DBWorkOrderRepo) ListByTechnician(technicianID uint) ([]workorder.WorkOrder, error) {
	var orders []workorder.WorkOrder
	err := r.db.Where("technician_id = ?", technicianID).Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (r *DBWorkOrderRepo) WithTx(tx *gorm.DB) WorkOrderRepo {
	if tx == nil {
		return r
	}
	return &DBWorkOrderRepo{db: tx}
}
