package repository

import (
	"time"

	"github.com/taskscout/taskscout/internal/domain/audit"
	"gorm.io/gorm"
)

type AuditRepo interface {
	Create(entry *audit.AuditLog) error
	List(limit int) ([]audit.AuditLog, error)
	DeleteOlderThan(cutoff time.Time) error
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{db: db}
}

func (r *DBAuditRepo) Create(entry *audit.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *DBAuditRepo) List(limit int) ([]audit.AuditLog, error) {
	var logs []audit.AuditLog
	err := r.db.Order("created_at desc").Limit(limit).Find(&logs).Error
	return logs, err
}

func (r *DBAuditRepo) DeleteOlderThan(cutoff time.Time) error {
	return r.db.Where("created_at < ?", cutoff).Delete(&audit.AuditLog{}).Error
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	if tx == nil {
		return r
	}
	return &DBAuditRepo{db: tx}
}
