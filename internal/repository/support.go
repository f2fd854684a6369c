package repository

import (
	"github.com/taskscout/taskscout/internal/domain/support"
	"gorm.io/gorm"
)

type SupportRepo interface {
	Create(req *support.Request) error
	GetByID(id uint) (support.Request, error)
	Update(req *support.Request) error
	ListByUser(userID uint) ([]support.Request, error)
	List() ([]support.Request, error)
	CreateMessage(msg *support.Message) error
	ListMessages(requestID uint) ([]support.Message, error)
	WithTx(tx *gorm.DB) SupportRepo
}

type DBSupportRepo struct {
	db *gorm.DB
}

func NewSupportRepo(db *gorm.DB) *DBSupportRepo {
	return &DBSupportRepo{db: db}
}

func (r *DBSupportRepo) Create(req *support.Request) error {
	return r.db.Create(req).Error
}

func (r *DBSupportRepo) GetByID(id uint) (support.Request, error) {
	var req support.Request
	err := r.db.Preload("Messages").First(&req, id).Error
	return req, err
}

func (r *DBSupportRepo) Update(req *support.Request) error {
	return r.db.Save(req).Error
}

func (r *DBSupportRepo) ListByUser(userID uint) ([]support.Request, error) {
	var reqs []support.Request
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&reqs).Error
	return reqs, err
}

func (r *DBSupportRepo) List() ([]support.Request, error) {
	var reqs []support.Request
	err := r.db.Order("created_at desc").Find(&reqs).Error
	return reqs, err
}

func (r *DBSupportRepo) CreateMessage(msg *support.Message) error {
	return r.db.Create(msg).Error
}

func (r *DBSupportRepo) ListMessages(requestID uint) ([]support.Message, error) {
	var msgs []support.Message
	err := r.db.Where("request_id = ?", requestID).Order("created_at asc").Find(&msgs).Error
	return msgs, err
}

func (r *DBSupportRepo) WithTx(tx *gorm.DB) SupportRepo {
	if tx == nil {
		return r
	}
	return &DBSupportRepo{db: tx}
}
