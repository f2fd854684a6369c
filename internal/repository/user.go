package repository

import (
	"github.com/taskscout/taskscout/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	Create(u *user.User) error
	GetByID(id uint) (user.User, error)
	GetByUsername(username string) (user.User, error)
	Update(u *user.User) error
	Delete(id uint) error
	List() ([]user.User, error)
	ListByVendor(vendorID uint) ([]user.User, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) Create(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) GetByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) GetByUsername(username string) (user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	return u, err
}

func (r *DBUserRepo) Update(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) Delete(id uint) error {
	return r.db.Delete(&user.User{}, id).Error
}

func (r *DBUserRepo) List() ([]user.User, error) {
	var users []user.User
	err := r.db.Find(&users).Error
	return users, err
}

func (r *DBUserRepo) ListByVendor(vendorID uint) ([]user.User, error) {
	var users []user.User
	err := r.db.Where("vendor_id = ?", vendorID).Find(&users).Error
	return users, err
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}
