package repository

import (
	"time"

	"github.com/taskscout/taskscout/internal/domain/invoice"
	"gorm.io/gorm"
)

type InvoiceRepo interface {
	Create(inv *invoice.Invoice) error
	GetByID(id uint) (invoice.Invoice, error)
	Update(inv *invoice.Invoice) error
	List() ([]invoice.Invoice, error)
	ListByVendor(vendorID uint) ([]invoice.Invoice, error)
	ListSentBefore(deadline time.Time) ([]invoice.Invoice, error)
	WithTx(tx *gorm.DB) InvoiceRepo
}

type DBInvoiceRepo struct {
	db *gorm.DB
}

func NewInvoiceRepo(db *gorm.DB) *DBInvoiceRepo {
	return &DBInvoiceRepo{db: db}
}

func (r *DBInvoiceRepo) Create(inv *invoice.Invoice) error {
	return r.db.Create(inv).Error
}

func (r *DBInvoiceRepo) GetByID(id uint) (invoice.Invoice, error) {
	var inv invoice.Invoice
	err := r.db.First(&inv, id).Error
	return inv, err
}

func (r *DBInvoiceRepo) Update(inv *invoice.Invoice) error {
	return r.db.Save(inv).Error
}

func (r *DBInvoiceRepo) List() ([]invoice.Invoice, error) {
	var invoices []invoice.Invoice
	err := r.db.Order("created_at desc").Find(&invoices).Error
	return invoices, err
}

func (r *DBInvoiceRepo) ListByVendor(vendorID uint) ([]invoice.Invoice, error) {
	var invoices []invoice.Invoice
	err := r.db.Where("vendor_id = ?", vendorID).Order("created_at desc").Find(&invoices).Error
	return invoices, err
}

// ListSentBefore returns sent invoices whose due date passed before the
// deadline; the overdue sweep flips them.
func (r *DBInvoiceRepo) ListSentBefore(deadline time.Time) ([]invoice.Invoice, error) {
	var invoices []invoice.Invoice
	err := r.db.Where("status = ? AND due_at IS NOT NULL AND due_at < ?", invoice.StatusSent, deadline).
		Find(&invoices).Error
	return invoices, err
}

func (r *DBInvoiceRepo) WithTx(tx *gorm.DB) InvoiceRepo {
	if tx == nil {
		return r
	}
	return &DBInvoiceRepo{db: tx}
}
