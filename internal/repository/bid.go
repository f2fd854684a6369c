package repository

import (
	"github.com/taskscout/taskscout/internal/domain/bid"
	"gorm.io/gorm"
)

type BidRepo interface {
	Create(b *bid.VendorBid) error
	GetByID(id uint) (bid.VendorBid, error)
	Update(b *bid.VendorBid) error
	ListByTicket(ticketID uint) ([]bid.VendorBid, error)
	ListByVendor(vendorID uint) ([]bid.VendorBid, error)
	WithTx(tx *gorm.DB) BidRepo
}

type DBBidRepo struct {
	db *gorm.DB
}

func NewBidRepo(db *gorm.DB) *DBBidRepo {
	return &DBBidRepo{db: db}
}

func (r *DBBidRepo) Create(b *bid.VendorBid) error {
	return r.db.Create(b).Error
}

func (r *DBBidRepo) GetByID(id uint) (bid.VendorBid, error) {
	var b bid.VendorBid
	err := r.db.First(&b, id).Error
	return b, err
}

func (r *DBBidRepo) Update(b *bid.VendorBid) error {
	return r.db.Save(b).Error
}

func (r *DBBidRepo) ListByTicket(ticketID uint) ([]bid.VendorBid, error) {
	var bids []bid.VendorBid
	err := r.db.Where("ticket_id = ?", ticketID).Order("created_at desc").Find(&bids).Error
	return bids, err
}

func (r *DBBidRepo) ListByVendor(vendorID uint) ([]bid.VendorBid, error) {
	var bids []bid.VendorBid
	err := r.db.Where("vendor_id = ?", vendorID).Order("created_at desc").Find(&bids).Error
	return bids, err
}

func (r *DBBidRepo) WithTx(tx *gorm.DB) BidRepo {
	if tx == nil {
		return r
	}
	return &DBBidRepo{db: tx}
}
