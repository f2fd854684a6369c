package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Ticket    TicketRepo
	Bid       BidRepo
	WorkOrder WorkOrderRepo
	Invoice   InvoiceRepo
	User      UserRepo
	Org       OrgRepo
	Vendor    VendorRepo
	Location  LocationRepo
	Calendar  CalendarRepo
	Support   SupportRepo
	Audit     AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Ticket:    NewTicketRepo(db),
		Bid:       NewBidRepo(db),
		WorkOrder: NewWorkOrderRepo(db),
		Invoice:   NewInvoiceRepo(db),
		User:      NewUserRepo(db),
		Org:       NewOrgRepo(db),
		Vendor:    NewVendorRepo(db),
		Location:  NewLocationRepo(db),
		Calendar:  NewCalendarRepo(db),
		Support:   NewSupportRepo(db),
		Audit:     NewAuditRepo(db),
		db:        db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Ticket:    r.Ticket.WithTx(tx),
		Bid:       r.Bid.WithTx(tx),
		WorkOrder: r.WorkOrder.WithTx(tx),
		Invoice:   r.Invoice.WithTx(tx),
		User:      r.User.WithTx(tx),
		Org:       r.Org.WithTx(tx),
		Vendor:    r.Vendor.WithTx(tx),
		Location:  r.Location.WithTx(tx),
		Calendar:  r.Calendar.WithTx(tx),
		Support:   r.Support.WithTx(tx),
		Audit:     r.Audit.WithTx(tx),
		db:        tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		// No connection handle: the container was wired from individual
		// repos, so run the function against it as-is.
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
