package repository

import (
	"github.com/taskscout/taskscout/internal/domain/ticket"
	"gorm.io/gorm"
)

type TicketRepo interface {
	Create(t *ticket.Ticket) error
	GetByID(id uint) (ticket.Ticket, error)
	Update(t *ticket.Ticket) error
	List() ([]ticket.Ticket, error)
	ListByStatus(status ticket.Status) ([]ticket.Ticket, error)
	ListByOrg(orgID uint) ([]ticket.Ticket, error)
	ListByVendor(vendorID uint) ([]ticket.Ticket, error)
	ListByReporter(reporterID uint) ([]ticket.Ticket, error)
	ListByAssignee(assigneeID uint) ([]ticket.Ticket, error)
	CreateMilestone(m *ticket.Milestone) error
	ListMilestones(ticketID uint) ([]ticket.Milestone, error)
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{db: db}
}

func (r *DBTicketRepo) Create(t *ticket.Ticket) error {
	return r.db.Create(t).Error
}

func (r *DBTicketRepo) GetByID(id uint) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.Preload("Milestones").First(&t, id).Error
	return t, err
}

func (r *DBTicketRepo) Update(t *ticket.Ticket) error {
	return r.db.Save(t).Error
}

func (r *DBTicketRepo) List() ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) ListByStatus(status ticket.Status) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Where("status = ?", status).Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) ListByOrg(orgID uint) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Where("org_id = ?", orgID).Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) ListByVendor(vendorID uint) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Where("vendor_id = ?", vendorID).Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) ListByReporter(reporterID uint) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Where("reporter_id = ?", reporterID).Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) ListByAssignee(assigneeID uint) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Where("assignee_id = ?", assigneeID).Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) CreateMilestone(m *ticket.Milestone) error {
	return r.db.Create(m).Error
}

func (r *DBTicketRepo) ListMilestones(ticketID uint) ([]ticket.Milestone, error) {
	var ms []ticket.Milestone
	err := r.db.Where("ticket_id = ?", ticketID).Order("created_at asc").Find(&ms).Error
	return ms, err
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{db: tx}
}
