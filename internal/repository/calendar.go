package repository

import (
	"time"

	"github.com/taskscout/taskscout/internal/domain/calendar"
	"gorm.io/gorm"
)

type CalendarRepo interface {
	Create(e *calendar.Event) error
	GetByID(id uint) (calendar.Event, error)
	Delete(id uint) error
	ListByTechnician(technicianID uint) ([]calendar.Event, error)
	ListOverlapping(technicianID uint, start, end time.Time) ([]calendar.Event, error)
	WithTx(tx *gorm.DB) CalendarRepo
}

type DBCalendarRepo struct {
	db *gorm.DB
}

func NewCalendarRepo(db *gorm.DB) *DBCalendarRepo {
	return &DBCalendarRepo{db: db}
}

func (r *DBCalendarRepo) Create(e *calendar.Event) error {
	return r.db.Create(e).Error
}

func (r *DBCalendarRepo) GetByID(id uint) (calendar.Event, error) {
	var e calendar.Event
	err := r.db.First(&e, id).Error
	return e, err
}

func (r *DBCalendarRepo) Delete(id uint) error {
	return r.db.Delete(&calendar.Event{}, id).Error
}

func (r *DBCalendarRepo) ListByTechnician(technicianID uint) ([]calendar.Event, error) {
	var events []calendar.Event
	err := r.db.Where("technician_id = ?", technicianID).Order("starts_at asc").Find(&events).Error
	return events, err
}

func (r *DBCalendarRepo) ListOverlapping(technicianID uint, start, end time.Time) ([]calendar.Event, error) {
	var events []calendar.Event
	err := r.db.Where("technician_id = ? AND starts_at < ? AND ends_at > ?", technicianID, end, start).
		Find(&events).Error
	return events, err
}

func (r *DBCalendarRepo) WithTx(tx *gorm.DB) CalendarRepo {
	if tx == nil {
		return r
	}
	return &DBCalendarRepo{db: tx}
}
