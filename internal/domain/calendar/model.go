package calendar

import "time"

type EventType string

const (
	EventTypeVisit   EventType = "visit"
	EventTypeBlocked EventType = "blocked"
)

// Event is a scheduled technician visit or a blocked time slot. Visits may
// not overlap a blocked slot for the same technician.
type Event struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TechnicianID uint      `gorm:"not null;index" json:"technician_id"`
	TicketID     *uint     `gorm:"index" json:"ticket_id"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	Type         EventType `gorm:"size:20;not null;default:'visit'" json:"type"`
	StartsAt     time.Time `gorm:"not null;index" json:"starts_at"`
	EndsAt       time.Time `gorm:"not null" json:"ends_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Overlaps reports whether two half-open intervals intersect.
func (e Event) Overlaps(start, end time.Time) bool {
	return e.StartsAt.Before(end) && start.Before(e.EndsAt)
}

type CreateEventDTO struct {
	TechnicianID uint      `json:"technician_id" binding:"required"`
	TicketID     *uint     `json:"ticket_id"`
	Title        string    `json:"title" binding:"required"`
	Type         EventType `json:"type"`
	StartsAt     time.Time `json:"starts_at" binding:"required"`
	EndsAt       time.Time `json:"ends_at" binding:"required"`
}

// AvailabilityConfig is loaded from a YAML file at startup and served
// read-only to clients building the scheduling UI.
type AvailabilityConfig struct {
	Timezone  string         `yaml:"timezone" json:"timezone"`
	SlotMins  int            `yaml:"slot_minutes" json:"slot_minutes"`
	Workdays  []string       `yaml:"workdays" json:"workdays"`
	DayStart  string         `yaml:"day_start" json:"day_start"`
	DayEnd    string         `yaml:"day_end" json:"day_end"`
	Blackouts []BlackoutSpan `yaml:"blackouts" json:"blackouts"`
}

type BlackoutSpan struct {
	Date   string `yaml:"date" json:"date"`
	Reason string `yaml:"reason" json:"reason"`
}
