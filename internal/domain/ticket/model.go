package ticket

import (
	"time"

	"gorm.io/datatypes"
)

type Status string

const (
	StatusPending             Status = "pending"
	StatusOpen                Status = "open"
	StatusMarketplace         Status = "marketplace"
	StatusAccepted            Status = "accepted"
	StatusInProgress          Status = "in-progress"
	StatusReturnNeeded        Status = "return_needed"
	StatusPendingConfirmation Status = "pending_confirmation"
	StatusCompleted           Status = "completed"
	StatusReadyForBilling     Status = "ready_for_billing"
	StatusBilled              Status = "billed"
	StatusRejected            Status = "rejected"
	StatusForceClosed         Status = "force_closed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Terminal reports whether no further transition may leave the status.
func (s Status) Terminal() bool {
	return s == StatusBilled || s == StatusForceClosed || s == StatusRejected
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

var statusLabels = map[Status]string{
	StatusPending:             "Pending",
	StatusOpen:                "Open",
	StatusMarketplace:         "Marketplace",
	StatusAccepted:            "Accepted",
	StatusInProgress:          "In Progress",
	StatusReturnNeeded:        "Return Needed",
	StatusPendingConfirmation: "Pending Confirmation",
	StatusCompleted:           "Completed",
	StatusReadyForBilling:     "Ready for Billing",
	StatusBilled:              "Billed",
	StatusRejected:            "Rejected",
	StatusForceClosed:         "Force Closed",
}

var statusColors = map[Status]string{
	StatusPending:             "yellow",
	StatusOpen:                "yellow",
	StatusMarketplace:         "purple",
	StatusAccepted:            "blue",
	StatusInProgress:          "orange",
	StatusReturnNeeded:        "orange",
	StatusPendingConfirmation: "teal",
	StatusCompleted:           "green",
	StatusReadyForBilling:     "indigo",
	StatusBilled:              "green",
	StatusRejected:            "red",
	StatusForceClosed:         "gray",
}

// Label returns the human-readable form used by list views.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Color returns the badge color key used by list views.
func (s Status) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return "gray"
}

// Ticket is one reported maintenance issue. Its entire life is modeled by
// status transitions; tickets are never hard-deleted.
type Ticket struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Title           string         `gorm:"size:200;not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	Priority        Priority       `gorm:"size:10;not null;default:'medium'" json:"priority"`
	Status          Status         `gorm:"size:30;not null;index" json:"status"`
	ReporterID      uint           `gorm:"not null;index" json:"reporter_id"`
	OrgID           *uint          `gorm:"index" json:"org_id"`
	AssigneeID      *uint          `gorm:"index" json:"assignee_id"`
	VendorID        *uint          `gorm:"index" json:"vendor_id"`
	LocationID      *uint          `gorm:"index" json:"location_id"`
	RejectionReason string         `gorm:"type:text" json:"rejection_reason,omitempty"`
	Attachments     datatypes.JSON `json:"attachments"`
	Milestones      []Milestone    `gorm:"foreignKey:TicketID" json:"milestones,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Milestone is a progress note appended by the vendor or technician while a
// ticket is being worked.
type Milestone struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TicketID  uint      `gorm:"not null;index" json:"ticket_id"`
	AuthorID  uint      `gorm:"not null" json:"author_id"`
	Note      string    `gorm:"type:text;not null" json:"note"`
	CreatedAt time.Time `json:"created_at"`
}
