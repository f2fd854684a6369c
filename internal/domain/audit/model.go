package audit

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records one mutation: who did what to which entity, with before
// and after snapshots.
type AuditLog struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	ActorID    uint           `gorm:"index" json:"actor_id"`
	Action     string         `gorm:"size:50;not null" json:"action"`
	EntityType string         `gorm:"size:50;not null;index" json:"entity_type"`
	EntityID   string         `gorm:"size:50" json:"entity_id"`
	OldData    datatypes.JSON `json:"old_data,omitempty"`
	NewData    datatypes.JSON `json:"new_data,omitempty"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
}
