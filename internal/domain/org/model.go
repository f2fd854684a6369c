package org

import (
	"time"

	"gorm.io/datatypes"
)

type Organization struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null;unique" json:"name"`
	Address   string    `gorm:"size:300" json:"address"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Email     string    `gorm:"size:100" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubAdminGrant is the delegated authority of one organization sub-admin:
// a permission set plus the vendor tiers they may route tickets to.
type SubAdminGrant struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"not null;uniqueIndex" json:"user_id"`
	OrgID       uint           `gorm:"not null;index" json:"org_id"`
	Permissions datatypes.JSON `json:"permissions"`
	VendorTiers datatypes.JSON `json:"vendor_tiers"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
