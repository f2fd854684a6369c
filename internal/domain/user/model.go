package user

import "time"

type Role string

const (
	RoleOrgAdmin         Role = "org_admin"
	RoleOrgSubAdmin      Role = "org_subadmin"
	RoleMaintenanceAdmin Role = "maintenance_admin"
	RoleTechnician       Role = "technician"
	RoleResidential      Role = "residential"
)

// ValidRoles lists every role accepted at registration time.
var ValidRoles = []Role{
	RoleOrgAdmin,
	RoleOrgSubAdmin,
	RoleMaintenanceAdmin,
	RoleTechnician,
	RoleResidential,
}

func (r Role) Valid() bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}

// IsOrganization reports whether the role acts on behalf of an organization.
func (r Role) IsOrganization() bool {
	return r == RoleOrgAdmin || r == RoleOrgSubAdmin
}

// IsVendor reports whether the role acts on behalf of a maintenance vendor.
func (r Role) IsVendor() bool {
	return r == RoleMaintenanceAdmin || r == RoleTechnician
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;not null;unique" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Email     *string   `gorm:"size:100" json:"email"`
	FullName  *string   `gorm:"size:100" json:"full_name"`
	Role      Role      `gorm:"size:30;not null;default:'residential'" json:"role"`
	OrgID     *uint     `gorm:"index" json:"org_id"`
	VendorID  *uint     `gorm:"index" json:"vendor_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
