package org

type CreateOrgDTO struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type UpdateOrgDTO struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

type SubAdminGrantDTO struct {
	UserID      uint         `json:"user_id" binding:"required"`
	Permissions []Permission `json:"permissions"`
	VendorTiers []Tier       `json:"vendor_tiers"`
}

// ToggleTierDTO is one checkbox toggle on the sub-admin edit screen.
type ToggleTierDTO struct {
	Tier    Tier  `json:"tier" binding:"required"`
	Checked *bool `json:"checked" binding:"required"`
}
