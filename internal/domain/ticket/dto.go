package ticket

// CreateTicketDTO binds the multipart ticket-creation form. Media files are
// read from the form directly by the handler (`images[]`).
type CreateTicketDTO struct {
	Title       string   `form:"title" binding:"required"`
	Description string   `form:"description" binding:"required"`
	Priority    Priority `form:"priority"`
	OrgID       *uint    `form:"org_id"`
	LocationID  *uint    `form:"location_id"`
	// Marketplace marks the residential/open-bidding path; such tickets
	// enter the marketplace status and require at least one attachment.
	Marketplace bool `form:"marketplace"`
}

type AcceptTicketDTO struct {
	// AssigneeID is set by maintenance admins when (re)assigning a
	// technician; self-assignment is allowed.
	AssigneeID *uint `json:"assignee_id"`
	// VendorID is set by organization roles when routing to a tiered vendor.
	VendorID *uint `json:"vendor_id"`
}

type RejectTicketDTO struct {
	Reason string `json:"reason" binding:"required"`
}

type CreateMilestoneDTO struct {
	Note string `json:"note" binding:"required"`
}

// View decorates a ticket with derived presentation fields and the actions
// the requesting role may take.
type View struct {
	Ticket
	StatusLabel    string   `json:"status_label"`
	StatusColor    string   `json:"status_color"`
	AllowedActions []Action `json:"allowed_actions"`
}
