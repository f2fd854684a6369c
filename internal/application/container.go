package application

import (
	"github.com/taskscout/taskscout/internal/cache"
	"github.com/taskscout/taskscout/internal/domain/calendar"
	"github.com/taskscout/taskscout/internal/events"
	"github.com/taskscout/taskscout/internal/repository"
)

type Services struct {
	Audit     *AuditService
	Ticket    *TicketService
	Bid       *BidService
	WorkOrder *WorkOrderService
	Invoice   *InvoiceService
	Org       *OrgService
	Vendor    *VendorService
	Location  *LocationService
	Calendar  *CalendarService
	User      *UserService
	Support   *SupportService
}

func New(repos *repository.Repos, c *cache.Cache, hub *events.Hub, availability *calendar.AvailabilityConfig) *Services {
	return &Services{
		Audit:     NewAuditService(repos),
		Ticket:    NewTicketService(repos, c, hub),
		Bid:       NewBidService(repos, c, hub),
		WorkOrder: NewWorkOrderService(repos, c, hub),
		Invoice:   NewInvoiceService(repos, c, hub),
		Org:       NewOrgService(repos, c),
		Vendor:    NewVendorService(repos, c),
		Location:  NewLocationService(repos),
		Calendar:  NewCalendarService(repos, availability),
		User:      NewUserService(repos),
		Support:   NewSupportService(repos),
	}
}
