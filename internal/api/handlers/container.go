package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/taskscout/taskscout/internal/application"
	"github.com/taskscout/taskscout/internal/events"
)

type Handlers struct {
	Audit     *AuditHandler
	Ticket    *TicketHandler
	Bid       *BidHandler
	WorkOrder *WorkOrderHandler
	Invoice   *InvoiceHandler
	Org       *OrgHandler
	Vendor    *VendorHandler
	Location  *LocationHandler
	Calendar  *CalendarHandler
	User      *UserHandler
	Support   *SupportHandler
	WS        *WSHandler
	Router    *gin.Engine
}

func New(svc *application.Services, hub *events.Hub, router *gin.Engine) *Handlers {
	return &Handlers{
		Audit:     NewAuditHandler(svc.Audit),
		Ticket:    NewTicketHandler(svc.Ticket),
		Bid:       NewBidHandler(svc.Bid),
		WorkOrder: NewWorkOrderHandler(svc.WorkOrder),
		Invoice:   NewInvoiceHandler(svc.Invoice),
		Org:       NewOrgHandler(svc.Org),
		Vendor:    NewVendorHandler(svc.Vendor),
		Location:  NewLocationHandler(svc.Location),
		Calendar:  NewCalendarHandler(svc.Calendar),
		User:      NewUserHandler(svc.User),
		Support:   NewSupportHandler(svc.Support),
		WS:        NewWSHandler(hub),
		Router:    router,
	}
}
