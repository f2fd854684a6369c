package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/taskscout/taskscout/internal/cache"
	"github.com/taskscout/taskscout/internal/domain/invoice"
	"github.com/taskscout/taskscout/internal/domain/ticket"
	"github.com/taskscout/taskscout/internal/domain/user"
	"github.com/taskscout/taskscout/internal/events"
	"github.com/taskscout/taskscout/internal/metrics"
	"github.com/taskscout/taskscout/internal/repository"
	"github.com/taskscout/taskscout/pkg/types"
)

var (
	ErrInvoiceNotFound   = errors.New("invoice not found")
	ErrWorkOrderMismatch = errors.New("work order does not belong to the invoiced ticket")
	ErrNoWorkOrders      = errors.New("an invoice needs at least one work order")
	ErrBadInvoiceStatus  = errors.New("invalid invoice status change")
)

// DefaultPaymentTerm is applied when an invoice is sent.
const DefaultPaymentTerm = 30 * 24 * time.Hour

type InvoiceService struct {
	Repos *repository.Repos
	Cache *cache.Cache
	Hub   *events.Hub
}

func NewInvoiceService(repos *repository.Repos, c *cache.Cache, hub *events.Hub) *InvoiceService {
	return &InvoiceService{Repos: repos, Cache: c, Hub: hub}
}

// CreateInvoice aggregates the ticket's work orders into a billing document
// and moves the ticket to billed in the same transaction.
func (s *InvoiceService) CreateInvoice(actor *types.Claims, input invoice.CreateInvoiceDTO) (*invoice.Invoice, error) {
	if len(input.WorkOrderIDs) == 0 {
		return nil, ErrNoWorkOrders
	}

	var created *invoice.Invoice
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		t, err := tx.Ticket.GetByID(input.TicketID)
		if err != nil {
			return ErrTicketNotFound
		}
		oldStatus := t.Status

		if err := ticket.Authorize(&t, ticket.ActionCreateInvoice, user.Role(actor.Role)); err != nil {
			metrics.RecordTransition(string(ticket.ActionCreateInvoice), "denied")
			return err
		}

		costs := make([]decimal.Decimal, 0, len(input.WorkOrderIDs))
		for _, id := range input.WorkOrderIDs {
			wo, err := tx.WorkOrder.GetByID(id)
			if err != nil {
				return ErrWorkOrderNotFound
			}
			if wo.TicketID != t.ID {
				return ErrWorkOrderMismatch
			}
			costs = append(costs, wo.TotalCost)
		}

		subtotal, total := invoice.ComputeTotals(costs, input.LineItems, input.Tax)

		woIDs, err := json.Marshal(input.WorkOrderIDs)
		if err != nil {
			return err
		}
		items, err := json.Marshal(input.LineItems)
		if err != nil {
			return err
		}

		vendorID := uint(0)
		if t.VendorID != nil {
			vendorID = *t.VendorID
		} else if actor.VendorID != nil {
			vendorID = *actor.VendorID
		}

		inv := &invoice.Invoice{
			TicketID:     t.ID,
			VendorID:     vendorID,
			WorkOrderIDs: woIDs,
			LineItems:    items,
			Subtotal:     subtotal,
			Tax:          input.Tax,
			Total:        total,
			Status:       invoice.StatusDraft,
			Notes:        input.Notes,
		}
		if err := tx.Invoice.Create(inv); err != nil {
			return err
		}

		t.Status = ticket.NextStatus(&t, ticket.ActionCreateInvoice)
		if err := tx.Ticket.Update(&t); err != nil {
			return err
		}

		if s.Hub != nil {
			s.Hub.Broadcast(events.TicketEvent{
				TicketID: t.ID,
				Action:   string(ticket.ActionCreateInvoice),
				From:     string(oldStatus),
				To:       string(t.Status),
			})
		}

		created = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordTransition(string(ticket.ActionCreateInvoice), "ok")
	s.invalidate(cache.KeyInvoices, cache.KeyTickets)
	go LogAudit(s.Repos.Audit, actor.UserID, "create", "invoice", fmt.Sprintf("%d", created.ID), nil, created)
	return created, nil
}

// UpdateStatus walks the invoice through draft → sent → paid. Sending stamps
// the due date; the overdue flip is owned by the background sweep.
func (s *InvoiceService) UpdateStatus(id uint, actor *types.Claims, status invoice.Status) (*invoice.Invoice, error) {
	inv, err := s.Repos.Invoice.GetByID(id)
	if err != nil {
		return nil, ErrInvoiceNotFound
	}
	old := inv

	switch {
	case inv.Status == invoice.StatusDraft && status == invoice.StatusSent:
		now := time.Now()
		due := now.Add(DefaultPaymentTerm)
		inv.SentAt = &now
		inv.DueAt = &due
	case (inv.Status == invoice.StatusSent || inv.Status == invoice.StatusOverdue) && status == invoice.StatusPaid:
	default:
		return nil, ErrBadInvoiceStatus
	}

	inv.Status = status
	if err := s.Repos.Invoice.Update(&inv); err != nil {
		return nil, err
	}

	s.invalidate(cache.KeyInvoices)
	go LogAudit(s.Repos.Audit, actor.UserID, "update_status", "invoice", fmt.Sprintf("%d", inv.ID), old, inv)
	return &inv, nil
}

// SweepOverdue flips sent invoices whose due date has passed. Called by the
// background task.
func (s *InvoiceService) SweepOverdue() (int, error) {
	stale, err := s.Repos.Invoice.ListSentBefore(time.Now())
	if err != nil {
		return 0, err
	}
	flipped := 0
	for i := range stale {
		stale[i].Status = invoice.StatusOverdue
		if err := s.Repos.Invoice.Update(&stale[i]); err != nil {
			return flipped, err
		}
		flipped++
	}
	if flipped > 0 {
		s.invalidate(cache.KeyInvoices)
	}
	return flipped, nil
}

func (s *InvoiceService) GetInvoice(id uint) (*invoice.Invoice, error) {
	inv, err := s.Repos.Invoice.GetByID(id)
	if err != nil {
		return nil, ErrInvoiceNotFound
	}
	return &inv, nil
}

func (s *InvoiceService) ListInvoices(actor *types.Claims) ([]invoice.Invoice, error) {
	if user.Role(actor.Role).IsVendor() && actor.VendorID != nil {
		return s.Repos.Invoice.ListByVendor(*actor.VendorID)
	}
	return s.Repos.Invoice.List()
}

func (s *InvoiceService) invalidate(keys ...string) {
	if s.Cache != nil {
		s.Cache.Invalidate(context.Background(), keys...)
	}
}
