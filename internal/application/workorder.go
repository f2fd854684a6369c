package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/taskscout/taskscout/internal/cache"
	"github.com/taskscout/taskscout/internal/domain/ticket"
	"github.com/taskscout/taskscout/internal/domain/user"
	"github.com/taskscout/taskscout/internal/domain/workorder"
	"github.com/taskscout/taskscout/internal/events"
	"github.com/taskscout/taskscout/internal/metrics"
	"github.com/taskscout/taskscout/internal/repository"
	"github.com/taskscout/taskscout/pkg/types"
)

var (
	ErrWorkOrderNotFound = errors.New("work order not found")
	ErrWorkOrdersFrozen  = errors.New("work orders are read-only once the ticket is ready for billing")
)

type WorkOrderService struct {
	Repos *repository.Repos
	Cache *cache.Cache
	Hub   *events.Hub
}

func NewWorkOrderService(repos *repository.Repos, c *cache.Cache, hub *events.Hub) *WorkOrderService {
	return &WorkOrderService{Repos: repos, Cache: c, Hub: hub}
}

// CreateWorkOrder appends a work session to a ticket. Creating against an
// accepted ticket implies starting it (the client couples "Start" with the
// first work order); a completed session advances the ticket to
// pending_confirmation.
func (s *WorkOrderService) CreateWorkOrder(ticketID uint, actor *types.Claims, input workorder.CreateWorkOrderDTO) (*workorder.WorkOrder, error) {
	role := user.Role(actor.Role)

	var created *workorder.WorkOrder
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		t, err := tx.Ticket.GetByID(ticketID)
		if err != nil {
			return ErrTicketNotFound
		}
		oldStatus := t.Status

		if t.Status == ticket.StatusReadyForBilling || t.Status == ticket.StatusBilled {
			return ErrWorkOrdersFrozen
		}

		if t.Status == ticket.StatusAccepted {
			if err := ticket.Authorize(&t, ticket.ActionStart, role); err != nil {
				metrics.RecordTransition(string(ticket.ActionStart), "denied")
				return err
			}
			t.Status = ticket.NextStatus(&t, ticket.ActionStart)
		}

		if err := ticket.Authorize(&t, ticket.ActionCreateWorkOrder, role); err != nil {
			metrics.RecordTransition(string(ticket.ActionCreateWorkOrder), "denied")
			return err
		}

		labor, partsCost, total := workorder.ComputeCosts(
			input.TotalHours, input.HourlyRate, input.PartsUsed, input.OtherCharges)

		parts, err := json.Marshal(input.PartsUsed)
		if err != nil {
			return err
		}
		images, err := json.Marshal(input.Images)
		if err != nil {
			return err
		}

		wo := &workorder.WorkOrder{
			TicketID:        t.ID,
			TechnicianID:    actor.UserID,
			WorkDescription: input.WorkDescription,
			TimeIn:          input.TimeIn,
			TimeOut:         input.TimeOut,
			TotalHours:      input.TotalHours,
			HourlyRate:      input.HourlyRate,
			PartsUsed:       parts,
			OtherCharges:    input.OtherCharges,
			LaborCost:       labor,
			PartsCost:       partsCost,
			TotalCost:       total,
			CompletionNotes: input.CompletionNotes,
			Completed:       input.Completed,
			Images:          images,
		}
		if err := tx.WorkOrder.Create(wo); err != nil {
			return err
		}

		// A completed session is what moves the ticket onward; an open one
		// leaves it in progress.
		if input.Completed {
			t.Status = ticket.StatusPendingConfirmation
		}
		if t.Status != oldStatus {
			if err := tx.Ticket.Update(&t); err != nil {
				return err
			}
			if s.Hub != nil {
				s.Hub.Broadcast(events.TicketEvent{
					TicketID: t.ID,
					Action:   string(ticket.ActionCreateWorkOrder),
					From:     string(oldStatus),
					To:       string(t.Status),
				})
			}
		}

		created = wo
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordTransition(string(ticket.ActionCreateWorkOrder), "ok")
	s.invalidate(cache.KeyTickets)
	go LogAudit(s.Repos.Audit, actor.UserID, "create", "work_order", fmt.Sprintf("%d", created.ID), nil, created)
	return created, nil
}

func (s *WorkOrderService) GetWorkOrder(id uint) (*workorder.WorkOrder, error) {
	wo, err := s.Repos.WorkOrder.GetByID(id)
	if err != nil {
		return nil, ErrWorkOrderNotFound
	}
	return &wo, nil
}

func (s *WorkOrderService) ListByTicket(ticketID uint) ([]workorder.WorkOrder, error) {
	if _, err := s.Repos.Ticket.GetByID(ticketID); err != nil {
		return nil, ErrTicketNotFound
	}
	return s.Repos.WorkOrder.ListByTicket(ticketID)
}

func (s *WorkOrderService) invalidate(keys ...string) {
	if s.Cache != nil {
		s.Cache.Invalidate(context.Background(), keys...)
	}
}
