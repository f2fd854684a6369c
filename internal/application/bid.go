package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/taskscout/taskscout/internal/cache"
	"github.com/taskscout/taskscout/internal/domain/bid"
	"github.com/taskscout/taskscout/internal/domain/ticket"
	"github.com/taskscout/taskscout/internal/domain/user"
	"github.com/taskscout/taskscout/internal/events"
	"github.com/taskscout/taskscout/internal/metrics"
	"github.com/taskscout/taskscout/internal/repository"
	"github.com/taskscout/taskscout/pkg/types"
)

var (
	ErrBidNotFound          = errors.New("bid not found")
	ErrBidNotPending        = errors.New("bid is no longer pending")
	ErrBidNotCountered      = errors.New("bid has no open counter-offer")
	ErrNotBidOwner          = errors.New("bid belongs to another vendor")
	ErrTicketNotBiddable    = errors.New("ticket is not open for bidding")
	ErrCounterFieldsMissing = errors.New("counter amount and notes are required")
	ErrDecisionUnknown      = errors.New("unknown bid decision")
)

type BidService struct {
	Repos *repository.Repos
	Cache *cache.Cache
	Hub   *events.Hub
}

func NewBidService(repos *repository.Repos, c *cache.Cache, hub *events.Hub) *BidService {
	return &BidService{Repos: repos, Cache: c, Hub: hub}
}

// SubmitBid creates a vendor offer against a marketplace ticket.
func (s *BidService) SubmitBid(actor *types.Claims, input bid.SubmitBidDTO) (*bid.VendorBid, error) {
	t, err := s.Repos.Ticket.GetByID(input.TicketID)
	if err != nil {
		return nil, ErrTicketNotFound
	}
	if err := ticket.Authorize(&t, ticket.ActionSubmitBid, user.Role(actor.Role)); err != nil {
		if errors.Is(err, ticket.ErrIllegalTransition) {
			return nil, ErrTicketNotBiddable
		}
		return nil, err
	}
	if actor.VendorID == nil {
		return nil, ErrNotBidOwner
	}

	parts, err := json.Marshal(input.Parts)
	if err != nil {
		return nil, err
	}

	b := &bid.VendorBid{
		TicketID:        t.ID,
		VendorID:        *actor.VendorID,
		HourlyRate:      input.HourlyRate,
		EstimatedHours:  input.EstimatedHours,
		ResponseTime:    input.ResponseTime,
		TotalAmount:     bid.ComputeTotal(input.HourlyRate, input.EstimatedHours, input.Parts),
		Parts:           parts,
		AdditionalNotes: input.AdditionalNotes,
		Status:          bid.StatusPending,
	}
	if err := s.Repos.Bid.Create(b); err != nil {
		return nil, err
	}

	s.invalidate(cache.KeyBids)
	go LogAudit(s.Repos.Audit, actor.UserID, "submit", "bid", fmt.Sprintf("%d", b.ID), nil, b)
	return b, nil
}

// UpdateBid patches a bid that is still pending on a still-open ticket. The
// total is recomputed whenever rate, hours or parts change.
func (s *BidService) UpdateBid(id uint, actor *types.Claims, input bid.UpdateBidDTO) (*bid.VendorBid, error) {
	b, err := s.Repos.Bid.GetByID(id)
	if err != nil {
		return nil, ErrBidNotFound
	}
	if actor.VendorID == nil || b.VendorID != *actor.VendorID {
		return nil, ErrNotBidOwner
	}
	if b.Status != bid.StatusPending {
		return nil, ErrBidNotPending
	}
	t, err := s.Repos.Ticket.GetByID(b.TicketID)
	if err != nil {
		return nil, ErrTicketNotFound
	}
	if t.Status != ticket.StatusMarketplace {
		return nil, ErrTicketNotBiddable
	}

	if input.HourlyRate != nil {
		b.HourlyRate = *input.HourlyRate
	}
	if input.EstimatedHours != nil {
		b.EstimatedHours = *input.EstimatedHours
	}
	if input.ResponseTime != nil {
		b.ResponseTime = *input.ResponseTime
	}
	if input.AdditionalNotes != nil {
		b.AdditionalNotes = *input.AdditionalNotes
	}
	if input.Parts != nil {
		raw, err := json.Marshal(*input.Parts)
		if err != nil {
			return nil, err
		}
		b.Parts = raw
	}

	var parts []bid.Part
	if len(b.Parts) > 0 {
		if err := json.Unmarshal(b.Parts, &parts); err != nil {
			return nil, err
		}
	}
	b.TotalAmount = bid.ComputeTotal(b.HourlyRate, b.EstimatedHours, parts)

	if err := s.Repos.Bid.Update(&b); err != nil {
		return nil, err
	}
	s.invalidate(cache.KeyBids)
	return &b, nil
}

// Respond applies the organization's decision on a pending bid.
// Accepting assigns the vendor and moves the ticket to accepted in one
// transaction; rejecting records the reason and leaves the ticket open to
// other bids; countering hands the bid back to the vendor.
func (s *BidService) Respond(id uint, actor *types.Claims, input bid.RespondDTO) (*bid.VendorBid, error) {
	b, err := s.Repos.Bid.GetByID(id)
	if err != nil {
		return nil, ErrBidNotFound
	}
	if b.Status != bid.StatusPending {
		return nil, ErrBidNotPending
	}
	if !user.Role(actor.Role).IsOrganization() {
		return nil, ticket.ErrRoleNotAllowed
	}
	old := b

	switch input.Decision {
	case bid.DecisionAccept:
		err = s.acceptBid(&b, actor)
	case bid.DecisionReject:
		if strings.TrimSpace(input.Reason) == "" {
			return nil, ticket.ErrReasonRequired
		}
		b.Status = bid.StatusRejected
		b.RejectionReason = input.Reason
		err = s.Repos.Bid.Update(&b)
	case bid.DecisionCounter:
		if input.Amount == nil || strings.TrimSpace(input.Notes) == "" {
			return nil, ErrCounterFieldsMissing
		}
		b.Status = bid.StatusCounter
		b.CounterOffer = input.Amount
		b.CounterNotes = input.Notes
		err = s.Repos.Bid.Update(&b)
	default:
		return nil, ErrDecisionUnknown
	}
	if err != nil {
		return nil, err
	}

	metrics.RecordBidDecision(string(input.Decision))
	s.invalidate(cache.KeyBids, cache.KeyTickets)
	go LogAudit(s.Repos.Audit, actor.UserID, string(input.Decision), "bid", fmt.Sprintf("%d", b.ID), old, b)
	return &b, nil
}

func (s *BidService) acceptBid(b *bid.VendorBid, actor *types.Claims) error {
	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		t, err := tx.Ticket.GetByID(b.TicketID)
		if err != nil {
			return ErrTicketNotFound
		}
		if t.Status != ticket.StatusMarketplace {
			return ErrTicketNotBiddable
		}

		oldStatus := t.Status
		b.Status = bid.StatusAccepted
		b.Approved = true
		if err := tx.Bid.Update(b); err != nil {
			return err
		}

		t.Status = ticket.StatusAccepted
		t.VendorID = &b.VendorID
		if err := tx.Ticket.Update(&t); err != nil {
			return err
		}

		if s.Hub != nil {
			s.Hub.Broadcast(events.TicketEvent{
				TicketID: t.ID,
				Action:   "bid_accepted",
				From:     string(oldStatus),
				To:       string(t.Status),
			})
		}
		return nil
	})
}

// RespondToCounter is the vendor's reply to a counter-offer: the bid total
// becomes the agreed amount and the bid returns to pending for a fresh
// organization decision.
func (s *BidService) RespondToCounter(id uint, actor *types.Claims, input bid.CounterResponseDTO) (*bid.VendorBid, error) {
	if strings.TrimSpace(input.Notes) == "" || input.Amount.IsZero() {
		return nil, ErrCounterFieldsMissing
	}

	b, err := s.Repos.Bid.GetByID(id)
	if err != nil {
		return nil, ErrBidNotFound
	}
	if actor.VendorID == nil || b.VendorID != *actor.VendorID {
		return nil, ErrNotBidOwner
	}
	if b.Status != bid.StatusCounter {
		return nil, ErrBidNotCountered
	}

	b.TotalAmount = input.Amount
	b.AdditionalNotes = input.Notes
	b.Status = bid.StatusPending
	b.CounterOffer = nil
	b.CounterNotes = ""

	if err := s.Repos.Bid.Update(&b); err != nil {
		return nil, err
	}
	s.invalidate(cache.KeyBids)
	return &b, nil
}

func (s *BidService) GetBid(id uint) (*bid.VendorBid, error) {
	b, err := s.Repos.Bid.GetByID(id)
	if err != nil {
		return nil, ErrBidNotFound
	}
	return &b, nil
}

func (s *BidService) ListByTicket(ticketID uint) ([]bid.VendorBid, error) {
	return s.Repos.Bid.ListByTicket(ticketID)
}

func (s *BidService) ListByVendor(vendorID uint) ([]bid.VendorBid, error) {
	return s.Repos.Bid.ListByVendor(vendorID)
}

func (s *BidService) invalidate(keys ...string) {
	if s.Cache != nil {
		s.Cache.Invalidate(context.Background(), keys...)
	}
}
