package application

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/taskscout/taskscout/internal/domain/calendar"
	"github.com/taskscout/taskscout/internal/repository"
	"github.com/taskscout/taskscout/pkg/types"
	"gopkg.in/yaml.v2"
)

var (
	ErrEventNotFound   = errors.New("calendar event not found")
	ErrBookingConflict = errors.New("Booking Conflict: slot overlaps blocked time")
	ErrBadTimeRange    = errors.New("event must end after it starts")
)

type CalendarService struct {
	Repos        *repository.Repos
	Availability *calendar.AvailabilityConfig
}

func NewCalendarService(repos *repository.Repos, availability *calendar.AvailabilityConfig) *CalendarService {
	return &CalendarService{Repos: repos, Availability: availability}
}

// LoadAvailability parses the scheduling window config from a YAML file.
func LoadAvailability(path string) (*calendar.AvailabilityConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg calendar.AvailabilityConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse availability config: %w", err)
	}
	return &cfg, nil
}

// CreateEvent books a visit or a blocked slot. A visit that overlaps any
// blocked slot of the same technician is refused.
func (s *CalendarService) CreateEvent(actor *types.Claims, input calendar.CreateEventDTO) (*calendar.Event, error) {
	if !input.EndsAt.After(input.StartsAt) {
		return nil, ErrBadTimeRange
	}
	eventType := input.Type
	if eventType == "" {
		eventType = calendar.EventTypeVisit
	}

	if eventType == calendar.EventTypeVisit {
		existing, err := s.Repos.Calendar.ListOverlapping(input.TechnicianID, input.StartsAt, input.EndsAt)
		if err != nil {
			return nil, err
		}
		for _, e := range existing {
			if e.Type == calendar.EventTypeBlocked && e.Overlaps(input.StartsAt, input.EndsAt) {
				return nil, ErrBookingConflict
			}
		}
	}

	if input.TicketID != nil {
		if _, err := s.Repos.Ticket.GetByID(*input.TicketID); err != nil {
			return nil, ErrTicketNotFound
		}
	}

	e := &calendar.Event{
		TechnicianID: input.TechnicianID,
		TicketID:     input.TicketID,
		Title:        input.Title,
		Type:         eventType,
		StartsAt:     input.StartsAt,
		EndsAt:       input.EndsAt,
	}
	if err := s.Repos.Calendar.Create(e); err != nil {
		return nil, err
	}
	go LogAudit(s.Repos.Audit, actor.UserID, "create", "calendar_event", fmt.Sprintf("%d", e.ID), nil, e)
	return e, nil
}

func (s *CalendarService) DeleteEvent(id uint, actor *types.Claims) error {
	if _, err := s.Repos.Calendar.GetByID(id); err != nil {
		return nil
	}
	if err := s.Repos.Calendar.Delete(id); err != nil {
		return err
	}
	go LogAudit(s.Repos.Audit, actor.UserID, "delete", "calendar_event", fmt.Sprintf("%d", id), nil, nil)
	return nil
}

func (s *CalendarService) GetEvent(id uint) (*calendar.Event, error) {
	e, err := s.Repos.Calendar.GetByID(id)
	if err != nil {
		return nil, ErrEventNotFound
	}
	return &e, nil
}

func (s *CalendarService) ListByTechnician(technicianID uint) ([]calendar.Event, error) {
	return s.Repos.Calendar.ListByTechnician(technicianID)
}

// IsFree reports whether the technician is free for the whole window.
func (s *CalendarService) IsFree(technicianID uint, start, end time.Time) (bool, error) {
	existing, err := s.Repos.Calendar.ListOverlapping(technicianID, start, end)
	if err != nil {
		return false, err
	}
	return len(existing) == 0, nil
}
