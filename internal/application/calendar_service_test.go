package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/taskscout/taskscout/internal/domain/calendar"
	"github.com/taskscout/taskscout/internal/repository"
	"github.com/taskscout/taskscout/internal/repository/mock"
)

// --------------------- Setup ---------------------
func setupCalendarServiceMocks(t *testing.T) (*CalendarService, *mock.MockCalendarRepo, *mock.MockTicketRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })
	silenceAudit(t)

	mockCal := mock.NewMockCalendarRepo(ctrl)
	mockTicket := mock.NewMockTicketRepo(ctrl)
	repos := &repository.Repos{
		Calendar: mockCal,
		Ticket:   mockTicket,
	}
	svc := NewCalendarService(repos, nil)
	return svc, mockCal, mockTicket
}

func slot(h int) time.Time {
	return time.Date(2026, 3, 2, h, 0, 0, 0, time.UTC)
}

// --------------------- CreateEvent ---------------------

func TestCreateEvent_VisitBooksFreeSlot(t *testing.T) {
	svc, mockCal, _ := setupCalendarServiceMocks(t)

	mockCal.EXPECT().ListOverlapping(uint(7), slot(9), slot(10)).Return(nil, nil)
	mockCal.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *calendar.Event) error {
		e.ID = 1
		return nil
	})

	input := calendar.CreateEventDTO{TechnicianID: 7, Title: "Site visit", StartsAt: slot(9), EndsAt: slot(10)}
	e, err := svc.CreateEvent(technicianClaims(7, 3), input)
	assert.NoError(t, err)
	assert.Equal(t, calendar.EventTypeVisit, e.Type)
}

func TestCreateEvent_VisitConflictsWithBlockedSlot(t *testing.T) {
	svc, mockCal, _ := setupCalendarServiceMocks(t)

	blocked := []calendar.Event{
		{ID: 2, TechnicianID: 7, Type: calendar.EventTypeBlocked, StartsAt: slot(9), EndsAt: slot(12)},
	}
	mockCal.EXPECT().ListOverlapping(uint(7), slot(10), slot(11)).Return(blocked, nil)

	input := calendar.CreateEventDTO{TechnicianID: 7, Title: "Site visit", StartsAt: slot(10), EndsAt: slot(11)}
	_, err := svc.CreateEvent(technicianClaims(7, 3), input)
	assert.ErrorIs(t, err, ErrBookingConflict)
	assert.Contains(t, err.Error(), "Booking Conflict")
}

func TestCreateEvent_BlockedSlotSkipsConflictCheck(t *testing.T) {
	svc, mockCal, _ := setupCalendarServiceMocks(t)

	// No ListOverlapping expectation: blocking time never conflicts.
	mockCal.EXPECT().Create(gomock.Any()).Return(nil)

	input := calendar.CreateEventDTO{
		TechnicianID: 7,
		Title:        "Vacation",
		Type:         calendar.EventTypeBlocked,
		StartsAt:     slot(9),
		EndsAt:       slot(17),
	}
	e, err := svc.CreateEvent(technicianClaims(7, 3), input)
	assert.NoError(t, err)
	assert.Equal(t, calendar.EventTypeBlocked, e.Type)
}

func TestCreateEvent_BadTimeRange(t *testing.T) {
	svc, _, _ := setupCalendarServiceMocks(t)

	input := calendar.CreateEventDTO{TechnicianID: 7, Title: "x", StartsAt: slot(10), EndsAt: slot(10)}
	_, err := svc.CreateEvent(technicianClaims(7, 3), input)
	assert.ErrorIs(t, err, ErrBadTimeRange)
}

// --------------------- IsFree ---------------------

func TestIsFree(t *testing.T) {
	svc, mockCal, _ := setupCalendarServiceMocks(t)

	mockCal.EXPECT().ListOverlapping(uint(7), slot(9), slot(10)).Return(nil, nil)
	free, err := svc.IsFree(7, slot(9), slot(10))
	assert.NoError(t, err)
	assert.True(t, free)

	mockCal.EXPECT().ListOverlapping(uint(7), slot(9), slot(10)).
		Return([]calendar.Event{{ID: 1, StartsAt: slot(9), EndsAt: slot(10)}}, nil)
	free, err = svc.IsFree(7, slot(9), slot(10))
	assert.NoError(t, err)
	assert.False(t, free)
}
