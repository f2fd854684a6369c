package application

import (
	"errors"
	"fmt"

	"github.com/taskscout/taskscout/internal/domain/support"
	"github.com/taskscout/taskscout/internal/repository"
	"github.com/taskscout/taskscout/pkg/types"
)

var (
	ErrSupportNotFound  = errors.New("support request not found")
	ErrBadSupportStatus = errors.New("unknown support status")
)

type SupportService struct {
	Repos *repository.Repos
}

func NewSupportService(repos *repository.Repos) *SupportService {
	return &SupportService{Repos: repos}
}

func (s *SupportService) CreateRequest(actor *types.Claims, input support.CreateRequestDTO) (*support.Request, error) {
	req := &support.Request{
		UserID:  actor.UserID,
		Subject: input.Subject,
		Body:    input.Body,
		Status:  support.StatusPending,
	}
	if err := s.Repos.Support.Create(req); err != nil {
		return nil, err
	}
	go LogAudit(s.Repos.Audit, actor.UserID, "create", "support_request", fmt.Sprintf("%d", req.ID), nil, req)
	return req, nil
}

func (s *SupportService) GetRequest(id uint) (*support.Request, error) {
	req, err := s.Repos.Support.GetByID(id)
	if err != nil {
		return nil, ErrSupportNotFound
	}
	return &req, nil
}

func (s *SupportService) ListRequests(actor *types.Claims, all bool) ([]support.Request, error) {
	if all {
		return s.Repos.Support.List()
	}
	return s.Repos.Support.ListByUser(actor.UserID)
}

func (s *SupportService) UpdateStatus(id uint, actor *types.Claims, status support.Status) (*support.Request, error) {
	switch status {
	case support.StatusPending, support.StatusProcessing, support.StatusResolved:
	default:
		return nil, ErrBadSupportStatus
	}
	req, err := s.Repos.Support.GetByID(id)
	if err != nil {
		return nil, ErrSupportNotFound
	}
	old := req.Status

	req.Status = status
	if err := s.Repos.Support.Update(&req); err != nil {
		return nil, err
	}
	go LogAudit(s.Repos.Audit, actor.UserID, "update_status", "support_request", fmt.Sprintf("%d", req.ID), old, status)
	return &req, nil
}

func (s *SupportService) AddMessage(requestID uint, actor *types.Claims, input support.CreateMessageDTO) (*support.Message, error) {
	if _, err := s.Repos.Support.GetByID(requestID); err != nil {
		return nil, ErrSupportNotFound
	}
	msg := &support.Message{
		RequestID: requestID,
		UserID:    actor.UserID,
		Content:   input.Content,
	}
	if err := s.Repos.Support.CreateMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *SupportService) ListMessages(requestID uint) ([]support.Message, error) {
	if _, err := s.Repos.Support.GetByID(requestID); err != nil {
		return nil, ErrSupportNotFound
	}
	return s.Repos.Support.ListMessages(requestID)
}
