package application

import (
	"encoding/json"
	"log"
	"time"

	"github.com/taskscout/taskscout/internal/domain/audit"
	"github.com/taskscout/taskscout/internal/repository"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{Repos: repos}
}

// LogAudit persists one audit entry. Declared as a variable so tests can
// stub it out; callers fire it on a goroutine.
var LogAudit = func(repo repository.AuditRepo, actorID uint, action, entityType, entityID string, oldData, newData any) {
	entry := &audit.AuditLog{
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}
	if oldData != nil {
		if raw, err := json.Marshal(oldData); err == nil {
			entry.OldData = raw
		}
	}
	if newData != nil {
		if raw, err := json.Marshal(newData); err == nil {
			entry.NewData = raw
		}
	}
	if err := repo.Create(entry); err != nil {
		log.Printf("audit log write failed: %v", err)
	}
}

func (s *AuditService) GetLogs(limit int) ([]audit.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.Repos.Audit.List(limit)
}

// CleanupOldLogs enforces the retention window.
func (s *AuditService) CleanupOldLogs(retentionDays int) error {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return s.Repos.Audit.DeleteOlderThan(cutoff)
}
