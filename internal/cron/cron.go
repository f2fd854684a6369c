package cron

import (
	"log"
	"time"

	"github.com/taskscout/taskscout/internal/application"
	"github.com/taskscout/taskscout/internal/config"
)

func StartCleanupTask(auditService *application.AuditService) {
	go func() {
		retention := config.AuditRetentionDays
		log.Printf("Starting background cleanup task (retention: %d days)", retention)

		// Run immediately on startup
		if err := auditService.CleanupOldLogs(retention); err != nil {
			log.Printf("Failed to cleanup old audit logs: %v", err)
		}

		// Then run every 24 hours
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := auditService.CleanupOldLogs(retention); err != nil {
				log.Printf("Failed to cleanup old audit logs: %v", err)
			}
		}
	}()
}

// StartOverdueSweep flips sent invoices past their due date to overdue once
// an hour.
func StartOverdueSweep(invoiceService *application.InvoiceService) {
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			n, err := invoiceService.SweepOverdue()
			if err != nil {
				log.Printf("Invoice overdue sweep failed: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("Marked %d invoices overdue", n)
			}
		}
	}()
}
