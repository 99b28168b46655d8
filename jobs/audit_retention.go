package jobs

import (
	"context"
	"log"
	"time"

	"assetvault/services"
)

// AuditRetentionJob prunes audit rows past the retention window. The
// application itself only ever appends to the audit log; this is the one
// place rows leave it.
type AuditRetentionJob struct {
	auditService *services.AuditService
	retention    time.Duration
	interval     time.Duration
	logger       *log.Logger
}

func NewAuditRetentionJob(auditService *services.AuditService, retention, interval time.Duration) *AuditRetentionJob {
	return &AuditRetentionJob{
		auditService: auditService,
		retention:    retention,
		interval:     interval,
		logger:       log.New(log.Writer(), "[AUDIT_RETENTION] ", log.LstdFlags),
	}
}

// Start runs the cleanup immediately and then on every tick. Call in its own
// goroutine.
func (j *AuditRetentionJob) Start() {
	j.logger.Printf("Starting audit retention job (retention %v, interval %v)", j.retention, j.interval)

	j.runCleanup()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for range ticker.C {
		j.runCleanup()
	}
}

func (j *AuditRetentionJob) runCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-j.retention)

	deleted, err := j.auditService.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		j.logger.Printf("Error pruning audit logs: %v", err)
		return
	}

	if deleted > 0 {
		j.logger.Printf("Pruned %d audit logs older than %s", deleted, cutoff.Format(time.RFC3339))
	}
}
