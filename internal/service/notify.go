package service

import (
	"context"
	"time"

	"audit-service/internal/domain"

	"github.com/google/uuid"
)

type LeadPublisher interface {
	Publish(ctx context.Context, event domain.LeadEvent) error
}

// LeadNotifier emits lead lifecycle events for downstream consumers.
// A nil notifier (or one without a publisher) is valid and does
// nothing, so the service runs fine without a broker configured.
type LeadNotifier struct {
	publisher LeadPublisher
}

func NewLeadNotifier(publisher LeadPublisher) *LeadNotifier {
	return &LeadNotifier{publisher: publisher}
}

func (n *LeadNotifier) RecordLeadCreated(ctx context.Context, auditRequest *domain.AuditRequest) error {
	if n == nil || n.publisher == nil || auditRequest == nil {
		return nil
	}

	event := domain.LeadEvent{
		EventID:    uuid.NewString(),
		Service:    "audit-service",
		EventType:  "lead_created",
		EntityID:   auditRequest.ID,
		OccurredAt: time.Now().UTC(),
		Payload: map[string]interface{}{
			"name":    auditRequest.Name,
			"email":   auditRequest.Email,
			"website": auditRequest.Website,
		},
	}

	if len(auditRequest.Goals) > 0 {
		event.Payload["goals"] = auditRequest.Goals
	}

	return n.publisher.Publish(ctx, event)
}

func (n *LeadNotifier) RecordLeadContacted(ctx context.Context, auditRequest *domain.AuditRequest) error {
	if n == nil || n.publisher == nil || auditRequest == nil {
		return nil
	}

	event := domain.LeadEvent{
		EventID:    uuid.NewString(),
		Service:    "audit-service",
		EventType:  "lead_contacted",
		EntityID:   auditRequest.ID,
		OccurredAt: time.Now().UTC(),
		Payload: map[string]interface{}{
			"is_contacted": auditRequest.IsContacted,
		},
	}

	return n.publisher.Publish(ctx, event)
}
