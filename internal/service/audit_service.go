package service

import (
	"context"

	"storefront-bot/internal/pkg/logger"
	"storefront-bot/pkg/events"
	pktNats "storefront-bot/pkg/nats"
)

// IEventSubscriber is satisfied by *nats.Subscriber.
type IEventSubscriber interface {
	Subscribe(ctx context.Context, subject string, durableName string, handler pktNats.EventHandler) error
}

type IAuditService interface {
	Start(ctx context.Context) error
}

// auditService writes every bus event to the audit trail log file.
type auditService struct {
	subscriber IEventSubscriber
	auditLog   logger.ILogger
}

func NewAuditService(subscriber IEventSubscriber, auditLog logger.ILogger) IAuditService {
	return &auditService{
		subscriber: subscriber,
		auditLog:   auditLog,
	}
}

func (s *auditService) Start(ctx context.Context) error {
	if err := s.subscriber.Subscribe(ctx, pktNats.StreamSubjects, "audit-log-worker", s.handleEvent); err != nil {
		s.auditLog.Error("AuditService", "Failed to start audit subscriber", map[string]interface{}{"error": err.Error()})
		return err
	}
	s.auditLog.Info("AuditService", "Audit service started, listening to "+pktNats.StreamSubjects, nil)
	return nil
}

func (s *auditService) handleEvent(_ context.Context, event events.Event) error {
	details := make(map[string]interface{}, len(event.Payload())+2)
	for k, v := range event.Payload() {
		details[k] = v
	}
	details["event_type"] = event.EventType()
	details["occurred_at"] = event.Timestamp()

	s.auditLog.Info("Audit", event.EventType(), details)
	return nil
}
