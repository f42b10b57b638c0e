// Package audit emits back-office audit events (catalog edits, admin logins)
// onto the event bus.
package audit

import (
	"context"
	"time"

	"storefront-bot/internal/pkg/logger"
	pkgEvents "storefront-bot/pkg/events"

	"github.com/google/uuid"
)

const (
	EventCatalogChanged = "CATALOG_CHANGED"
	EventAdminLogin     = "ADMIN_LOGIN"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Publisher abstracts audit publishing for back-office operations
type Publisher interface {
	PublishCatalogChanged(ctx context.Context, entityType, action string, entityId uuid.UUID, actor string)
	PublishAdminLogin(ctx context.Context, adminId uuid.UUID, username string)
}

// EventPublisher is the transport the audit events go out on.
type EventPublisher interface {
	Publish(ctx context.Context, event pkgEvents.Event) error
}

type BusPublisher struct {
	publisher EventPublisher
	logger    logger.ILogger
	now       func() time.Time
}

// NewBusPublisher returns a publisher that drops events when publisher is nil,
// so the API keeps working without a broker.
func NewBusPublisher(publisher EventPublisher, logger logger.ILogger) *BusPublisher {
	return &BusPublisher{
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// PublishCatalogChanged emits CATALOG_CHANGED for product, shop and question edits.
func (p *BusPublisher) PublishCatalogChanged(ctx context.Context, entityType, action string, entityId uuid.UUID, actor string) {
	now := p.now()
	p.publish(ctx, pkgEvents.BaseEvent{
		Type: EventCatalogChanged,
		Data: map[string]interface{}{
			"entity_type": entityType,
			"entity_id":   entityId.String(),
			"action":      action,
			"actor":       actor,
			"occurred_at": now,
		},
		OccurredAt: now,
	})
}

func (p *BusPublisher) PublishAdminLogin(ctx context.Context, adminId uuid.UUID, username string) {
	now := p.now()
	p.publish(ctx, pkgEvents.BaseEvent{
		Type: EventAdminLogin,
		Data: map[string]interface{}{
			"admin_id":    adminId.String(),
			"username":    username,
			"occurred_at": now,
		},
		OccurredAt: now,
	})
}

func (p *BusPublisher) publish(ctx context.Context, evt pkgEvents.BaseEvent) {
	if p.publisher == nil {
		return
	}
	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("AUDIT", "Failed to publish "+evt.Type+" event", map[string]interface{}{"error": err.Error()})
	}
}
