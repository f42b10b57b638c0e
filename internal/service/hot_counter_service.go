package service

import (
	"context"
	"encoding/json"

	"storefront-bot/internal/dto"
	"storefront-bot/internal/pkg/logger"
	"storefront-bot/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

const HotCountTopic = "product.hot_count"

// IHotCounterService records search impressions without delaying the reply.
// RecordShown only enqueues; Consume applies the increments.
type IHotCounterService interface {
	RecordShown(ctx context.Context, productIDs []uuid.UUID)
	Consume(ctx context.Context) error
}

type hotCounterService struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	topic      string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewHotCounterService(
	publisher message.Publisher,
	subscriber message.Subscriber,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IHotCounterService {
	return &hotCounterService{
		publisher:  publisher,
		subscriber: subscriber,
		topic:      HotCountTopic,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *hotCounterService) RecordShown(ctx context.Context, productIDs []uuid.UUID) {
	msgs := make([]*message.Message, 0, len(productIDs))
	for _, id := range productIDs {
		payload, err := json.Marshal(dto.HotCountMessage{ProductId: id})
		if err != nil {
			continue
		}
		msgs = append(msgs, message.NewMessage(watermill.NewUUID(), payload))
	}
	if len(msgs) == 0 {
		return
	}

	if err := s.publisher.Publish(s.topic, msgs...); err != nil {
		s.logger.Warn("HotCounter", "Failed to enqueue hot count increments", map[string]interface{}{
			"count": len(msgs),
			"error": err.Error(),
		})
	}
}

func (s *hotCounterService) Consume(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

// processMessage acks every message, including ones it could not apply.
func (s *hotCounterService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var payload dto.HotCountMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.logger.Error("HotCounter", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ProductRepository().IncrementHot(ctx, payload.ProductId); err != nil {
		s.logger.Error("HotCounter", "Failed to increment hot count", map[string]interface{}{
			"product_id": payload.ProductId.String(),
			"error":      err.Error(),
		})
	}
}
