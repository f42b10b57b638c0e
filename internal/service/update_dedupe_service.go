package service

import (
	"context"

	"storefront-bot/internal/pkg/logger"
	"storefront-bot/internal/repository/contract"
)

// IUpdateDedupeService filters redelivered chat updates.
type IUpdateDedupeService interface {
	FirstSeen(ctx context.Context, updateID int) bool
}

type updateDedupeService struct {
	primary  contract.ProcessedUpdateRepository
	fallback contract.ProcessedUpdateRepository
	logger   logger.ILogger
}

// NewUpdateDedupeService uses primary when set and falls back to the
// in-process store whenever primary errors.
func NewUpdateDedupeService(primary, fallback contract.ProcessedUpdateRepository, log logger.ILogger) IUpdateDedupeService {
	return &updateDedupeService{
		primary:  primary,
		fallback: fallback,
		logger:   log,
	}
}

func (s *updateDedupeService) FirstSeen(ctx context.Context, updateID int) bool {
	if s.primary != nil {
		first, err := s.primary.MarkProcessed(ctx, updateID)
		if err == nil {
			return first
		}
		s.logger.Warn("Dedupe", "Shared dedupe store unavailable, using local store", map[string]interface{}{
			"update_id": updateID,
			"error":     err.Error(),
		})
	}

	first, err := s.fallback.MarkProcessed(ctx, updateID)
	if err != nil {
		// Treat as new when neither store can answer.
		return true
	}
	return first
}
