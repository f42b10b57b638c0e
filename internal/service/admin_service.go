// FILE: internal/service/admin_service.go
package service

import (
	"context"

	"storefront-bot/internal/dto"
	"storefront-bot/internal/pkg/logger"
)

// ILogReader is satisfied by *logger.ZapLogger.
type ILogReader interface {
	GetLogs(level string, limit, offset int) ([]logger.LogEntry, error)
	GetLogById(id string) (*logger.LogEntry, error)
}

type IAdminService interface {
	GetSystemLogs(ctx context.Context, page dto.PageQuery, level string) ([]logger.LogEntry, error)
	GetLogDetail(ctx context.Context, id string) (*logger.LogEntry, error)
}

type adminService struct {
	logs ILogReader
}

func NewAdminService(logs ILogReader) IAdminService {
	return &adminService{logs: logs}
}

func (s *adminService) GetSystemLogs(ctx context.Context, page dto.PageQuery, level string) ([]logger.LogEntry, error) {
	page = normalizePage(page)
	return s.logs.GetLogs(level, page.Limit, (page.Page-1)*page.Limit)
}

func (s *adminService) GetLogDetail(ctx context.Context, id string) (*logger.LogEntry, error) {
	return s.logs.GetLogById(id)
}
