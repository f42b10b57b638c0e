package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"storefront-bot/internal/pkg/logger"
	"storefront-bot/pkg/events"
	pktNats "storefront-bot/pkg/nats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSubscriber struct {
	subject string
	durable string
	handler pktNats.EventHandler
	err     error
}

func (c *captureSubscriber) Subscribe(ctx context.Context, subject, durableName string, handler pktNats.EventHandler) error {
	c.subject, c.durable, c.handler = subject, durableName, handler
	return c.err
}

type logLine struct {
	level   string
	message string
	details map[string]interface{}
}

// recordingLogger keeps every line; GetLogs is unused here.
type recordingLogger struct {
	*logger.ZapLogger
	mu    sync.Mutex
	lines []logLine
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{ZapLogger: logger.NewNopLogger()}
}

func (r *recordingLogger) add(level, message string, details map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, logLine{level, message, details})
}

func (r *recordingLogger) Debug(module, message string, details map[string]interface{}) {
	r.add("debug", message, details)
}
func (r *recordingLogger) Info(module, message string, details map[string]interface{}) {
	r.add("info", message, details)
}
func (r *recordingLogger) Warn(module, message string, details map[string]interface{}) {
	r.add("warn", message, details)
}
func (r *recordingLogger) Error(module, message string, details map[string]interface{}) {
	r.add("error", message, details)
}

func TestAuditService_LogsEveryEvent(t *testing.T) {
	sub := &captureSubscriber{}
	auditLog := newRecordingLogger()
	svc := NewAuditService(sub, auditLog)

	require.NoError(t, svc.Start(context.Background()))
	assert.Equal(t, "events.>", sub.subject)
	assert.Equal(t, "audit-log-worker", sub.durable)
	require.NotNil(t, sub.handler)

	at := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	err := sub.handler(context.Background(), events.BaseEvent{
		Type:       "CATALOG_CHANGED",
		Data:       map[string]interface{}{"entity_type": "product", "action": "deleted"},
		OccurredAt: at,
	})
	require.NoError(t, err)

	last := auditLog.lines[len(auditLog.lines)-1]
	assert.Equal(t, "CATALOG_CHANGED", last.message)
	assert.Equal(t, "product", last.details["entity_type"])
	assert.Equal(t, at, last.details["occurred_at"])
}

func TestAuditService_StartFailure(t *testing.T) {
	sub := &captureSubscriber{err: errors.New("no stream")}
	auditLog := newRecordingLogger()

	err := NewAuditService(sub, auditLog).Start(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "error", auditLog.lines[0].level)
}
