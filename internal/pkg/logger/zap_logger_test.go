package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `{"level":"INFO","timestamp":"2025-07-01T10:00:00.000+0800","message":"first","module":"Bot","details":{}}
not json
{"level":"ERROR","timestamp":"2025-07-01T10:00:01.000+0800","message":"second","module":"Catalog","details":{"error":"boom"}}
{"level":"INFO","timestamp":"2025-07-01T10:00:02.000+0800","message":"third","module":"Bot","details":{}}
`

func writeSample(t *testing.T) *ZapLogger {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte(sampleLog), 0o644))
	return &ZapLogger{logger: NewNopLogger().logger, filePath: path}
}

func TestGetLogs_NewestFirst(t *testing.T) {
	l := writeSample(t)

	logs, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "third", logs[0].Message)
	assert.Equal(t, "first", logs[2].Message)
	assert.NotEmpty(t, logs[0].Id)
}

func TestGetLogs_LevelAndPaging(t *testing.T) {
	l := writeSample(t)

	logs, err := l.GetLogs("error", 10, 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Catalog", logs[0].Module)

	page, err := l.GetLogs("", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "second", page[0].Message)

	empty, err := l.GetLogs("", 10, 5)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetLogById(t *testing.T) {
	l := writeSample(t)
	logs, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)

	got, err := l.GetLogById(logs[1].Id)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Message)

	_, err = l.GetLogById("missing")
	assert.True(t, err != nil && strings.Contains(err.Error(), "not found"))
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Error("Test", "ignored", map[string]interface{}{"error": "x"})
	logs, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
