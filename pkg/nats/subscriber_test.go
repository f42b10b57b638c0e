package nats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	evt, err := Decode("events.CATALOG_CHANGED", []byte(`{"type":"CATALOG_CHANGED","occurred_at":"2025-07-01T09:30:00Z","data":{"action":"deleted"}}`))
	require.NoError(t, err)
	assert.Equal(t, "CATALOG_CHANGED", evt.EventType())
	assert.Equal(t, "deleted", evt.Payload()["action"])
	assert.Equal(t, 2025, evt.Timestamp().Year())
}

func TestDecode_TypeFromSubject(t *testing.T) {
	evt, err := Decode("events.ADMIN_LOGIN", []byte(`{"data":{"username":"owner"}}`))
	require.NoError(t, err)
	assert.Equal(t, "ADMIN_LOGIN", evt.EventType())
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode("events.X", []byte(`not json`))
	assert.Error(t, err)
}
