package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFields_CoercesTimestampsAndNumbers(t *testing.T) {
	fields := map[string]any{
		"companyName": "Acme",
		"serialNo":    float64(7),
		"updatedAt":   "2026-08-28T10:15:00Z",
		"createdAt":   "2026-08-01T09:00:00.500Z",
	}

	out := NormalizeFields(fields)

	assert.Equal(t, "Acme", out["companyName"])
	assert.Equal(t, 7, out["serialNo"])

	updated, ok := out["updatedAt"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 8, 28, 10, 15, 0, 0, time.UTC), updated)

	created, ok := out["createdAt"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 500*int(time.Millisecond), created.Nanosecond())
}

func TestNormalizeFields_LeavesUnparseableValuesAlone(t *testing.T) {
	fields := map[string]any{
		"updatedAt": "yesterday",
		"serialNo":  "seven",
	}

	out := NormalizeFields(fields)
	assert.Equal(t, "yesterday", out["updatedAt"])
	assert.Equal(t, "seven", out["serialNo"])
}

func TestNormalizeFields_DoesNotMutateInput(t *testing.T) {
	fields := map[string]any{"serialNo": float64(3)}
	_ = NormalizeFields(fields)
	assert.Equal(t, float64(3), fields["serialNo"])
}
