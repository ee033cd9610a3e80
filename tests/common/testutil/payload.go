//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap round-trips a request DTO through JSON so validation tests can
// override or drop individual fields before posting the payload.
func DtoMap(t *testing.T, dto any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	raw, err := json.Marshal(dto)
	require.NoError(t, err)

	payload := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &payload))

	for _, mutate := range muts {
		mutate(payload)
	}
	return payload
}

// Field sets one key of a DtoMap payload. A nil value deletes the key,
// simulating a missing field.
func Field(key string, value any) func(map[string]any) {
	return func(payload map[string]any) {
		if value == nil {
			delete(payload, key)
			return
		}
		payload[key] = value
	}
}
