package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sentence-analyzer/internal/common/errors"
	"sentence-analyzer/internal/models"
)

func TestRequestContext_Prerequisites(t *testing.T) {
	rc := NewRequestContext("hello", "john@example.com")

	err := rc.RequireCatalog("resolve-endpoint")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeConfiguration))

	err = rc.RequireJSON("resolve-fields")
	require.Error(t, err)
	assert.False(t, apperrors.IsRetryable(err))

	err = rc.RequireEndpoint("resolve-fields")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a matched endpoint")

	rc.Catalog = []models.Endpoint{{ID: "ping"}}
	rc.JSONOutput = map[string]interface{}{}
	rc.SetMatchedEndpoint(&rc.Catalog[0])
	assert.NoError(t, rc.RequireCatalog("x"))
	assert.NoError(t, rc.RequireJSON("x"))
	assert.NoError(t, rc.RequireEndpoint("x"))
}

func TestRequestContext_Result(t *testing.T) {
	endpoint := models.Endpoint{
		ID:          "schedule_meeting",
		Description: "Schedule a meeting",
		Parameters: []models.Parameter{
			{Name: "time", Required: true},
			{Name: "participants", Required: true},
		},
	}

	t.Run("requires a matched endpoint", func(t *testing.T) {
		_, err := NewRequestContext("hello", "john@example.com").Result()
		assert.Error(t, err)
	})

	t.Run("assembles resolved parameters", func(t *testing.T) {
		rc := NewRequestContext("hello", "john@example.com")
		rc.JSONOutput = map[string]interface{}{"endpoints": []interface{}{
			map[string]interface{}{"action": "schedule", "fields": map[string]interface{}{"time": "2pm"}},
		}}
		rc.SetMatchedEndpoint(&endpoint)
		rc.Parameters = []models.Parameter{
			{Name: "time", Value: models.StringPtr("2pm")},
			{Name: "participants"},
		}

		result, err := rc.Result()
		require.NoError(t, err)
		assert.Equal(t, "schedule_meeting", result.EndpointID)
		assert.Equal(t, "Schedule a meeting", result.EndpointDescription)
		assert.Equal(t, "2pm", result.Parameters[0].ValueOrEmpty())
		assert.Nil(t, result.Parameters[1].Value)
		assert.JSONEq(t, `{"endpoints":[{"action":"schedule","fields":{"time":"2pm"}}]}`, result.JSONOutput)
	})

	t.Run("unresolved parameters when fields stage is disabled", func(t *testing.T) {
		rc := NewRequestContext("hello", "john@example.com")
		rc.SetMatchedEndpoint(&endpoint)

		result, err := rc.Result()
		require.NoError(t, err)
		assert.Equal(t, "{}", result.JSONOutput)
		require.Len(t, result.Parameters, 2)
		assert.Nil(t, result.Parameters[0].Value)
	})
}
