package extractjson

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sentence-analyzer/internal/common/errors"
	"sentence-analyzer/internal/common/logger"
	"sentence-analyzer/internal/llm"
	"sentence-analyzer/internal/llm/llmtest"
	"sentence-analyzer/internal/models"
	"sentence-analyzer/internal/pipeline"
	"sentence-analyzer/internal/prompts"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestHandler(t *testing.T, fake *llmtest.Provider) *Handler {
	log := logger.NewTestLogger(t)
	return NewHandler(&Config{}, fake, prompts.Default(log), log)
}

func createRequestContext(sentence string) *pipeline.RequestContext {
	rc := pipeline.NewRequestContext(sentence, "john@example.com")
	rc.Models = models.ModelSet{SentenceToJSON: models.ModelParams{Name: "extractor", Temperature: 0.2}}
	return rc
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Process_Success(t *testing.T) {
	tests := []struct {
		name       string
		reply      string
		wantFields map[string]interface{}
	}{
		{
			name:  "bare JSON",
			reply: `{"endpoints":[{"action":"schedule meeting","fields":{"time":"2pm","participants":"John"}}]}`,
			wantFields: map[string]interface{}{
				"time":         "2pm",
				"participants": "John",
			},
		},
		{
			name: "prose with trailing commas",
			reply: "Sure! Here is the JSON:\n```json\n{\n  \"endpoints\": [\n    {\"action\": \"send email\", \"fields\": {\"to\": \"ann@example.com\",},},\n  ]\n}\n```",
			wantFields: map[string]interface{}{
				"to": "ann@example.com",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := llmtest.New().Enqueue(llmtest.Reply{Text: tt.reply})
			h := createTestHandler(t, fake)
			rc := createRequestContext("schedule a meeting tomorrow at 2pm with John")

			require.NoError(t, h.Process(context.Background(), rc))
			require.NotNil(t, rc.JSONOutput)

			actions := rc.JSONOutput["endpoints"].([]interface{})
			fields := actions[0].(map[string]interface{})["fields"]
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestHandler_Process_PromptAndParams(t *testing.T) {
	fake := llmtest.New().Enqueue(llmtest.Reply{Text: `{"endpoints":[{"fields":{}}]}`})
	h := createTestHandler(t, fake)
	rc := createRequestContext("send an email to Ann")

	require.NoError(t, h.Process(context.Background(), rc))

	require.Equal(t, 1, fake.Calls())
	assert.Contains(t, fake.Prompts()[0], "Sentence: send an email to Ann")
	assert.NotContains(t, fake.Prompts()[0], "{sentence}")
	assert.Equal(t, "extractor", fake.Params()[0].Name)
}

func TestHandler_Process_Errors(t *testing.T) {
	tests := []struct {
		name      string
		sentence  string
		reply     llmtest.Reply
		wantCode  apperrors.ErrorCode
		retryable bool
		wantCalls int
	}{
		{
			name:      "empty sentence",
			sentence:  "   ",
			wantCode:  apperrors.ErrCodeValidation,
			retryable: false,
			wantCalls: 0,
		},
		{
			name:      "model failure",
			sentence:  "hello",
			reply:     llmtest.Reply{Err: errors.New("connection refused")},
			wantCode:  apperrors.ErrCodeGeneration,
			retryable: true,
			wantCalls: 1,
		},
		{
			name:      "empty model reply",
			sentence:  "hello",
			reply:     llmtest.Reply{Text: ""},
			wantCode:  apperrors.ErrCodeGeneration,
			retryable: true,
			wantCalls: 1,
		},
		{
			name:      "no JSON in reply",
			sentence:  "hello",
			reply:     llmtest.Reply{Text: "I cannot help with that."},
			wantCode:  apperrors.ErrCodeExtraction,
			retryable: true,
			wantCalls: 1,
		},
		{
			name:      "missing endpoints array",
			sentence:  "hello",
			reply:     llmtest.Reply{Text: `{"action":"ping"}`},
			wantCode:  apperrors.ErrCodeValidation,
			retryable: true,
			wantCalls: 1,
		},
		{
			name:      "empty endpoints array",
			sentence:  "hello",
			reply:     llmtest.Reply{Text: `{"endpoints":[]}`},
			wantCode:  apperrors.ErrCodeValidation,
			retryable: true,
			wantCalls: 1,
		},
		{
			name:      "action without fields",
			sentence:  "hello",
			reply:     llmtest.Reply{Text: `{"endpoints":[{"action":"ping"}]}`},
			wantCode:  apperrors.ErrCodeValidation,
			retryable: true,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := llmtest.New().Enqueue(tt.reply)
			h := createTestHandler(t, fake)
			rc := createRequestContext(tt.sentence)

			err := h.Process(context.Background(), rc)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.Code(err))
			assert.Equal(t, tt.retryable, apperrors.IsRetryable(err))
			assert.Equal(t, tt.wantCalls, fake.Calls())
			assert.Nil(t, rc.JSONOutput)
		})
	}
}

func TestHandler_Process_EmptyReplyCause(t *testing.T) {
	fake := llmtest.New().Enqueue(llmtest.Reply{Text: "\n\n"})
	err := createTestHandler(t, fake).Process(context.Background(), createRequestContext("hello"))
	assert.ErrorIs(t, err, llm.ErrEmptyResponse)
}
