package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miriam-legal/backend/internal/llm"
	"github.com/miriam-legal/backend/internal/storage/models"
)

type fakeStore struct {
	inserted []models.ChatMessage
	gotLimit int
}

func (f *fakeStore) InsertChatMessage(_ context.Context, msg *models.ChatMessage) error {
	f.inserted = append(f.inserted, *msg)
	return nil
}

func (f *fakeStore) ListSessionMessages(_ context.Context, sessionID string, limit int) ([]models.ChatMessage, error) {
	f.gotLimit = limit
	var messages []models.ChatMessage
	for _, msg := range f.inserted {
		if msg.SessionID == sessionID {
			messages = append(messages, msg)
		}
	}
	return messages, nil
}

type fakeLLM struct {
	lastReq llm.CompletionRequest
	reply   string
	err     error
}

func (f *fakeLLM) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.reply}, nil
}

func TestSendGeneratesSessionID(t *testing.T) {
	store := &fakeStore{}
	model := &fakeLLM{reply: "You may wish to consult the Civil Code."}
	assistant := NewAssistant(store, model)

	exchange, err := assistant.Send(context.Background(), "What are my rights?", "", "")
	require.NoError(t, err)

	assert.NotEmpty(t, exchange.SessionID)
	assert.Equal(t, "You may wish to consult the Civil Code.", exchange.Response)
	assert.False(t, exchange.Timestamp.IsZero())

	assert.Equal(t, SystemPrompt, model.lastReq.SystemPrompt)
	assert.Equal(t, "What are my rights?", model.lastReq.UserPrompt)
}

func TestSendReusesSessionID(t *testing.T) {
	store := &fakeStore{}
	assistant := NewAssistant(store, &fakeLLM{reply: "ok"})

	first, err := assistant.Send(context.Background(), "first question", "", "")
	require.NoError(t, err)

	second, err := assistant.Send(context.Background(), "second question", first.SessionID, "")
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, second.SessionID)

	messages, err := assistant.History(context.Background(), first.SessionID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "first question", messages[0].UserMessage)
	assert.Equal(t, "second question", messages[1].UserMessage)
	assert.Equal(t, SessionHistoryLimit, store.gotLimit)
}

func TestSendPrependsContext(t *testing.T) {
	store := &fakeStore{}
	model := &fakeLLM{reply: "ok"}
	assistant := NewAssistant(store, model)

	_, err := assistant.Send(context.Background(), "Is this clause valid?", "", "Employment contract, probationary period")
	require.NoError(t, err)

	assert.Equal(t, "Context: Employment contract, probationary period\n\nQuestion: Is this clause valid?", model.lastReq.UserPrompt)

	require.Len(t, store.inserted, 1)
	assert.Equal(t, "Is this clause valid?", store.inserted[0].UserMessage)
	assert.Equal(t, "Employment contract, probationary period", store.inserted[0].Context)
}

func TestSendLLMFailureLeavesNoRecord(t *testing.T) {
	store := &fakeStore{}
	assistant := NewAssistant(store, &fakeLLM{err: errors.New("provider unavailable")})

	_, err := assistant.Send(context.Background(), "hello", "", "")
	require.Error(t, err)
	assert.Empty(t, store.inserted)
}

func TestHistoryUnknownSessionIsEmpty(t *testing.T) {
	store := &fakeStore{}
	assistant := NewAssistant(store, &fakeLLM{reply: "ok"})

	messages, err := assistant.History(context.Background(), "no-such-session")
	require.NoError(t, err)
	assert.Empty(t, messages)
}
