package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/miriam-legal/backend/internal/llm"
	"github.com/miriam-legal/backend/internal/metrics"
	"github.com/miriam-legal/backend/internal/storage/models"
	"github.com/miriam-legal/backend/pkg/logger"
)

// SystemPrompt is the fixed persona for every assistant exchange.
const SystemPrompt = "You are a knowledgeable Philippine legal assistant. Provide accurate, " +
	"helpful legal information while clearly stating you are not providing legal advice. " +
	"Reference relevant Philippine laws when applicable. Be professional and clear."

// SessionHistoryLimit caps how many message pairs a session history
// request returns.
const SessionHistoryLimit = 100

type Store interface {
	InsertChatMessage(ctx context.Context, msg *models.ChatMessage) error
	ListSessionMessages(ctx context.Context, sessionID string, limit int) ([]models.ChatMessage, error)
}

// Exchange is the outcome of one assistant call.
type Exchange struct {
	Response  string
	SessionID string
	Timestamp time.Time
}

type Assistant struct {
	store Store
	llm   llm.Client
}

func NewAssistant(store Store, client llm.Client) *Assistant {
	return &Assistant{
		store: store,
		llm:   client,
	}
}

// Send forwards one user message to the model and appends the exchange
// to chat history. An empty sessionID starts a new session; any
// non-empty identifier is accepted as-is, whether or not prior
// messages exist for it.
func (a *Assistant) Send(ctx context.Context, message, sessionID, contextText string) (*Exchange, error) {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	prompt := message
	if contextText != "" {
		prompt = fmt.Sprintf("Context: %s\n\nQuestion: %s", contextText, message)
	}

	resp, err := a.llm.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: SystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		metrics.ChatExchanges.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("assistant call failed: %w", err)
	}

	record := &models.ChatMessage{
		ID:                uuid.New().String(),
		SessionID:         sessionID,
		UserMessage:       message,
		AssistantResponse: resp.Content,
		Context:           contextText,
		CreatedAt:         time.Now().UTC(),
	}

	if err := a.store.InsertChatMessage(ctx, record); err != nil {
		return nil, err
	}

	metrics.ChatExchanges.WithLabelValues("ok").Inc()

	logger.Info("Chat exchange completed",
		zap.String("session_id", sessionID),
		zap.Int("response_length", len(resp.Content)),
	)

	return &Exchange{
		Response:  resp.Content,
		SessionID: sessionID,
		Timestamp: record.CreatedAt,
	}, nil
}

// History returns a session's messages in send order. An unknown
// session yields an empty list, not an error.
func (a *Assistant) History(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	return a.store.ListSessionMessages(ctx, sessionID, SessionHistoryLimit)
}
