package services

import (
	"context"
	"time"

	"github.com/yoockh/docchat/internal/models"
	"github.com/yoockh/docchat/internal/providers/llm"
	"github.com/yoockh/docchat/internal/repositories/sqlstore"
	"github.com/yoockh/docchat/internal/utils"
)

// historyLimit caps the conversation context sent to the model, regardless
// of how long the session is.
const historyLimit = 10

type ChatService interface {
	Submit(ctx context.Context, sessionID, message string) (string, error)
	ListMessages(ctx context.Context, sessionID string) ([]models.Message, error)
	ListSessions(ctx context.Context) ([]models.Session, error)
}

type chatService struct {
	sessions sqlstore.SessionRepo
	messages sqlstore.MessageRepo
	llm      llm.Provider
}

func NewChatService(sessions sqlstore.SessionRepo, messages sqlstore.MessageRepo, provider llm.Provider) ChatService {
	return &chatService{sessions: sessions, messages: messages, llm: provider}
}

// Submit records the user's turn, asks the model for a reply against the
// recent history, and records the reply. The user row is written before the
// model call and is not rolled back on gateway failure: a failed call leaves
// a user message with no assistant row, by contract.
//
// Concurrent Submits on the same session are not serialized; two calls can
// interleave their history reads.
func (s *chatService) Submit(ctx context.Context, sessionID, message string) (string, error) {
	const op = "ChatService.Submit"

	if sessionID == "" || message == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "sessionId and message are required", nil)
	}

	if err := s.sessions.Ensure(ctx, sessionID); err != nil {
		return "", utils.E(utils.CodeStorage, op, "failed to ensure session", err)
	}

	userRow := &models.Message{
		SessionID: sessionID,
		Role:      models.RoleUser,
		Content:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.messages.Insert(ctx, userRow); err != nil {
		return "", utils.E(utils.CodeStorage, op, "failed to insert user message", err)
	}

	recent, err := s.messages.LatestN(ctx, sessionID, historyLimit)
	if err != nil {
		return "", utils.E(utils.CodeStorage, op, "failed to load history", err)
	}

	// LatestN returns newest-first; the model wants oldest-first.
	history := make([]llm.Turn, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		history = append(history, llm.Turn{Role: recent[i].Role, Content: recent[i].Content})
	}

	reply, err := s.llm.Generate(ctx, history)
	if err != nil {
		return "", utils.E(utils.CodeGateway, op, "model call failed", err)
	}

	assistantRow := &models.Message{
		SessionID: sessionID,
		Role:      models.RoleAssistant,
		Content:   reply,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.messages.Insert(ctx, assistantRow); err != nil {
		return "", utils.E(utils.CodeStorage, op, "failed to insert assistant message", err)
	}

	if err := s.sessions.Touch(ctx, sessionID); err != nil {
		return "", utils.E(utils.CodeStorage, op, "failed to touch session", err)
	}

	return reply, nil
}

// ListMessages returns the whole conversation oldest-first. An unknown
// session yields an empty list, not an error.
func (s *chatService) ListMessages(ctx context.Context, sessionID string) ([]models.Message, error) {
	const op = "ChatService.ListMessages"

	rows, err := s.messages.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, utils.E(utils.CodeStorage, op, "failed to list messages", err)
	}
	return rows, nil
}

func (s *chatService) ListSessions(ctx context.Context) ([]models.Session, error) {
	const op = "ChatService.ListSessions"

	rows, err := s.sessions.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeStorage, op, "failed to list sessions", err)
	}
	return rows, nil
}
