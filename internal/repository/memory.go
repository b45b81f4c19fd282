package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type memSession struct {
	mu       sync.Mutex
	sessions map[string]entity.GameSession
}

// NewMemorySessionRepository keeps sessions in process memory. Values are copied in and out.
func NewMemorySessionRepository() SessionRepository {
	return &memSession{
		sessions: make(map[string]entity.GameSession),
	}
}

func (that *memSession) CreateOrUpdate(_ context.Context, session *entity.GameSession) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[session.ID] = *session

	return nil
}

func (that *memSession) GetByID(_ context.Context, id string) (*entity.GameSession, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, ok := that.sessions[id]
	if !ok {
		return &entity.GameSession{}, apperror.ErrSessionNotFound
	}

	return &session, nil
}

func (that *memSession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return apperror.ErrSessionNotFound
	}

	delete(that.sessions, id)

	return nil
}
