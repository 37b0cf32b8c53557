package repo

import (
	"context"
	"sync"

	"insurancebot/model"
)

// MemoryStore is the default process-local store. The mutex matters because
// the bot dispatches updates on worker goroutines.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]*model.Application
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]*model.Application)}
}

func (m *MemoryStore) Get(_ context.Context, userID int64) (*model.Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	app, ok := m.sessions[userID]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return app, nil
}

func (m *MemoryStore) Put(_ context.Context, app *model.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[app.UserID] = app
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
	return nil
}
