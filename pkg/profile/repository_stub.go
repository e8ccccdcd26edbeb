package profile

import (
	"context"
	"sync"
)

type RepositoryStub struct {
	mu   sync.RWMutex
	data map[int]Settings
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{data: map[int]Settings{}}
}

func (r *RepositoryStub) Get(ctx context.Context, userId int) (Settings, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	settings, ok := r.data[userId]
	return settings, ok, nil
}

func (r *RepositoryStub) Save(ctx context.Context, userId int, settings Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[userId] = settings
	return nil
}

func (r *RepositoryStub) Cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = map[int]Settings{}
}
