package worklog

import (
	"context"
	"sort"
	"sync"
)

type RepositoryStub struct {
	mu      sync.RWMutex
	entries map[int]map[string]Entry // userId -> entryId -> entry
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{entries: map[int]map[string]Entry{}}
}

func (r *RepositoryStub) Store(ctx context.Context, userId int, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries[userId] == nil {
		r.entries[userId] = map[string]Entry{}
	}
	r.entries[userId][entry.ID] = entry
	return nil
}

func (r *RepositoryStub) FindAll(ctx context.Context, userId int) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var entries []Entry
	for _, entry := range r.entries[userId] {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
	return entries, nil
}

func (r *RepositoryStub) Update(ctx context.Context, userId int, entry Entry) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[userId][entry.ID]; !ok {
		return false, nil
	}
	r.entries[userId][entry.ID] = entry
	return true, nil
}

func (r *RepositoryStub) Delete(ctx context.Context, userId int, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[userId][id]; !ok {
		return false, nil
	}
	delete(r.entries[userId], id)
	return true, nil
}

func (r *RepositoryStub) Cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = map[int]map[string]Entry{}
}
