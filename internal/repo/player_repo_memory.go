package repo

import (
	"context"
	"maps"
	"slices"
	"sync"

	"player-registry/internal/domain"
)

// MemoryPlayerRepo 进程内存储，用于测试与 store.backend=memory
type MemoryPlayerRepo struct {
	mu      sync.RWMutex
	players map[int64]domain.Player
	seq     int64
}

func NewMemoryPlayerRepo() *MemoryPlayerRepo {
	return &MemoryPlayerRepo{players: make(map[int64]domain.Player)}
}

var _ domain.PlayerRepository = (*MemoryPlayerRepo)(nil)

func (r *MemoryPlayerRepo) LoadAll(_ context.Context) ([]domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := slices.Sorted(maps.Keys(r.players))
	out := make([]domain.Player, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.players[id])
	}
	return out, nil
}

func (r *MemoryPlayerRepo) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.players[id]
	return ok, nil
}

func (r *MemoryPlayerRepo) Get(_ context.Context, id int64) (*domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.players[id]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return &p, nil
}

func (r *MemoryPlayerRepo) Save(_ context.Context, p *domain.Player) (*domain.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	if cp.ID == 0 {
		r.seq++
		cp.ID = r.seq
	} else if cp.ID > r.seq {
		r.seq = cp.ID
	}
	r.players[cp.ID] = cp
	return &cp, nil
}

func (r *MemoryPlayerRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.players, id)
	return nil
}
