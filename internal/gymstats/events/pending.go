package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/2beens/gymprs/internal/gymstats/liftlogs"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const pendingScopesKey = "gymprs:pending-scopes"

// PendingScopes is the set of scopes whose ledger could not be updated and
// needs a full recalculation.
type PendingScopes interface {
	Mark(ctx context.Context, scope liftlogs.Scope) error
	// Pop removes and returns up to n pending scopes.
	Pop(ctx context.Context, n int) ([]liftlogs.Scope, error)
	Count(ctx context.Context) (int, error)
}

type MemoryPendingScopes struct {
	mu     sync.Mutex
	scopes map[liftlogs.Scope]struct{}
}

func NewMemoryPendingScopes() *MemoryPendingScopes {
	return &MemoryPendingScopes{
		scopes: make(map[liftlogs.Scope]struct{}),
	}
}

func (p *MemoryPendingScopes) Mark(_ context.Context, scope liftlogs.Scope) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scopes[scope] = struct{}{}
	return nil
}

func (p *MemoryPendingScopes) Pop(_ context.Context, n int) ([]liftlogs.Scope, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	popped := make([]liftlogs.Scope, 0, n)
	for scope := range p.scopes {
		if len(popped) == n {
			break
		}
		popped = append(popped, scope)
		delete(p.scopes, scope)
	}
	return popped, nil
}

func (p *MemoryPendingScopes) Count(_ context.Context) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.scopes), nil
}

// RedisPendingScopes keeps the pending set in a redis SET, so any instance
// can repair what another one failed on.
type RedisPendingScopes struct {
	rdb *redis.Client
}

func NewRedisPendingScopes(rdb *redis.Client) *RedisPendingScopes {
	return &RedisPendingScopes{
		rdb: rdb,
	}
}

func (p *RedisPendingScopes) Mark(ctx context.Context, scope liftlogs.Scope) error {
	if err := p.rdb.SAdd(ctx, pendingScopesKey, scope.String()).Err(); err != nil {
		return fmt.Errorf("mark scope [%s] pending: %w", scope, err)
	}
	return nil
}

func (p *RedisPendingScopes) Pop(ctx context.Context, n int) ([]liftlogs.Scope, error) {
	members, err := p.rdb.SPopN(ctx, pendingScopesKey, int64(n)).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("pop pending scopes: %w", err)
	}

	scopes := make([]liftlogs.Scope, 0, len(members))
	for _, m := range members {
		scope, err := liftlogs.ParseScope(m)
		if err != nil {
			log.Errorf("dropping invalid pending scope [%s]: %s", m, err)
			continue
		}
		scopes = append(scopes, scope)
	}
	return scopes, nil
}

func (p *RedisPendingScopes) Count(ctx context.Context) (int, error) {
	count, err := p.rdb.SCard(ctx, pendingScopesKey).Result()
	if err != nil {
		return 0, fmt.Errorf("count pending scopes: %w", err)
	}
	return int(count), nil
}
