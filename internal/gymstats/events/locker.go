package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/gymprs/internal/gymstats/liftlogs"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultLockTTL           = 30 * time.Second
	DefaultLockRetryInterval = 50 * time.Millisecond

	lockKeyPrefix = "gymprs:lock:scope:"
)

var ErrLockNotAcquired = errors.New("scope lock not acquired")

// ScopeLocker serializes ledger work per (user, exercise) scope. Lock blocks
// until the lock is held or ctx is done; the returned func releases it.
type ScopeLocker interface {
	Lock(ctx context.Context, scope liftlogs.Scope) (unlock func(), err error)
}

// LocalLocker is an in-process ScopeLocker. Entries are reference counted
// and removed once nobody holds or waits for them.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[liftlogs.Scope]*localLock
}

type localLock struct {
	held chan struct{}
	refs int
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		locks: make(map[liftlogs.Scope]*localLock),
	}
}

func (l *LocalLocker) Lock(ctx context.Context, scope liftlogs.Scope) (func(), error) {
	l.mu.Lock()
	lock, ok := l.locks[scope]
	if !ok {
		lock = &localLock{held: make(chan struct{}, 1)}
		l.locks[scope] = lock
	}
	lock.refs++
	l.mu.Unlock()

	select {
	case lock.held <- struct{}{}:
	case <-ctx.Done():
		l.release(scope, lock)
		return nil, fmt.Errorf("%w [%s]: %w", ErrLockNotAcquired, scope, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-lock.held
			l.release(scope, lock)
		})
	}, nil
}

func (l *LocalLocker) release(scope liftlogs.Scope, lock *localLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock.refs--
	if lock.refs == 0 {
		delete(l.locks, scope)
	}
}

// Len returns the number of scopes currently locked or waited on.
func (l *LocalLocker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

// unlockScript deletes the key only if it still holds our token, so an
// expired lock taken over by someone else is left alone.
const unlockScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`

// RedisLocker is a ScopeLocker shared by all service instances using the same redis.
type RedisLocker struct {
	rdb           *redis.Client
	ttl           time.Duration
	retryInterval time.Duration
	tokenFunc     func() string
}

func NewRedisLocker(rdb *redis.Client, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return &RedisLocker{
		rdb:           rdb,
		ttl:           ttl,
		retryInterval: DefaultLockRetryInterval,
		tokenFunc:     uuid.NewString,
	}
}

func (l *RedisLocker) Lock(ctx context.Context, scope liftlogs.Scope) (func(), error) {
	key := lockKeyPrefix + scope.String()
	token := l.tokenFunc()

	for {
		acquired, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("set lock [%s]: %w", key, err)
		}
		if acquired {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w [%s]: %w", ErrLockNotAcquired, scope, ctx.Err())
		case <-time.After(l.retryInterval):
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			unlockCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := l.rdb.Eval(unlockCtx, unlockScript, []string{key}, token).Err(); err != nil {
				log.Errorf("release scope lock [%s]: %s", key, err)
			}
		})
	}, nil
}
