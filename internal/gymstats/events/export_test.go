package events

import (
	"time"
)

const UnlockScript = unlockScript

func (l *RedisLocker) SetTokenFunc(f func() string) {
	l.tokenFunc = f
}

func (l *RedisLocker) SetRetryInterval(d time.Duration) {
	l.retryInterval = d
}
