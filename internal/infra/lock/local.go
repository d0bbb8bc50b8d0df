package lock

import (
	"context"
	"fmt"
	"sync"
)

// Local блокировки слотов внутри одного процесса.
// На каждый ключ заводится семафор со счетчиком ссылок, который удаляется,
// когда его больше никто не ждет. Разные ключи не блокируют друг друга.
type Local struct {
	mu    sync.Mutex
	slots map[string]*entry
}

type entry struct {
	sem  chan struct{}
	refs int
}

// NewLocal создает набор локальных блокировок
func NewLocal() *Local {
	return &Local{slots: make(map[string]*entry)}
}

// DoLocked выполняет fn, удерживая блокировку key.
// Если ctx завершится раньше, чем блокировка получена, fn не вызывается.
func (l *Local) DoLocked(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	e := l.acquireRef(key)
	defer l.releaseRef(key, e)

	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("%w: key=%s: %v", ErrLockTimeout, key, ctx.Err())
	}
	defer func() { <-e.sem }()

	return fn(ctx)
}

func (l *Local) acquireRef(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.slots[key]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		l.slots[key] = e
	}
	e.refs++
	return e
}

func (l *Local) releaseRef(key string, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(l.slots, key)
	}
}

// size количество ключей, по которым кто-то держит или ждет блокировку
func (l *Local) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}
