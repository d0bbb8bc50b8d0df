package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/AC-BookingService/internal/config"
)

// releaseScript удаляет ключ, только если он всё ещё принадлежит владельцу токена
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// extendScript продлевает TTL, только если ключ всё ещё принадлежит владельцу токена
var extendScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// Redis блокировки слотов, общие для нескольких экземпляров сервиса.
// Ключ ставится через SET NX PX и продлевается, пока fn выполняется.
// Если продлить не удалось, контекст fn отменяется с причиной ErrLockLost.
type Redis struct {
	client        *redis.Client
	prefix        string
	ttl           time.Duration
	retryInterval time.Duration
	logger        Logger
}

// NewRedisClient создает клиент Redis на основе конфигурации
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

// NewRedis создает распределенные блокировки поверх клиента
func NewRedis(client *redis.Client, prefix string, ttl, retryInterval time.Duration, logger Logger) *Redis {
	return &Redis{
		client:        client,
		prefix:        prefix,
		ttl:           ttl,
		retryInterval: retryInterval,
		logger:        logger,
	}
}

// DoLocked выполняет fn, удерживая блокировку key.
// Ожидание ограничено ctx, блокировка снимается и при отмене ctx во время fn.
// fn должна прекращать работу без записи, когда её контекст отменен.
func (r *Redis) DoLocked(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if r.client == nil {
		return fmt.Errorf("%w: redis client is nil", ErrAcquire)
	}

	redisKey := r.prefix + key
	token := uuid.NewString()

	if err := r.acquire(ctx, redisKey, token); err != nil {
		return err
	}
	defer r.release(context.WithoutCancel(ctx), redisKey, token)

	lockCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.keepAlive(lockCtx, cancel, stop, redisKey, token)
	}()

	err := fn(lockCtx)

	close(stop)
	<-done

	if err != nil && errors.Is(context.Cause(lockCtx), ErrLockLost) {
		return fmt.Errorf("%w: key=%s: %v", ErrLockLost, redisKey, err)
	}
	return err
}

// keepAlive продлевает ключ каждые ttl/3, пока не закрыт stop
func (r *Redis) keepAlive(ctx context.Context, cancel context.CancelCauseFunc, stop <-chan struct{}, key, token string) {
	interval := r.ttl / 3
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		extended, err := extendScript.Run(ctx, r.client, []string{key}, token, r.ttl.Milliseconds()).Int64()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			r.logger.Error("lock: failed to extend key=%s: %v", key, err)
			cancel(ErrLockLost)
			return
		}
		if extended == 0 {
			r.logger.Warn("lock: key=%s expired or taken over while held", key)
			cancel(ErrLockLost)
			return
		}
	}
}

func (r *Redis) acquire(ctx context.Context, key, token string) error {
	ticker := time.NewTicker(r.retryInterval)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, key, token, r.ttl).Result()
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("%w: key=%s: %v", ErrLockTimeout, key, err)
			}
			return fmt.Errorf("%w: key=%s: %v", ErrAcquire, key, err)
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: key=%s: %v", ErrLockTimeout, key, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (r *Redis) release(ctx context.Context, key, token string) {
	if err := releaseScript.Run(ctx, r.client, []string{key}, token).Err(); err != nil {
		// ключ истечет по TTL
		r.logger.Error("lock: failed to release key=%s: %v", key, err)
	}
}
