package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy параметры экспоненциального backoff
type Policy struct {
	MaxRetries    int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultPolicy политика по умолчанию для чтения из хранилища
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:    3,
		InitialDelay:  50 * time.Millisecond,
		MaxDelay:      time.Second,
		BackoffFactor: 2,
	}
}

// exponential строит backoff без джиттера и без ограничения общего времени,
// число попыток ограничивает MaxRetries
func (p Policy) exponential() *backoff.ExponentialBackOff {
	initial := p.InitialDelay
	if initial <= 0 {
		initial = time.Second
	}
	factor := p.BackoffFactor
	if factor <= 0 {
		factor = 2
	}
	maxDelay := p.MaxDelay
	if maxDelay <= 0 {
		maxDelay = backoff.DefaultMaxInterval
	}

	return backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(initial),
		backoff.WithMultiplier(factor),
		backoff.WithMaxInterval(maxDelay),
		backoff.WithRandomizationFactor(0),
		backoff.WithMaxElapsedTime(0),
	)
}

// Do выполняет fn, повторяя её до MaxRetries раз после первой неудачи.
// Возвращает последнюю ошибку fn либо ошибку контекста, если он завершился во время ожидания.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	retries := p.MaxRetries
	if retries < 0 {
		retries = 0
	}

	b := backoff.WithMaxRetries(backoff.WithContext(p.exponential(), ctx), uint64(retries))
	return backoff.Retry(func() error {
		return fn(ctx)
	}, b)
}
