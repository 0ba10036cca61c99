// Package retry - ограниченная политика повторов для вызовов внешних сервисов.
package retry

import (
	"context"
	"errors"
	"time"
)

// Policy - максимум попыток и фиксированная пауза между ними
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
}

// permanentError помечает ошибку как неповторяемую
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent оборачивает ошибку, после которой повторять вызов бессмысленно
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent сообщает, помечена ли ошибка как неповторяемая
func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

// Do вызывает fn до MaxAttempts раз, пока она возвращает временную ошибку.
// Между попытками ждет Delay; отмена ctx прерывает ожидание.
// Возвращает последнюю ошибку; постоянная ошибка возвращается сразу, без обертки.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context, attempt int) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn(ctx, attempt)
		if err == nil {
			return nil
		}

		var perm *permanentError
		if errors.As(err, &perm) {
			return perm.err
		}

		if attempt == attempts {
			break
		}

		if p.Delay > 0 {
			timer := time.NewTimer(p.Delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return errors.Join(err, ctx.Err())
			case <-timer.C:
			}
		}
	}

	return err
}
