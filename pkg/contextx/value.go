package contextx

import (
	"context"
	"errors"
	"fmt"
)

var ErrNoValue = errors.New("no value in context")

func valueFromContext[T any](ctx context.Context, key any, name string) (T, error) {
	v, ok := ctx.Value(key).(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s: %w", name, ErrNoValue)
	}

	return v, nil
}
