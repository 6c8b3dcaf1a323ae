package handlers

import (
	"fmt"
	"rlg327/internal/domain"

	"codeberg.org/anaseto/gruid"
)

// DirectionHandlerFunc - хендлер, которому нужно только направление шага
type DirectionHandlerFunc func(ctx Context, dir gruid.Point) (Result, error)

// EmptyHandlerFunc - хендлер, которому не нужны данные (REST, лестницы)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithDirection проверяет, что направление - шаг на соседнюю клетку,
// и только потом вызывает хендлер.
func WithDirection(handler DirectionHandlerFunc) HandlerFunc {
	return func(ctx Context, action domain.PlayerAction) (Result, error) {
		if !domain.IsStep(action.Dir) {
			return Result{}, fmt.Errorf("%w: %v is not a single step", domain.ErrIllegalMove, action.Dir)
		}
		return handler(ctx, action.Dir)
	}
}

// WithEmptyPayload - обертка для команд без данных
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ domain.PlayerAction) (Result, error) {
		return handler(ctx)
	}
}
