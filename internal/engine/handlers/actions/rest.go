package actions

import "rlg327/internal/engine/handlers"

// HandleRest - игрок пропускает ход.
func HandleRest(ctx handlers.Context) (handlers.Result, error) {
	return handlers.EmptyResult(), nil
}
