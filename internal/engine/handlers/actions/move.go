package actions

import (
	"fmt"
	"rlg327/internal/domain"
	"rlg327/internal/engine/handlers"

	"codeberg.org/anaseto/gruid"
)

// HandleMove двигает игрока на соседнюю открытую клетку.
// Монстр на клетке назначения погибает.
func HandleMove(ctx handlers.Context, dir gruid.Point) (handlers.Result, error) {
	to := ctx.Player.Pos.Add(dir)
	if !ctx.Grid.IsOpen(to) {
		return handlers.EmptyResult(), fmt.Errorf("%w: %v is not open", domain.ErrIllegalMove, to)
	}

	killed := ctx.Mover.MovePlayer(to)
	if killed != domain.NoActor {
		return handlers.Result{
			Msg:     fmt.Sprintf("Вы убили монстра #%d.", killed),
			MsgType: domain.LogCombat,
			Moved:   true,
		}, nil
	}
	return handlers.Result{Moved: true}, nil
}
