package events

import (
	"fmt"
	"rlg327/internal/domain"
	"rlg327/internal/engine/handlers"
)

// HandleDescend - спуск по лестнице, на которой стоит игрок.
func HandleDescend(ctx handlers.Context) (handlers.Result, error) {
	return takeStairs(ctx, domain.DownStair, 1)
}

// HandleAscend - подъем по лестнице, на которой стоит игрок.
func HandleAscend(ctx handlers.Context) (handlers.Result, error) {
	return takeStairs(ctx, domain.UpStair, -1)
}

func takeStairs(ctx handlers.Context, want domain.Terrain, delta int) (handlers.Result, error) {
	if got := ctx.Grid.Terrain(ctx.Player.Pos); got != want {
		return handlers.EmptyResult(), fmt.Errorf("%w: standing on %q", domain.ErrNotOnStairs, domain.TerrainRune(got))
	}

	msg := "Вы спускаетесь по лестнице."
	if delta < 0 {
		msg = "Вы поднимаетесь по лестнице."
	}
	return handlers.Result{
		Msg:     msg,
		MsgType: domain.LogLevel,
		Event:   &handlers.Event{Kind: handlers.EventLevelTransition, Delta: delta},
	}, nil
}
