package actions

import (
	"errors"
	"rlg327/internal/domain"
	"rlg327/internal/engine/handlers"
	"testing"

	"codeberg.org/anaseto/gruid"
)

// stubMover двигает игрока без справочника акторов.
type stubMover struct {
	player *domain.Player
	victim domain.ActorID
}

func (m *stubMover) MovePlayer(to gruid.Point) domain.ActorID {
	m.player.Pos = to
	return m.victim
}

func setupMove(victim domain.ActorID) (handlers.Context, *domain.Player) {
	g := domain.NewGrid(5, 3)
	g.Carve(gruid.Point{X: 1, Y: 1}, domain.Floor)
	g.Carve(gruid.Point{X: 2, Y: 1}, domain.Floor)
	g.SetRock(gruid.Point{X: 3, Y: 1}, 10)

	player := &domain.Player{Pos: gruid.Point{X: 1, Y: 1}, Alive: true}
	return handlers.Context{
		Grid:   g,
		Player: player,
		Mover:  &stubMover{player: player, victim: victim},
	}, player
}

func TestHandleMove(t *testing.T) {
	ctx, player := setupMove(domain.NoActor)

	res, err := HandleMove(ctx, gruid.Point{X: 1, Y: 0})
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if !res.Moved {
		t.Error("Expected Moved after a step")
	}
	if res.Msg != "" {
		t.Errorf("Expected no message, got %q", res.Msg)
	}
	if player.Pos != (gruid.Point{X: 2, Y: 1}) {
		t.Errorf("Expected player at (2,1), got %v", player.Pos)
	}

	// Дальше порода
	res, err = HandleMove(ctx, gruid.Point{X: 1, Y: 0})
	if !errors.Is(err, domain.ErrIllegalMove) {
		t.Errorf("Expected ErrIllegalMove, got %v", err)
	}
	if res.Moved {
		t.Error("Rejected move must not report Moved")
	}
}

func TestHandleMove_Kill(t *testing.T) {
	ctx, _ := setupMove(3)

	res, err := HandleMove(ctx, gruid.Point{X: 1, Y: 0})
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if !res.Moved || res.MsgType != domain.LogCombat {
		t.Errorf("Expected a combat move, got %+v", res)
	}
}

func TestHandleRest(t *testing.T) {
	ctx, _ := setupMove(domain.NoActor)

	res, err := HandleRest(ctx)
	if err != nil {
		t.Fatalf("Rest failed: %v", err)
	}
	if res.Moved {
		t.Error("Rest must not report Moved")
	}
}
