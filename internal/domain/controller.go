package domain

import (
	"context"

	"codeberg.org/anaseto/gruid"
)

// PlayerView - то, что видит внешний источник действий игрока.
// Только чтение: менять доску через него нельзя.
type PlayerView interface {
	Grid() *Grid
	PlayerPos() gruid.Point
	CanMove(dir gruid.Point) bool
	MonsterAt(p gruid.Point) bool
	Glyph(p gruid.Point) rune
	Depth() int
}

// PlayerController поставляет действия игрока. Это единственная точка,
// где цикл ходов может ждать. Отмена ctx или ErrQuit завершают симуляцию
// ровно в этой точке. Контроллер сам отвечает за законность хода:
// движение допустимо только туда, где CanMove вернул true.
type PlayerController interface {
	NextAction(ctx context.Context, view PlayerView) (PlayerAction, error)
}
