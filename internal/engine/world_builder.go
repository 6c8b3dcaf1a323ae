package engine

import (
	"fmt"
	"math/rand/v2"
	"rlg327/internal/domain"
	"rlg327/pkg/dungeon"
	"rlg327/pkg/logger"

	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// monsterPlacementAttempts - предел попыток найти свободную клетку для одного монстра
const monsterPlacementAttempts = 10000

// buildLevel генерирует уровень по конфигу.
func buildLevel(cfg Config, rng *rand.Rand) (*domain.Level, error) {
	b := dungeon.NewLevel(rng).WithRooms(cfg.Rooms)
	if cfg.Stairs {
		b = b.WithStairs()
	}
	return b.Build()
}

// placePlayer выбирает стартовую клетку: явную, если она открыта, иначе случайную в комнате 0.
func placePlayer(level *domain.Level, start *gruid.Point, rng *rand.Rand) (gruid.Point, error) {
	if start != nil {
		if level.Grid.IsOpen(*start) {
			return *start, nil
		}
		logger.Log.WithFields(logrus.Fields{
			"component": "world_builder",
			"start":     *start,
			"hardness":  level.Grid.Hardness(*start),
		}).Warn("Player start is not open, placing in room 0")
	}

	if len(level.Rooms) > 0 {
		r := level.Rooms[0]
		return gruid.Point{
			X: r.Start.X + rng.IntN(r.Width()),
			Y: r.Start.Y + rng.IntN(r.Height()),
		}, nil
	}

	// Загруженный уровень без комнат: любая открытая клетка.
	open := mapset.New[gruid.Point]()
	for p := range level.Grid.Points() {
		if level.Grid.IsOpen(p) {
			open.Put(p)
		}
	}
	if p, ok := sampleCell(level.Grid, open, mapset.New[gruid.Point](), rng); ok {
		return p, nil
	}
	return gruid.Point{}, fmt.Errorf("%w: no open cell for the player", domain.ErrGenerationFailed)
}

// arrivalCell - клетка, куда игрок попадает после перехода: лестница обратного типа.
func arrivalCell(level *domain.Level, delta int, rng *rand.Rand) (gruid.Point, error) {
	want := domain.UpStair
	if delta < 0 {
		want = domain.DownStair
	}
	stairs := level.Stairs(want)
	if len(stairs) == 0 {
		return placePlayer(level, nil, rng)
	}
	return stairs[rng.IntN(len(stairs))], nil
}

// populate расселяет n монстров по свободным открытым клеткам.
// Скорость равномерно в [5,20], поведение равномерно в [0,15], ID с 1.
func populate(grid *domain.Grid, actors *ActorDirectory, n int, rng *rand.Rand) error {
	open := mapset.New[gruid.Point]()
	for p := range grid.Points() {
		if grid.IsOpen(p) {
			open.Put(p)
		}
	}

	taken := mapset.New[gruid.Point]()
	taken.Put(actors.Player().Pos)

	for i := 1; i <= n; i++ {
		pos, ok := sampleCell(grid, open, taken, rng)
		if !ok {
			return fmt.Errorf("%w: no free cell for monster %d of %d", domain.ErrGenerationFailed, i, n)
		}
		m := &domain.Monster{
			ID:       domain.ActorID(i),
			Pos:      pos,
			Speed:    domain.MinMonsterSpeed + rng.IntN(domain.MaxMonsterSpeed-domain.MinMonsterSpeed+1),
			Behavior: domain.Behavior(rng.IntN(int(domain.BehaviorMask) + 1)),
		}
		if err := actors.AddMonster(m); err != nil {
			return err
		}
		taken.Put(pos)

		logger.Log.WithFields(logrus.Fields{
			"monster":  m.ID,
			"pos":      m.Pos,
			"speed":    m.Speed,
			"behavior": m.Behavior,
		}).Debug("Monster spawned")
	}
	return nil
}

// sampleCell - выборка с отказами: случайная клетка доски, которая есть в open и нет в taken.
// Сдается, когда все открытые клетки заняты или кончились попытки.
func sampleCell(grid *domain.Grid, open, taken mapset.Set[gruid.Point], rng *rand.Rand) (gruid.Point, bool) {
	if taken.Size() >= open.Size() {
		return gruid.Point{}, false
	}
	w, h := grid.Width(), grid.Height()
	for range monsterPlacementAttempts {
		p := gruid.Point{X: rng.IntN(w), Y: rng.IntN(h)}
		if open.Has(p) && !taken.Has(p) {
			return p, true
		}
	}
	return gruid.Point{}, false
}
