package engine

import (
	"fmt"
	"rlg327/internal/domain"
	"rlg327/pkg/dungeon"
	"rlg327/pkg/logger"

	"github.com/sirupsen/logrus"
)

// changeLevel уводит игрока на соседний уровень: delta +1 вниз, -1 вверх.
// Уровень генерируется заново, с этажа не переносится ничего, кроме игрока.
// priority - время хода игрока, от него отсчитываются ходы на новом уровне.
func (s *Simulation) changeLevel(delta, priority int) error {
	grid := s.level.Grid
	level, err := dungeon.NewLevel(s.rng).
		WithSize(grid.Width(), grid.Height()).
		WithRooms(s.cfg.Rooms).
		WithStairs().
		Build()
	if err != nil {
		s.turns.Add(domain.PlayerID, priority)
		return fmt.Errorf("level transition: %w", err)
	}

	arrival, err := arrivalCell(level, delta, s.rng)
	if err != nil {
		s.turns.Add(domain.PlayerID, priority)
		return fmt.Errorf("level transition: %w", err)
	}

	// enterLevel не трогает стейт, пока новый уровень не заселен целиком
	if err := s.enterLevel(level, arrival, nil, priority); err != nil {
		s.turns.Add(domain.PlayerID, priority)
		return fmt.Errorf("level transition: %w", err)
	}
	from := s.depth
	s.depth += delta

	s.AddLog(fmt.Sprintf("Глубина %d.", s.depth), domain.LogLevel)
	logger.Log.WithFields(logrus.Fields{
		"from":     from,
		"to":       s.depth,
		"arrival":  arrival,
		"monsters": s.actors.LiveCount(),
	}).Info("Level transition")
	return nil
}
