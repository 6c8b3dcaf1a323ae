package agent

import (
	"context"
	"math/rand/v2"
	"rlg327/internal/domain"
	"rlg327/pkg/logger"
	"time"

	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"
)

// Autopilot - игрок-компьютер. Реализует domain.PlayerController.
//
// Решение принимается только по PlayerView, так же как у живого игрока:
//  1. Рядом монстр -> атакует первого по порядку обхода соседей.
//  2. Иначе случайный шаг на открытую клетку.
//  3. Шагнуть некуда -> отдых.
type Autopilot struct {
	rng   *rand.Rand
	delay time.Duration
}

// NewAutopilot создает бота со своим генератором. delay - пауза перед каждым ходом
// (для наблюдения за игрой), 0 - без пауз.
func NewAutopilot(seed uint64, delay time.Duration) *Autopilot {
	return &Autopilot{
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		delay: delay,
	}
}

func (a *Autopilot) NextAction(ctx context.Context, view domain.PlayerView) (domain.PlayerAction, error) {
	if err := ctx.Err(); err != nil {
		return domain.PlayerAction{}, err
	}
	if a.delay > 0 {
		t := time.NewTimer(a.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return domain.PlayerAction{}, ctx.Err()
		case <-t.C:
		}
	}

	pos := view.PlayerPos()
	var open []gruid.Point
	for _, dir := range domain.Directions {
		if !view.CanMove(dir) {
			continue
		}
		if view.MonsterAt(pos.Add(dir)) {
			logger.Log.WithFields(logrus.Fields{
				"component": "autopilot",
				"target":    pos.Add(dir),
			}).Debug("Attacking adjacent monster")
			return domain.Move(dir), nil
		}
		open = append(open, dir)
	}

	if len(open) == 0 {
		return domain.Rest(), nil
	}
	return domain.Move(open[a.rng.IntN(len(open))]), nil
}

// Script отдает заранее заданные действия по порядку, затем ErrQuit.
type Script struct {
	actions []domain.PlayerAction
	next    int
}

func NewScript(actions ...domain.PlayerAction) *Script {
	return &Script{actions: actions}
}

func (s *Script) NextAction(ctx context.Context, _ domain.PlayerView) (domain.PlayerAction, error) {
	if err := ctx.Err(); err != nil {
		return domain.PlayerAction{}, err
	}
	if s.next >= len(s.actions) {
		return domain.PlayerAction{}, domain.ErrQuit
	}
	a := s.actions[s.next]
	s.next++
	return a, nil
}
