package engine

import (
	"fmt"
	"rlg327/internal/domain"
	"rlg327/pkg/logger"
	"slices"

	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"
)

// ActorDirectory владеет игроком, списком живых монстров и индексом занятости клеток.
// Все три структуры меняются только вместе.
type ActorDirectory struct {
	player   domain.Player
	monsters []*domain.Monster // порядок создания, мертвые вычищаются со сдвигом
	occupant map[gruid.Point]domain.ActorID

	onDeath func(id domain.ActorID, at gruid.Point)
}

func NewActorDirectory(player gruid.Point) *ActorDirectory {
	d := &ActorDirectory{
		player:   domain.Player{Pos: player, Alive: true},
		occupant: make(map[gruid.Point]domain.ActorID),
	}
	d.occupant[player] = domain.PlayerID
	return d
}

// OnDeath регистрирует обработчик смерти (очередь ходов, журнал).
func (d *ActorDirectory) OnDeath(fn func(id domain.ActorID, at gruid.Point)) {
	d.onDeath = fn
}

func (d *ActorDirectory) Player() *domain.Player { return &d.player }

// Monsters возвращает живых монстров в порядке создания. Срез нельзя менять.
func (d *ActorDirectory) Monsters() []*domain.Monster { return d.monsters }

func (d *ActorDirectory) LiveCount() int { return len(d.monsters) }

// Monster ищет живого монстра по ID.
func (d *ActorDirectory) Monster(id domain.ActorID) *domain.Monster {
	for _, m := range d.monsters {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// At возвращает актора на клетке.
func (d *ActorDirectory) At(p gruid.Point) (domain.ActorID, bool) {
	id, ok := d.occupant[p]
	return id, ok
}

// AddMonster размещает нового монстра на свободной клетке.
func (d *ActorDirectory) AddMonster(m *domain.Monster) error {
	if id, ok := d.occupant[m.Pos]; ok {
		return fmt.Errorf("%w: %v holds actor %d", domain.ErrOccupied, m.Pos, id)
	}
	d.monsters = append(d.monsters, m)
	d.occupant[m.Pos] = m.ID
	return nil
}

// Kill убивает того, кто стоит на клетке. Монстр удаляется из списка,
// игрок только помечается мертвым. Возвращает ID убитого или NoActor.
func (d *ActorDirectory) Kill(p gruid.Point) domain.ActorID {
	id, ok := d.occupant[p]
	if !ok {
		return domain.NoActor
	}
	delete(d.occupant, p)

	if id == domain.PlayerID {
		d.player.Alive = false
	} else {
		idx := slices.IndexFunc(d.monsters, func(m *domain.Monster) bool { return m.ID == id })
		if idx < 0 {
			panic(fmt.Sprintf("engine: occupancy points to unknown monster %d at %v", id, p))
		}
		d.monsters = slices.Delete(d.monsters, idx, idx+1)
	}

	logger.Log.WithFields(logrus.Fields{
		"actor": id,
		"pos":   p,
		"live":  len(d.monsters),
	}).Debug("Actor killed")
	if d.onDeath != nil {
		d.onDeath(id, p)
	}
	return id
}

// Move переносит актора на клетку to. Если там кто-то стоит, он погибает.
// Возвращает ID убитого или NoActor.
func (d *ActorDirectory) Move(id domain.ActorID, to gruid.Point) domain.ActorID {
	from, ok := d.position(id)
	if !ok {
		panic(fmt.Sprintf("engine: moving unknown actor %d", id))
	}
	if from == to {
		return domain.NoActor
	}

	killed := domain.NoActor
	if other, ok := d.occupant[to]; ok && other != id {
		killed = d.Kill(to)
	}

	if d.occupant[from] == id {
		delete(d.occupant, from)
	}
	d.occupant[to] = id
	if id == domain.PlayerID {
		d.player.Pos = to
	} else {
		d.Monster(id).Pos = to
	}
	return killed
}

func (d *ActorDirectory) position(id domain.ActorID) (gruid.Point, bool) {
	if id == domain.PlayerID {
		return d.player.Pos, d.player.Alive
	}
	if m := d.Monster(id); m != nil {
		return m.Pos, true
	}
	return gruid.Point{}, false
}
