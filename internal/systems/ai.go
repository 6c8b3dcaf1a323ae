package systems

import (
	"math/rand/v2"
	"rlg327/internal/domain"
	"rlg327/pkg/logger"

	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"
)

// World - то, что монстр видит и может изменить за свой ход.
type World interface {
	Grid() *domain.Grid
	Rooms() []domain.Room
	PlayerPos() gruid.Point
	Fields() *DistanceFields
	// Dig снимает твердость с клетки, пересчитывает поля и сообщает, открылась ли клетка.
	Dig(p gruid.Point) bool
	Rand() *rand.Rand
}

// targetFunc выбирает соседнюю клетку, куда монстр хочет попасть (или свою, если стоит).
type targetFunc func(w World, m *domain.Monster) gruid.Point

// moveFunc исполняет намерение и возвращает новую позицию монстра.
type moveFunc func(w World, m *domain.Monster, dest gruid.Point) gruid.Point

// policy - поведение монстра, собранное из трех независимых частей:
// выбор цели, способ передвижения и хаотичная подмена хода.
type policy struct {
	target  targetFunc
	move    moveFunc
	erratic bool
}

// MonsterAI держит по политике на каждую из 16 комбинаций черт.
type MonsterAI struct {
	policies [domain.BehaviorMask + 1]policy
}

func NewMonsterAI() *MonsterAI {
	ai := &MonsterAI{}
	for b := range ai.policies {
		ai.policies[b] = compose(domain.Behavior(b))
	}
	return ai
}

// Act решает один ход монстра и возвращает клетку, где он окажется.
// Может копать породу через World.Dig. Бой разрешает вызывающий.
func (ai *MonsterAI) Act(w World, m *domain.Monster) gruid.Point {
	p := ai.policies[m.Behavior&domain.BehaviorMask]

	if p.erratic && w.Rand().IntN(2) == 0 {
		dest := walk(w, m, RandomOpenStep(w.Grid(), m.Pos, w.Rand()))
		logger.Log.WithFields(logrus.Fields{
			"monster": m.ID,
			"from":    m.Pos,
			"to":      dest,
		}).Debug("Erratic step")
		return dest
	}

	dest := p.move(w, m, p.target(w, m))
	logger.Log.WithFields(logrus.Fields{
		"monster":  m.ID,
		"behavior": m.Behavior.String(),
		"from":     m.Pos,
		"to":       dest,
	}).Debug("Monster acted")
	return dest
}

func compose(b domain.Behavior) policy {
	tunneling := b.Has(domain.Tunneling)
	roam := roamer(tunneling)

	var target targetFunc
	switch {
	case b.Has(domain.Intelligent) && b.Has(domain.Telepathic):
		target = fieldDescent(tunneling)
	case b.Has(domain.Telepathic):
		target = towardPlayer
	case b.Has(domain.Intelligent):
		target = rememberAndChase(roam)
	default:
		target = chaseInRoom(roam)
	}

	move := walk
	if tunneling {
		move = dig
	}
	return policy{target: target, move: move, erratic: b.Has(domain.Erratic)}
}

// --- Выбор цели ---

// roamer - случайный шаг. Роющие выбирают среди всех разрушимых соседей.
func roamer(tunneling bool) targetFunc {
	if tunneling {
		return func(w World, m *domain.Monster) gruid.Point {
			return RandomDiggableStep(w.Grid(), m.Pos, w.Rand())
		}
	}
	return func(w World, m *domain.Monster) gruid.Point {
		return RandomOpenStep(w.Grid(), m.Pos, w.Rand())
	}
}

func chaseInRoom(roam targetFunc) targetFunc {
	return func(w World, m *domain.Monster) gruid.Point {
		if sharesRoom(w, m.Pos) {
			return StepToward(m.Pos, w.PlayerPos())
		}
		return roam(w, m)
	}
}

// rememberAndChase: видит игрока в комнате - запоминает и идет к нему,
// иначе идет к запомненной точке и забывает ее, когда шаг туда приводит.
func rememberAndChase(roam targetFunc) targetFunc {
	return func(w World, m *domain.Monster) gruid.Point {
		if sharesRoom(w, m.Pos) {
			m.Remember(w.PlayerPos())
			return StepToward(m.Pos, w.PlayerPos())
		}
		if last, ok := m.Recall(); ok {
			dest := StepToward(m.Pos, last)
			if dest == last {
				m.Forget()
			}
			return dest
		}
		return roam(w, m)
	}
}

func towardPlayer(w World, m *domain.Monster) gruid.Point {
	return StepToward(m.Pos, w.PlayerPos())
}

func fieldDescent(tunneling bool) targetFunc {
	return func(w World, m *domain.Monster) gruid.Point {
		if tunneling {
			return Descend(w.Fields().Tunneling(), m.Pos)
		}
		return Descend(w.Fields().NonTunneling(), m.Pos)
	}
}

func sharesRoom(w World, p gruid.Point) bool {
	rooms := w.Rooms()
	i, ok := domain.RoomAt(rooms, w.PlayerPos())
	return ok && rooms[i].Contains(p)
}

// --- Передвижение ---

// walk - шаг только на открытую клетку, иначе монстр стоит.
func walk(w World, m *domain.Monster, dest gruid.Point) gruid.Point {
	if dest == m.Pos || !w.Grid().IsOpen(dest) {
		return m.Pos
	}
	return dest
}

// dig - открытая клетка: шаг; порода: удар по ней, шаг только если она открылась.
func dig(w World, m *domain.Monster, dest gruid.Point) gruid.Point {
	g := w.Grid()
	switch {
	case dest == m.Pos:
		return m.Pos
	case g.IsOpen(dest):
		return dest
	case g.IsImmutable(dest):
		return m.Pos
	}
	if w.Dig(dest) {
		return dest
	}
	return m.Pos
}
