package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"rlg327/internal/domain"
	"rlg327/internal/engine/handlers"
	"rlg327/internal/systems"
	"rlg327/pkg/logger"

	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"
)

// ErrFinished возвращает Step, если симуляция уже в конечном состоянии.
var ErrFinished = errors.New("simulation is finished")

// Outcome - итог прогона
type Outcome uint8

const (
	Running Outcome = iota
	Victory
	Defeat
	Quit
)

func (o Outcome) String() string {
	switch o {
	case Victory:
		return "VICTORY"
	case Defeat:
		return "DEFEAT"
	case Quit:
		return "QUIT"
	default:
		return "RUNNING"
	}
}

// Simulation - контекст одного прогона: уровень, акторы, очередь ходов и поля расстояний.
// Весь стейт принадлежит ему, блокировок нет: цикл ходов строго последовательный.
type Simulation struct {
	cfg        Config
	level      *domain.Level
	depth      int
	actors     *ActorDirectory
	turns      *TurnManager
	fields     *systems.DistanceFields
	ai         *systems.MonsterAI
	controller domain.PlayerController
	handlers   map[domain.ActionType]handlers.HandlerFunc
	rng        *rand.Rand

	tick int
	logs []domain.LogEntry
}

// Option настраивает стартовое состояние (для тестов и загруженных уровней).
type Option func(*setup)

type setup struct {
	start    *gruid.Point
	monsters []*domain.Monster
}

// WithPlayerAt ставит игрока на заданную клетку (если она открыта).
func WithPlayerAt(p gruid.Point) Option {
	return func(s *setup) { s.start = &p }
}

// WithMonsters заменяет случайное заселение заданным списком монстров.
func WithMonsters(ms ...*domain.Monster) Option {
	return func(s *setup) { s.monsters = ms }
}

// New собирает симуляцию на готовом уровне (сгенерированном или загруженном).
func New(cfg Config, level *domain.Level, controller domain.PlayerController, opts ...Option) (*Simulation, error) {
	cfg = cfg.Normalize(level.Grid.Width(), level.Grid.Height())
	return newSimulation(cfg, level, controller, newRand(cfg.Seed), opts)
}

// NewFromConfig генерирует уровень по конфигу и собирает на нем симуляцию.
func NewFromConfig(cfg Config, controller domain.PlayerController, opts ...Option) (*Simulation, error) {
	cfg = cfg.Normalize(domain.MapWidth, domain.MapHeight)
	rng := newRand(cfg.Seed)
	level, err := buildLevel(cfg, rng)
	if err != nil {
		return nil, err
	}
	return newSimulation(cfg, level, controller, rng, opts)
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func newSimulation(cfg Config, level *domain.Level, controller domain.PlayerController, rng *rand.Rand, opts []Option) (*Simulation, error) {
	var st setup
	if p, ok := cfg.Start(); ok {
		st.start = &p
	}
	for _, opt := range opts {
		opt(&st)
	}

	s := &Simulation{
		cfg:        cfg,
		controller: controller,
		handlers:   defaultHandlers(),
		ai:         systems.NewMonsterAI(),
		rng:        rng,
		logs:       make([]domain.LogEntry, 0),
	}

	start, err := placePlayer(level, st.start, rng)
	if err != nil {
		return nil, err
	}
	if err := s.enterLevel(level, start, st.monsters, 0); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"seed":     cfg.Seed,
		"rooms":    len(level.Rooms),
		"monsters": s.actors.LiveCount(),
		"player":   start,
	}).Info("Simulation ready")
	return s, nil
}

// enterLevel заселяет уровень и строит заново очередь ходов и поля расстояний.
// base - время, от которого отсчитываются первые ходы.
func (s *Simulation) enterLevel(level *domain.Level, player gruid.Point, monsters []*domain.Monster, base int) error {
	actors := NewActorDirectory(player)
	if monsters != nil {
		for _, m := range monsters {
			if !level.Grid.IsOpen(m.Pos) {
				return fmt.Errorf("%w: monster %d placed on closed cell %v", domain.ErrOccupied, m.ID, m.Pos)
			}
			if err := actors.AddMonster(m); err != nil {
				return err
			}
		}
	} else if err := populate(level.Grid, actors, s.cfg.Monsters, s.rng); err != nil {
		return err
	}
	actors.OnDeath(s.onDeath)

	s.level = level
	s.actors = actors
	s.fields = systems.NewDistanceFields(level.Grid)
	s.fields.Recompute(player)

	s.turns = NewTurnManager()
	s.turns.Add(domain.PlayerID, base+domain.TurnCost(domain.PlayerSpeed))
	for _, m := range actors.Monsters() {
		s.turns.Add(m.ID, base+domain.TurnCost(m.Speed))
	}
	return nil
}

// Outcome сообщает, закончилась ли симуляция и чем.
func (s *Simulation) Outcome() Outcome {
	switch {
	case !s.actors.Player().Alive:
		return Defeat
	case s.actors.LiveCount() == 0:
		return Victory
	default:
		return Running
	}
}

// Step выполняет ровно один тик: ход игрока или ход одного монстра.
func (s *Simulation) Step(ctx context.Context) error {
	if s.Outcome() != Running {
		return ErrFinished
	}

	id, priority, ok := s.turns.Next()
	if !ok {
		panic("engine: turn queue is empty while the simulation is running")
	}

	if id == domain.PlayerID {
		if err := s.playerTurn(ctx, priority); err != nil {
			return err
		}
	} else {
		s.monsterTurn(id, priority)
	}
	s.tick++
	s.checkInvariants()
	return nil
}

// Run крутит тики до победы, поражения или выхода.
// Отмена ctx и ErrQuit завершают прогон с итогом Quit без ошибки.
func (s *Simulation) Run(ctx context.Context) (Outcome, error) {
	for {
		if o := s.Outcome(); o != Running {
			s.finish(o)
			return o, nil
		}
		if err := s.Step(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, domain.ErrQuit) {
				s.finish(Quit)
				return Quit, nil
			}
			return Running, err
		}
	}
}

func (s *Simulation) playerTurn(ctx context.Context, priority int) error {
	action, err := s.controller.NextAction(ctx, s)
	if err != nil {
		s.turns.Add(domain.PlayerID, priority)
		return err
	}

	handler, ok := s.handlers[action.Type]
	if !ok {
		s.turns.Add(domain.PlayerID, priority)
		return fmt.Errorf("%w: unknown action %s", domain.ErrIllegalMove, action.Type)
	}

	hctx := handlers.Context{
		Grid:   s.level.Grid,
		Player: s.actors.Player(),
		Mover:  playerMover{s.actors},
	}
	res, err := handler(hctx, action)
	if err != nil {
		s.turns.Add(domain.PlayerID, priority)
		return err
	}
	if res.Msg != "" {
		s.AddLog(res.Msg, res.MsgType)
	}

	if res.Event != nil && res.Event.Kind == handlers.EventLevelTransition {
		return s.changeLevel(res.Event.Delta, priority)
	}

	s.turns.Reinsert(domain.PlayerID, priority, domain.PlayerSpeed)
	if res.Moved {
		s.fields.Recompute(s.actors.Player().Pos)
	}
	return nil
}

func (s *Simulation) monsterTurn(id domain.ActorID, priority int) {
	m := s.actors.Monster(id)
	if m == nil {
		logger.Log.WithField("monster", id).Debug("Queued monster is gone, skipping")
		return
	}

	to := s.ai.Act(s, m)
	if to != m.Pos {
		s.actors.Move(id, to)
	}
	s.turns.Reinsert(id, priority, m.Speed)
}

// onDeath убирает погибшего из очереди ходов и пишет в журнал.
func (s *Simulation) onDeath(id domain.ActorID, at gruid.Point) {
	s.turns.Remove(id)
	if id == domain.PlayerID {
		s.AddLog(fmt.Sprintf("Игрок погиб в (%d,%d).", at.X, at.Y), domain.LogCombat)
		return
	}
	s.AddLog(fmt.Sprintf("Монстр #%d погиб в (%d,%d).", id, at.X, at.Y), domain.LogCombat)
}

// checkInvariants проверяет согласованность стейта между тиками.
// Нарушение - ошибка программы.
func (s *Simulation) checkInvariants() {
	want := s.actors.LiveCount()
	player := s.actors.Player()
	if player.Alive {
		want++
	}
	if got := s.turns.Len(); got != want {
		panic(fmt.Sprintf("engine: turn queue holds %d entries, %d live actors", got, want))
	}
	if err := s.fields.Check(player.Pos); err != nil {
		panic(fmt.Sprintf("engine: %v", err))
	}
}

func (s *Simulation) finish(o Outcome) {
	switch o {
	case Victory:
		s.AddLog("Все монстры мертвы. Победа!", domain.LogInfo)
	case Defeat:
		s.AddLog("Игрок убит. Поражение.", domain.LogInfo)
	case Quit:
		s.AddLog("Игра прервана.", domain.LogInfo)
	}
	logger.Log.WithFields(logrus.Fields{
		"outcome": o.String(),
		"ticks":   s.tick,
		"depth":   s.depth,
		"queue":   s.turns.DebugDump(),
	}).Info("Simulation finished")
}

// Dig - удар монстра по породе. Открывшаяся клетка меняет обычное поле,
// любое изменение твердости меняет роющее.
func (s *Simulation) Dig(p gruid.Point) bool {
	opened := s.level.Grid.Dig(p, domain.DigStrength)
	player := s.actors.Player().Pos
	if opened {
		s.fields.RecomputeNonTunneling(player)
		s.AddLog(fmt.Sprintf("Порода в (%d,%d) прорыта.", p.X, p.Y), domain.LogDig)
	}
	s.fields.RecomputeTunneling(player)
	return opened
}

// playerMover перемещает игрока через справочник акторов.
type playerMover struct {
	actors *ActorDirectory
}

func (m playerMover) MovePlayer(to gruid.Point) domain.ActorID {
	return m.actors.Move(domain.PlayerID, to)
}

func (s *Simulation) Grid() *domain.Grid              { return s.level.Grid }
func (s *Simulation) Rooms() []domain.Room            { return s.level.Rooms }
func (s *Simulation) Level() *domain.Level            { return s.level }
func (s *Simulation) Depth() int                      { return s.depth }
func (s *Simulation) Actors() *ActorDirectory         { return s.actors }
func (s *Simulation) Fields() *systems.DistanceFields { return s.fields }
func (s *Simulation) Turns() *TurnManager             { return s.turns }
func (s *Simulation) Rand() *rand.Rand                { return s.rng }
func (s *Simulation) Ticks() int                      { return s.tick }
func (s *Simulation) PlayerPos() gruid.Point          { return s.actors.Player().Pos }

// CanMove - можно ли игроку шагнуть в направлении dir.
func (s *Simulation) CanMove(dir gruid.Point) bool {
	return domain.IsStep(dir) && s.level.Grid.IsOpen(s.PlayerPos().Add(dir))
}

func (s *Simulation) MonsterAt(p gruid.Point) bool {
	id, ok := s.actors.At(p)
	return ok && id != domain.PlayerID
}

// Glyph - символ клетки: игрок, монстр (hex-цифра поведения) или рельеф.
func (s *Simulation) Glyph(p gruid.Point) rune {
	if id, ok := s.actors.At(p); ok {
		if id == domain.PlayerID {
			return '@'
		}
		return s.actors.Monster(id).Behavior.Rune()
	}
	return domain.TerrainRune(s.level.Grid.Terrain(p))
}
