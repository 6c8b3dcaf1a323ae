package engine

import (
	"rlg327/internal/domain"
	"rlg327/pkg/logger"
	"time"

	"codeberg.org/anaseto/gruid"
)

// Config хранит параметры запуска симуляции
type Config struct {
	// Seed - единственное зерно генератора. Один сид - один и тот же прогон.
	Seed     uint64
	Rooms    int
	Monsters int

	// Явная стартовая клетка игрока. 0 по оси значит "не задано";
	// задавать нужно обе оси сразу.
	StartX, StartY int

	// Stairs включает лестницы и переходы между уровнями.
	Stairs bool
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:     uint64(time.Now().UnixNano()),
		Rooms:    domain.MinRooms,
		Monsters: domain.DefaultMonsters,
	}
}

// Start возвращает явную стартовую клетку, если она задана.
func (c Config) Start() (gruid.Point, bool) {
	if c.StartX == 0 || c.StartY == 0 {
		return gruid.Point{}, false
	}
	return gruid.Point{X: c.StartX, Y: c.StartY}, true
}

// Normalize приводит конфиг к допустимым значениям для доски width x height.
// Ошибки конфигурации не фатальны: значение поправляется, пишется предупреждение.
func (c Config) Normalize(width, height int) Config {
	log := logger.Log.WithField("component", "config")

	switch {
	case c.Rooms < domain.MinRooms:
		log.Warnf("Room count %d is below %d, clamping", c.Rooms, domain.MinRooms)
		c.Rooms = domain.MinRooms
	case c.Rooms > domain.MaxRooms:
		log.Warnf("Room count %d is above %d, clamping", c.Rooms, domain.MaxRooms)
		c.Rooms = domain.MaxRooms
	}

	if c.Monsters < 1 {
		log.Warnf("Monster count %d is invalid, using %d", c.Monsters, domain.DefaultMonsters)
		c.Monsters = domain.DefaultMonsters
	}

	partial := (c.StartX == 0) != (c.StartY == 0)
	outside := c.StartX < 0 || c.StartY < 0 || c.StartX > width-2 || c.StartY > height-2
	switch {
	case partial:
		log.Warnf("Player start needs both coordinates, got x=%d y=%d; ignoring", c.StartX, c.StartY)
		c.StartX, c.StartY = 0, 0
	case outside:
		log.Warnf("Player start (%d,%d) is outside the board interior; ignoring", c.StartX, c.StartY)
		c.StartX, c.StartY = 0, 0
	}
	return c
}
