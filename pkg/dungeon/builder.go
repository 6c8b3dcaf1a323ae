package dungeon

import (
	"fmt"
	"math/rand/v2"
	"rlg327/internal/domain"
	"rlg327/pkg/logger"

	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"
)

// LevelBuilder предоставляет fluent API для создания уровней
type LevelBuilder struct {
	width, height  int
	rooms          int
	stairs         bool
	roomAttempts   int
	layoutAttempts int
	rng            *rand.Rand
}

// NewLevel создает builder с размерами доски по умолчанию
func NewLevel(rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		width:          domain.MapWidth,
		height:         domain.MapHeight,
		rooms:          domain.MinRooms,
		roomAttempts:   DefaultRoomAttempts,
		layoutAttempts: DefaultLayoutAttempts,
		rng:            rng,
	}
}

// WithSize устанавливает размер доски
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.width = width
	b.height = height
	return b
}

// WithRooms задает число комнат
func (b *LevelBuilder) WithRooms(n int) *LevelBuilder {
	b.rooms = n
	return b
}

// WithStairs включает расстановку лестниц
func (b *LevelBuilder) WithStairs() *LevelBuilder {
	b.stairs = true
	return b
}

// WithAttempts ограничивает число попыток на комнату и на весь уровень
func (b *LevelBuilder) WithAttempts(perRoom, layouts int) *LevelBuilder {
	b.roomAttempts = perRoom
	b.layoutAttempts = layouts
	return b
}

// Build генерирует уровень. Если ни одна раскладка не удалась, возвращает
// ошибку, обернутую в domain.ErrGenerationFailed.
func (b *LevelBuilder) Build() (*domain.Level, error) {
	size := gruid.Point{X: b.width, Y: b.height}
	if b.width < domain.MinRoomWidth+2 || b.height < domain.MinRoomHeight+2 {
		return nil, fmt.Errorf("%w: board %dx%d is too small", domain.ErrGenerationFailed, b.width, b.height)
	}

	for attempt := 1; attempt <= b.layoutAttempts; attempt++ {
		rooms, ok := placeRooms(size, b.rooms, b.roomAttempts, b.rng)
		if !ok {
			logger.Log.WithFields(logrus.Fields{
				"component": "dungeon",
				"attempt":   attempt,
				"placed":    len(rooms),
				"wanted":    b.rooms,
			}).Debug("Room placement exhausted, restarting layout")
			continue
		}

		grid := domain.NewGrid(b.width, b.height)
		fillRock(grid, b.rng)
		for _, r := range rooms {
			carveRoom(grid, r)
		}
		connectRooms(grid, rooms, b.rng)

		if !Connected(grid) {
			logger.Log.WithField("attempt", attempt).Warn("Generated level is not connected, retrying")
			continue
		}
		if b.stairs {
			placeStairs(grid, rooms, b.rng)
		}

		logger.Log.WithFields(logrus.Fields{
			"component": "dungeon",
			"rooms":     len(rooms),
			"attempt":   attempt,
			"stairs":    b.stairs,
		}).Debug("Level generated")
		return &domain.Level{Grid: grid, Rooms: rooms}, nil
	}

	return nil, fmt.Errorf("%w: %d rooms on %dx%d after %d layouts",
		domain.ErrGenerationFailed, b.rooms, b.width, b.height, b.layoutAttempts)
}
