package dungeon

import (
	"math/rand/v2"
	"rlg327/internal/domain"
	"testing"

	"codeberg.org/anaseto/gruid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRng(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestGenerate(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		rooms := domain.MinRooms + int(seed)%8
		level, err := NewLevel(newRng(seed)).WithRooms(rooms).Build()
		require.NoError(t, err, "seed %d", seed)

		g := level.Grid
		assert.Equal(t, domain.MapWidth, g.Width())
		assert.Equal(t, domain.MapHeight, g.Height())
		require.Len(t, level.Rooms, rooms)

		// 1. Комнаты: минимальный размер и буфер
		for i, r := range level.Rooms {
			assert.GreaterOrEqual(t, r.Width(), domain.MinRoomWidth)
			assert.GreaterOrEqual(t, r.Height(), domain.MinRoomHeight)
			assert.LessOrEqual(t, r.Width(), domain.MaxRoomWidth)
			assert.LessOrEqual(t, r.Height(), domain.MaxRoomHeight)
			for j := i + 1; j < len(level.Rooms); j++ {
				assert.False(t, r.Overlaps(level.Rooms[j]), "seed %d: rooms %d and %d overlap", seed, i, j)
			}
		}

		// 2. Кольцо и соответствие твердости и местности
		for p := range g.Points() {
			h, ter := g.Hardness(p), g.Terrain(p)
			if g.IsBorder(p) {
				assert.Equal(t, domain.HardnessImmutable, h)
				assert.Equal(t, domain.Rock, ter)
				continue
			}
			assert.Less(t, h, domain.HardnessImmutable)
			assert.Equal(t, h == 0, ter != domain.Rock, "cell %v hardness %d terrain %d", p, h, ter)
		}

		// 3. Все открытые клетки связаны
		assert.True(t, Connected(g), "seed %d: level is not connected", seed)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := NewLevel(newRng(42)).WithRooms(12).Build()
	require.NoError(t, err)
	b, err := NewLevel(newRng(42)).WithRooms(12).Build()
	require.NoError(t, err)

	assert.Equal(t, a.Rooms, b.Rooms)
	for p := range a.Grid.Points() {
		if a.Grid.Hardness(p) != b.Grid.Hardness(p) {
			t.Fatalf("hardness differs at %v", p)
		}
	}
}

func TestGenerate_Stairs(t *testing.T) {
	level, err := NewLevel(newRng(7)).WithRooms(11).WithStairs().Build()
	require.NoError(t, err)

	half := len(level.Rooms) / 2
	for i, r := range level.Rooms {
		var up, down int
		for y := r.Start.Y; y <= r.End.Y; y++ {
			for x := r.Start.X; x <= r.End.X; x++ {
				switch level.Grid.Terrain(gruid.Point{X: x, Y: y}) {
				case domain.UpStair:
					up++
				case domain.DownStair:
					down++
				}
			}
		}
		if i < half {
			assert.Equal(t, 1, up, "room %d", i)
			assert.Equal(t, 0, down, "room %d", i)
		} else {
			assert.Equal(t, 0, up, "room %d", i)
			assert.Equal(t, 1, down, "room %d", i)
		}
	}
	assert.Len(t, level.Stairs(domain.UpStair), half)
	assert.Len(t, level.Stairs(domain.DownStair), len(level.Rooms)-half)
}

func TestGenerate_FailsOnCrowdedBoard(t *testing.T) {
	_, err := NewLevel(newRng(1)).
		WithSize(20, 12).
		WithRooms(10).
		WithAttempts(50, 3).
		Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestCarveCorridor(t *testing.T) {
	g := domain.NewGrid(20, 10)
	for p := range g.Points() {
		if !g.IsBorder(p) {
			g.SetRock(p, 100)
		}
	}
	a := domain.NewRoom(1, 1, 3, 3)
	b := domain.NewRoom(14, 5, 3, 3)
	carveRoom(g, a)
	carveRoom(g, b)
	require.False(t, Connected(g))

	carveCorridor(g, a.Center(), b.Center(), newRng(3))
	assert.True(t, Connected(g))

	// коридор прокладывается только по внутренним клеткам
	for p := range g.Points() {
		if g.IsBorder(p) {
			assert.Equal(t, domain.HardnessImmutable, g.Hardness(p))
		}
	}
}

// Тест пересечения комнат с буфером
func TestRoomOverlapRejected(t *testing.T) {
	rooms := []domain.Room{domain.NewRoom(10, 10, 7, 5)}
	assert.True(t, overlapsAny(domain.NewRoom(17, 10, 7, 5), rooms))
	assert.False(t, overlapsAny(domain.NewRoom(18, 10, 7, 5), rooms))
}
