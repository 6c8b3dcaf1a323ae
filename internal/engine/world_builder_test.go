package engine

import (
	"math/rand/v2"
	"rlg327/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulate(t *testing.T) {
	level := smallRoom(t)
	actors := NewActorDirectory(pt(1, 1))
	rng := rand.New(rand.NewPCG(7, 7))

	require.NoError(t, populate(level.Grid, actors, 10, rng))
	require.Equal(t, 10, actors.LiveCount())

	seen := map[domain.ActorID]bool{}
	for i, m := range actors.Monsters() {
		assert.Equal(t, domain.ActorID(i+1), m.ID)
		assert.True(t, level.Grid.IsOpen(m.Pos))
		assert.NotEqual(t, pt(1, 1), m.Pos)
		assert.GreaterOrEqual(t, m.Speed, domain.MinMonsterSpeed)
		assert.LessOrEqual(t, m.Speed, domain.MaxMonsterSpeed)
		assert.LessOrEqual(t, m.Behavior, domain.BehaviorMask)
		_, remembers := m.Recall()
		assert.False(t, remembers)

		id, ok := actors.At(m.Pos)
		assert.True(t, ok)
		assert.Equal(t, m.ID, id)
		seen[m.ID] = true
	}
	assert.Len(t, seen, 10)
}

func TestPopulate_BoardTooSmall(t *testing.T) {
	level := smallRoom(t) // 18 открытых клеток, одна под игроком
	actors := NewActorDirectory(pt(1, 1))
	rng := rand.New(rand.NewPCG(1, 1))

	require.NoError(t, populate(level.Grid, actors, 17, rng))

	actors = NewActorDirectory(pt(1, 1))
	err := populate(level.Grid, actors, 18, rng)
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestPlacePlayer(t *testing.T) {
	level := smallRoom(t)
	rng := rand.New(rand.NewPCG(1, 1))

	start := pt(4, 2)
	p, err := placePlayer(level, &start, rng)
	require.NoError(t, err)
	assert.Equal(t, start, p)

	// Закрытая клетка: откат в комнату 0
	rock := pt(0, 0)
	p, err = placePlayer(level, &rock, rng)
	require.NoError(t, err)
	assert.True(t, level.Rooms[0].Contains(p))

	level.Rooms = nil
	p, err = placePlayer(level, nil, rng)
	require.NoError(t, err)
	assert.True(t, level.Grid.IsOpen(p))
}

func TestArrivalCell(t *testing.T) {
	level := parseLevel(t, []domain.Room{domain.NewRoom(1, 1, 6, 3)},
		"########",
		"#<....>#",
		"#......#",
		"#......#",
		"########",
	)
	rng := rand.New(rand.NewPCG(1, 1))

	p, err := arrivalCell(level, 1, rng)
	require.NoError(t, err)
	assert.Equal(t, pt(1, 1), p)

	p, err = arrivalCell(level, -1, rng)
	require.NoError(t, err)
	assert.Equal(t, pt(6, 1), p)
}
