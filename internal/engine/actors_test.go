package engine

import (
	"rlg327/internal/domain"
	"testing"

	"codeberg.org/anaseto/gruid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirectory(t *testing.T) *ActorDirectory {
	d := NewActorDirectory(gruid.Point{X: 5, Y: 5})
	for i, x := range []int{1, 2, 3} {
		require.NoError(t, d.AddMonster(&domain.Monster{
			ID:    domain.ActorID(i + 1),
			Pos:   gruid.Point{X: x, Y: 1},
			Speed: 10,
		}))
	}
	return d
}

func TestActorDirectory_AddRejectsOccupied(t *testing.T) {
	d := newDirectory(t)
	err := d.AddMonster(&domain.Monster{ID: 9, Pos: gruid.Point{X: 5, Y: 5}})
	assert.ErrorIs(t, err, domain.ErrOccupied)
	assert.Equal(t, 3, d.LiveCount())
}

func TestActorDirectory_KillCompactsInOrder(t *testing.T) {
	d := newDirectory(t)
	var deaths []domain.ActorID
	d.OnDeath(func(id domain.ActorID, _ gruid.Point) { deaths = append(deaths, id) })

	assert.Equal(t, domain.ActorID(2), d.Kill(gruid.Point{X: 2, Y: 1}))
	assert.Equal(t, domain.NoActor, d.Kill(gruid.Point{X: 9, Y: 9}))

	require.Equal(t, 2, d.LiveCount())
	assert.Equal(t, domain.ActorID(1), d.Monsters()[0].ID)
	assert.Equal(t, domain.ActorID(3), d.Monsters()[1].ID)
	assert.Nil(t, d.Monster(2))
	_, ok := d.At(gruid.Point{X: 2, Y: 1})
	assert.False(t, ok)
	assert.Equal(t, []domain.ActorID{2}, deaths)
}

func TestActorDirectory_KillPlayerKeepsRecord(t *testing.T) {
	d := newDirectory(t)
	assert.Equal(t, domain.PlayerID, d.Kill(gruid.Point{X: 5, Y: 5}))
	assert.False(t, d.Player().Alive)
	assert.Equal(t, gruid.Point{X: 5, Y: 5}, d.Player().Pos)
}

func TestActorDirectory_MoveResolvesCombat(t *testing.T) {
	d := newDirectory(t)

	// монстр 3 входит на клетку игрока
	killed := d.Move(3, gruid.Point{X: 5, Y: 5})
	assert.Equal(t, domain.PlayerID, killed)
	assert.False(t, d.Player().Alive)
	id, _ := d.At(gruid.Point{X: 5, Y: 5})
	assert.Equal(t, domain.ActorID(3), id)
	_, ok := d.At(gruid.Point{X: 3, Y: 1})
	assert.False(t, ok)

	// монстр 1 съедает монстра 2
	killed = d.Move(1, gruid.Point{X: 2, Y: 1})
	assert.Equal(t, domain.ActorID(2), killed)
	assert.Equal(t, 2, d.LiveCount())
	assert.Equal(t, gruid.Point{X: 2, Y: 1}, d.Monster(1).Pos)

	// шаг на пустую клетку
	assert.Equal(t, domain.NoActor, d.Move(1, gruid.Point{X: 2, Y: 2}))
	id, _ = d.At(gruid.Point{X: 2, Y: 2})
	assert.Equal(t, domain.ActorID(1), id)
}

func TestActorDirectory_PlayerAttacks(t *testing.T) {
	d := newDirectory(t)
	d.Move(domain.PlayerID, gruid.Point{X: 4, Y: 2})
	killed := d.Move(domain.PlayerID, gruid.Point{X: 3, Y: 1})
	assert.Equal(t, domain.ActorID(3), killed)
	assert.True(t, d.Player().Alive)
	assert.Equal(t, gruid.Point{X: 3, Y: 1}, d.Player().Pos)
	assert.Equal(t, 2, d.LiveCount())
}
