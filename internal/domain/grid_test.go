package domain

import (
	"testing"

	"codeberg.org/anaseto/gruid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_NewIsImmutableRock(t *testing.T) {
	g := NewGrid(6, 4)
	for p := range g.Points() {
		assert.Equal(t, HardnessImmutable, g.Hardness(p))
		assert.Equal(t, Rock, g.Terrain(p))
	}
	assert.True(t, g.IsBorder(gruid.Point{X: 5, Y: 2}))
	assert.False(t, g.IsBorder(gruid.Point{X: 2, Y: 2}))
}

func TestGrid_OutOfBounds(t *testing.T) {
	g := NewGrid(5, 5)
	p := gruid.Point{X: -1, Y: 3}
	assert.Equal(t, HardnessImmutable, g.Hardness(p))
	assert.Equal(t, Rock, g.Terrain(p))
	assert.False(t, g.IsOpen(p))
	assert.True(t, g.IsImmutable(p))
}

func TestGrid_CarveAndDig(t *testing.T) {
	g := NewGrid(5, 5)
	p := gruid.Point{X: 2, Y: 2}
	g.SetRock(p, 170)

	hard0, open0 := g.Revisions()
	assert.False(t, g.Dig(p, DigStrength))
	assert.Equal(t, 85, g.Hardness(p))
	hard1, open1 := g.Revisions()
	assert.Greater(t, hard1, hard0)
	assert.Equal(t, open0, open1)

	assert.True(t, g.Dig(p, DigStrength))
	assert.Equal(t, HardnessOpen, g.Hardness(p))
	assert.Equal(t, Corridor, g.Terrain(p))
	_, open2 := g.Revisions()
	assert.Greater(t, open2, open1)

	// открытая клетка не копается
	assert.False(t, g.Dig(p, DigStrength))
}

func TestGrid_DigClampsToZero(t *testing.T) {
	g := NewGrid(5, 5)
	p := gruid.Point{X: 1, Y: 1}
	g.SetRock(p, 80)
	require.True(t, g.Dig(p, DigStrength))
	assert.Equal(t, 0, g.Hardness(p))
	assert.Equal(t, Corridor, g.Terrain(p))
}

func TestGrid_DigImmutablePanics(t *testing.T) {
	g := NewGrid(5, 5)
	assert.Panics(t, func() { g.Dig(gruid.Point{X: 0, Y: 0}, DigStrength) })
	assert.Panics(t, func() { g.Carve(gruid.Point{X: 4, Y: 2}, Floor) })
}

func TestGrid_NeighborsStayInBounds(t *testing.T) {
	g := NewGrid(4, 4)
	corner := g.Neighbors(gruid.Point{X: 0, Y: 0}, nil)
	assert.Len(t, corner, 3)
	for _, q := range corner {
		assert.True(t, g.Contains(q))
	}
	assert.Len(t, g.Neighbors(gruid.Point{X: 1, Y: 1}, nil), 8)

	g.Carve(gruid.Point{X: 1, Y: 1}, Floor)
	g.Carve(gruid.Point{X: 2, Y: 2}, Corridor)
	g.SetRock(gruid.Point{X: 2, Y: 1}, 50)
	g.SetRock(gruid.Point{X: 1, Y: 2}, 200)
	open := g.OpenNeighbors(gruid.Point{X: 1, Y: 2})
	assert.ElementsMatch(t, []gruid.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}, open)

	// кольцо не копается
	assert.ElementsMatch(t,
		[]gruid.Point{{X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}},
		g.DiggableNeighbors(gruid.Point{X: 1, Y: 1}))
}
