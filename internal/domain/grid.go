package domain

import (
	"fmt"
	"iter"
	"slices"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"
)

// Grid - доска: твердость и тип местности для каждой клетки.
//
// Инварианты: твердость 255 только на внешнем кольце и никогда не меняется;
// твердость 0 тогда и только тогда, когда клетка открыта (комната, коридор, лестница).
type Grid struct {
	hardness rl.Grid
	terrain  rl.Grid

	hardRev uint64 // растет при любом изменении твердости
	openRev uint64 // растет, когда клетка становится проходимой

	nbs paths.Neighbors
}

// NewGrid создает доску, полностью залитую неразрушимой породой.
// Генератор или загрузчик затем задают внутренность.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		hardness: rl.NewGrid(width, height),
		terrain:  rl.NewGrid(width, height),
	}
	g.hardness.Fill(HardnessImmutable)
	g.terrain.Fill(Rock)
	return g
}

func (g *Grid) Size() gruid.Point           { return g.hardness.Size() }
func (g *Grid) Range() gruid.Range          { return g.hardness.Range() }
func (g *Grid) Width() int                  { return g.Size().X }
func (g *Grid) Height() int                 { return g.Size().Y }
func (g *Grid) Contains(p gruid.Point) bool { return p.In(g.Range()) }

// IsBorder сообщает, лежит ли клетка на внешнем кольце.
func (g *Grid) IsBorder(p gruid.Point) bool {
	sz := g.Size()
	return p.X == 0 || p.Y == 0 || p.X == sz.X-1 || p.Y == sz.Y-1
}

// IsInterior - внутри доски и не на кольце.
func (g *Grid) IsInterior(p gruid.Point) bool {
	return g.Contains(p) && !g.IsBorder(p)
}

// Hardness возвращает твердость; за пределами доски - 255.
func (g *Grid) Hardness(p gruid.Point) int {
	if !g.Contains(p) {
		return HardnessImmutable
	}
	return int(g.hardness.At(p))
}

func (g *Grid) Terrain(p gruid.Point) Terrain {
	if !g.Contains(p) {
		return Rock
	}
	return g.terrain.At(p)
}

// IsOpen - проходима ли клетка без рытья.
func (g *Grid) IsOpen(p gruid.Point) bool {
	return g.Contains(p) && g.hardness.At(p) == HardnessOpen
}

func (g *Grid) IsImmutable(p gruid.Point) bool {
	return g.Hardness(p) == HardnessImmutable
}

// SetRock задает твердость внутренней клетки породы (1..254).
func (g *Grid) SetRock(p gruid.Point, hardness int) {
	if !g.IsInterior(p) {
		panic(fmt.Sprintf("domain: SetRock on non-interior cell %v", p))
	}
	if hardness <= HardnessOpen || hardness >= HardnessImmutable {
		panic(fmt.Sprintf("domain: rock hardness %d out of range at %v", hardness, p))
	}
	wasOpen := g.IsOpen(p)
	g.hardness.Set(p, rl.Cell(hardness))
	g.terrain.Set(p, Rock)
	g.hardRev++
	if wasOpen {
		g.openRev++
	}
}

// Carve открывает клетку и назначает ей тип местности.
func (g *Grid) Carve(p gruid.Point, t Terrain) {
	if !g.IsInterior(p) {
		panic(fmt.Sprintf("domain: carving non-interior cell %v", p))
	}
	if t == Rock {
		panic("domain: cannot carve rock")
	}
	if !g.IsOpen(p) {
		g.hardness.Set(p, HardnessOpen)
		g.hardRev++
		g.openRev++
	}
	g.terrain.Set(p, t)
}

// Dig снимает amount твердости с клетки породы. Если твердость дошла до нуля,
// клетка становится коридором и Dig возвращает true.
func (g *Grid) Dig(p gruid.Point, amount int) bool {
	h := g.Hardness(p)
	switch {
	case h == HardnessImmutable:
		panic(fmt.Sprintf("domain: digging immutable rock at %v", p))
	case h == HardnessOpen:
		return false
	}
	h -= amount
	if h <= HardnessOpen {
		g.Carve(p, Corridor)
		return true
	}
	g.hardness.Set(p, rl.Cell(h))
	g.hardRev++
	return false
}

// Revisions возвращает счетчики изменений: любая твердость и переходы проходимости.
func (g *Grid) Revisions() (hardness, open uint64) {
	return g.hardRev, g.openRev
}

// Points обходит все клетки построчно.
func (g *Grid) Points() iter.Seq[gruid.Point] {
	return func(yield func(gruid.Point) bool) {
		for p := range g.hardness.All() {
			if !yield(p) {
				return
			}
		}
	}
}

// Neighbors возвращает до 8 соседей внутри доски, прошедших фильтр keep.
// Результат - новый срез, его можно хранить.
func (g *Grid) Neighbors(p gruid.Point, keep func(gruid.Point) bool) []gruid.Point {
	ps := g.nbs.All(p, func(q gruid.Point) bool {
		return g.Contains(q) && (keep == nil || keep(q))
	})
	return slices.Clone(ps)
}

// OpenNeighbors - соседи с твердостью 0.
func (g *Grid) OpenNeighbors(p gruid.Point) []gruid.Point {
	return g.Neighbors(p, g.IsOpen)
}

// DiggableNeighbors - соседи, которые не являются неразрушимой породой.
func (g *Grid) DiggableNeighbors(p gruid.Point) []gruid.Point {
	return g.Neighbors(p, func(q gruid.Point) bool { return !g.IsImmutable(q) })
}
