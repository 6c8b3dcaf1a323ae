package systems

import (
	"fmt"
	"math"
	"rlg327/internal/domain"
	"rlg327/pkg/pqueue"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// Unreachable - расстояние до клеток, куда путь не найден.
const Unreachable = math.MaxInt32

// TunnelCost - вес шага из клетки с данной твердостью для роющего монстра.
func TunnelCost(hardness int) int {
	switch {
	case hardness < 85:
		return 1
	case hardness <= 170:
		return 2
	default:
		return 3
	}
}

// Field - поле расстояний до игрока по всей доске.
type Field struct {
	size   gruid.Point
	dist   []int
	source gruid.Point
	rev    uint64 // ревизия доски, на которой поле посчитано
	ready  bool
}

func newField(size gruid.Point) Field {
	return Field{size: size, dist: make([]int, size.X*size.Y)}
}

// At возвращает расстояние; вне доски - Unreachable.
func (f *Field) At(p gruid.Point) int {
	if p.X < 0 || p.Y < 0 || p.X >= f.size.X || p.Y >= f.size.Y {
		return Unreachable
	}
	return f.dist[p.Y*f.size.X+p.X]
}

func (f *Field) set(p gruid.Point, d int) {
	f.dist[p.Y*f.size.X+p.X] = d
}

// Source - клетка игрока, от которой считалось поле.
func (f *Field) Source() gruid.Point { return f.source }

// DistanceFields владеет двумя полями расстояний: для роющих и для обычных монстров.
//
// Обычное поле зависит только от проходимости клеток, роющее - от любой
// твердости. Чтение устаревшего поля - ошибка программы и вызывает панику.
type DistanceFields struct {
	grid         *domain.Grid
	tunneling    Field
	nonTunneling Field
	nbs          paths.Neighbors
}

func NewDistanceFields(grid *domain.Grid) *DistanceFields {
	return &DistanceFields{
		grid:         grid,
		tunneling:    newField(grid.Size()),
		nonTunneling: newField(grid.Size()),
	}
}

// Recompute пересчитывает оба поля от позиции игрока.
func (df *DistanceFields) Recompute(player gruid.Point) {
	df.RecomputeNonTunneling(player)
	df.RecomputeTunneling(player)
}

// RecomputeNonTunneling: 8 направлений по клеткам с твердостью 0, вес 1.
func (df *DistanceFields) RecomputeNonTunneling(player gruid.Point) {
	_, open := df.grid.Revisions()
	df.dijkstra(&df.nonTunneling, player, df.grid.IsOpen, func(gruid.Point) int { return 1 })
	df.nonTunneling.rev = open
}

// RecomputeTunneling: 8 направлений по всем клеткам кроме неразрушимых,
// вес шага определяется твердостью клетки, из которой шагают.
func (df *DistanceFields) RecomputeTunneling(player gruid.Point) {
	hard, _ := df.grid.Revisions()
	eligible := func(p gruid.Point) bool { return !df.grid.IsImmutable(p) }
	weight := func(p gruid.Point) int { return TunnelCost(df.grid.Hardness(p)) }
	df.dijkstra(&df.tunneling, player, eligible, weight)
	df.tunneling.rev = hard
}

// dijkstra: все подходящие клетки кладутся в очередь с бесконечностью (источник - с 0),
// далее extract-min и decrease-key для соседей, до которых нашелся путь короче.
func (df *DistanceFields) dijkstra(f *Field, src gruid.Point, eligible func(gruid.Point) bool, weight func(gruid.Point) int) {
	for i := range f.dist {
		f.dist[i] = Unreachable
	}
	f.source = src
	f.ready = true
	if !df.grid.Contains(src) || !eligible(src) {
		return
	}

	q := pqueue.New[gruid.Point](len(f.dist))
	for p := range df.grid.Points() {
		if !eligible(p) {
			continue
		}
		d := Unreachable
		if p == src {
			d = 0
		}
		f.set(p, d)
		_ = q.Insert(p, d)
	}

	keep := func(p gruid.Point) bool { return df.grid.Contains(p) && eligible(p) }
	for q.Len() > 0 {
		p, d, _ := q.ExtractMin()
		if d == Unreachable {
			// остальное недостижимо
			break
		}
		nd := d + weight(p)
		for _, nb := range df.nbs.All(p, keep) {
			if !q.Contains(nb) {
				continue
			}
			if nd < f.At(nb) {
				f.set(nb, nd)
				_ = q.DecreasePriority(nb, nd)
			}
		}
	}
}

// NonTunneling возвращает поле для обычных монстров. Паникует, если поле устарело
// относительно доски.
func (df *DistanceFields) NonTunneling() *Field {
	_, open := df.grid.Revisions()
	if !df.nonTunneling.ready || df.nonTunneling.rev != open {
		panic(fmt.Sprintf("systems: stale non-tunneling field (rev %d, grid %d)", df.nonTunneling.rev, open))
	}
	return &df.nonTunneling
}

// Tunneling возвращает поле для роющих монстров. Паникует, если поле устарело.
func (df *DistanceFields) Tunneling() *Field {
	hard, _ := df.grid.Revisions()
	if !df.tunneling.ready || df.tunneling.rev != hard {
		panic(fmt.Sprintf("systems: stale tunneling field (rev %d, grid %d)", df.tunneling.rev, hard))
	}
	return &df.tunneling
}

// Check сверяет оба поля с текущей доской и позицией игрока.
func (df *DistanceFields) Check(player gruid.Point) error {
	hard, open := df.grid.Revisions()
	switch {
	case !df.nonTunneling.ready || !df.tunneling.ready:
		return fmt.Errorf("distance fields were never computed")
	case df.nonTunneling.rev != open:
		return fmt.Errorf("non-tunneling field is stale: rev %d, grid %d", df.nonTunneling.rev, open)
	case df.tunneling.rev != hard:
		return fmt.Errorf("tunneling field is stale: rev %d, grid %d", df.tunneling.rev, hard)
	case df.nonTunneling.source != player || df.tunneling.source != player:
		return fmt.Errorf("distance fields computed from %v, player at %v", df.nonTunneling.source, player)
	}
	return nil
}
