package dungeon

import (
	"math/rand/v2"
	"rlg327/internal/domain"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// Лимиты попыток генерации
const (
	DefaultRoomAttempts   = 2000 // попыток поставить одну комнату
	DefaultLayoutAttempts = 20   // попыток собрать весь уровень заново
)

// fillRock заливает внутренность случайной твердостью 1..254. Кольцо остается 255.
func fillRock(g *domain.Grid, rng *rand.Rand) {
	for p := range g.Points() {
		if g.IsBorder(p) {
			continue
		}
		g.SetRock(p, randRange(rng, 1, domain.HardnessImmutable-1))
	}
}

// sampleRoom предлагает случайный прямоугольник, обрезанный по внутренности доски.
// ok=false если после обрезки комната меньше минимального размера.
func sampleRoom(size gruid.Point, rng *rand.Rand) (domain.Room, bool) {
	x := randRange(rng, 1, size.X-2)
	y := randRange(rng, 1, size.Y-2)
	w := randRange(rng, domain.MinRoomWidth, domain.MaxRoomWidth)
	h := randRange(rng, domain.MinRoomHeight, domain.MaxRoomHeight)

	r := domain.NewRoom(x, y, w, h)
	r.End.X = min(r.End.X, size.X-2)
	r.End.Y = min(r.End.Y, size.Y-2)
	if r.Width() < domain.MinRoomWidth || r.Height() < domain.MinRoomHeight {
		return r, false
	}
	return r, true
}

// placeRooms ставит count комнат без пересечений. Порядок комнат важен
// для топологии коридоров. ok=false если какая-то комната не встала за attempts попыток.
func placeRooms(size gruid.Point, count, attempts int, rng *rand.Rand) ([]domain.Room, bool) {
	rooms := make([]domain.Room, 0, count)
	for range count {
		placed := false
		for range attempts {
			r, ok := sampleRoom(size, rng)
			if !ok || overlapsAny(r, rooms) {
				continue
			}
			rooms = append(rooms, r)
			placed = true
			break
		}
		if !placed {
			return rooms, false
		}
	}
	return rooms, true
}

func overlapsAny(r domain.Room, rooms []domain.Room) bool {
	for _, other := range rooms {
		if r.Overlaps(other) {
			return true
		}
	}
	return false
}

func carveRoom(g *domain.Grid, r domain.Room) {
	for y := r.Start.Y; y <= r.End.Y; y++ {
		for x := r.Start.X; x <= r.End.X; x++ {
			g.Carve(gruid.Point{X: x, Y: y}, domain.Floor)
		}
	}
}

// carveCorridor прокладывает коридор от центра from к центру to.
// По открытой клетке шагаем детерминированно (сначала по y), по породе -
// выкапываем текущую клетку и бросаем монетку между невыровненными осями.
func carveCorridor(g *domain.Grid, from, to gruid.Point, rng *rand.Rand) {
	cur := from
	for cur != to {
		dx := sign(to.X - cur.X)
		dy := sign(to.Y - cur.Y)
		if g.IsOpen(cur) {
			if dy != 0 {
				cur.Y += dy
			} else {
				cur.X += dx
			}
			continue
		}
		g.Carve(cur, domain.Corridor)
		switch {
		case dx != 0 && dy != 0:
			if rng.IntN(2) == 0 {
				cur.X += dx
			} else {
				cur.Y += dy
			}
		case dx != 0:
			cur.X += dx
		default:
			cur.Y += dy
		}
	}
}

// connectRooms соединяет комнату i с комнатой (i+1) mod n, образуя цикл.
func connectRooms(g *domain.Grid, rooms []domain.Room, rng *rand.Rand) {
	n := len(rooms)
	if n < 2 {
		return
	}
	for i := range rooms {
		carveCorridor(g, rooms[i].Center(), rooms[(i+1)%n].Center(), rng)
	}
}

// placeStairs: первая половина комнат получает лестницы вверх, вторая - вниз.
func placeStairs(g *domain.Grid, rooms []domain.Room, rng *rand.Rand) {
	half := len(rooms) / 2
	for i, r := range rooms {
		t := domain.DownStair
		if i < half {
			t = domain.UpStair
		}
		p := gruid.Point{
			X: randRange(rng, r.Start.X, r.End.X),
			Y: randRange(rng, r.Start.Y, r.End.Y),
		}
		g.Carve(p, t)
	}
}

// openPath реализует paths.Pather по открытым клеткам.
type openPath struct {
	grid *domain.Grid
	nbs  paths.Neighbors
}

func (op *openPath) Neighbors(p gruid.Point) []gruid.Point {
	return op.nbs.All(p, op.grid.IsOpen)
}

// Connected проверяет, что все открытые клетки образуют одну компоненту
// связности (8 направлений).
func Connected(g *domain.Grid) bool {
	var start gruid.Point
	found := false
	for p := range g.Points() {
		if g.IsOpen(p) {
			start, found = p, true
			break
		}
	}
	if !found {
		return true
	}
	pr := paths.NewPathRange(g.Range())
	pr.CCMap(&openPath{grid: g}, start)
	for p := range g.Points() {
		if g.IsOpen(p) && pr.CCMapAt(p) == -1 {
			return false
		}
	}
	return true
}

func randRange(rng *rand.Rand, lo, hi int) int {
	return rng.IntN(hi-lo+1) + lo
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
