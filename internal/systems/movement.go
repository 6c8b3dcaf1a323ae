package systems

import (
	"math/rand/v2"
	"rlg327/internal/domain"

	"codeberg.org/anaseto/gruid"
)

// StepToward - шаг на одну клетку к цели по каждой оси независимо
// (-1/0/+1, ось замирает, как только координата совпала).
func StepToward(from, to gruid.Point) gruid.Point {
	return from.Add(gruid.Point{X: sign(to.X - from.X), Y: sign(to.Y - from.Y)})
}

// RandomOpenStep - случайный шаг на открытую соседнюю клетку. Если шагать некуда, стоим.
func RandomOpenStep(g *domain.Grid, from gruid.Point, rng *rand.Rand) gruid.Point {
	return pick(g.OpenNeighbors(from), from, rng)
}

// RandomDiggableStep - случайная соседняя клетка, кроме неразрушимой породы.
func RandomDiggableStep(g *domain.Grid, from gruid.Point, rng *rand.Rand) gruid.Point {
	return pick(g.DiggableNeighbors(from), from, rng)
}

// Descend выбирает соседа со строго меньшим значением поля, чем у текущей клетки.
// При равенстве побеждает первый в порядке domain.Directions. Если такого нет, стоим.
func Descend(f *Field, from gruid.Point) gruid.Point {
	best, bestDist := from, f.At(from)
	for _, d := range domain.Directions {
		q := from.Add(d)
		if dist := f.At(q); dist < bestDist {
			best, bestDist = q, dist
		}
	}
	return best
}

func pick(options []gruid.Point, fallback gruid.Point, rng *rand.Rand) gruid.Point {
	if len(options) == 0 {
		return fallback
	}
	return options[rng.IntN(len(options))]
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
