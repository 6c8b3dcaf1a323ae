package systems

import (
	"math/rand/v2"
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestStepToward(t *testing.T) {
	tests := []struct {
		name     string
		from, to gruid.Point
		want     gruid.Point
	}{
		{"diagonal", gruid.Point{X: 5, Y: 5}, gruid.Point{X: 9, Y: 1}, gruid.Point{X: 6, Y: 4}},
		{"x aligned", gruid.Point{X: 5, Y: 5}, gruid.Point{X: 5, Y: 9}, gruid.Point{X: 5, Y: 6}},
		{"y aligned", gruid.Point{X: 5, Y: 5}, gruid.Point{X: 1, Y: 5}, gruid.Point{X: 4, Y: 5}},
		{"same cell", gruid.Point{X: 5, Y: 5}, gruid.Point{X: 5, Y: 5}, gruid.Point{X: 5, Y: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StepToward(tt.from, tt.to); got != tt.want {
				t.Errorf("StepToward(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestRandomOpenStep(t *testing.T) {
	g := parseGrid(t,
		"#####",
		"#.#.#",
		"#.###",
		"#####",
	)
	rng := rand.New(rand.NewPCG(1, 2))

	from := gruid.Point{X: 1, Y: 1}
	for range 20 {
		got := RandomOpenStep(g, from, rng)
		if got != (gruid.Point{X: 1, Y: 2}) {
			t.Fatalf("RandomOpenStep = %v, want the only open neighbor", got)
		}
	}

	// замурованный монстр стоит на месте
	boxed := gruid.Point{X: 3, Y: 1}
	if got := RandomOpenStep(g, boxed, rng); got != boxed {
		t.Errorf("RandomOpenStep from boxed cell = %v, want %v", got, boxed)
	}

	// роющий может выбрать любую внутреннюю клетку, но не кольцо
	for range 50 {
		got := RandomDiggableStep(g, boxed, rng)
		if g.IsImmutable(got) {
			t.Fatalf("RandomDiggableStep picked immutable %v", got)
		}
	}
}

func TestDescend_TieBreakIsScanOrder(t *testing.T) {
	g := parseGrid(t,
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	)
	df := NewDistanceFields(g)
	df.Recompute(gruid.Point{X: 2, Y: 1})

	// от (2,3) соседи (1,2), (2,2), (3,2) все на расстоянии 1: побеждает первый по порядку
	got := Descend(df.NonTunneling(), gruid.Point{X: 2, Y: 3})
	if want := (gruid.Point{X: 1, Y: 2}); got != want {
		t.Errorf("Descend = %v, want %v", got, want)
	}

	// на клетке игрока спускаться некуда
	if got := Descend(df.NonTunneling(), gruid.Point{X: 2, Y: 1}); got != (gruid.Point{X: 2, Y: 1}) {
		t.Errorf("Descend at source = %v, want to stay", got)
	}
}
