package engine

import (
	"os"
	"rlg327/internal/domain"
	"rlg327/pkg/logger"
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestMain(m *testing.M) {
	logger.Init()
	logger.Silence()

	os.Exit(m.Run())
}

// parseLevel строит уровень по схеме: '.' пол, ',' коридор, 'a' порода 80,
// '<' и '>' лестницы, остальное порода 100. Кольцо всегда неразрушимо.
func parseLevel(t *testing.T, rooms []domain.Room, rows ...string) *domain.Level {
	t.Helper()
	g := domain.NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			p := gruid.Point{X: x, Y: y}
			if g.IsBorder(p) {
				continue
			}
			switch c {
			case '.':
				g.Carve(p, domain.Floor)
			case ',':
				g.Carve(p, domain.Corridor)
			case '<':
				g.Carve(p, domain.UpStair)
			case '>':
				g.Carve(p, domain.DownStair)
			case 'a':
				g.SetRock(p, 80)
			default:
				g.SetRock(p, 100)
			}
		}
	}
	return &domain.Level{Grid: g, Rooms: rooms}
}

// smallRoom - одна комната 6x3 на доске 8x5.
func smallRoom(t *testing.T) *domain.Level {
	return parseLevel(t, []domain.Room{domain.NewRoom(1, 1, 6, 3)},
		"########",
		"#......#",
		"#......#",
		"#......#",
		"########",
	)
}

func pt(x, y int) gruid.Point { return gruid.Point{X: x, Y: y} }

func testConfig() Config {
	return Config{Seed: 1, Rooms: domain.MinRooms, Monsters: 1}
}
