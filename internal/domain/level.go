package domain

import "codeberg.org/anaseto/gruid"

// Level - сгенерированный или загруженный уровень: доска и комнаты в порядке создания.
type Level struct {
	Grid  *Grid
	Rooms []Room
}

// Stairs возвращает все клетки с лестницами данного типа.
func (l *Level) Stairs(t Terrain) []gruid.Point {
	var ps []gruid.Point
	for p := range l.Grid.Points() {
		if l.Grid.Terrain(p) == t {
			ps = append(ps, p)
		}
	}
	return ps
}
