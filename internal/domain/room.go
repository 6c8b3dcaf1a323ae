package domain

import "codeberg.org/anaseto/gruid"

// Room - прямоугольник комнаты, обе границы включительно.
type Room struct {
	Start gruid.Point
	End   gruid.Point
}

// NewRoom строит комнату по левому верхнему углу и размерам.
func NewRoom(x, y, width, height int) Room {
	return Room{
		Start: gruid.Point{X: x, Y: y},
		End:   gruid.Point{X: x + width - 1, Y: y + height - 1},
	}
}

func (r Room) Width() int  { return r.End.X - r.Start.X + 1 }
func (r Room) Height() int { return r.End.Y - r.Start.Y + 1 }

// Center - центр комнаты (округление к началу).
func (r Room) Center() gruid.Point {
	return gruid.Point{
		X: r.Start.X + (r.End.X-r.Start.X)/2,
		Y: r.Start.Y + (r.End.Y-r.Start.Y)/2,
	}
}

// Range переводит комнату в полуоткрытый gruid.Range.
func (r Room) Range() gruid.Range {
	return gruid.NewRange(r.Start.X, r.Start.Y, r.End.X+1, r.End.Y+1)
}

func (r Room) Contains(p gruid.Point) bool {
	return p.In(r.Range())
}

// Overlaps проверяет пересечение с учетом буфера в одну клетку со всех сторон.
func (r Room) Overlaps(other Room) bool {
	padded := gruid.NewRange(r.Start.X-1, r.Start.Y-1, r.End.X+2, r.End.Y+2)
	return !padded.Intersect(other.Range()).Empty()
}

// RoomAt возвращает индекс первой комнаты, содержащей p.
func RoomAt(rooms []Room, p gruid.Point) (int, bool) {
	for i, r := range rooms {
		if r.Contains(p) {
			return i, true
		}
	}
	return -1, false
}
