package domain

import "codeberg.org/anaseto/gruid/rl"

// Terrain - тип клетки. Хранится в rl.Grid, поэтому это rl.Cell.
type Terrain = rl.Cell

const (
	Rock Terrain = iota
	Floor
	Corridor
	UpStair
	DownStair
)

// TerrainRune - символ клетки для текстового вывода.
func TerrainRune(t Terrain) rune {
	switch t {
	case Floor:
		return '.'
	case Corridor:
		return '#'
	case UpStair:
		return '<'
	case DownStair:
		return '>'
	default:
		return ' '
	}
}

func IsStair(t Terrain) bool {
	return t == UpStair || t == DownStair
}
