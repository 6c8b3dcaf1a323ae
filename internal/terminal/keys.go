package terminal

import (
	"errors"
	"rlg327/internal/domain"

	"codeberg.org/anaseto/gruid"
	"github.com/gdamore/tcell/v2"
)

var errUnknownKey = errors.New("unknown key")

// Раскладка: vi-клавиши и цифровой блок (RLG327).
//
//	y k u    7 8 9
//	h . l    4 5 6
//	b j n    1 2 3
var runeDirs = map[rune]gruid.Point{
	'y': {X: -1, Y: -1}, '7': {X: -1, Y: -1},
	'k': {X: 0, Y: -1}, '8': {X: 0, Y: -1},
	'u': {X: 1, Y: -1}, '9': {X: 1, Y: -1},
	'h': {X: -1, Y: 0}, '4': {X: -1, Y: 0},
	'l': {X: 1, Y: 0}, '6': {X: 1, Y: 0},
	'b': {X: -1, Y: 1}, '1': {X: -1, Y: 1},
	'j': {X: 0, Y: 1}, '2': {X: 0, Y: 1},
	'n': {X: 1, Y: 1}, '3': {X: 1, Y: 1},
}

var keyDirs = map[tcell.Key]gruid.Point{
	tcell.KeyUp:    {X: 0, Y: -1},
	tcell.KeyDown:  {X: 0, Y: 1},
	tcell.KeyLeft:  {X: -1, Y: 0},
	tcell.KeyRight: {X: 1, Y: 0},
	tcell.KeyHome:  {X: -1, Y: -1},
	tcell.KeyPgUp:  {X: 1, Y: -1},
	tcell.KeyEnd:   {X: -1, Y: 1},
	tcell.KeyPgDn:  {X: 1, Y: 1},
}

// KeyAction переводит нажатие в действие игрока.
// q, Q и Esc дают domain.ErrQuit.
func KeyAction(ev *tcell.EventKey) (domain.PlayerAction, error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return domain.PlayerAction{}, domain.ErrQuit
	case tcell.KeyRune:
	default:
		if dir, ok := keyDirs[ev.Key()]; ok {
			return domain.Move(dir), nil
		}
		return domain.PlayerAction{}, errUnknownKey
	}

	r := ev.Rune()
	if dir, ok := runeDirs[r]; ok {
		return domain.Move(dir), nil
	}
	switch r {
	case '.', ' ', '5':
		return domain.Rest(), nil
	case '<':
		return domain.Ascend(), nil
	case '>':
		return domain.Descend(), nil
	case 'q', 'Q':
		return domain.PlayerAction{}, domain.ErrQuit
	}
	return domain.PlayerAction{}, errUnknownKey
}
