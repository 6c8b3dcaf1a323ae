package domain

import (
	"strings"

	"codeberg.org/anaseto/gruid"
)

// ActionType - числовой идентификатор действия игрока
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMove
	ActionRest
	ActionAscend
	ActionDescend
)

var actionStringToCmd = map[string]ActionType{
	"MOVE":    ActionMove,
	"REST":    ActionRest,
	"ASCEND":  ActionAscend,
	"DESCEND": ActionDescend,
}

var actionCmdToString = map[ActionType]string{
	ActionMove:    "MOVE",
	ActionRest:    "REST",
	ActionAscend:  "ASCEND",
	ActionDescend: "DESCEND",
}

// ParseAction конвертирует строку в ActionType (без учета регистра)
func ParseAction(s string) ActionType {
	if val, ok := actionStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionUnknown
}

func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// Directions - 8 направлений в фиксированном порядке обхода (построчно).
// От этого порядка зависит разрешение ничьих при спуске по полю расстояний.
var Directions = [8]gruid.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// IsStep - является ли смещение шагом на соседнюю клетку.
func IsStep(d gruid.Point) bool {
	return d != (gruid.Point{}) && d.X >= -1 && d.X <= 1 && d.Y >= -1 && d.Y <= 1
}

// PlayerAction - решение игрока на один ход.
type PlayerAction struct {
	Type ActionType
	Dir  gruid.Point // только для ActionMove
}

func Move(dir gruid.Point) PlayerAction { return PlayerAction{Type: ActionMove, Dir: dir} }
func Rest() PlayerAction                { return PlayerAction{Type: ActionRest} }
func Ascend() PlayerAction              { return PlayerAction{Type: ActionAscend} }
func Descend() PlayerAction             { return PlayerAction{Type: ActionDescend} }
