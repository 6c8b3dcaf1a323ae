package handlers

import (
	"rlg327/internal/domain"

	"codeberg.org/anaseto/gruid"
)

// Mover перемещает игрока через справочник акторов (с разрешением боя).
// Возвращает ID убитого на клетке назначения или domain.NoActor.
type Mover interface {
	MovePlayer(to gruid.Point) domain.ActorID
}

// Context передает хендлеру состояние мира.
// Хендлер меняет мир только через Mover.
type Context struct {
	Grid   *domain.Grid
	Player *domain.Player
	Mover  Mover
}

// EventKind - тип события, которое хендлер просит обработать движок.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventLevelTransition
)

// Event - запрос к движку на действие за пределами хода (смена уровня).
type Event struct {
	Kind  EventKind
	Delta int // +1 вниз, -1 вверх
}

// Result - результат выполнения команды.
// Хендлер не пишет в журнал напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст для журнала
	MsgType string // Тип записи (INFO, COMBAT)
	Moved   bool   // Игрок сменил клетку, поля расстояний нужно пересчитать
	Event   *Event
}

// HandlerFunc - контракт для любой команды (MOVE, REST, ...).
type HandlerFunc func(ctx Context, action domain.PlayerAction) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
