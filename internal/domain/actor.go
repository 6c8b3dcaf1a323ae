package domain

import (
	"strings"

	"codeberg.org/anaseto/gruid"
)

// ActorID - идентификатор актора. Игрок всегда 0, монстры нумеруются с 1.
type ActorID int

const (
	NoActor  ActorID = -1
	PlayerID ActorID = 0
)

// Behavior - набор из четырех независимых черт монстра.
type Behavior uint8

const (
	Intelligent Behavior = 1 << iota
	Telepathic
	Tunneling
	Erratic

	BehaviorMask = Intelligent | Telepathic | Tunneling | Erratic
)

var behaviorNames = []struct {
	bit  Behavior
	name string
}{
	{Intelligent, "INTELLIGENT"},
	{Telepathic, "TELEPATHIC"},
	{Tunneling, "TUNNELING"},
	{Erratic, "ERRATIC"},
}

func (b Behavior) Has(f Behavior) bool { return b&f != 0 }

// Rune - шестнадцатеричная цифра маски, ею монстр рисуется на доске.
func (b Behavior) Rune() rune {
	return rune("0123456789abcdef"[b&BehaviorMask])
}

func (b Behavior) String() string {
	var parts []string
	for _, n := range behaviorNames {
		if b.Has(n.bit) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "NONE"
	}
	return strings.Join(parts, "|")
}

// Monster - состояние одного монстра.
type Monster struct {
	ID       ActorID
	Pos      gruid.Point
	Behavior Behavior
	Speed    int

	lastSeen  gruid.Point
	remembers bool
}

// Remember запоминает, где монстр последний раз видел игрока.
func (m *Monster) Remember(p gruid.Point) {
	m.lastSeen = p
	m.remembers = true
}

func (m *Monster) Forget() {
	m.lastSeen = gruid.Point{}
	m.remembers = false
}

// Recall возвращает запомненную позицию игрока, если она есть.
func (m *Monster) Recall() (gruid.Point, bool) {
	return m.lastSeen, m.remembers
}

// Player - единственный игрок. После гибели запись остается, меняется только Alive.
type Player struct {
	Pos   gruid.Point
	Alive bool
}
