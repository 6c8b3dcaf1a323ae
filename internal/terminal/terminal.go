package terminal

import (
	"context"
	"errors"
	"fmt"
	"rlg327/internal/domain"
	"rlg327/pkg/logger"
	"sync"

	"codeberg.org/anaseto/gruid"
	"github.com/gdamore/tcell/v2"
)

var (
	styleDefault = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleMonster = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStairs  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

// Terminal - полноэкранный контроллер игрока на tcell.
// Реализует domain.PlayerController: ждет клавишу, сам отсекает незаконные ходы.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	once   sync.Once

	status string
}

// New открывает настоящий терминал.
func New() (*Terminal, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return NewWithScreen(scr)
}

// NewWithScreen работает поверх готового экрана (в тестах - SimulationScreen).
func NewWithScreen(scr tcell.Screen) (*Terminal, error) {
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	t := &Terminal{
		screen: scr,
		events: make(chan tcell.Event),
		quit:   make(chan struct{}),
		status: "hjklyubn - ход, . - отдых, < > - лестницы, q - выход",
	}
	go t.poll()
	return t, nil
}

// poll перекладывает события экрана в канал, пока экран открыт.
func (t *Terminal) poll() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

func (t *Terminal) NextAction(ctx context.Context, view domain.PlayerView) (domain.PlayerAction, error) {
	for {
		t.draw(view)
		t.status = ""

		select {
		case <-ctx.Done():
			return domain.PlayerAction{}, ctx.Err()
		case <-t.quit:
			return domain.PlayerAction{}, domain.ErrQuit
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				t.screen.Sync()
			case *tcell.EventKey:
				action, err := KeyAction(ev)
				if errors.Is(err, domain.ErrQuit) {
					return domain.PlayerAction{}, err
				}
				if err != nil {
					t.status = "Неизвестная клавиша"
					continue
				}
				if msg := rejection(view, action); msg != "" {
					t.status = msg
					continue
				}
				return action, nil
			}
		}
	}
}

// rejection проверяет действие до отправки в движок. Пустая строка - действие законно.
func rejection(view domain.PlayerView, action domain.PlayerAction) string {
	here := view.Grid().Terrain(view.PlayerPos())
	switch action.Type {
	case domain.ActionMove:
		if !view.CanMove(action.Dir) {
			return "Там скала"
		}
	case domain.ActionAscend:
		if here != domain.UpStair {
			return "Здесь нет лестницы вверх"
		}
	case domain.ActionDescend:
		if here != domain.DownStair {
			return "Здесь нет лестницы вниз"
		}
	}
	return ""
}

// draw рисует строку статуса и окно доски, сдвинутое так, чтобы игрок был виден.
func (t *Terminal) draw(view domain.PlayerView) {
	t.screen.Clear()
	w, h := t.screen.Size()

	line := fmt.Sprintf("Глубина %d  %s", view.Depth(), t.status)
	x := 0
	for _, r := range line {
		if x >= w {
			break
		}
		t.screen.SetContent(x, 0, r, nil, styleStatus)
		x++
	}

	grid := view.Grid()
	player := view.PlayerPos()
	ox := offset(player.X, w, grid.Width())
	oy := offset(player.Y, h-1, grid.Height())
	for sy := 1; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			p := gruid.Point{X: sx + ox, Y: sy - 1 + oy}
			if !grid.Contains(p) {
				continue
			}
			r := view.Glyph(p)
			t.screen.SetContent(sx, sy, r, nil, glyphStyle(view, p, r))
		}
	}
	t.screen.Show()
}

func glyphStyle(view domain.PlayerView, p gruid.Point, r rune) tcell.Style {
	switch {
	case r == '@':
		return stylePlayer
	case view.MonsterAt(p):
		return styleMonster
	case domain.IsStair(view.Grid().Terrain(p)):
		return styleStairs
	default:
		return styleDefault
	}
}

// offset - левый (верхний) край окна размером view по оси длиной size с центром на pos.
func offset(pos, view, size int) int {
	if size <= view {
		return 0
	}
	o := pos - view/2
	return max(0, min(o, size-view))
}

// Close возвращает терминал в обычный режим.
func (t *Terminal) Close() {
	t.once.Do(func() {
		close(t.quit)
		t.screen.Fini()
		logger.Log.Debug("Terminal closed")
	})
}
