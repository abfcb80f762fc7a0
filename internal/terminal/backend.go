// Package terminal renders the shooter into a tcell screen. Gameplay keeps
// working in pixels; each cell stands for CellWidth x CellHeight of them.
package terminal

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"shooter/internal/gamemode"
	"shooter/internal/input"
)

const (
	CellWidth  = 8
	CellHeight = 16

	// Terminals report presses only. A key counts as held for RepeatDelay
	// after a fresh press, covering the pause before auto-repeat starts,
	// then for HoldWindow after each repeat.
	RepeatDelay = 600 * time.Millisecond
	HoldWindow  = 150 * time.Millisecond
)

type Backend struct {
	screen tcell.Screen
	canvas *Canvas
	hold   *input.HoldTracker
	now    func() time.Time

	events    chan tcell.Event
	done      chan struct{}
	closeOnce sync.Once
}

// New initialises screen and starts reading its events.
func New(screen tcell.Screen) (*Backend, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.HideCursor()

	b := &Backend{
		screen: screen,
		canvas: &Canvas{screen: screen},
		hold:   input.NewHoldTracker(RepeatDelay, HoldWindow),
		now:    time.Now,
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
	}
	go b.pump()
	return b, nil
}

func (b *Backend) pump() {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case b.events <- ev:
		case <-b.done:
			return
		}
	}
}

// Size reports the screen in virtual pixels.
func (b *Backend) Size() (int, int) {
	cols, rows := b.screen.Size()
	return cols * CellWidth, rows * CellHeight
}

// Poll drains pending terminal events without blocking.
func (b *Backend) Poll() input.Frame {
	var f input.Frame
	now := b.now()
	for {
		select {
		case ev := <-b.events:
			f.Events = b.translate(f.Events, ev, now)
		default:
			f.Held = b.hold.Held(now)
			return f
		}
	}
}

func (b *Backend) translate(events []input.Event, ev tcell.Event, now time.Time) []input.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return append(events, input.Quit())
		case tcell.KeyEscape:
			return append(events, input.KeyPress(input.KeyEscape))
		case tcell.KeyUp:
			return b.press(events, input.KeyUp, now)
		case tcell.KeyDown:
			return b.press(events, input.KeyDown, now)
		case tcell.KeyLeft:
			return b.press(events, input.KeyLeft, now)
		case tcell.KeyRight:
			return b.press(events, input.KeyRight, now)
		case tcell.KeyRune:
			if ev.Rune() == ' ' {
				return b.press(events, input.KeySpace, now)
			}
		}
	case *tcell.EventResize:
		b.screen.Sync()
	}
	return events
}

// press reports a key-down only for fresh presses, not auto-repeat.
func (b *Backend) press(events []input.Event, k input.Key, now time.Time) []input.Event {
	if b.hold.Press(k, now) {
		return append(events, input.KeyPress(k))
	}
	return events
}

func (b *Backend) Canvas() gamemode.Canvas { return b.canvas }

func (b *Backend) Present() { b.screen.Show() }

// Close restores the terminal.
func (b *Backend) Close() {
	b.closeOnce.Do(func() {
		close(b.done)
		b.screen.Fini()
	})
}
