package input

import "time"

// Key is a backend-neutral key id.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

var keyNames = map[Key]string{
	KeyNone:   "none",
	KeyEscape: "escape",
	KeySpace:  "space",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyLeft:   "left",
	KeyRight:  "right",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "unknown"
}

type EventKind int

const (
	EventQuit EventKind = iota
	EventKeyDown
)

// Event is one discrete input event drained at the top of a tick.
type Event struct {
	Kind EventKind
	Key  Key
}

func Quit() Event { return Event{Kind: EventQuit} }

func KeyPress(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// Held is the continuous state of the arrow keys.
type Held struct {
	Up, Down, Left, Right bool
}

// Axis returns (right-left, down-up).
func (h Held) Axis() (int, int) {
	return b2i(h.Right) - b2i(h.Left), b2i(h.Down) - b2i(h.Up)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Frame is everything the simulation reads from the backend in one tick.
type Frame struct {
	Events []Event
	Held   Held
}

// HoldTracker derives held-key state for backends that only report key
// presses (terminals). After a fresh press a key stays held for Delay, long
// enough to reach the terminal's first auto-repeat. Once repeats arrive it
// stays held until Window elapses without another one.
type HoldTracker struct {
	Delay  time.Duration
	Window time.Duration
	keys   map[Key]holdState
}

type holdState struct {
	last      time.Time
	repeating bool
}

func NewHoldTracker(delay, window time.Duration) *HoldTracker {
	return &HoldTracker{Delay: delay, Window: window, keys: make(map[Key]holdState)}
}

// Press records k at now and reports whether it is a fresh press rather
// than an auto-repeat of a key already held.
func (t *HoldTracker) Press(k Key, now time.Time) bool {
	fresh := !t.IsHeld(k, now)
	t.keys[k] = holdState{last: now, repeating: !fresh}
	return fresh
}

func (t *HoldTracker) IsHeld(k Key, now time.Time) bool {
	st, ok := t.keys[k]
	if !ok {
		return false
	}
	window := t.Delay
	if st.repeating {
		window = t.Window
	}
	return now.Sub(st.last) < window
}

func (t *HoldTracker) Held(now time.Time) Held {
	return Held{
		Up:    t.IsHeld(KeyUp, now),
		Down:  t.IsHeld(KeyDown, now),
		Left:  t.IsHeld(KeyLeft, now),
		Right: t.IsHeld(KeyRight, now),
	}
}
