// Package input turns raw front-end events into actions on the world state.
package input

import "sync"

// EventKind discriminates raw input events.
type EventKind int

const (
	EventQuit EventKind = iota
	EventPress
	EventKey
)

// Button identifies the pointer button of a press. Scroll wheel ticks arrive
// as presses of ButtonScrollUp and ButtonScrollDown.
type Button int

const (
	ButtonPrimary Button = iota + 1
	ButtonSecondary
	ButtonMiddle
	ButtonScrollUp
	ButtonScrollDown
)

// Key identifies a keyboard key relevant to the controls.
type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyN
	KeyC
	KeyR
	KeyQ
	KeyEscape
)

// Event is one raw event delivered by a front end.
type Event struct {
	Kind   EventKind
	X, Y   int
	Button Button
	Key    Key
}

// QuitEvent reports a window close or interrupt.
func QuitEvent() Event { return Event{Kind: EventQuit} }

// PressEvent reports a pointer button press at window pixel (x, y).
func PressEvent(x, y int, b Button) Event { return Event{Kind: EventPress, X: x, Y: y, Button: b} }

// KeyEvent reports a key press.
func KeyEvent(k Key) Event { return Event{Kind: EventKey, Key: k} }

// Queue buffers events pushed from a front-end goroutine until the main loop
// drains them.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// Push appends an event.
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Poll removes and returns every pending event without blocking.
func (q *Queue) Poll() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	evs := q.events
	q.events = nil
	return evs
}
