package input

import "zoomlife/internal/viewport"

// Action is a decoded user intent. The set of actions is closed; Dispatch
// handles each one.
type Action interface {
	action()
}

// Exit ends the main loop after the current frame.
type Exit struct{}

// ToggleCell flips the cell under window pixel (X, Y).
type ToggleCell struct{ X, Y int }

// Zoom changes the cell size by Delta pixels.
type Zoom struct{ Delta int }

// ToggleRun switches between running and paused.
type ToggleRun struct{}

// StepOnce advances a single generation.
type StepOnce struct{}

// Clear kills every cell.
type Clear struct{}

// Randomize refills the board from the seed.
type Randomize struct{}

func (Exit) action()       {}
func (ToggleCell) action() {}
func (Zoom) action()       {}
func (ToggleRun) action()  {}
func (StepOnce) action()   {}
func (Clear) action()      {}
func (Randomize) action()  {}

// Translate maps a raw event to an action. ok is false for events that carry
// no meaning; those are ignored.
func Translate(ev Event) (a Action, ok bool) {
	switch ev.Kind {
	case EventQuit:
		return Exit{}, true
	case EventPress:
		switch ev.Button {
		case ButtonPrimary:
			return ToggleCell{X: ev.X, Y: ev.Y}, true
		case ButtonScrollDown:
			return Zoom{Delta: viewport.ZoomStep}, true
		case ButtonScrollUp:
			return Zoom{Delta: -viewport.ZoomStep}, true
		}
	case EventKey:
		switch ev.Key {
		case KeySpace:
			return ToggleRun{}, true
		case KeyN:
			return StepOnce{}, true
		case KeyC:
			return Clear{}, true
		case KeyR:
			return Randomize{}, true
		case KeyQ, KeyEscape:
			return Exit{}, true
		}
	}
	return nil, false
}
