package core

// EventKind identifies the kind of a normalized input event.
type EventKind int

const (
	EventNone EventKind = iota
	EventPointerUp
	EventKeyDown
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPointerUp:
		return "PointerUp"
	case EventKeyDown:
		return "KeyDown"
	default:
		return "None"
	}
}

// Button is a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
)

// Well-known key names carried by KeyDown events. They follow Bubble Tea's
// key string names so the platform can pass them through untouched.
const (
	KeyUp    = "up"
	KeyDown  = "down"
	KeyLeft  = "left"
	KeyRight = "right"
	KeyEnter = "enter"
	KeyEsc   = "esc"
)

// InputEvent is a single normalized input event. Translation from a native
// backend (terminal mouse reports, key presses) happens in the platform layer.
type InputEvent struct {
	Kind   EventKind
	Button Button // Valid for EventPointerUp
	Pos    Point  // Pointer position in screen pixels, valid for EventPointerUp
	Key    string // Key name, valid for EventKeyDown
}

// PointerUp builds a pointer release event at (x, y).
func PointerUp(b Button, x, y int) InputEvent {
	return InputEvent{Kind: EventPointerUp, Button: b, Pos: Point{X: x, Y: y}}
}

// KeyPress builds a key-down event.
func KeyPress(key string) InputEvent {
	return InputEvent{Kind: EventKeyDown, Key: key}
}

// IsPointer reports whether the event is a pointer release.
func (e InputEvent) IsPointer() bool {
	return e.Kind == EventPointerUp
}

// KeyDirection maps movement keys (arrows and WASD) to a direction.
func KeyDirection(key string) Direction {
	switch key {
	case KeyUp, "w":
		return DirUp
	case KeyDown, "s":
		return DirDown
	case KeyLeft, "a":
		return DirLeft
	case KeyRight, "d":
		return DirRight
	default:
		return DirNone
	}
}
