// Package input turns window-system events into a small backend-neutral set.
package input

// EventType identifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventWheel
)

// Key is a keyboard key the viewer reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyC
	KeyR
	KeyTab
)

// Button is a mouse button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Mods is a bit set of held modifier keys.
type Mods uint8

const (
	ModShift Mods = 1 << iota
	ModCtrl
	ModAlt
)

// Has reports whether every bit of m2 is set.
func (m Mods) Has(m2 Mods) bool { return m&m2 == m2 }

// Event represents a processed input event. Mouse positions are window
// pixels with a top-left origin.
type Event struct {
	Type   EventType
	Key    Key
	Button Button
	Mods   Mods
	X, Y   float64
	Wheel  float64 // positive away from the user
	Width  int
	Height int
}

// Input collects the events of one frame.
type Input struct {
	events []Event
	quit   bool
}

// New creates a new input queue.
func New() *Input {
	return &Input{events: make([]Event, 0, 16)}
}

// Reset drops the previous frame's events.
func (i *Input) Reset() {
	i.events = i.events[:0]
}

// Push appends an event.
func (i *Input) Push(e Event) {
	if e.Type == EventNone {
		return
	}
	if e.Type == EventQuit {
		i.quit = true
	}
	i.events = append(i.events, e)
}

// Events returns the events since the last Reset.
func (i *Input) Events() []Event {
	return i.events
}

// Quit reports whether a quit request was seen.
func (i *Input) Quit() bool {
	return i.quit
}

// IsKeyPressed checks if a specific key went down this frame.
func (i *Input) IsKeyPressed(key Key) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}
