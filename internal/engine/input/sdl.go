package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// PollSDL drains the SDL queue into i. It returns true once quit was requested.
func PollSDL(i *Input) bool {
	i.Reset()
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := FromSDL(event, sdl.GetModState()); ok {
			i.Push(e)
		}
	}
	return i.Quit()
}

// FromSDL translates one SDL event. mods is the modifier state to attach to
// mouse events, which SDL does not carry itself.
func FromSDL(event sdl.Event, mods sdl.Keymod) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.KeyboardEvent:
		ev := Event{Key: sdlKey(e.Keysym.Scancode), Mods: sdlMods(sdl.Keymod(e.Keysym.Mod))}
		switch {
		case e.Type == sdl.KEYDOWN && e.Repeat == 0:
			ev.Type = EventKeyDown
		case e.Type == sdl.KEYUP:
			ev.Type = EventKeyUp
		default:
			return Event{}, false
		}
		return ev, true

	case *sdl.MouseMotionEvent:
		return Event{Type: EventMouseMove, X: float64(e.X), Y: float64(e.Y), Mods: sdlMods(mods)}, true

	case *sdl.MouseButtonEvent:
		ev := Event{X: float64(e.X), Y: float64(e.Y), Button: sdlButton(e.Button), Mods: sdlMods(mods)}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			ev.Type = EventMouseDown
		} else {
			ev.Type = EventMouseUp
		}
		return ev, true

	case *sdl.MouseWheelEvent:
		dy := float64(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dy = -dy
		}
		return Event{Type: EventWheel, Wheel: dy, Mods: sdlMods(mods)}, true
	}
	return Event{}, false
}

func sdlKey(sc sdl.Scancode) Key {
	switch sc {
	case sdl.SCANCODE_ESCAPE:
		return KeyEscape
	case sdl.SCANCODE_C:
		return KeyC
	case sdl.SCANCODE_R:
		return KeyR
	case sdl.SCANCODE_TAB:
		return KeyTab
	default:
		return KeyUnknown
	}
}

func sdlButton(b uint8) Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return ButtonRight
	default:
		return ButtonNone
	}
}

func sdlMods(m sdl.Keymod) Mods {
	var out Mods
	if m&sdl.KMOD_SHIFT != 0 {
		out |= ModShift
	}
	if m&sdl.KMOD_CTRL != 0 || m&sdl.KMOD_GUI != 0 {
		out |= ModCtrl
	}
	if m&sdl.KMOD_ALT != 0 {
		out |= ModAlt
	}
	return out
}
