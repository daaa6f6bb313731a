package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// AttachGLFW installs callbacks that push window events into i. Call
// glfw.PollEvents once per frame after i.Reset.
func AttachGLFW(w *glfw.Window, i *Input) {
	w.SetCloseCallback(func(*glfw.Window) {
		i.Push(Event{Type: EventQuit})
	})
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		i.Push(Event{Type: EventWindowResize, Width: width, Height: height})
	})
	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if e, ok := fromGLFWKey(key, action, mods); ok {
			i.Push(e)
		}
	})
	w.SetMouseButtonCallback(func(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		x, y := gw.GetCursorPos()
		i.Push(fromGLFWButton(button, action, mods, x, y))
	})
	w.SetCursorPosCallback(func(gw *glfw.Window, x, y float64) {
		i.Push(Event{Type: EventMouseMove, X: x, Y: y, Mods: currentGLFWMods(gw)})
	})
	w.SetScrollCallback(func(gw *glfw.Window, _, yoff float64) {
		i.Push(Event{Type: EventWheel, Wheel: yoff, Mods: currentGLFWMods(gw)})
	})
}

func fromGLFWKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) (Event, bool) {
	ev := Event{Key: glfwKey(key), Mods: glfwMods(mods)}
	switch action {
	case glfw.Press:
		ev.Type = EventKeyDown
	case glfw.Release:
		ev.Type = EventKeyUp
	default:
		return Event{}, false
	}
	return ev, true
}

func fromGLFWButton(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey, x, y float64) Event {
	ev := Event{Button: glfwButton(button), Mods: glfwMods(mods), X: x, Y: y}
	if action == glfw.Release {
		ev.Type = EventMouseUp
	} else {
		ev.Type = EventMouseDown
	}
	return ev
}

func currentGLFWMods(w *glfw.Window) Mods {
	var m glfw.ModifierKey
	if w.GetKey(glfw.KeyLeftShift) == glfw.Press || w.GetKey(glfw.KeyRightShift) == glfw.Press {
		m |= glfw.ModShift
	}
	if w.GetKey(glfw.KeyLeftControl) == glfw.Press || w.GetKey(glfw.KeyRightControl) == glfw.Press {
		m |= glfw.ModControl
	}
	return glfwMods(m)
}

func glfwKey(k glfw.Key) Key {
	switch k {
	case glfw.KeyEscape:
		return KeyEscape
	case glfw.KeyC:
		return KeyC
	case glfw.KeyR:
		return KeyR
	case glfw.KeyTab:
		return KeyTab
	default:
		return KeyUnknown
	}
}

func glfwButton(b glfw.MouseButton) Button {
	switch b {
	case glfw.MouseButtonLeft:
		return ButtonLeft
	case glfw.MouseButtonMiddle:
		return ButtonMiddle
	case glfw.MouseButtonRight:
		return ButtonRight
	default:
		return ButtonNone
	}
}

func glfwMods(mod glfw.ModifierKey) Mods {
	var m Mods
	if mod&glfw.ModShift != 0 {
		m |= ModShift
	}
	if mod&(glfw.ModControl|glfw.ModSuper) != 0 {
		m |= ModCtrl
	}
	if mod&glfw.ModAlt != 0 {
		m |= ModAlt
	}
	return m
}
