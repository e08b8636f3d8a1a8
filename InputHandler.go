package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Action int

const (
	CAMERA_PAN_UP Action = iota
	CAMERA_PAN_DOWN
	CAMERA_PAN_LEFT
	CAMERA_PAN_RIGHT
	CAMERA_ROLL_LEFT
	CAMERA_ROLL_RIGHT
	CAMERA_RESET
	CAMERA_ROTATE
	TOGGLE_ANIMATION
	PROGRAM_QUIT
)

type InputHandler struct {
	actionToKeyMap map[Action]glfw.Key
	keysPressed    [glfw.KeyLast + 1]bool
	keysReleased   [glfw.KeyLast + 1]bool
	rotating       bool

	firstCursor   bool
	cursor        [2]float64
	lastCursor    [2]float64
	cursorChange  [2]float64
	scroll        float64
	scrollPending float64
}

func NewInputHandler() *InputHandler {
	actionToKeyMap := map[Action]glfw.Key{
		CAMERA_PAN_UP:     glfw.KeyW,
		CAMERA_PAN_DOWN:   glfw.KeyS,
		CAMERA_PAN_LEFT:   glfw.KeyA,
		CAMERA_PAN_RIGHT:  glfw.KeyD,
		CAMERA_ROLL_LEFT:  glfw.KeyQ,
		CAMERA_ROLL_RIGHT: glfw.KeyE,
		CAMERA_RESET:      glfw.KeyR,
		TOGGLE_ANIMATION:  glfw.KeySpace,
		PROGRAM_QUIT:      glfw.KeyEscape,
	}

	return &InputHandler{
		actionToKeyMap: actionToKeyMap,
		firstCursor:    true,
	}
}

func (handler *InputHandler) isActive(a Action) bool {
	if a == CAMERA_ROTATE {
		return handler.rotating
	}
	key, ok := handler.actionToKeyMap[a]
	if !ok {
		return false
	}
	return handler.keysPressed[key]
}

// wasReleased reports a key release since the last frame, once
func (handler *InputHandler) wasReleased(a Action) bool {
	key, ok := handler.actionToKeyMap[a]
	if !ok || !handler.keysReleased[key] {
		return false
	}
	handler.keysReleased[key] = false
	return true
}

func (handler *InputHandler) keyCallback(window *glfw.Window, key glfw.Key, scancode int,
	action glfw.Action, mods glfw.ModifierKey) {

	// glfw reports media and other unmapped keys as KeyUnknown
	if key < 0 || key > glfw.KeyLast {
		return
	}

	switch action {
	case glfw.Press:
		handler.keysPressed[key] = true
	case glfw.Release:
		handler.keysPressed[key] = false
		handler.keysReleased[key] = true
	}
}

// The camera only turns while the left mouse button is held
func (handler *InputHandler) mouseButtonCallback(window *glfw.Window, button glfw.MouseButton,
	action glfw.Action, mods glfw.ModifierKey) {

	if button != glfw.MouseButtonLeft {
		return
	}
	handler.rotating = action == glfw.Press
}

func (handler *InputHandler) mouseCallback(window *glfw.Window, xpos float64, ypos float64) {
	handler.cursor = [2]float64{xpos, ypos}
}

func (handler *InputHandler) scrollCallback(window *glfw.Window, xoff float64, yoff float64) {
	handler.scrollPending += yoff
}

// updateCursor latches the cursor and scroll movement for this frame
func (handler *InputHandler) updateCursor() {
	if handler.firstCursor {
		handler.lastCursor = handler.cursor
		handler.firstCursor = false
	}

	handler.cursorChange = [2]float64{
		handler.lastCursor[0] - handler.cursor[0],
		handler.lastCursor[1] - handler.cursor[1],
	}
	handler.lastCursor = handler.cursor

	handler.scroll = handler.scrollPending
	handler.scrollPending = 0
}

func (handler *InputHandler) getCursorChange() [2]float64 {
	return handler.cursorChange
}

func (handler *InputHandler) getScrollChange() float64 {
	return handler.scroll
}
