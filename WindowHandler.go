package main

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/samuelyuan/go-darknebula/config"
)

type WindowHandler struct {
	glfwWindow   *glfw.Window
	inputHandler *InputHandler
	onResize     func(width, height int)

	firstFrame    bool
	deltaTime     float64
	lastFrameTime float64
}

// NewWindowHandler creates the window and makes its GL context current.
// glfw must already be initialized.
func NewWindowHandler(cfg config.WindowConfig) (*WindowHandler, error) {
	// Select OpenGL 4.3 forward compatible core profile
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	glfwWindow, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	glfwWindow.MakeContextCurrent()

	inputHandler := NewInputHandler()
	windowHandler := &WindowHandler{
		glfwWindow:   glfwWindow,
		inputHandler: inputHandler,
		firstFrame:   true,
	}

	// Check for resize
	glfwWindow.SetFramebufferSizeCallback(windowHandler.resizeCallback)

	// Keyboard callback
	glfwWindow.SetKeyCallback(inputHandler.keyCallback)
	// Mouse callbacks
	glfwWindow.SetMouseButtonCallback(inputHandler.mouseButtonCallback)
	glfwWindow.SetCursorPosCallback(inputHandler.mouseCallback)
	glfwWindow.SetScrollCallback(inputHandler.scrollCallback)

	return windowHandler, nil
}

func (windowHandler *WindowHandler) resizeCallback(w *glfw.Window, width int, height int) {
	if windowHandler.onResize != nil {
		windowHandler.onResize(width, height)
	}
}

// setResizeHandler registers fn for framebuffer size changes
func (windowHandler *WindowHandler) setResizeHandler(fn func(width, height int)) {
	windowHandler.onResize = fn
}

func (windowHandler *WindowHandler) framebufferSize() (int, int) {
	return windowHandler.glfwWindow.GetFramebufferSize()
}

func (windowHandler *WindowHandler) startFrame() {
	windowHandler.glfwWindow.SwapBuffers()

	// Window events for keyboard and mouse
	glfw.PollEvents()

	if windowHandler.inputHandler.isActive(PROGRAM_QUIT) {
		windowHandler.glfwWindow.SetShouldClose(true)
	}

	// Set frame time
	currentFrameTime := glfw.GetTime()

	if windowHandler.firstFrame {
		windowHandler.lastFrameTime = currentFrameTime
		windowHandler.firstFrame = false
	}

	windowHandler.deltaTime = currentFrameTime - windowHandler.lastFrameTime
	windowHandler.lastFrameTime = currentFrameTime

	windowHandler.inputHandler.updateCursor()
}

func (windowHandler *WindowHandler) shouldClose() bool {
	return windowHandler.glfwWindow.ShouldClose()
}

func (windowHandler *WindowHandler) getTimeSinceLastFrame() float64 {
	return windowHandler.deltaTime
}

func (windowHandler *WindowHandler) destroy() {
	windowHandler.glfwWindow.Destroy()
}
