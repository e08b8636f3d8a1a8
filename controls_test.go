package main

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/samuelyuan/go-darknebula/config"
	"github.com/samuelyuan/go-darknebula/render"
)

// fakeScene records animation toggles
type fakeScene struct {
	animating bool
}

func (s *fakeScene) Init(*render.Camera) error       { return nil }
func (s *fakeScene) Update(float32)                  {}
func (s *fakeScene) Render(*render.Camera) error     { return nil }
func (s *fakeScene) Resize(*render.Camera, int, int) {}
func (s *fakeScene) SetAnimating(animate bool)       { s.animating = animate }
func (s *fakeScene) Animating() bool                 { return s.animating }

func press(input *InputHandler, key glfw.Key) {
	input.keyCallback(nil, key, 0, glfw.Press, 0)
}

func release(input *InputHandler, key glfw.Key) {
	input.keyCallback(nil, key, 0, glfw.Release, 0)
}

func TestKeyStateTracking(t *testing.T) {
	input := NewInputHandler()

	press(input, glfw.KeyW)
	if !input.isActive(CAMERA_PAN_UP) {
		t.Fatalf("isActive(CAMERA_PAN_UP) = false after press")
	}

	release(input, glfw.KeyW)
	if input.isActive(CAMERA_PAN_UP) {
		t.Fatalf("isActive(CAMERA_PAN_UP) = true after release")
	}
	if !input.wasReleased(CAMERA_PAN_UP) {
		t.Fatalf("wasReleased(CAMERA_PAN_UP) = false after release")
	}
	if input.wasReleased(CAMERA_PAN_UP) {
		t.Fatalf("wasReleased(CAMERA_PAN_UP) reported the same release twice")
	}

	// Unknown keys are ignored rather than indexing out of range
	input.keyCallback(nil, glfw.KeyUnknown, 0, glfw.Press, 0)
}

func TestCursorChange(t *testing.T) {
	input := NewInputHandler()

	input.mouseCallback(nil, 100, 50)
	input.updateCursor()
	if input.getCursorChange() != [2]float64{0, 0} {
		t.Fatalf("first frame cursor change = %v, want zero", input.getCursorChange())
	}

	input.mouseCallback(nil, 90, 70)
	input.updateCursor()
	if input.getCursorChange() != [2]float64{10, -20} {
		t.Fatalf("cursor change = %v, want [10 -20]", input.getCursorChange())
	}

	input.scrollCallback(nil, 0, 1)
	input.scrollCallback(nil, 0, 2)
	input.updateCursor()
	if input.getScrollChange() != 3 {
		t.Fatalf("scroll change = %v, want 3", input.getScrollChange())
	}
	input.updateCursor()
	if input.getScrollChange() != 0 {
		t.Fatalf("scroll change = %v on a quiet frame, want 0", input.getScrollChange())
	}
}

func TestApplyControlsPan(t *testing.T) {
	cfg := config.Default()
	camera := newCamera(cfg)
	input := NewInputHandler()

	press(input, glfw.KeyD)
	press(input, glfw.KeyW)
	applyControls(camera, &fakeScene{}, input, 0.5, cfg)

	step := cfg.Controls.MoveSpeed * 0.5
	want := mgl32.Vec3{step, step, 5}
	if !camera.Position().ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("Position() = %v, want %v", camera.Position(), want)
	}
}

func TestApplyControlsZoomAndRoll(t *testing.T) {
	cfg := config.Default()
	camera := newCamera(cfg)
	input := NewInputHandler()

	input.scrollCallback(nil, 0, 2)
	input.updateCursor()
	press(input, glfw.KeyQ)
	applyControls(camera, &fakeScene{}, input, 1, cfg)

	if got := camera.Position().Y(); mgl32.Abs(got-2*cfg.Controls.ZoomSpeed) > 1e-5 {
		t.Fatalf("Position().Y() = %v, want %v", got, 2*cfg.Controls.ZoomSpeed)
	}
	if camera.Orientation().ApproxEqualThreshold(mgl32.QuatIdent(), 1e-5) {
		t.Fatalf("orientation unchanged after roll")
	}
}

func TestApplyControlsRotateOnlyWhileDragging(t *testing.T) {
	cfg := config.Default()
	camera := newCamera(cfg)
	input := NewInputHandler()

	input.mouseCallback(nil, 0, 0)
	input.updateCursor()
	input.mouseCallback(nil, 40, 0)
	input.updateCursor()
	applyControls(camera, &fakeScene{}, input, 1, cfg)
	if camera.Orientation() != mgl32.QuatIdent() {
		t.Fatalf("camera rotated without the mouse button held")
	}

	input.mouseButtonCallback(nil, glfw.MouseButtonLeft, glfw.Press, 0)
	applyControls(camera, &fakeScene{}, input, 1, cfg)
	if camera.Orientation() == mgl32.QuatIdent() {
		t.Fatalf("camera did not rotate while dragging")
	}
}

func TestApplyControlsResetAndToggle(t *testing.T) {
	cfg := config.Default()
	camera := newCamera(cfg)
	camera.Rotate(1, 1)
	camera.Pan(3, 3)
	sc := &fakeScene{animating: true}
	input := NewInputHandler()

	release(input, glfw.KeyR)
	release(input, glfw.KeySpace)
	applyControls(camera, sc, input, 1, cfg)

	fresh := newCamera(cfg)
	if camera.ViewMatrix() != fresh.ViewMatrix() {
		t.Fatalf("ViewMatrix() after reset = %v, want %v", camera.ViewMatrix(), fresh.ViewMatrix())
	}
	if sc.animating {
		t.Fatalf("animation still on after toggle")
	}
}
