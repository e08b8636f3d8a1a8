package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/samuelyuan/go-darknebula/config"
	"github.com/samuelyuan/go-darknebula/render"
	"github.com/samuelyuan/go-darknebula/scene"
)

const (
	// Radians per pixel of cursor movement before sensitivity
	cursorScale = 0.005
)

func newCamera(cfg config.Config) *render.Camera {
	return render.NewCamera(
		mgl32.Vec3(cfg.Camera.Position),
		mgl32.DegToRad(cfg.Camera.FieldOfView),
		cfg.AspectRatio(),
		cfg.Camera.NearPlane,
		cfg.Camera.FarPlane,
	)
}

// resetCamera restores the configured pose, keeping the current aspect ratio
func resetCamera(camera *render.Camera, cfg config.Config) {
	camera.Reset(
		mgl32.Vec3(cfg.Camera.Position),
		mgl32.DegToRad(cfg.Camera.FieldOfView),
		camera.AspectRatio(),
		cfg.Camera.NearPlane,
		cfg.Camera.FarPlane,
	)
}

// applyControls moves the camera from this frame's input
func applyControls(camera *render.Camera, sc scene.Scene, input *InputHandler, dt float32, cfg config.Config) {
	ctl := cfg.Controls

	if input.wasReleased(CAMERA_RESET) {
		resetCamera(camera, cfg)
	}
	if input.wasReleased(TOGGLE_ANIMATION) {
		sc.SetAnimating(!sc.Animating())
	}

	// Move the camera around using WASD keys
	speed := ctl.MoveSpeed * dt
	var dx, dy float32
	if input.isActive(CAMERA_PAN_RIGHT) {
		dx += speed
	}
	if input.isActive(CAMERA_PAN_LEFT) {
		dx -= speed
	}
	if input.isActive(CAMERA_PAN_UP) {
		dy += speed
	}
	if input.isActive(CAMERA_PAN_DOWN) {
		dy -= speed
	}
	if dx != 0 || dy != 0 {
		camera.Pan(dx, dy)
	}

	if scroll := input.getScrollChange(); scroll != 0 {
		camera.Zoom(float32(scroll) * ctl.ZoomSpeed)
	}

	var roll float32
	if input.isActive(CAMERA_ROLL_LEFT) {
		roll += ctl.RollSpeed * dt
	}
	if input.isActive(CAMERA_ROLL_RIGHT) {
		roll -= ctl.RollSpeed * dt
	}
	if roll != 0 {
		camera.Roll(roll)
	}

	if input.isActive(CAMERA_ROTATE) {
		offset := input.getCursorChange()
		yaw := float32(offset[0]) * ctl.MouseSensitivity * cursorScale
		pitch := float32(offset[1]) * ctl.MouseSensitivity * cursorScale
		if pitch != 0 || yaw != 0 {
			camera.Rotate(pitch, yaw)
		}
	}
}
