// Package scene holds what gets drawn each frame through the camera.
package scene

import (
	"github.com/samuelyuan/go-darknebula/render"
)

// Scene is driven once per frame by the engine loop, which owns the camera.
type Scene interface {
	// Init compiles programs and sets up GPU state
	Init(camera *render.Camera) error
	Update(dt float32)
	Render(camera *render.Camera) error
	Resize(camera *render.Camera, width, height int)

	SetAnimating(animate bool)
	Animating() bool
}

// Animation is embedded by scenes for the animate toggle. Scenes start animated.
type Animation struct {
	paused bool
}

func (a *Animation) SetAnimating(animate bool) {
	a.paused = !animate
}

func (a *Animation) Animating() bool {
	return !a.paused
}
