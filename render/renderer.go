package render

import (
	"log/slog"
)

// Uniform names the camera matrices are uploaded to
const (
	ViewUniform       = "V"
	ProjectionUniform = "P"
)

type Renderer struct {
	driver StateDriver
}

func NewRenderer(driver StateDriver) *Renderer {
	return &Renderer{driver: driver}
}

func (r *Renderer) Init() {
	slog.Info("OpenGL context ready", slog.String("version", r.driver.Version()))

	r.driver.ClearColor(0.0, 0.4, 0.9, 0.5)
	r.driver.EnableDepthTest()
}

func (r *Renderer) BeginFrame() {
	r.driver.Clear()
}

func (r *Renderer) Resize(width, height int) {
	r.driver.Viewport(0, 0, int32(width), int32(height))
}

// PrepareFrame clears the frame and passes the camera matrices to the program
func (r *Renderer) PrepareFrame(program *ShaderProgram, camera *Camera) error {
	r.BeginFrame()

	if err := program.Use(); err != nil {
		return err
	}

	program.SetUniformMat4(ViewUniform, camera.ViewMatrix())
	program.SetUniformMat4(ProjectionUniform, camera.ProjectionMatrix())
	return nil
}
