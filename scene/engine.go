package scene

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/samuelyuan/go-darknebula/render"
)

const (
	// Radians per second of turntable rotation while animating
	spinRate = 0.5
)

var (
	worldLight = mgl32.Vec3{10, 10, 10}

	diffuse  = mgl32.Vec3{0.7, 1.0, 0.7}
	ambient  = mgl32.Vec3{0.1, 0.1, 0.1}
	specular = mgl32.Vec3{0.7, 1.0, 0.7}
)

// ShaderFiles lists the sources compiled into the scene's program, in order.
type ShaderFiles struct {
	Vertex   string
	Fragment string
}

type EngineScene struct {
	Animation

	renderer *render.Renderer
	program  *render.ShaderProgram
	shaders  ShaderFiles

	width  int
	height int

	angle float32
	model mgl32.Mat4
}

var _ Scene = (*EngineScene)(nil)

func NewEngineScene(driver render.Driver, shaders ShaderFiles) *EngineScene {
	return &EngineScene{
		renderer: render.NewRenderer(driver),
		program:  render.NewShaderProgram(driver),
		shaders:  shaders,
		model:    mgl32.Ident4(),
	}
}

func (s *EngineScene) Init(_ *render.Camera) error {
	s.renderer.Init()

	if err := s.compileAndLinkShader(); err != nil {
		return err
	}

	s.setLightingParameters()
	return nil
}

func (s *EngineScene) compileAndLinkShader() error {
	for _, path := range []string{s.shaders.Vertex, s.shaders.Fragment} {
		if err := s.program.CompileFile(path); err != nil {
			return fmt.Errorf("scene shader: %w", err)
		}
	}

	if err := s.program.Link(); err != nil {
		return fmt.Errorf("scene shader: %w", err)
	}
	if err := s.program.Validate(); err != nil {
		return fmt.Errorf("scene shader: %w", err)
	}
	if err := s.program.Use(); err != nil {
		return fmt.Errorf("scene shader: %w", err)
	}

	slog.Info("Scene shader ready",
		slog.String("vertex", s.shaders.Vertex),
		slog.String("fragment", s.shaders.Fragment),
		slog.Int("uniforms", len(s.program.ActiveUniforms())),
	)
	return nil
}

// The rest of the lighting model lives in the shaders
func (s *EngineScene) setLightingParameters() {
	s.program.SetUniform3f("Ld", 1.0, 1.0, 1.0)
	s.program.SetUniform1i("n", 100)
	s.program.SetUniformVec3("LightPosition", worldLight)
}

// Update turns the model while the scene is animating
func (s *EngineScene) Update(dt float32) {
	if !s.Animating() {
		return
	}

	s.angle += dt * spinRate
	s.model = mgl32.HomogRotate3DY(s.angle)
}

func (s *EngineScene) Render(camera *render.Camera) error {
	if err := s.renderer.PrepareFrame(s.program, camera); err != nil {
		return err
	}

	s.setMatrices(camera)

	s.program.SetUniformVec3("Kd", diffuse)
	s.program.SetUniformVec3("Ka", ambient)
	s.program.SetUniformVec3("Ep", camera.Position())
	s.program.SetUniformVec3("Ks", specular)
	return nil
}

// View and projection were already uploaded by PrepareFrame
func (s *EngineScene) setMatrices(camera *render.Camera) {
	mv := camera.ViewMatrix().Mul4(s.model)

	s.program.SetUniformMat4("ModelMatrixView", mv)
	s.program.SetUniformMat3("NormalMatrix", mv.Mat3())
	s.program.SetUniformMat4("MVP", camera.ProjectionMatrix().Mul4(mv))
	s.program.SetUniformMat4("M", s.model)
}

func (s *EngineScene) Resize(camera *render.Camera, width, height int) {
	if width <= 0 || height <= 0 {
		// Minimized window
		return
	}

	s.renderer.Resize(width, height)
	s.width = width
	s.height = height
	camera.SetAspectRatio(float32(width) / float32(height))
}

// Program exposes the scene's shader program for diagnostics
func (s *EngineScene) Program() *render.ShaderProgram {
	return s.program
}

func (s *EngineScene) Close() {
	s.program.Delete()
}
