package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/samuelyuan/go-darknebula/render"
	"github.com/samuelyuan/go-darknebula/render/rendertest"
)

var sceneUniforms = []string{
	"Ld", "n", "LightPosition",
	"V", "P", "ModelMatrixView", "NormalMatrix", "MVP", "M",
	"Kd", "Ka", "Ep", "Ks",
}

func shaderFiles(t *testing.T) ShaderFiles {
	t.Helper()
	dir := t.TempDir()
	files := ShaderFiles{
		Vertex:   filepath.Join(dir, "shader.vs"),
		Fragment: filepath.Join(dir, "shader.fs"),
	}
	for _, path := range []string{files.Vertex, files.Fragment} {
		if err := os.WriteFile(path, []byte("void main() {}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return files
}

func newTestScene(t *testing.T) (*EngineScene, *rendertest.Driver, *render.Camera) {
	t.Helper()
	driver := rendertest.NewDriver()
	for i, name := range sceneUniforms {
		driver.Locations[name] = int32(i)
	}
	camera := render.NewCamera(mgl32.Vec3{0, 0, 5}, mgl32.DegToRad(45), 1, 0.1, 100)
	return NewEngineScene(driver, shaderFiles(t)), driver, camera
}

func TestInitBuildsProgramAndLighting(t *testing.T) {
	s, driver, camera := newTestScene(t)

	if err := s.Init(camera); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if !s.Program().Linked() {
		t.Fatalf("program not linked after Init()")
	}
	if driver.CurrentProgram != s.Program().Handle() {
		t.Fatalf("current program = %d, want %d", driver.CurrentProgram, s.Program().Handle())
	}
	if !driver.DepthTest {
		t.Fatalf("depth test not enabled")
	}
	if driver.Count("ValidateProgram") != 1 {
		t.Fatalf("ValidateProgram calls = %d, want 1", driver.Count("ValidateProgram"))
	}

	if v, _ := driver.Uniform("n"); v != int32(100) {
		t.Fatalf("n = %v, want 100", v)
	}
	if v, _ := driver.Uniform("LightPosition"); v != (mgl32.Vec3{10, 10, 10}) {
		t.Fatalf("LightPosition = %v, want [10 10 10]", v)
	}
	if v, _ := driver.Uniform("Ld"); v != (mgl32.Vec3{1, 1, 1}) {
		t.Fatalf("Ld = %v, want [1 1 1]", v)
	}
}

func TestInitReportsCompileError(t *testing.T) {
	s, driver, camera := newTestScene(t)
	driver.CompileErrors[render.FragmentStage] = "0:1: bad token"

	err := s.Init(camera)
	if !errors.Is(err, render.ErrCompileFailed) {
		t.Fatalf("Init() error = %v, want ErrCompileFailed", err)
	}
}

func TestInitReportsMissingShader(t *testing.T) {
	driver := rendertest.NewDriver()
	s := NewEngineScene(driver, ShaderFiles{Vertex: "nope/shader.vs", Fragment: "nope/shader.fs"})
	camera := render.NewCamera(mgl32.Vec3{}, 1, 1, 0.1, 10)

	if err := s.Init(camera); !errors.Is(err, render.ErrSourceNotFound) {
		t.Fatalf("Init() error = %v, want ErrSourceNotFound", err)
	}
}

func TestRenderUploadsMatrices(t *testing.T) {
	s, driver, camera := newTestScene(t)
	if err := s.Init(camera); err != nil {
		t.Fatal(err)
	}

	if err := s.Render(camera); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	mv := camera.ViewMatrix()
	if v, _ := driver.Uniform("ModelMatrixView"); v != mv {
		t.Fatalf("ModelMatrixView = %v, want %v", v, mv)
	}
	if v, _ := driver.Uniform("MVP"); v != camera.ProjectionMatrix().Mul4(mv) {
		t.Fatalf("MVP = %v, want %v", v, camera.ProjectionMatrix().Mul4(mv))
	}
	if v, _ := driver.Uniform("NormalMatrix"); v != mv.Mat3() {
		t.Fatalf("NormalMatrix = %v, want %v", v, mv.Mat3())
	}
	if v, _ := driver.Uniform("Ep"); v != camera.Position() {
		t.Fatalf("Ep = %v, want %v", v, camera.Position())
	}
	if v, _ := driver.Uniform("V"); v != camera.ViewMatrix() {
		t.Fatalf("V = %v, want %v", v, camera.ViewMatrix())
	}
	if driver.Clears != 1 {
		t.Fatalf("clears = %d, want 1", driver.Clears)
	}

	// Every uniform is resolved only once across frames
	if err := s.Render(camera); err != nil {
		t.Fatal(err)
	}
	for _, name := range sceneUniforms {
		if n := driver.LocationQueries[name]; n != 1 {
			t.Fatalf("location queries for %s = %d, want 1", name, n)
		}
	}
}

func TestRenderBeforeInit(t *testing.T) {
	s, _, camera := newTestScene(t)

	if err := s.Render(camera); !errors.Is(err, render.ErrUseBeforeLink) {
		t.Fatalf("Render() error = %v, want ErrUseBeforeLink", err)
	}
}

func TestUpdateOnlyWhileAnimating(t *testing.T) {
	s, _, _ := newTestScene(t)

	if !s.Animating() {
		t.Fatalf("Animating() = false for a new scene")
	}
	s.Update(1)
	if s.model == mgl32.Ident4() {
		t.Fatalf("model unchanged after Update() while animating")
	}

	s.SetAnimating(false)
	model := s.model
	s.Update(1)
	if s.model != model {
		t.Fatalf("model changed after Update() while paused")
	}
}

func TestResizeUpdatesAspectRatio(t *testing.T) {
	s, driver, camera := newTestScene(t)

	s.Resize(camera, 800, 400)

	if camera.AspectRatio() != 2 {
		t.Fatalf("AspectRatio() = %v, want 2", camera.AspectRatio())
	}
	if camera.ProjectionMatrix() != mgl32.Perspective(camera.FieldOfView(), 2, 0.1, 100) {
		t.Fatalf("projection not recomputed after resize")
	}
	if driver.ViewportSize != [4]int32{0, 0, 800, 400} {
		t.Fatalf("viewport = %v, want [0 0 800 400]", driver.ViewportSize)
	}

	// A minimized window reports a zero size
	s.Resize(camera, 0, 0)
	if camera.AspectRatio() != 2 {
		t.Fatalf("AspectRatio() = %v after zero resize, want 2", camera.AspectRatio())
	}
}

func TestCloseDeletesProgram(t *testing.T) {
	s, driver, camera := newTestScene(t)
	if err := s.Init(camera); err != nil {
		t.Fatal(err)
	}

	s.Close()
	if driver.Count("DeleteProgram") != 1 || len(driver.DeletedShaders) != 2 {
		t.Fatalf("calls = %v, want program and both stages deleted", driver.Calls)
	}
}
