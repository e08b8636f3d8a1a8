// Package gldriver implements render.Driver on top of OpenGL 4.3 core.
// All calls must be made from the goroutine that owns the GL context.
package gldriver

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/samuelyuan/go-darknebula/render"
)

type Driver struct{}

var _ render.Driver = (*Driver)(nil)

// New loads the GL function pointers for the current context
func New() (*Driver, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize opengl: %w", err)
	}
	return &Driver{}, nil
}

func (d *Driver) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *Driver) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
}

func (d *Driver) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Driver) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (d *Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Driver) CreateShader(stage render.StageType) uint32 {
	return gl.CreateShader(shaderType(stage))
}

func (d *Driver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Driver) CompileShader(shader uint32, source string) (bool, string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return false, strings.TrimRight(log, "\x00")
	}

	return true, ""
}

func (d *Driver) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Driver) AttachedShaders(program uint32) []uint32 {
	var numShaders int32
	gl.GetProgramiv(program, gl.ATTACHED_SHADERS, &numShaders)
	if numShaders == 0 {
		return nil
	}

	shaders := make([]uint32, numShaders)
	gl.GetAttachedShaders(program, numShaders, nil, &shaders[0])
	return shaders
}

func (d *Driver) LinkProgram(program uint32) (bool, string) {
	gl.LinkProgram(program)
	return programStatus(program, gl.LINK_STATUS)
}

func (d *Driver) ValidateProgram(program uint32) (bool, string) {
	gl.ValidateProgram(program)
	return programStatus(program, gl.VALIDATE_STATUS)
}

func programStatus(program uint32, pname uint32) (bool, string) {
	var status int32
	gl.GetProgramiv(program, pname, &status)
	if status != gl.FALSE {
		return true, ""
	}

	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

	return false, strings.TrimRight(log, "\x00")
}

func (d *Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Driver) BindAttribLocation(program, index uint32, name string) {
	gl.BindAttribLocation(program, index, gl.Str(name+"\x00"))
}

func (d *Driver) BindFragDataLocation(program, color uint32, name string) {
	gl.BindFragDataLocation(program, color, gl.Str(name+"\x00"))
}

func (d *Driver) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Driver) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (d *Driver) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (d *Driver) Uniform1ui(location int32, v uint32) {
	gl.Uniform1ui(location, v)
}

func (d *Driver) Uniform2f(location int32, x, y float32) {
	gl.Uniform2f(location, x, y)
}

func (d *Driver) Uniform3f(location int32, x, y, z float32) {
	gl.Uniform3f(location, x, y, z)
}

func (d *Driver) Uniform4f(location int32, x, y, z, w float32) {
	gl.Uniform4f(location, x, y, z, w)
}

func (d *Driver) UniformMatrix3(location int32, m mgl32.Mat3) {
	gl.UniformMatrix3fv(location, 1, false, &m[0])
}

func (d *Driver) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func shaderType(stage render.StageType) uint32 {
	switch stage {
	case render.VertexStage:
		return gl.VERTEX_SHADER
	case render.TessControlStage:
		return gl.TESS_CONTROL_SHADER
	case render.TessEvaluationStage:
		return gl.TESS_EVALUATION_SHADER
	case render.GeometryStage:
		return gl.GEOMETRY_SHADER
	case render.FragmentStage:
		return gl.FRAGMENT_SHADER
	case render.ComputeStage:
		return gl.COMPUTE_SHADER
	}
	return 0
}
