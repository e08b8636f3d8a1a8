package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ProgramDriver is the part of the graphics API used to build and feed
// shader programs. Handles of 0 mean "no object".
type ProgramDriver interface {
	CreateProgram() uint32
	DeleteProgram(program uint32)
	CreateShader(stage StageType) uint32
	DeleteShader(shader uint32)

	// CompileShader returns false and the info log when compilation fails
	CompileShader(shader uint32, source string) (bool, string)
	AttachShader(program, shader uint32)
	AttachedShaders(program uint32) []uint32
	LinkProgram(program uint32) (bool, string)
	ValidateProgram(program uint32) (bool, string)
	UseProgram(program uint32)

	BindAttribLocation(program, index uint32, name string)
	BindFragDataLocation(program, color uint32, name string)

	// UniformLocation returns -1 for names the program does not use
	UniformLocation(program uint32, name string) int32
	Uniform1f(location int32, v float32)
	Uniform1i(location int32, v int32)
	Uniform1ui(location int32, v uint32)
	Uniform2f(location int32, x, y float32)
	Uniform3f(location int32, x, y, z float32)
	Uniform4f(location int32, x, y, z, w float32)
	UniformMatrix3(location int32, m mgl32.Mat3)
	UniformMatrix4(location int32, m mgl32.Mat4)

	ActiveUniforms(program uint32) []UniformInfo
	ActiveUniformBlocks(program uint32) []UniformBlockInfo
	ActiveAttributes(program uint32) []AttributeInfo
}

// StateDriver covers the global pipeline state touched once per frame.
type StateDriver interface {
	Version() string
	ClearColor(r, g, b, a float32)
	EnableDepthTest()
	Clear()
	Viewport(x, y, width, height int32)
}

type Driver interface {
	ProgramDriver
	StateDriver
}

// UniformInfo describes an active uniform outside of any uniform block.
type UniformInfo struct {
	Name     string
	Type     string
	Location int32
}

type UniformBlockInfo struct {
	Name     string
	Uniforms []UniformInfo
}

type AttributeInfo struct {
	Name     string
	Type     string
	Location int32
}
