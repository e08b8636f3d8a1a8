// Package rendertest provides an in-memory render.Driver that records every
// call, for testing code that talks to the graphics API.
package rendertest

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/samuelyuan/go-darknebula/render"
)

// Driver hands out increasing handles and remembers what was done with them.
// The exported fields configure failures and inspect results.
type Driver struct {
	// Failure injection
	FailCreateProgram bool
	CompileErrors     map[render.StageType]string
	LinkError         string
	ValidateError     string

	// Uniform names the "linked" program exposes, with their locations.
	// Any other name resolves to -1.
	Locations map[string]int32

	Uniforms        map[int32]any
	Programs        map[uint32]bool // handle -> not yet deleted
	Shaders         map[uint32]render.StageType
	DeletedShaders  []uint32
	Attached        map[uint32][]uint32
	CurrentProgram  uint32
	LocationQueries map[string]int
	Calls           []string

	ClearColorValue mgl32.Vec4
	DepthTest       bool
	Clears          int
	ViewportSize    [4]int32

	ActiveUniformList []render.UniformInfo
	ActiveBlockList   []render.UniformBlockInfo
	ActiveAttribList  []render.AttributeInfo

	nextHandle uint32
}

var _ render.Driver = (*Driver)(nil)

func NewDriver() *Driver {
	return &Driver{
		CompileErrors:   map[render.StageType]string{},
		Locations:       map[string]int32{},
		Uniforms:        map[int32]any{},
		Programs:        map[uint32]bool{},
		Shaders:         map[uint32]render.StageType{},
		Attached:        map[uint32][]uint32{},
		LocationQueries: map[string]int{},
	}
}

func (d *Driver) record(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

// Count returns how many recorded calls start with name
func (d *Driver) Count(name string) int {
	n := 0
	for _, call := range d.Calls {
		if len(call) >= len(name) && call[:len(name)] == name {
			n++
		}
	}
	return n
}

func (d *Driver) handle() uint32 {
	d.nextHandle++
	return d.nextHandle
}

func (d *Driver) Version() string {
	d.record("Version")
	return "4.3.0 rendertest"
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	d.record("ClearColor")
	d.ClearColorValue = mgl32.Vec4{r, g, b, a}
}

func (d *Driver) EnableDepthTest() {
	d.record("EnableDepthTest")
	d.DepthTest = true
}

func (d *Driver) Clear() {
	d.record("Clear")
	d.Clears++
}

func (d *Driver) Viewport(x, y, width, height int32) {
	d.record("Viewport")
	d.ViewportSize = [4]int32{x, y, width, height}
}

func (d *Driver) CreateProgram() uint32 {
	d.record("CreateProgram")
	if d.FailCreateProgram {
		return 0
	}
	program := d.handle()
	d.Programs[program] = true
	return program
}

func (d *Driver) DeleteProgram(program uint32) {
	d.record("DeleteProgram %d", program)
	d.Programs[program] = false
	delete(d.Attached, program)
}

func (d *Driver) CreateShader(stage render.StageType) uint32 {
	d.record("CreateShader %v", stage)
	shader := d.handle()
	d.Shaders[shader] = stage
	return shader
}

func (d *Driver) DeleteShader(shader uint32) {
	d.record("DeleteShader %d", shader)
	d.DeletedShaders = append(d.DeletedShaders, shader)
	delete(d.Shaders, shader)
}

func (d *Driver) CompileShader(shader uint32, source string) (bool, string) {
	d.record("CompileShader %d", shader)
	if log, ok := d.CompileErrors[d.Shaders[shader]]; ok {
		return false, log
	}
	return true, ""
}

func (d *Driver) AttachShader(program, shader uint32) {
	d.record("AttachShader %d %d", program, shader)
	d.Attached[program] = append(d.Attached[program], shader)
}

func (d *Driver) AttachedShaders(program uint32) []uint32 {
	d.record("AttachedShaders %d", program)
	return append([]uint32(nil), d.Attached[program]...)
}

func (d *Driver) LinkProgram(program uint32) (bool, string) {
	d.record("LinkProgram %d", program)
	if d.LinkError != "" {
		return false, d.LinkError
	}
	return true, ""
}

func (d *Driver) ValidateProgram(program uint32) (bool, string) {
	d.record("ValidateProgram %d", program)
	if d.ValidateError != "" {
		return false, d.ValidateError
	}
	return true, ""
}

func (d *Driver) UseProgram(program uint32) {
	d.record("UseProgram %d", program)
	d.CurrentProgram = program
}

func (d *Driver) BindAttribLocation(program, index uint32, name string) {
	d.record("BindAttribLocation %d %d %s", program, index, name)
}

func (d *Driver) BindFragDataLocation(program, color uint32, name string) {
	d.record("BindFragDataLocation %d %d %s", program, color, name)
}

func (d *Driver) UniformLocation(program uint32, name string) int32 {
	d.record("UniformLocation %s", name)
	d.LocationQueries[name]++
	if loc, ok := d.Locations[name]; ok {
		return loc
	}
	return -1
}

// Uploads to location -1 are ignored, as the real driver does
func (d *Driver) upload(location int32, v any) {
	d.record("Uniform %d", location)
	if location == -1 {
		return
	}
	d.Uniforms[location] = v
}

func (d *Driver) Uniform1f(location int32, v float32) {
	d.upload(location, v)
}

func (d *Driver) Uniform1i(location int32, v int32) {
	d.upload(location, v)
}

func (d *Driver) Uniform1ui(location int32, v uint32) {
	d.upload(location, v)
}

func (d *Driver) Uniform2f(location int32, x, y float32) {
	d.upload(location, mgl32.Vec2{x, y})
}

func (d *Driver) Uniform3f(location int32, x, y, z float32) {
	d.upload(location, mgl32.Vec3{x, y, z})
}

func (d *Driver) Uniform4f(location int32, x, y, z, w float32) {
	d.upload(location, mgl32.Vec4{x, y, z, w})
}

func (d *Driver) UniformMatrix3(location int32, m mgl32.Mat3) {
	d.upload(location, m)
}

func (d *Driver) UniformMatrix4(location int32, m mgl32.Mat4) {
	d.upload(location, m)
}

// Uniform returns the last value uploaded to the named uniform
func (d *Driver) Uniform(name string) (any, bool) {
	loc, ok := d.Locations[name]
	if !ok {
		return nil, false
	}
	v, ok := d.Uniforms[loc]
	return v, ok
}

func (d *Driver) ActiveUniforms(program uint32) []render.UniformInfo {
	return d.ActiveUniformList
}

func (d *Driver) ActiveUniformBlocks(program uint32) []render.UniformBlockInfo {
	return d.ActiveBlockList
}

func (d *Driver) ActiveAttributes(program uint32) []render.AttributeInfo {
	return d.ActiveAttribList
}
