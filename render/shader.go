package render

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// GL 4.3 guarantees at least 1024 uniform locations per program; eviction
	// only costs a repeated lookup
	uniformCacheSize = 4096
)

// ShaderProgram owns a GPU program and the stages attached to it.
// It holds a driver handle and must not be copied; pass it by pointer.
type ShaderProgram struct {
	driver   ProgramDriver
	handle   uint32
	linked   bool
	uniforms *lru.Cache[string, int32]
}

func NewShaderProgram(driver ProgramDriver) *ShaderProgram {
	uniforms, _ := lru.New[string, int32](uniformCacheSize)

	return &ShaderProgram{
		driver:   driver,
		uniforms: uniforms,
	}
}

// CompileFile compiles a stage whose type is taken from the file extension
func (sp *ShaderProgram) CompileFile(path string) error {
	stage, ok := StageFromFilename(path)
	if !ok {
		return &ShaderError{Op: "compile", File: path, Err: ErrUnrecognizedExtension}
	}
	return sp.CompileFileAs(path, stage)
}

func (sp *ShaderProgram) CompileFileAs(path string, stage StageType) error {
	if _, err := os.Stat(path); err != nil {
		return &ShaderError{Op: "compile", File: path, Err: ErrSourceNotFound, Cause: err}
	}

	if err := sp.allocate(); err != nil {
		return err
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return &ShaderError{Op: "compile", File: path, Err: ErrSourceNotFound, Cause: err}
	}

	return sp.CompileSource(string(source), stage, path)
}

// CompileSource compiles source as the given stage and attaches it.
// name is only used in error messages and may be empty.
func (sp *ShaderProgram) CompileSource(source string, stage StageType, name string) error {
	if err := sp.allocate(); err != nil {
		return err
	}

	shader := sp.driver.CreateShader(stage)
	ok, log := sp.driver.CompileShader(shader, source)
	if !ok {
		sp.driver.DeleteShader(shader)
		return &ShaderError{Op: "compile " + stage.String(), File: name, Log: log, Err: ErrCompileFailed}
	}

	sp.driver.AttachShader(sp.handle, shader)

	// New stages only take effect after the next link
	sp.linked = false

	slog.Debug("Shader stage attached", slog.String("stage", stage.String()), slog.String("file", name))
	return nil
}

func (sp *ShaderProgram) allocate() error {
	if sp.handle != 0 {
		return nil
	}

	sp.handle = sp.driver.CreateProgram()
	if sp.handle == 0 {
		return &ShaderError{Op: "create", Err: ErrProgramAllocation}
	}
	return nil
}

// Link links all attached stages. Linking an already linked program does nothing.
func (sp *ShaderProgram) Link() error {
	if sp.linked {
		return nil
	}

	if sp.handle == 0 {
		return &ShaderError{Op: "link", Err: ErrNotCompiled}
	}

	ok, log := sp.driver.LinkProgram(sp.handle)
	if !ok {
		return &ShaderError{Op: "link", Log: log, Err: ErrLinkFailed}
	}

	// Locations are only meaningful for the program as it was just linked
	sp.uniforms.Purge()
	sp.linked = true
	return nil
}

// Validate checks the program against the current pipeline state
func (sp *ShaderProgram) Validate() error {
	if !sp.linked {
		return &ShaderError{Op: "validate", Err: ErrNotLinked}
	}

	ok, log := sp.driver.ValidateProgram(sp.handle)
	if !ok {
		return &ShaderError{Op: "validate", Log: log, Err: ErrValidateFailed}
	}
	return nil
}

// Use makes this the current program, replacing whatever was bound before.
func (sp *ShaderProgram) Use() error {
	if sp.handle == 0 || !sp.linked {
		return &ShaderError{Op: "use", Err: ErrUseBeforeLink}
	}

	sp.driver.UseProgram(sp.handle)
	return nil
}

func (sp *ShaderProgram) Handle() uint32 {
	return sp.handle
}

func (sp *ShaderProgram) Linked() bool {
	return sp.linked
}

// Attribute and fragment output bindings take effect on the next link
func (sp *ShaderProgram) BindAttribLocation(index uint32, name string) {
	sp.driver.BindAttribLocation(sp.handle, index, name)
}

func (sp *ShaderProgram) BindFragDataLocation(color uint32, name string) {
	sp.driver.BindFragDataLocation(sp.handle, color, name)
}

// Delete releases every attached stage and then the program itself
func (sp *ShaderProgram) Delete() {
	if sp.handle == 0 {
		return
	}

	for _, shader := range sp.driver.AttachedShaders(sp.handle) {
		sp.driver.DeleteShader(shader)
	}
	sp.driver.DeleteProgram(sp.handle)

	sp.handle = 0
	sp.linked = false
	sp.uniforms.Purge()
}

// uniformLocation resolves name once; unused uniforms stay cached as -1 so
// uploads to them are silently dropped by the driver.
func (sp *ShaderProgram) uniformLocation(name string) int32 {
	loc, ok := sp.uniforms.Get(name)
	if ok {
		return loc
	}

	loc = sp.driver.UniformLocation(sp.handle, name)
	sp.uniforms.Add(name, loc)
	return loc
}

func (sp *ShaderProgram) SetUniform1f(name string, v float32) {
	sp.driver.Uniform1f(sp.uniformLocation(name), v)
}

func (sp *ShaderProgram) SetUniform1i(name string, v int32) {
	sp.driver.Uniform1i(sp.uniformLocation(name), v)
}

func (sp *ShaderProgram) SetUniform1ui(name string, v uint32) {
	sp.driver.Uniform1ui(sp.uniformLocation(name), v)
}

func (sp *ShaderProgram) SetUniformBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	sp.driver.Uniform1i(sp.uniformLocation(name), i)
}

func (sp *ShaderProgram) SetUniform2f(name string, x, y float32) {
	sp.driver.Uniform2f(sp.uniformLocation(name), x, y)
}

func (sp *ShaderProgram) SetUniformVec2(name string, v mgl32.Vec2) {
	sp.SetUniform2f(name, v.X(), v.Y())
}

func (sp *ShaderProgram) SetUniform3f(name string, x, y, z float32) {
	sp.driver.Uniform3f(sp.uniformLocation(name), x, y, z)
}

func (sp *ShaderProgram) SetUniformVec3(name string, v mgl32.Vec3) {
	sp.SetUniform3f(name, v.X(), v.Y(), v.Z())
}

func (sp *ShaderProgram) SetUniformVec4(name string, v mgl32.Vec4) {
	sp.driver.Uniform4f(sp.uniformLocation(name), v.X(), v.Y(), v.Z(), v.W())
}

func (sp *ShaderProgram) SetUniformMat3(name string, m mgl32.Mat3) {
	sp.driver.UniformMatrix3(sp.uniformLocation(name), m)
}

func (sp *ShaderProgram) SetUniformMat4(name string, m mgl32.Mat4) {
	sp.driver.UniformMatrix4(sp.uniformLocation(name), m)
}

func (sp *ShaderProgram) ActiveUniforms() []UniformInfo {
	if sp.handle == 0 {
		return nil
	}
	return sp.driver.ActiveUniforms(sp.handle)
}

func (sp *ShaderProgram) ActiveUniformBlocks() []UniformBlockInfo {
	if sp.handle == 0 {
		return nil
	}
	return sp.driver.ActiveUniformBlocks(sp.handle)
}

func (sp *ShaderProgram) ActiveAttributes() []AttributeInfo {
	if sp.handle == 0 {
		return nil
	}
	return sp.driver.ActiveAttributes(sp.handle)
}

func (sp *ShaderProgram) PrintActiveUniforms(w io.Writer) {
	fmt.Fprintln(w, "Active uniforms:")
	for _, u := range sp.ActiveUniforms() {
		fmt.Fprintf(w, "%-5d %s (%s)\n", u.Location, u.Name, u.Type)
	}
}

func (sp *ShaderProgram) PrintActiveUniformBlocks(w io.Writer) {
	for _, block := range sp.ActiveUniformBlocks() {
		fmt.Fprintf(w, "Uniform block %q:\n", block.Name)
		for _, u := range block.Uniforms {
			fmt.Fprintf(w, "    %s (%s)\n", u.Name, u.Type)
		}
	}
}

func (sp *ShaderProgram) PrintActiveAttributes(w io.Writer) {
	fmt.Fprintln(w, "Active attributes:")
	for _, a := range sp.ActiveAttributes() {
		fmt.Fprintf(w, "%-5d %s (%s)\n", a.Location, a.Name, a.Type)
	}
}
