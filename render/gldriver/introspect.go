package gldriver

import (
	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/samuelyuan/go-darknebula/render"
)

func (d *Driver) ActiveUniforms(program uint32) []render.UniformInfo {
	var numUniforms int32
	gl.GetProgramInterfaceiv(program, gl.UNIFORM, gl.ACTIVE_RESOURCES, &numUniforms)

	properties := []uint32{gl.NAME_LENGTH, gl.TYPE, gl.LOCATION, gl.BLOCK_INDEX}
	uniforms := make([]render.UniformInfo, 0, numUniforms)
	for i := uint32(0); i < uint32(numUniforms); i++ {
		results := resourceProperties(program, gl.UNIFORM, i, properties)

		// Skip uniforms in blocks
		if results[3] != -1 {
			continue
		}

		uniforms = append(uniforms, render.UniformInfo{
			Name:     resourceName(program, gl.UNIFORM, i, results[0]),
			Type:     typeName(uint32(results[1])),
			Location: results[2],
		})
	}
	return uniforms
}

func (d *Driver) ActiveUniformBlocks(program uint32) []render.UniformBlockInfo {
	var numBlocks int32
	gl.GetProgramInterfaceiv(program, gl.UNIFORM_BLOCK, gl.ACTIVE_RESOURCES, &numBlocks)

	blockProperties := []uint32{gl.NUM_ACTIVE_VARIABLES, gl.NAME_LENGTH}
	activeVariables := []uint32{gl.ACTIVE_VARIABLES}
	uniformProperties := []uint32{gl.NAME_LENGTH, gl.TYPE, gl.LOCATION}

	blocks := make([]render.UniformBlockInfo, 0, numBlocks)
	for block := uint32(0); block < uint32(numBlocks); block++ {
		blockInfo := resourceProperties(program, gl.UNIFORM_BLOCK, block, blockProperties)
		numUniforms := blockInfo[0]

		info := render.UniformBlockInfo{
			Name: resourceName(program, gl.UNIFORM_BLOCK, block, blockInfo[1]),
		}

		if numUniforms > 0 {
			indices := make([]int32, numUniforms)
			gl.GetProgramResourceiv(program, gl.UNIFORM_BLOCK, block, 1, &activeVariables[0], numUniforms, nil, &indices[0])

			for _, index := range indices {
				results := resourceProperties(program, gl.UNIFORM, uint32(index), uniformProperties)
				info.Uniforms = append(info.Uniforms, render.UniformInfo{
					Name:     resourceName(program, gl.UNIFORM, uint32(index), results[0]),
					Type:     typeName(uint32(results[1])),
					Location: results[2],
				})
			}
		}

		blocks = append(blocks, info)
	}
	return blocks
}

func (d *Driver) ActiveAttributes(program uint32) []render.AttributeInfo {
	var numAttribs int32
	gl.GetProgramInterfaceiv(program, gl.PROGRAM_INPUT, gl.ACTIVE_RESOURCES, &numAttribs)

	properties := []uint32{gl.NAME_LENGTH, gl.TYPE, gl.LOCATION}
	attribs := make([]render.AttributeInfo, 0, numAttribs)
	for i := uint32(0); i < uint32(numAttribs); i++ {
		results := resourceProperties(program, gl.PROGRAM_INPUT, i, properties)
		attribs = append(attribs, render.AttributeInfo{
			Name:     resourceName(program, gl.PROGRAM_INPUT, i, results[0]),
			Type:     typeName(uint32(results[1])),
			Location: results[2],
		})
	}
	return attribs
}

func resourceProperties(program, programInterface, index uint32, properties []uint32) []int32 {
	results := make([]int32, len(properties))
	gl.GetProgramResourceiv(program, programInterface, index,
		int32(len(properties)), &properties[0], int32(len(results)), nil, &results[0])
	return results
}

func resourceName(program, programInterface, index uint32, nameLength int32) string {
	name := make([]uint8, nameLength+1)
	gl.GetProgramResourceName(program, programInterface, index, int32(len(name)), nil, &name[0])
	return gl.GoStr(&name[0])
}

func typeName(glType uint32) string {
	switch glType {
	case gl.FLOAT:
		return "float"
	case gl.FLOAT_VEC2:
		return "vec2"
	case gl.FLOAT_VEC3:
		return "vec3"
	case gl.FLOAT_VEC4:
		return "vec4"
	case gl.DOUBLE:
		return "double"
	case gl.INT:
		return "int"
	case gl.UNSIGNED_INT:
		return "unsigned int"
	case gl.BOOL:
		return "bool"
	case gl.FLOAT_MAT2:
		return "mat2"
	case gl.FLOAT_MAT3:
		return "mat3"
	case gl.FLOAT_MAT4:
		return "mat4"
	}
	return "?"
}
