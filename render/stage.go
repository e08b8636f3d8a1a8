package render

import (
	"path/filepath"
)

// StageType identifies a programmable pipeline stage.
type StageType int

const (
	VertexStage StageType = iota + 1
	TessControlStage
	TessEvaluationStage
	GeometryStage
	FragmentStage
	ComputeStage
)

// File extensions are matched exactly, including case
var stageExtensions = map[string]StageType{
	".vs":   VertexStage,
	".vert": VertexStage,
	".gs":   GeometryStage,
	".geom": GeometryStage,
	".tcs":  TessControlStage,
	".tes":  TessEvaluationStage,
	".fs":   FragmentStage,
	".frag": FragmentStage,
	".cs":   ComputeStage,
}

// StageFromFilename returns the stage implied by the extension of name.
func StageFromFilename(name string) (StageType, bool) {
	stage, ok := stageExtensions[filepath.Ext(name)]
	return stage, ok
}

func (s StageType) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case TessControlStage:
		return "tess-control"
	case TessEvaluationStage:
		return "tess-evaluation"
	case GeometryStage:
		return "geometry"
	case FragmentStage:
		return "fragment"
	case ComputeStage:
		return "compute"
	}
	return "unknown"
}
