// Package pipeline chains the driver's processing stages. Stages keep
// running after a failure so every stage's diagnostics are collected in one
// pass.
package pipeline

import (
	"io"

	"github.com/quill-lang/quill/internal/manifest"
	"github.com/quill-lang/quill/internal/types"
)

// Context carries the state threaded through the stages.
type Context struct {
	// ManifestPath locates quill.yaml.
	ManifestPath string
	// Manifest is set by the manifest stage.
	Manifest *manifest.Manifest

	// Package is the fully analysed package under export.
	Package *types.Package

	// Out is where the interface document goes when the manifest names
	// no output path.
	Out io.Writer

	// Errors accumulates diagnostics from every stage.
	Errors []error
}

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline is an ordered sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. Stages run unconditionally; each one decides
// for itself whether earlier errors make its work moot.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
