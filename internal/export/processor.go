package export

import (
	"os"

	"github.com/quill-lang/quill/internal/pipeline"
)

// Processor is the pipeline stage that writes the interface document for
// the analysed package. It skips when earlier stages failed: exporting a
// partially resolved package would violate the exporter's precondition.
type Processor struct {
	// OutPath overrides the manifest's interface output path when set.
	OutPath string
}

func (p *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	if len(ctx.Errors) > 0 || ctx.Package == nil {
		return ctx
	}

	path := p.OutPath
	if path == "" && ctx.Manifest != nil {
		path = ctx.Manifest.Interface.Out
	}

	out := ctx.Out
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			ctx.Errors = append(ctx.Errors, err)
			return ctx
		}
		defer f.Close()
		out = f
	}

	if err := New(out).Export(ctx.Package); err != nil {
		ctx.Errors = append(ctx.Errors, err)
	}
	return ctx
}
