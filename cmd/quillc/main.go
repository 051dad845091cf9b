package main

import (
	"fmt"
	"os"

	"github.com/quill-lang/quill/internal/config"
	"github.com/quill-lang/quill/internal/diagnostics"
	"github.com/quill-lang/quill/internal/export"
	"github.com/quill-lang/quill/internal/manifest"
	"github.com/quill-lang/quill/internal/pipeline"
	"github.com/quill-lang/quill/internal/prelude"
)

// manifestProcessor loads the package manifest and applies its metadata to
// the package under export. It lives in the driver because the pipeline
// context itself carries the parsed manifest.
type manifestProcessor struct{}

func (p *manifestProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	m, err := manifest.Load(ctx.ManifestPath)
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Manifest = m
	if ctx.Package != nil {
		ctx.Package.Version = m.Version
		if m.Documentation != "" {
			ctx.Package.Documentation = m.Documentation
		}
	}
	return ctx
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintf(os.Stderr, "  -m <path>   Package manifest to load (default %s)\n", config.ManifestFileName)
	fmt.Fprintln(os.Stderr, "  -o <path>   Write the interface document to <path> instead of stdout")
	fmt.Fprintln(os.Stderr, "  -h          Show this help")
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	manifestPath := config.ManifestFileName
	outPath := ""

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-h", "--help":
			printUsage()
			return
		case "-m":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "Error: -m requires a path")
				os.Exit(1)
			}
			i++
			manifestPath = args[i]
		case "-o":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "Error: -o requires a path")
				os.Exit(1)
			}
			i++
			outPath = args[i]
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown option %q\n", args[i])
			printUsage()
			os.Exit(1)
		}
	}

	pre := prelude.New()

	ctx := &pipeline.Context{
		ManifestPath: manifestPath,
		Package:      pre.Package,
		Out:          os.Stdout,
	}

	p := pipeline.New(&manifestProcessor{}, &export.Processor{OutPath: outPath})
	ctx = p.Run(ctx)

	if len(ctx.Errors) > 0 {
		diagnostics.NewPrinter(os.Stderr).Print(ctx.Errors)
		os.Exit(1)
	}
}
