package pipeline_test

import (
	"errors"
	"testing"

	"github.com/quill-lang/quill/internal/pipeline"
)

type recordingStage struct {
	name string
	ran  *[]string
	fail bool
}

func (s *recordingStage) Process(ctx *pipeline.Context) *pipeline.Context {
	*s.ran = append(*s.ran, s.name)
	if s.fail {
		ctx.Errors = append(ctx.Errors, errors.New(s.name+" failed"))
	}
	return ctx
}

func TestPipelineRunsStagesInOrder(t *testing.T) {
	var ran []string
	p := pipeline.New(
		&recordingStage{name: "first", ran: &ran},
		&recordingStage{name: "second", ran: &ran},
	)

	ctx := p.Run(&pipeline.Context{})
	if len(ctx.Errors) != 0 {
		t.Fatalf("unexpected errors %v", ctx.Errors)
	}
	if len(ran) != 2 || ran[0] != "first" || ran[1] != "second" {
		t.Fatalf("unexpected stage order %v", ran)
	}
}

func TestPipelineKeepsRunningAfterFailure(t *testing.T) {
	var ran []string
	p := pipeline.New(
		&recordingStage{name: "first", ran: &ran, fail: true},
		&recordingStage{name: "second", ran: &ran},
	)

	ctx := p.Run(&pipeline.Context{})
	if len(ctx.Errors) != 1 {
		t.Fatalf("expected the first stage's error, got %v", ctx.Errors)
	}
	if len(ran) != 2 {
		t.Fatalf("later stages must still run, got %v", ran)
	}
}
