package prelude_test

import (
	"testing"

	"github.com/quill-lang/quill/internal/config"
	"github.com/quill-lang/quill/internal/prelude"
	"github.com/quill-lang/quill/internal/types"
)

func TestPreludePackage(t *testing.T) {
	p := prelude.New()

	if p.Package.Name != config.BuiltinPackageName {
		t.Fatalf("expected package %q, got %q", config.BuiltinPackageName, p.Package.Name)
	}
	if _, ok := p.Package.Lookup(config.ListTypeName); !ok {
		t.Fatal("List must be declared")
	}
	if _, ok := p.Package.Lookup(config.BoxTypeName); !ok {
		t.Fatal("Box must be declared")
	}
}

func TestListDefinition(t *testing.T) {
	p := prelude.New()
	def := p.List.Definition()

	if def.Kind != types.DefValueType {
		t.Fatalf("List is a value type, got %s", def.Kind)
	}
	if len(def.Generics) != 1 {
		t.Fatalf("List declares one generic parameter, got %d", len(def.Generics))
	}

	appendFn := def.Method("append")
	if appendFn == nil || !appendFn.Mutating {
		t.Fatal("append must be a mutating method")
	}
	get := def.Method("get")
	if get == nil || !get.ReturnType.Equal(types.NewGenericVariable(0)) {
		t.Fatal("get must return the element placeholder")
	}
	if def.Initializer("new") == nil {
		t.Fatal("List must declare the new initializer")
	}

	storage := def.Property("storage")
	if storage == nil || storage.Type.Kind != types.KindMemory {
		t.Fatal("List is backed by a Memory property")
	}
}

func TestListType(t *testing.T) {
	p := prelude.New()
	integer := types.NewPrimitive(types.KindInteger)

	lt := p.ListType(integer)
	if lt.Kind != types.KindValueType || len(lt.Generics) != 1 || !lt.Generics[0].Equal(integer) {
		t.Fatalf("unexpected list type %s", lt)
	}
	if lt.String() != "List<Integer>" {
		t.Fatalf("unexpected rendering %q", lt.String())
	}
}

func TestBoxDefinition(t *testing.T) {
	p := prelude.New()
	def := p.Box.Definition()

	set := def.Method("set")
	if set == nil || !set.Mutating {
		t.Fatal("set must be a mutating method")
	}
	init := def.Initializer("new")
	if init == nil || len(init.Parameters) != 1 {
		t.Fatal("Box.new takes the initial value")
	}
	if !init.Parameters[0].Type.Equal(types.NewGenericVariable(0)) {
		t.Fatal("Box.new takes the element placeholder")
	}
}
