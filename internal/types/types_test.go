package types_test

import (
	"testing"

	"github.com/quill-lang/quill/internal/types"
)

var (
	integer = types.NewPrimitive(types.KindInteger)
	real    = types.NewPrimitive(types.KindReal)
)

// testWorld is a small package with a class chain and two protocols.
type testWorld struct {
	pkg *types.Package

	animal types.Handle // class
	dog    types.Handle // class Animal, conforms speaker
	puppy  types.Handle // class Dog

	speaker types.Handle // protocol
	walker  types.Handle // protocol

	pair types.Handle // value type with two generic parameters
}

func newWorld() *testWorld {
	w := &testWorld{pkg: types.NewPackage("zoo")}

	w.speaker = w.pkg.Add(&types.TypeDefinition{Kind: types.DefProtocol, Name: "Speaker"})
	w.walker = w.pkg.Add(&types.TypeDefinition{Kind: types.DefProtocol, Name: "Walker"})

	w.animal = w.pkg.Add(&types.TypeDefinition{Kind: types.DefClass, Name: "Animal"})
	w.dog = w.pkg.Add(&types.TypeDefinition{
		Kind: types.DefClass, Name: "Dog",
		Superclass: &w.animal,
		Protocols:  []types.Type{types.NewNamed(w.speaker)},
	})
	w.puppy = w.pkg.Add(&types.TypeDefinition{
		Kind: types.DefClass, Name: "Puppy",
		Superclass: &w.dog,
	})

	w.pair = w.pkg.Add(&types.TypeDefinition{
		Kind: types.DefValueType, Name: "Pair",
		Generics: []types.GenericParameter{{Name: "A"}, {Name: "B"}},
	})
	return w
}

func TestStructuralEquality(t *testing.T) {
	w := newWorld()

	cases := []struct {
		name  string
		a, b  types.Type
		equal bool
	}{
		{"same primitive", integer, types.NewPrimitive(types.KindInteger), true},
		{"different primitives", integer, real, false},
		{"optionality matters", integer, integer.WithOptional(true), false},
		{"same declaration", types.NewNamed(w.dog), types.NewNamed(w.dog), true},
		{"different declarations", types.NewNamed(w.dog), types.NewNamed(w.animal), false},
		{"same generics", types.NewNamed(w.pair, integer, real), types.NewNamed(w.pair, integer, real), true},
		{"different generics", types.NewNamed(w.pair, integer, real), types.NewNamed(w.pair, real, integer), false},
		{"generic variable index", types.NewGenericVariable(0), types.NewGenericVariable(1), false},
		{
			"composition order matters",
			types.NewMultiProtocol(types.NewNamed(w.speaker), types.NewNamed(w.walker)),
			types.NewMultiProtocol(types.NewNamed(w.walker), types.NewNamed(w.speaker)),
			false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.equal {
				t.Fatalf("%s.Equal(%s) = %v, expected %v", tc.a, tc.b, got, tc.equal)
			}
		})
	}
}

func TestTypeString(t *testing.T) {
	w := newWorld()

	cases := []struct {
		typ  types.Type
		want string
	}{
		{integer, "Integer"},
		{integer.WithOptional(true), "Integer?"},
		{types.NewNamed(w.dog), "Dog"},
		{types.NewNamed(w.pair, integer, real), "Pair<Integer, Real>"},
		{types.NewNamed(w.pair, integer.WithOptional(true), real), "Pair<Integer?, Real>"},
		{types.NewMultiProtocol(types.NewNamed(w.speaker), types.NewNamed(w.walker)), "Speaker & Walker"},
		{types.NewGenericVariable(0), "T0"},
		{types.NewLocalGenericVariable(1), "L1"},
		{types.NoReturn(), "NoReturn"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.typ.String(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestZeroTypeMeansNoReturn(t *testing.T) {
	var zero types.Type
	if zero.Kind != types.KindNoReturn {
		t.Fatalf("the zero Type must read as no return, got %s", zero)
	}
}

func TestCompatible(t *testing.T) {
	w := newWorld()
	dog := types.NewNamed(w.dog)
	animal := types.NewNamed(w.animal)
	puppy := types.NewNamed(w.puppy)
	speaker := types.NewNamed(w.speaker)
	walker := types.NewNamed(w.walker)
	noValue := types.NewPrimitive(types.KindNoValue)

	cases := []struct {
		name          string
		got, expected types.Type
		want          bool
	}{
		{"identity", integer, integer, true},
		{"no primitive widening", integer, real, false},
		{"plain into optional", integer, integer.WithOptional(true), true},
		{"optional into plain", integer.WithOptional(true), integer, false},
		{"no value into optional", noValue, integer.WithOptional(true), true},
		{"no value into plain", noValue, integer, false},
		{"subclass into superclass", dog, animal, true},
		{"transitive superclass", puppy, animal, true},
		{"superclass into subclass", animal, dog, false},
		{"conforming class into protocol", dog, speaker, true},
		{"conformance through superclass", puppy, speaker, true},
		{"non-conforming class into protocol", animal, speaker, false},
		{"class into composition it satisfies", dog, types.NewMultiProtocol(speaker), true},
		{"class into composition it misses", dog, types.NewMultiProtocol(speaker, walker), false},
		{"composition into constituent", types.NewMultiProtocol(speaker, walker), walker, true},
		{"composition into stranger", types.NewMultiProtocol(speaker), walker, false},
		{"error sentinel passes anywhere", types.Error(), integer, true},
		{"anything passes into the sentinel", integer, types.Error(), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := types.Compatible(tc.got, tc.expected); got != tc.want {
				t.Fatalf("Compatible(%s, %s) = %v, expected %v", tc.got, tc.expected, got, tc.want)
			}
		})
	}
}

func TestTypeContextResolve(t *testing.T) {
	w := newWorld()
	pairOfInts := types.NewNamed(w.pair, integer, integer)

	t.Run("definition generic", func(t *testing.T) {
		ctx := types.NewTypeContext(types.NewNamed(w.pair, real, integer))
		got := ctx.Resolve(types.NewGenericVariable(0))
		if !got.Equal(real) {
			t.Fatalf("expected Real, got %s", got)
		}
		if !got.Resolved() {
			t.Fatal("substituted type must be resolved")
		}
	})

	t.Run("function generic", func(t *testing.T) {
		fn := &types.Function{Name: "pick", Generics: []types.GenericParameter{{Name: "T"}}}
		ctx := types.NewTypeContext(pairOfInts).WithFunction(fn, []types.Type{real})
		got := ctx.Resolve(types.NewLocalGenericVariable(0))
		if !got.Equal(real) {
			t.Fatalf("expected Real, got %s", got)
		}
	})

	t.Run("nested substitution", func(t *testing.T) {
		ctx := types.NewTypeContext(types.NewNamed(w.pair, real, integer))
		nested := types.NewNamed(w.pair, types.NewGenericVariable(0), types.NewGenericVariable(1))
		got := ctx.Resolve(nested)
		if !got.Equal(types.NewNamed(w.pair, real, integer)) {
			t.Fatalf("expected Pair<Real, Integer>, got %s", got)
		}
	})

	t.Run("optional placeholder stays optional", func(t *testing.T) {
		ctx := types.NewTypeContext(types.NewNamed(w.pair, real, integer))
		got := ctx.Resolve(types.NewGenericVariable(0).WithOptional(true))
		if !got.Equal(real.WithOptional(true)) {
			t.Fatalf("expected Real?, got %s", got)
		}
	})

	t.Run("self-referential binding terminates", func(t *testing.T) {
		// Inside a generic declaration's own method bodies the callee is
		// the self type, so a placeholder is bound to itself. The binding
		// comes back as-is instead of being chased forever.
		ctx := types.NewTypeContext(types.NewNamed(w.pair, types.NewGenericVariable(0), integer))
		got := ctx.Resolve(types.NewGenericVariable(0))
		if !got.Equal(types.NewGenericVariable(0)) {
			t.Fatalf("expected the placeholder back, got %s", got)
		}
	})

	t.Run("unbound placeholder is returned unchanged", func(t *testing.T) {
		ctx := types.NewTypeContext(integer)
		got := ctx.Resolve(types.NewGenericVariable(2))
		if got.Resolved() {
			t.Fatal("an unbound placeholder must stay unresolved")
		}
	})
}

func TestSignatureEqual(t *testing.T) {
	a := &types.Function{Name: "area", ReturnType: real}
	b := &types.Function{Name: "extent", ReturnType: real}
	c := &types.Function{Name: "area", ReturnType: integer}
	d := &types.Function{Name: "area", ReturnType: real,
		Parameters: []types.Parameter{{Name: "scale", Type: real}}}

	if !a.SignatureEqual(b) {
		t.Fatal("names do not participate in signature equality")
	}
	if a.SignatureEqual(c) {
		t.Fatal("differing return types must not compare equal")
	}
	if a.SignatureEqual(d) {
		t.Fatal("differing parameter lists must not compare equal")
	}
}

func TestPackageLookup(t *testing.T) {
	w := newWorld()

	h, ok := w.pkg.Lookup("Dog")
	if !ok {
		t.Fatal("expected Dog to be found")
	}
	if h != w.dog {
		t.Fatal("lookup must return the original handle")
	}
	if _, ok := w.pkg.Lookup("Cat"); ok {
		t.Fatal("expected Cat to be absent")
	}

	exported := w.pkg.ExportedTypes()
	if len(exported) != 0 {
		t.Fatalf("nothing in the fixture is exported, got %d", len(exported))
	}
}
