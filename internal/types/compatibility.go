package types

// Compatible reports whether a value of type got may be passed where
// expected is declared. Compatibility is deliberately narrow: structural
// equality, wrapping a non-optional into an optional, a class into one of
// its superclasses, and a conforming concrete type into a protocol or
// protocol composition. There is no implicit widening between primitives.
func Compatible(got, expected Type) bool {
	if got.IsError() || expected.IsError() {
		// The error sentinel suppresses secondary diagnostics.
		return true
	}
	if got.Equal(expected) {
		return true
	}
	if expected.Optional && !got.Optional {
		if got.Equal(expected.WithOptional(false)) {
			return true
		}
		if got.Kind == KindNoValue {
			return true
		}
	}
	if got.Optional {
		// An optional never fits a non-optional slot.
		if !expected.Optional {
			return false
		}
	}
	if got.Kind == KindClass && expected.Kind == KindClass {
		return inheritsFrom(got, expected)
	}
	if expected.Kind == KindProtocol && got.IsNamed() {
		return conformsTo(got, expected)
	}
	if expected.Kind == KindMultiProtocol && got.IsNamed() {
		for _, p := range expected.Protocols {
			if !conformsTo(got, p) {
				return false
			}
		}
		return true
	}
	if got.Kind == KindMultiProtocol && expected.Kind == KindProtocol {
		for _, p := range got.Protocols {
			if p.Equal(expected) || p.Equal(expected.WithOptional(false)) {
				return true
			}
		}
	}
	return false
}

// inheritsFrom walks got's superclass chain looking for expected.
func inheritsFrom(got, expected Type) bool {
	for def := got.Def.Definition(); ; {
		if got.Def == expected.Def {
			return true
		}
		if def.Superclass == nil {
			return false
		}
		got.Def = *def.Superclass
		def = got.Def.Definition()
	}
}

// conformsTo checks got's conformance list, and for classes the whole
// superclass chain, for the protocol expected.
func conformsTo(got, expected Type) bool {
	def := got.Def.Definition()
	for {
		for _, p := range def.Protocols {
			if p.Def == expected.Def {
				return true
			}
		}
		if def.Superclass == nil {
			return false
		}
		def = def.Superclass.Definition()
	}
}
