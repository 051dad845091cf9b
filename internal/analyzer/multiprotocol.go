package analyzer

import (
	"strings"

	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/diagnostics"
	"github.com/quill-lang/quill/internal/types"
)

// analyseMultiProtocolCall resolves a method call on a protocol composition
// type. Exactly one declaring protocol resolves directly; several declaring
// protocols must agree on the signature, in which case the first-declared
// protocol provides the witness slot. Declaration order is part of the
// language's resolution rule, not an implementation accident.
func (a *Analyzer) analyseMultiProtocolCall(call *ast.CallExpression, calleeType types.Type, ctx types.TypeContext) types.Type {
	var matches []resolution
	for _, p := range calleeType.Protocols {
		pdef := p.Def.Definition()
		if fn := pdef.Method(call.Name); fn != nil {
			matches = append(matches, resolution{
				method:      fn,
				dispatch:    types.DispatchWitness,
				witness:     p,
				witnessSlot: pdef.MethodIndex(call.Name),
			})
		}
	}

	if len(matches) == 0 {
		a.errorf(diagnostics.ErrUnknownMethod, call, "type %s has no method %s", calleeType, call.Name)
		return types.Error()
	}
	for _, m := range matches[1:] {
		if !m.method.SignatureEqual(matches[0].method) {
			names := make([]string, len(matches))
			for i, c := range matches {
				names[i] = c.witness.String()
			}
			a.errorf(diagnostics.ErrAmbiguousProtocolMethod, call,
				"method %s is declared with incompatible signatures by protocols %s",
				call.Name, strings.Join(names, ", "))
			return types.Error()
		}
	}
	return a.finishCall(call, calleeType, matches[0], ctx)
}
