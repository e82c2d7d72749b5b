package rust

import (
	"fmt"
	"strings"

	"github.com/rlayout/sdkgen/internal/codegen/meta"
)

type paramKind int

const (
	paramInput paramKind = iota
	paramOutput
)

type parameter struct {
	prop     *meta.Property
	ident    string
	typeText string
	kind     paramKind
}

// classifyParameters splits a function's parameter properties into
// trampoline inputs and outputs. Return values and mutable out parameters
// are outputs regardless of the plain parameter flag; const out parameters
// are passed in by the caller like any other input. Properties carrying
// neither direction are locals inside the host and do not cross the call
// boundary.
func classifyParameters(printer propertyPrinter, fn *meta.Function) ([]parameter, int, error) {
	params := make([]parameter, 0, len(fn.Params))
	outputs := 0
	for _, prop := range fn.Params {
		var kind paramKind
		switch {
		case prop.Flags.Has(meta.ReturnParm) ||
			(prop.Flags.Has(meta.OutParm) && !prop.Flags.Has(meta.ConstParm)):
			kind = paramOutput
		case prop.Flags.Has(meta.Parm):
			kind = paramInput
		default:
			continue
		}
		if len(params) >= maxParameters {
			return nil, 0, ErrMaxParameters
		}
		if kind == paramOutput {
			outputs++
		}

		typeText, err := printer.typeText(prop)
		if err != nil {
			return nil, 0, err
		}
		params = append(params, parameter{
			prop:     prop,
			ident:    cleanName(prop.Name).ident,
			typeText: typeText,
			kind:     kind,
		})
	}
	return params, outputs, nil
}

func (sg *structGen) processFunction(fn *meta.Function) error {
	params, outputs, err := classifyParameters(sg.printer, fn)
	if err != nil {
		return err
	}

	data := trampolineData{
		Name:                cleanName(fn.Name).ident,
		FullName:            sg.s.FullName() + "." + fn.Name.String(),
		Inputs:              inputsHole(params),
		Outputs:             outputsHole(params, outputs),
		DeclareStructFields: declareHole(params),
		InitStructFields:    initHole(params),
		ReturnValues:        returnValuesHole(params, outputs),
	}
	return trampolineTmpl.Execute(sg.out, data)
}

func inputsHole(params []parameter) string {
	var b strings.Builder
	for _, p := range params {
		if p.kind != paramInput {
			continue
		}
		fmt.Fprintf(&b, "%s: %s, ", p.ident, p.typeText)
	}
	return b.String()
}

func outputsHole(params []parameter, outputs int) string {
	switch outputs {
	case 0:
		return ""
	case 1:
		for _, p := range params {
			if p.kind == paramOutput {
				return fmt.Sprintf("-> %s ", p.typeText)
			}
		}
		return ""
	default:
		var b strings.Builder
		b.WriteString("-> (")
		for _, p := range params {
			if p.kind != paramOutput {
				continue
			}
			b.WriteString(p.typeText)
			b.WriteString(", ")
		}
		b.WriteString(") ")
		return b.String()
	}
}

// The parameter block mirrors the host's call frame, so every parameter
// appears in declaration order regardless of direction. Outputs start
// uninitialized; the host fills them during the call.
func declareHole(params []parameter) string {
	var b strings.Builder
	for _, p := range params {
		if p.kind == paramOutput {
			fmt.Fprintf(&b, "\n            %s: core::mem::MaybeUninit<%s>,", p.ident, p.typeText)
		} else {
			fmt.Fprintf(&b, "\n            %s: %s,", p.ident, p.typeText)
		}
	}
	return b.String()
}

func initHole(params []parameter) string {
	var b strings.Builder
	for _, p := range params {
		if p.kind == paramOutput {
			fmt.Fprintf(&b, "\n            %s: core::mem::MaybeUninit::uninit(),", p.ident)
		} else {
			fmt.Fprintf(&b, "\n            %s,", p.ident)
		}
	}
	return b.String()
}

func returnValuesHole(params []parameter, outputs int) string {
	switch outputs {
	case 0:
		return ""
	case 1:
		for _, p := range params {
			if p.kind == paramOutput {
				return fmt.Sprintf("\n        parameters.%s.assume_init()", p.ident)
			}
		}
		return ""
	default:
		var b strings.Builder
		b.WriteString("\n        (")
		for _, p := range params {
			if p.kind != paramOutput {
				continue
			}
			fmt.Fprintf(&b, "parameters.%s.assume_init(), ", p.ident)
		}
		b.WriteString(")")
		return b.String()
	}
}
