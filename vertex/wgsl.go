// SPDX-License-Identifier: MIT

package vertex

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
	"github.com/katalvlaran/strided/containers"
)

// LayoutFromWGSL derives the vertex inputs of a WGSL vertex shader.
//
// Implementation:
//   - Stage 1: parse and lower source to IR.
//   - Stage 2: pick the vertex entry point named entryPoint, or the first
//     vertex entry point when entryPoint is empty.
//   - Stage 3: collect every @location input, either a direct argument or a
//     member of a struct argument; builtins are skipped.
//   - Stage 4: map each input type to a vertex format, sort by location and
//     interleave into one per-vertex buffer layout.
//
// Errors: ErrNoEntryPoint, ErrUnsupportedType, or a wrapped parse/lower error.
func LayoutFromWGSL(source, entryPoint string) ([]Attribute, gputypes.VertexBufferLayout, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, gputypes.VertexBufferLayout{}, fmt.Errorf("LayoutFromWGSL: %w", err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, gputypes.VertexBufferLayout{}, fmt.Errorf("LayoutFromWGSL: %w", err)
	}

	ep, ok := vertexEntryPoint(module, entryPoint)
	if !ok {
		return nil, gputypes.VertexBufferLayout{}, fmt.Errorf("LayoutFromWGSL(%q): %w", entryPoint, ErrNoEntryPoint)
	}

	attrs, err := collectInputs(module, ep.Function.Arguments)
	if err != nil {
		return nil, gputypes.VertexBufferLayout{}, fmt.Errorf("LayoutFromWGSL(%q): %w", ep.Name, err)
	}
	slices.SortFunc(attrs, func(a, b Attribute) int { return cmp.Compare(a.Location, b.Location) })

	layout := Interleave(gputypes.VertexStepModeVertex, attrs...)
	containers.Logger().Debug("vertex: layout from WGSL",
		"entry", ep.Name, "attributes", len(attrs), "stride", layout.ArrayStride)

	return attrs, layout, nil
}

func vertexEntryPoint(module *ir.Module, name string) (*ir.EntryPoint, bool) {
	for i := range module.EntryPoints {
		ep := &module.EntryPoints[i]
		if ep.Stage == ir.StageVertex && (name == "" || ep.Name == name) {
			return ep, true
		}
	}

	return nil, false
}

func collectInputs(module *ir.Module, args []ir.FunctionArgument) ([]Attribute, error) {
	var attrs []Attribute
	for _, arg := range args {
		if arg.Binding != nil {
			attr, ok, err := locationInput(module, arg.Name, arg.Type, *arg.Binding)
			if err != nil {
				return nil, err
			}
			if ok {
				attrs = append(attrs, attr)
			}
			continue
		}

		st, isStruct := typeInner(module, arg.Type).(ir.StructType)
		if !isStruct {
			continue
		}
		for _, m := range st.Members {
			if m.Binding == nil {
				continue
			}
			attr, ok, err := locationInput(module, m.Name, m.Type, *m.Binding)
			if err != nil {
				return nil, err
			}
			if ok {
				attrs = append(attrs, attr)
			}
		}
	}

	return attrs, nil
}

// locationInput converts one bound input. Builtin bindings report ok=false.
func locationInput(module *ir.Module, name string, h ir.TypeHandle, b ir.Binding) (Attribute, bool, error) {
	lb, ok := b.(ir.LocationBinding)
	if !ok {
		return Attribute{}, false, nil
	}
	f, err := vertexFormatOf(typeInner(module, h))
	if err != nil {
		return Attribute{}, false, fmt.Errorf("input %q at location %d: %w", name, lb.Location, err)
	}

	return Attribute{Name: name, Location: lb.Location, Format: f}, true, nil
}

func typeInner(module *ir.Module, h ir.TypeHandle) ir.TypeInner {
	if int(h) >= len(module.Types) {
		return nil
	}

	return module.Types[h].Inner
}

// shaderFormats maps (scalar kind, width in bytes) to the vertex formats for
// 1, 2, 3 and 4 components. Undefined entries have no vertex format.
var shaderFormats = map[ir.ScalarType][4]gputypes.VertexFormat{
	{Kind: ir.ScalarFloat, Width: 4}: {
		gputypes.VertexFormatFloat32, gputypes.VertexFormatFloat32x2,
		gputypes.VertexFormatFloat32x3, gputypes.VertexFormatFloat32x4,
	},
	{Kind: ir.ScalarUint, Width: 4}: {
		gputypes.VertexFormatUint32, gputypes.VertexFormatUint32x2,
		gputypes.VertexFormatUint32x3, gputypes.VertexFormatUint32x4,
	},
	{Kind: ir.ScalarSint, Width: 4}: {
		gputypes.VertexFormatSint32, gputypes.VertexFormatSint32x2,
		gputypes.VertexFormatSint32x3, gputypes.VertexFormatSint32x4,
	},
	{Kind: ir.ScalarFloat, Width: 2}: {
		gputypes.VertexFormatUndefined, gputypes.VertexFormatFloat16x2,
		gputypes.VertexFormatUndefined, gputypes.VertexFormatFloat16x4,
	},
}

func vertexFormatOf(inner ir.TypeInner) (gputypes.VertexFormat, error) {
	var (
		scalar ir.ScalarType
		n      int
	)
	switch t := inner.(type) {
	case ir.ScalarType:
		scalar, n = t, 1
	case ir.VectorType:
		scalar, n = t.Scalar, int(t.Size)
	default:
		return gputypes.VertexFormatUndefined, fmt.Errorf("type %T: %w", inner, ErrUnsupportedType)
	}

	row, ok := shaderFormats[scalar]
	if !ok || n < 1 || n > 4 || row[n-1] == gputypes.VertexFormatUndefined {
		return gputypes.VertexFormatUndefined,
			fmt.Errorf("%d-component scalar kind %d width %d: %w", n, scalar.Kind, scalar.Width, ErrUnsupportedType)
	}

	return row[n-1], nil
}
