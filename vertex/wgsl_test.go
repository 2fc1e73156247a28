// SPDX-License-Identifier: MIT

package vertex_test

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga/ir"
	"github.com/katalvlaran/strided/vertex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const convexShader = `
struct VertexInput {
    @location(0) position: vec2<f32>,
    @location(2) color: vec4<f32>,
    @location(1) coverage: f32,
}

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec4<f32>,
}

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.position = vec4<f32>(in.position, 0.0, 1.0);
    out.color = vec4<f32>(in.color.rgb, in.color.a * in.coverage);
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return in.color;
}
`

const directShader = `
@vertex
fn main(
    @builtin(vertex_index) index: u32,
    @location(0) position: vec3<f32>,
    @location(1) uv: vec2<f32>,
    @location(3) id: u32
) -> @builtin(position) vec4<f32> {
    let z = f32(index + id);
    return vec4<f32>(position.xy + uv, z, 1.0);
}
`

func TestLayoutFromWGSL_StructInput(t *testing.T) {
	attrs, layout, err := vertex.LayoutFromWGSL(convexShader, "vs_main")
	require.NoError(t, err)

	assert.Equal(t, []vertex.Attribute{
		{Name: "position", Location: 0, Format: gputypes.VertexFormatFloat32x2},
		{Name: "coverage", Location: 1, Format: gputypes.VertexFormatFloat32},
		{Name: "color", Location: 2, Format: gputypes.VertexFormatFloat32x4},
	}, attrs)
	assert.Equal(t, convexLayout(), layout)
}

func TestLayoutFromWGSL_DirectArguments(t *testing.T) {
	attrs, layout, err := vertex.LayoutFromWGSL(directShader, "")
	require.NoError(t, err)

	require.Len(t, attrs, 3)
	assert.Equal(t, "position", attrs[0].Name)
	assert.Equal(t, gputypes.VertexFormatFloat32x3, attrs[0].Format)
	assert.Equal(t, gputypes.VertexFormatFloat32x2, attrs[1].Format)
	assert.Equal(t, vertex.Attribute{Name: "id", Location: 3, Format: gputypes.VertexFormatUint32}, attrs[2])

	assert.Equal(t, uint64(24), layout.ArrayStride)
	assert.Equal(t, uint64(20), layout.Attributes[2].Offset)

	b, err := vertex.NewBuffer(layout, 2)
	require.NoError(t, err)
	ids, err := vertex.AttributeView[uint32](b, 3)
	require.NoError(t, err)
	require.NoError(t, ids.Set(1, 7))
	got, err := ids.At(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), got)
}

func TestLayoutFromWGSL_NoEntryPoint(t *testing.T) {
	_, _, err := vertex.LayoutFromWGSL(convexShader, "fs_main")
	assert.ErrorIs(t, err, vertex.ErrNoEntryPoint)
	_, _, err = vertex.LayoutFromWGSL(convexShader, "missing")
	assert.ErrorIs(t, err, vertex.ErrNoEntryPoint)
}

func TestLayoutFromWGSL_ParseError(t *testing.T) {
	_, _, err := vertex.LayoutFromWGSL("fn (", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, vertex.ErrNoEntryPoint)
}

func TestVertexFormatOf(t *testing.T) {
	f32 := ir.ScalarType{Kind: ir.ScalarFloat, Width: 4}

	got, err := vertex.VertexFormatOf(ir.VectorType{Size: ir.Vec4, Scalar: f32})
	require.NoError(t, err)
	assert.Equal(t, gputypes.VertexFormatFloat32x4, got)

	got, err = vertex.VertexFormatOf(ir.VectorType{Size: ir.Vec2, Scalar: ir.ScalarType{Kind: ir.ScalarSint, Width: 4}})
	require.NoError(t, err)
	assert.Equal(t, gputypes.VertexFormatSint32x2, got)

	got, err = vertex.VertexFormatOf(ir.VectorType{Size: ir.Vec4, Scalar: ir.ScalarType{Kind: ir.ScalarFloat, Width: 2}})
	require.NoError(t, err)
	assert.Equal(t, gputypes.VertexFormatFloat16x4, got)

	for name, inner := range map[string]ir.TypeInner{
		"matrix": ir.MatrixType{Columns: ir.Vec4, Rows: ir.Vec4, Scalar: f32},
		"bool":   ir.ScalarType{Kind: ir.ScalarBool, Width: 1},
		"f16x3":  ir.VectorType{Size: ir.Vec3, Scalar: ir.ScalarType{Kind: ir.ScalarFloat, Width: 2}},
		"nil":    nil,
	} {
		_, err := vertex.VertexFormatOf(inner)
		assert.ErrorIs(t, err, vertex.ErrUnsupportedType, name)
	}
}
