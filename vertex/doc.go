// SPDX-License-Identifier: MIT

// Package vertex views the attributes of interleaved vertex buffers as
// strided containers.
//
// A vertex buffer interleaves several attributes per vertex; each attribute is
// a strided one-dimensional array whose stride is the layout's ArrayStride.
// AttributeView exposes one attribute with one element per vertex,
// ComponentView the same attribute as a vertices × components matrix:
//
//	layout := vertex.Interleave(gputypes.VertexStepModeVertex,
//		vertex.Position3D, vertex.TextureCoordinates, vertex.Normal)
//	buf, _ := vertex.NewBuffer(layout, 3)
//	pos, _ := vertex.AttributeView[f32.Vec3](buf, vertex.Position3D.Location)
//	_ = pos.Set(0, f32.Vec3{0, 1, 0})
//	upload(buf.Bytes())
//
// LayoutFromWGSL derives the layout straight from the @location inputs of a
// WGSL vertex entry point.
package vertex
