// SPDX-License-Identifier: MIT

package vertex

import (
	"fmt"
	"strconv"

	"github.com/gogpu/gputypes"
)

// Attribute names a vertex shader input: its @location and the format the
// vertex buffer stores it in.
type Attribute struct {
	Name     string
	Location uint32
	Format   gputypes.VertexFormat
}

// Well-known attributes shared by the builtin shaders. Both position variants
// occupy location 0, both color variants location 3.
var (
	Position2D         = Attribute{Name: "position", Location: 0, Format: gputypes.VertexFormatFloat32x2}
	Position3D         = Attribute{Name: "position", Location: 0, Format: gputypes.VertexFormatFloat32x3}
	TextureCoordinates = Attribute{Name: "texture_coordinates", Location: 1, Format: gputypes.VertexFormatFloat32x2}
	Normal             = Attribute{Name: "normal", Location: 2, Format: gputypes.VertexFormatFloat32x3}
	Color3             = Attribute{Name: "color", Location: 3, Format: gputypes.VertexFormatFloat32x3}
	Color4             = Attribute{Name: "color", Location: 3, Format: gputypes.VertexFormatFloat32x4}
)

func (a Attribute) String() string {
	return fmt.Sprintf("%s@%d:%v", a.Name, a.Location, a.Format)
}

// componentInfo describes how a vertex format is laid out in memory.
type componentInfo struct {
	scalar     string // buffer format character of one component
	components int
	size       int // bytes per component
}

// vertexComponents covers every format a view can address. Normalized
// formats are viewed as their raw integer storage. Half floats have no Go
// element type and are absent.
var vertexComponents = map[gputypes.VertexFormat]componentInfo{
	gputypes.VertexFormatUint8x2:      {"B", 2, 1},
	gputypes.VertexFormatUint8x4:      {"B", 4, 1},
	gputypes.VertexFormatSint8x2:      {"b", 2, 1},
	gputypes.VertexFormatSint8x4:      {"b", 4, 1},
	gputypes.VertexFormatUnorm8x2:     {"B", 2, 1},
	gputypes.VertexFormatUnorm8x4:     {"B", 4, 1},
	gputypes.VertexFormatSnorm8x2:     {"b", 2, 1},
	gputypes.VertexFormatSnorm8x4:     {"b", 4, 1},
	gputypes.VertexFormatUint16x2:     {"H", 2, 2},
	gputypes.VertexFormatUint16x4:     {"H", 4, 2},
	gputypes.VertexFormatSint16x2:     {"h", 2, 2},
	gputypes.VertexFormatSint16x4:     {"h", 4, 2},
	gputypes.VertexFormatUnorm16x2:    {"H", 2, 2},
	gputypes.VertexFormatUnorm16x4:    {"H", 4, 2},
	gputypes.VertexFormatSnorm16x2:    {"h", 2, 2},
	gputypes.VertexFormatSnorm16x4:    {"h", 4, 2},
	gputypes.VertexFormatFloat32:      {"f", 1, 4},
	gputypes.VertexFormatFloat32x2:    {"f", 2, 4},
	gputypes.VertexFormatFloat32x3:    {"f", 3, 4},
	gputypes.VertexFormatFloat32x4:    {"f", 4, 4},
	gputypes.VertexFormatUint32:       {"I", 1, 4},
	gputypes.VertexFormatUint32x2:     {"I", 2, 4},
	gputypes.VertexFormatUint32x3:     {"I", 3, 4},
	gputypes.VertexFormatUint32x4:     {"I", 4, 4},
	gputypes.VertexFormatSint32:       {"i", 1, 4},
	gputypes.VertexFormatSint32x2:     {"i", 2, 4},
	gputypes.VertexFormatSint32x3:     {"i", 3, 4},
	gputypes.VertexFormatSint32x4:     {"i", 4, 4},
	gputypes.VertexFormatUnorm1010102: {"I", 1, 4},
}

// FormatDescriptor returns the buffer format descriptor of one vertex in
// format f, matching containers.FormatOf of the element type that views it
// ("3f" for Float32x3, "4B" for Unorm8x4).
// Errors: ErrUnsupportedType.
func FormatDescriptor(f gputypes.VertexFormat) (string, error) {
	info, ok := vertexComponents[f]
	if !ok {
		return "", fmt.Errorf("FormatDescriptor(%v): %w", f, ErrUnsupportedType)
	}
	if info.components == 1 {
		return info.scalar, nil
	}

	return strconv.Itoa(info.components) + info.scalar, nil
}
