// SPDX-License-Identifier: MIT

package vertex

// Test bridge: exposes unexported helpers to vertex_test only.
var VertexFormatOf = vertexFormatOf
