package renderer

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// Vertex is the interleaved layout of the cube's vertex buffer: position
// followed by color, both tightly packed.
type Vertex struct {
	Position [3]float32
	Color    [3]float32
}

// cubeVertices are the eight corners of a unit cube centered at the origin,
// each with a distinct color so the orientation is readable while orbiting.
var cubeVertices = []Vertex{
	{Position: [3]float32{-0.5, 0.5, 0.5}, Color: [3]float32{1.0, 0.0, 0.0}},
	{Position: [3]float32{-0.5, -0.5, 0.5}, Color: [3]float32{0.0, 1.0, 0.0}},
	{Position: [3]float32{0.5, -0.5, 0.5}, Color: [3]float32{0.0, 0.0, 1.0}},
	{Position: [3]float32{0.5, 0.5, 0.5}, Color: [3]float32{1.0, 1.0, 0.0}},
	{Position: [3]float32{-0.5, 0.5, -0.5}, Color: [3]float32{1.0, 0.0, 1.0}},
	{Position: [3]float32{-0.5, -0.5, -0.5}, Color: [3]float32{0.0, 1.0, 1.0}},
	{Position: [3]float32{0.5, -0.5, -0.5}, Color: [3]float32{0.5, 0.0, 0.0}},
	{Position: [3]float32{0.5, 0.5, -0.5}, Color: [3]float32{0.0, 0.5, 0.0}},
}

// cubeIndices is the triangle list covering all six faces, two triangles
// each, sharing the eight corner vertices.
var cubeIndices = []uint16{
	0, 1, 2, 0, 2, 3,
	4, 5, 6, 4, 6, 7,
	0, 1, 5, 0, 5, 4,
	3, 2, 6, 3, 6, 7,
	0, 4, 7, 0, 7, 3,
	1, 5, 6, 1, 6, 2,
}

// vertexBufferLayout describes the Vertex struct to the pipeline: two
// float32x3 attributes at shader locations 0 (position) and 1 (color).
func vertexBufferLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(Vertex{})),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         0,
				ShaderLocation: 0,
			},
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         uint64(unsafe.Offsetof(Vertex{}.Color)),
				ShaderLocation: 1,
			},
		},
	}
}
