package camera

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// CameraUniformWGSL is the canonical WGSL definition of the camera uniform
// block. CameraUniform matches this layout exactly (80 bytes, std140/WGSL
// aligned); keep the two in sync.
const CameraUniformWGSL = `struct CameraUniform {
    view_position: vec4<f32>,
    view_proj: mat4x4<f32>,
};`

// CameraUniform is the GPU-facing snapshot of the camera, laid out for direct
// upload as a uniform block. The eye position is stored in homogeneous
// coordinates (w = 1) to satisfy the 16-byte alignment requirement.
// Size: 80 bytes.
type CameraUniform struct {
	ViewPosition [4]float32  // offset  0: world-space eye position (vec4<f32>, w = 1)
	ViewProj     [16]float32 // offset 16: combined view-projection matrix (mat4x4<f32>, column-major)
}

// defaultCameraUniform returns the snapshot a camera carries before the first
// UpdateViewProjection call: zero eye position and an identity matrix.
func defaultCameraUniform() CameraUniform {
	return CameraUniform{
		ViewProj: [16]float32{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1,
		},
	}
}

// Size returns the size of the CameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (u *CameraUniform) Size() int {
	return int(unsafe.Sizeof(*u))
}

// Marshal serializes the CameraUniform into a byte buffer suitable for GPU
// upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (u *CameraUniform) Marshal() []byte {
	buf := make([]byte, u.Size())
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(u.ViewPosition[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(u.ViewProj[i]))
	}
	return buf
}
