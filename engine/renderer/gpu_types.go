package renderer

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/stofffe/gpu-raymarcher/common"
)

// GPUGlobals is the GPU-aligned representation of the per-frame globals
// uniform buffer. Matches the WGSL Globals struct layout exactly (112 bytes,
// WGSL uniform aligned):
//
//	struct Globals {
//	    screen_dim:   vec2<u32>,   // offset   0
//	    camera_pos:   vec3<f32>,   // offset  16
//	    camera_rot:   mat3x3<f32>, // offset  32 (3 columns, 16-byte stride)
//	    light_pos:    vec3<f32>,   // offset  80
//	    focal_length: f32,         // offset  92
//	    time:         f32,         // offset  96
//	    shape_count:  u32,         // offset 100
//	}                              // size  112 (rounded to 16)
type GPUGlobals struct {
	ScreenDim   [2]uint32  // offset   0: compute-output resolution (vec2<u32>)
	CameraPos   [3]float32 // offset  16: world-space camera position (vec3<f32>)
	CameraRot   [9]float32 // offset  32: camera rotation, column-major (mat3x3<f32>)
	LightPos    [3]float32 // offset  80: world-space light position (vec3<f32>)
	FocalLength float32    // offset  92: camera focal length (f32)
	Time        float32    // offset  96: seconds since startup (f32)
	ShapeCount  uint32     // offset 100: flattened record count this frame (u32)
}

// GPUGlobalsSize is the byte size of the globals uniform buffer.
const GPUGlobalsSize = 112

// Size returns the size of the GPUGlobals uniform in bytes. This is the
// buffer size, larger than unsafe.Sizeof due to WGSL matrix column padding.
//
// Returns:
//   - int: the uniform size in bytes (112)
func (g *GPUGlobals) Size() int {
	return GPUGlobalsSize
}

// Marshal serializes the GPUGlobals struct into a byte buffer suitable for
// GPU upload. Each mat3x3 column is written at a 16-byte stride with the
// fourth lane zeroed, per WGSL alignment rules.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUGlobals) Marshal() []byte {
	buf := make([]byte, GPUGlobalsSize)
	binary.LittleEndian.PutUint32(buf[0:], g.ScreenDim[0])
	binary.LittleEndian.PutUint32(buf[4:], g.ScreenDim[1])
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.CameraPos[i]))
	}
	for col := range 3 {
		for row := range 3 {
			binary.LittleEndian.PutUint32(buf[32+col*16+row*4:], math.Float32bits(g.CameraRot[col*3+row]))
		}
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[80+i*4:], math.Float32bits(g.LightPos[i]))
	}
	binary.LittleEndian.PutUint32(buf[92:], math.Float32bits(g.FocalLength))
	binary.LittleEndian.PutUint32(buf[96:], math.Float32bits(g.Time))
	binary.LittleEndian.PutUint32(buf[100:], g.ShapeCount)
	return buf
}

// quadVertex is one vertex of the fullscreen blit quad.
// Matches the blit shader's vertex layout: position float32x3, uv float32x2.
type quadVertex struct {
	position [3]float32
	uv       [2]float32
}

// quadVertexSize is the stride of one blit quad vertex in bytes.
const quadVertexSize = int(unsafe.Sizeof(quadVertex{}))

// quadVertices is the fullscreen quad in NDC with uv flipped vertically so
// texture row 0 lands at the top of the screen.
var quadVertices = []quadVertex{
	{position: [3]float32{-1, -1, 0}, uv: [2]float32{0, 1}}, // bottom left
	{position: [3]float32{1, -1, 0}, uv: [2]float32{1, 1}},  // bottom right
	{position: [3]float32{-1, 1, 0}, uv: [2]float32{0, 0}},  // top left
	{position: [3]float32{1, 1, 0}, uv: [2]float32{1, 0}},   // top right
}

// quadIndices is the two-triangle index list for the fullscreen quad.
var quadIndices = []uint32{0, 1, 2, 3, 2, 1}

// marshalQuadVertices serializes the quad vertex data for GPU upload.
func marshalQuadVertices() []byte {
	buf := make([]byte, len(quadVertices)*quadVertexSize)
	for i, v := range quadVertices {
		off := i * quadVertexSize
		for j := range 3 {
			binary.LittleEndian.PutUint32(buf[off+j*4:], math.Float32bits(v.position[j]))
		}
		for j := range 2 {
			binary.LittleEndian.PutUint32(buf[off+12+j*4:], math.Float32bits(v.uv[j]))
		}
	}
	return buf
}

// marshalQuadIndices serializes the quad index data for GPU upload.
func marshalQuadIndices() []byte {
	return common.SliceToBytes(quadIndices)
}
