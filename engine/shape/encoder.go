package shape

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// MaxRecords is the maximum number of flattened shape records per frame.
// The GPU storage buffer backing the record stream is allocated once at
// MaxRecords * RecordSize bytes and never grown; List enforces the budget
// at submission time so the encoder never sees an over-capacity scene.
const MaxRecords = 256

// RecordSize is the byte size of one Record in the GPU storage buffer.
const RecordSize = 32

// Record is the GPU-aligned flattened form of a single shape node.
// Matches the WGSL ShapeRecord struct layout exactly (32 bytes):
//
//	struct ShapeRecord {
//	    pos: vec3<f32>, // offset  0
//	    id:  u32,       // offset 12
//	    v1:  vec3<f32>, // offset 16
//	    f1:  f32,       // offset 28
//	}
//
// Composite records carry a zeroed payload; primitives pack their payload
// opcode-dependently: Sphere radius in F1, BoxExact half extents in V1,
// Plane normal in V1. Pos is always the node position.
type Record struct {
	Pos    [3]float32 // offset  0: node position (vec3<f32>)
	Opcode uint32     // offset 12: opcode (u32), arity implied
	V1     [3]float32 // offset 16: opcode-dependent vector payload (vec3<f32>)
	F1     float32    // offset 28: opcode-dependent scalar payload (f32)
}

// Size returns the size of the Record struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (r *Record) Size() int {
	return int(unsafe.Sizeof(*r))
}

// Marshal serializes the Record into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (r *Record) Marshal() []byte {
	buf := make([]byte, RecordSize)
	r.MarshalTo(buf)
	return buf
}

// MarshalTo serializes the Record into the first RecordSize bytes of dst.
// dst must be at least RecordSize bytes long.
func (r *Record) MarshalTo(dst []byte) {
	binary.LittleEndian.PutUint32(dst[0:4], math.Float32bits(r.Pos[0]))
	binary.LittleEndian.PutUint32(dst[4:8], math.Float32bits(r.Pos[1]))
	binary.LittleEndian.PutUint32(dst[8:12], math.Float32bits(r.Pos[2]))
	binary.LittleEndian.PutUint32(dst[12:16], r.Opcode)
	binary.LittleEndian.PutUint32(dst[16:20], math.Float32bits(r.V1[0]))
	binary.LittleEndian.PutUint32(dst[20:24], math.Float32bits(r.V1[1]))
	binary.LittleEndian.PutUint32(dst[24:28], math.Float32bits(r.V1[2]))
	binary.LittleEndian.PutUint32(dst[28:32], math.Float32bits(r.F1))
}

// MarshalRecords serializes a record slice into a contiguous byte buffer of
// len(records) * RecordSize bytes, the exact payload written to the GPU
// storage buffer each frame.
func MarshalRecords(records []Record) []byte {
	buf := make([]byte, len(records)*RecordSize)
	for i := range records {
		records[i].MarshalTo(buf[i*RecordSize:])
	}
	return buf
}

// Encode flattens the given root shapes into a single GPU record stream in
// preorder: each composite emits one zero-payload record followed by the
// full encoding of its left child, then its right child; each primitive
// emits exactly one payload record. Roots are processed in submission order
// and their flattenings are concatenated with no wrapping record — the
// consumer derives subtree boundaries from opcode arity alone.
//
// Parameters:
//   - roots: independently submitted root shapes
//
// Returns:
//   - []Record: the flattened record stream; len equals the summed NodeCount
func Encode(roots []Shape) []Record {
	n := 0
	for _, root := range roots {
		n += root.NodeCount()
	}
	records := make([]Record, 0, n)
	for _, root := range roots {
		records = root.arena.encode(records, root.index)
	}
	return records
}

func (a *Arena) encode(records []Record, idx int32) []Record {
	n := &a.nodes[idx]
	records = append(records, Record{
		Pos:    [3]float32{n.pos.X, n.pos.Y, n.pos.Z},
		Opcode: uint32(n.op),
		V1:     [3]float32{n.v1.X, n.v1.Y, n.v1.Z},
		F1:     n.f1,
	})
	if n.op.IsComposite() {
		records = a.encode(records, n.left)
		records = a.encode(records, n.right)
	}
	return records
}
