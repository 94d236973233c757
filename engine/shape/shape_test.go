package shape

import (
	"encoding/binary"
	"math"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeCount(t *testing.T) {
	a := NewArena(16)
	s1 := a.Sphere(math32.Vec3(0, 0, 0), 1)
	s2 := a.Sphere(math32.Vec3(1, 0, 0), 1)
	box := a.BoxExact(math32.Vec3(0, 1, 0), math32.Vec3(1, 1, 1))

	assert.Equal(t, 1, s1.NodeCount())
	assert.Equal(t, 1, box.NodeCount())

	u := a.Union(s1, s2)
	assert.Equal(t, 3, u.NodeCount())

	sub := a.Subtraction(u, box)
	assert.Equal(t, 5, sub.NodeCount())
	assert.Equal(t, 5, a.Len())
}

func TestCompositeOpcodes(t *testing.T) {
	a := NewArena(8)
	l := a.Sphere(math32.Vec3(0, 0, 0), 1)
	r := a.Sphere(math32.Vec3(2, 0, 0), 1)

	tests := []struct {
		name string
		got  Shape
		want Op
	}{
		{"union", a.Union(l, r), OpUnion},
		{"intersection", a.Intersection(l, r), OpIntersection},
		{"subtraction", a.Subtraction(l, r), OpSubtraction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.Op())
			assert.True(t, tt.got.Op().IsComposite())
		})
	}
}

func TestCompositeCrossArenaPanics(t *testing.T) {
	a := NewArena(4)
	b := NewArena(4)
	s1 := a.Sphere(math32.Vec3(0, 0, 0), 1)
	s2 := b.Sphere(math32.Vec3(1, 0, 0), 1)

	assert.Panics(t, func() { a.Union(s1, s2) })
}

func TestEncodePreorder(t *testing.T) {
	a := NewArena(8)
	left := a.Sphere(math32.Vec3(1, 2, 3), 0.5)
	right := a.BoxExact(math32.Vec3(4, 5, 6), math32.Vec3(1, 1, 1))
	u := a.Union(left, right)

	records := Encode([]Shape{u})
	require.Len(t, records, 3)

	assert.Equal(t, uint32(OpUnion), records[0].Opcode)
	assert.Equal(t, Record{Opcode: uint32(OpUnion)}, records[0], "composite records carry a zeroed payload")
	assert.Equal(t, uint32(OpSphere), records[1].Opcode)
	assert.Equal(t, uint32(OpBoxExact), records[2].Opcode)
}

func TestEncodeNestedPreorder(t *testing.T) {
	// Subtraction(Union(s1, s2), plane) must flatten to
	// [Sub, Union, s1, s2, plane].
	a := NewArena(8)
	s1 := a.Sphere(math32.Vec3(0, 0, 0), 1)
	s2 := a.Sphere(math32.Vec3(1, 0, 0), 1)
	p := a.Plane(math32.Vec3(0, -1, 0), math32.Vec3(0, 1, 0))
	root := a.Subtraction(a.Union(s1, s2), p)

	records := Encode([]Shape{root})
	require.Len(t, records, 5)

	want := []Op{OpSubtraction, OpUnion, OpSphere, OpSphere, OpPlane}
	for i, op := range want {
		assert.Equal(t, uint32(op), records[i].Opcode, "record %d", i)
	}
}

func TestEncodeMultipleRoots(t *testing.T) {
	a := NewArena(8)
	roots := []Shape{
		a.Sphere(math32.Vec3(0, 0, 0), 1),
		a.Sphere(math32.Vec3(1, 0, 0), 1),
		a.Sphere(math32.Vec3(2, 0, 0), 1),
	}

	records := Encode(roots)
	require.Len(t, records, 3, "independent roots concatenate with no wrapping record")
	for i, r := range records {
		assert.Equal(t, uint32(OpSphere), r.Opcode)
		assert.Equal(t, float32(i), r.Pos[0])
	}
}

func TestEncodePayloadMapping(t *testing.T) {
	a := NewArena(8)
	a.Sphere(math32.Vec3(1, 2, 3), 0.75)
	a.BoxExact(math32.Vec3(-1, 0, 1), math32.Vec3(2, 3, 4))
	a.Plane(math32.Vec3(0, -2, 0), math32.Vec3(0, 1, 0))
	roots := []Shape{
		{arena: a, index: 0},
		{arena: a, index: 1},
		{arena: a, index: 2},
	}

	records := Encode(roots)
	require.Len(t, records, 3)

	assert.Equal(t, Record{
		Pos:    [3]float32{1, 2, 3},
		Opcode: uint32(OpSphere),
		F1:     0.75,
	}, records[0], "sphere radius maps to F1")

	assert.Equal(t, Record{
		Pos:    [3]float32{-1, 0, 1},
		Opcode: uint32(OpBoxExact),
		V1:     [3]float32{2, 3, 4},
	}, records[1], "box half extents map to V1")

	assert.Equal(t, Record{
		Pos:    [3]float32{0, -2, 0},
		Opcode: uint32(OpPlane),
		V1:     [3]float32{0, 1, 0},
	}, records[2], "plane normal maps to V1")
}

func TestRecordMarshalLayout(t *testing.T) {
	r := Record{
		Pos:    [3]float32{1, 2, 3},
		Opcode: uint32(OpSphere),
		V1:     [3]float32{4, 5, 6},
		F1:     7,
	}
	assert.Equal(t, RecordSize, r.Size())

	buf := r.Marshal()
	require.Len(t, buf, RecordSize)

	f32at := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	assert.Equal(t, float32(1), f32at(0))
	assert.Equal(t, float32(2), f32at(4))
	assert.Equal(t, float32(3), f32at(8))
	assert.Equal(t, uint32(OpSphere), binary.LittleEndian.Uint32(buf[12:]))
	assert.Equal(t, float32(4), f32at(16))
	assert.Equal(t, float32(5), f32at(20))
	assert.Equal(t, float32(6), f32at(24))
	assert.Equal(t, float32(7), f32at(28))
}

func TestMarshalRecords(t *testing.T) {
	records := []Record{
		{Opcode: uint32(OpUnion)},
		{Opcode: uint32(OpSphere), F1: 1},
		{Opcode: uint32(OpSphere), F1: 2},
	}
	buf := MarshalRecords(records)
	require.Len(t, buf, 3*RecordSize)

	for i, r := range records {
		assert.Equal(t, r.Marshal(), buf[i*RecordSize:(i+1)*RecordSize])
	}
}

func TestListCapacity(t *testing.T) {
	a := NewArena(16)
	l := NewList(4)

	require.NoError(t, l.Submit(a.Sphere(math32.Vec3(0, 0, 0), 1)))
	assert.Equal(t, 1, l.RecordCount())

	// Union of two spheres is 3 records: 1 + 3 == 4 hits capacity exactly.
	u := a.Union(a.Sphere(math32.Vec3(1, 0, 0), 1), a.Sphere(math32.Vec3(2, 0, 0), 1))
	require.NoError(t, l.Submit(u))
	assert.Equal(t, 4, l.RecordCount())

	// One more record would exceed capacity; the list must be unchanged.
	err := l.Submit(a.Sphere(math32.Vec3(3, 0, 0), 1))
	require.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, 4, l.RecordCount())
	assert.Len(t, l.Roots(), 2)
}

func TestListSubmitAllShortCircuits(t *testing.T) {
	a := NewArena(16)
	l := NewList(2)

	s1 := a.Sphere(math32.Vec3(0, 0, 0), 1)
	big := a.Union(a.Sphere(math32.Vec3(1, 0, 0), 1), a.Sphere(math32.Vec3(2, 0, 0), 1))
	s2 := a.Sphere(math32.Vec3(3, 0, 0), 1)

	err := l.SubmitAll(s1, big, s2)
	require.ErrorIs(t, err, ErrCapacity)
	assert.Len(t, l.Roots(), 1, "shapes accepted before the failure stay submitted")
	assert.Equal(t, 1, l.RecordCount())
}

func TestListFullToMaxRecords(t *testing.T) {
	a := NewArena(MaxRecords + 1)
	l := NewList(MaxRecords)

	for i := 0; i < MaxRecords; i++ {
		require.NoError(t, l.Submit(a.Sphere(math32.Vec3(float32(i), 0, 0), 1)))
	}
	assert.Equal(t, MaxRecords, l.RecordCount())

	err := l.Submit(a.Sphere(math32.Vec3(0, 0, 0), 1))
	require.ErrorIs(t, err, ErrCapacity)
}

func TestListClear(t *testing.T) {
	a := NewArena(8)
	l := NewList(8)
	require.NoError(t, l.Submit(a.Sphere(math32.Vec3(0, 0, 0), 1)))

	l.Clear()
	assert.Empty(t, l.Roots())
	assert.Equal(t, 0, l.RecordCount())
	require.NoError(t, l.Submit(a.Sphere(math32.Vec3(1, 0, 0), 1)))
}

func TestArenaReset(t *testing.T) {
	a := NewArena(8)
	a.Sphere(math32.Vec3(0, 0, 0), 1)
	a.Sphere(math32.Vec3(1, 0, 0), 1)
	require.Equal(t, 2, a.Len())

	a.Reset()
	assert.Equal(t, 0, a.Len())

	s := a.Sphere(math32.Vec3(2, 0, 0), 1)
	assert.True(t, s.Valid())
	assert.Equal(t, OpSphere, s.Op())
}
