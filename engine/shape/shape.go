// Package shape provides the CSG scene representation for the raymarcher:
// an arena of primitive and boolean-operation nodes built fresh each frame,
// flattened into a fixed-layout record stream for GPU consumption.
package shape

import (
	"cogentcore.org/core/math32"
)

// Op identifies the primitive or boolean operation a node represents.
// The values are the opcodes consumed by the raymarch compute shader; the
// node arity (0 or 2 children) is implied by the opcode alone, which is what
// lets the shader reconstruct the tree from a flat preorder stream.
type Op uint32

const (
	OpUnion        Op = 0
	OpIntersection Op = 1
	OpSubtraction  Op = 2
	OpSphere       Op = 6
	OpBoxExact     Op = 7
	OpPlane        Op = 8
)

// IsComposite reports whether the opcode is a boolean operation with exactly
// two children. Primitive opcodes have zero children.
func (op Op) IsComposite() bool {
	return op == OpUnion || op == OpIntersection || op == OpSubtraction
}

// String returns the opcode name for logging and test output.
func (op Op) String() string {
	switch op {
	case OpUnion:
		return "Union"
	case OpIntersection:
		return "Intersection"
	case OpSubtraction:
		return "Subtraction"
	case OpSphere:
		return "Sphere"
	case OpBoxExact:
		return "BoxExact"
	case OpPlane:
		return "Plane"
	}
	return "Unknown"
}

// node is a single arena slot. Composite nodes reference their children by
// arena index; primitive nodes carry the payload that ends up in the GPU
// record (v1 and f1 are opcode-dependent).
type node struct {
	op    Op
	pos   math32.Vector3
	v1    math32.Vector3
	f1    float32
	left  int32
	right int32
}

// Arena owns all shape nodes built during a frame. Children are referenced
// by index rather than pointer, so an entire frame's scene is two slice
// allocations at most and can be recycled with Reset. Shapes from one arena
// must not be combined with shapes from another.
type Arena struct {
	nodes []node
}

// NewArena creates an empty shape arena with capacity for the given number
// of nodes. The arena grows beyond the initial capacity if needed; capacity
// enforcement against the GPU record budget happens at submission time via
// List, not here.
//
// Parameters:
//   - capacity: initial node capacity hint
//
// Returns:
//   - *Arena: the empty arena
func NewArena(capacity int) *Arena {
	return &Arena{nodes: make([]node, 0, capacity)}
}

// Shape is a lightweight handle to a node in an Arena. The zero value is not
// a valid shape; obtain shapes from the arena constructors.
type Shape struct {
	arena *Arena
	index int32
}

// Valid reports whether the handle references a node.
func (s Shape) Valid() bool {
	return s.arena != nil && int(s.index) < len(s.arena.nodes)
}

// Op returns the opcode of the referenced node.
func (s Shape) Op() Op {
	return s.arena.nodes[s.index].op
}

// NodeCount returns the total number of nodes in the subtree rooted at this
// shape: 1 for a primitive, 1 + count(left) + count(right) for a composite.
// This is exactly the number of GPU records the subtree flattens into.
func (s Shape) NodeCount() int {
	return s.arena.count(s.index)
}

func (a *Arena) count(idx int32) int {
	n := &a.nodes[idx]
	if !n.op.IsComposite() {
		return 1
	}
	return 1 + a.count(n.left) + a.count(n.right)
}

// push appends a node and returns its handle.
func (a *Arena) push(n node) Shape {
	a.nodes = append(a.nodes, n)
	return Shape{arena: a, index: int32(len(a.nodes) - 1)}
}

// Sphere creates a sphere primitive.
//
// Parameters:
//   - pos: sphere center in world space
//   - radius: sphere radius
//
// Returns:
//   - Shape: handle to the new node
func (a *Arena) Sphere(pos math32.Vector3, radius float32) Shape {
	return a.push(node{op: OpSphere, pos: pos, f1: radius})
}

// BoxExact creates an exact (non-rounded) box primitive.
//
// Parameters:
//   - pos: box center in world space
//   - halfExtents: half the box dimensions along each axis
//
// Returns:
//   - Shape: handle to the new node
func (a *Arena) BoxExact(pos, halfExtents math32.Vector3) Shape {
	return a.push(node{op: OpBoxExact, pos: pos, v1: halfExtents})
}

// Plane creates an infinite plane primitive.
//
// Parameters:
//   - pos: a point on the plane
//   - normal: the plane normal (should be normalized)
//
// Returns:
//   - Shape: handle to the new node
func (a *Arena) Plane(pos, normal math32.Vector3) Shape {
	return a.push(node{op: OpPlane, pos: pos, v1: normal})
}

// Union creates a boolean union of two shapes.
func (a *Arena) Union(left, right Shape) Shape {
	return a.composite(OpUnion, left, right)
}

// Intersection creates a boolean intersection of two shapes.
func (a *Arena) Intersection(left, right Shape) Shape {
	return a.composite(OpIntersection, left, right)
}

// Subtraction creates a boolean subtraction: right is carved out of left.
func (a *Arena) Subtraction(left, right Shape) Shape {
	return a.composite(OpSubtraction, left, right)
}

func (a *Arena) composite(op Op, left, right Shape) Shape {
	if left.arena != a || right.arena != a {
		panic("shape: composite children must come from the same arena")
	}
	return a.push(node{op: op, left: left.index, right: right.index})
}

// Len returns the number of nodes currently in the arena.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Reset discards all nodes while keeping the backing storage, invalidating
// every previously returned handle. Called once per frame after the scene
// has been encoded and uploaded.
func (a *Arena) Reset() {
	a.nodes = a.nodes[:0]
}
