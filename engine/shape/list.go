package shape

import (
	"errors"
	"fmt"
)

// ErrCapacity is returned by List.Submit when accepting a shape would push
// the frame's total flattened record count past the list's capacity.
// Truncating a CSG stream mid-subtree would desynchronize the arity-driven
// reconstruction on the GPU and render garbage, so the submission is refused
// outright instead.
var ErrCapacity = errors.New("shape: record capacity exceeded")

// List is the set of root shapes submitted for the current frame, owned by
// the renderer. It tracks the running flattened record count so capacity
// violations are caught at submission time, before any encoding or upload.
// The list is cleared by the renderer immediately after upload; the scene
// never persists across frames.
type List struct {
	roots    []Shape
	records  int
	capacity int
}

// NewList creates an empty pending list with the given record capacity.
//
// Parameters:
//   - capacity: maximum total flattened record count, typically MaxRecords
//
// Returns:
//   - *List: the empty list
func NewList(capacity int) *List {
	return &List{capacity: capacity}
}

// Submit appends a root shape to the pending list. Fails with ErrCapacity
// if the shape's flattened record count added to the running total would
// exceed the list's capacity; the list is left unchanged on failure.
//
// Parameters:
//   - s: the root shape to submit
//
// Returns:
//   - error: ErrCapacity-wrapped error on capacity violation, nil otherwise
func (l *List) Submit(s Shape) error {
	n := s.NodeCount()
	if l.records+n > l.capacity {
		return fmt.Errorf("%w: %d pending + %d submitted > %d", ErrCapacity, l.records, n, l.capacity)
	}
	l.roots = append(l.roots, s)
	l.records += n
	return nil
}

// SubmitAll submits each shape in order, short-circuiting on the first
// failure. Shapes accepted before the failure remain in the list.
//
// Parameters:
//   - shapes: root shapes to submit in order
//
// Returns:
//   - error: the first Submit error, or nil if all were accepted
func (l *List) SubmitAll(shapes ...Shape) error {
	for _, s := range shapes {
		if err := l.Submit(s); err != nil {
			return err
		}
	}
	return nil
}

// Roots returns the pending root shapes in submission order.
func (l *List) Roots() []Shape {
	return l.roots
}

// RecordCount returns the total flattened record count of all pending roots.
func (l *List) RecordCount() int {
	return l.records
}

// Capacity returns the record capacity of the list.
func (l *List) Capacity() int {
	return l.capacity
}

// Clear empties the list, keeping the backing storage. Called once per frame
// after the record stream has been uploaded.
func (l *List) Clear() {
	l.roots = l.roots[:0]
	l.records = 0
}
