/*
 * Copyright 2025 The Heaps Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package heap

import "fmt"

// ErrInvalidHandle is returned when an operation receives a handle that is
// not live in this heap: never issued here, or already popped or deleted.
var ErrInvalidHandle = fmt.Errorf("invalid heap handle")

// Handle identifies an element inside a Mutable heap. It stays valid while
// the element moves through the array and dies when the element is popped
// or deleted. Handles are issued monotonically per heap starting at 1; the
// zero Handle is never valid.
type Handle uint64

// node pairs a value with the handle it was issued under. Nodes live only
// inside the heap's array.
type node[V any] struct {
	value  V
	handle Handle
}

// Mutable is a binary heap whose elements can be updated or deleted in
// O(log n) through stable handles. Push returns a Handle; the heap keeps a
// handle-to-index table exact across every swap, so Update and Delete find
// their element without scanning.
type Mutable[V any] struct {
	nodes      []node[V]
	positions  map[Handle]int
	less       Comparator[V]
	nextHandle Handle
}

// NewMutable creates an empty Mutable heap ordered by the given comparator.
func NewMutable[V any](less Comparator[V]) *Mutable[V] {
	return &Mutable[V]{
		nodes:     make([]node[V], 0),
		positions: make(map[Handle]int),
		less:      less,
	}
}

// Len returns the number of elements in the heap.
func (m *Mutable[V]) Len() int {
	return len(m.nodes)
}

// IsEmpty returns whether the heap has no elements.
func (m *Mutable[V]) IsEmpty() bool {
	return len(m.nodes) == 0
}

// Reserve grows the heap's capacity to hold at least the given number of
// elements. It never shrinks and has no effect on the elements.
func (m *Mutable[V]) Reserve(capacity int) {
	if capacity <= cap(m.nodes) {
		return
	}

	nodes := make([]node[V], len(m.nodes), capacity)
	copy(nodes, m.nodes)
	m.nodes = nodes
}

// Push adds the given value and returns the handle under which it can later
// be read, updated or deleted. O(log n).
func (m *Mutable[V]) Push(v V) Handle {
	m.nextHandle++
	hd := m.nextHandle

	j := len(m.nodes)
	m.nodes = append(m.nodes, node[V]{value: v, handle: hd})
	m.positions[hd] = j
	siftUp(m.nodes, j, m.nodeLess, m.moved)

	return hd
}

// Peek returns the root value without removing it. It returns ErrEmptyHeap
// when the heap is empty.
func (m *Mutable[V]) Peek() (V, error) {
	if len(m.nodes) == 0 {
		var zero V
		return zero, ErrEmptyHeap
	}

	return m.nodes[0].value, nil
}

// PeekWithHandle returns the root value together with its handle without
// removing it. It returns ErrEmptyHeap when the heap is empty.
func (m *Mutable[V]) PeekWithHandle() (V, Handle, error) {
	if len(m.nodes) == 0 {
		var zero V
		return zero, 0, ErrEmptyHeap
	}

	return m.nodes[0].value, m.nodes[0].handle, nil
}

// Pop removes and returns the root value, invalidating its handle. It
// returns ErrEmptyHeap when the heap is empty. O(log n).
func (m *Mutable[V]) Pop() (V, error) {
	if len(m.nodes) == 0 {
		var zero V
		return zero, ErrEmptyHeap
	}

	root := m.nodes[0]
	delete(m.positions, root.handle)

	n := len(m.nodes) - 1
	if n > 0 {
		m.nodes[0] = m.nodes[n]
		m.positions[m.nodes[0].handle] = 0
	}
	clear(m.nodes[n:])
	m.nodes = m.nodes[:n]
	if n > 0 {
		siftDown(m.nodes, 0, n, m.nodeLess, m.moved)
	}

	return root.value, nil
}

// Get returns the value behind the given handle. It returns
// ErrInvalidHandle when the handle is not live in this heap. O(1).
func (m *Mutable[V]) Get(hd Handle) (V, error) {
	i, ok := m.positions[hd]
	if !ok {
		var zero V
		return zero, fmt.Errorf("get handle %d: %w", hd, ErrInvalidHandle)
	}

	return m.nodes[i].value, nil
}

// Update replaces the value behind the given handle and restores the heap
// order. The handle stays valid. It returns ErrInvalidHandle when the
// handle is not live in this heap. O(log n).
func (m *Mutable[V]) Update(hd Handle, v V) error {
	i, ok := m.positions[hd]
	if !ok {
		return fmt.Errorf("update handle %d: %w", hd, ErrInvalidHandle)
	}

	m.nodes[i].value = v
	m.fix(i)

	return nil
}

// Delete removes the element behind the given handle from any position and
// returns its value, invalidating the handle. It returns ErrInvalidHandle
// when the handle is not live in this heap. O(log n).
func (m *Mutable[V]) Delete(hd Handle) (V, error) {
	i, ok := m.positions[hd]
	if !ok {
		var zero V
		return zero, fmt.Errorf("delete handle %d: %w", hd, ErrInvalidHandle)
	}

	removed := m.nodes[i]
	delete(m.positions, hd)

	n := len(m.nodes) - 1
	if i < n {
		m.nodes[i] = m.nodes[n]
		m.positions[m.nodes[i].handle] = i
	}
	clear(m.nodes[n:])
	m.nodes = m.nodes[:n]
	if i < n {
		m.fix(i)
	}

	return removed.value, nil
}

// PopAll removes and returns all values in pop order, invalidating every
// handle.
func (m *Mutable[V]) PopAll() []V {
	values := make([]V, 0, len(m.nodes))
	for len(m.nodes) > 0 {
		v, _ := m.Pop()
		values = append(values, v)
	}

	return values
}

// Values returns a copy of the values in array order, not in pop order.
func (m *Mutable[V]) Values() []V {
	values := make([]V, len(m.nodes))
	for i, nd := range m.nodes {
		values[i] = nd.value
	}

	return values
}

// Clear removes all elements, invalidating every handle. The handle
// counter is kept, so handles issued before Clear are never reissued.
func (m *Mutable[V]) Clear() {
	m.nodes = make([]node[V], 0)
	m.positions = make(map[Handle]int)
}

// CheckIntegrity returns false when the heap order is broken or the handle
// table does not match the array for debugging purpose.
func (m *Mutable[V]) CheckIntegrity() bool {
	if len(m.positions) != len(m.nodes) {
		return false
	}

	for i, nd := range m.nodes {
		if i > 0 && m.nodeLess(nd, m.nodes[parent(i)]) {
			return false
		}
		if pos, ok := m.positions[nd.handle]; !ok || pos != i {
			return false
		}
	}

	return true
}

// fix restores the heap order at index i after its value changed: sift up,
// and only when the node did not rise, sift down.
func (m *Mutable[V]) fix(i int) {
	if siftUp(m.nodes, i, m.nodeLess, m.moved) == i {
		siftDown(m.nodes, i, len(m.nodes), m.nodeLess, m.moved)
	}
}

// nodeLess orders nodes by their values under the heap's comparator.
func (m *Mutable[V]) nodeLess(a, b node[V]) bool {
	return m.less(a.value, b.value)
}

// moved records the new indexes of two nodes after a sift swapped them.
// Keeping the table exact on every swap is what makes handles survive
// other elements' movements.
func (m *Mutable[V]) moved(i, j int) {
	m.positions[m.nodes[i].handle] = i
	m.positions[m.nodes[j].handle] = j
}
