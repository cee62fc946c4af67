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

// Package heap provides generic binary heap implementations: a plain
// priority queue, a mutable variant whose elements stay addressable
// through stable handles, slice-level helpers for working on caller-owned
// memory, and bounded top-K selection. Ordering is configured with a
// comparator function, so the same code serves both min heaps and
// max heaps.
//
// Heaps are not safe for concurrent mutation. Callers must serialize
// mutating calls on an instance; concurrent reads of an unmutated heap
// are fine.
package heap

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrEmptyHeap is returned when the root of a heap with no elements is
// requested.
var ErrEmptyHeap = fmt.Errorf("heap is empty")

// Comparator reports whether a must surface before b in pop order. The
// element the comparator favors over every other sits at the root.
type Comparator[V any] func(a, b V) bool

// LessThan orders elements ascending: a heap built on it pops the minimum
// first. It is the comparator behind min heaps and NLargest.
func LessThan[V constraints.Ordered](a, b V) bool { return a < b }

// GreaterThan orders elements descending: a heap built on it pops the
// maximum first. It is the comparator behind max heaps and NSmallest.
func GreaterThan[V constraints.Ordered](a, b V) bool { return a > b }

// Interface is the contract shared by Heap and Mutable. Push is not part
// of it: the two variants return different results from Push, since only
// Mutable issues handles.
type Interface[V any] interface {
	Len() int
	IsEmpty() bool
	Peek() (V, error)
	Pop() (V, error)
	Reserve(n int)
	Clear()
}

var (
	_ Interface[int] = (*Heap[int])(nil)
	_ Interface[int] = (*Mutable[int])(nil)
)

// Heap is an array-backed priority queue. It supports push, pop and peek
// but no random access; use Mutable when elements must be re-ranked or
// removed after insertion.
type Heap[V any] struct {
	items []V
	less  Comparator[V]
}

// New creates an empty Heap ordered by less.
func New[V any](less Comparator[V]) *Heap[V] {
	return &Heap[V]{
		items: make([]V, 0),
		less:  less,
	}
}

// From builds a Heap over the given slice in O(n). The heap takes
// ownership of the slice; the caller must not use it afterwards.
func From[V any](items []V, less Comparator[V]) *Heap[V] {
	Heapify(items, less)
	return &Heap[V]{
		items: items,
		less:  less,
	}
}

// Len returns the number of elements in the heap.
func (h *Heap[V]) Len() int {
	return len(h.items)
}

// IsEmpty returns true if the heap has no elements.
func (h *Heap[V]) IsEmpty() bool {
	return len(h.items) == 0
}

// Reserve grows the underlying array so that at least n elements fit
// without reallocation. It never shrinks the array and has no effect on
// the contents.
func (h *Heap[V]) Reserve(n int) {
	if cap(h.items) < n {
		items := make([]V, len(h.items), n)
		copy(items, h.items)
		h.items = items
	}
}

// Push adds v to the heap. O(log n).
func (h *Heap[V]) Push(v V) {
	h.items = append(h.items, v)
	siftUp(h.items, len(h.items)-1, h.less, nil)
}

// Peek returns the root element without removing it. It returns
// ErrEmptyHeap when the heap has no elements.
func (h *Heap[V]) Peek() (V, error) {
	if len(h.items) == 0 {
		var zero V
		return zero, ErrEmptyHeap
	}
	return h.items[0], nil
}

// Pop removes and returns the root element: the minimum under LessThan,
// the maximum under GreaterThan. It returns ErrEmptyHeap when the heap
// has no elements. O(log n).
func (h *Heap[V]) Pop() (V, error) {
	if len(h.items) == 0 {
		var zero V
		return zero, ErrEmptyHeap
	}

	root := h.items[0]
	n := len(h.items) - 1
	if n > 0 {
		h.items[0], h.items[n] = h.items[n], h.items[0]
		siftDown(h.items, 0, n, h.less, nil)
	}
	clear(h.items[n:]) // release the vacated slot
	h.items = h.items[:n]

	return root, nil
}

// PopAll drains the heap and returns every element in pop order.
func (h *Heap[V]) PopAll() []V {
	out := make([]V, 0, len(h.items))
	for len(h.items) > 0 {
		v, _ := h.Pop()
		out = append(out, v)
	}
	return out
}

// Items returns a copy of the elements in internal array order. The order
// is a valid heap layout, not a sorted sequence.
func (h *Heap[V]) Items() []V {
	out := make([]V, len(h.items))
	copy(out, h.items)
	return out
}

// Clear removes all elements from the heap.
func (h *Heap[V]) Clear() {
	h.items = make([]V, 0)
}
