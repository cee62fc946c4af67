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

// The functions below operate on caller-owned slices, for callers that
// want heap behavior without handing their memory to a Heap object. They
// share the sift primitives with the heap types.

// Heapify rearranges items into heap order in place, bottom up. O(n).
func Heapify[V any](items []V, less Comparator[V]) {
	n := len(items)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(items, i, n, less, nil)
	}
}

// IsHeap reports whether items is in heap order under less: no element is
// ordered before its parent. It never mutates items. O(n).
func IsHeap[V any](items []V, less Comparator[V]) bool {
	for i := 1; i < len(items); i++ {
		if less(items[i], items[parent(i)]) {
			return false
		}
	}
	return true
}

// Push appends v to the heap-ordered slice and restores the invariant,
// returning the extended slice. items must already be in heap order.
// O(log n).
func Push[V any](items []V, v V, less Comparator[V]) []V {
	items = append(items, v)
	siftUp(items, len(items)-1, less, nil)
	return items
}

// Pop removes the root of the heap-ordered slice and returns it together
// with the shrunk slice. It returns ErrEmptyHeap when items is empty.
// O(log n).
func Pop[V any](items []V, less Comparator[V]) (V, []V, error) {
	if len(items) == 0 {
		var zero V
		return zero, items, ErrEmptyHeap
	}

	root := items[0]
	n := len(items) - 1
	if n > 0 {
		items[0], items[n] = items[n], items[0]
		siftDown(items, 0, n, less, nil)
	}
	clear(items[n:])

	return root, items[:n], nil
}
