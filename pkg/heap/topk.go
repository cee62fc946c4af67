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

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// NLargest returns the n largest elements of values in descending order.
// It keeps a bounded heap of size n, so memory stays O(n) even when values
// is much larger. When n >= len(values) it is a full descending sort.
// O(m log n) for m input elements.
func NLargest[V constraints.Ordered](n int, values []V) []V {
	return NLargestFunc(n, values, LessThan[V])
}

// NSmallest returns the n smallest elements of values in ascending order.
// The same bounded-heap strategy as NLargest, with the order reversed.
func NSmallest[V constraints.Ordered](n int, values []V) []V {
	return NSmallestFunc(n, values, LessThan[V])
}

// NLargestFunc is NLargest under a caller-supplied ordering. less must be
// a strict ordering; the result is descending under it.
func NLargestFunc[V any](n int, values []V, less Comparator[V]) []V {
	return nextreme(n, values, less)
}

// NSmallestFunc is NSmallest under a caller-supplied ordering. The result
// is ascending under less.
func NSmallestFunc[V any](n int, values []V, less Comparator[V]) []V {
	return nextreme(n, values, func(a, b V) bool { return less(b, a) })
}

// nextreme selects the n best elements under less, best first. The kept
// set lives in a heap whose root is the worst element kept so far, so each
// new candidate is answered by one comparison against the root.
func nextreme[V any](n int, values []V, less Comparator[V]) []V {
	if n <= 0 {
		return []V{}
	}
	if n >= len(values) {
		out := make([]V, len(values))
		copy(out, values)
		slices.SortFunc(out, func(a, b V) int {
			if less(a, b) {
				return -1
			}
			if less(b, a) {
				return 1
			}
			return 0
		})
		slices.Reverse(out)
		return out
	}

	kept := make([]V, n)
	copy(kept, values[:n])
	Heapify(kept, less)

	for _, v := range values[n:] {
		if less(kept[0], v) {
			kept[0] = v
			siftDown(kept, 0, n, less, nil)
		}
	}

	// Draining the heap yields worst to best; fill the result backwards.
	out := make([]V, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = kept[0]
		kept[0], kept[n-1] = kept[n-1], kept[0]
		n--
		siftDown(kept, 0, n, less, nil)
	}
	return out
}
