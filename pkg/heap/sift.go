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

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }

// siftUp moves the element at index j toward the root until its parent is
// no longer ordered after it, and returns the element's final index. Every
// operation that grows the heap or re-ranks an element funnels through
// siftUp or siftDown; nothing else touches the ordering. moved, when not
// nil, is called after each swap with the two indexes whose contents
// changed.
func siftUp[E any](items []E, j int, less func(a, b E) bool, moved func(i, j int)) int {
	for {
		i := parent(j)
		if i == j || !less(items[j], items[i]) {
			break
		}
		items[i], items[j] = items[j], items[i]
		if moved != nil {
			moved(i, j)
		}
		j = i
	}
	return j
}

// siftDown moves the element at index i0 away from the root, within the
// first n elements, until neither child is ordered before it. It reports
// whether the element moved at all.
func siftDown[E any](items []E, i0, n int, less func(a, b E) bool, moved func(i, j int)) bool {
	i := i0
	for {
		j1 := left(i)
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && less(items[j2], items[j1]) {
			j = j2 // = 2*i + 2  // right child
		}
		if !less(items[j], items[i]) {
			break
		}
		items[i], items[j] = items[j], items[i]
		if moved != nil {
			moved(i, j)
		}
		i = j
	}
	return i > i0
}
