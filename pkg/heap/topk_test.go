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

package heap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/structkit/heaps/pkg/heap"
)

func TestTopK(t *testing.T) {
	t.Run("n largest in descending order", func(t *testing.T) {
		assert.Equal(t, []int{9, 7, 5}, heap.NLargest(3, []int{5, 2, 9, 1, 7, 3}))
	})

	t.Run("n smallest in ascending order", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3}, heap.NSmallest(3, []int{5, 2, 9, 1, 7, 3}))
	})

	t.Run("n covering the whole input is a full sort", func(t *testing.T) {
		assert.Equal(t, []int{2, 1}, heap.NLargest(100, []int{1, 2}))
		assert.Equal(t, []int{1, 2}, heap.NSmallest(100, []int{2, 1}))
	})

	t.Run("non-positive n", func(t *testing.T) {
		assert.Empty(t, heap.NLargest(0, []int{1, 2, 3}))
		assert.Empty(t, heap.NLargest(-3, []int{1, 2, 3}))
		assert.Empty(t, heap.NSmallest(0, []int{1, 2, 3}))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, heap.NLargest(3, []int{}))
		assert.Empty(t, heap.NSmallest(3, []int(nil)))
	})

	t.Run("duplicates are kept", func(t *testing.T) {
		assert.Equal(t, []int{5, 5, 5}, heap.NLargest(3, []int{5, 1, 5, 2, 5}))
		assert.Equal(t, []int{1, 1}, heap.NSmallest(2, []int{3, 1, 4, 1, 5}))
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		values := []int{5, 2, 9, 1, 7, 3}

		heap.NLargest(2, values)
		heap.NSmallest(2, values)
		heap.NLargest(100, values)

		assert.Equal(t, []int{5, 2, 9, 1, 7, 3}, values)
	})

	t.Run("custom orderings", func(t *testing.T) {
		type entry struct {
			name string
			hits int
		}
		byHits := func(a, b entry) bool { return a.hits < b.hits }

		entries := []entry{{"a", 10}, {"b", 50}, {"c", 30}, {"d", 20}}

		assert.Equal(t,
			[]entry{{"b", 50}, {"c", 30}},
			heap.NLargestFunc(2, entries, byHits))
		assert.Equal(t,
			[]entry{{"a", 10}, {"d", 20}},
			heap.NSmallestFunc(2, entries, byHits))
	})

	t.Run("matches the sort reference", func(t *testing.T) {
		r := rand.New(rand.NewSource(3))

		values := make([]int, 200)
		for i := range values {
			values[i] = r.Intn(1000)
		}

		desc := make([]int, len(values))
		copy(desc, values)
		sort.Sort(sort.Reverse(sort.IntSlice(desc)))

		asc := make([]int, len(values))
		copy(asc, values)
		sort.Ints(asc)

		for _, n := range []int{1, 2, 7, 50, 199, 200} {
			assert.Equal(t, desc[:n], heap.NLargest(n, values))
			assert.Equal(t, asc[:n], heap.NSmallest(n, values))
		}
	})
}
