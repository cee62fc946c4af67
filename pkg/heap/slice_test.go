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

func TestSlice(t *testing.T) {
	t.Run("heapify establishes the heap order in place", func(t *testing.T) {
		items := []int{5, 2, 9, 1, 7, 3}

		heap.Heapify(items, heap.LessThan[int])

		assert.True(t, heap.IsHeap(items, heap.LessThan[int]))
		assert.Equal(t, 1, items[0])
	})

	t.Run("heapify on empty and single-element slices", func(t *testing.T) {
		var empty []int
		heap.Heapify(empty, heap.LessThan[int])
		assert.True(t, heap.IsHeap(empty, heap.LessThan[int]))

		one := []int{42}
		heap.Heapify(one, heap.LessThan[int])
		assert.True(t, heap.IsHeap(one, heap.LessThan[int]))
		assert.Equal(t, []int{42}, one)
	})

	t.Run("is heap depends on the comparator", func(t *testing.T) {
		ascending := []int{1, 2, 3, 4, 5}

		assert.True(t, heap.IsHeap(ascending, heap.LessThan[int]))
		assert.False(t, heap.IsHeap(ascending, heap.GreaterThan[int]))

		assert.False(t, heap.IsHeap([]int{5, 2, 9, 1, 7}, heap.LessThan[int]))
	})

	t.Run("push grows a heap from nothing", func(t *testing.T) {
		var items []int
		for _, v := range []int{5, 2, 9, 1, 7} {
			items = heap.Push(items, v, heap.LessThan[int])
			assert.True(t, heap.IsHeap(items, heap.LessThan[int]))
		}

		assert.Equal(t, 5, len(items))
		assert.Equal(t, 1, items[0])
	})

	t.Run("pop drains in comparator order", func(t *testing.T) {
		items := []int{3, 1, 4, 1, 5, 9, 2, 6}
		heap.Heapify(items, heap.GreaterThan[int])

		var got []int
		for len(items) > 0 {
			var v int
			var err error
			v, items, err = heap.Pop(items, heap.GreaterThan[int])
			assert.NoError(t, err)
			assert.True(t, heap.IsHeap(items, heap.GreaterThan[int]))
			got = append(got, v)
		}

		assert.Equal(t, []int{9, 6, 5, 4, 3, 2, 1, 1}, got)
	})

	t.Run("pop on an empty slice", func(t *testing.T) {
		_, rest, err := heap.Pop([]int{}, heap.LessThan[int])

		assert.ErrorIs(t, err, heap.ErrEmptyHeap)
		assert.Equal(t, 0, len(rest))
	})

	t.Run("heapify then pop equals full sort", func(t *testing.T) {
		r := rand.New(rand.NewSource(99))

		for _, size := range []int{2, 3, 10, 100, 1000} {
			items := make([]int, size)
			for i := range items {
				items[i] = r.Intn(500)
			}

			expected := make([]int, size)
			copy(expected, items)
			sort.Ints(expected)

			heap.Heapify(items, heap.LessThan[int])
			assert.True(t, heap.IsHeap(items, heap.LessThan[int]))

			got := make([]int, 0, size)
			for len(items) > 0 {
				var v int
				var err error
				v, items, err = heap.Pop(items, heap.LessThan[int])
				assert.NoError(t, err)
				got = append(got, v)
			}

			assert.Equal(t, expected, got)
		}
	})
}
