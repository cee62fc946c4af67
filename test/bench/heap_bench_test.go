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

package bench

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/structkit/heaps/pkg/heap"
)

func randomValues(r *rand.Rand, cnt int) []int {
	values := make([]int, cnt)
	for i := range values {
		values[i] = r.Intn(1 << 20)
	}
	return values
}

func BenchmarkHeap(b *testing.B) {
	for _, cnt := range []int{100000, 200000, 300000} {
		b.Run(fmt.Sprintf("push pop %d", cnt), func(b *testing.B) {
			b.StopTimer()
			values := randomValues(rand.New(rand.NewSource(int64(cnt))), cnt)
			b.StartTimer()

			h := heap.New(heap.LessThan[int])
			h.Reserve(cnt)
			for _, v := range values {
				h.Push(v)
			}
			for !h.IsEmpty() {
				if _, err := h.Pop(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}

	for _, cnt := range []int{100000, 200000, 300000} {
		b.Run(fmt.Sprintf("heapify %d", cnt), func(b *testing.B) {
			b.StopTimer()
			values := randomValues(rand.New(rand.NewSource(int64(cnt))), cnt)
			b.StartTimer()

			heap.Heapify(values, heap.LessThan[int])
		})
	}
}

func BenchmarkMutable(b *testing.B) {
	for _, cnt := range []int{100000, 200000, 300000} {
		b.Run(fmt.Sprintf("stress test %d", cnt), func(b *testing.B) {
			// push, update, delete
			r := rand.New(rand.NewSource(int64(cnt)))
			m := heap.NewMutable(heap.LessThan[int])
			var handles []heap.Handle

			for i := 0; i < cnt; i++ {
				switch op := r.Intn(4); {
				case op <= 1 || len(handles) == 0:
					handles = append(handles, m.Push(r.Intn(1<<20)))
				case op == 2:
					if err := m.Update(handles[r.Intn(len(handles))], r.Intn(1<<20)); err != nil {
						b.Fatal(err)
					}
				default:
					k := r.Intn(len(handles))
					hd := handles[k]
					handles[k] = handles[len(handles)-1]
					handles = handles[:len(handles)-1]
					if _, err := m.Delete(hd); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}

	for _, cnt := range []int{100000, 200000, 300000} {
		b.Run(fmt.Sprintf("random updates %d", cnt), func(_ *testing.B) {
			b.StopTimer()
			r := rand.New(rand.NewSource(int64(cnt)))
			m := heap.NewMutable(heap.LessThan[int])
			handles := make([]heap.Handle, 0, cnt)
			for i := 0; i < cnt; i++ {
				handles = append(handles, m.Push(r.Intn(1<<20)))
			}
			b.StartTimer()

			// 1000 times random update
			for i := 0; i < 1000; i++ {
				if err := m.Update(handles[r.Intn(len(handles))], r.Intn(1<<20)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}

	for _, cnt := range []int{100000, 200000, 300000} {
		b.Run(fmt.Sprintf("drain %d", cnt), func(b *testing.B) {
			b.StopTimer()
			r := rand.New(rand.NewSource(int64(cnt)))
			m := heap.NewMutable(heap.LessThan[int])
			m.Reserve(cnt)
			for i := 0; i < cnt; i++ {
				m.Push(r.Intn(1 << 20))
			}
			b.StartTimer()

			for !m.IsEmpty() {
				if _, err := m.Pop(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkTopK(b *testing.B) {
	for _, cnt := range []int{100000, 200000, 300000} {
		b.Run(fmt.Sprintf("n largest 100 of %d", cnt), func(b *testing.B) {
			b.StopTimer()
			values := randomValues(rand.New(rand.NewSource(int64(cnt))), cnt)
			b.StartTimer()

			heap.NLargest(100, values)
		})
	}
}
