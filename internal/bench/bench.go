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
	"time"

	"github.com/rs/xid"

	"github.com/structkit/heaps/internal/log"
	"github.com/structkit/heaps/pkg/heap"
)

// Run executes every scenario in the config and returns one result per
// scenario. Scenarios share a single random source seeded from the config,
// so a run is reproducible from its seed.
func Run(conf *Config) ([]*Result, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	runID := xid.New().String()
	r := rand.New(rand.NewSource(conf.Seed))
	log.Logger.Infof(
		"benchmark run %s: %d scenarios, seed %d",
		runID, len(conf.Scenarios), conf.Seed,
	)

	results := make([]*Result, 0, len(conf.Scenarios))
	for _, s := range conf.Scenarios {
		result, err := runScenario(runID, r, s)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}

		log.Logger.Infof("scenario %q done in %s", s.Name, result.Total())
		results = append(results, result)
	}

	return results, nil
}

func runScenario(runID string, r *rand.Rand, s *Scenario) (*Result, error) {
	values := make([]int, s.Size)
	for i := range values {
		values[i] = r.Intn(1 << 20)
	}
	less := s.Comparator()

	result := &Result{
		RunID:    runID,
		Scenario: s.Name,
		Order:    s.Order,
		Size:     s.Size,
	}

	start := time.Now()
	h := heap.New(less)
	h.Reserve(s.Size)
	for _, v := range values {
		h.Push(v)
	}
	result.HeapPush = time.Since(start)

	start = time.Now()
	for !h.IsEmpty() {
		if _, err := h.Pop(); err != nil {
			return nil, fmt.Errorf("drain heap: %w", err)
		}
	}
	result.HeapPop = time.Since(start)

	start = time.Now()
	m := heap.NewMutable(less)
	m.Reserve(s.Size)
	handles := make([]heap.Handle, 0, s.Size)
	for _, v := range values {
		handles = append(handles, m.Push(v))
	}
	result.MutablePush = time.Since(start)

	start = time.Now()
	for i := 0; i < s.Updates; i++ {
		hd := handles[r.Intn(len(handles))]
		if err := m.Update(hd, r.Intn(1<<20)); err != nil {
			return nil, fmt.Errorf("update element: %w", err)
		}
	}
	result.MutableUpdate = time.Since(start)

	start = time.Now()
	for i := 0; i < s.Deletes; i++ {
		k := r.Intn(len(handles))
		hd := handles[k]
		handles[k] = handles[len(handles)-1]
		handles = handles[:len(handles)-1]

		if _, err := m.Delete(hd); err != nil {
			return nil, fmt.Errorf("delete element: %w", err)
		}
	}
	result.MutableDelete = time.Since(start)

	start = time.Now()
	for !m.IsEmpty() {
		if _, err := m.Pop(); err != nil {
			return nil, fmt.Errorf("drain mutable heap: %w", err)
		}
	}
	result.MutablePop = time.Since(start)

	clone := make([]int, len(values))
	copy(clone, values)
	start = time.Now()
	heap.Heapify(clone, less)
	result.Heapify = time.Since(start)

	if s.TopK > 0 {
		start = time.Now()
		heap.NLargest(s.TopK, values)
		result.TopK = time.Since(start)
	}

	return result, nil
}
