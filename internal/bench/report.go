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

import "time"

// Result is the timing summary of one scenario. Durations cover the whole
// phase, not a single operation.
type Result struct {
	RunID    string `json:"runId" yaml:"runId"`
	Scenario string `json:"scenario" yaml:"scenario"`
	Order    string `json:"order" yaml:"order"`
	Size     int    `json:"size" yaml:"size"`

	HeapPush time.Duration `json:"heapPush" yaml:"heapPush"`
	HeapPop  time.Duration `json:"heapPop" yaml:"heapPop"`

	MutablePush   time.Duration `json:"mutablePush" yaml:"mutablePush"`
	MutableUpdate time.Duration `json:"mutableUpdate" yaml:"mutableUpdate"`
	MutableDelete time.Duration `json:"mutableDelete" yaml:"mutableDelete"`
	MutablePop    time.Duration `json:"mutablePop" yaml:"mutablePop"`

	Heapify time.Duration `json:"heapify" yaml:"heapify"`
	TopK    time.Duration `json:"topK" yaml:"topK"`
}

// Total returns the time spent across all phases of the scenario.
func (r *Result) Total() time.Duration {
	return r.HeapPush + r.HeapPop +
		r.MutablePush + r.MutableUpdate + r.MutableDelete + r.MutablePop +
		r.Heapify + r.TopK
}
