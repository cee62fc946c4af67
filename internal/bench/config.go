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

// Package bench runs configurable heap workloads and reports their timings.
package bench

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/structkit/heaps/internal/validation"
	"github.com/structkit/heaps/pkg/heap"
)

// Below are the default values of the benchmark config.
const (
	DefaultSeed = 1
	DefaultSize = 100000
	DefaultTopK = 10

	// OrderLess pops the smallest element first, OrderGreater the largest.
	OrderLess    = "less"
	OrderGreater = "greater"
)

var (
	// ErrNoScenarios occurs when a config has no scenarios to run.
	ErrNoScenarios = errors.New("benchmark config has no scenarios")

	// ErrTooManyDeletes occurs when a scenario deletes more elements than
	// it pushes.
	ErrTooManyDeletes = errors.New("deletes exceed scenario size")
)

// Scenario describes one workload: a heap of Size random integers under the
// given order, with a number of random updates and deletes against it, and
// an optional top-K selection over the same input.
type Scenario struct {
	Name    string `yaml:"Name" validate:"required"`
	Order   string `yaml:"Order" validate:"required,heap_order"`
	Size    int    `yaml:"Size" validate:"gt=0"`
	Updates int    `yaml:"Updates" validate:"gte=0"`
	Deletes int    `yaml:"Deletes" validate:"gte=0"`
	TopK    int    `yaml:"TopK" validate:"gte=0"`
}

// Validate returns an error if the provided Scenario is invalidated.
func (s *Scenario) Validate() error {
	if err := validation.ValidateStruct(s); err != nil {
		return fmt.Errorf("validate scenario: %w", err)
	}

	if s.Deletes > s.Size {
		return fmt.Errorf("%d deletes for %d elements: %w", s.Deletes, s.Size, ErrTooManyDeletes)
	}

	return nil
}

// Comparator returns the integer comparator for the scenario's order.
func (s *Scenario) Comparator() heap.Comparator[int] {
	if s.Order == OrderGreater {
		return heap.GreaterThan[int]
	}
	return heap.LessThan[int]
}

// Config is the configuration for a benchmark run.
type Config struct {
	Seed      int64       `yaml:"Seed"`
	Scenarios []*Scenario `yaml:"Scenarios"`
}

// NewConfig returns a Config struct that contains a reasonable default
// workload.
func NewConfig() *Config {
	return &Config{
		Seed: DefaultSeed,
		Scenarios: []*Scenario{
			{
				Name:    "ascending-drain",
				Order:   OrderLess,
				Size:    DefaultSize,
				Updates: DefaultSize / 10,
				Deletes: DefaultSize / 10,
				TopK:    DefaultTopK,
			},
			{
				Name:    "descending-drain",
				Order:   OrderGreater,
				Size:    DefaultSize,
				Updates: DefaultSize / 10,
				Deletes: DefaultSize / 10,
				TopK:    DefaultTopK,
			},
		},
	}
}

// NewConfigFromFile returns a Config struct for the given conf file.
func NewConfigFromFile(path string) (*Config, error) {
	conf := &Config{}
	bytes, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err = yaml.Unmarshal(bytes, conf); err != nil {
		return nil, fmt.Errorf("unmarshal config file: %w", err)
	}

	conf.ensureDefaultValue()
	return conf, nil
}

// Validate returns an error if the provided Config is invalidated.
func (c *Config) Validate() error {
	if len(c.Scenarios) == 0 {
		return ErrNoScenarios
	}

	for _, s := range c.Scenarios {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}

	return nil
}

// ensureDefaultValue sets the value of the option to which the default value
// should be applied when the user does not input it.
func (c *Config) ensureDefaultValue() {
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}

	for _, s := range c.Scenarios {
		if s.Order == "" {
			s.Order = OrderLess
		}
		if s.Size == 0 {
			s.Size = DefaultSize
		}
	}
}
