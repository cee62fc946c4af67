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

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/structkit/heaps/internal/bench"
	"github.com/structkit/heaps/internal/validation"
	"github.com/structkit/heaps/pkg/heap"
)

var (
	topkCount int
	topkOrder string
)

func newTopKCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topk [numbers...]",
		Short: "Select the top elements of the given integers",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := viper.GetString("output")
			if err := validateOutput(output); err != nil {
				return err
			}
			if err := validation.ValidateValue(topkOrder, "required,heap_order"); err != nil {
				return fmt.Errorf("--order: %w", err)
			}
			if len(args) == 0 {
				return errors.New("at least one number is required")
			}

			values := make([]int, 0, len(args))
			for _, arg := range args {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("parse number %q: %w", arg, err)
				}
				values = append(values, v)
			}

			var selected []int
			if topkOrder == bench.OrderLess {
				selected = heap.NSmallest(topkCount, values)
			} else {
				selected = heap.NLargest(topkCount, values)
			}

			return printSelected(cmd, output, selected)
		},
	}
}

func printSelected(cmd *cobra.Command, output string, selected []int) error {
	switch output {
	case "":
		tw := table.NewWriter()
		tw.Style().Options.DrawBorder = false
		tw.Style().Options.SeparateColumns = false
		tw.Style().Options.SeparateFooter = false
		tw.Style().Options.SeparateHeader = false
		tw.Style().Options.SeparateRows = false
		tw.AppendHeader(table.Row{"RANK", "VALUE"})
		for i, v := range selected {
			tw.AppendRow(table.Row{i + 1, v})
		}
		cmd.Printf("%s\n", tw.Render())
	case "json":
		jsonOutput, err := json.MarshalIndent(selected, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		cmd.Println(string(jsonOutput))
	case "yaml":
		yamlOutput, err := yaml.Marshal(selected)
		if err != nil {
			return fmt.Errorf("marshal YAML: %w", err)
		}
		cmd.Println(string(yamlOutput))
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}

	return nil
}

func init() {
	cmd := newTopKCmd()
	cmd.Flags().IntVarP(
		&topkCount,
		"count",
		"n",
		3,
		"Number of elements to select",
	)
	cmd.Flags().StringVar(
		&topkOrder,
		"order",
		bench.OrderGreater,
		"One of 'greater' for the largest or 'less' for the smallest",
	)
	rootCmd.AddCommand(cmd)
}
