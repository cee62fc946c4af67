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
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/structkit/heaps/internal/bench"
)

var benchConfPath string

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Run heap workloads and report their timings",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := viper.GetString("output")
			if err := validateOutput(output); err != nil {
				return err
			}

			conf := bench.NewConfig()
			if benchConfPath != "" {
				parsed, err := bench.NewConfigFromFile(benchConfPath)
				if err != nil {
					return err
				}
				conf = parsed
			}

			results, err := bench.Run(conf)
			if err != nil {
				return err
			}

			return printResults(cmd, output, results)
		},
	}
}

func printResults(cmd *cobra.Command, output string, results []*bench.Result) error {
	switch output {
	case "":
		tw := table.NewWriter()
		tw.Style().Options.DrawBorder = false
		tw.Style().Options.SeparateColumns = false
		tw.Style().Options.SeparateFooter = false
		tw.Style().Options.SeparateHeader = false
		tw.Style().Options.SeparateRows = false
		tw.AppendHeader(table.Row{
			"SCENARIO",
			"ORDER",
			"SIZE",
			"PUSH",
			"POP",
			"M-PUSH",
			"M-UPDATE",
			"M-DELETE",
			"M-POP",
			"HEAPIFY",
			"TOP-K",
			"TOTAL",
		})
		for _, result := range results {
			tw.AppendRow(table.Row{
				result.Scenario,
				result.Order,
				result.Size,
				result.HeapPush,
				result.HeapPop,
				result.MutablePush,
				result.MutableUpdate,
				result.MutableDelete,
				result.MutablePop,
				result.Heapify,
				result.TopK,
				result.Total(),
			})
		}
		cmd.Printf("%s\n", tw.Render())
	case "json":
		jsonOutput, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		cmd.Println(string(jsonOutput))
	case "yaml":
		yamlOutput, err := yaml.Marshal(results)
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
	cmd := newBenchCmd()
	cmd.Flags().StringVarP(
		&benchConfPath,
		"config",
		"c",
		"",
		"Config file path of the benchmark scenarios",
	)
	rootCmd.AddCommand(cmd)
}
