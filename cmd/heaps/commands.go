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

// Package main is the entry point of the heaps CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/structkit/heaps/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "heaps",
	Short: "Priority queues with handle-based random access",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.SetLevel(viper.GetString("log-level"))
	},
}

// Run executes CLI.
func Run() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}

	return 0
}

// validateOutput validates the provided output format.
func validateOutput(output string) error {
	if output != "" && output != "yaml" && output != "json" {
		return errors.New(`--output must be 'yaml' or 'json'`)
	}

	return nil
}

func init() {
	rootCmd.PersistentFlags().String(
		"log-level",
		"info",
		"Log level: debug, info, warn, error",
	)
	rootCmd.PersistentFlags().StringP(
		"output",
		"o",
		"",
		"One of 'yaml' or 'json'.",
	)

	if err := viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintln(os.Stderr, "bind log-level flag:", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")); err != nil {
		fmt.Fprintln(os.Stderr, "bind output flag:", err)
		os.Exit(1)
	}
}
