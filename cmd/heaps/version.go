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
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/structkit/heaps/internal/version"
)

type versionInfo struct {
	Version   string `json:"version" yaml:"version"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	GitCommit string `json:"gitCommit,omitempty" yaml:"gitCommit,omitempty"`
	BuildDate string `json:"buildDate,omitempty" yaml:"buildDate,omitempty"`
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of heaps",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := viper.GetString("output")
			if err := validateOutput(output); err != nil {
				return err
			}

			info := versionInfo{
				Version:   version.Version,
				GoVersion: runtime.Version(),
				GitCommit: version.GitCommit,
				BuildDate: version.BuildDate,
			}

			switch output {
			case "":
				cmd.Printf("heaps: %s\n", info.Version)
				cmd.Printf("Go: %s\n", info.GoVersion)
				if info.GitCommit != "" {
					cmd.Printf("Commit: %s\n", info.GitCommit)
				}
				if info.BuildDate != "" {
					cmd.Printf("Build Date: %s\n", info.BuildDate)
				}
			case "yaml":
				marshalled, err := yaml.Marshal(&info)
				if err != nil {
					return errors.New("failed to marshal YAML")
				}
				cmd.Println(string(marshalled))
			case "json":
				marshalled, err := json.MarshalIndent(&info, "", "  ")
				if err != nil {
					return errors.New("failed to marshal JSON")
				}
				cmd.Println(string(marshalled))
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
