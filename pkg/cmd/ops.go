// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var opsCmd = &cobra.Command{
	Use:   "ops [flags]",
	Short: "list the active operator table.",
	Long: `List every operator declaration in the active table, after any operator
	 files have been loaded, in order of decreasing priority.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		table := getOperatorTable(cmd)
		//
		for _, def := range table.Definitions() {
			fmt.Println(def.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(opsCmd)
}
