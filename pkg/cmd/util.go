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
	"io"
	"os"
	"strings"

	"github.com/consensys/go-termreader/pkg/ops"
	"github.com/consensys/go-termreader/pkg/reader"
	"github.com/consensys/go-termreader/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected string array, or exits if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure the log level from the verbose flag.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Construct the reader configuration described by the persistent flags.
func getReaderConfig(cmd *cobra.Command) reader.Config {
	config := reader.DefaultConfig()
	config.HeapCells = GetUint(cmd, "heap")
	config.HeapMargin = GetUint(cmd, "margin")
	config.TrailCells = GetUint(cmd, "trail")
	config.MaxPriority = GetUint(cmd, "max-priority")
	config.Module = GetString(cmd, "module")
	//
	if config.MaxPriority > ops.MaxPriority {
		fmt.Printf("maximum priority %d exceeds %d\n", config.MaxPriority, ops.MaxPriority)
		os.Exit(2)
	} else if config.HeapMargin >= config.HeapCells {
		fmt.Printf("heap margin %d leaves no room in heap of %d cells\n", config.HeapMargin, config.HeapCells)
		os.Exit(2)
	}
	//
	return config
}

// Construct the operator table, including any declarations loaded from
// operator files.
func getOperatorTable(cmd *cobra.Command) *ops.Table {
	var table *ops.Table
	//
	if GetFlag(cmd, "no-default-ops") {
		table = ops.NewTable()
	} else {
		table = ops.Default()
	}
	//
	for _, filename := range GetStringArray(cmd, "ops") {
		if err := ops.LoadFile(table, filename); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
	//
	return table
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(out io.Writer, err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := max(0, span.Start()-line.Start())
	// Calculate length (ensures don't overflow line)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Fprintf(out, "%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print line
	text := line.String()
	fmt.Fprintln(out, text)
	// Print indent, keeping tabs so the highlight lines up
	fmt.Fprint(out, indent([]rune(text), lineOffset))
	// Print highlight
	fmt.Fprintln(out, strings.Repeat("^", length))
}

// Construct an indent of n characters matching the whitespace of a given line.
func indent(line []rune, n int) string {
	var builder strings.Builder
	//
	for i := 0; i < n; i++ {
		if i < len(line) && line[i] == '\t' {
			builder.WriteRune('\t')
		} else {
			builder.WriteRune(' ')
		}
	}
	//
	return builder.String()
}
