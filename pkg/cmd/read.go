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
	"os"
	"strings"

	"github.com/consensys/go-termreader/pkg/reader"
	"github.com/consensys/go-termreader/pkg/term"
	"github.com/consensys/go-termreader/pkg/token"
	"github.com/consensys/go-termreader/pkg/util"
	"github.com/consensys/go-termreader/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read [flags] source_file(s)",
	Short: "read clauses and print them in canonical form.",
	Long: `Read every clause from the given source file(s), printing each in canonical
	 form (i.e. without operators).  Syntax errors are reported against the
	 enclosing line, and reading continues with the next clause.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		config := getReaderConfig(cmd)
		table := getOperatorTable(cmd)
		opts := readOptions{
			singletons: GetFlag(cmd, "singletons"),
			varnames:   GetFlag(cmd, "varnames"),
			quiet:      GetFlag(cmd, "quiet"),
		}
		// Read source files
		files, err := source.ReadFiles(args...)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		stats := util.NewPerfStats()
		rdr := reader.NewReader(config, table)
		nClauses, nErrors := uint(0), uint(0)
		//
		for i := range files {
			n, e := readFile(rdr, &files[i], opts)
			nClauses += n
			nErrors += e
		}
		//
		if GetFlag(cmd, "stats") {
			stats.Log("Reading", nClauses)
		}
		//
		if nErrors > 0 {
			os.Exit(4)
		}
	},
}

type readOptions struct {
	// Warn about singleton variables
	singletons bool
	// Print variable names alongside each clause
	varnames bool
	// Suppress printing of clauses
	quiet bool
}

// Read every clause of a source file, returning the number of clauses read and
// the number of syntax errors encountered.
func readFile(rdr *reader.Reader, file *source.File, opts readOptions) (uint, uint) {
	var (
		tokenizer = token.NewTokenizer(file)
		nClauses  uint
		nErrors   uint
	)
	//
	for tokenizer.HasNext() {
		result, err := rdr.ReadTerm(rdr.Next(tokenizer))
		nClauses++
		//
		if err != nil {
			printSyntaxError(os.Stdout, err.In(file))
			//
			nErrors++
			//
			continue
		}
		//
		if opts.singletons && len(result.Singletons()) > 0 {
			log.Warnf("%s:%d: singleton variables [%s]", file.Filename(), result.Line,
				strings.Join(result.Singletons(), ","))
		}
		//
		if !opts.quiet {
			fmt.Printf("%s.\n", term.Format(result.Term))
		}
		//
		if opts.varnames {
			printBindings(result.VariableNames())
		}
	}
	//
	return nClauses, nErrors
}

func printBindings(bindings []reader.Binding) {
	for _, b := range bindings {
		fmt.Printf("%% %s = %s\n", b.Name, term.Format(b.Var))
	}
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().Bool("singletons", false, "warn about singleton variables")
	readCmd.Flags().Bool("varnames", false, "print variable names of each clause")
	readCmd.Flags().Bool("stats", false, "report time and memory used")
	readCmd.Flags().BoolP("quiet", "q", false, "only report errors")
}
