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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-termreader/pkg/reader"
	"github.com/consensys/go-termreader/pkg/term"
	"github.com/consensys/go-termreader/pkg/token"
	"github.com/consensys/go-termreader/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	xterm "golang.org/x/term"
)

const (
	prompt             = "| ?- "
	continuationPrompt = "|    "
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "read clauses interactively.",
	Long: `Read clauses typed at the terminal, printing each one in canonical form along
	 with its variable bindings.  A clause may span several lines, and is read
	 once its end marker has been entered.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		rdr := reader.NewReader(getReaderConfig(cmd), getOperatorTable(cmd))
		//
		var err error
		//
		if fd := int(os.Stdin.Fd()); xterm.IsTerminal(fd) {
			err = runTerminal(fd, rdr)
		} else {
			err = runLines(os.Stdin, os.Stdout, rdr)
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// Run an interactive session on a terminal, with line editing and history.
func runTerminal(fd int, rdr *reader.Reader) error {
	state, err := xterm.MakeRaw(fd)
	if err != nil {
		return err
	}
	//
	defer func() {
		if err := xterm.Restore(fd, state); err != nil {
			log.Error(err)
		}
	}()
	// Construct "screen"
	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	//
	terminal := xterm.NewTerminal(screen, prompt)
	session := newSession(rdr, terminal)
	//
	for {
		line, err := terminal.ReadLine()
		if errors.Is(err, io.EOF) {
			session.Flush()
			return nil
		} else if err != nil {
			return err
		}
		//
		if session.Feed(line) {
			terminal.SetPrompt(continuationPrompt)
		} else {
			terminal.SetPrompt(prompt)
		}
	}
}

// Run a session over plain lines of input, such as from a pipe.
func runLines(in io.Reader, out io.Writer, rdr *reader.Reader) error {
	session := newSession(rdr, out)
	scanner := bufio.NewScanner(in)
	//
	for scanner.Scan() {
		session.Feed(scanner.Text())
	}
	//
	session.Flush()
	//
	return scanner.Err()
}

// session accumulates input lines and reads each clause once it has been
// completed by an end marker.
type session struct {
	rdr *reader.Reader
	out io.Writer
	// Input received but not yet read
	pending strings.Builder
	// Number of clauses entered
	count uint
}

func newSession(rdr *reader.Reader, out io.Writer) *session {
	return &session{rdr: rdr, out: out}
}

// Feed adds a line of input, reading any clauses it completes.  This returns
// true when part of a clause is still pending.
func (s *session) Feed(line string) bool {
	s.pending.WriteString(line)
	s.pending.WriteString("\n")
	//
	file := source.NewSourceFile(s.name(), []byte(s.pending.String()))
	tokenizer := token.NewTokenizer(file)
	consumed := 0
	//
	for {
		if !tokenizer.HasNext() {
			// Only layout remains
			consumed = len(file.Contents())
			break
		}
		//
		tokens := s.rdr.Next(tokenizer)
		last := tokens[len(tokens)-1]
		// Wait for the end marker
		if last.Kind != token.END {
			break
		}
		//
		s.evaluate(file, tokens)
		consumed = last.Span.End()
	}
	//
	rest := strings.TrimSpace(string(file.Contents()[consumed:]))
	s.pending.Reset()
	//
	if rest != "" {
		s.pending.WriteString(rest)
		s.pending.WriteString("\n")
	}
	//
	return rest != ""
}

// Flush reads whatever input remains, which reports an error for a clause
// missing its end marker.
func (s *session) Flush() {
	if s.pending.Len() == 0 {
		return
	}
	//
	file := source.NewSourceFile(s.name(), []byte(s.pending.String()))
	tokenizer := token.NewTokenizer(file)
	s.pending.Reset()
	//
	for tokenizer.HasNext() {
		s.evaluate(file, s.rdr.Next(tokenizer))
	}
}

func (s *session) evaluate(file *source.File, tokens []token.Token) {
	s.count++
	//
	result, err := s.rdr.ReadTerm(tokens)
	if err != nil {
		printSyntaxError(s.out, err.In(file))
		return
	}
	//
	fmt.Fprintf(s.out, "%s.\n", term.Format(result.Term))
	//
	for _, b := range result.VariableNames() {
		fmt.Fprintf(s.out, "%s = %s\n", b.Name, term.Format(b.Var))
	}
	//
	if singletons := result.Singletons(); len(singletons) > 0 {
		fmt.Fprintf(s.out, "%% singleton variables [%s]\n", strings.Join(singletons, ","))
	}
}

func (s *session) name() string {
	return fmt.Sprintf("<input %d>", s.count+1)
}

func init() {
	rootCmd.AddCommand(replCmd)
}
