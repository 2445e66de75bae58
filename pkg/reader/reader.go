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
package reader

import (
	"github.com/consensys/go-termreader/pkg/ops"
	"github.com/consensys/go-termreader/pkg/term"
	"github.com/consensys/go-termreader/pkg/token"
	"github.com/consensys/go-termreader/pkg/util/collection/stack"
	"github.com/consensys/go-termreader/pkg/util/source"
	"github.com/consensys/go-termreader/pkg/vars"
	log "github.com/sirupsen/logrus"
)

// Reader reads terms using a given operator table.  A reader owns the
// variable table, heap and trail used during a read, and these are reused
// from one read to the next.  Hence, a reader must not be used by more than
// one goroutine at a time, though any number of readers may share an
// operator table.
type Reader struct {
	config Config
	ops    *ops.Table
	vars   *vars.Table
	heap   *term.Heap
	trail  *stack.Stack[term.Term]
	// Cursor of the most recent read
	cursor *token.Cursor
}

// NewReader constructs a reader with a given configuration and operator
// table.
func NewReader(config Config, table *ops.Table) *Reader {
	return &Reader{
		config: config,
		ops:    table,
		vars:   vars.NewTable(),
		heap:   term.NewHeap(config.HeapCells, config.HeapMargin),
		trail:  stack.NewBoundedStack[term.Term](config.TrailCells),
	}
}

// Binding associates a variable name with the variable read for it.
type Binding struct {
	Name string
	Var  *term.Var
}

// Result is the outcome of a successful read.
type Result struct {
	Term term.Term
	// Number of heap cells occupied by the term
	HeapUsed uint
	// First line of the clause
	Line       uint
	names      []Binding
	singletons []string
	variables  []*term.Var
}

// VariableNames returns the named variables of the clause, excluding "_".
func (r *Result) VariableNames() []Binding {
	return r.names
}

// Singletons returns the names of variables which occur only once in the
// clause, other than those starting with an underscore.
func (r *Result) Singletons() []string {
	return r.singletons
}

// Variables returns every variable of the clause, including anonymous ones.
func (r *Result) Variables() []*term.Var {
	return r.variables
}

// Next tokenizes the next clause of a tokenizer for reading by this reader,
// which clears the variables of the previous read.
func (r *Reader) Next(tokenizer *token.Tokenizer) []token.Token {
	r.vars.Reset()
	//
	return tokenizer.Next(r.vars)
}

// ReadTerm reads a single clause from tokens produced by Next, which must end
// with an end marker.  The term returned is only valid until the next read,
// since it occupies the reader's heap; use term.Copy to retain it for longer.
func (r *Reader) ReadTerm(tokens []token.Token) (*Result, *SyntaxError) {
	r.heap.Clear()
	r.trail.Clear()
	r.cursor = token.NewCursor(tokens)
	//
	p := &parser{
		cursor:    r.cursor,
		heap:      r.heap,
		trail:     r.trail,
		ops:       r.ops,
		module:    r.config.Module,
		accessors: make(map[term.Atom]Accessor),
	}
	//
	for _, a := range r.config.Accessors {
		p.accessors[a.Open] = a
	}
	//
	t, _, err := p.parse(r.config.MaxPriority)
	//
	if err == nil {
		err = p.checkEnd()
	}
	//
	if err != nil && !err.Fatal() {
		// Report whichever error got furthest.
		err = p.best
	}
	//
	if err != nil {
		log.Debugf("read failed at line %d: %s", err.Line, err.Msg)
		return nil, err
	}
	//
	result := &Result{Term: t, HeapUsed: r.heap.Top(), Line: r.cursor.Tokens()[0].Line}
	r.collectVariables(result)
	//
	log.Debugf("read clause at line %d (%d cells, %d variables)", result.Line, result.HeapUsed,
		len(result.variables))
	//
	return result, nil
}

// Check that a complete term has been read, which must be followed by an end
// marker.
func (p *parser) checkEnd() *SyntaxError {
	tok := p.cursor.Peek()
	//
	switch {
	case tok.Kind == token.END:
		return nil
	case !p.cursor.AtLast():
		return p.fail(UnexpectedToken, tok, "operator or bracket expected")
	default:
		return p.fail(UnexpectedToken, tok, "term must end with end marker")
	}
}

func (r *Reader) collectVariables(result *Result) {
	for _, e := range r.vars.Named() {
		result.names = append(result.names, Binding{e.Name(), e.Term()})
	}
	//
	for _, e := range r.vars.Singletons() {
		result.singletons = append(result.singletons, e.Name())
	}
	//
	for _, e := range r.vars.All() {
		if v := e.Term(); v != nil {
			result.variables = append(result.variables, v)
		}
	}
}

// Furthest returns the furthest token reached by the most recent read, which
// is where a syntax error is best reported.
func (r *Reader) Furthest() *token.Token {
	if r.cursor == nil {
		return nil
	}
	//
	return r.cursor.Furthest()
}

// ReadAll reads every clause of a given source file.  Reading continues after
// a clause with a syntax error, so that all errors are reported.  The terms
// returned are copied off the heap.
func (r *Reader) ReadAll(file *source.File) ([]*Result, []*SyntaxError) {
	var (
		tokenizer = token.NewTokenizer(file)
		results   []*Result
		errors    []*SyntaxError
	)
	//
	for tokenizer.HasNext() {
		result, err := r.ReadTerm(r.Next(tokenizer))
		//
		if err != nil {
			errors = append(errors, err)
		} else {
			result.Term = term.Copy(result.Term)
			results = append(results, result)
		}
	}
	//
	return results, errors
}

// ReadString reads the first clause of a given string.
func (r *Reader) ReadString(text string) (*Result, *SyntaxError) {
	file := source.NewSourceFile("<string>", []byte(text))
	//
	return r.ReadTerm(r.Next(token.NewTokenizer(file)))
}
