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
	"fmt"
	"math"

	"github.com/consensys/go-termreader/pkg/ops"
	"github.com/consensys/go-termreader/pkg/term"
	"github.com/consensys/go-termreader/pkg/token"
	"github.com/consensys/go-termreader/pkg/util/collection/stack"
	log "github.com/sirupsen/logrus"
)

// Priority of arguments, list elements, and the operands of ','.
const argPriority = 999

// Priority of the built-in ',' operator.
const commaPriority = 1000

// parser holds the state of a single read.  Parsing functions return either a
// term together with its priority, or an error.  Speculative attempts are
// undone by restoring a snapshot of the cursor, heap and trail; the variable
// table is never rolled back.
type parser struct {
	cursor *token.Cursor
	heap   *term.Heap
	trail  *stack.Stack[term.Term]
	ops    *ops.Table
	module string
	// Accessors keyed by their opening bracket
	accessors map[term.Atom]Accessor
	// Error which got furthest through the input so far
	best *SyntaxError
}

// snapshot records what must be restored to undo a speculative attempt.
type snapshot struct {
	pos   uint
	top   uint
	trail uint
}

func (p *parser) mark() snapshot {
	return snapshot{p.cursor.Pos(), p.heap.Top(), p.trail.Len()}
}

func (p *parser) rollback(s snapshot, op term.Atom, err *SyntaxError) {
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("rolled back %s at token %d (%s)", term.QuoteAtom(op), s.pos, err.Msg)
	}
	//
	p.cursor.Reset(s.pos)
	p.heap.Reset(s.top)
	p.trail.Truncate(s.trail)
}

// Construct an error for a given token, and record it if it got further than
// any error seen so far.
func (p *parser) fail(kind ErrorKind, tok *token.Token, msg string) *SyntaxError {
	err := newSyntaxError(kind, tok, msg)
	//
	if p.best == nil || err.Pos > p.best.Pos {
		p.best = err
	}
	//
	return err
}

// Parse a term whose priority is at most ceiling, returning its actual
// priority.
func (p *parser) parse(ceiling uint) (term.Term, uint, *SyntaxError) {
	t, priority, err := p.parsePrimary(ceiling)
	//
	if err != nil {
		return nil, 0, err
	}
	//
	return p.parseOperators(t, priority, ceiling)
}

// Parse the leftmost component of a term, which is a name (possibly a
// prefix operator applied to its operand), a literal, a variable, or a
// bracketed term.
func (p *parser) parsePrimary(ceiling uint) (term.Term, uint, *SyntaxError) {
	var (
		tok = p.cursor.Peek()
		t   term.Term
		err *SyntaxError
	)
	//
	switch tok.Kind {
	case token.NAME:
		return p.parseName(ceiling)
	case token.NUMBER, token.STRING:
		p.cursor.Advance()
		return tok.Value, 0, nil
	case token.VAR:
		p.cursor.Advance()
		t, err = p.makeVar(tok)
	case token.PUNCT:
		t, err = p.parseBracketed(tok)
	case token.ERROR:
		err = p.fail(LexicalPassthrough, tok, fmt.Sprintf("found ill-formed \"%s\": %s", tok.Text, tok.Msg))
	case token.QQ:
		err = p.fail(UnexpectedToken, tok, "quasi-quotations are not supported")
	default:
		err = p.fail(UnexpectedToken, tok, fmt.Sprintf("unexpected %s", tok.String()))
	}
	//
	return t, 0, err
}

func (p *parser) parseName(ceiling uint) (term.Term, uint, *SyntaxError) {
	var (
		tok  = p.cursor.Peek()
		name = tok.Atom()
	)
	//
	p.cursor.Advance()
	//
	next := p.cursor.Peek()
	// Negative numeric literals
	if name == "-" && next.Kind == token.NUMBER {
		p.cursor.Advance()
		return negate(next.Value), 0, nil
	}
	//
	if prefix := p.ops.LookupPrefix(string(name), p.module); prefix.HasValue() && !tok.Functional {
		op := prefix.Unwrap()
		//
		if f, ok := specialFloat(name, next); ok {
			p.cursor.Advance()
			return f, 0, nil
		} else if op.Priority <= ceiling {
			snap := p.mark()
			arg, _, err := p.parse(op.Arg)
			//
			if err == nil {
				var t term.Term
				//
				if t, err = p.makeCompound(tok, name, arg); err == nil {
					return t, op.Priority, nil
				}
			}
			//
			if err.Fatal() {
				return nil, 0, err
			}
			// Fall back to reading the operator as an atom.
			p.rollback(snap, name, err)
		}
	}
	//
	if tok.Functional {
		t, err := p.parseArgs(tok, name, nil, ")")
		return t, 0, err
	}
	//
	return name, 0, nil
}

// Parse a term starting with an opening bracket.
func (p *parser) parseBracketed(tok *token.Token) (term.Term, *SyntaxError) {
	var (
		t   term.Term
		err *SyntaxError
	)
	//
	switch tok.Atom() {
	case "(":
		p.cursor.Advance()
		//
		if t, _, err = p.parse(ops.MaxPriority); err == nil {
			err = p.expect(")", UnclosedBracket)
		}
	case "[":
		p.cursor.Advance()
		//
		if p.match("]") {
			return term.Nil, nil
		}
		//
		t, err = p.parseList(tok)
	case "{":
		p.cursor.Advance()
		//
		if p.match("}") {
			return term.Curly, nil
		} else if t, _, err = p.parse(ops.MaxPriority); err == nil {
			if t, err = p.makeCurly(tok, t); err == nil {
				err = p.expect("}", UnclosedBracket)
			}
		}
	default:
		err = p.fail(UnexpectedToken, tok, fmt.Sprintf("unexpected punctuation %s", tok.Text))
	}
	//
	return t, err
}

// Parse the elements of a list, having consumed the opening bracket.  Each
// element is parsed before its cell is allocated, and cells are linked as
// they are allocated.
func (p *parser) parseList(open *token.Token) (term.Term, *SyntaxError) {
	var head, last *term.List
	//
	for {
		elem, _, err := p.parse(argPriority)
		if err != nil {
			return nil, err
		}
		//
		cell, err := p.makeList(open, elem, nil)
		if err != nil {
			return nil, err
		} else if head == nil {
			head = cell
		} else {
			last.SetTail(cell)
		}
		//
		last = cell
		//
		switch tok := p.cursor.Peek(); {
		case tok.IsPunct(","):
			p.cursor.Advance()
		case tok.IsPunct("|"):
			p.cursor.Advance()
			//
			tail, _, err := p.parse(argPriority)
			if err != nil {
				return nil, err
			}
			//
			last.SetTail(tail)
			//
			return head, p.expect("]", UnclosedList)
		case tok.IsPunct("]"):
			p.cursor.Advance()
			last.SetTail(term.Nil)
			//
			return head, nil
		default:
			return nil, p.fail(UnclosedList, tok,
				fmt.Sprintf("looking for symbol ',','|' got symbol '%s'", tok.String()))
		}
	}
}

// Parse a comma-separated argument list, having seen its opening bracket,
// and construct a compound from it.  A non-nil target becomes the first
// argument, in which case the argument list may be empty.
func (p *parser) parseArgs(tok *token.Token, functor term.Atom, target term.Term,
	close term.Atom) (term.Term, *SyntaxError) {
	height := p.trail.Len()
	//
	p.cursor.Advance()
	//
	if target != nil {
		if err := p.push(tok, target); err != nil {
			return nil, err
		} else if p.match(close) {
			return p.makeCompoundFromTrail(tok, functor, height)
		}
	}
	//
	if err := p.parseArgList(tok, close); err != nil {
		return nil, err
	}
	//
	return p.makeCompoundFromTrail(tok, functor, height)
}

// Parse one or more arguments onto the trail, followed by a closing bracket.
func (p *parser) parseArgList(tok *token.Token, close term.Atom) *SyntaxError {
	for {
		arg, _, err := p.parse(argPriority)
		if err != nil {
			return err
		} else if err = p.push(tok, arg); err != nil {
			return err
		} else if !p.match(",") {
			return p.expect(close, UnclosedBracket)
		}
	}
}

// Parse any infix and postfix operators following a term of a given
// priority.
func (p *parser) parseOperators(left term.Term, priority uint, ceiling uint) (term.Term, uint, *SyntaxError) {
	for {
		var (
			tok = p.cursor.Peek()
			t   term.Term
			err *SyntaxError
			ok  bool
		)
		//
		switch tok.Kind {
		case token.NAME:
			name := tok.Atom()
			//
			if !p.ops.IsOp(string(name), p.module) {
				return nil, 0, p.expectedOperator(tok)
			} else if t, priority, ok, err = p.parseInfix(tok, left, priority, ceiling); ok || err != nil {
				break
			}
			//
			t, priority, ok, err = p.parsePostfix(tok, left, priority, ceiling)
		case token.PUNCT:
			t, priority, ok, err = p.parsePunctOperator(tok, left, priority, ceiling)
		case token.NUMBER, token.VAR, token.STRING:
			return nil, 0, p.expectedOperator(tok)
		}
		//
		if err != nil {
			return nil, 0, err
		} else if !ok {
			return left, priority, nil
		}
		//
		left = t
	}
}

// Attempt to read a name as an infix operator.  Since the name might be
// something else (e.g. a postfix operator), a failure to read the right
// operand is undone.
func (p *parser) parseInfix(tok *token.Token, left term.Term, priority uint,
	ceiling uint) (term.Term, uint, bool, *SyntaxError) {
	name := tok.Atom()
	infix := p.ops.LookupInfix(string(name), p.module)
	//
	if infix.IsEmpty() {
		return nil, priority, false, nil
	}
	//
	op := infix.Unwrap()
	//
	if op.Priority > ceiling || op.Left < priority {
		return nil, priority, false, nil
	}
	//
	snap := p.mark()
	p.cursor.Advance()
	//
	right, _, err := p.parse(op.Right)
	if err == nil {
		var t term.Term
		//
		if t, err = p.makeCompound(tok, name, left, right); err == nil {
			return t, op.Priority, true, nil
		}
	}
	//
	if err.Fatal() {
		return nil, 0, false, err
	}
	//
	p.rollback(snap, name, err)
	//
	return nil, priority, false, nil
}

func (p *parser) parsePostfix(tok *token.Token, left term.Term, priority uint,
	ceiling uint) (term.Term, uint, bool, *SyntaxError) {
	name := tok.Atom()
	postfix := p.ops.LookupPostfix(string(name), p.module)
	//
	if postfix.IsEmpty() {
		return nil, priority, false, nil
	}
	//
	op := postfix.Unwrap()
	//
	if op.Priority > ceiling || op.Left < priority {
		return nil, priority, false, nil
	}
	//
	t, err := p.makeCompound(tok, name, left)
	if err != nil {
		return nil, 0, false, err
	}
	//
	p.cursor.Advance()
	//
	return t, op.Priority, true, nil
}

// Handle punctuation which can continue a term: the built-in comma, a bar
// declared as an infix operator, or an accessor.
func (p *parser) parsePunctOperator(tok *token.Token, left term.Term, priority uint,
	ceiling uint) (term.Term, uint, bool, *SyntaxError) {
	//
	switch {
	case tok.IsPunct(",") && ceiling >= commaPriority && priority < commaPriority:
		p.cursor.Advance()
		//
		right, _, err := p.parse(commaPriority)
		if err != nil {
			return nil, 0, false, err
		}
		//
		t, err := p.makeCompound(tok, term.Comma, left, right)
		//
		return t, commaPriority, err == nil, err
	case tok.IsPunct("|"):
		infix := p.ops.LookupInfix(string(term.Bar), p.module)
		//
		if infix.IsEmpty() {
			break
		} else if op := infix.Unwrap(); op.Priority <= ceiling && op.Left >= priority {
			p.cursor.Advance()
			//
			right, _, err := p.parse(op.Right)
			if err != nil {
				return nil, 0, false, err
			}
			//
			t, err := p.makeCompound(tok, term.Bar, left, right)
			//
			return t, op.Priority, err == nil, err
		}
	case !tok.Layout:
		if accessor, ok := p.accessors[tok.Atom()]; ok {
			return p.parseAccessor(tok, accessor, left, priority, ceiling)
		}
	}
	//
	return nil, priority, false, nil
}

// Attempt to read an accessor following a term.
func (p *parser) parseAccessor(tok *token.Token, accessor Accessor, target term.Term, priority uint,
	ceiling uint) (term.Term, uint, bool, *SyntaxError) {
	postfix := p.ops.LookupPostfix(string(accessor.Operator), p.module)
	//
	if postfix.IsEmpty() {
		return nil, priority, false, nil
	}
	//
	op := postfix.Unwrap()
	//
	if op.Priority > ceiling || op.Left < priority {
		return nil, priority, false, nil
	}
	//
	var (
		t   term.Term
		err *SyntaxError
	)
	//
	switch accessor.Shape {
	case TargetFirst:
		t, err = p.parseArgs(tok, accessor.Operator, target, accessor.Close)
	case ArgumentList:
		t, err = p.parseIndices(tok, accessor, target)
	}
	//
	return t, op.Priority, err == nil, err
}

// Parse the (possibly empty) arguments of an accessor and arrange them as
// op([a1, ..., an], target).
func (p *parser) parseIndices(tok *token.Token, accessor Accessor, target term.Term) (term.Term, *SyntaxError) {
	height := p.trail.Len()
	//
	p.cursor.Advance()
	//
	if !p.match(accessor.Close) {
		if err := p.parseArgList(tok, accessor.Close); err != nil {
			return nil, err
		}
	}
	//
	list, err := p.makeListFromTrail(tok, height)
	if err != nil {
		return nil, err
	}
	//
	return p.makeCompound(tok, accessor.Operator, list, target)
}

func (p *parser) expectedOperator(tok *token.Token) *SyntaxError {
	return p.fail(UnknownOperatorUsage, tok, fmt.Sprintf("expected operator, got '%s'", tok.Text))
}

// Consume a given punctuation symbol, if it is next.
func (p *parser) match(symbol term.Atom) bool {
	if p.cursor.Peek().IsPunct(symbol) {
		p.cursor.Advance()
		return true
	}
	//
	return false
}

// Consume a given punctuation symbol, or fail if it is not next.
func (p *parser) expect(symbol term.Atom, kind ErrorKind) *SyntaxError {
	if p.match(symbol) {
		return nil
	}
	//
	tok := p.cursor.Peek()
	//
	return p.fail(kind, tok, fmt.Sprintf("expected to find '%s', found %s", symbol, tok.String()))
}

// Read "+inf", "-inf", "+nan" and "-nan" as floats.
func specialFloat(sign term.Atom, next *token.Token) (term.Term, bool) {
	if sign != "+" && sign != "-" {
		return nil, false
	}
	//
	switch {
	case next.IsName("inf") && sign == "+":
		return term.Float(math.Inf(1)), true
	case next.IsName("inf"):
		return term.Float(math.Inf(-1)), true
	case next.IsName("nan"):
		return term.Float(math.NaN()), true
	}
	//
	return nil, false
}

func negate(number term.Term) term.Term {
	switch n := number.(type) {
	case term.Int:
		return -n
	case term.Float:
		return -n
	case *term.BigInt:
		neg := n.Neg()
		// -9223372036854775808 is read as a big integer
		if v := neg.Value(); v.IsInt64() {
			return term.Int(v.Int64())
		}
		//
		return neg
	}
	//
	panic(fmt.Sprintf("unknown number %T", number))
}
