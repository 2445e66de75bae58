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
package term

import (
	"fmt"
	"math/big"
)

// Term is implemented by every value the reader can produce.  Terms are
// immutable once built, with the exception of list cells whose tail is filled
// in by the builder which created them.
type Term interface {
	fmt.Stringer
	// marker method to close the set of implementations.
	isTerm()
}

// Nil is the empty list atom.
const Nil Atom = "[]"

// Curly is the atom used both for "{}" on its own and as the functor of
// curly-bracketed terms.
const Curly Atom = "{}"

// Comma is the functor of conjunctions, as built from a bare ','.
const Comma Atom = ","

// Bar is the functor built from a bare '|' when it is declared as an
// operator.
const Bar Atom = "|"

// Atom is a symbolic constant.
type Atom string

// Int is an integer which fits into a machine word.
type Int int64

// Float is a double precision floating point number.
type Float float64

// String is a double-quoted string literal.
type String string

// BigInt is an integer which does not fit into a machine word.
type BigInt struct {
	value big.Int
}

// NewBigInt constructs a big integer term holding a copy of the given value.
func NewBigInt(value *big.Int) *BigInt {
	var b BigInt
	//
	b.value.Set(value)
	//
	return &b
}

// Value returns a copy of the underlying integer.
func (p *BigInt) Value() *big.Int {
	return new(big.Int).Set(&p.value)
}

// Neg returns a new big integer holding the negation of this one.
func (p *BigInt) Neg() *BigInt {
	var b BigInt
	//
	b.value.Neg(&p.value)
	//
	return &b
}

// Var is a logic variable.  Variables are compared by identity; the name is
// only retained for display.
type Var struct {
	id   uint
	name string
}

// Id returns the identifier of this variable, which is unique amongst the
// variables allocated on the same heap during one read.
func (p *Var) Id() uint {
	return p.id
}

// Name returns the source name of this variable, or "" if it has none.
func (p *Var) Name() string {
	return p.name
}

// Compound is a term with a functor and one or more arguments.  The arguments
// occupy consecutive cells on the heap which allocated it.
type Compound struct {
	functor Atom
	args    []Term
}

// Functor returns the name of this compound.
func (p *Compound) Functor() Atom {
	return p.functor
}

// Arity returns the number of arguments of this compound.
func (p *Compound) Arity() uint {
	return uint(len(p.args))
}

// Arg returns the ith argument (counting from 0).
func (p *Compound) Arg(i uint) Term {
	return p.args[i]
}

// Args returns the arguments of this compound.  The returned slice must not
// be modified.
func (p *Compound) Args() []Term {
	return p.args
}

// List is a list cell, consisting of a head and a tail.
type List struct {
	cell []Term
}

// Head returns the first element of this list.
func (p *List) Head() Term {
	return p.cell[0]
}

// Tail returns the remainder of this list.
func (p *List) Tail() Term {
	return p.cell[1]
}

// SetTail fills in the tail of a list cell.  This is intended only for
// builders which construct lists from left to right.
func (p *List) SetTail(tail Term) {
	p.cell[1] = tail
}

// Elements returns the elements of this list, along with whatever terminates
// it (Nil for a proper list).
func (p *List) Elements() ([]Term, Term) {
	var (
		elems []Term
		rest  Term = p
	)
	//
	for {
		l, ok := rest.(*List)
		if !ok {
			return elems, rest
		}
		//
		elems = append(elems, l.Head())
		rest = l.Tail()
	}
}

func (Atom) isTerm()      {}
func (Int) isTerm()       {}
func (Float) isTerm()     {}
func (String) isTerm()    {}
func (*BigInt) isTerm()   {}
func (*Var) isTerm()      {}
func (*Compound) isTerm() {}
func (*List) isTerm()     {}

func (p Atom) String() string      { return Format(p) }
func (p Int) String() string       { return Format(p) }
func (p Float) String() string     { return Format(p) }
func (p String) String() string    { return Format(p) }
func (p *BigInt) String() string   { return Format(p) }
func (p *Var) String() string      { return Format(p) }
func (p *Compound) String() string { return Format(p) }
func (p *List) String() string     { return Format(p) }
