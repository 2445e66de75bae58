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
	"github.com/consensys/go-termreader/pkg/term"
	"github.com/consensys/go-termreader/pkg/token"
)

// Messages for resource exhaustion.
const (
	heapExhausted  = "output heap exhausted"
	trailExhausted = "argument trail exhausted"
)

// Allocate a compound on the heap from arguments already built.
func (p *parser) makeCompound(tok *token.Token, functor term.Atom, args ...term.Term) (term.Term, *SyntaxError) {
	if c, ok := p.heap.NewCompound(functor, args...); ok {
		return c, nil
	}
	//
	return nil, p.fail(ArenaExhausted, tok, heapExhausted)
}

// Allocate a compound whose arguments are those collected on the trail above
// a given height, releasing them from the trail.
func (p *parser) makeCompoundFromTrail(tok *token.Token, functor term.Atom, height uint) (term.Term, *SyntaxError) {
	t, err := p.makeCompound(tok, functor, p.trail.Above(height)...)
	p.trail.Truncate(height)
	//
	return t, err
}

// Allocate a list cell.  The tail can be left nil and filled in later.
func (p *parser) makeList(tok *token.Token, head term.Term, tail term.Term) (*term.List, *SyntaxError) {
	if l, ok := p.heap.NewList(head, tail); ok {
		return l, nil
	}
	//
	return nil, p.fail(ArenaExhausted, tok, heapExhausted)
}

// Allocate the term "{}"(inner).
func (p *parser) makeCurly(tok *token.Token, inner term.Term) (term.Term, *SyntaxError) {
	return p.makeCompound(tok, term.Curly, inner)
}

// Allocate a proper list holding the terms collected on the trail above a
// given height, releasing them from the trail.
func (p *parser) makeListFromTrail(tok *token.Token, height uint) (term.Term, *SyntaxError) {
	var (
		elems         = p.trail.Above(height)
		list  term.Term = term.Nil
	)
	//
	defer p.trail.Truncate(height)
	//
	for i := len(elems) - 1; i >= 0; i-- {
		cell, err := p.makeList(tok, elems[i], list)
		if err != nil {
			return nil, err
		}
		//
		list = cell
	}
	//
	return list, nil
}

// Return the variable bound to a variable token, allocating it on first use.
func (p *parser) makeVar(tok *token.Token) (term.Term, *SyntaxError) {
	entry := tok.Var
	//
	if v := entry.Term(); v != nil {
		return v, nil
	}
	//
	v, ok := p.heap.NewVar(entry.Name())
	if !ok {
		return nil, p.fail(ArenaExhausted, tok, heapExhausted)
	}
	//
	entry.Bind(v)
	//
	return v, nil
}

// Push an argument onto the trail.
func (p *parser) push(tok *token.Token, arg term.Term) *SyntaxError {
	if !p.trail.TryPush(arg) {
		return p.fail(TrailExhausted, tok, trailExhausted)
	}
	//
	return nil
}
