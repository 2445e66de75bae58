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
package lex

import "github.com/consensys/go-termreader/pkg/util/source"

// Token is a tagged span of the input.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule associates a scanner with the tag given to whatever it matches.
//
// nolint
type LexRule[T any] struct {
	scanner Scanner[T]
	tag     uint
}

// Rule constructs a new lexing rule which maps matching items to a given tag.
func Rule[T any](scanner Scanner[T], tag uint) LexRule[T] {
	return LexRule[T]{scanner, tag}
}

// Lexer splits a sequence of items into tokens.  At each position the rules
// are tried in order, and the first to match wins.  A rule matching at the end
// of the input (such as Eof) produces an empty token, after which the lexer is
// exhausted.
type Lexer[T any] struct {
	items []T
	rules []LexRule[T]
	// Position of the first unmatched item
	index int
	// Set once the end of the input has been matched, or no rule matched.
	done bool
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{items: input, rules: rules}
}

// Remaining returns the number of items not matched by any token so far.
func (p *Lexer[T]) Remaining() uint {
	return uint(len(p.items) - p.index)
}

// Next returns the next token, or false if the lexer is exhausted.
func (p *Lexer[T]) Next() (Token, bool) {
	if p.done {
		return Token{}, false
	}
	//
	for _, r := range p.rules {
		n := r.scanner(p.items[p.index:])
		//
		if n == 0 {
			continue
		}
		//
		start := p.index
		p.index = min(len(p.items), start+int(n))
		// Nothing more follows a match at the end.
		p.done = start == len(p.items)
		//
		return Token{r.tag, source.NewSpan(start, p.index)}, true
	}
	// Stuck
	p.done = true
	//
	return Token{}, false
}

// Collect lexes all remaining tokens in one go.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for tok, ok := p.Next(); ok; tok, ok = p.Next() {
		tokens = append(tokens, tok)
	}
	//
	return tokens
}
