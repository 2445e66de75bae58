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
package token

import "github.com/consensys/go-termreader/pkg/util/source"

// Cursor provides forward traversal over the tokens of a clause with one token
// of lookahead.  The cursor never moves beyond the final token, which is always
// an END or EOF token.  It also records the furthest position reached, which is
// retained even when the cursor is later moved back (e.g. after a speculative
// parse fails).
type Cursor struct {
	tokens []Token
	// Index of the current token
	pos uint
	// Largest index reached so far
	furthest uint
}

// NewCursor constructs a cursor positioned on the first of a given sequence
// of tokens.  If the sequence does not end with an END or EOF token, an EOF
// token is added.
func NewCursor(tokens []Token) *Cursor {
	if n := len(tokens); n == 0 || (tokens[n-1].Kind != END && tokens[n-1].Kind != EOF) {
		var end int
		//
		if n > 0 {
			end = tokens[n-1].Span.End()
		}
		//
		tokens = append(tokens, Token{Kind: EOF, Span: source.NewSpan(end, end)})
	}
	//
	return &Cursor{tokens, 0, 0}
}

// Peek returns the current token.
func (p *Cursor) Peek() *Token {
	return &p.tokens[p.pos]
}

// Lookahead returns the token after the current one, or the final token if
// the cursor is already there.
func (p *Cursor) Lookahead() *Token {
	return &p.tokens[min(p.pos+1, p.last())]
}

// Advance moves the cursor onto the next token, unless it is on the final
// token.
func (p *Cursor) Advance() {
	if p.pos < p.last() {
		p.pos++
		p.furthest = max(p.furthest, p.pos)
	}
}

// Pos returns the index of the current token.
func (p *Cursor) Pos() uint {
	return p.pos
}

// Reset moves the cursor back to an earlier position.  The furthest position
// is unaffected.
func (p *Cursor) Reset(pos uint) {
	p.pos = pos
}

// AtLast checks whether the cursor is on the final token.
func (p *Cursor) AtLast() bool {
	return p.pos == p.last()
}

// Furthest returns the furthest token reached.
func (p *Cursor) Furthest() *Token {
	return &p.tokens[p.furthest]
}

// Tokens returns the tokens traversed by this cursor.
func (p *Cursor) Tokens() []Token {
	return p.tokens
}

func (p *Cursor) last() uint {
	return uint(len(p.tokens) - 1)
}
