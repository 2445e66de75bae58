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

import (
	"fmt"

	"github.com/consensys/go-termreader/pkg/term"
	"github.com/consensys/go-termreader/pkg/util/source"
	"github.com/consensys/go-termreader/pkg/vars"
)

// Kind identifies the category of a token.
type Kind uint

const (
	// NAME is an atom, written plainly, symbolically or quoted.
	NAME Kind = iota
	// NUMBER is an integer or float literal.
	NUMBER
	// STRING is a double-quoted string literal.
	STRING
	// VAR is a variable.
	VAR
	// PUNCT is one of "(", ")", "[", "]", "{", "}", "," or "|".
	PUNCT
	// QQ opens a quasi-quotation ("{|").
	QQ
	// END is the end marker of a clause.
	END
	// EOF marks the end of the input.
	EOF
	// ERROR is text which could not be tokenized.
	ERROR
)

var kindNames = []string{"name", "number", "string", "variable", "punctuation", "quasi-quote",
	"end", "end of file", "error"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	//
	return fmt.Sprintf("kind(%d)", uint(k))
}

// Token is a single lexical unit of a clause.
type Token struct {
	Kind Kind
	// Characters covered by this token in the source file
	Span source.Span
	// Line on which this token starts (counting from 1)
	Line uint
	// Whether layout (whitespace or comments) precedes this token
	Layout bool
	// For names, whether immediately followed by "("
	Functional bool
	// Source text of this token
	Text string
	// Atom (NAME, PUNCT), number (NUMBER) or string (STRING) value
	Value term.Term
	// Interned entry of a VAR token
	Var *vars.Entry
	// Explanation for an ERROR token
	Msg string
}

// Atom returns the value of a NAME or PUNCT token as an atom, or "" for any
// other kind of token.
func (t *Token) Atom() term.Atom {
	if a, ok := t.Value.(term.Atom); ok && (t.Kind == NAME || t.Kind == PUNCT) {
		return a
	}
	//
	return ""
}

// IsPunct checks whether this token is a given punctuation symbol.
func (t *Token) IsPunct(symbol term.Atom) bool {
	return t.Kind == PUNCT && t.Value == symbol
}

// IsName checks whether this token is a given name.
func (t *Token) IsName(name term.Atom) bool {
	return t.Kind == NAME && t.Value == name
}

// Pos returns the position of this token in the source file, measured in
// characters.
func (t *Token) Pos() uint {
	return uint(t.Span.Start())
}

func (t *Token) String() string {
	switch t.Kind {
	case EOF:
		return "end of file"
	case END:
		return "end of clause"
	default:
		return t.Text
	}
}
