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

	"github.com/consensys/go-termreader/pkg/token"
	"github.com/consensys/go-termreader/pkg/util/source"
)

// ErrorKind classifies syntax errors.
type ErrorKind uint8

const (
	// LexicalPassthrough is an error token produced by the tokenizer.
	LexicalPassthrough ErrorKind = iota
	// UnexpectedToken is a token which cannot start (or continue) a term.
	UnexpectedToken
	// UnclosedBracket is a missing ")" or "}".
	UnclosedBracket
	// UnclosedList is a missing "]", or a list element followed by something
	// other than ",", "|" or "]".
	UnclosedList
	// UnknownOperatorUsage is a term followed by something which is not an
	// operator.
	UnknownOperatorUsage
	// ArenaExhausted means the output heap is full.
	ArenaExhausted
	// TrailExhausted means there is no space left to collect arguments.
	TrailExhausted
)

var errorKindNames = []string{"lexical error", "unexpected token", "unclosed bracket", "unclosed list",
	"unknown operator", "heap exhausted", "trail exhausted"}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	//
	return fmt.Sprintf("error(%d)", uint8(k))
}

// SyntaxError describes why a clause could not be read.
type SyntaxError struct {
	Kind ErrorKind
	// Line of the offending token (counting from 1)
	Line uint
	// Character position of the offending token
	Pos uint
	// Characters covered by the offending token
	Span source.Span
	// Text of the offending token
	Text string
	Msg  string
}

func newSyntaxError(kind ErrorKind, tok *token.Token, msg string) *SyntaxError {
	return &SyntaxError{kind, tok.Line, tok.Pos(), tok.Span, tok.Text, msg}
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Fatal checks whether this error aborts the whole read, rather than just the
// current speculative attempt.
func (e *SyntaxError) Fatal() bool {
	return e.Kind == ArenaExhausted || e.Kind == TrailExhausted
}

// In attaches this error to the source file it arose in, so that the
// enclosing line can be reported.
func (e *SyntaxError) In(file *source.File) *source.SyntaxError {
	return file.SyntaxError(e.Span, e.Msg)
}
