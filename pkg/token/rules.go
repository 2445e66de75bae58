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
	"unicode"

	"github.com/consensys/go-termreader/pkg/term"
	"github.com/consensys/go-termreader/pkg/util/source/lex"
)

// Raw token tags produced by the lexer, before they are classified.
const (
	rawEOF uint = iota
	rawLayout
	rawComment
	rawEnd
	rawNumber
	rawName
	rawVar
	rawSymbol
	rawSolo
	rawQuoted
	rawString
	rawQQ
	rawPunct
	rawUnterminated
	rawUnknown
)

// Shorthand for scanners over characters.
type scanner = lex.Scanner[rune]

var (
	space    = lex.Where[rune](unicode.IsSpace)
	digit    = lex.Where[rune](isDigit)
	alphaNum = lex.Where[rune](term.IsAlphaNumeric)
	symbol   = lex.Where[rune](term.IsSymbolChar)
)

// Rules for splitting source text into raw tokens.  The order matters: the
// first rule which matches wins.
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lex.Eof[rune](), rawEOF),
	lex.Rule(lex.And(space, lex.Many(space)), rawLayout),
	lex.Rule(lex.And(lex.Unit('%'), lex.Until('\n')), rawComment),
	lex.Rule(scanner(blockComment), rawComment),
	lex.Rule(lex.FollowedBy(lex.Unit('.'), lex.Or(space, lex.Unit('%')), true), rawEnd),
	lex.Rule(scanner(number), rawNumber),
	lex.Rule(lex.And(lex.Where[rune](unicode.IsLower), lex.Many(alphaNum)), rawName),
	lex.Rule(lex.And(lex.Or(lex.Where[rune](unicode.IsUpper), lex.Unit('_')), lex.Many(alphaNum)), rawVar),
	lex.Rule(lex.And(symbol, lex.Many(symbol)), rawSymbol),
	lex.Rule(lex.OneOf('!', ';'), rawSolo),
	lex.Rule(lex.Delimited('\'', scanner(escapeSequence)), rawQuoted),
	lex.Rule(lex.Delimited('"', scanner(escapeSequence)), rawString),
	lex.Rule(lex.Unit('{', '|'), rawQQ),
	lex.Rule(lex.OneOf('(', ')', '[', ']', '{', '}', ',', '|'), rawPunct),
	lex.Rule(scanner(unterminated), rawUnterminated),
	lex.Rule(lex.Any[rune](), rawUnknown),
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// Matches an escape sequence within quotes.  An undefined escape covers just
// the backslash and the character after it, and is reported when the quoted
// item is decoded.
func escapeSequence(items []rune) uint {
	if len(items) == 0 || items[0] != '\\' {
		return 0
	} else if _, n, ok := escape(items); ok {
		return n
	}
	//
	return min(2, uint(len(items)))
}

// Matches a complete block comment.
func blockComment(items []rune) uint {
	if len(items) < 2 || items[0] != '/' || items[1] != '*' {
		return 0
	}
	//
	for i := 2; i+1 < len(items); i++ {
		if items[i] == '*' && items[i+1] == '/' {
			return uint(i + 2)
		}
	}
	// unterminated
	return 0
}

// Matches the remainder of the input following an opening quote or block
// comment which is never closed.
func unterminated(items []rune) uint {
	switch {
	case len(items) == 0:
		return 0
	case items[0] == '\'' || items[0] == '"':
		return uint(len(items))
	case len(items) >= 2 && items[0] == '/' && items[1] == '*':
		return uint(len(items))
	}
	//
	return 0
}

// Matches a number literal, which is one of: a decimal integer; a float with
// a fractional part and optional exponent; a character code (e.g. 0'a); or an
// integer in hexadecimal (0x), octal (0o) or binary (0b).
func number(items []rune) uint {
	n := lex.Many(digit)(items)
	//
	if n == 0 {
		return 0
	} else if n == 1 && items[0] == '0' && len(items) > 2 {
		if m := radixOrCode(items); m > 0 {
			return m
		}
	}
	// Fraction must have a digit after the point, otherwise it is an end
	// marker or an operator.
	if n+1 < uint(len(items)) && items[n] == '.' && isDigit(items[n+1]) {
		n += 1 + lex.Many(digit)(items[n+1:])
		n += exponent(items[n:])
		// Special float values, such as 1.0Inf and 1.5NaN.
		if m := lex.Or(lex.Unit('I', 'n', 'f'), lex.Unit('N', 'a', 'N'))(items[n:]); m > 0 {
			n += m
		}
	}
	//
	return n
}

func radixOrCode(items []rune) uint {
	var digits scanner
	//
	switch items[1] {
	case '\'':
		if m := charCode(items[2:]); m > 0 {
			return m + 2
		}
		//
		return 0
	case 'x':
		digits = lex.Or(digit, lex.Within('a', 'f'), lex.Within('A', 'F'))
	case 'o':
		digits = lex.Within('0', '7')
	case 'b':
		digits = lex.OneOf('0', '1')
	default:
		return 0
	}
	//
	if m := lex.Many(digits)(items[2:]); m > 0 {
		return m + 2
	}
	//
	return 0
}

// Matches the character following "0'".
func charCode(items []rune) uint {
	switch {
	case len(items) == 0:
		return 0
	case items[0] == '\\':
		_, n, ok := escape(items)
		if !ok {
			return 0
		}
		//
		return n
	case items[0] == '\'' && len(items) > 1 && items[1] == '\'':
		return 2
	}
	//
	return 1
}

func exponent(items []rune) uint {
	if len(items) < 2 || (items[0] != 'e' && items[0] != 'E') {
		return 0
	}
	//
	n := uint(1)
	//
	if items[1] == '+' || items[1] == '-' {
		n++
	}
	//
	if m := lex.Many(digit)(items[n:]); m > 0 {
		return n + m
	}
	// Not an exponent after all
	return 0
}
