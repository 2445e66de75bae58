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
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/consensys/go-termreader/pkg/term"
)

// Used for an escaped newline, which contributes no character.
const continuation rune = -1

var errEscape = errors.New("undefined escape sequence")

// Decode an escape sequence starting with a backslash, returning the
// character it denotes and the number of items consumed.
func escape(items []rune) (rune, uint, bool) {
	if len(items) < 2 {
		return 0, 0, false
	}
	//
	switch items[1] {
	case 'n':
		return '\n', 2, true
	case 't':
		return '\t', 2, true
	case 'r':
		return '\r', 2, true
	case 'a':
		return '\a', 2, true
	case 'b':
		return '\b', 2, true
	case 'f':
		return '\f', 2, true
	case 'v':
		return '\v', 2, true
	case 'e':
		return 27, 2, true
	case 's':
		return ' ', 2, true
	case '0', '1', '2', '3', '4', '5', '6', '7':
		return numericEscape(items, 1, 8)
	case 'x':
		return numericEscape(items, 2, 16)
	case '\n':
		return continuation, 2, true
	case '\\', '\'', '"', '`':
		return items[1], 2, true
	}
	//
	return 0, 0, false
}

// Decode an escape of the form \NNN\ or \xNN\, where the closing backslash is
// optional.
func numericEscape(items []rune, start int, base int) (rune, uint, bool) {
	end := start
	//
	for end < len(items) && isRadixDigit(items[end], base) {
		end++
	}
	//
	if end == start {
		return 0, 0, false
	}
	//
	code, err := strconv.ParseUint(string(items[start:end]), base, 32)
	if err != nil || code > math.MaxInt32 {
		return 0, 0, false
	}
	//
	if end < len(items) && items[end] == '\\' {
		end++
	}
	//
	return rune(code), uint(end), true
}

func isRadixDigit(c rune, base int) bool {
	switch {
	case '0' <= c && c <= '9':
		return int(c-'0') < base
	case 'a' <= c && c <= 'f':
		return base == 16
	case 'A' <= c && c <= 'F':
		return base == 16
	}
	//
	return false
}

// Remove the delimiters from a quoted item, decoding escapes and doubled
// delimiters.
func unquote(text []rune) (string, error) {
	var (
		builder strings.Builder
		delim   = text[0]
		body    = text[1 : len(text)-1]
	)
	//
	for i := 0; i < len(body); i++ {
		switch c := body[i]; {
		case c == '\\':
			r, n, ok := escape(body[i:])
			if !ok {
				return "", errEscape
			} else if r != continuation {
				builder.WriteRune(r)
			}
			//
			i += int(n) - 1
		case c == delim:
			// Must be doubled, otherwise the lexer would have stopped here.
			builder.WriteRune(c)
			i++
		default:
			builder.WriteRune(c)
		}
	}
	//
	return builder.String(), nil
}

// Decode the value of a number literal, as matched by the number scanner.
func decodeNumber(text string) (term.Term, error) {
	if len(text) > 2 && text[0] == '0' {
		switch text[1] {
		case '\'':
			return decodeCharCode([]rune(text[2:]))
		case 'x':
			return decodeInteger(text[2:], 16)
		case 'o':
			return decodeInteger(text[2:], 8)
		case 'b':
			return decodeInteger(text[2:], 2)
		}
	}
	//
	switch {
	case strings.HasSuffix(text, "Inf"):
		return term.Float(math.Inf(1)), nil
	case strings.HasSuffix(text, "NaN"):
		return term.Float(math.NaN()), nil
	case strings.ContainsRune(text, '.'):
		f, err := strconv.ParseFloat(text, 64)
		// Overflow gives an infinity together with an error.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, err
		}
		//
		return term.Float(f), nil
	}
	//
	return decodeInteger(text, 10)
}

func decodeCharCode(items []rune) (term.Term, error) {
	switch {
	case items[0] == '\\':
		r, _, ok := escape(items)
		if !ok || r == continuation {
			return nil, errEscape
		}
		//
		return term.Int(r), nil
	default:
		return term.Int(items[0]), nil
	}
}

func decodeInteger(digits string, base int) (term.Term, error) {
	var value big.Int
	//
	if _, ok := value.SetString(digits, base); !ok {
		return nil, errors.New("invalid integer")
	} else if value.IsInt64() {
		return term.Int(value.Int64()), nil
	}
	//
	return term.NewBigInt(&value), nil
}
