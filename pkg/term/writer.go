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
	"math"
	"strconv"
	"strings"
	"unicode"
)

// SymbolChars are the characters from which symbolic atoms (e.g. "=..") are
// formed.
const SymbolChars = "+-*/\\^<>=~:.?@#&$"

// IsSymbolChar determines whether a given character is a symbol character.
func IsSymbolChar(c rune) bool {
	return strings.ContainsRune(SymbolChars, c)
}

// IsAlphaNumeric determines whether a given character can continue an
// identifier (i.e. an unquoted atom or a variable name).
func IsAlphaNumeric(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}

// Format writes a term in canonical form, as writeq/2 would with operators
// ignored.  The result can be read back to give a term which is a variant of
// the original.
func Format(t Term) string {
	var builder strings.Builder
	//
	format(&builder, t)
	//
	return builder.String()
}

func format(out *strings.Builder, t Term) {
	switch t := t.(type) {
	case nil:
		// Only seen for list cells whose tail is still being built.
		out.WriteString("<nil>")
	case Atom:
		out.WriteString(QuoteAtom(t))
	case Int:
		out.WriteString(strconv.FormatInt(int64(t), 10))
	case *BigInt:
		out.WriteString(t.value.String())
	case Float:
		out.WriteString(formatFloat(float64(t)))
	case String:
		out.WriteString(quote(string(t), '"'))
	case *Var:
		formatVar(out, t)
	case *List:
		formatList(out, t)
	case *Compound:
		formatCompound(out, t)
	default:
		panic(fmt.Sprintf("unknown term %T", t))
	}
}

func formatVar(out *strings.Builder, v *Var) {
	if v.name == "" || v.name == "_" {
		fmt.Fprintf(out, "_G%d", v.id)
	} else {
		out.WriteString(v.name)
	}
}

func formatList(out *strings.Builder, l *List) {
	elems, rest := l.Elements()
	//
	out.WriteString("[")
	//
	for i, e := range elems {
		if i != 0 {
			out.WriteString(",")
		}
		//
		format(out, e)
	}
	//
	if rest != Nil {
		out.WriteString("|")
		format(out, rest)
	}
	//
	out.WriteString("]")
}

func formatCompound(out *strings.Builder, c *Compound) {
	if c.functor == Curly && len(c.args) == 1 {
		out.WriteString("{")
		format(out, c.args[0])
		out.WriteString("}")
		//
		return
	}
	// Bracket atoms must be quoted in functor position, otherwise they would
	// read back as an empty list (or curly term) followed by arguments.
	if c.functor == Nil || c.functor == Curly {
		out.WriteString(quote(string(c.functor), '\''))
	} else {
		out.WriteString(QuoteAtom(c.functor))
	}
	//
	out.WriteString("(")
	//
	for i, arg := range c.args {
		if i != 0 {
			out.WriteString(",")
		}
		//
		format(out, arg)
	}
	//
	out.WriteString(")")
}

// Floats are always written with a fractional part so they cannot be read
// back as integers.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "+nan"
	case math.IsInf(f, 1):
		return "+inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	//
	s := strconv.FormatFloat(f, 'g', -1, 64)
	//
	if strings.ContainsRune(s, '.') {
		return s
	} else if i := strings.IndexByte(s, 'e'); i >= 0 {
		return s[:i] + ".0" + s[i:]
	}
	//
	return s + ".0"
}

// QuoteAtom returns the written form of an atom, adding quotes only where
// they are needed for the atom to be read back as itself.
func QuoteAtom(atom Atom) string {
	if needsQuotes(string(atom)) {
		return quote(string(atom), '\'')
	}
	//
	return string(atom)
}

func needsQuotes(name string) bool {
	switch name {
	case "":
		return true
	case "[]", "{}", "!", ";":
		return false
	case ".":
		return true
	}
	//
	runes := []rune(name)
	//
	if unicode.IsLower(runes[0]) {
		for _, c := range runes[1:] {
			if !IsAlphaNumeric(c) {
				return true
			}
		}
		//
		return false
	}
	// Symbolic atoms must not open a block comment.
	if strings.HasPrefix(name, "/*") {
		return true
	}
	//
	for _, c := range runes {
		if !IsSymbolChar(c) {
			return true
		}
	}
	//
	return false
}

func quote(text string, delim rune) string {
	var out strings.Builder
	//
	out.WriteRune(delim)
	//
	for _, c := range text {
		switch {
		case c == delim || c == '\\':
			out.WriteRune('\\')
			out.WriteRune(c)
		case c == '\n':
			out.WriteString("\\n")
		case c == '\t':
			out.WriteString("\\t")
		case unicode.IsControl(c):
			fmt.Fprintf(&out, "\\x%x\\", c)
		default:
			out.WriteRune(c)
		}
	}
	//
	out.WriteRune(delim)
	//
	return out.String()
}
