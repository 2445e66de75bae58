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
	"math"
	"strings"
	"testing"

	"github.com/consensys/go-termreader/pkg/ops"
	"github.com/consensys/go-termreader/pkg/term"
	"github.com/consensys/go-termreader/pkg/util/assert"
	"github.com/consensys/go-termreader/pkg/util/source"
)

// ============================================================================
// Operators
// ============================================================================

func TestReader_Infix_01(t *testing.T) {
	checkRead(t, "a + b * c.", "+(a,*(b,c))")
	checkRead(t, "(a + b) * c.", "*(+(a,b),c)")
}

func TestReader_Infix_02(t *testing.T) {
	// yfx
	checkRead(t, "a - b - c.", "-(-(a,b),c)")
	// xfy
	checkRead(t, "a ^ b ^ c.", "^(a,^(b,c))")
}

func TestReader_Infix_03(t *testing.T) {
	// xfx
	checkError(t, "a = b = c.", UnexpectedToken, "operator or bracket expected")
	checkError(t, "a :- b :- c.", UnexpectedToken, "operator or bracket expected")
	checkRead(t, "a = (b = c).", "=(a,=(b,c))")
}

func TestReader_Infix_04(t *testing.T) {
	checkRead(t, "a, b, c.", "','(a,','(b,c))")
	checkRead(t, "a :- b, c ; d.", ":-(a,;(','(b,c),d))")
	checkRead(t, "a -> b ; c.", ";(->(a,b),c)")
}

func TestReader_Infix_05(t *testing.T) {
	checkRead(t, "a | b.", "'|'(a,b)")
	checkRead(t, "X is 1 - -1.", "is(X,-(1,-1))")
	checkRead(t, "X =.. [f|Args].", "=..(X,[f|Args])")
}

func TestReader_Prefix_01(t *testing.T) {
	checkRead(t, "- (1).", "-(1)")
	checkRead(t, "-(1).", "-(1)")
	checkRead(t, "-(1,2).", "-(1,2)")
	checkRead(t, "- a.", "-(a)")
	checkRead(t, "- - a.", "-(-(a))")
}

func TestReader_Prefix_02(t *testing.T) {
	// Operators as atoms
	checkRead(t, "f(-).", "f(-)")
	checkRead(t, "[-].", "[-]")
	checkRead(t, "- = x.", "=(-,x)")
	checkRead(t, "- .", "-")
	checkRead(t, "f(:-, dynamic).", "f(:-,dynamic)")
}

func TestReader_Prefix_03(t *testing.T) {
	checkRead(t, "\\+ a, b.", "','(\\+(a),b)")
	checkRead(t, ":- dynamic foo/1.", ":-(dynamic(/(foo,1)))")
	checkRead(t, "- a = b.", "=(-(a),b)")
}

func TestReader_Prefix_04(t *testing.T) {
	checkValue(t, "- 3.", term.Int(-3))
	checkValue(t, "-3.", term.Int(-3))
	checkValue(t, "- 1.5.", term.Float(-1.5))
	checkValue(t, "-9223372036854775808.", term.Int(math.MinInt64))
}

func TestReader_Prefix_05(t *testing.T) {
	checkValue(t, "+inf.", term.Float(math.Inf(1)))
	checkValue(t, "- inf.", term.Float(math.Inf(-1)))
	checkRead(t, "X is +nan.", "is(X,+nan)")
}

func TestReader_Ceiling_01(t *testing.T) {
	config := DefaultConfig()
	config.MaxPriority = 999
	r := NewReader(config, ops.Default())
	//
	_, err := r.ReadString("a :- b.")
	assert.NotNil(t, err)
	//
	res, err := r.ReadString("a = b.")
	assert.Nil(t, err)
	assert.Equal(t, "=(a,b)", term.Format(res.Term))
	// Brackets reset the priority
	res, err = r.ReadString("(a :- b).")
	assert.Nil(t, err)
	assert.Equal(t, ":-(a,b)", term.Format(res.Term))
}

func TestReader_Module_01(t *testing.T) {
	table := ops.Default()
	assert.Nil(t, table.Declare(700, ops.XFX, "===", "m"))
	//
	config := DefaultConfig()
	config.Module = "m"
	//
	res, err := NewReader(config, table).ReadString("a === b.")
	assert.Nil(t, err)
	assert.Equal(t, "===(a,b)", term.Format(res.Term))
	//
	_, err = NewReader(DefaultConfig(), table).ReadString("a === b.")
	assert.NotNil(t, err)
	assert.Equal(t, UnknownOperatorUsage, err.Kind)
}

// ============================================================================
// Compound terms
// ============================================================================

func TestReader_Compound_01(t *testing.T) {
	checkRead(t, "foo.", "foo")
	checkRead(t, "f(a, g(b), \"s\").", "f(a,g(b),\"s\")")
	checkRead(t, "'hello world'(1).", "'hello world'(1)")
	checkRead(t, "f((a, b)).", "f(','(a,b))")
	checkRead(t, "f((a :- b)).", "f(:-(a,b))")
	checkError(t, "f(a :- b).", UnclosedBracket, "expected to find ')', found :-")
}

func TestReader_List_01(t *testing.T) {
	checkRead(t, "[].", "[]")
	checkRead(t, "[1, 2, 3].", "[1,2,3]")
	checkRead(t, "[H|T].", "[H|T]")
	checkRead(t, "[a|[b]].", "[a,b]")
	checkRead(t, "[a, b | c].", "[a,b|c]")
	checkRead(t, "[(a :- b)].", "[:-(a,b)]")
}

func TestReader_Curly_01(t *testing.T) {
	checkRead(t, "{}.", "{}")
	checkRead(t, "{a, b}.", "{','(a,b)}")
	checkRead(t, "'{}'(a, b).", "'{}'(a,b)")
}

func TestReader_Accessor_01(t *testing.T) {
	table := ops.Default()
	assert.Nil(t, table.Declare(100, ops.YF, "[]", ops.AnyModule))
	assert.Nil(t, table.Declare(100, ops.YF, "()", ops.AnyModule))
	assert.Nil(t, table.Declare(100, ops.YF, "{}", ops.AnyModule))
	//
	checkReadWith(t, table, "X[1, 2].", "'[]'([1,2],X)")
	checkReadWith(t, table, "X[].", "'[]'([],X)")
	checkReadWith(t, table, "X(a, b).", "'()'(X,a,b)")
	checkReadWith(t, table, "X().", "'()'(X)")
	checkReadWith(t, table, "X{a}.", "'{}'([a],X)")
	checkReadWith(t, table, "X[1][2].", "'[]'([2],'[]'([1],X))")
	checkReadWith(t, table, "Y = X[1].", "=(Y,'[]'([1],X))")
}

func TestReader_Accessor_02(t *testing.T) {
	// Not declared
	checkError(t, "X[1].", UnexpectedToken, "operator or bracket expected")
	//
	table := ops.Default()
	assert.Nil(t, table.Declare(100, ops.YF, "[]", ops.AnyModule))
	// Layout before the bracket
	_, err := NewReader(DefaultConfig(), table).ReadString("X [1].")
	assert.NotNil(t, err)
}

// ============================================================================
// Variables
// ============================================================================

func TestReader_Vars_01(t *testing.T) {
	res := read(t, "X, Y, X.")
	//
	assert.Equal(t, []string{"Y"}, res.Singletons())
	assert.Equal(t, 2, len(res.VariableNames()))
	assert.Equal(t, 2, len(res.Variables()))
}

func TestReader_Vars_02(t *testing.T) {
	res := read(t, "f(_, _, _X).")
	//
	assert.Equal(t, 0, len(res.Singletons()))
	assert.Equal(t, 1, len(res.VariableNames()))
	assert.Equal(t, "_X", res.VariableNames()[0].Name)
	assert.Equal(t, 3, len(res.Variables()))
	//
	c := res.Term.(*term.Compound)
	assert.False(t, c.Arg(0) == c.Arg(1))
}

func TestReader_Vars_03(t *testing.T) {
	res := read(t, "f(X, X).")
	c := res.Term.(*term.Compound)
	//
	assert.True(t, c.Arg(0) == c.Arg(1))
	assert.True(t, res.VariableNames()[0].Var == c.Arg(0))
}

func TestReader_Vars_04(t *testing.T) {
	r := NewReader(DefaultConfig(), ops.Default())
	//
	_, err := r.ReadString("f(X).")
	assert.Nil(t, err)
	// Variables do not carry over between reads
	res, err := r.ReadString("g(Y).")
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res.VariableNames()))
	assert.Equal(t, "Y", res.VariableNames()[0].Name)
}

// ============================================================================
// Errors
// ============================================================================

func TestReader_Error_01(t *testing.T) {
	checkError(t, "f(a.", UnclosedBracket, "expected to find ')', found end of clause")
	checkError(t, "(a.", UnclosedBracket, "expected to find ')', found end of clause")
	checkError(t, "{a.", UnclosedBracket, "expected to find '}', found end of clause")
	checkError(t, "[a).", UnclosedList, "looking for symbol ',','|' got symbol ')'")
	checkError(t, "[a|b c].", UnknownOperatorUsage, "expected operator, got 'c'")
	checkError(t, "[a|b, c].", UnclosedList, "expected to find ']', found ,")
}

func TestReader_Error_02(t *testing.T) {
	checkError(t, "foo bar.", UnknownOperatorUsage, "expected operator, got 'bar'")
	checkError(t, "foo 1.", UnknownOperatorUsage, "expected operator, got '1'")
	checkError(t, "foo )", UnexpectedToken, "operator or bracket expected")
	checkError(t, "foo", UnexpectedToken, "term must end with end marker")
	checkError(t, ".", UnexpectedToken, "unexpected end of clause")
	checkError(t, "f(}).", UnexpectedToken, "unexpected punctuation }")
}

func TestReader_Error_03(t *testing.T) {
	checkError(t, "'abc", LexicalPassthrough, "found ill-formed \"'abc\": unterminated quoted atom")
	checkError(t, "{|x|}.", UnexpectedToken, "quasi-quotations are not supported")
}

func TestReader_Error_04(t *testing.T) {
	r := NewReader(DefaultConfig(), ops.Default())
	// The failure inside the brackets gets further than the failure to find an
	// operator after "a", despite being rolled back.
	_, err := r.ReadString("a - (b + c d).")
	//
	assert.NotNil(t, err)
	assert.Equal(t, UnknownOperatorUsage, err.Kind)
	assert.Equal(t, uint(11), err.Pos)
	assert.Equal(t, "d", r.Furthest().Text)
}

func TestReader_Error_05(t *testing.T) {
	_, err := NewReader(DefaultConfig(), ops.Default()).ReadString("a.\nf(b c).")
	// Only the first clause is read
	assert.Nil(t, err)
	//
	file := source.NewSourceFile("test.pl", []byte("a.\nf(b c)."))
	_, errs := NewReader(DefaultConfig(), ops.Default()).ReadAll(file)
	assert.Equal(t, 1, len(errs))
	assert.Equal(t, uint(2), errs[0].Line)
	//
	srcerr := errs[0].In(file)
	line := srcerr.FirstEnclosingLine()
	assert.Equal(t, "f(b c).", line.String())
	assert.Equal(t, "c", file.Text(srcerr.Span()))
}

// ============================================================================
// Resources
// ============================================================================

func TestReader_Heap_01(t *testing.T) {
	config := DefaultConfig()
	config.HeapCells = 64
	config.HeapMargin = 8
	r := NewReader(config, ops.Default())
	//
	input := strings.Repeat("f(", 40) + "a" + strings.Repeat(")", 40) + "."
	_, err := r.ReadString(input)
	//
	assert.NotNil(t, err)
	assert.Equal(t, ArenaExhausted, err.Kind)
	assert.True(t, err.Fatal())
	assert.Equal(t, heapExhausted, err.Msg)
	// Reader still usable afterwards
	res, err := r.ReadString("f(f(a)).")
	assert.Nil(t, err)
	assert.Equal(t, uint(4), res.HeapUsed)
}

func TestReader_Heap_02(t *testing.T) {
	config := DefaultConfig()
	config.HeapCells = 64
	config.HeapMargin = 8
	r := NewReader(config, ops.Default())
	// Exhaustion within a speculative attempt is not recovered from.
	input := "- " + strings.Repeat("[a,", 40) + "b" + strings.Repeat("]", 40) + "."
	_, err := r.ReadString(input)
	//
	assert.NotNil(t, err)
	assert.Equal(t, ArenaExhausted, err.Kind)
}

func TestReader_Trail_01(t *testing.T) {
	config := DefaultConfig()
	config.TrailCells = 4
	r := NewReader(config, ops.Default())
	//
	_, err := r.ReadString("f(a, b, c, d, e).")
	assert.NotNil(t, err)
	assert.Equal(t, TrailExhausted, err.Kind)
	//
	res, err := r.ReadString("f(a, b, c, g(d)).")
	assert.Nil(t, err)
	assert.Equal(t, "f(a,b,c,g(d))", term.Format(res.Term))
}

// ============================================================================
// Files
// ============================================================================

func TestReader_ReadAll_01(t *testing.T) {
	file := source.NewSourceFile("test.pl", []byte("a.\nb c.\n% comment\nf(X) :- g(X).\n"))
	results, errs := NewReader(DefaultConfig(), ops.Default()).ReadAll(file)
	//
	assert.Equal(t, 2, len(results))
	assert.Equal(t, 1, len(errs))
	// Earlier terms survive later reads
	assert.Equal(t, "a", term.Format(results[0].Term))
	assert.Equal(t, ":-(f(X),g(X))", term.Format(results[1].Term))
	assert.Equal(t, uint(4), results[1].Line)
}

// ============================================================================
// Round trip
// ============================================================================

func TestReader_RoundTrip_01(t *testing.T) {
	checkRoundTrip(t, "f(X, Y, X, _, _, -1, - 1, -(1), - a, 'hello world', \"str\", [1,2|T], {a,b}).")
}

func TestReader_RoundTrip_02(t *testing.T) {
	checkRoundTrip(t, "f(1.5, 0'a, 1.0e10, (a:-b), (a,b), [], {}, '[]', -(-(1)), - (-1), 1 - -1).")
}

func TestReader_RoundTrip_03(t *testing.T) {
	checkRoundTrip(t, "f(;, (a;b), [-], -inf, +nan, 'A'(b), \"it's\", 'don''t', X = Y, [a|b], '|'(a,b)).")
}

func TestReader_RoundTrip_04(t *testing.T) {
	checkRoundTrip(t, ":- dynamic foo/1, bar/2.")
	checkRoundTrip(t, "p(X) :- \\+ q(X), X =.. [_|Args], '$x'(Args, \"\\n\").")
}

// ============================================================================
// Framework
// ============================================================================

func read(t *testing.T, input string) *Result {
	t.Helper()
	//
	res, err := NewReader(DefaultConfig(), ops.Default()).ReadString(input)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	//
	return res
}

func checkRead(t *testing.T, input string, expected string) {
	t.Helper()
	checkReadWith(t, ops.Default(), input, expected)
}

func checkReadWith(t *testing.T, table *ops.Table, input string, expected string) {
	t.Helper()
	//
	res, err := NewReader(DefaultConfig(), table).ReadString(input)
	if err != nil {
		t.Fatalf("%s: unexpected error: %s", input, err.Error())
	}
	//
	assert.Equal(t, expected, term.Format(res.Term), input)
}

func checkValue(t *testing.T, input string, expected term.Term) {
	t.Helper()
	//
	res := read(t, input)
	assert.Equal(t, expected, res.Term, input)
}

func checkError(t *testing.T, input string, kind ErrorKind, msg string) {
	t.Helper()
	//
	res, err := NewReader(DefaultConfig(), ops.Default()).ReadString(input)
	if err == nil {
		t.Fatalf("%s: expected error, got %s", input, term.Format(res.Term))
	}
	//
	assert.Equal(t, kind, err.Kind, input)
	assert.Equal(t, msg, err.Msg, input)
}

func checkRoundTrip(t *testing.T, input string) {
	t.Helper()
	//
	r := NewReader(DefaultConfig(), ops.Default())
	//
	res, err := r.ReadString(input)
	if err != nil {
		t.Fatalf("%s: unexpected error: %s", input, err.Error())
	}
	//
	original := term.Copy(res.Term)
	text := term.Format(original)
	//
	reread, err := r.ReadString(text + " .")
	if err != nil {
		t.Fatalf("%s: unexpected error: %s", text, err.Error())
	}
	//
	if !term.Variant(original, reread.Term) {
		t.Errorf("%s is not a variant of %s", term.Format(reread.Term), text)
	}
}
