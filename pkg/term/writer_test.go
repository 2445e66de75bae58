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
	"math"
	"math/big"
	"testing"

	"github.com/consensys/go-termreader/pkg/util/assert"
)

func Test_Format_Atom_01(t *testing.T) {
	checkFormat(t, "abc", Atom("abc"))
	checkFormat(t, "aBc_1", Atom("aBc_1"))
	checkFormat(t, "=..", Atom("=.."))
	checkFormat(t, "[]", Nil)
	checkFormat(t, "{}", Curly)
	checkFormat(t, "!", Atom("!"))
	checkFormat(t, ";", Atom(";"))
}

func Test_Format_Atom_02(t *testing.T) {
	checkFormat(t, "'Abc'", Atom("Abc"))
	checkFormat(t, "''", Atom(""))
	checkFormat(t, "','", Comma)
	checkFormat(t, "'|'", Bar)
	checkFormat(t, "'.'", Atom("."))
	checkFormat(t, "'hello world'", Atom("hello world"))
	checkFormat(t, "'it\\'s'", Atom("it's"))
	checkFormat(t, "'a\\nb'", Atom("a\nb"))
	checkFormat(t, "'/*'", Atom("/*"))
}

func Test_Format_Number_01(t *testing.T) {
	checkFormat(t, "0", Int(0))
	checkFormat(t, "-3", Int(-3))
	checkFormat(t, "1.5", Float(1.5))
	checkFormat(t, "2.0", Float(2))
	checkFormat(t, "1.0e+300", Float(1e300))
	checkFormat(t, "+inf", Float(math.Inf(1)))
	checkFormat(t, "-inf", Float(math.Inf(-1)))
	checkFormat(t, "+nan", Float(math.NaN()))
	checkFormat(t, "123456789012345678901234567890", NewBigInt(bigOf("123456789012345678901234567890")))
}

func Test_Format_Compound_01(t *testing.T) {
	heap := NewHeap(64, 0)
	x, _ := heap.NewVar("X")
	anon, _ := heap.NewVar("_")
	c, _ := heap.NewCompound("+", Int(1), x)
	d, _ := heap.NewCompound("f", c, anon, String("s\"t"))
	//
	checkFormat(t, "f(+(1,X),_G1,\"s\\\"t\")", d)
}

func Test_Format_Compound_02(t *testing.T) {
	heap := NewHeap(64, 0)
	c, _ := heap.NewCompound(Curly, Atom("a"))
	d, _ := heap.NewCompound(Curly, Atom("a"), Atom("b"))
	e, _ := heap.NewCompound(Nil, Atom("a"))
	f, _ := heap.NewCompound(Comma, Atom("a"), Atom("b"))
	//
	checkFormat(t, "{a}", c)
	checkFormat(t, "'{}'(a,b)", d)
	checkFormat(t, "'[]'(a)", e)
	checkFormat(t, "','(a,b)", f)
}

func Test_Format_List_01(t *testing.T) {
	heap := NewHeap(64, 0)
	x, _ := heap.NewVar("T")
	l2, _ := heap.NewList(Int(2), x)
	l1, _ := heap.NewList(Int(1), l2)
	m, _ := heap.NewList(Atom("a"), Nil)
	//
	checkFormat(t, "[1,2|T]", l1)
	checkFormat(t, "[a]", m)
}

func checkFormat(t *testing.T, expected string, term Term) {
	t.Helper()
	assert.Equal(t, expected, Format(term))
}

func bigOf(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid big integer")
	}
	//
	return v
}
