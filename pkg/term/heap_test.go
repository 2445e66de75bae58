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
	"testing"

	"github.com/consensys/go-termreader/pkg/util/assert"
)

func Test_Heap_01(t *testing.T) {
	heap := NewHeap(16, 4)
	//
	c, ok := heap.NewCompound("f", Atom("a"), Int(1))
	assert.True(t, ok)
	assert.Equal(t, uint(3), heap.Top())
	assert.Equal(t, uint(2), c.Arity())
	assert.Equal(t, "f(a,1)", c.String())
}

func Test_Heap_02(t *testing.T) {
	heap := NewHeap(8, 4)
	// 4 cells available before the margin.
	_, ok := heap.NewCompound("f", Int(1), Int(2), Int(3))
	assert.True(t, ok)
	_, ok = heap.NewVar("X")
	assert.False(t, ok)
	assert.Equal(t, uint(4), heap.Top())
}

func Test_Heap_03(t *testing.T) {
	heap := NewHeap(16, 0)
	//
	mark := heap.Top()
	_, _ = heap.NewList(Int(1), Nil)
	_, _ = heap.NewVar("")
	assert.Equal(t, uint(3), heap.Top())
	heap.Reset(mark)
	assert.Equal(t, mark, heap.Top())
	assert.True(t, heap.Fits(16))
}

func Test_Heap_04(t *testing.T) {
	heap := NewHeap(16, 0)
	//
	x, _ := heap.NewVar("X")
	y, _ := heap.NewVar("")
	assert.Equal(t, uint(0), x.Id())
	assert.Equal(t, uint(1), y.Id())
	heap.Clear()
	z, _ := heap.NewVar("")
	assert.Equal(t, uint(0), z.Id())
}

func Test_Heap_05(t *testing.T) {
	heap := NewHeap(16, 0)
	// Build [1,2] top-down.
	first, _ := heap.NewList(Int(1), nil)
	second, _ := heap.NewList(Int(2), nil)
	first.SetTail(second)
	second.SetTail(Nil)
	//
	elems, rest := first.Elements()
	assert.Equal(t, 2, len(elems))
	assert.Equal(t, Term(Nil), rest)
	assert.Equal(t, "[1,2]", first.String())
}

func Test_Equal_01(t *testing.T) {
	heap := NewHeap(32, 0)
	x, _ := heap.NewVar("X")
	y, _ := heap.NewVar("Y")
	f1, _ := heap.NewCompound("f", x, Int(1))
	f2, _ := heap.NewCompound("f", x, Int(1))
	f3, _ := heap.NewCompound("f", y, Int(1))
	//
	assert.True(t, Equal(f1, f2))
	assert.False(t, Equal(f1, f3))
	assert.True(t, Variant(f1, f3))
}

func Test_Equal_02(t *testing.T) {
	heap := NewHeap(32, 0)
	x, _ := heap.NewVar("X")
	y, _ := heap.NewVar("Y")
	z, _ := heap.NewVar("Z")
	f1, _ := heap.NewCompound("f", x, x)
	f2, _ := heap.NewCompound("f", y, z)
	f3, _ := heap.NewCompound("f", z, z)
	// Renamings must be consistent in both directions.
	assert.False(t, Variant(f1, f2))
	assert.False(t, Variant(f2, f1))
	assert.True(t, Variant(f1, f3))
}

func Test_Equal_03(t *testing.T) {
	assert.False(t, Equal(Int(1), Float(1)))
	assert.False(t, Equal(Atom("a"), String("a")))
	assert.True(t, Equal(NewBigInt(bigOf("123456789012345678901234567890")),
		NewBigInt(bigOf("123456789012345678901234567890"))))
}

func Test_Copy_01(t *testing.T) {
	heap := NewHeap(64, 0)
	x, _ := heap.NewVar("X")
	l2, _ := heap.NewList(Int(2), x)
	l1, _ := heap.NewList(Int(1), l2)
	c, _ := heap.NewCompound("f", l1, x)
	//
	copied := Copy(c)
	heap.Clear()
	// Overwrite the cells of the original
	_, _ = heap.NewCompound("g", Atom("a"), Atom("b"), Atom("c"), Atom("d"), Atom("e"), Atom("f"), Atom("g"))
	//
	assert.Equal(t, "f([1,2|X],X)", copied.String())
}
