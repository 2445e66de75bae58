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

// Heap is a bounded, bump-allocated region of cells on which terms are built.
// A compound occupies one cell for its functor followed by one cell per
// argument, a list cell occupies two cells and a variable occupies one.
// Allocation always leaves a fixed reserve (the margin) free at the top of the
// heap, and fails rather than eating into it.  Resetting the top of the heap
// discards everything allocated since, which is how speculative parses are
// undone.
type Heap struct {
	cells []Term
	// Index of the first free cell.
	top uint
	// Number of cells which must remain free after any allocation.
	margin uint
	// Number of variables allocated since the heap was last cleared.
	vars uint
}

// NewHeap constructs a heap with a given capacity (in cells) and margin.
func NewHeap(capacity uint, margin uint) *Heap {
	if margin > capacity {
		panic("heap margin exceeds capacity")
	}
	//
	return &Heap{make([]Term, capacity), 0, margin, 0}
}

// Capacity returns the total number of cells in this heap.
func (p *Heap) Capacity() uint {
	return uint(len(p.cells))
}

// Margin returns the number of cells held in reserve.
func (p *Heap) Margin() uint {
	return p.margin
}

// Top returns the high-water mark of this heap, i.e. the index of the first
// free cell.
func (p *Heap) Top() uint {
	return p.top
}

// Fits checks whether n more cells can be allocated without violating the
// margin.
func (p *Heap) Fits(n uint) bool {
	return p.top+n+p.margin <= uint(len(p.cells))
}

// Reset moves the high-water mark back to an earlier position, releasing all
// cells allocated since.
func (p *Heap) Reset(mark uint) {
	if mark > p.top {
		panic("heap reset beyond top")
	}
	// Drop references so the collector can reclaim discarded terms.
	clear(p.cells[mark:p.top])
	//
	p.top = mark
}

// Clear releases every cell on this heap, making it ready for the next read.
func (p *Heap) Clear() {
	p.Reset(0)
	p.vars = 0
}

// NewCompound allocates a compound with the given functor and arguments.  The
// arguments are copied onto the heap.  If the heap cannot accommodate the
// compound, false is returned and nothing is allocated.
func (p *Heap) NewCompound(functor Atom, args ...Term) (*Compound, bool) {
	var n = uint(len(args))
	//
	if n == 0 {
		panic("compound requires at least one argument")
	} else if !p.Fits(n + 1) {
		return nil, false
	}
	//
	start := p.top + 1
	end := start + n
	p.cells[p.top] = functor
	copy(p.cells[start:end], args)
	p.top = end
	//
	return &Compound{functor, p.cells[start:end:end]}, true
}

// NewList allocates a list cell with a given head and tail.  The tail may be
// nil, in which case it must be filled in later with SetTail.
func (p *Heap) NewList(head Term, tail Term) (*List, bool) {
	if !p.Fits(2) {
		return nil, false
	}
	//
	cell := p.cells[p.top : p.top+2 : p.top+2]
	cell[0], cell[1] = head, tail
	p.top += 2
	//
	return &List{cell}, true
}

// NewVar allocates a fresh variable with a given (possibly empty) source name.
func (p *Heap) NewVar(name string) (*Var, bool) {
	if !p.Fits(1) {
		return nil, false
	}
	//
	v := &Var{p.vars, name}
	p.cells[p.top] = v
	p.top++
	p.vars++
	//
	return v, true
}
