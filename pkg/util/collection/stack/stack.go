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
package stack

// Stack represents a reusable LIFO stack which is implemented using an array.
// A stack may optionally be bounded, in which case pushes beyond the bound are
// refused rather than growing the underlying array.
type Stack[T any] struct {
	items []T
	// Maximum number of items permitted (0 means unbounded).
	limit uint
}

// NewStack returns an empty (unbounded) stack
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// NewBoundedStack returns an empty stack which can hold at most limit items.
func NewBoundedStack[T any](limit uint) *Stack[T] {
	return &Stack[T]{make([]T, 0, min(limit, 1024)), limit}
}

// IsEmpty checks whether or not there are still items on the stack
func (p *Stack[T]) IsEmpty() bool {
	return p.Len() == 0
}

// Len returns the number of items on the stack.
func (p *Stack[T]) Len() uint {
	return uint(len(p.items))
}

// Limit returns the maximum number of items this stack can hold, or 0 if it is
// unbounded.
func (p *Stack[T]) Limit() uint {
	return p.limit
}

// Peek at nth item from top of stack.
func (p *Stack[T]) Peek(offset uint) T {
	var n = len(p.items) - int(offset) - 1
	//
	if n < 0 {
		panic("peek out-of-bounds")
	}
	// Get last item
	return p.items[n]
}

// Push a new item onto the stack.  This panics if the stack is bounded and
// already full.
func (p *Stack[T]) Push(item T) {
	if !p.TryPush(item) {
		panic("push onto full stack")
	}
}

// TryPush pushes a new item onto the stack, returning false (and leaving the
// stack unchanged) if the stack is bounded and already full.
func (p *Stack[T]) TryPush(item T) bool {
	if p.limit != 0 && uint(len(p.items)) >= p.limit {
		return false
	}
	//
	p.items = append(p.items, item)
	//
	return true
}

// Pop the last item off the stack
func (p *Stack[T]) Pop() T {
	var n = len(p.items)
	//
	if n == 0 {
		panic("cannot pop from empty stack")
	}
	// Get last item
	item := p.items[n-1]
	// Remove last item
	p.items = p.items[:n-1]
	// Done
	return item
}

// Above returns the items pushed since the stack had the given height, oldest
// first.  The returned slice aliases the stack and is only valid until the
// next push.
func (p *Stack[T]) Above(height uint) []T {
	if height > uint(len(p.items)) {
		panic("height out-of-bounds")
	}
	//
	return p.items[height:]
}

// Truncate discards all items above a given height.  This is used to release
// everything pushed since some earlier point, for example when backtracking.
func (p *Stack[T]) Truncate(height uint) {
	if height < uint(len(p.items)) {
		var empty T
		// Clear references so they can be collected
		for i := height; i < uint(len(p.items)); i++ {
			p.items[i] = empty
		}
		//
		p.items = p.items[:height]
	}
}

// Clear removes all items from the stack.
func (p *Stack[T]) Clear() {
	p.Truncate(0)
}
