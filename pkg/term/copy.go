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

// Copy makes a copy of a term which does not share any cells with the heap it
// was built on, so that it survives the heap being cleared.  Variables are
// shared with the original, hence the copy is Equal to it.
func Copy(t Term) Term {
	switch t := t.(type) {
	case *Compound:
		args := make([]Term, len(t.args))
		//
		for i, arg := range t.args {
			args[i] = Copy(arg)
		}
		//
		return &Compound{t.functor, args}
	case *List:
		var (
			head *List
			last *List
			rest Term = t
		)
		// Iterate along the spine so long lists do not recurse deeply.
		for l, ok := rest.(*List); ok; l, ok = rest.(*List) {
			cell := &List{[]Term{Copy(l.Head()), nil}}
			//
			if head == nil {
				head = cell
			} else {
				last.SetTail(cell)
			}
			//
			last, rest = cell, l.Tail()
		}
		//
		last.SetTail(Copy(rest))
		//
		return head
	default:
		// Atomic terms and variables are not held on the heap.
		return t
	}
}
