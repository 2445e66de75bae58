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

import "math"

// Equal determines whether two terms are structurally identical, where
// variables are compared by identity.
func Equal(lhs Term, rhs Term) bool {
	return equal(lhs, rhs, func(l *Var, r *Var) bool { return l == r })
}

// Variant determines whether two terms are equal up to a consistent renaming
// of their variables.  That is, there is a bijection between the variables of
// lhs and those of rhs under which the terms are identical.
func Variant(lhs Term, rhs Term) bool {
	var (
		forward  = make(map[*Var]*Var)
		backward = make(map[*Var]*Var)
	)
	//
	return equal(lhs, rhs, func(l *Var, r *Var) bool {
		fl, fok := forward[l]
		bl, bok := backward[r]
		//
		if !fok && !bok {
			forward[l] = r
			backward[r] = l
			//
			return true
		}
		//
		return fl == r && bl == l
	})
}

func equal(lhs Term, rhs Term, vars func(*Var, *Var) bool) bool {
	switch l := lhs.(type) {
	case Atom, Int, String:
		return lhs == rhs
	case Float:
		r, ok := rhs.(Float)
		// Treat NaN as equal to itself so that written terms can be compared.
		return ok && (l == r || (math.IsNaN(float64(l)) && math.IsNaN(float64(r))))
	case *BigInt:
		r, ok := rhs.(*BigInt)
		return ok && l.value.Cmp(&r.value) == 0
	case *Var:
		r, ok := rhs.(*Var)
		return ok && vars(l, r)
	case *List:
		r, ok := rhs.(*List)
		return ok && equal(l.Head(), r.Head(), vars) && equal(l.Tail(), r.Tail(), vars)
	case *Compound:
		r, ok := rhs.(*Compound)
		//
		if !ok || l.functor != r.functor || len(l.args) != len(r.args) {
			return false
		}
		//
		for i := range l.args {
			if !equal(l.args[i], r.args[i], vars) {
				return false
			}
		}
		//
		return true
	}
	//
	return false
}
