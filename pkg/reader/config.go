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
	"github.com/consensys/go-termreader/pkg/ops"
	"github.com/consensys/go-termreader/pkg/term"
)

// Config determines the resources available to a reader, and how it reads.
type Config struct {
	// Capacity of the output heap (in cells)
	HeapCells uint
	// Cells of the output heap which are held in reserve
	HeapMargin uint
	// Capacity of the trail used to collect arguments and list elements
	TrailCells uint
	// Priority at which clauses are read
	MaxPriority uint
	// Module whose operators are visible
	Module string
	// Bracketed suffixes (e.g. "t[i]") which are recognised when enabled by a
	// postfix operator declaration.
	Accessors []Accessor
}

// DefaultConfig returns a configuration suitable for reading ordinary source
// files.
func DefaultConfig() Config {
	return Config{
		HeapCells:   1 << 20,
		HeapMargin:  1024,
		TrailCells:  1 << 16,
		MaxPriority: ops.MaxPriority,
		Module:      "user",
		Accessors:   DefaultAccessors(),
	}
}

// Shape determines how an accessor arranges its target and arguments.
type Shape uint8

const (
	// TargetFirst gives op(t, a1, ..., an).
	TargetFirst Shape = iota
	// ArgumentList gives op([a1, ..., an], t).
	ArgumentList
)

// Accessor is a bracketed suffix immediately following a term, such as
// "t(a)" or "t[i]".  An accessor is only recognised where the postfix
// operator named after it is declared, in which case the bracket may not be
// preceded by layout.
type Accessor struct {
	Open  term.Atom
	Close term.Atom
	// Name of the enabling postfix operator, which is also the functor built
	Operator term.Atom
	Shape    Shape
}

// DefaultAccessors returns the standard accessors "()", "[]" and "{}".
func DefaultAccessors() []Accessor {
	return []Accessor{
		{"(", ")", "()", TargetFirst},
		{"[", "]", "[]", ArgumentList},
		{"{", "}", "{}", ArgumentList},
	}
}
