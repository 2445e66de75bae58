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
package ops

import "fmt"

// MaxPriority is the largest priority an operator (or term) can have.
const MaxPriority = 1200

// Fixity determines where an operator sits relative to its operands.
type Fixity uint8

const (
	// Prefix operators precede their single operand.
	Prefix Fixity = iota
	// Infix operators sit between their two operands.
	Infix
	// Postfix operators follow their single operand.
	Postfix
)

func (f Fixity) String() string {
	switch f {
	case Prefix:
		return "prefix"
	case Infix:
		return "infix"
	case Postfix:
		return "postfix"
	}
	//
	return fmt.Sprintf("fixity(%d)", uint8(f))
}

// Type is an associativity class, such as "xfy".  The position of "f" gives
// the fixity, whilst "y" marks an operand which may have the same priority as
// the operator itself, and "x" one which must be strictly lower.
type Type uint8

// The associativity classes.
const (
	XFX Type = iota
	XFY
	YFX
	FY
	FX
	XF
	YF
)

var typeNames = []string{"xfx", "xfy", "yfx", "fy", "fx", "xf", "yf"}

// ParseType parses the name of an associativity class.
func ParseType(name string) (Type, error) {
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	//
	return 0, fmt.Errorf("unknown operator type \"%s\"", name)
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	//
	return fmt.Sprintf("type(%d)", uint8(t))
}

// Fixity returns the fixity of operators of this type.
func (t Type) Fixity() Fixity {
	switch t {
	case FY, FX:
		return Prefix
	case XF, YF:
		return Postfix
	default:
		return Infix
	}
}

// Bounds returns the maximum priorities permitted for the left and right
// operands of an operator with this type and a given (non-zero) priority.  A
// prefix operator has no left operand, and a postfix operator no right
// operand; the corresponding bound is zero.
func (t Type) Bounds(priority uint) (left uint, right uint) {
	switch t {
	case XFX:
		return priority - 1, priority - 1
	case XFY:
		return priority - 1, priority
	case YFX:
		return priority, priority - 1
	case FY:
		return 0, priority
	case FX:
		return 0, priority - 1
	case XF:
		return priority - 1, 0
	case YF:
		return priority, 0
	}
	//
	panic(fmt.Sprintf("unknown operator type %d", uint8(t)))
}

// PrefixOp describes a prefix operator as seen by the reader.
type PrefixOp struct {
	Priority uint
	// Maximum priority of the operand
	Arg uint
}

// InfixOp describes an infix operator as seen by the reader.
type InfixOp struct {
	Priority uint
	// Maximum priority of the left operand
	Left uint
	// Maximum priority of the right operand
	Right uint
}

// PostfixOp describes a postfix operator as seen by the reader.
type PostfixOp struct {
	Priority uint
	// Maximum priority of the operand
	Left uint
}
