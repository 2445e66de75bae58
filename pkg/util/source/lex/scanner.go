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
package lex

import (
	"cmp"
	"slices"
)

// Scanner is a function which accepts a given item or not.  It returns the
// number of items consumed from the start of the given slice, where 0 means it
// did not match.
type Scanner[T any] func(item []T) uint

// And combines zero or more scanners such that the resulting scanner succeeds if
// all of the scanners succeed.  Observe, however, that there is an implicit
// left-to-right order of evaluation.
func And[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := uint(0)

		for _, scanner := range scanners {
			m := scanner(items)
			if m == 0 {
				// fail
				return 0
			}
			//
			n = max(n, m)
		}
		//
		return n
	}
}

// Or combines zero or more scanners such that the resulting scanner succeeds if
// any of the scanners succeeds.  Observe, however, that there is an implicit
// left-to-right order of evaluation.
func Or[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n > 0 {
				return n
			}
		}
		// fail
		return 0
	}
}

// Unit accepts a given sequence of characters.  That is, for this scanner to
// match, it must match all the given characters (one after the other) in their
// given order.
func Unit[T comparable](chars ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) >= len(chars) {
			for i := 0; i < len(chars); i++ {
				if items[i] != chars[i] {
					// fail
					return 0
				}
			}
			// success
			return uint(len(chars))
		}
		// fail
		return 0
	}
}

// OneOf accepts exactly one item, provided it is one of the given items.
func OneOf[T comparable](chars ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) != 0 && slices.Contains(chars, items[0]) {
			return 1
		}
		// fail
		return 0
	}
}

// Not accepts exactly one item, provided it is none of the given items.
func Not[T comparable](chars ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) != 0 && !slices.Contains(chars, items[0]) {
			return 1
		}
		// fail
		return 0
	}
}

// Any accepts exactly one item, whatever it is.
func Any[T any]() Scanner[T] {
	return func(items []T) uint {
		if len(items) != 0 {
			return 1
		}
		// fail
		return 0
	}
}

// Within accepts any character within a given range.
func Within[T cmp.Ordered](lowest T, highest T) Scanner[T] {
	return func(items []T) uint {
		if len(items) != 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}
		// fail
		return 0
	}
}

// Where accepts exactly one item which satisfies a given predicate.
func Where[T any](predicate func(T) bool) Scanner[T] {
	return func(items []T) uint {
		if len(items) != 0 && predicate(items[0]) {
			return 1
		}
		// fail
		return 0
	}
}

// Many matches zero or more of a given item.
func Many[T any](acceptor Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		index := uint(0)
		//
		for index < uint(len(items)) {
			if n := acceptor(items[index:]); n != 0 {
				index += n
				continue
			}
			//
			break
		}
		// done
		return index
	}
}

// Until matches everything until a particular item is matched.
func Until[T comparable](item T) Scanner[T] {
	return func(items []T) uint {
		index := uint(0)
		//
		for index < uint(len(items)) {
			if items[index] == item {
				break
			}
			// continue match
			index = index + 1
		}
		// done
		return index
	}
}

// Eof matches the end of the input stream.
func Eof[T any]() Scanner[T] {
	return func(items []T) uint {
		if len(items) == 0 {
			return 1
		}
		//
		return 0
	}
}

// Sequence matches all the scanners in order.
// Each scanner consumes the input right after the previous one ends.
func Sequence[T comparable](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := uint(0)
		for _, scanner := range scanners {
			if n == uint(len(items)) {
				return 0
			}

			m := scanner(items[n:])
			if m == 0 {
				return 0
			}

			n += m
		}

		return n
	}
}

// FollowedBy matches whatever the first scanner matches, provided the items
// immediately afterwards are accepted by the lookahead scanner.  The lookahead
// itself is not consumed.  Reaching the end of the input counts as a match for
// the lookahead when atEnd holds.
func FollowedBy[T any](scanner Scanner[T], lookahead Scanner[T], atEnd bool) Scanner[T] {
	return func(items []T) uint {
		n := scanner(items)
		//
		switch {
		case n == 0:
			return 0
		case n == uint(len(items)):
			if atEnd {
				return n
			}
			//
			return 0
		case lookahead(items[n:]) == 0:
			return 0
		}
		//
		return n
	}
}

// Delimited matches a run of items opening and closing with the same
// delimiter.  Inside the run, a doubled delimiter stands for itself, and
// wherever the escape scanner matches, the items it covers are skipped whole.
// If the closing delimiter is missing, nothing is matched.
func Delimited[T comparable](delim T, escape Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		if len(items) == 0 || items[0] != delim {
			return 0
		}
		//
		for i := 1; i < len(items); i++ {
			if n := escape(items[i:]); n > 0 {
				i += int(n) - 1
				continue
			} else if items[i] != delim {
				continue
			} else if i+1 < len(items) && items[i+1] == delim {
				i++
				continue
			}
			//
			return uint(i + 1)
		}
		// unterminated
		return 0
	}
}
