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
package vars

import (
	"hash/fnv"
	"strings"

	"github.com/consensys/go-termreader/pkg/term"
)

// Anonymous is the spelling of the anonymous variable.  Every occurrence of
// it denotes a distinct variable.
const Anonymous = "_"

// Used to indicate a missing child in the tree.
const none = -1

// Entry records everything known about one variable spelling within a single
// read.
type Entry struct {
	name string
	hash uint64
	// Children in the lookup tree (or none)
	left, right int
	// Number of occurrences seen by the tokenizer
	refs uint
	// Term allocated on first use (or nil)
	term *term.Var
}

// Name returns the spelling of this variable.
func (p *Entry) Name() string {
	return p.name
}

// Refs returns the number of times this variable has been referenced in the
// current read.  This is always zero for anonymous variables.
func (p *Entry) Refs() uint {
	return p.refs
}

// Term returns the variable term bound to this entry, or nil if none has been
// allocated yet.
func (p *Entry) Term() *term.Var {
	return p.term
}

// Bind associates a freshly allocated variable term with this entry.  An
// entry can be bound at most once per read.
func (p *Entry) Bind(v *term.Var) {
	if p.term != nil {
		panic("variable entry already bound")
	}
	//
	p.term = v
}

// IsAnonymous checks whether this entry is for an occurrence of "_".
func (p *Entry) IsAnonymous() bool {
	return p.name == Anonymous
}

// Table interns the variable names encountered during one read.  Named
// variables are held in a binary search tree ordered first by the hash of their
// name and then by the name itself, so that the same spelling always maps onto
// the same entry.  Anonymous variables are kept apart in order of appearance.
// A table must be reset before each read.
type Table struct {
	// Named entries, linked by index into a tree rooted at index 0.
	named []*Entry
	// Anonymous entries in order of appearance.
	anon []*Entry
}

// NewTable constructs an empty variable table.
func NewTable() *Table {
	return &Table{}
}

// Reset forgets every variable, making the table ready for the next read.
func (p *Table) Reset() {
	p.named = p.named[:0]
	p.anon = p.anon[:0]
}

// Len returns the number of entries (named and anonymous) in this table.
func (p *Table) Len() uint {
	return uint(len(p.named) + len(p.anon))
}

// Lookup returns the entry for a given variable spelling, creating one if
// this is the first sighting.  Every lookup of a named variable counts as one
// reference.  Looking up "_" always creates a fresh entry.
func (p *Table) Lookup(name string) *Entry {
	if name == Anonymous {
		entry := &Entry{name, 0, none, none, 0, nil}
		p.anon = append(p.anon, entry)
		//
		return entry
	}
	//
	hash := hashOf(name)
	// Find the link to follow (or fill in)
	var link *int
	//
	for index := 0; index < len(p.named); {
		entry := p.named[index]
		//
		switch c := compare(hash, name, entry); {
		case c == 0:
			entry.refs++
			return entry
		case c < 0:
			link = &entry.left
		default:
			link = &entry.right
		}
		//
		if *link == none {
			break
		}
		//
		index = *link
	}
	//
	entry := &Entry{name, hash, none, none, 1, nil}
	//
	if link != nil {
		*link = len(p.named)
	}
	//
	p.named = append(p.named, entry)
	//
	return entry
}

// Named returns every named variable (i.e. other than "_") which has a bound
// term, along with that term.  Entries are returned in tree order.
func (p *Table) Named() []*Entry {
	return p.collect(func(e *Entry) bool { return e.term != nil })
}

// Singletons returns those named variables which occur exactly once, and
// whose name does not begin with an underscore.
func (p *Table) Singletons() []*Entry {
	return p.collect(func(e *Entry) bool {
		return e.refs == 1 && !strings.HasPrefix(e.name, "_")
	})
}

// All returns every entry in the table, named ones in tree order followed by
// the anonymous ones in order of appearance.
func (p *Table) All() []*Entry {
	entries := p.collect(func(*Entry) bool { return true })
	//
	return append(entries, p.anon...)
}

// Collect named entries satisfying a given predicate by in-order traversal.
func (p *Table) collect(include func(*Entry) bool) []*Entry {
	var (
		entries []*Entry
		stack   []int
		index   = none
	)
	//
	if len(p.named) > 0 {
		index = 0
	}
	// Iterative so that degenerate trees cannot exhaust the Go stack.
	for index != none || len(stack) > 0 {
		for index != none {
			stack = append(stack, index)
			index = p.named[index].left
		}
		//
		n := len(stack) - 1
		entry := p.named[stack[n]]
		stack = stack[:n]
		//
		if include(entry) {
			entries = append(entries, entry)
		}
		//
		index = entry.right
	}
	//
	return entries
}

func compare(hash uint64, name string, entry *Entry) int {
	switch {
	case hash < entry.hash:
		return -1
	case hash > entry.hash:
		return 1
	default:
		return strings.Compare(name, entry.name)
	}
}

func hashOf(name string) uint64 {
	hash := fnv.New64a()
	// Writing to an fnv hash never fails.
	_, _ = hash.Write([]byte(name))
	//
	return hash.Sum64()
}
