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

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/consensys/go-termreader/pkg/util"
	log "github.com/sirupsen/logrus"
)

// AnyModule is the module of operators which are visible from every module.
const AnyModule = ""

// Definition is a single operator declaration.
type Definition struct {
	Name     string
	Module   string
	Priority uint
	Type     Type
}

func (d Definition) String() string {
	if d.Module == AnyModule {
		return fmt.Sprintf("op(%d, %s, %s)", d.Priority, d.Type, d.Name)
	}
	//
	return fmt.Sprintf("op(%d, %s, %s:%s)", d.Priority, d.Type, d.Module, d.Name)
}

type key struct {
	name   string
	fixity Fixity
	module string
}

// Table is an operator table shared between readers.  Declarations may be
// added or removed at any time, including whilst other goroutines are reading
// terms; each lookup holds a read lock only for its own duration.
type Table struct {
	defs map[key]Definition
	// mutex required to ensure thread safety.
	mux sync.RWMutex
}

// NewTable constructs an empty operator table.
func NewTable() *Table {
	return &Table{defs: make(map[key]Definition)}
}

// Declare adds, replaces or (when priority is 0) removes an operator
// declaration, as op/3 does.  Module-specific declarations take precedence
// over those for AnyModule.
func (p *Table) Declare(priority uint, kind Type, name string, module string) error {
	if err := validate(priority, kind, name); err != nil {
		return err
	}
	//
	k := key{name, kind.Fixity(), module}
	//
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	if priority == 0 {
		delete(p.defs, k)
	} else {
		p.defs[k] = Definition{name, module, priority, kind}
	}
	//
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("declared op(%d, %s, %s) in module \"%s\"", priority, kind, name, module)
	}
	//
	return nil
}

func validate(priority uint, kind Type, name string) error {
	switch {
	case priority > MaxPriority:
		return fmt.Errorf("operator priority %d out of range", priority)
	case kind > YF:
		return fmt.Errorf("unknown operator type %d", uint8(kind))
	case name == ",":
		return errors.New("cannot modify operator ','")
	case name == "|" && priority != 0 && (kind.Fixity() != Infix || priority < 1001):
		return errors.New("operator '|' must be infix with priority above 1000")
	case name == "[]" || name == "{}" || name == "()":
		if priority != 0 && kind.Fixity() != Postfix {
			return fmt.Errorf("operator '%s' can only be declared postfix", name)
		}
	}
	//
	return nil
}

// LookupPrefix returns the prefix operator declared with the given name and
// visible from the given module, if there is one.
func (p *Table) LookupPrefix(name string, module string) util.Option[PrefixOp] {
	if def, ok := p.lookup(name, Prefix, module); ok {
		_, arg := def.Type.Bounds(def.Priority)
		return util.Some(PrefixOp{def.Priority, arg})
	}
	//
	return util.None[PrefixOp]()
}

// LookupInfix returns the infix operator declared with the given name and
// visible from the given module, if there is one.
func (p *Table) LookupInfix(name string, module string) util.Option[InfixOp] {
	if def, ok := p.lookup(name, Infix, module); ok {
		left, right := def.Type.Bounds(def.Priority)
		return util.Some(InfixOp{def.Priority, left, right})
	}
	//
	return util.None[InfixOp]()
}

// LookupPostfix returns the postfix operator declared with the given name and
// visible from the given module, if there is one.
func (p *Table) LookupPostfix(name string, module string) util.Option[PostfixOp] {
	if def, ok := p.lookup(name, Postfix, module); ok {
		left, _ := def.Type.Bounds(def.Priority)
		return util.Some(PostfixOp{def.Priority, left})
	}
	//
	return util.None[PostfixOp]()
}

// IsOp checks whether a name is declared as an operator of any fixity visible
// from the given module.
func (p *Table) IsOp(name string, module string) bool {
	for _, f := range []Fixity{Prefix, Infix, Postfix} {
		if _, ok := p.lookup(name, f, module); ok {
			return true
		}
	}
	//
	return false
}

func (p *Table) lookup(name string, fixity Fixity, module string) (Definition, bool) {
	p.mux.RLock()
	defer p.mux.RUnlock()
	//
	if def, ok := p.defs[key{name, fixity, module}]; ok {
		return def, true
	}
	//
	def, ok := p.defs[key{name, fixity, AnyModule}]
	//
	return def, ok
}

// Definitions returns a snapshot of every declaration in this table, ordered
// by decreasing priority and then by name.
func (p *Table) Definitions() []Definition {
	p.mux.RLock()
	defs := make([]Definition, 0, len(p.defs))
	//
	for _, d := range p.defs {
		defs = append(defs, d)
	}
	p.mux.RUnlock()
	//
	sort.Slice(defs, func(i, j int) bool {
		l, r := defs[i], defs[j]
		//
		switch {
		case l.Priority != r.Priority:
			return l.Priority > r.Priority
		case l.Name != r.Name:
			return l.Name < r.Name
		case l.Type != r.Type:
			return l.Type < r.Type
		default:
			return l.Module < r.Module
		}
	})
	//
	return defs
}
