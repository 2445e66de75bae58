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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

// File is the contents of an operator file, which looks like this:
//
//	[[op]]
//	priority = 700
//	type = "xfx"
//	names = ["===", "=\\="]
//	module = "user"
//
// The module is optional, and an omitted one means the operators are visible
// from every module.  A priority of zero removes existing declarations.
type File struct {
	Ops []Declaration `toml:"op"`
}

// Declaration is one group of operators in an operator file.
type Declaration struct {
	Priority uint     `toml:"priority"`
	Type     string   `toml:"type"`
	Names    []string `toml:"names"`
	Module   string   `toml:"module"`
}

// LoadFile reads an operator file and declares its operators in the given
// table.
func LoadFile(table *Table, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	//
	defer f.Close()
	//
	if err = Load(table, f); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	//
	return nil
}

// Load reads operator declarations in TOML form and declares them in the given
// table.  Either every declaration is applied, or (on error) none is.
func Load(table *Table, reader io.Reader) error {
	var file File
	//
	md, err := toml.NewDecoder(reader).Decode(&file)
	if err != nil {
		return err
	} else if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		//
		return fmt.Errorf("unknown keys %s", strings.Join(keys, ", "))
	}
	// Check everything before declaring anything.
	var defs []Definition
	//
	for i, decl := range file.Ops {
		kind, err := ParseType(decl.Type)
		if err != nil {
			return fmt.Errorf("op #%d: %w", i+1, err)
		}
		//
		for _, name := range decl.Names {
			if err := validate(decl.Priority, kind, name); err != nil {
				return fmt.Errorf("op #%d: %w", i+1, err)
			}
			//
			defs = append(defs, Definition{name, decl.Module, decl.Priority, kind})
		}
	}
	//
	for _, d := range defs {
		if err := table.Declare(d.Priority, d.Type, d.Name, d.Module); err != nil {
			return err
		}
	}
	//
	log.Debugf("loaded %d operator declarations", len(defs))
	//
	return nil
}
