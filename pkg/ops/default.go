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

// The standard operator set, as found in most Prolog systems.  The comma is
// not declared here since it is built into the reader.
var standard = []struct {
	priority uint
	kind     Type
	names    []string
}{
	{1200, XFX, []string{":-", "-->"}},
	{1200, FX, []string{":-", "?-"}},
	{1150, FX, []string{"dynamic", "discontiguous", "initialization", "meta_predicate",
		"module_transparent", "multifile", "public", "thread_local", "table"}},
	{1100, XFY, []string{";", "|"}},
	{1050, XFY, []string{"->", "*->"}},
	{990, XFX, []string{":="}},
	{900, FY, []string{"\\+"}},
	{700, XFX, []string{"=", "\\=", "==", "\\==", "@<", "@>", "@=<", "@>=", "=..", "is",
		"=:=", "=\\=", "<", ">", "=<", ">=", ">:<", ":<", "as"}},
	{600, XFY, []string{":"}},
	{500, YFX, []string{"+", "-", "/\\", "\\/", "xor"}},
	{500, FX, []string{"?"}},
	{400, YFX, []string{"*", "/", "//", "rem", "mod", "div", "<<", ">>", "divmod", "rdiv"}},
	{200, XFX, []string{"**"}},
	{200, XFY, []string{"^"}},
	{200, FY, []string{"-", "+", "\\"}},
}

// Default constructs a table holding the standard operators, all visible
// from every module.
func Default() *Table {
	table := NewTable()
	//
	for _, group := range standard {
		for _, name := range group.names {
			if err := table.Declare(group.priority, group.kind, name, AnyModule); err != nil {
				panic(err)
			}
		}
	}
	//
	return table
}
