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
	"strings"
	"testing"

	"github.com/consensys/go-termreader/pkg/util/assert"
)

func Test_Type_01(t *testing.T) {
	checkBounds(t, XFX, 700, 699, 699)
	checkBounds(t, XFY, 1000, 999, 1000)
	checkBounds(t, YFX, 500, 500, 499)
	checkBounds(t, FY, 200, 0, 200)
	checkBounds(t, FX, 1150, 0, 1149)
	checkBounds(t, XF, 100, 99, 0)
	checkBounds(t, YF, 100, 100, 0)
}

func Test_Type_02(t *testing.T) {
	for _, name := range []string{"xfx", "xfy", "yfx", "fy", "fx", "xf", "yf"} {
		kind, err := ParseType(name)
		assert.Nil(t, err)
		assert.Equal(t, name, kind.String())
	}
	//
	_, err := ParseType("xyz")
	assert.NotNil(t, err)
}

func Test_Table_01(t *testing.T) {
	table := Default()
	//
	plus := table.LookupInfix("+", "user")
	assert.True(t, plus.HasValue())
	assert.Equal(t, InfixOp{500, 500, 499}, plus.Unwrap())
	//
	minus := table.LookupPrefix("-", "user")
	assert.True(t, minus.HasValue())
	assert.Equal(t, PrefixOp{200, 200}, minus.Unwrap())
	//
	assert.True(t, table.LookupPostfix("+", "user").IsEmpty())
	assert.True(t, table.LookupInfix("foo", "user").IsEmpty())
}

func Test_Table_02(t *testing.T) {
	table := NewTable()
	assert.Nil(t, table.Declare(700, XFX, "===", "m"))
	// Only visible from module m.
	assert.True(t, table.LookupInfix("===", "m").HasValue())
	assert.True(t, table.LookupInfix("===", "user").IsEmpty())
	assert.True(t, table.IsOp("===", "m"))
	assert.False(t, table.IsOp("===", "user"))
}

func Test_Table_03(t *testing.T) {
	table := Default()
	// Module declarations shadow global ones.
	assert.Nil(t, table.Declare(100, XFX, "+", "m"))
	assert.Equal(t, uint(100), table.LookupInfix("+", "m").Unwrap().Priority)
	assert.Equal(t, uint(500), table.LookupInfix("+", "user").Unwrap().Priority)
	// Removal
	assert.Nil(t, table.Declare(0, XFX, "+", AnyModule))
	assert.True(t, table.LookupInfix("+", "user").IsEmpty())
	assert.True(t, table.LookupPrefix("+", "user").HasValue())
}

func Test_Table_04(t *testing.T) {
	table := NewTable()
	//
	assert.NotNil(t, table.Declare(1201, XFX, "foo", AnyModule))
	assert.NotNil(t, table.Declare(100, XFX, ",", AnyModule))
	assert.NotNil(t, table.Declare(100, XFX, "|", AnyModule))
	assert.NotNil(t, table.Declare(1100, FY, "|", AnyModule))
	assert.NotNil(t, table.Declare(100, FY, "[]", AnyModule))
	assert.Nil(t, table.Declare(100, YF, "[]", AnyModule))
	assert.Equal(t, 1, len(table.Definitions()))
}

func Test_Table_05(t *testing.T) {
	table := NewTable()
	assert.Nil(t, table.Declare(200, XFY, "^", AnyModule))
	assert.Nil(t, table.Declare(700, XFX, "=", AnyModule))
	assert.Nil(t, table.Declare(700, XFX, "<", AnyModule))
	//
	defs := table.Definitions()
	assert.Equal(t, 3, len(defs))
	assert.Equal(t, "<", defs[0].Name)
	assert.Equal(t, "=", defs[1].Name)
	assert.Equal(t, "^", defs[2].Name)
	assert.Equal(t, "op(200, xfy, ^)", defs[2].String())
}

func Test_Load_01(t *testing.T) {
	table := NewTable()
	input := `
[[op]]
priority = 700
type = "xfx"
names = ["===", "=\\="]

[[op]]
priority = 100
type = "yf"
names = ["[]"]
module = "m"
`
	assert.Nil(t, Load(table, strings.NewReader(input)))
	assert.Equal(t, InfixOp{700, 699, 699}, table.LookupInfix("=\\=", "user").Unwrap())
	assert.True(t, table.LookupPostfix("[]", "m").HasValue())
	assert.True(t, table.LookupPostfix("[]", "user").IsEmpty())
}

func Test_Load_02(t *testing.T) {
	table := NewTable()
	// Second group is invalid, so nothing is declared.
	input := `
[[op]]
priority = 700
type = "xfx"
names = ["==="]

[[op]]
priority = 700
type = "xyz"
names = ["foo"]
`
	assert.NotNil(t, Load(table, strings.NewReader(input)))
	assert.Equal(t, 0, len(table.Definitions()))
}

func Test_Load_03(t *testing.T) {
	table := NewTable()
	input := `
[[op]]
priority = 700
kind = "xfx"
`
	assert.NotNil(t, Load(table, strings.NewReader(input)))
}

func checkBounds(t *testing.T, kind Type, priority uint, left uint, right uint) {
	t.Helper()
	//
	l, r := kind.Bounds(priority)
	assert.Equal(t, left, l)
	assert.Equal(t, right, r)
}
