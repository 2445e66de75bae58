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
package source

import (
	"testing"

	"github.com/consensys/go-termreader/pkg/util/assert"
)

func Test_Source_01(t *testing.T) {
	file := NewSourceFile("test.pl", []byte("a.\nfoo(X).\n"))
	line := file.FindFirstEnclosingLine(NewSpan(4, 7))
	//
	assert.Equal(t, 2, line.Number())
	assert.Equal(t, 3, line.Start())
	assert.Equal(t, "foo(X).", line.String())
}

func Test_Source_02(t *testing.T) {
	file := NewSourceFile("test.pl", []byte("a.\nb"))
	// Beyond the end is reported on the last line
	line := file.FindFirstEnclosingLine(NewSpan(4, 4))
	//
	assert.Equal(t, 2, line.Number())
	assert.Equal(t, "b", line.String())
}

func Test_Source_03(t *testing.T) {
	// Positions count characters, not bytes
	file := NewSourceFile("test.pl", []byte("'αβ' + x."))
	//
	assert.Equal(t, "'αβ'", file.Text(NewSpan(0, 4)))
	assert.Equal(t, "x", file.Text(NewSpan(7, 8)))
	assert.Equal(t, "", file.Text(NewSpan(20, 30)))
}

func Test_Source_04(t *testing.T) {
	file := NewSourceFile("test.pl", []byte("a.\nf(a b).\n"))
	err := file.SyntaxError(NewSpan(7, 8), "expected operator, got 'b'")
	//
	assert.Equal(t, "test.pl:2: expected operator, got 'b'", err.Error())
	line := err.FirstEnclosingLine()
	assert.Equal(t, 2, line.Number())
}

func Test_Span_01(t *testing.T) {
	a := NewSpan(0, 3)
	b := NewSpan(3, 4)
	//
	assert.Equal(t, 3, a.Length())
	assert.True(t, a.Adjacent(b))
	assert.False(t, b.Adjacent(a))
}
