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
package circuit

import (
	"fmt"
	"testing"

	"github.com/coinsccg/snarkVM/pkg/console"
	"github.com/stretchr/testify/require"
)

func Test_Flatten_01(t *testing.T) {
	check_Flatten(t, "true", 1)
	check_Flatten(t, "5field", 1)
	check_Flatten(t, "200u8", 1)
	check_Flatten(t, "99scalar", 1)
}

// Group and address values flatten to an (x, y) coordinate pair.
func Test_Flatten_02(t *testing.T) {
	gen := console.NewGroup(console.GroupGenerator())
	check_Flatten(t, gen.String(), 2)
	//
	addr := console.NewAddress(console.GroupGenerator())
	check_Flatten(t, addr.String(), 2)
}

func Test_Flatten_03(t *testing.T) {
	check_Flatten(t, "{ first: 2field, second: { inner: true } }", 2)
	//
	owner := console.NewAddress(console.GroupGenerator())
	text := fmt.Sprintf("{ owner: %s.private, amount: 100u64.private }", owner)
	check_Flatten(t, text, 3)
}

// Strings have no wire representation.
func Test_Flatten_04(t *testing.T) {
	value := console.NewPlaintextValue(
		console.NewLiteralPlaintext(console.NewString("hello")))
	//
	_, err := Flatten(value)
	require.Error(t, err)
	//
	_, err = WireCount(value)
	require.Error(t, err)
}

// Signed integers flatten to their unsigned two's complement repr.
func Test_Flatten_05(t *testing.T) {
	value := parse_Value(t, "-1i8")
	//
	elements, err := Flatten(value)
	require.NoError(t, err)
	require.Equal(t, int64(255), elements[0].Int64())
}

// Constant embedding mirrors the flatten layout wire for wire.
func Test_Constant_01(t *testing.T) {
	owner := console.NewAddress(console.GroupGenerator())
	text := fmt.Sprintf("{ owner: %s.private, amount: 100u64.private }", owner)
	value := parse_Value(t, text)
	//
	elements, err := Flatten(value)
	require.NoError(t, err)
	//
	wires, err := Wires(Constant(value))
	require.NoError(t, err)
	require.Len(t, wires, len(elements))
}

func Test_Constant_02(t *testing.T) {
	value := parse_Value(t, "{ first: 2field, second: 3field }")
	constant := Constant(value)
	//
	first, err := constant.Find([]console.Identifier{"first"})
	require.NoError(t, err)
	firstLit := first.Literal()
	require.Equal(t, console.FIELD, firstLit.Type())
}

// ===================================================================
// Test Helpers
// ===================================================================

func parse_Value(t *testing.T, text string) console.Value {
	value, err := console.ParseValue(text)
	require.NoError(t, err, "parsing %q", text)
	//
	return value
}

func check_Flatten(t *testing.T, text string, wires int) {
	value := parse_Value(t, text)
	//
	elements, err := Flatten(value)
	require.NoError(t, err, "flattening %s", text)
	require.Len(t, elements, wires)
	//
	count, err := WireCount(value)
	require.NoError(t, err)
	require.Equal(t, wires, count)
}
