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
package op

import (
	"testing"

	"github.com/coinsccg/snarkVM/pkg/console"
	"github.com/coinsccg/snarkVM/pkg/network"
	"github.com/stretchr/testify/require"
)

func Test_Cast_01(t *testing.T) {
	check_Cast(t, "5u8", console.U16, "5u16")
	check_Cast(t, "5u16", console.U8, "5u8")
	check_Cast(t, "-5i8", console.I64, "-5i64")
	check_Cast(t, "255u8", console.I16, "255i16")
}

// Narrowing halts unless the value fits the target.
func Test_Cast_02(t *testing.T) {
	check_CastHalt(t, "256u16", console.U8)
	check_CastHalt(t, "128u8", console.I8)
	check_CastHalt(t, "-1i8", console.U8)
	check_Cast(t, "-128i16", console.I8, "-128i8")
}

func Test_Cast_03(t *testing.T) {
	check_Cast(t, "0u8", console.BOOLEAN, "false")
	check_Cast(t, "1u8", console.BOOLEAN, "true")
	check_CastHalt(t, "2u8", console.BOOLEAN)
	//
	check_Cast(t, "true", console.FIELD, "1field")
	check_Cast(t, "false", console.U32, "0u32")
}

func Test_Cast_04(t *testing.T) {
	check_Cast(t, "97u8", console.FIELD, "97field")
	check_Cast(t, "97u8", console.SCALAR, "97scalar")
	check_Cast(t, "97field", console.U8, "97u8")
	check_Cast(t, "97scalar", console.FIELD, "97field")
	//
	check_CastHalt(t, "-1i8", console.FIELD)
	check_CastHalt(t, "-1i8", console.SCALAR)
}

// Large field values do not fit small integers.
func Test_Cast_05(t *testing.T) {
	check_CastHalt(t, "70000field", console.U16)
	check_Cast(t, "70000field", console.U32, "70000u32")
}

// Group and address literals do not cast.
func Test_Cast_06(t *testing.T) {
	gen := console.NewGroup(console.GroupGenerator())
	//
	_, err := NativeCast(network.Testnet3(), gen, console.FIELD)
	require.Error(t, err)
}

// Identity casts pass anything through, group elements included.
func Test_Cast_07(t *testing.T) {
	gen := console.NewGroup(console.GroupGenerator())
	//
	out, err := NativeCast(network.Testnet3(), gen, console.GROUP)
	require.NoError(t, err)
	require.True(t, gen.Equal(&out))
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Cast(t *testing.T, input string, to console.LiteralType, expected string) {
	in, err := console.ParseLiteral(input)
	require.NoError(t, err)
	//
	out, err := NativeCast(network.Testnet3(), in, to)
	require.NoError(t, err, "cast %s as %s", input, to)
	require.Equal(t, expected, out.String())
}

func check_CastHalt(t *testing.T, input string, to console.LiteralType) {
	in, err := console.ParseLiteral(input)
	require.NoError(t, err)
	//
	_, err = NativeCast(network.Testnet3(), in, to)
	require.Error(t, err, "cast %s as %s should halt", input, to)
}
