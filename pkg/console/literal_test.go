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
package console

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Literal_01(t *testing.T) {
	check_Literal_RoundTrip(t, "true")
	check_Literal_RoundTrip(t, "false")
}

func Test_Literal_02(t *testing.T) {
	check_Literal_RoundTrip(t, "0field")
	check_Literal_RoundTrip(t, "1field")
	check_Literal_RoundTrip(t, "12345678field")
}

func Test_Literal_03(t *testing.T) {
	check_Literal_RoundTrip(t, "0u8")
	check_Literal_RoundTrip(t, "255u8")
	check_Literal_RoundTrip(t, "-128i8")
	check_Literal_RoundTrip(t, "127i8")
	check_Literal_RoundTrip(t, "-170141183460469231731687303715884105728i128")
	check_Literal_RoundTrip(t, "18446744073709551615u64")
}

func Test_Literal_04(t *testing.T) {
	check_Literal_RoundTrip(t, "0scalar")
	check_Literal_RoundTrip(t, "99scalar")
}

func Test_Literal_05(t *testing.T) {
	check_Literal_RoundTrip(t, "\"hello world\"")
}

// Out-of-range integers are rejected at construction.
func Test_Literal_06(t *testing.T) {
	_, err := ParseLiteral("256u8")
	require.Error(t, err)
	//
	_, err = ParseLiteral("-129i8")
	require.Error(t, err)
	//
	_, err = ParseLiteral("-1u16")
	require.Error(t, err)
}

func Test_Literal_07(t *testing.T) {
	_, err := ParseLiteral("5elephants")
	require.Error(t, err)
	//
	_, err = ParseLiteral("field")
	require.Error(t, err)
	//
	_, err = ParseLiteral("-")
	require.Error(t, err)
}

// Negative field literals reduce modulo the field order.
func Test_Literal_08(t *testing.T) {
	minusOne, err := ParseLiteral("-1field")
	require.NoError(t, err)
	//
	one, err := ParseLiteral("1field")
	require.NoError(t, err)
	//
	sum := one.Field()
	minus := minusOne.Field()
	sum.Add(&sum, &minus)
	//
	require.True(t, sum.IsZero())
}

// Addresses print and reparse through their bech32 form.
func Test_Literal_09(t *testing.T) {
	addr := NewAddress(GroupGenerator())
	//
	parsed, err := ParseAddress(addr.String())
	require.NoError(t, err)
	require.True(t, addr.Equal(parsed))
	//
	check_Literal_RoundTrip(t, addr.String())
}

// A mangled address fails its checksum.
func Test_Literal_10(t *testing.T) {
	s := []byte(NewAddress(GroupGenerator()).String())
	//
	if s[len(s)-1] != 'q' {
		s[len(s)-1] = 'q'
	} else {
		s[len(s)-1] = 'p'
	}
	//
	_, err := ParseAddress(string(s))
	require.Error(t, err)
}

// Group literals reparse through their x-coordinate form.
func Test_Literal_11(t *testing.T) {
	gen := NewGroup(GroupGenerator())
	//
	parsed, err := ParseLiteral(gen.String())
	require.NoError(t, err)
	require.True(t, gen.Equal(&parsed))
}

func Test_Literal_BinaryRoundTrip(t *testing.T) {
	texts := []string{
		"true", "42field", "7u8", "-3i16", "123scalar",
		"170141183460469231731687303715884105727i128",
	}
	//
	for _, text := range texts {
		literal, err := ParseLiteral(text)
		require.NoError(t, err)
		//
		var buf bytes.Buffer
		require.NoError(t, literal.WriteLE(&buf))
		//
		back, err := ReadLiteralLE(&buf)
		require.NoError(t, err)
		require.True(t, literal.Equal(&back), "binary round trip of %s", text)
	}
}

func Test_Integer_Range(t *testing.T) {
	require.True(t, IntegerInRange(U8, big.NewInt(255)))
	require.False(t, IntegerInRange(U8, big.NewInt(256)))
	require.True(t, IntegerInRange(I8, big.NewInt(-128)))
	require.False(t, IntegerInRange(I8, big.NewInt(128)))
}

// Wrapping follows two's complement semantics.
func Test_Integer_Wrap(t *testing.T) {
	require.Equal(t, int64(44), WrapInteger(U8, big.NewInt(300)).Int64())
	require.Equal(t, int64(-128), WrapInteger(I8, big.NewInt(128)).Int64())
	require.Equal(t, int64(127), WrapInteger(I8, big.NewInt(-129)).Int64())
}

func Test_Integer_UnsignedRepr(t *testing.T) {
	for _, v := range []int64{-128, -1, 0, 1, 127} {
		repr := ToUnsignedRepr(I8, big.NewInt(v))
		require.True(t, repr.Sign() >= 0)
		require.Equal(t, v, FromUnsignedRepr(I8, repr).Int64())
	}
}

func Test_Identifier_01(t *testing.T) {
	for _, name := range []string{"a", "token_id", "r0x", "balance2"} {
		_, err := NewIdentifier(name)
		require.NoError(t, err, "identifier %q", name)
	}
}

func Test_Identifier_02(t *testing.T) {
	invalid := []string{
		"", "0abc", "_abc", "ABC", "has-dash", "has.dot",
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
	}
	//
	for _, name := range invalid {
		_, err := NewIdentifier(name)
		require.Error(t, err, "identifier %q", name)
	}
}

func Test_ProgramID_01(t *testing.T) {
	pid, err := NewProgramID("token.aleo")
	require.NoError(t, err)
	require.Equal(t, "token.aleo", pid.String())
	//
	pid, err = NewProgramID("token")
	require.NoError(t, err)
	require.Equal(t, "token", pid.String())
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Literal_RoundTrip(t *testing.T, text string) {
	literal, err := ParseLiteral(text)
	require.NoError(t, err, "parsing %q", text)
	require.Equal(t, text, literal.String())
}
