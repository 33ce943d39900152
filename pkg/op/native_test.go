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

func Test_Native_Add_01(t *testing.T) {
	check_Native(t, "add", "5field", "2field", "3field")
	check_Native(t, "add", "300u16", "100u16", "200u16")
	check_Native(t, "add", "-1i8", "127i8", "-128i8")
}

// Checked addition halts on overflow, wrapped addition wraps.
func Test_Native_Add_02(t *testing.T) {
	check_NativeHalt(t, "add", "200u8", "100u8")
	check_Native(t, "add.w", "44u8", "200u8", "100u8")
	//
	check_NativeHalt(t, "add", "127i8", "1i8")
	check_Native(t, "add.w", "-128i8", "127i8", "1i8")
}

func Test_Native_Sub_01(t *testing.T) {
	check_Native(t, "sub", "2field", "5field", "3field")
	check_Native(t, "sub", "100u16", "300u16", "200u16")
	//
	check_NativeHalt(t, "sub", "0u8", "1u8")
	check_Native(t, "sub.w", "255u8", "0u8", "1u8")
	//
	check_NativeHalt(t, "sub", "-128i8", "1i8")
	check_Native(t, "sub.w", "127i8", "-128i8", "1i8")
}

func Test_Native_Mul_01(t *testing.T) {
	check_Native(t, "mul", "6field", "2field", "3field")
	check_Native(t, "mul", "200u8", "25u8", "8u8")
	//
	check_NativeHalt(t, "mul", "25u8", "11u8")
	check_Native(t, "mul.w", "19u8", "25u8", "11u8")
	//
	check_NativeHalt(t, "mul", "-128i8", "-1i8")
	check_Native(t, "mul.w", "-128i8", "-128i8", "-1i8")
}

// Integer division truncates towards zero and halts on zero divisors.
// Wrapped division only differs on MIN / -1.
func Test_Native_Div_01(t *testing.T) {
	check_Native(t, "div", "3u8", "7u8", "2u8")
	check_Native(t, "div", "-3i8", "-7i8", "2i8")
	check_Native(t, "div", "-3i8", "7i8", "-2i8")
	//
	check_NativeHalt(t, "div", "1u8", "0u8")
	check_NativeHalt(t, "div.w", "1u8", "0u8")
	//
	check_NativeHalt(t, "div", "-128i8", "-1i8")
	check_Native(t, "div.w", "-128i8", "-128i8", "-1i8")
}

// Field division is multiplication by the inverse.
func Test_Native_Div_02(t *testing.T) {
	check_Native(t, "div", "3field", "6field", "2field")
	check_NativeHalt(t, "div", "6field", "0field")
}

func Test_Native_Pow_01(t *testing.T) {
	check_Native(t, "pow", "8field", "2field", "3field")
	check_Native(t, "pow", "125u8", "5u8", "3u8")
	//
	check_NativeHalt(t, "pow", "2u8", "8u8")
	check_Native(t, "pow.w", "0u8", "2u8", "8u8")
	check_Native(t, "pow.w", "128u8", "6u8", "7u8")
}

// Checked shifts halt on magnitudes at or past the bit width; wrapped
// shifts mask the magnitude instead.
func Test_Native_Shift_01(t *testing.T) {
	check_Native(t, "shl", "8u8", "1u8", "3u8")
	check_Native(t, "shl", "254u8", "255u8", "1u8")
	check_Native(t, "shr", "2u8", "16u8", "3u8")
	check_Native(t, "shr", "-4i8", "-7i8", "1u8")
	//
	check_NativeHalt(t, "shl", "1u8", "8u8")
	check_NativeHalt(t, "shr", "1u8", "8u8")
	check_Native(t, "shl.w", "1u8", "1u8", "8u8")
	check_Native(t, "shr.w", "16u8", "16u8", "8u8")
}

func Test_Native_Abs_01(t *testing.T) {
	check_Native(t, "abs", "5i8", "-5i8")
	check_Native(t, "abs", "5i8", "5i8")
	//
	check_NativeHalt(t, "abs", "-128i8")
	check_Native(t, "abs.w", "-128i8", "-128i8")
}

func Test_Native_Neg_01(t *testing.T) {
	check_Native(t, "neg", "-5i8", "5i8")
	check_NativeHalt(t, "neg", "-128i8")
	//
	sum, err := run(t, "add", "1field", "neg:1field")
	require.NoError(t, err)
	sumField := sum.Field()
	require.True(t, sumField.IsZero())
}

func Test_Native_Square_01(t *testing.T) {
	check_Native(t, "square", "9field", "3field")
	check_Native(t, "double", "6field", "3field")
	//
	_, err := run(t, "inv", "0field")
	require.Error(t, err)
}

func Test_Native_Inv_01(t *testing.T) {
	inverse, err := run(t, "inv", "2field")
	require.NoError(t, err)
	//
	product, err := run(t, "mul", "2field", inverse.String())
	require.NoError(t, err)
	require.Equal(t, "1field", product.String())
}

func Test_Native_Sqrt_01(t *testing.T) {
	root, err := run(t, "sqrt", "9field")
	require.NoError(t, err)
	//
	squared, err := run(t, "square", root.String())
	require.NoError(t, err)
	require.Equal(t, "9field", squared.String())
}

func Test_Native_Compare_01(t *testing.T) {
	check_Native(t, "gt", "true", "3field", "2field")
	check_Native(t, "gt", "false", "2field", "2field")
	check_Native(t, "gte", "true", "2field", "2field")
	check_Native(t, "lt", "true", "-5i8", "3i8")
	check_Native(t, "lte", "false", "4u16", "3u16")
}

func Test_Native_Eq_01(t *testing.T) {
	check_Native(t, "is.eq", "true", "2field", "2field")
	check_Native(t, "is.neq", "true", "2field", "3field")
	check_Native(t, "is.eq", "false", "true", "false")
}

func Test_Native_Logic_01(t *testing.T) {
	check_Native(t, "and", "false", "true", "false")
	check_Native(t, "or", "true", "true", "false")
	check_Native(t, "xor", "true", "true", "false")
	check_Native(t, "nand", "true", "true", "false")
	check_Native(t, "nor", "false", "true", "false")
	check_Native(t, "not", "false", "true")
}

func Test_Native_Logic_02(t *testing.T) {
	check_Native(t, "and", "8u8", "12u8", "10u8")
	check_Native(t, "or", "14u8", "12u8", "10u8")
	check_Native(t, "xor", "6u8", "12u8", "10u8")
	check_Native(t, "not", "243u8", "12u8")
}

func Test_Native_Ternary_01(t *testing.T) {
	check_Native(t, "ternary", "2field", "true", "2field", "3field")
	check_Native(t, "ternary", "3field", "false", "2field", "3field")
}

// Signatures reject type mixtures the table does not carry.
func Test_Signature_01(t *testing.T) {
	operation, ok := Lookup("add")
	require.True(t, ok)
	//
	_, err := operation.SignatureFor([]console.LiteralType{console.FIELD, console.U8})
	require.Error(t, err)
	//
	_, err = operation.SignatureFor([]console.LiteralType{console.BOOLEAN, console.BOOLEAN})
	require.Error(t, err)
	//
	sig, err := operation.SignatureFor([]console.LiteralType{console.U8, console.U8})
	require.NoError(t, err)
	require.Equal(t, console.U8, sig.Output)
}

// Shifts take an unsigned magnitude alongside any integer operand.
func Test_Signature_02(t *testing.T) {
	operation, ok := Lookup("shl")
	require.True(t, ok)
	//
	sig, err := operation.SignatureFor([]console.LiteralType{console.I32, console.U8})
	require.NoError(t, err)
	require.Equal(t, console.I32, sig.Output)
}

func Test_Opcodes_01(t *testing.T) {
	require.True(t, IsOpcode("add"))
	require.True(t, IsOpcode("is.eq"))
	require.True(t, IsOpcode("call"))
	require.True(t, IsOpcode("cast"))
	require.False(t, IsOpcode("frobnicate"))
}

// ===================================================================
// Test Helpers
// ===================================================================

// run executes a native operation over parsed literal inputs.  An input of
// the form "neg:<literal>" is negated first, allowing negative field inputs.
func run(t *testing.T, opcode string, inputs ...string) (console.Literal, error) {
	operation, ok := Lookup(opcode)
	require.True(t, ok, "unknown opcode %s", opcode)
	//
	literals := make([]console.Literal, len(inputs))
	//
	for i, text := range inputs {
		negated := false
		//
		if len(text) > 4 && text[:4] == "neg:" {
			negated, text = true, text[4:]
		}
		//
		literal, err := console.ParseLiteral(text)
		require.NoError(t, err, "parsing %q", text)
		//
		if negated {
			neg, _ := Lookup("neg")
			literal, err = neg.Native(network.Testnet3(), []console.Literal{literal})
			require.NoError(t, err)
		}
		//
		literals[i] = literal
	}
	//
	return operation.Native(network.Testnet3(), literals)
}

func check_Native(t *testing.T, opcode string, expected string, inputs ...string) {
	actual, err := run(t, opcode, inputs...)
	require.NoError(t, err, "%s %v", opcode, inputs)
	//
	want, err := console.ParseLiteral(expected)
	require.NoError(t, err)
	require.True(t, want.Equal(&actual), "%s %v: expected %s, found %s", opcode, inputs, expected, actual.String())
}

func check_NativeHalt(t *testing.T, opcode string, inputs ...string) {
	_, err := run(t, opcode, inputs...)
	require.Error(t, err, "%s %v should halt", opcode, inputs)
	require.True(t, IsHalt(err), "%s %v should report a halt", opcode, inputs)
}
