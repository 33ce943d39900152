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
package program

import (
	"bytes"
	"testing"

	"github.com/coinsccg/snarkVM/pkg/network"
	"github.com/coinsccg/snarkVM/pkg/util/source"
	"github.com/stretchr/testify/require"
)

func Test_Parse_01(t *testing.T) {
	prog := check_Parse_Valid(t, `
program token.aleo;

function compute:
    input r0 as field.public;
    input r1 as field.private;
    add r0 r1 into r2;
    output r2 as field.private;
`)
	//
	require.Equal(t, "token.aleo", prog.ID().String())
	require.Equal(t, []string{"compute"}, identifierNames(prog.Functions()))
}

func Test_Parse_02(t *testing.T) {
	check_Parse_Valid(t, `
import credits.aleo;

program token.aleo;

interface pair:
    first as field;
    second as field;

record token:
    owner as address.private;
    amount as u64.private;

closure adder:
    input r0 as field;
    input r1 as field;
    add r0 r1 into r2;
    output r2 as field;

function compute:
    input r0 as field.public;
    input r1 as field.private;
    call adder r0 r1 into r2;
    output r2 as field.private;
`)
}

// Comments lex away before parsing.
func Test_Parse_03(t *testing.T) {
	check_Parse_Valid(t, `
// leading comment
program token.aleo;

/* a block
   comment */
function compute:
    input r0 as u8.public;
    add r0 1u8 into r1; // trailing comment
    output r1 as u8.private;
`)
}

func Test_Parse_04(t *testing.T) {
	check_Parse_Valid(t, `
program token.aleo;

interface pair:
    first as field;
    second as field;

function main:
    input r0 as pair.private;
    add r0.first r0.second into r1;
    output r1 as field.private;
`)
}

func Test_Parse_Cast_01(t *testing.T) {
	check_Parse_Valid(t, `
program token.aleo;

record token:
    owner as address.private;
    amount as u64.private;

function mint:
    input r0 as address.private;
    input r1 as u64.private;
    cast r0 r1 into r2 as token.record;
    output r2 as token.record;
`)
}

func Test_Parse_Invalid_01(t *testing.T) {
	// Missing program declaration
	check_Parse_Invalid(t, `
function compute:
    input r0 as field.private;
    output r0 as field.private;
`)
	// Missing semicolon
	check_Parse_Invalid(t, `
program token.aleo;

function compute:
    input r0 as field.private
    output r0 as field.private;
`)
}

// Declaration names may not shadow keywords or opcodes.
func Test_Parse_Invalid_02(t *testing.T) {
	check_Parse_Invalid(t, `
program token.aleo;

interface record:
    first as field;
`)
	//
	check_Parse_Invalid(t, `
program token.aleo;

closure add:
    input r0 as field;
    output r0 as field;
`)
}

// Registers must be assigned in allocation order.
func Test_Parse_Invalid_03(t *testing.T) {
	check_Parse_Invalid(t, `
program token.aleo;

function compute:
    input r0 as field.private;
    add r0 r0 into r5;
    output r5 as field.private;
`)
}

// Operand types must agree with a registered signature.
func Test_Parse_Invalid_04(t *testing.T) {
	check_Parse_Invalid(t, `
program token.aleo;

function compute:
    input r0 as field.private;
    input r1 as u8.private;
    add r0 r1 into r2;
    output r2 as field.private;
`)
}

// Declared output types must match the produced types.
func Test_Parse_Invalid_05(t *testing.T) {
	check_Parse_Invalid(t, `
program token.aleo;

function compute:
    input r0 as field.private;
    output r0 as u8.private;
`)
}

// Calls resolve only against earlier declarations.
func Test_Parse_Invalid_06(t *testing.T) {
	check_Parse_Invalid(t, `
program token.aleo;

function compute:
    input r0 as field.private;
    call adder r0 r0 into r1;
    output r1 as field.private;

closure adder:
    input r0 as field;
    input r1 as field;
    add r0 r1 into r2;
    output r2 as field;
`)
}

// Interface members must reference defined types.
func Test_Parse_Invalid_07(t *testing.T) {
	check_Parse_Invalid(t, `
program token.aleo;

interface pair:
    first as missing;
    second as field;
`)
}

// Records must lead with an address owner.
func Test_Parse_Invalid_08(t *testing.T) {
	check_Parse_Invalid(t, `
program token.aleo;

record token:
    amount as u64.private;
    owner as address.private;
`)
}

func Test_Parse_Invalid_09(t *testing.T) {
	// Unterminated block comment
	check_Parse_Invalid(t, `
program token.aleo;

/* unterminated
`)
}

func Test_Program_StringRoundTrip(t *testing.T) {
	prog := check_Parse_Valid(t, `
import credits.aleo;

program token.aleo;

interface pair:
    first as field;
    second as field;

record token:
    owner as address.private;
    amount as u64.private;

closure adder:
    input r0 as field;
    input r1 as field;
    add r0 r1 into r2;
    output r2 as field;

function compute:
    input r0 as pair.public;
    input r1 as field.private;
    add r0.first r0.second into r2;
    call adder r1 r2 into r3;
    output r3 as field.private;
`)
	//
	text := prog.String()
	back := check_Parse_Valid(t, text)
	require.Equal(t, text, back.String())
}

func Test_Program_BinaryRoundTrip(t *testing.T) {
	prog := check_Parse_Valid(t, `
program token.aleo;

record token:
    owner as address.private;
    amount as u64.private;

function mint:
    input r0 as address.private;
    input r1 as u64.private;
    cast r0 r1 into r2 as token.record;
    output r2 as token.record;
`)
	//
	var buf bytes.Buffer
	require.NoError(t, prog.WriteLE(&buf))
	//
	back, err := ReadProgramLE(&buf, network.Testnet3())
	require.NoError(t, err)
	require.Equal(t, prog.String(), back.String())
}

// A truncated binary stream fails rather than yielding a partial program.
func Test_Program_BinaryTruncated(t *testing.T) {
	prog := check_Parse_Valid(t, `
program token.aleo;

function compute:
    input r0 as field.private;
    output r0 as field.private;
`)
	//
	var buf bytes.Buffer
	require.NoError(t, prog.WriteLE(&buf))
	//
	data := buf.Bytes()
	_, err := ReadProgramLE(bytes.NewReader(data[:len(data)-1]), network.Testnet3())
	require.Error(t, err)
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Parse_Valid(t *testing.T, text string) *Program {
	srcfile := source.NewSourceFile("test.avm", []byte(text))
	//
	prog, errs := ParseProgram(*srcfile, network.Testnet3())
	//
	for _, err := range errs {
		t.Errorf("unexpected error: %s", err.Message())
	}
	//
	require.NotNil(t, prog)
	//
	return prog
}

func check_Parse_Invalid(t *testing.T, text string) {
	srcfile := source.NewSourceFile("test.avm", []byte(text))
	//
	_, errs := ParseProgram(*srcfile, network.Testnet3())
	require.NotEmpty(t, errs, "program should be rejected:\n%s", text)
}

func identifierNames[T ~string](ids []T) []string {
	names := make([]string, len(ids))
	//
	for i, id := range ids {
		names[i] = string(id)
	}
	//
	return names
}
