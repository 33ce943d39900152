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
package snark

import (
	"testing"

	"github.com/coinsccg/snarkVM/pkg/console"
	"github.com/coinsccg/snarkVM/pkg/network"
	"github.com/coinsccg/snarkVM/pkg/program"
	"github.com/coinsccg/snarkVM/pkg/stack"
	"github.com/coinsccg/snarkVM/pkg/util/source"
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"
)

// The circuit of a function execution is satisfied by the wires of a
// faithful native evaluation.
func Test_Circuit_01(t *testing.T) {
	stk := build_Stack(t, `
program token.aleo;

function compute:
    input r0 as field.public;
    input r1 as field.private;
    add r0 r1 into r2;
    output r2 as field.public;
`)
	//
	check_Circuit_Solved(t, stk, "compute", "2field", "3field")
}

// Tampering with a public output wire leaves the circuit unsatisfied.
func Test_Circuit_02(t *testing.T) {
	stk := build_Stack(t, `
program token.aleo;

function compute:
    input r0 as field.public;
    input r1 as field.private;
    add r0 r1 into r2;
    output r2 as field.public;
`)
	//
	inputs := parse_Values(t, "2field", "3field")
	outputs, err := stk.Evaluate("compute", inputs)
	require.NoError(t, err)
	//
	placeholder, err := newCircuit(stk, "compute", inputs)
	require.NoError(t, err)
	//
	assignment, err := newCircuit(stk, "compute", inputs)
	require.NoError(t, err)
	require.NoError(t, assignment.assign(inputs, outputs))
	// Corrupt the output wire
	assignment.Public[len(assignment.Public)-1] = 6
	//
	err = test.IsSolved(placeholder, assignment, ecc.BLS12_377.ScalarField())
	require.Error(t, err)
}

// A halting input assignment leaves the constraints unsatisfiable: the u8
// addition range check fails on an overflowing witness.
func Test_Circuit_03(t *testing.T) {
	stk := build_Stack(t, `
program token.aleo;

function compute:
    input r0 as u8.private;
    input r1 as u8.private;
    add r0 r1 into r2;
    output r2 as u8.private;
`)
	//
	small := parse_Values(t, "1u8", "2u8")
	//
	placeholder, err := newCircuit(stk, "compute", small)
	require.NoError(t, err)
	//
	assignment, err := newCircuit(stk, "compute", small)
	require.NoError(t, err)
	require.NoError(t, assignment.assign(parse_Values(t, "200u8", "100u8"), nil))
	//
	err = test.IsSolved(placeholder, assignment, ecc.BLS12_377.ScalarField())
	require.Error(t, err)
}

// Wrapped addition accepts the same assignment.
func Test_Circuit_04(t *testing.T) {
	stk := build_Stack(t, `
program token.aleo;

function compute:
    input r0 as u8.public;
    input r1 as u8.private;
    add.w r0 r1 into r2;
    output r2 as u8.public;
`)
	//
	check_Circuit_Solved(t, stk, "compute", "200u8", "100u8")
}

// Closure calls inline into the same constraint system.
func Test_Circuit_05(t *testing.T) {
	stk := build_Stack(t, `
program token.aleo;

closure execute:
    input r0 as field;
    input r1 as field;
    add r0 r1 into r2;
    mul r0 r1 into r3;
    output r2 as field;
    output r3 as field;

function compute:
    input r0 as field.private;
    input r1 as field.public;
    call execute r0 r1 into r2 r3;
    add r2 r3 into r4;
    output r4 as field.public;
`)
	//
	check_Circuit_Solved(t, stk, "compute", "3field", "5field")
}

// Record inputs inject as private wires regardless of entry modes, and
// record casts constrain entry by entry.
func Test_Circuit_06(t *testing.T) {
	stk := build_Stack(t, `
program token.aleo;

record token:
    owner as address.private;
    amount as u64.private;

function spend:
    input r0 as token.record;
    input r1 as u64.private;
    sub r0.amount r1 into r2;
    output r2 as u64.public;
`)
	//
	owner := console.NewAddress(console.GroupGenerator())
	record := parse_Value(t, "{ owner: "+owner.String()+".private, amount: 100u64.private }")
	//
	check_Circuit_SolvedValues(t, stk, "spend", []console.Value{record, parse_Value(t, "30u64")})
}

func Test_Circuit_07(t *testing.T) {
	stk := build_Stack(t, `
program token.aleo;

interface pair:
    first as field;
    second as field;

function swap_sum:
    input r0 as pair.public;
    add r0.first r0.second into r1;
    output r1 as field.public;
`)
	//
	check_Circuit_Solved(t, stk, "swap_sum", "{ first: 2field, second: 40field }")
}

// Comparisons and ternaries constrain to the natively selected branch.
func Test_Circuit_08(t *testing.T) {
	stk := build_Stack(t, `
program token.aleo;

function clamp:
    input r0 as u32.private;
    input r1 as u32.private;
    gt r0 r1 into r2;
    ternary r2 r1 r0 into r3;
    output r3 as u32.public;
`)
	//
	check_Circuit_Solved(t, stk, "clamp", "7u32", "3u32")
	check_Circuit_Solved(t, stk, "clamp", "3u32", "7u32")
}

// End-to-end: compile, setup, prove, verify.
func TestSlow_Prove_01(t *testing.T) {
	stk := build_Stack(t, `
program token.aleo;

function compute:
    input r0 as field.public;
    input r1 as field.private;
    add r0 r1 into r2;
    output r2 as field.public;
`)
	//
	inputs := parse_Values(t, "2field", "3field")
	//
	cs, err := Compile(stk, "compute", inputs)
	require.NoError(t, err)
	//
	pk, vk, err := Setup(cs)
	require.NoError(t, err)
	//
	proof, public, outputs, err := Prove(cs, pk, stk, "compute", inputs)
	require.NoError(t, err)
	require.Equal(t, "5field", outputs[0].String())
	//
	require.NoError(t, Verify(proof, vk, public))
}

// ===================================================================
// Test Helpers
// ===================================================================

func build_Stack(t *testing.T, text string) *stack.Stack {
	srcfile := source.NewSourceFile("test.avm", []byte(text))
	//
	prog, errs := program.ParseProgram(*srcfile, network.Testnet3())
	//
	for _, err := range errs {
		t.Fatalf("unexpected error: %s", err.Message())
	}
	//
	return stack.New(prog)
}

func parse_Value(t *testing.T, text string) console.Value {
	value, err := console.ParseValue(text)
	require.NoError(t, err, "parsing %q", text)
	//
	return value
}

func parse_Values(t *testing.T, texts ...string) []console.Value {
	values := make([]console.Value, len(texts))
	//
	for i, text := range texts {
		values[i] = parse_Value(t, text)
	}
	//
	return values
}

func check_Circuit_Solved(t *testing.T, stk *stack.Stack, fn string, inputs ...string) {
	check_Circuit_SolvedValues(t, stk, fn, parse_Values(t, inputs...))
}

func check_Circuit_SolvedValues(t *testing.T, stk *stack.Stack, fn string, inputs []console.Value) {
	name := console.Identifier(fn)
	//
	outputs, err := stk.Evaluate(name, inputs)
	require.NoError(t, err)
	//
	placeholder, err := newCircuit(stk, name, inputs)
	require.NoError(t, err)
	//
	assignment, err := newCircuit(stk, name, inputs)
	require.NoError(t, err)
	require.NoError(t, assignment.assign(inputs, outputs))
	//
	require.NoError(t, test.IsSolved(placeholder, assignment, ecc.BLS12_377.ScalarField()))
}
