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
package stack

import (
	"testing"

	"github.com/coinsccg/snarkVM/pkg/console"
	"github.com/coinsccg/snarkVM/pkg/network"
	"github.com/coinsccg/snarkVM/pkg/program"
	"github.com/coinsccg/snarkVM/pkg/util/source"
	"github.com/stretchr/testify/require"
)

func Test_Evaluate_01(t *testing.T) {
	stk := build_Stack(t, `
program token.aleo;

function compute:
    input r0 as field.public;
    input r1 as field.private;
    add r0 r1 into r2;
    output r2 as field.private;
`)
	//
	outputs := check_Evaluate(t, stk, "compute", "2field", "3field")
	require.Equal(t, []string{"5field"}, outputs)
}

// Evaluation is deterministic across repeated runs.
func Test_Evaluate_02(t *testing.T) {
	stk := build_Stack(t, `
program token.aleo;

function compute:
    input r0 as field.public;
    input r1 as field.private;
    add r0 r1 into r2;
    output r2 as field.private;
`)
	//
	first := check_Evaluate(t, stk, "compute", "2field", "3field")
	second := check_Evaluate(t, stk, "compute", "2field", "3field")
	require.Equal(t, first, second)
}

// Closure calls evaluate in a fresh register frame, and a function may emit
// several outputs drawn from the callee frame.
func Test_Evaluate_03(t *testing.T) {
	stk := build_Stack(t, `
program token.aleo;

closure execute:
    input r0 as field;
    input r1 as field;
    add r0 r1 into r2;
    add r0 r2 into r3;
    add r2 r3 into r4;
    output r2 as field;
    output r3 as field;
    output r4 as field;

function compute:
    input r0 as field.private;
    input r1 as field.public;
    call execute r0 r1 into r2 r3 r4;
    output r2 as field.private;
    output r3 as field.private;
    output r4 as field.private;
`)
	//
	outputs := check_Evaluate(t, stk, "compute", "3field", "5field")
	require.Equal(t, []string{"8field", "11field", "19field"}, outputs)
}

// Checked addition halts at the type boundary, while the wrapped variant
// of the same program wraps.
func Test_Evaluate_04(t *testing.T) {
	checked := build_Stack(t, `
program token.aleo;

function compute:
    input r0 as u8.public;
    input r1 as u8.private;
    add r0 r1 into r2;
    output r2 as u8.private;
`)
	//
	_, err := checked.Evaluate("compute", parse_Values(t, "200u8", "100u8"))
	require.Error(t, err)
	//
	wrapped := build_Stack(t, `
program token.aleo;

function compute:
    input r0 as u8.public;
    input r1 as u8.private;
    add.w r0 r1 into r2;
    output r2 as u8.private;
`)
	//
	outputs := check_Evaluate(t, wrapped, "compute", "200u8", "100u8")
	require.Equal(t, []string{"44u8"}, outputs)
}

// Casting inputs into a record and projecting entries back out.
func Test_Evaluate_05(t *testing.T) {
	stk := build_Stack(t, `
program token.aleo;

record token:
    owner as address.private;
    amount as u64.private;

function mint:
    input r0 as address.private;
    input r1 as u64.private;
    cast r0 r1 into r2 as token.record;
    output r2 as token.record;

function spend:
    input r0 as token.record;
    input r1 as u64.private;
    sub r0.amount r1 into r2;
    output r2 as u64.private;
`)
	//
	owner := console.NewAddress(console.GroupGenerator())
	//
	minted, err := stk.Evaluate("mint", parse_Values(t, owner.String(), "100u64"))
	require.NoError(t, err)
	require.Len(t, minted, 1)
	require.True(t, minted[0].IsRecord())
	//
	record := minted[0].Record()
	require.True(t, owner.Equal(record.Owner()))
	//
	remaining, err := stk.Evaluate("spend", []console.Value{minted[0], parse_Value(t, "30u64")})
	require.NoError(t, err)
	require.Equal(t, "70u64", remaining[0].String())
	//
	_, err = stk.Evaluate("spend", []console.Value{minted[0], parse_Value(t, "101u64")})
	require.Error(t, err)
}

// Re-casting a record's own entries reproduces a structurally equal record.
func Test_Evaluate_10(t *testing.T) {
	stk := build_Stack(t, `
program token.aleo;

record token:
    owner as address.private;
    amount as u64.private;

function recast:
    input r0 as token.record;
    cast r0.owner r0.amount into r1 as token.record;
    output r1 as token.record;
`)
	//
	owner := console.NewAddress(console.GroupGenerator())
	input := parse_Value(t, "{ owner: "+owner.String()+".private, amount: 100u64.private }")
	//
	outputs, err := stk.Evaluate("recast", []console.Value{input})
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	require.True(t, input.Equal(&outputs[0]))
}

// Interface values project members through register paths.
func Test_Evaluate_06(t *testing.T) {
	stk := build_Stack(t, `
program token.aleo;

interface pair:
    first as field;
    second as field;

function swap_sum:
    input r0 as pair.private;
    add r0.first r0.second into r1;
    output r1 as field.private;
`)
	//
	outputs := check_Evaluate(t, stk, "swap_sum", "{ first: 2field, second: 40field }")
	require.Equal(t, []string{"42field"}, outputs)
}

// Casting builds interface values member by member.
func Test_Evaluate_07(t *testing.T) {
	stk := build_Stack(t, `
program token.aleo;

interface pair:
    first as field;
    second as field;

function bundle:
    input r0 as field.private;
    input r1 as field.private;
    cast r0 r1 into r2 as pair;
    output r2 as pair.private;
`)
	//
	outputs := check_Evaluate(t, stk, "bundle", "2field", "3field")
	require.Equal(t, []string{"{ first: 2field, second: 3field }"}, outputs)
}

// Inputs are checked against the declared types before execution.
func Test_Evaluate_08(t *testing.T) {
	stk := build_Stack(t, `
program token.aleo;

function compute:
    input r0 as field.private;
    output r0 as field.private;
`)
	//
	_, err := stk.Evaluate("compute", parse_Values(t, "5u8"))
	require.Error(t, err)
	//
	_, err = stk.Evaluate("compute", parse_Values(t, "5field", "6field"))
	require.Error(t, err)
	//
	_, err = stk.Evaluate("missing", parse_Values(t, "5field"))
	require.Error(t, err)
}

func Test_Evaluate_09(t *testing.T) {
	stk := build_Stack(t, `
program token.aleo;

function pick:
    input r0 as boolean.private;
    input r1 as field.private;
    input r2 as field.private;
    ternary r0 r1 r2 into r3;
    output r3 as field.private;
`)
	//
	outputs := check_Evaluate(t, stk, "pick", "true", "2field", "3field")
	require.Equal(t, []string{"2field"}, outputs)
	//
	outputs = check_Evaluate(t, stk, "pick", "false", "2field", "3field")
	require.Equal(t, []string{"3field"}, outputs)
}

// ===================================================================
// Test Helpers
// ===================================================================

func build_Stack(t *testing.T, text string) *Stack {
	srcfile := source.NewSourceFile("test.avm", []byte(text))
	//
	prog, errs := program.ParseProgram(*srcfile, network.Testnet3())
	//
	for _, err := range errs {
		t.Fatalf("unexpected error: %s", err.Message())
	}
	//
	return New(prog)
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

func check_Evaluate(t *testing.T, stk *Stack, fn string, inputs ...string) []string {
	outputs, err := stk.Evaluate(console.Identifier(fn), parse_Values(t, inputs...))
	require.NoError(t, err, "evaluating %s %v", fn, inputs)
	//
	texts := make([]string, len(outputs))
	//
	for i := range outputs {
		texts[i] = outputs[i].String()
	}
	//
	return texts
}
