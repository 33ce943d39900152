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
	"testing"

	"github.com/coinsccg/snarkVM/pkg/console"
	"github.com/coinsccg/snarkVM/pkg/network"
	"github.com/stretchr/testify/require"
)

// A failed add leaves the program untouched: the same name registers
// cleanly afterwards.
func Test_Program_Atomicity_01(t *testing.T) {
	prog := empty_Program(t)
	//
	broken := Function{
		Name:   "compute",
		Inputs: []FunctionInput{fieldInput(0, console.PRIVATE)},
		Outputs: []FunctionOutput{
			{
				Operand: console.NewRegisterOperand(register(0)),
				Type:    valueType(console.U8, console.PRIVATE),
			},
		},
	}
	//
	require.Error(t, prog.AddFunction(broken))
	//
	_, ok := prog.Function("compute")
	require.False(t, ok)
	//
	working := broken
	working.Outputs = []FunctionOutput{
		{
			Operand: console.NewRegisterOperand(register(0)),
			Type:    valueType(console.FIELD, console.PRIVATE),
		},
	}
	//
	require.NoError(t, prog.AddFunction(working))
	//
	_, ok = prog.Function("compute")
	require.True(t, ok)
}

// Duplicate names are rejected across declaration kinds.
func Test_Program_Names_01(t *testing.T) {
	prog := empty_Program(t)
	//
	itf, err := console.NewInterface("pair", []console.InterfaceMember{
		{Name: "first", Type: console.NewLiteralPlaintextType(console.FIELD)},
	})
	require.NoError(t, err)
	require.NoError(t, prog.AddInterface(itf))
	require.Error(t, prog.AddInterface(itf))
	//
	clash := Function{
		Name:   "pair",
		Inputs: []FunctionInput{fieldInput(0, console.PRIVATE)},
		Outputs: []FunctionOutput{
			{
				Operand: console.NewRegisterOperand(register(0)),
				Type:    valueType(console.FIELD, console.PRIVATE),
			},
		},
	}
	require.Error(t, prog.AddFunction(clash))
}

// Type references resolve only against already-registered declarations, so
// no cyclic type graph is constructible.
func Test_Program_Acyclicity_01(t *testing.T) {
	prog := empty_Program(t)
	//
	selfref, err := console.NewInterface("knot", []console.InterfaceMember{
		{Name: "inner", Type: console.NewInterfacePlaintextType("knot")},
	})
	require.NoError(t, err)
	require.Error(t, prog.AddInterface(selfref))
}

// Import declarations are tracked in order and reject duplicates.
func Test_Program_Imports_01(t *testing.T) {
	prog := empty_Program(t)
	//
	credits, err := console.NewProgramID("credits.aleo")
	require.NoError(t, err)
	//
	require.NoError(t, prog.AddImport(Import{credits}))
	require.Error(t, prog.AddImport(Import{credits}))
	require.Len(t, prog.Imports(), 1)
}

// The record bound comes from the network configuration.
func Test_Program_RecordBound_01(t *testing.T) {
	prog := empty_Program(t)
	//
	first := record_Type(t, "token")
	require.NoError(t, prog.AddRecord(first))
	//
	second := record_Type(t, "voucher")
	require.Error(t, prog.AddRecord(second))
}

// ===================================================================
// Test Helpers
// ===================================================================

func empty_Program(t *testing.T) *Program {
	id, err := console.NewProgramID("token.aleo")
	require.NoError(t, err)
	//
	return New(network.Testnet3(), id)
}

func register(locator uint64) console.Register {
	return console.Register{Locator: locator}
}

func valueType(kind console.LiteralType, mode console.Visibility) console.ValueType {
	return console.ValueType{
		Type: console.NewPlaintextRegisterType(console.NewLiteralPlaintextType(kind)),
		Mode: mode,
	}
}

func fieldInput(locator uint64, mode console.Visibility) FunctionInput {
	return FunctionInput{
		Register: register(locator),
		Type:     valueType(console.FIELD, mode),
	}
}

func record_Type(t *testing.T, name console.Identifier) console.RecordType {
	owner := console.EntryType{
		Plaintext: console.NewLiteralPlaintextType(console.ADDRESS),
		Mode:      console.PRIVATE,
	}
	amount := console.EntryType{
		Plaintext: console.NewLiteralPlaintextType(console.U64),
		Mode:      console.PRIVATE,
	}
	//
	rt, err := console.NewRecordType(name, []console.RecordEntryType{
		{Name: "owner", Type: owner},
		{Name: "amount", Type: amount},
	})
	require.NoError(t, err)
	//
	return rt
}
