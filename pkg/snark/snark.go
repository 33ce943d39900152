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

// Package snark proves and verifies function executions with Groth16 over
// BLS12-377.  A circuit is synthesised per input assignment: constant
// inputs bake into the constraint system, public inputs and public outputs
// become public wires, and private inputs become witness wires.
package snark

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/coinsccg/snarkVM/pkg/circuit"
	"github.com/coinsccg/snarkVM/pkg/console"
	"github.com/coinsccg/snarkVM/pkg/stack"
)

// Compile synthesises the constraint system of a function over the given
// input assignment.
func Compile(stk *stack.Stack, fn console.Identifier, inputs []console.Value) (constraint.ConstraintSystem, error) {
	circ, err := newCircuit(stk, fn, inputs)
	if err != nil {
		return nil, err
	}
	//
	return frontend.Compile(ecc.BLS12_377.ScalarField(), r1cs.NewBuilder, circ)
}

// Setup runs the Groth16 trusted setup for a compiled constraint system.
func Setup(cs constraint.ConstraintSystem) (groth16.ProvingKey, groth16.VerifyingKey, error) {
	return groth16.Setup(cs)
}

// Prove evaluates the function natively and proves the execution against
// the compiled constraint system.  It returns the proof, the public witness
// for verification and the function outputs.
func Prove(cs constraint.ConstraintSystem, pk groth16.ProvingKey, stk *stack.Stack,
	fn console.Identifier, inputs []console.Value) (groth16.Proof, witness.Witness, []console.Value, error) {
	//
	outputs, err := stk.Evaluate(fn, inputs)
	if err != nil {
		return nil, nil, nil, err
	}
	//
	assignment, err := newCircuit(stk, fn, inputs)
	if err != nil {
		return nil, nil, nil, err
	}
	//
	if err := assignment.assign(inputs, outputs); err != nil {
		return nil, nil, nil, err
	}
	//
	w, err := frontend.NewWitness(assignment, ecc.BLS12_377.ScalarField())
	if err != nil {
		return nil, nil, nil, err
	}
	//
	proof, err := groth16.Prove(cs, pk, w)
	if err != nil {
		return nil, nil, nil, err
	}
	//
	public, err := w.Public()
	if err != nil {
		return nil, nil, nil, err
	}
	//
	return proof, public, outputs, nil
}

// Verify checks a proof against the verifying key and public witness.
func Verify(proof groth16.Proof, vk groth16.VerifyingKey, public witness.Witness) error {
	return groth16.Verify(proof, vk, public)
}

// ============================================================================
// Circuit
// ============================================================================

// Circuit is the gnark circuit of one function execution.  The wire layout
// is fixed by the function signature and the input shapes: public input
// wires in input order, then public output wires in output order, with
// private input wires alongside.
type Circuit struct {
	// Public wires: public inputs, then public outputs.
	Public []frontend.Variable `gnark:",public"`
	// Private wires: private inputs.
	Private []frontend.Variable `gnark:",secret"`
	//
	stk    *stack.Stack
	fn     console.Identifier
	inputs []console.Value
}

// newCircuit lays out the wires of a function execution over the given
// inputs.
func newCircuit(stk *stack.Stack, fn console.Identifier, inputs []console.Value) (*Circuit, error) {
	f, ok := stk.Program().Function(fn)
	if !ok {
		return nil, fmt.Errorf("function '%s' is not defined", fn)
	}
	//
	if len(inputs) != len(f.Inputs) {
		return nil, fmt.Errorf("function '%s' expects %d inputs, found %d", fn, len(f.Inputs), len(inputs))
	}
	//
	var nPublic, nPrivate int
	//
	for i := range inputs {
		n, err := circuit.WireCount(inputs[i])
		if err != nil {
			return nil, err
		}
		//
		switch inputMode(f.Inputs[i].Type) {
		case console.PUBLIC:
			nPublic += n
		case console.PRIVATE:
			nPrivate += n
		}
	}
	// Public outputs contribute public wires.  Their shapes are only known
	// after evaluation, so the layout runs the function natively once.
	outputs, err := stk.Evaluate(fn, inputs)
	if err != nil {
		return nil, err
	}
	//
	for i := range f.Outputs {
		if !publicOutput(f.Outputs[i].Type) {
			continue
		}
		//
		n, err := circuit.WireCount(outputs[i])
		if err != nil {
			return nil, err
		}
		//
		nPublic += n
	}
	//
	return &Circuit{
		Public:  make([]frontend.Variable, nPublic),
		Private: make([]frontend.Variable, nPrivate),
		stk:     stk,
		fn:      fn,
		inputs:  inputs,
	}, nil
}

// Define implements frontend.Circuit, emitting the constraints of the
// function execution.
func (p *Circuit) Define(api frontend.API) error {
	f, ok := p.stk.Program().Function(p.fn)
	if !ok {
		return fmt.Errorf("function '%s' is not defined", p.fn)
	}
	//
	var (
		config  = p.stk.Program().Config()
		public  = circuit.NewInjector(api, config, p.Public)
		private = circuit.NewInjector(api, config, p.Private)
		inputs  []circuit.Value
	)
	//
	for i := range p.inputs {
		var (
			value circuit.Value
			err   error
		)
		//
		switch mode := inputMode(f.Inputs[i].Type); mode {
		case console.CONSTANT:
			value, err = public.Inject(p.inputs[i], console.CONSTANT)
		case console.PUBLIC:
			value, err = public.Inject(p.inputs[i], console.PUBLIC)
		default:
			value, err = private.Inject(p.inputs[i], console.PRIVATE)
		}
		//
		if err != nil {
			return err
		}
		//
		inputs = append(inputs, value)
	}
	//
	outputs, err := p.stk.Execute(api, p.fn, inputs)
	if err != nil {
		return err
	}
	// Bind public outputs to the remaining public wires.
	index := public.Consumed()
	//
	for i := range f.Outputs {
		if !publicOutput(f.Outputs[i].Type) {
			continue
		}
		//
		wires, err := circuit.Wires(outputs[i])
		if err != nil {
			return err
		}
		//
		for _, wire := range wires {
			api.AssertIsEqual(wire, p.Public[index])
			index++
		}
	}
	//
	return nil
}

// assign fills the wire slices from concrete inputs and outputs, in the
// layout consumed by Define.
func (p *Circuit) assign(inputs, outputs []console.Value) error {
	f, ok := p.stk.Program().Function(p.fn)
	if !ok {
		return fmt.Errorf("function '%s' is not defined", p.fn)
	}
	//
	var nPublic, nPrivate int
	//
	for i := range inputs {
		mode := inputMode(f.Inputs[i].Type)
		//
		if mode == console.CONSTANT {
			continue
		}
		//
		elements, err := circuit.Flatten(inputs[i])
		if err != nil {
			return err
		}
		//
		for _, e := range elements {
			if mode == console.PUBLIC {
				p.Public[nPublic] = e
				nPublic++
			} else {
				p.Private[nPrivate] = e
				nPrivate++
			}
		}
	}
	//
	for i := range f.Outputs {
		if !publicOutput(f.Outputs[i].Type) {
			continue
		}
		//
		elements, err := circuit.Flatten(outputs[i])
		if err != nil {
			return err
		}
		//
		for _, e := range elements {
			p.Public[nPublic] = e
			nPublic++
		}
	}
	//
	return nil
}

// inputMode gives the wire visibility of a function input.  Records are
// always private.
func inputMode(t console.ValueType) console.Visibility {
	if t.Type.IsRecord() {
		return console.PRIVATE
	}
	//
	return t.Mode
}

// publicOutput determines whether a function output binds to public wires.
func publicOutput(t console.ValueType) bool {
	return !t.Type.IsRecord() && t.Mode == console.PUBLIC
}
