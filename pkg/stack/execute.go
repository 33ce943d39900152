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
	"fmt"

	"github.com/consensys/gnark/frontend"

	"github.com/coinsccg/snarkVM/pkg/circuit"
	"github.com/coinsccg/snarkVM/pkg/console"
	"github.com/coinsccg/snarkVM/pkg/op"
	"github.com/coinsccg/snarkVM/pkg/program"
)

// Execute runs a function in circuit mode, emitting the constraints of
// every instruction on the given frontend.  The inputs are circuit values,
// typically produced by a circuit.Injector over the function's input wires.
// Execution mirrors Evaluate instruction for instruction; wherever the
// native path halts, the emitted constraints are unsatisfiable.
func (p *Stack) Execute(api frontend.API, name console.Identifier, inputs []circuit.Value) ([]circuit.Value, error) {
	fn, ok := p.program.Function(name)
	if !ok {
		return nil, fmt.Errorf("function '%s' is not defined", name)
	}
	//
	if len(inputs) != len(fn.Inputs) {
		return nil, fmt.Errorf("function '%s' expects %d inputs, found %d", name, len(fn.Inputs), len(inputs))
	}
	//
	frame := &circuitFrame{stack: p, api: api, registers: inputs}
	//
	if err := frame.run(fn.Instructions); err != nil {
		return nil, err
	}
	//
	var outputs []circuit.Value
	//
	for i := range fn.Outputs {
		value, err := frame.load(fn.Outputs[i].Operand)
		if err != nil {
			return nil, err
		}
		//
		outputs = append(outputs, value)
	}
	//
	return outputs, nil
}

// circuitFrame is the register file of a single activation in circuit mode.
type circuitFrame struct {
	stack     *Stack
	api       frontend.API
	registers []circuit.Value
}

func (p *circuitFrame) load(operand console.Operand) (circuit.Value, error) {
	// Immediate literals embed as circuit constants.
	if !operand.IsRegister() {
		literal := circuit.ConstantLiteral(operand.Literal())
		return circuit.NewPlaintextValue(circuit.NewLiteralPlaintext(literal)), nil
	}
	//
	r := operand.Register()
	//
	if r.Locator >= uint64(len(p.registers)) {
		return circuit.Value{}, fmt.Errorf("register r%d is not initialized", r.Locator)
	}
	//
	value := p.registers[r.Locator]
	//
	if !r.IsMember() {
		return value, nil
	}
	//
	pt, err := value.Find(r.Path)
	if err != nil {
		return circuit.Value{}, err
	}
	//
	return circuit.NewPlaintextValue(pt), nil
}

func (p *circuitFrame) store(r console.Register, value circuit.Value) error {
	if r.Locator != uint64(len(p.registers)) {
		return fmt.Errorf("destination %s breaks monotonic allocation", r.String())
	}
	//
	p.registers = append(p.registers, value)
	//
	return nil
}

func (p *circuitFrame) run(instructions []program.Instruction) error {
	for i := range instructions {
		if err := p.step(&instructions[i]); err != nil {
			return err
		}
	}
	//
	return nil
}

func (p *circuitFrame) step(insn *program.Instruction) error {
	switch insn.Opcode {
	case "call":
		return p.stepCall(insn)
	case "cast":
		return p.stepCast(insn)
	}
	//
	operation, ok := op.Lookup(insn.Opcode)
	if !ok {
		return fmt.Errorf("unknown opcode '%s'", insn.Opcode)
	}
	//
	var literals []circuit.Literal
	//
	for i := range insn.Operands {
		value, err := p.load(insn.Operands[i])
		if err != nil {
			return err
		}
		//
		literal, err := asCircuitLiteral(&value)
		if err != nil {
			return fmt.Errorf("operand %d of '%s': %w", i, insn.Opcode, err)
		}
		//
		literals = append(literals, literal)
	}
	//
	result, err := operation.Circuit(p.api, p.stack.config, literals)
	if err != nil {
		return err
	}
	//
	return p.store(insn.Destinations[0], circuit.NewPlaintextValue(circuit.NewLiteralPlaintext(result)))
}

func (p *circuitFrame) stepCall(insn *program.Instruction) error {
	_, body, operands, _, err := p.stack.callee(insn.Callee)
	if err != nil {
		return err
	}
	//
	callee := &circuitFrame{stack: p.stack, api: p.api}
	//
	for i := range insn.Operands {
		value, err := p.load(insn.Operands[i])
		if err != nil {
			return err
		}
		//
		callee.registers = append(callee.registers, value)
	}
	//
	if err := callee.run(body); err != nil {
		return err
	}
	//
	for i, operand := range operands {
		value, err := callee.load(operand)
		if err != nil {
			return err
		}
		//
		if err := p.store(insn.Destinations[i], value); err != nil {
			return err
		}
	}
	//
	return nil
}

func (p *circuitFrame) stepCast(insn *program.Instruction) error {
	target := *insn.Cast
	//
	var values []circuit.Value
	//
	for i := range insn.Operands {
		value, err := p.load(insn.Operands[i])
		if err != nil {
			return err
		}
		//
		values = append(values, value)
	}
	//
	switch {
	case target.IsRecord():
		record, err := p.castRecord(target.Record, values)
		if err != nil {
			return err
		}
		//
		return p.store(insn.Destinations[0], circuit.NewRecordValue(record))
	case !target.Plaintext.IsLiteral():
		pt, err := p.castStruct(target.Plaintext.Interface, values)
		if err != nil {
			return err
		}
		//
		return p.store(insn.Destinations[0], circuit.NewPlaintextValue(pt))
	default:
		literal, err := asCircuitLiteral(&values[0])
		if err != nil {
			return err
		}
		//
		result, err := op.CircuitCast(p.api, p.stack.config, literal, target.Plaintext.Literal)
		if err != nil {
			return err
		}
		//
		return p.store(insn.Destinations[0], circuit.NewPlaintextValue(circuit.NewLiteralPlaintext(result)))
	}
}

func (p *circuitFrame) castStruct(name console.Identifier, values []circuit.Value) (circuit.Plaintext, error) {
	itf, ok := p.stack.program.Interface(name)
	if !ok {
		return circuit.Plaintext{}, fmt.Errorf("undefined interface '%s'", name)
	}
	//
	var members []circuit.PlaintextMember
	//
	for i, m := range itf.Members() {
		if values[i].IsRecord() {
			return circuit.Plaintext{}, fmt.Errorf("member '%s' of '%s' cannot be a record", m.Name, name)
		}
		//
		members = append(members, circuit.PlaintextMember{Name: m.Name, Value: values[i].Plaintext()})
	}
	//
	return circuit.NewStructPlaintext(members), nil
}

func (p *circuitFrame) castRecord(name console.Identifier, values []circuit.Value) (circuit.Record, error) {
	rt, ok := p.stack.program.Record(name)
	if !ok {
		return circuit.Record{}, fmt.Errorf("undefined record '%s'", name)
	}
	//
	var entries []circuit.RecordEntry
	//
	for i, e := range rt.Entries() {
		if values[i].IsRecord() {
			return circuit.Record{}, fmt.Errorf("entry '%s' of '%s' cannot be a record", e.Name, name)
		}
		//
		entries = append(entries, circuit.RecordEntry{
			Name:  e.Name,
			Value: values[i].Plaintext(),
			Mode:  e.Type.Mode,
		})
	}
	//
	return circuit.Record{Entries: entries}, nil
}

func asCircuitLiteral(value *circuit.Value) (circuit.Literal, error) {
	if value.IsRecord() {
		return circuit.Literal{}, fmt.Errorf("expected a literal, found a record")
	}
	//
	pt := value.Plaintext()
	//
	if !pt.IsLiteral() {
		return circuit.Literal{}, fmt.Errorf("expected a literal, found a struct")
	}
	//
	return pt.Literal(), nil
}
