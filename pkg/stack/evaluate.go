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

	"github.com/coinsccg/snarkVM/pkg/console"
	"github.com/coinsccg/snarkVM/pkg/op"
	"github.com/coinsccg/snarkVM/pkg/program"
)

// Evaluate runs a function natively on concrete inputs.  A halting
// instruction surfaces as an error satisfying op.IsHalt; evaluation is
// deterministic, so re-running with the same inputs reproduces the same
// outputs.
func (p *Stack) Evaluate(name console.Identifier, inputs []console.Value) ([]console.Value, error) {
	fn, ok := p.program.Function(name)
	if !ok {
		return nil, fmt.Errorf("function '%s' is not defined", name)
	}
	//
	if len(inputs) != len(fn.Inputs) {
		return nil, fmt.Errorf("function '%s' expects %d inputs, found %d", name, len(fn.Inputs), len(inputs))
	}
	//
	frame := &frame{stack: p}
	//
	for i := range inputs {
		if err := p.checkValue(&inputs[i], fn.Inputs[i].Type.Type); err != nil {
			return nil, fmt.Errorf("input %d of '%s': %w", i, name, err)
		}
		//
		frame.registers = append(frame.registers, inputs[i])
	}
	//
	if err := frame.run(fn.Instructions); err != nil {
		return nil, err
	}
	//
	var outputs []console.Value
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

// frame is the native register file of a single function or closure
// activation.  Registers allocate monotonically, matching the static
// allocation order established at validation time.
type frame struct {
	stack     *Stack
	registers []console.Value
}

// load resolves an operand to its value, projecting register members
// through records and structs.
func (p *frame) load(operand console.Operand) (console.Value, error) {
	if !operand.IsRegister() {
		return console.NewPlaintextValue(console.NewLiteralPlaintext(operand.Literal())), nil
	}
	//
	r := operand.Register()
	//
	if r.Locator >= uint64(len(p.registers)) {
		return console.Value{}, fmt.Errorf("register r%d is not initialized", r.Locator)
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
		return console.Value{}, err
	}
	//
	return console.NewPlaintextValue(pt), nil
}

func (p *frame) store(r console.Register, value console.Value) error {
	if r.Locator != uint64(len(p.registers)) {
		return fmt.Errorf("destination %s breaks monotonic allocation", r.String())
	}
	//
	p.registers = append(p.registers, value)
	//
	return nil
}

func (p *frame) run(instructions []program.Instruction) error {
	for i := range instructions {
		if err := p.step(&instructions[i]); err != nil {
			return err
		}
	}
	//
	return nil
}

func (p *frame) step(insn *program.Instruction) error {
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
	var literals []console.Literal
	//
	for i := range insn.Operands {
		value, err := p.load(insn.Operands[i])
		if err != nil {
			return err
		}
		//
		literal, err := asLiteral(&value)
		if err != nil {
			return fmt.Errorf("operand %d of '%s': %w", i, insn.Opcode, err)
		}
		//
		literals = append(literals, literal)
	}
	//
	result, err := operation.Native(p.stack.config, literals)
	if err != nil {
		return err
	}
	//
	return p.store(insn.Destinations[0], console.NewPlaintextValue(console.NewLiteralPlaintext(result)))
}

func (p *frame) stepCall(insn *program.Instruction) error {
	inputs, body, operands, _, err := p.stack.callee(insn.Callee)
	if err != nil {
		return err
	}
	//
	callee := &frame{stack: p.stack}
	//
	for i := range insn.Operands {
		value, err := p.load(insn.Operands[i])
		if err != nil {
			return err
		}
		//
		if err := p.stack.checkValue(&value, inputs[i]); err != nil {
			return fmt.Errorf("input %d of call '%s': %w", i, insn.Callee, err)
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

func (p *frame) stepCast(insn *program.Instruction) error {
	target := *insn.Cast
	//
	var values []console.Value
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
		return p.store(insn.Destinations[0], console.NewRecordValue(record))
	case !target.Plaintext.IsLiteral():
		pt, err := p.castStruct(target.Plaintext.Interface, values)
		if err != nil {
			return err
		}
		//
		return p.store(insn.Destinations[0], console.NewPlaintextValue(pt))
	default:
		literal, err := asLiteral(&values[0])
		if err != nil {
			return err
		}
		//
		result, err := op.NativeCast(p.stack.config, literal, target.Plaintext.Literal)
		if err != nil {
			return err
		}
		//
		return p.store(insn.Destinations[0], console.NewPlaintextValue(console.NewLiteralPlaintext(result)))
	}
}

func (p *frame) castStruct(name console.Identifier, values []console.Value) (console.Plaintext, error) {
	itf, ok := p.stack.program.Interface(name)
	if !ok {
		return console.Plaintext{}, fmt.Errorf("undefined interface '%s'", name)
	}
	//
	var members []console.PlaintextMember
	//
	for i, m := range itf.Members() {
		if values[i].IsRecord() {
			return console.Plaintext{}, fmt.Errorf("member '%s' of '%s' cannot be a record", m.Name, name)
		}
		//
		members = append(members, console.PlaintextMember{Name: m.Name, Value: values[i].Plaintext()})
	}
	//
	return console.NewStructPlaintext(members), nil
}

func (p *frame) castRecord(name console.Identifier, values []console.Value) (console.Record, error) {
	rt, ok := p.stack.program.Record(name)
	if !ok {
		return console.Record{}, fmt.Errorf("undefined record '%s'", name)
	}
	//
	var entries []console.RecordEntry
	//
	for i, e := range rt.Entries() {
		if values[i].IsRecord() {
			return console.Record{}, fmt.Errorf("entry '%s' of '%s' cannot be a record", e.Name, name)
		}
		//
		entries = append(entries, console.RecordEntry{
			Name:  e.Name,
			Value: values[i].Plaintext(),
			Mode:  e.Type.Mode,
		})
	}
	//
	return console.NewRecord(entries)
}

// asLiteral unwraps a value known to hold a single literal.
func asLiteral(value *console.Value) (console.Literal, error) {
	if value.IsRecord() {
		return console.Literal{}, fmt.Errorf("expected a literal, found a record")
	}
	//
	pt := value.Plaintext()
	//
	if !pt.IsLiteral() {
		return console.Literal{}, fmt.Errorf("expected a literal, found a struct")
	}
	//
	return pt.Literal(), nil
}
