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

// Package stack executes validated programs.  Every function has two
// evaluation paths sharing one instruction set: Evaluate computes concrete
// console values and reports halts as errors, while Execute emits the
// equivalent constraint system on a gnark frontend, where a halting input
// assignment leaves the constraints unsatisfiable.
package stack

import (
	"fmt"

	"github.com/coinsccg/snarkVM/pkg/console"
	"github.com/coinsccg/snarkVM/pkg/network"
	"github.com/coinsccg/snarkVM/pkg/program"
)

// Stack executes the functions and closures of a single validated program.
type Stack struct {
	config  *network.Config
	program *program.Program
}

// New wraps a validated program for execution.
func New(prog *program.Program) *Stack {
	return &Stack{config: prog.Config(), program: prog}
}

// Program returns the program under execution.
func (p *Stack) Program() *program.Program {
	return p.program
}

// checkValue verifies at run time that a value inhabits a declared register
// type.
func (p *Stack) checkValue(value *console.Value, t console.RegisterType) error {
	if t.IsRecord() {
		if !value.IsRecord() {
			return fmt.Errorf("expected a '%s' record", t.Record)
		}
		//
		rt, ok := p.program.Record(t.Record)
		if !ok {
			return fmt.Errorf("undefined record '%s'", t.Record)
		}
		//
		record := value.Record()
		entries := record.Entries()
		//
		if len(entries) != len(rt.Entries()) {
			return fmt.Errorf("record '%s' holds %d entries, found %d", t.Record, len(rt.Entries()), len(entries))
		}
		//
		for i, e := range entries {
			declared := rt.Entries()[i]
			//
			if e.Name != declared.Name || e.Mode != declared.Type.Mode {
				return fmt.Errorf("entry %d of record '%s' does not match its declaration", i, t.Record)
			}
			//
			if err := p.checkPlaintext(e.Value, declared.Type.Plaintext); err != nil {
				return err
			}
		}
		//
		return nil
	}
	//
	if value.IsRecord() {
		return fmt.Errorf("expected a %s, found a record", t.Plaintext)
	}
	//
	return p.checkPlaintext(value.Plaintext(), t.Plaintext)
}

// checkPlaintext verifies that a plaintext inhabits a declared plaintext
// type, recursing through interface members.
func (p *Stack) checkPlaintext(pt console.Plaintext, t console.PlaintextType) error {
	if t.IsLiteral() {
		if !pt.IsLiteral() {
			return fmt.Errorf("expected a %s literal", t.Literal)
		}
		//
		literal := pt.Literal()
		//
		if literal.Type() != t.Literal {
			return fmt.Errorf("expected a %s literal, found %s", t.Literal, literal.Type())
		}
		//
		return nil
	}
	//
	itf, ok := p.program.Interface(t.Interface)
	if !ok {
		return fmt.Errorf("undefined interface '%s'", t.Interface)
	}
	//
	if pt.IsLiteral() {
		return fmt.Errorf("expected a '%s' struct", t.Interface)
	}
	//
	members := pt.Members()
	//
	if len(members) != len(itf.Members()) {
		return fmt.Errorf("interface '%s' holds %d members, found %d", t.Interface, len(itf.Members()), len(members))
	}
	//
	for i, m := range members {
		declared := itf.Members()[i]
		//
		if m.Name != declared.Name {
			return fmt.Errorf("member %d of '%s' must be '%s', found '%s'", i, t.Interface, declared.Name, m.Name)
		}
		//
		if err := p.checkPlaintext(m.Value, declared.Type); err != nil {
			return err
		}
	}
	//
	return nil
}

// callee resolves a call target to its inputs, body and outputs.  The
// returned output operands load from the callee frame once the body has run.
func (p *Stack) callee(name console.Identifier) ([]console.RegisterType, []program.Instruction, []console.Operand, []console.RegisterType, error) {
	if closure, ok := p.program.Closure(name); ok {
		var (
			inputs   []console.RegisterType
			operands []console.Operand
			outputs  []console.RegisterType
		)
		//
		for _, in := range closure.Inputs {
			inputs = append(inputs, in.Type)
		}
		//
		for _, out := range closure.Outputs {
			operands = append(operands, out.Operand)
			outputs = append(outputs, out.Type)
		}
		//
		return inputs, closure.Instructions, operands, outputs, nil
	}
	//
	if fn, ok := p.program.Function(name); ok {
		var (
			inputs   []console.RegisterType
			operands []console.Operand
			outputs  []console.RegisterType
		)
		//
		for _, in := range fn.Inputs {
			inputs = append(inputs, in.Type.Type)
		}
		//
		for _, out := range fn.Outputs {
			operands = append(operands, out.Operand)
			outputs = append(outputs, out.Type.Type)
		}
		//
		return inputs, fn.Instructions, operands, outputs, nil
	}
	//
	return nil, nil, nil, nil, fmt.Errorf("call target '%s' is not defined", name)
}
