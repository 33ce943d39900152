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
	"fmt"
	"io"
	"strings"

	"github.com/coinsccg/snarkVM/pkg/console"
)

// ClosureInput declares an input register of a closure.
type ClosureInput struct {
	// Register receiving the input.
	Register console.Register
	// Declared type of the input.
	Type console.RegisterType
}

// ClosureOutput declares an output of a closure.
type ClosureOutput struct {
	// Operand producing the output.
	Operand console.Operand
	// Declared type of the output.
	Type console.RegisterType
}

// Closure is a named sequence of instructions callable from elsewhere in the
// same program.  Unlike a function, its inputs and outputs carry no
// visibility modes.
type Closure struct {
	// Name of this closure.
	Name console.Identifier
	// Inputs of this closure, in declaration order.
	Inputs []ClosureInput
	// Instructions of this closure, in order.
	Instructions []Instruction
	// Outputs of this closure, in declaration order.
	Outputs []ClosureOutput
}

func (p *Closure) String() string {
	var builder strings.Builder
	//
	fmt.Fprintf(&builder, "closure %s:", p.Name)
	//
	for _, in := range p.Inputs {
		fmt.Fprintf(&builder, "\n    input %s as %s;", in.Register.String(), in.Type)
	}
	//
	for _, insn := range p.Instructions {
		fmt.Fprintf(&builder, "\n    %s", insn.String())
	}
	//
	for _, out := range p.Outputs {
		fmt.Fprintf(&builder, "\n    output %s as %s;", out.Operand.String(), out.Type)
	}
	//
	return builder.String()
}

// WriteLE writes the binary form of this closure.
func (p *Closure) WriteLE(w io.Writer) error {
	if err := p.Name.WriteLE(w); err != nil {
		return err
	}
	//
	if err := writeUint16LE(w, uint16(len(p.Inputs))); err != nil {
		return err
	}
	//
	for _, in := range p.Inputs {
		if err := in.Register.WriteLE(w); err != nil {
			return err
		}
		//
		if err := in.Type.WriteLE(w); err != nil {
			return err
		}
	}
	//
	if err := writeUint16LE(w, uint16(len(p.Instructions))); err != nil {
		return err
	}
	//
	for i := range p.Instructions {
		if err := p.Instructions[i].WriteLE(w); err != nil {
			return err
		}
	}
	//
	if err := writeUint16LE(w, uint16(len(p.Outputs))); err != nil {
		return err
	}
	//
	for _, out := range p.Outputs {
		if err := out.Operand.WriteLE(w); err != nil {
			return err
		}
		//
		if err := out.Type.WriteLE(w); err != nil {
			return err
		}
	}
	//
	return nil
}

// ReadClosureLE reads the binary form of a closure.
func ReadClosureLE(r io.Reader) (Closure, error) {
	var (
		closure Closure
		err     error
	)
	//
	if closure.Name, err = console.ReadIdentifierLE(r); err != nil {
		return closure, err
	}
	//
	count, err := readUint16LE(r)
	if err != nil {
		return closure, err
	}
	//
	for n := count; n > 0; n-- {
		var in ClosureInput
		//
		if in.Register, err = console.ReadRegisterLE(r); err != nil {
			return closure, err
		}
		//
		if in.Type, err = console.ReadRegisterTypeLE(r); err != nil {
			return closure, err
		}
		//
		closure.Inputs = append(closure.Inputs, in)
	}
	//
	if count, err = readUint16LE(r); err != nil {
		return closure, err
	}
	//
	for n := count; n > 0; n-- {
		insn, err := ReadInstructionLE(r)
		if err != nil {
			return closure, err
		}
		//
		closure.Instructions = append(closure.Instructions, insn)
	}
	//
	if count, err = readUint16LE(r); err != nil {
		return closure, err
	}
	//
	for n := count; n > 0; n-- {
		var out ClosureOutput
		//
		if out.Operand, err = console.ReadOperandLE(r); err != nil {
			return closure, err
		}
		//
		if out.Type, err = console.ReadRegisterTypeLE(r); err != nil {
			return closure, err
		}
		//
		closure.Outputs = append(closure.Outputs, out)
	}
	//
	return closure, nil
}

// ============================================================================
// Function
// ============================================================================

// FunctionInput declares an input register of a function, including its
// visibility mode.
type FunctionInput struct {
	// Register receiving the input.
	Register console.Register
	// Declared value type of the input.
	Type console.ValueType
}

// FunctionOutput declares an output of a function, including its visibility
// mode.
type FunctionOutput struct {
	// Operand producing the output.
	Operand console.Operand
	// Declared value type of the output.
	Type console.ValueType
}

// Function is the externally callable unit of a program.  It extends a
// closure with visibility modes on every input and output, which determine
// how values bind into the circuit.
type Function struct {
	// Name of this function.
	Name console.Identifier
	// Inputs of this function, in declaration order.
	Inputs []FunctionInput
	// Instructions of this function, in order.
	Instructions []Instruction
	// Outputs of this function, in declaration order.
	Outputs []FunctionOutput
}

func (p *Function) String() string {
	var builder strings.Builder
	//
	fmt.Fprintf(&builder, "function %s:", p.Name)
	//
	for _, in := range p.Inputs {
		fmt.Fprintf(&builder, "\n    input %s as %s;", in.Register.String(), in.Type)
	}
	//
	for _, insn := range p.Instructions {
		fmt.Fprintf(&builder, "\n    %s", insn.String())
	}
	//
	for _, out := range p.Outputs {
		fmt.Fprintf(&builder, "\n    output %s as %s;", out.Operand.String(), out.Type)
	}
	//
	return builder.String()
}

// WriteLE writes the binary form of this function.
func (p *Function) WriteLE(w io.Writer) error {
	if err := p.Name.WriteLE(w); err != nil {
		return err
	}
	//
	if err := writeUint16LE(w, uint16(len(p.Inputs))); err != nil {
		return err
	}
	//
	for _, in := range p.Inputs {
		if err := in.Register.WriteLE(w); err != nil {
			return err
		}
		//
		if err := in.Type.WriteLE(w); err != nil {
			return err
		}
	}
	//
	if err := writeUint16LE(w, uint16(len(p.Instructions))); err != nil {
		return err
	}
	//
	for i := range p.Instructions {
		if err := p.Instructions[i].WriteLE(w); err != nil {
			return err
		}
	}
	//
	if err := writeUint16LE(w, uint16(len(p.Outputs))); err != nil {
		return err
	}
	//
	for _, out := range p.Outputs {
		if err := out.Operand.WriteLE(w); err != nil {
			return err
		}
		//
		if err := out.Type.WriteLE(w); err != nil {
			return err
		}
	}
	//
	return nil
}

// ReadFunctionLE reads the binary form of a function.
func ReadFunctionLE(r io.Reader) (Function, error) {
	var (
		fn  Function
		err error
	)
	//
	if fn.Name, err = console.ReadIdentifierLE(r); err != nil {
		return fn, err
	}
	//
	count, err := readUint16LE(r)
	if err != nil {
		return fn, err
	}
	//
	for n := count; n > 0; n-- {
		var in FunctionInput
		//
		if in.Register, err = console.ReadRegisterLE(r); err != nil {
			return fn, err
		}
		//
		if in.Type, err = console.ReadValueTypeLE(r); err != nil {
			return fn, err
		}
		//
		fn.Inputs = append(fn.Inputs, in)
	}
	//
	if count, err = readUint16LE(r); err != nil {
		return fn, err
	}
	//
	for n := count; n > 0; n-- {
		insn, err := ReadInstructionLE(r)
		if err != nil {
			return fn, err
		}
		//
		fn.Instructions = append(fn.Instructions, insn)
	}
	//
	if count, err = readUint16LE(r); err != nil {
		return fn, err
	}
	//
	for n := count; n > 0; n-- {
		var out FunctionOutput
		//
		if out.Operand, err = console.ReadOperandLE(r); err != nil {
			return fn, err
		}
		//
		if out.Type, err = console.ReadValueTypeLE(r); err != nil {
			return fn, err
		}
		//
		fn.Outputs = append(fn.Outputs, out)
	}
	//
	return fn, nil
}
