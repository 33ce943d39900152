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
	"github.com/coinsccg/snarkVM/pkg/op"
)

// Instruction is a single operation applied to zero or more operands,
// writing into one or more destination registers.  Most opcodes dispatch
// into the operation registry; "call" invokes a closure or function named by
// Callee, and "cast" reshapes its operands into the type named by Cast.
type Instruction struct {
	// Opcode of this instruction.
	Opcode string
	// Callee names the called closure or function (opcode "call" only).
	Callee console.Identifier
	// Operands of this instruction, in order.
	Operands []console.Operand
	// Destinations of this instruction.  Only "call" writes more than one.
	Destinations []console.Register
	// Cast is the destination type (opcode "cast" only).
	Cast *console.RegisterType
}

func (p *Instruction) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Opcode)
	//
	if p.Opcode == "call" {
		fmt.Fprintf(&builder, " %s", p.Callee)
	}
	//
	for _, operand := range p.Operands {
		fmt.Fprintf(&builder, " %s", operand.String())
	}
	//
	builder.WriteString(" into")
	//
	for _, dest := range p.Destinations {
		fmt.Fprintf(&builder, " %s", dest.String())
	}
	//
	if p.Cast != nil {
		fmt.Fprintf(&builder, " as %s", p.Cast)
	}
	//
	builder.WriteString(";")
	//
	return builder.String()
}

// Equal determines whether two instructions are identical.
func (p *Instruction) Equal(other *Instruction) bool {
	if p.Opcode != other.Opcode || p.Callee != other.Callee {
		return false
	}
	//
	if len(p.Operands) != len(other.Operands) || len(p.Destinations) != len(other.Destinations) {
		return false
	}
	//
	for i := range p.Operands {
		if !p.Operands[i].Equal(other.Operands[i]) {
			return false
		}
	}
	//
	for i := range p.Destinations {
		if !p.Destinations[i].Equal(other.Destinations[i]) {
			return false
		}
	}
	//
	if (p.Cast == nil) != (other.Cast == nil) {
		return false
	}
	//
	return p.Cast == nil || p.Cast.String() == other.Cast.String()
}

// WriteLE writes the binary form of this instruction.
func (p *Instruction) WriteLE(w io.Writer) error {
	index, err := opcodeIndex(p.Opcode)
	if err != nil {
		return err
	}
	//
	if err := writeUint16LE(w, index); err != nil {
		return err
	}
	//
	if p.Opcode == "call" {
		if err := p.Callee.WriteLE(w); err != nil {
			return err
		}
	}
	//
	if err := writeByte(w, byte(len(p.Operands))); err != nil {
		return err
	}
	//
	for _, operand := range p.Operands {
		if err := operand.WriteLE(w); err != nil {
			return err
		}
	}
	//
	if err := writeByte(w, byte(len(p.Destinations))); err != nil {
		return err
	}
	//
	for _, dest := range p.Destinations {
		if err := dest.WriteLE(w); err != nil {
			return err
		}
	}
	// Trailing flag for the cast type.
	if p.Cast == nil {
		return writeByte(w, 0)
	}
	//
	if err := writeByte(w, 1); err != nil {
		return err
	}
	//
	return p.Cast.WriteLE(w)
}

// ReadInstructionLE reads the binary form of an instruction.
func ReadInstructionLE(r io.Reader) (Instruction, error) {
	var insn Instruction
	//
	index, err := readUint16LE(r)
	if err != nil {
		return insn, err
	}
	//
	if insn.Opcode, err = opcodeAt(index); err != nil {
		return insn, err
	}
	//
	if insn.Opcode == "call" {
		if insn.Callee, err = console.ReadIdentifierLE(r); err != nil {
			return insn, err
		}
	}
	//
	count, err := readByte(r)
	if err != nil {
		return insn, err
	}
	//
	for n := count; n > 0; n-- {
		operand, err := console.ReadOperandLE(r)
		if err != nil {
			return insn, err
		}
		//
		insn.Operands = append(insn.Operands, operand)
	}
	//
	if count, err = readByte(r); err != nil {
		return insn, err
	}
	//
	for n := count; n > 0; n-- {
		dest, err := console.ReadRegisterLE(r)
		if err != nil {
			return insn, err
		}
		//
		insn.Destinations = append(insn.Destinations, dest)
	}
	//
	flag, err := readByte(r)
	if err != nil {
		return insn, err
	}
	//
	if flag == 1 {
		cast, err := console.ReadRegisterTypeLE(r)
		if err != nil {
			return insn, err
		}
		//
		insn.Cast = &cast
	}
	//
	return insn, nil
}

// opcodeIndex maps an opcode onto its position in the lexicographic opcode
// listing, which is the tag used by the binary form.
func opcodeIndex(opcode string) (uint16, error) {
	for i, name := range op.Opcodes() {
		if name == opcode {
			return uint16(i), nil
		}
	}
	//
	return 0, fmt.Errorf("unknown opcode '%s'", opcode)
}

func opcodeAt(index uint16) (string, error) {
	opcodes := op.Opcodes()
	//
	if int(index) >= len(opcodes) {
		return "", fmt.Errorf("invalid opcode index '%d'", index)
	}
	//
	return opcodes[index], nil
}
