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
package console

import (
	"fmt"
	"io"
	"strings"
)

// Register references a value slot in a closure or function body, optionally
// projected into by a path of member names (e.g. "r0" or "r0.owner").
type Register struct {
	// Locator is the register index.
	Locator uint64
	// Path of member names for interface/record projection (empty for a
	// plain register reference).
	Path []Identifier
}

// NewRegister constructs a plain register reference.
func NewRegister(locator uint64) Register {
	return Register{Locator: locator}
}

// NewRegisterMember constructs a register-member reference.
func NewRegisterMember(locator uint64, path ...Identifier) Register {
	return Register{Locator: locator, Path: path}
}

// IsMember determines whether this reference projects into the register.
func (p Register) IsMember() bool {
	return len(p.Path) > 0
}

// Equal determines whether two register references are identical.
func (p Register) Equal(other Register) bool {
	if p.Locator != other.Locator || len(p.Path) != len(other.Path) {
		return false
	}
	//
	for i := range p.Path {
		if p.Path[i] != other.Path[i] {
			return false
		}
	}
	//
	return true
}

func (p Register) String() string {
	var builder strings.Builder
	//
	builder.WriteString(fmt.Sprintf("r%d", p.Locator))
	//
	for _, name := range p.Path {
		builder.WriteString(".")
		builder.WriteString(string(name))
	}
	//
	return builder.String()
}

// WriteLE writes the binary form of this register reference.
func (p Register) WriteLE(w io.Writer) error {
	var variant byte
	//
	if p.IsMember() {
		variant = 1
	}
	//
	if _, err := w.Write([]byte{variant}); err != nil {
		return err
	}
	//
	if err := writeUvarint(w, p.Locator); err != nil {
		return err
	}
	//
	if !p.IsMember() {
		return nil
	}
	//
	if err := writeUint16LE(w, uint16(len(p.Path))); err != nil {
		return err
	}
	//
	for _, name := range p.Path {
		if err := name.WriteLE(w); err != nil {
			return err
		}
	}
	//
	return nil
}

// ReadRegisterLE reads the binary form of a register reference.
func ReadRegisterLE(r io.Reader) (Register, error) {
	var (
		reg     Register
		variant [1]byte
		err     error
	)
	//
	if _, err = io.ReadFull(r, variant[:]); err != nil {
		return reg, err
	}
	//
	if reg.Locator, err = readUvarint(r); err != nil {
		return reg, err
	}
	//
	switch variant[0] {
	case 0:
		return reg, nil
	case 1:
		n, err := readUint16LE(r)
		//
		if err != nil {
			return reg, err
		} else if n == 0 {
			return reg, fmt.Errorf("register member has empty path")
		}
		//
		reg.Path = make([]Identifier, n)
		//
		for i := range reg.Path {
			if reg.Path[i], err = ReadIdentifierLE(r); err != nil {
				return reg, err
			}
		}
		//
		return reg, nil
	default:
		return reg, fmt.Errorf("invalid register variant '%d'", variant[0])
	}
}

// ============================================================================
// Operand
// ============================================================================

// Operand is a single instruction argument: either an immediate literal, or
// a (possibly projected) register reference.
type Operand struct {
	register *Register
	// Live when register is nil.
	literal Literal
}

// NewLiteralOperand wraps an immediate literal as an operand.
func NewLiteralOperand(literal Literal) Operand {
	return Operand{literal: literal}
}

// NewRegisterOperand wraps a register reference as an operand.
func NewRegisterOperand(register Register) Operand {
	return Operand{register: &register}
}

// IsRegister determines whether this operand is a register reference.
func (p Operand) IsRegister() bool {
	return p.register != nil
}

// Register unwraps a register operand.
func (p Operand) Register() Register {
	if p.register == nil {
		panic("operand is a literal, not a register")
	}
	//
	return *p.register
}

// Literal unwraps a literal operand.
func (p Operand) Literal() Literal {
	if p.register != nil {
		panic("operand is a register, not a literal")
	}
	//
	return p.literal
}

// Equal determines whether two operands are identical.
func (p Operand) Equal(other Operand) bool {
	if p.IsRegister() != other.IsRegister() {
		return false
	}
	//
	if p.IsRegister() {
		return p.register.Equal(*other.register)
	}
	//
	return p.literal.Equal(&other.literal)
}

func (p Operand) String() string {
	if p.register != nil {
		return p.register.String()
	}
	//
	return p.literal.String()
}

// WriteLE writes the binary form of this operand.
func (p Operand) WriteLE(w io.Writer) error {
	if p.register != nil {
		if _, err := w.Write([]byte{1}); err != nil {
			return err
		}
		//
		return p.register.WriteLE(w)
	}
	//
	if _, err := w.Write([]byte{0}); err != nil {
		return err
	}
	//
	return p.literal.WriteLE(w)
}

// ReadOperandLE reads the binary form of an operand.
func ReadOperandLE(r io.Reader) (Operand, error) {
	var variant [1]byte
	//
	if _, err := io.ReadFull(r, variant[:]); err != nil {
		return Operand{}, err
	}
	//
	switch variant[0] {
	case 0:
		literal, err := ReadLiteralLE(r)
		return NewLiteralOperand(literal), err
	case 1:
		register, err := ReadRegisterLE(r)
		return NewRegisterOperand(register), err
	default:
		return Operand{}, fmt.Errorf("invalid operand variant '%d'", variant[0])
	}
}
