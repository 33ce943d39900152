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
)

// PlaintextType is either a literal type, or the name of an interface
// declared earlier in the enclosing program.
type PlaintextType struct {
	// Literal type (when Interface is empty).
	Literal LiteralType
	// Interface name (when non-empty).
	Interface Identifier
}

// NewLiteralPlaintextType wraps a literal type as a plaintext type.
func NewLiteralPlaintextType(t LiteralType) PlaintextType {
	return PlaintextType{Literal: t}
}

// NewInterfacePlaintextType wraps an interface name as a plaintext type.
func NewInterfacePlaintextType(name Identifier) PlaintextType {
	return PlaintextType{Interface: name}
}

// IsLiteral determines whether this names a literal type.
func (p PlaintextType) IsLiteral() bool {
	return p.Interface == ""
}

func (p PlaintextType) String() string {
	if p.IsLiteral() {
		return p.Literal.String()
	}
	//
	return p.Interface.String()
}

// WriteLE writes the binary form of this plaintext type.
func (p PlaintextType) WriteLE(w io.Writer) error {
	if p.IsLiteral() {
		if _, err := w.Write([]byte{0}); err != nil {
			return err
		}
		//
		return writeUint16LE(w, uint16(p.Literal))
	}
	//
	if _, err := w.Write([]byte{1}); err != nil {
		return err
	}
	//
	return p.Interface.WriteLE(w)
}

// ReadPlaintextTypeLE reads the binary form of a plaintext type.
func ReadPlaintextTypeLE(r io.Reader) (PlaintextType, error) {
	var variant [1]byte
	//
	if _, err := io.ReadFull(r, variant[:]); err != nil {
		return PlaintextType{}, err
	}
	//
	switch variant[0] {
	case 0:
		tag, err := readUint16LE(r)
		return PlaintextType{Literal: LiteralType(tag)}, err
	case 1:
		name, err := ReadIdentifierLE(r)
		return PlaintextType{Interface: name}, err
	default:
		return PlaintextType{}, fmt.Errorf("invalid plaintext type variant '%d'", variant[0])
	}
}

// ============================================================================
// Visibility
// ============================================================================

// Visibility determines how a value is bound into the circuit: as a constant,
// as a public wire, or as a private wire.
type Visibility uint8

const (
	// CONSTANT visibility bakes the value into the circuit itself.
	CONSTANT Visibility = iota
	// PUBLIC visibility exposes the value as a public input.
	PUBLIC
	// PRIVATE visibility binds the value as a private witness.
	PRIVATE
)

func (p Visibility) String() string {
	switch p {
	case CONSTANT:
		return "constant"
	case PUBLIC:
		return "public"
	case PRIVATE:
		return "private"
	default:
		panic(fmt.Sprintf("unknown visibility (%d)", uint8(p)))
	}
}

// ParseVisibility maps a mode name onto its visibility.
func ParseVisibility(name string) (Visibility, bool) {
	switch name {
	case "constant":
		return CONSTANT, true
	case "public":
		return PUBLIC, true
	case "private":
		return PRIVATE, true
	default:
		return 0, false
	}
}

// ============================================================================
// Register / Value / Entry types
// ============================================================================

// RegisterType is the declared type of a closure register: either a plaintext
// type, or a record type defined in the enclosing program.
type RegisterType struct {
	// Plaintext type (when Record is empty).
	Plaintext PlaintextType
	// Record type name (when non-empty).
	Record Identifier
}

// NewPlaintextRegisterType wraps a plaintext type as a register type.
func NewPlaintextRegisterType(t PlaintextType) RegisterType {
	return RegisterType{Plaintext: t}
}

// NewRecordRegisterType wraps a record name as a register type.
func NewRecordRegisterType(name Identifier) RegisterType {
	return RegisterType{Record: name}
}

// IsRecord determines whether this names a record type.
func (p RegisterType) IsRecord() bool {
	return p.Record != ""
}

func (p RegisterType) String() string {
	if p.IsRecord() {
		return fmt.Sprintf("%s.record", p.Record)
	}
	//
	return p.Plaintext.String()
}

// WriteLE writes the binary form of this register type.
func (p RegisterType) WriteLE(w io.Writer) error {
	if p.IsRecord() {
		if _, err := w.Write([]byte{1}); err != nil {
			return err
		}
		//
		return p.Record.WriteLE(w)
	}
	//
	if _, err := w.Write([]byte{0}); err != nil {
		return err
	}
	//
	return p.Plaintext.WriteLE(w)
}

// ReadRegisterTypeLE reads the binary form of a register type.
func ReadRegisterTypeLE(r io.Reader) (RegisterType, error) {
	var variant [1]byte
	//
	if _, err := io.ReadFull(r, variant[:]); err != nil {
		return RegisterType{}, err
	}
	//
	switch variant[0] {
	case 0:
		pt, err := ReadPlaintextTypeLE(r)
		return RegisterType{Plaintext: pt}, err
	case 1:
		name, err := ReadIdentifierLE(r)
		return RegisterType{Record: name}, err
	default:
		return RegisterType{}, fmt.Errorf("invalid register type variant '%d'", variant[0])
	}
}

// ValueType is the declared type of a function input or output.  It is a
// register type further qualified by a visibility mode; record types carry no
// mode of their own.
type ValueType struct {
	// Type of the underlying register.
	Type RegisterType
	// Visibility mode (ignored for record types).
	Mode Visibility
}

func (p ValueType) String() string {
	if p.Type.IsRecord() {
		return p.Type.String()
	}
	//
	return fmt.Sprintf("%s.%s", p.Type.Plaintext, p.Mode)
}

// WriteLE writes the binary form of this value type.
func (p ValueType) WriteLE(w io.Writer) error {
	if err := p.Type.WriteLE(w); err != nil {
		return err
	}
	//
	_, err := w.Write([]byte{byte(p.Mode)})
	//
	return err
}

// ReadValueTypeLE reads the binary form of a value type.
func ReadValueTypeLE(r io.Reader) (ValueType, error) {
	var (
		vt   ValueType
		mode [1]byte
		err  error
	)
	//
	if vt.Type, err = ReadRegisterTypeLE(r); err != nil {
		return vt, err
	}
	//
	if _, err = io.ReadFull(r, mode[:]); err != nil {
		return vt, err
	}
	//
	vt.Mode = Visibility(mode[0])
	//
	return vt, nil
}

// EntryType is the declared type of a record entry: a plaintext type
// qualified by a visibility mode.
type EntryType struct {
	// Plaintext type of the entry.
	Plaintext PlaintextType
	// Visibility mode of the entry.
	Mode Visibility
}

func (p EntryType) String() string {
	return fmt.Sprintf("%s.%s", p.Plaintext, p.Mode)
}

// WriteLE writes the binary form of this entry type.
func (p EntryType) WriteLE(w io.Writer) error {
	if err := p.Plaintext.WriteLE(w); err != nil {
		return err
	}
	//
	_, err := w.Write([]byte{byte(p.Mode)})
	//
	return err
}

// ReadEntryTypeLE reads the binary form of an entry type.
func ReadEntryTypeLE(r io.Reader) (EntryType, error) {
	var (
		et   EntryType
		mode [1]byte
		err  error
	)
	//
	if et.Plaintext, err = ReadPlaintextTypeLE(r); err != nil {
		return et, err
	}
	//
	if _, err = io.ReadFull(r, mode[:]); err != nil {
		return et, err
	}
	//
	et.Mode = Visibility(mode[0])
	//
	return et, nil
}
