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

// Package circuit provides the constraint-system encoding of console values.
// Every console literal has a circuit counterpart holding one or two wires of
// the ambient constraint system; operations over circuit literals emit
// constraints through the frontend API rather than computing results
// directly.
package circuit

import (
	"fmt"

	"github.com/consensys/gnark/frontend"

	"github.com/coinsccg/snarkVM/pkg/console"
)

// Literal is the circuit encoding of a console literal.  Booleans, field
// elements, scalars and integers occupy a single wire (integers hold their
// unsigned two's complement representation); group elements and addresses
// occupy an (x, y) wire pair.  Strings have no wire encoding and only exist
// as constants.
type Literal struct {
	kind console.LiteralType
	// Live for single-wire kinds.
	wire frontend.Variable
	// Live for group elements and addresses.
	x, y frontend.Variable
	// Live for strings.
	str string
}

// NewLiteral wraps a single wire as a circuit literal of the given kind.
func NewLiteral(kind console.LiteralType, wire frontend.Variable) Literal {
	switch kind {
	case console.GROUP, console.ADDRESS, console.STRING:
		panic(fmt.Sprintf("type %s is not a single-wire type", kind))
	}
	//
	return Literal{kind: kind, wire: wire}
}

// NewPointLiteral wraps an (x, y) wire pair as a group or address literal.
func NewPointLiteral(kind console.LiteralType, x, y frontend.Variable) Literal {
	if kind != console.GROUP && kind != console.ADDRESS {
		panic(fmt.Sprintf("type %s is not a point type", kind))
	}
	//
	return Literal{kind: kind, x: x, y: y}
}

// NewStringLiteral wraps a constant string as a circuit literal.
func NewStringLiteral(s string) Literal {
	return Literal{kind: console.STRING, str: s}
}

// Type returns the tag of this literal.
func (p *Literal) Type() console.LiteralType {
	return p.kind
}

// Wire unwraps a single-wire literal.
func (p *Literal) Wire() frontend.Variable {
	switch p.kind {
	case console.GROUP, console.ADDRESS, console.STRING:
		panic(fmt.Sprintf("literal of type %s has no single wire", p.kind))
	}
	//
	return p.wire
}

// Point unwraps the (x, y) wire pair of a group or address literal.
func (p *Literal) Point() (frontend.Variable, frontend.Variable) {
	if p.kind != console.GROUP && p.kind != console.ADDRESS {
		panic(fmt.Sprintf("literal of type %s is not a point", p.kind))
	}
	//
	return p.x, p.y
}

// Str unwraps a constant string literal.
func (p *Literal) Str() string {
	if p.kind != console.STRING {
		panic(fmt.Sprintf("literal of type %s is not a string", p.kind))
	}
	//
	return p.str
}

// ============================================================================
// Plaintext / Record / Value
// ============================================================================

// PlaintextMember is a single named member of a circuit interface value.
type PlaintextMember struct {
	// Name of the member.
	Name console.Identifier
	// Value of the member.
	Value Plaintext
}

// Plaintext is the circuit encoding of a console plaintext: a literal, or an
// ordered collection of named members.
type Plaintext struct {
	isStruct bool
	literal  Literal
	members  []PlaintextMember
}

// NewLiteralPlaintext wraps a circuit literal as a plaintext.
func NewLiteralPlaintext(literal Literal) Plaintext {
	return Plaintext{literal: literal}
}

// NewStructPlaintext wraps an ordered member list as a plaintext.
func NewStructPlaintext(members []PlaintextMember) Plaintext {
	return Plaintext{isStruct: true, members: members}
}

// IsLiteral determines whether this plaintext is a literal.
func (p *Plaintext) IsLiteral() bool {
	return !p.isStruct
}

// Literal unwraps a literal plaintext.
func (p *Plaintext) Literal() Literal {
	if p.isStruct {
		panic("plaintext is an interface value, not a literal")
	}
	//
	return p.literal
}

// Members returns the ordered members of an interface value.
func (p *Plaintext) Members() []PlaintextMember {
	if !p.isStruct {
		panic("plaintext is a literal, not an interface value")
	}
	//
	return p.members
}

// Find projects into this plaintext along a path of member names.
func (p *Plaintext) Find(path []console.Identifier) (Plaintext, error) {
	current := *p
	//
	for _, name := range path {
		if !current.isStruct {
			return Plaintext{}, fmt.Errorf("member '%s' not found", name)
		}
		//
		found := false
		//
		for _, m := range current.members {
			if m.Name == name {
				current, found = m.Value, true
				break
			}
		}
		//
		if !found {
			return Plaintext{}, fmt.Errorf("member '%s' not found", name)
		}
	}
	//
	return current, nil
}

// RecordEntry is a single named entry of a circuit record.
type RecordEntry struct {
	// Name of the entry.
	Name console.Identifier
	// Value of the entry.
	Value Plaintext
	// Visibility of the entry.
	Mode console.Visibility
}

// Record is the circuit encoding of a console record.
type Record struct {
	// Entries of this record, in declaration order.
	Entries []RecordEntry
}

// Find projects into this record along a path of entry/member names.
func (p *Record) Find(path []console.Identifier) (Plaintext, error) {
	if len(path) == 0 {
		return Plaintext{}, fmt.Errorf("empty record projection")
	}
	//
	for _, e := range p.Entries {
		if e.Name == path[0] {
			return e.Value.Find(path[1:])
		}
	}
	//
	return Plaintext{}, fmt.Errorf("entry '%s' not found", path[0])
}

// Value is the circuit encoding of a console value: a plaintext or a record.
type Value struct {
	record *Record
	// Live when record is nil.
	plaintext Plaintext
}

// NewPlaintextValue wraps a circuit plaintext as a value.
func NewPlaintextValue(p Plaintext) Value {
	return Value{plaintext: p}
}

// NewRecordValue wraps a circuit record as a value.
func NewRecordValue(r Record) Value {
	return Value{record: &r}
}

// IsRecord determines whether this value is a record.
func (p *Value) IsRecord() bool {
	return p.record != nil
}

// Plaintext unwraps a plaintext value.
func (p *Value) Plaintext() Plaintext {
	if p.record != nil {
		panic("value is a record, not a plaintext")
	}
	//
	return p.plaintext
}

// Record unwraps a record value.
func (p *Value) Record() Record {
	if p.record == nil {
		panic("value is a plaintext, not a record")
	}
	//
	return *p.record
}

// Find projects into this value along a path of member names.
func (p *Value) Find(path []console.Identifier) (Plaintext, error) {
	if p.record != nil {
		return p.record.Find(path)
	}
	//
	return p.plaintext.Find(path)
}
