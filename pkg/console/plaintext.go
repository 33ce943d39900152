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

// Plaintext is either a literal, or an ordered collection of named members
// (an interface value).  Members may themselves be composite, giving a
// finite tree whose leaves are literals.
type Plaintext struct {
	isStruct bool
	// Live when this is a literal.
	literal Literal
	// Live when this is an interface value.
	members []PlaintextMember
}

// PlaintextMember is a single named member of an interface value.
type PlaintextMember struct {
	// Name of the member.
	Name Identifier
	// Value of the member.
	Value Plaintext
}

// NewLiteralPlaintext wraps a literal as a plaintext.
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

// Member looks up a member by name.
func (p *Plaintext) Member(name Identifier) (Plaintext, bool) {
	if p.isStruct {
		for _, m := range p.members {
			if m.Name == name {
				return m.Value, true
			}
		}
	}
	//
	return Plaintext{}, false
}

// Find projects into this plaintext along a path of member names.
func (p *Plaintext) Find(path []Identifier) (Plaintext, error) {
	current := *p
	//
	for _, name := range path {
		next, ok := current.Member(name)
		//
		if !ok {
			return Plaintext{}, fmt.Errorf("member '%s' not found", name)
		}
		//
		current = next
	}
	//
	return current, nil
}

// Equal determines whether two plaintexts are structurally equal.
func (p *Plaintext) Equal(other *Plaintext) bool {
	if p.isStruct != other.isStruct {
		return false
	}
	//
	if !p.isStruct {
		return p.literal.Equal(&other.literal)
	}
	//
	if len(p.members) != len(other.members) {
		return false
	}
	//
	for i := range p.members {
		if p.members[i].Name != other.members[i].Name {
			return false
		} else if !p.members[i].Value.Equal(&other.members[i].Value) {
			return false
		}
	}
	//
	return true
}

func (p Plaintext) String() string {
	if !p.isStruct {
		return p.literal.String()
	}
	//
	var builder strings.Builder
	//
	builder.WriteString("{ ")
	//
	for i, m := range p.members {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(fmt.Sprintf("%s: %s", m.Name, m.Value))
	}
	//
	builder.WriteString(" }")
	//
	return builder.String()
}

// WriteLE writes the binary form of this plaintext.
func (p *Plaintext) WriteLE(w io.Writer) error {
	if !p.isStruct {
		if _, err := w.Write([]byte{0}); err != nil {
			return err
		}
		//
		return p.literal.WriteLE(w)
	}
	//
	if _, err := w.Write([]byte{1}); err != nil {
		return err
	}
	//
	if err := writeUint16LE(w, uint16(len(p.members))); err != nil {
		return err
	}
	//
	for _, m := range p.members {
		if err := m.Name.WriteLE(w); err != nil {
			return err
		}
		//
		if err := m.Value.WriteLE(w); err != nil {
			return err
		}
	}
	//
	return nil
}

// ReadPlaintextLE reads the binary form of a plaintext.
func ReadPlaintextLE(r io.Reader) (Plaintext, error) {
	var variant [1]byte
	//
	if _, err := io.ReadFull(r, variant[:]); err != nil {
		return Plaintext{}, err
	}
	//
	switch variant[0] {
	case 0:
		literal, err := ReadLiteralLE(r)
		return NewLiteralPlaintext(literal), err
	case 1:
		n, err := readUint16LE(r)
		//
		if err != nil {
			return Plaintext{}, err
		}
		//
		members := make([]PlaintextMember, n)
		//
		for i := range members {
			if members[i].Name, err = ReadIdentifierLE(r); err != nil {
				return Plaintext{}, err
			}
			//
			if members[i].Value, err = ReadPlaintextLE(r); err != nil {
				return Plaintext{}, err
			}
		}
		//
		return NewStructPlaintext(members), nil
	default:
		return Plaintext{}, fmt.Errorf("invalid plaintext variant '%d'", variant[0])
	}
}
