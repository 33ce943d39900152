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

// InterfaceMember declares a single named member of an interface type.
type InterfaceMember struct {
	// Name of the member.
	Name Identifier
	// Declared type of the member.
	Type PlaintextType
}

// Interface is a struct type: an ordered collection of named, typed
// members.  A member type naming another interface must refer to an
// interface declared strictly earlier in the enclosing program.
type Interface struct {
	name    Identifier
	members []InterfaceMember
}

// NewInterface constructs an interface type from an ordered member list.
func NewInterface(name Identifier, members []InterfaceMember) (Interface, error) {
	if len(members) == 0 {
		return Interface{}, fmt.Errorf("interface '%s' is missing members", name)
	}
	//
	seen := make(map[Identifier]bool)
	//
	for _, m := range members {
		if seen[m.Name] {
			return Interface{}, fmt.Errorf("duplicate member '%s' in interface '%s'", m.Name, name)
		}
		//
		seen[m.Name] = true
	}
	//
	return Interface{name, members}, nil
}

// Name returns the name of this interface type.
func (p *Interface) Name() Identifier {
	return p.name
}

// Members returns the ordered members of this interface type.
func (p *Interface) Members() []InterfaceMember {
	return p.members
}

// Member looks up the declared type of a member by name.
func (p *Interface) Member(name Identifier) (PlaintextType, bool) {
	for _, m := range p.members {
		if m.Name == name {
			return m.Type, true
		}
	}
	//
	return PlaintextType{}, false
}

// Equal determines whether two interface types are identical.
func (p *Interface) Equal(other *Interface) bool {
	if p.name != other.name || len(p.members) != len(other.members) {
		return false
	}
	//
	for i := range p.members {
		if p.members[i] != other.members[i] {
			return false
		}
	}
	//
	return true
}

func (p Interface) String() string {
	var builder strings.Builder
	//
	builder.WriteString(fmt.Sprintf("interface %s:", p.name))
	//
	for _, m := range p.members {
		builder.WriteString(fmt.Sprintf("\n    %s as %s;", m.Name, m.Type))
	}
	//
	return builder.String()
}

// WriteLE writes the binary form of this interface type.
func (p *Interface) WriteLE(w io.Writer) error {
	if err := p.name.WriteLE(w); err != nil {
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
		if err := m.Type.WriteLE(w); err != nil {
			return err
		}
	}
	//
	return nil
}

// ReadInterfaceLE reads the binary form of an interface type.
func ReadInterfaceLE(r io.Reader) (Interface, error) {
	name, err := ReadIdentifierLE(r)
	//
	if err != nil {
		return Interface{}, err
	}
	//
	n, err := readUint16LE(r)
	//
	if err != nil {
		return Interface{}, err
	}
	//
	members := make([]InterfaceMember, n)
	//
	for i := range members {
		if members[i].Name, err = ReadIdentifierLE(r); err != nil {
			return Interface{}, err
		}
		//
		if members[i].Type, err = ReadPlaintextTypeLE(r); err != nil {
			return Interface{}, err
		}
	}
	//
	return NewInterface(name, members)
}
