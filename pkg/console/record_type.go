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

// RecordEntryType declares a single named entry of a record type.
type RecordEntryType struct {
	// Name of the entry.
	Name Identifier
	// Declared type (and visibility) of the entry.
	Type EntryType
}

// RecordType is the declared shape of a record: an ordered collection of
// named, visibility-qualified entries, the first of which is always the
// owning address.
type RecordType struct {
	name    Identifier
	entries []RecordEntryType
}

// NewRecordType constructs a record type from an ordered entry list.
func NewRecordType(name Identifier, entries []RecordEntryType) (RecordType, error) {
	if len(entries) == 0 {
		return RecordType{}, fmt.Errorf("record '%s' is missing entries", name)
	}
	//
	owner := entries[0]
	//
	if owner.Name != "owner" {
		return RecordType{}, fmt.Errorf("first entry of record '%s' must be 'owner', found '%s'", name, owner.Name)
	} else if !owner.Type.Plaintext.IsLiteral() || owner.Type.Plaintext.Literal != ADDRESS {
		return RecordType{}, fmt.Errorf("owner of record '%s' must be an address", name)
	}
	//
	seen := make(map[Identifier]bool)
	//
	for _, e := range entries {
		if seen[e.Name] {
			return RecordType{}, fmt.Errorf("duplicate entry '%s' in record '%s'", e.Name, name)
		}
		//
		seen[e.Name] = true
	}
	//
	return RecordType{name, entries}, nil
}

// Name returns the name of this record type.
func (p *RecordType) Name() Identifier {
	return p.name
}

// Entries returns the ordered entries of this record type.
func (p *RecordType) Entries() []RecordEntryType {
	return p.entries
}

// Entry looks up the declared type of an entry by name.
func (p *RecordType) Entry(name Identifier) (EntryType, bool) {
	for _, e := range p.entries {
		if e.Name == name {
			return e.Type, true
		}
	}
	//
	return EntryType{}, false
}

// Equal determines whether two record types are identical.
func (p *RecordType) Equal(other *RecordType) bool {
	if p.name != other.name || len(p.entries) != len(other.entries) {
		return false
	}
	//
	for i := range p.entries {
		if p.entries[i] != other.entries[i] {
			return false
		}
	}
	//
	return true
}

func (p RecordType) String() string {
	var builder strings.Builder
	//
	builder.WriteString(fmt.Sprintf("record %s:", p.name))
	//
	for _, e := range p.entries {
		builder.WriteString(fmt.Sprintf("\n    %s as %s;", e.Name, e.Type))
	}
	//
	return builder.String()
}

// WriteLE writes the binary form of this record type.
func (p *RecordType) WriteLE(w io.Writer) error {
	if err := p.name.WriteLE(w); err != nil {
		return err
	}
	//
	if err := writeUint16LE(w, uint16(len(p.entries))); err != nil {
		return err
	}
	//
	for _, e := range p.entries {
		if err := e.Name.WriteLE(w); err != nil {
			return err
		}
		//
		if err := e.Type.WriteLE(w); err != nil {
			return err
		}
	}
	//
	return nil
}

// ReadRecordTypeLE reads the binary form of a record type.
func ReadRecordTypeLE(r io.Reader) (RecordType, error) {
	name, err := ReadIdentifierLE(r)
	//
	if err != nil {
		return RecordType{}, err
	}
	//
	n, err := readUint16LE(r)
	//
	if err != nil {
		return RecordType{}, err
	}
	//
	entries := make([]RecordEntryType, n)
	//
	for i := range entries {
		if entries[i].Name, err = ReadIdentifierLE(r); err != nil {
			return RecordType{}, err
		}
		//
		if entries[i].Type, err = ReadEntryTypeLE(r); err != nil {
			return RecordType{}, err
		}
	}
	//
	return NewRecordType(name, entries)
}
