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

// RecordEntry is a single named entry of a record value, qualified by its
// visibility mode.
type RecordEntry struct {
	// Name of the entry.
	Name Identifier
	// Value of the entry.
	Value Plaintext
	// Visibility of the entry.
	Mode Visibility
}

// Record is an ordered collection of visibility-qualified entries, the first
// of which is always the owning address.
type Record struct {
	entries []RecordEntry
}

// NewRecord constructs a record from an ordered entry list.  The first entry
// must be named "owner" and hold an address literal.
func NewRecord(entries []RecordEntry) (Record, error) {
	if len(entries) == 0 {
		return Record{}, fmt.Errorf("record is missing entries")
	}
	//
	owner := entries[0]
	//
	if owner.Name != "owner" {
		return Record{}, fmt.Errorf("first record entry must be 'owner', found '%s'", owner.Name)
	} else if !owner.Value.IsLiteral() {
		return Record{}, fmt.Errorf("record owner must be an address")
	} else if ownerLit := owner.Value.Literal(); ownerLit.Type() != ADDRESS {
		return Record{}, fmt.Errorf("record owner must be an address")
	}
	//
	return Record{entries}, nil
}

// Entries returns the ordered entries of this record.
func (p *Record) Entries() []RecordEntry {
	return p.entries
}

// Entry looks up an entry by name.
func (p *Record) Entry(name Identifier) (RecordEntry, bool) {
	for _, e := range p.entries {
		if e.Name == name {
			return e, true
		}
	}
	//
	return RecordEntry{}, false
}

// Owner returns the owning address of this record.
func (p *Record) Owner() Address {
	literal := p.entries[0].Value.Literal()
	//
	return literal.Address()
}

// Find projects into this record along a path of entry/member names.
func (p *Record) Find(path []Identifier) (Plaintext, error) {
	if len(path) == 0 {
		return Plaintext{}, fmt.Errorf("empty record projection")
	}
	//
	entry, ok := p.Entry(path[0])
	//
	if !ok {
		return Plaintext{}, fmt.Errorf("entry '%s' not found", path[0])
	}
	//
	return entry.Value.Find(path[1:])
}

// Equal determines whether two records are structurally equal, including
// entry visibility.
func (p *Record) Equal(other *Record) bool {
	if len(p.entries) != len(other.entries) {
		return false
	}
	//
	for i := range p.entries {
		switch {
		case p.entries[i].Name != other.entries[i].Name:
			return false
		case p.entries[i].Mode != other.entries[i].Mode:
			return false
		case !p.entries[i].Value.Equal(&other.entries[i].Value):
			return false
		}
	}
	//
	return true
}

func (p Record) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{ ")
	//
	for i, e := range p.entries {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(fmt.Sprintf("%s: %s.%s", e.Name, e.Value, e.Mode))
	}
	//
	builder.WriteString(" }")
	//
	return builder.String()
}

// WriteLE writes the binary form of this record.
func (p *Record) WriteLE(w io.Writer) error {
	if err := writeUint16LE(w, uint16(len(p.entries))); err != nil {
		return err
	}
	//
	for _, e := range p.entries {
		if err := e.Name.WriteLE(w); err != nil {
			return err
		}
		//
		if err := e.Value.WriteLE(w); err != nil {
			return err
		}
		//
		if _, err := w.Write([]byte{byte(e.Mode)}); err != nil {
			return err
		}
	}
	//
	return nil
}

// ReadRecordLE reads the binary form of a record.
func ReadRecordLE(r io.Reader) (Record, error) {
	n, err := readUint16LE(r)
	//
	if err != nil {
		return Record{}, err
	}
	//
	entries := make([]RecordEntry, n)
	//
	for i := range entries {
		var mode [1]byte
		//
		if entries[i].Name, err = ReadIdentifierLE(r); err != nil {
			return Record{}, err
		}
		//
		if entries[i].Value, err = ReadPlaintextLE(r); err != nil {
			return Record{}, err
		}
		//
		if _, err = io.ReadFull(r, mode[:]); err != nil {
			return Record{}, err
		}
		//
		entries[i].Mode = Visibility(mode[0])
	}
	//
	return NewRecord(entries)
}
