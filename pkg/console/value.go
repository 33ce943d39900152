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

// Value is what flows across the stack boundary: either a plaintext, or a
// record.
type Value struct {
	record *Record
	// Live when record is nil.
	plaintext Plaintext
}

// NewPlaintextValue wraps a plaintext as a value.
func NewPlaintextValue(p Plaintext) Value {
	return Value{plaintext: p}
}

// NewRecordValue wraps a record as a value.
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
func (p *Value) Find(path []Identifier) (Plaintext, error) {
	if p.record != nil {
		return p.record.Find(path)
	}
	//
	return p.plaintext.Find(path)
}

// Equal determines whether two values are structurally equal.
func (p *Value) Equal(other *Value) bool {
	if p.IsRecord() != other.IsRecord() {
		return false
	}
	//
	if p.IsRecord() {
		return p.record.Equal(other.record)
	}
	//
	return p.plaintext.Equal(&other.plaintext)
}

func (p Value) String() string {
	if p.record != nil {
		return p.record.String()
	}
	//
	return p.plaintext.String()
}

// WriteLE writes the binary form of this value.
func (p *Value) WriteLE(w io.Writer) error {
	if p.record != nil {
		if _, err := w.Write([]byte{1}); err != nil {
			return err
		}
		//
		return p.record.WriteLE(w)
	}
	//
	if _, err := w.Write([]byte{0}); err != nil {
		return err
	}
	//
	return p.plaintext.WriteLE(w)
}

// ReadValueLE reads the binary form of a value.
func ReadValueLE(r io.Reader) (Value, error) {
	var variant [1]byte
	//
	if _, err := io.ReadFull(r, variant[:]); err != nil {
		return Value{}, err
	}
	//
	switch variant[0] {
	case 0:
		plaintext, err := ReadPlaintextLE(r)
		return NewPlaintextValue(plaintext), err
	case 1:
		record, err := ReadRecordLE(r)
		//
		if err != nil {
			return Value{}, err
		}
		//
		return NewRecordValue(record), nil
	default:
		return Value{}, fmt.Errorf("invalid value variant '%d'", variant[0])
	}
}
