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

// MAX_IDENTIFIER_BYTES bounds the length of any identifier.  This ensures an
// identifier always packs into a single field element.
const MAX_IDENTIFIER_BYTES = 31

// Identifier is a (validated) name for a program definition, register member,
// record entry, etc.  A valid identifier is a non-empty sequence of lowercase
// letters, digits and underscores which begins with a letter.
type Identifier string

// NewIdentifier validates a raw string as an identifier.
func NewIdentifier(name string) (Identifier, error) {
	if name == "" {
		return "", fmt.Errorf("identifier is empty")
	} else if len(name) > MAX_IDENTIFIER_BYTES {
		return "", fmt.Errorf("identifier '%s' exceeds %d bytes", name, MAX_IDENTIFIER_BYTES)
	}
	//
	for i, c := range name {
		switch {
		case c >= 'a' && c <= 'z':
		case c == '_' && i != 0:
		case c >= '0' && c <= '9' && i != 0:
		default:
			return "", fmt.Errorf("invalid character '%c' in identifier '%s'", c, name)
		}
	}
	//
	return Identifier(name), nil
}

func (p Identifier) String() string {
	return string(p)
}

// WriteLE writes the binary form of this identifier (length byte + contents).
func (p Identifier) WriteLE(w io.Writer) error {
	if _, err := w.Write([]byte{byte(len(p))}); err != nil {
		return err
	}
	//
	_, err := w.Write([]byte(p))
	//
	return err
}

// ReadIdentifierLE reads the binary form of an identifier.
func ReadIdentifierLE(r io.Reader) (Identifier, error) {
	var n [1]byte
	//
	if _, err := io.ReadFull(r, n[:]); err != nil {
		return "", err
	}
	//
	buf := make([]byte, n[0])
	//
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	//
	return NewIdentifier(string(buf))
}
