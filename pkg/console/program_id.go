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

// ProgramID names a program, optionally qualified by the network it is
// deployed on (e.g. "token" versus "token.aleo").
type ProgramID struct {
	// Name of the program.
	Name Identifier
	// Network suffix, or empty if none was given.
	Network Identifier
}

// NewProgramID parses a program identifier of the form "name" or
// "name.network".
func NewProgramID(id string) (ProgramID, error) {
	var (
		pid ProgramID
		err error
	)
	//
	name, netw, qualified := strings.Cut(id, ".")
	//
	if pid.Name, err = NewIdentifier(name); err != nil {
		return pid, err
	}
	//
	if qualified {
		if pid.Network, err = NewIdentifier(netw); err != nil {
			return pid, err
		}
	}
	//
	return pid, nil
}

func (p ProgramID) String() string {
	if p.Network == "" {
		return string(p.Name)
	}
	//
	return fmt.Sprintf("%s.%s", p.Name, p.Network)
}

// WriteLE writes the binary form of this program ID: the name, followed by a
// variant byte (0 when no network suffix is present, 1 when the network
// identifier follows).
func (p ProgramID) WriteLE(w io.Writer) error {
	if err := p.Name.WriteLE(w); err != nil {
		return err
	}
	//
	if p.Network == "" {
		_, err := w.Write([]byte{0})
		return err
	}
	//
	if _, err := w.Write([]byte{1}); err != nil {
		return err
	}
	//
	return p.Network.WriteLE(w)
}

// ReadProgramIDLE reads the binary form of a program ID.
func ReadProgramIDLE(r io.Reader) (ProgramID, error) {
	var (
		pid     ProgramID
		variant [1]byte
		err     error
	)
	//
	if pid.Name, err = ReadIdentifierLE(r); err != nil {
		return pid, err
	}
	//
	if _, err = io.ReadFull(r, variant[:]); err != nil {
		return pid, err
	}
	//
	switch variant[0] {
	case 0:
		return pid, nil
	case 1:
		pid.Network, err = ReadIdentifierLE(r)
		return pid, err
	default:
		return pid, fmt.Errorf("invalid program ID variant '%d'", variant[0])
	}
}
