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
package program

import (
	"fmt"
	"io"
	"strings"

	"github.com/coinsccg/snarkVM/pkg/console"
	"github.com/coinsccg/snarkVM/pkg/network"
)

// version tags the binary program format.
const version uint16 = 1

func (p *Program) String() string {
	var builder strings.Builder
	//
	for _, imp := range p.imports {
		builder.WriteString(imp.String())
		builder.WriteString("\n")
	}
	//
	builder.WriteString(fmt.Sprintf("program %s;", p.id))
	//
	for _, name := range p.order {
		builder.WriteString("\n\n")
		//
		switch p.kinds[name] {
		case interfaceDecl:
			builder.WriteString(p.interfaces[name].String())
		case recordDecl:
			builder.WriteString(p.records[name].String())
		case closureDecl:
			builder.WriteString(p.closures[name].String())
		case functionDecl:
			builder.WriteString(p.functions[name].String())
		}
	}
	//
	builder.WriteString("\n")
	//
	return builder.String()
}

// WriteLE writes the binary form of this program: a version tag, the
// identifier, the imports and then every declaration in insertion order.
func (p *Program) WriteLE(w io.Writer) error {
	if err := writeUint16LE(w, version); err != nil {
		return err
	}
	//
	if err := p.id.WriteLE(w); err != nil {
		return err
	}
	//
	if err := writeUint16LE(w, uint16(len(p.imports))); err != nil {
		return err
	}
	//
	for _, imp := range p.imports {
		if err := imp.WriteLE(w); err != nil {
			return err
		}
	}
	//
	if err := writeUint16LE(w, uint16(len(p.order))); err != nil {
		return err
	}
	//
	for _, name := range p.order {
		if err := writeByte(w, byte(p.kinds[name])); err != nil {
			return err
		}
		//
		var err error
		//
		switch p.kinds[name] {
		case interfaceDecl:
			err = p.interfaces[name].WriteLE(w)
		case recordDecl:
			err = p.records[name].WriteLE(w)
		case closureDecl:
			err = p.closures[name].WriteLE(w)
		case functionDecl:
			err = p.functions[name].WriteLE(w)
		}
		//
		if err != nil {
			return err
		}
	}
	//
	return nil
}

// ReadProgramLE reads the binary form of a program, revalidating every
// declaration through the add operations.
func ReadProgramLE(r io.Reader, config *network.Config) (*Program, error) {
	v, err := readUint16LE(r)
	//
	if err != nil {
		return nil, err
	} else if v != version {
		return nil, fmt.Errorf("unsupported program version '%d'", v)
	}
	//
	id, err := console.ReadProgramIDLE(r)
	if err != nil {
		return nil, err
	}
	//
	program := New(config, id)
	//
	nimports, err := readUint16LE(r)
	if err != nil {
		return nil, err
	}
	//
	for i := uint16(0); i < nimports; i++ {
		imp, err := ReadImportLE(r)
		if err != nil {
			return nil, err
		}
		//
		if err := program.AddImport(imp); err != nil {
			return nil, err
		}
	}
	//
	ndecls, err := readUint16LE(r)
	if err != nil {
		return nil, err
	}
	//
	for i := uint16(0); i < ndecls; i++ {
		kind, err := readByte(r)
		if err != nil {
			return nil, err
		}
		//
		switch declKind(kind) {
		case interfaceDecl:
			itf, err := console.ReadInterfaceLE(r)
			if err != nil {
				return nil, err
			}
			//
			err = program.AddInterface(itf)
			if err != nil {
				return nil, err
			}
		case recordDecl:
			rt, err := console.ReadRecordTypeLE(r)
			if err != nil {
				return nil, err
			}
			//
			err = program.AddRecord(rt)
			if err != nil {
				return nil, err
			}
		case closureDecl:
			closure, err := ReadClosureLE(r)
			if err != nil {
				return nil, err
			}
			//
			err = program.AddClosure(closure)
			if err != nil {
				return nil, err
			}
		case functionDecl:
			fn, err := ReadFunctionLE(r)
			if err != nil {
				return nil, err
			}
			//
			err = program.AddFunction(fn)
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("invalid declaration variant '%d'", kind)
		}
	}
	//
	return program, nil
}
