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

// Package file reads and writes program artifacts.  A program is stored in a
// file named after it, either as source text (".avm") or in the binary wire
// form (".avm.bin").  Loading always goes back through the parser or the
// binary reader, so a loaded program has been fully revalidated.
package file

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/coinsccg/snarkVM/pkg/network"
	"github.com/coinsccg/snarkVM/pkg/program"
	"github.com/coinsccg/snarkVM/pkg/util/source"
)

// Source file extension.
const TextExtension = ".avm"

// Binary file extension.
const BinaryExtension = ".avm.bin"

// WriteText writes the source form of the given program into dir, under the
// program's own name.  The resulting path is returned.
func WriteText(dir string, p *program.Program) (string, error) {
	path := filepath.Join(dir, string(p.ID().Name)+TextExtension)
	//
	if err := os.WriteFile(path, []byte(p.String()), 0644); err != nil {
		return "", err
	}
	//
	return path, nil
}

// WriteBinary writes the wire form of the given program into dir, under the
// program's own name.  The resulting path is returned.
func WriteBinary(dir string, p *program.Program) (string, error) {
	var buf bytes.Buffer
	//
	if err := p.WriteLE(&buf); err != nil {
		return "", err
	}
	//
	path := filepath.Join(dir, string(p.ID().Name)+BinaryExtension)
	//
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", err
	}
	//
	return path, nil
}

// ReadText parses and validates the program stored at the given path, and
// checks that the file is named after the program it declares.  Syntax and
// validation failures are reported as source errors against the file.
func ReadText(path string, config *network.Config) (*program.Program, []source.SyntaxError, error) {
	data, err := os.ReadFile(path)
	//
	if err != nil {
		return nil, nil, err
	}
	//
	srcfile := source.NewSourceFile(path, data)
	//
	prog, errs := program.ParseProgram(*srcfile, config)
	//
	if len(errs) != 0 {
		return nil, errs, nil
	}
	//
	if err := checkStem(path, prog, TextExtension); err != nil {
		return nil, nil, err
	}
	//
	return prog, nil, nil
}

// ReadBinary reads and revalidates the program stored in wire form at the
// given path, and checks that the file is named after the program it
// declares.
func ReadBinary(path string, config *network.Config) (*program.Program, error) {
	data, err := os.ReadFile(path)
	//
	if err != nil {
		return nil, err
	}
	//
	prog, err := program.ReadProgramLE(bytes.NewReader(data), config)
	//
	if err != nil {
		return nil, err
	}
	//
	if err := checkStem(path, prog, BinaryExtension); err != nil {
		return nil, err
	}
	//
	return prog, nil
}

// checkStem ensures the filename (minus extension) matches the declared
// program name.
func checkStem(path string, p *program.Program, ext string) error {
	stem, ok := strings.CutSuffix(filepath.Base(path), ext)
	//
	if !ok || stem != string(p.ID().Name) {
		return fmt.Errorf("file %q does not match program name %q", filepath.Base(path), p.ID().Name)
	}
	//
	return nil
}
