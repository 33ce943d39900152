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
package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coinsccg/snarkVM/pkg/network"
	"github.com/coinsccg/snarkVM/pkg/program"
	"github.com/coinsccg/snarkVM/pkg/util/source"
	"github.com/stretchr/testify/require"
)

func Test_File_01(t *testing.T) {
	var (
		dir  = t.TempDir()
		prog = build_Program(t)
	)
	//
	path, err := WriteText(dir, prog)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "token.avm"), path)
	//
	back, errs, err := ReadText(path, network.Testnet3())
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Equal(t, prog.String(), back.String())
}

func Test_File_02(t *testing.T) {
	var (
		dir  = t.TempDir()
		prog = build_Program(t)
	)
	//
	path, err := WriteBinary(dir, prog)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "token.avm.bin"), path)
	//
	back, err := ReadBinary(path, network.Testnet3())
	require.NoError(t, err)
	require.Equal(t, prog.String(), back.String())
}

// A file whose stem disagrees with the declared program name is rejected.
func Test_File_03(t *testing.T) {
	var (
		dir  = t.TempDir()
		prog = build_Program(t)
	)
	//
	path, err := WriteText(dir, prog)
	require.NoError(t, err)
	//
	renamed := filepath.Join(dir, "credits.avm")
	require.NoError(t, os.Rename(path, renamed))
	//
	_, _, err = ReadText(renamed, network.Testnet3())
	require.Error(t, err)
}

// Loading reports syntax errors rather than a program.
func Test_File_04(t *testing.T) {
	var (
		dir  = t.TempDir()
		path = filepath.Join(dir, "token.avm")
	)
	//
	require.NoError(t, os.WriteFile(path, []byte("program token.aleo"), 0644))
	//
	prog, errs, err := ReadText(path, network.Testnet3())
	require.NoError(t, err)
	require.Nil(t, prog)
	require.NotEmpty(t, errs)
}

// ===================================================================
// Test Helpers
// ===================================================================

func build_Program(t *testing.T) *program.Program {
	text := `
program token.aleo;

function compute:
    input r0 as field.public;
    input r1 as field.private;
    add r0 r1 into r2;
    output r2 as field.private;
`
	srcfile := source.NewSourceFile("token.avm", []byte(text))
	//
	prog, errs := program.ParseProgram(*srcfile, network.Testnet3())
	//
	for _, err := range errs {
		t.Fatalf("unexpected error: %s", err.Message())
	}
	//
	return prog
}
