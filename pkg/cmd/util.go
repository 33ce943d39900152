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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/coinsccg/snarkVM/pkg/console"
	"github.com/coinsccg/snarkVM/pkg/file"
	"github.com/coinsccg/snarkVM/pkg/network"
	"github.com/coinsccg/snarkVM/pkg/program"
	"github.com/coinsccg/snarkVM/pkg/util/source"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected boolean flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Read and validate the program stored at the given path, dispatching on the
// file extension.  Errors are reported and terminate the process.
func readProgramFile(filename string, config *network.Config) *program.Program {
	if strings.HasSuffix(filename, file.BinaryExtension) {
		prog, err := file.ReadBinary(filename, config)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		return prog
	}
	//
	prog, errs, err := file.ReadText(filename, config)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	if len(errs) != 0 {
		for _, e := range errs {
			printSyntaxError(&e)
		}
		//
		os.Exit(4)
	}
	//
	return prog
}

// Parse the remaining command-line arguments as input values for a function
// call.  Errors are reported and terminate the process.
func parseInputValues(args []string) []console.Value {
	inputs := make([]console.Value, len(args))
	//
	for i, arg := range args {
		value, err := console.ParseValue(arg)
		//
		if err != nil {
			fmt.Printf("input %d: %s\n", i, err)
			os.Exit(2)
		}
		//
		inputs[i] = value
	}
	//
	return inputs
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := min(line.Length()-lineOffset, span.Length())
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Println()
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight, coloured when attached to a terminal
	if term.IsTerminal(0) {
		fmt.Printf("\033[31m%s\033[0m\n", strings.Repeat("^", length))
	} else {
		fmt.Println(strings.Repeat("^", length))
	}
}
