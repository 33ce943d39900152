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
	"path/filepath"

	"github.com/coinsccg/snarkVM/pkg/file"
	"github.com/coinsccg/snarkVM/pkg/network"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// encodeCmd translates a program from source form into the binary wire form.
var encodeCmd = &cobra.Command{
	Use:   "encode [flags] program.avm",
	Short: "encode a program into its binary form.",
	Long: `Parse and validate a given program, then write it out again in the
	binary wire form next to the original file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		prog := readProgramFile(args[0], network.Testnet3())
		//
		path, err := file.WriteBinary(filepath.Dir(args[0]), prog)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Printf("wrote %s\n", path)
	},
}

// decodeCmd translates a program from binary wire form back into source form.
var decodeCmd = &cobra.Command{
	Use:   "decode [flags] program.avm.bin",
	Short: "decode a binary program into its source form.",
	Long: `Read and revalidate a given binary program, then print its source
	form.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		prog, err := file.ReadBinary(args[0], network.Testnet3())
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Print(prog.String())
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}
