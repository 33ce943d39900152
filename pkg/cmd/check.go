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

	"github.com/coinsccg/snarkVM/pkg/network"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// checkCmd parses and validates a program without executing anything.
var checkCmd = &cobra.Command{
	Use:   "check [flags] program.avm",
	Short: "check that a program is well-formed.",
	Long: `Parse and validate a given program, reporting any syntax or
	validation errors encountered.`,
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
		log.Debug(fmt.Sprintf("program %s contains %d function(s)", prog.ID(), len(prog.Functions())))
		//
		fmt.Printf("%s is well-formed\n", prog.ID())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
