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

	"github.com/coinsccg/snarkVM/pkg/console"
	"github.com/coinsccg/snarkVM/pkg/network"
	"github.com/coinsccg/snarkVM/pkg/stack"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// runCmd evaluates a function of a program on concrete inputs.
var runCmd = &cobra.Command{
	Use:   "run [flags] program.avm function input1 input2 ...",
	Short: "evaluate a function of a program.",
	Long: `Evaluate a given function of a program on the given input values,
	printing the resulting outputs.  A halting input combination is reported
	as an error.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
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
		fn, err := console.NewIdentifier(args[1])
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		inputs := parseInputValues(args[2:])
		//
		outputs, err := stack.New(prog).Evaluate(fn, inputs)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		for _, output := range outputs {
			fmt.Println(output.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
