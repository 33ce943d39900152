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
	"github.com/coinsccg/snarkVM/pkg/snark"
	"github.com/coinsccg/snarkVM/pkg/stack"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// proveCmd produces and checks a proof of one function execution.
var proveCmd = &cobra.Command{
	Use:   "prove [flags] program.avm function input1 input2 ...",
	Short: "prove an execution of a function of a program.",
	Long: `Synthesise the circuit for a given function on the given inputs,
	perform an ephemeral trusted setup, then produce and verify a proof of
	the execution.  Keys are not persisted.`,
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
		var (
			stk    = stack.New(prog)
			inputs = parseInputValues(args[2:])
		)
		// Synthesise constraints
		cs, err := snark.Compile(stk, fn, inputs)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		log.Debug(fmt.Sprintf("synthesised %d constraints", cs.GetNbConstraints()))
		// Ephemeral setup
		pk, vk, err := snark.Setup(cs)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		proof, public, outputs, err := snark.Prove(cs, pk, stk, fn, inputs)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		if err := snark.Verify(proof, vk, public); err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		for _, output := range outputs {
			fmt.Println(output.String())
		}
		//
		fmt.Printf("proof verified (%d constraints)\n", cs.GetNbConstraints())
	},
}

func init() {
	rootCmd.AddCommand(proveCmd)
}
