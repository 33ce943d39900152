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

// Package op defines the literal operations of the instruction set.  Every
// operation carries a native evaluator, which computes over console
// literals, and a circuit evaluator, which emits constraints over circuit
// literals.  Operations are registered in a static table at process start
// and looked up by opcode.
package op

import (
	"fmt"
	"sort"
	"strings"

	"github.com/consensys/gnark/frontend"

	"github.com/coinsccg/snarkVM/pkg/circuit"
	"github.com/coinsccg/snarkVM/pkg/console"
	"github.com/coinsccg/snarkVM/pkg/network"
)

// NativeFn evaluates an operation over concrete console literals.
type NativeFn func(config *network.Config, inputs []console.Literal) (console.Literal, error)

// CircuitFn evaluates an operation over circuit literals, emitting
// constraints through the frontend API.
type CircuitFn func(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error)

// Signature gives one admissible input-type tuple of an operation, together
// with the resulting output type.
type Signature struct {
	// Inputs gives the expected type of each operand.
	Inputs []console.LiteralType
	// Output gives the resulting type.
	Output console.LiteralType
}

// Operation describes a single opcode: its name, operand count, admissible
// signatures and both evaluators.
type Operation struct {
	// Name is the opcode as it appears in program text (e.g. "add.w").
	Name string
	// Arity is the number of operands.
	Arity int
	// Signatures lists every admissible input-type tuple.
	Signatures []Signature
	// Native evaluates the operation over console literals.
	Native NativeFn
	// Circuit evaluates the operation over circuit literals.
	Circuit CircuitFn
}

// SignatureFor finds the signature matching the given input types, or fails
// when the type tuple is inadmissible.
func (p *Operation) SignatureFor(inputs []console.LiteralType) (Signature, error) {
	if len(inputs) != p.Arity {
		return Signature{}, fmt.Errorf("opcode '%s' expects %d operands, found %d", p.Name, p.Arity, len(inputs))
	}
	//
outer:
	for _, sig := range p.Signatures {
		for i, t := range sig.Inputs {
			if t != inputs[i] {
				continue outer
			}
		}
		//
		return sig, nil
	}
	//
	return Signature{}, fmt.Errorf("opcode '%s' is not defined on (%s)", p.Name, formatTypes(inputs))
}

func formatTypes(types []console.LiteralType) string {
	var names []string
	//
	for _, t := range types {
		names = append(names, t.String())
	}
	//
	return strings.Join(names, ", ")
}

// ============================================================================
// Registry
// ============================================================================

var registry = map[string]*Operation{}

func register(op Operation) {
	if _, ok := registry[op.Name]; ok {
		panic(fmt.Sprintf("duplicate opcode '%s'", op.Name))
	}
	//
	registry[op.Name] = &op
}

// Lookup finds the operation registered under the given opcode.
func Lookup(opcode string) (*Operation, bool) {
	op, ok := registry[opcode]
	return op, ok
}

// Opcodes returns every registered opcode in lexicographic order, together
// with the stack-level opcodes "call" and "cast" which have no registry
// entry of their own.
func Opcodes() []string {
	opcodes := []string{"call", "cast"}
	//
	for name := range registry {
		opcodes = append(opcodes, name)
	}
	//
	sort.Strings(opcodes)
	//
	return opcodes
}

// IsOpcode determines whether the given token is an opcode, including the
// stack-level opcodes.
func IsOpcode(token string) bool {
	if token == "call" || token == "cast" {
		return true
	}
	//
	_, ok := registry[token]
	//
	return ok
}
