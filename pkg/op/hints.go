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

package op

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
)

func init() {
	solver.RegisterHint(divRemHint, sqrtHint)
}

// divRemHint computes the truncated quotient and remainder of two
// non-negative integers.  The quotient and remainder are unconstrained here;
// the caller must bind them with q*b + r == a and r < b.
func divRemHint(_ *big.Int, inputs, outputs []*big.Int) error {
	if len(inputs) != 2 || len(outputs) != 2 {
		return errors.New("divRemHint expects two inputs and two outputs")
	}
	//
	a, b := inputs[0], inputs[1]
	//
	if b.Sign() == 0 {
		return errors.New("division by zero")
	}
	//
	outputs[0].QuoRem(a, b, outputs[1])
	//
	return nil
}

// sqrtHint computes the canonical square root of a quadratic residue,
// failing on non-residues.  The caller must bind the output with y*y == x
// and the canonicality bound.
func sqrtHint(mod *big.Int, inputs, outputs []*big.Int) error {
	if len(inputs) != 1 || len(outputs) != 1 {
		return errors.New("sqrtHint expects one input and one output")
	}
	//
	y := new(big.Int).ModSqrt(inputs[0], mod)
	//
	if y == nil {
		return errors.New("square root of a non-residue")
	}
	// Canonical root is the smaller of the pair.
	other := new(big.Int).Sub(mod, y)
	//
	if y.Sign() != 0 && other.Cmp(y) < 0 {
		y = other
	}
	//
	outputs[0].Set(y)
	//
	return nil
}
