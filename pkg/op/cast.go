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
	"fmt"
	"math/big"

	fr "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/frontend"

	"github.com/coinsccg/snarkVM/pkg/circuit"
	"github.com/coinsccg/snarkVM/pkg/console"
	"github.com/coinsccg/snarkVM/pkg/network"
)

// NativeCast converts a literal to another literal type, halting unless the
// mathematical value of the source is exactly representable in the target.
// Negative values never cast to field or scalar.  Group, address and string
// literals do not cast.
func NativeCast(config *network.Config, in console.Literal, to console.LiteralType) (console.Literal, error) {
	if in.Type() == to {
		return in, nil
	}
	//
	x, err := castValue(&in)
	if err != nil {
		return console.Literal{}, err
	}
	//
	switch {
	case to == console.BOOLEAN:
		switch {
		case x.Sign() == 0:
			return console.NewBoolean(false), nil
		case x.Cmp(big.NewInt(1)) == 0:
			return console.NewBoolean(true), nil
		default:
			return console.Literal{}, Haltf("cannot cast %s to boolean", x)
		}
	case to == console.FIELD:
		if x.Sign() < 0 {
			return console.Literal{}, Haltf("cannot cast negative value %s to field", x)
		}
		//
		var f fr.Element
		f.SetBigInt(x)
		//
		return console.NewField(f), nil
	case to == console.SCALAR:
		if x.Sign() < 0 || x.Cmp(config.ScalarModulus) >= 0 {
			return console.Literal{}, Haltf("cannot cast %s to scalar", x)
		}
		//
		return console.NewScalar(x), nil
	case to.IsInteger():
		if !console.IntegerInRange(to, x) {
			return console.Literal{}, Haltf("cannot cast %s to %s", x, to)
		}
		//
		return console.NewInteger(to, x)
	default:
		return console.Literal{}, fmt.Errorf("cannot cast %s to %s", in.Type(), to)
	}
}

// castValue extracts the mathematical value of a castable literal.
func castValue(in *console.Literal) (*big.Int, error) {
	switch {
	case in.Type() == console.BOOLEAN:
		if in.Bool() {
			return big.NewInt(1), nil
		}
		//
		return big.NewInt(0), nil
	case in.Type() == console.FIELD:
		f := in.Field()
		return f.BigInt(new(big.Int)), nil
	case in.Type() == console.SCALAR:
		return in.Scalar(), nil
	case in.Type().IsInteger():
		return in.Integer(), nil
	default:
		return nil, fmt.Errorf("cannot cast %s literal", in.Type())
	}
}

// CircuitCast is the circuit counterpart of NativeCast.  Wherever the native
// evaluator halts, the emitted constraints are unsatisfiable.
func CircuitCast(api frontend.API, config *network.Config, in circuit.Literal, to console.LiteralType) (circuit.Literal, error) {
	if in.Type() == to {
		return in, nil
	}
	//
	b := &builder{api, config}
	//
	// Negative values are representable in signed targets only, so the
	// signed-to-signed case keeps the sign while every other signed source
	// asserts non-negativity.
	if in.Type().IsSigned() && to.IsSigned() {
		var (
			w     = width(to)
			s, ma = b.signMag(in.Wire(), width(in.Type()))
			bound = new(big.Int).Sub(pow2(w-1), big.NewInt(1))
		)
		// Permit 2^(w-1) for negative results only.
		api.AssertIsLessOrEqual(ma, api.Add(bound, s))
		//
		return circuit.NewLiteral(to, b.applySign(s, ma, w)), nil
	}
	// Reduce the source to a wire holding its (non-negative) mathematical
	// value.
	var x frontend.Variable
	//
	switch {
	case in.Type() == console.BOOLEAN, in.Type() == console.FIELD, in.Type() == console.SCALAR:
		x = in.Wire()
	case in.Type().IsUnsigned():
		x = in.Wire()
	case in.Type().IsSigned():
		s, mag := b.signMag(in.Wire(), width(in.Type()))
		api.AssertIsEqual(s, 0)
		//
		x = mag
	default:
		return circuit.Literal{}, fmt.Errorf("cannot cast %s literal", in.Type())
	}
	//
	switch {
	case to == console.BOOLEAN:
		api.AssertIsBoolean(x)
	case to == console.FIELD:
		// Every castable value is already canonical in the base field.
	case to == console.SCALAR:
		if in.Type() == console.FIELD {
			bound := new(big.Int).Sub(config.ScalarModulus, big.NewInt(1))
			api.AssertIsLessOrEqual(x, bound)
		}
	case to.IsSigned():
		// Non-negative signed values occupy one bit less than the width.
		api.ToBinary(x, int(width(to))-1)
	case to.IsUnsigned():
		api.ToBinary(x, int(width(to)))
	default:
		return circuit.Literal{}, fmt.Errorf("cannot cast %s to %s", in.Type(), to)
	}
	//
	return circuit.NewLiteral(to, x), nil
}
