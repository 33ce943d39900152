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
package console

import (
	"fmt"
	"math/big"
)

// Fixed-width integer arithmetic is performed over big.Int with explicit
// range and wrapping rules, so the same code serves every width.  Signed
// values are held in their natural (negative-capable) form; the two's
// complement unsigned representation is only materialised at the wire and
// circuit boundaries.

var (
	bigOne = big.NewInt(1)
)

// IntegerMin returns the smallest representable value of the given integer
// type.
func IntegerMin(t LiteralType) *big.Int {
	if t.IsUnsigned() {
		return big.NewInt(0)
	}
	// -2^(w-1)
	min := new(big.Int).Lsh(bigOne, t.BitWidth()-1)
	//
	return min.Neg(min)
}

// IntegerMax returns the largest representable value of the given integer
// type.
func IntegerMax(t LiteralType) *big.Int {
	var max *big.Int
	//
	if t.IsUnsigned() {
		// 2^w - 1
		max = new(big.Int).Lsh(bigOne, t.BitWidth())
	} else {
		// 2^(w-1) - 1
		max = new(big.Int).Lsh(bigOne, t.BitWidth()-1)
	}
	//
	return max.Sub(max, bigOne)
}

// IntegerInRange checks whether a value is representable in the given
// integer type.
func IntegerInRange(t LiteralType, v *big.Int) bool {
	return v.Cmp(IntegerMin(t)) >= 0 && v.Cmp(IntegerMax(t)) <= 0
}

// WrapInteger reduces an arbitrary value into the given integer type using
// two's complement / modular semantics.
func WrapInteger(t LiteralType, v *big.Int) *big.Int {
	var (
		width   = t.BitWidth()
		modulus = new(big.Int).Lsh(bigOne, width)
		wrapped = new(big.Int).Mod(v, modulus)
	)
	// Mod always yields a non-negative result.
	if t.IsSigned() && wrapped.Cmp(IntegerMax(t)) > 0 {
		wrapped.Sub(wrapped, modulus)
	}
	//
	return wrapped
}

// ToUnsignedRepr maps a representable value of the given integer type onto
// its unsigned (two's complement) representation in [0, 2^w).
func ToUnsignedRepr(t LiteralType, v *big.Int) *big.Int {
	if v.Sign() >= 0 {
		return new(big.Int).Set(v)
	}
	//
	modulus := new(big.Int).Lsh(bigOne, t.BitWidth())
	//
	return modulus.Add(modulus, v)
}

// FromUnsignedRepr maps an unsigned (two's complement) representation back
// onto the natural value of the given integer type.
func FromUnsignedRepr(t LiteralType, v *big.Int) *big.Int {
	return WrapInteger(t, v)
}

// checkInteger validates that a value is representable in the given type,
// returning the value unchanged if so.
func checkInteger(t LiteralType, v *big.Int) (*big.Int, error) {
	if !IntegerInRange(t, v) {
		return nil, fmt.Errorf("integer %s is not a valid %s", v, t)
	}
	//
	return v, nil
}
