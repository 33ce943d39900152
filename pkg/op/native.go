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
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/twistededwards"

	"github.com/coinsccg/snarkVM/pkg/console"
	"github.com/coinsccg/snarkVM/pkg/network"
)

// checkedInteger wraps an integer result, halting when it falls outside the
// representable range of the given type.
func checkedInteger(opcode string, t console.LiteralType, v *big.Int) (console.Literal, error) {
	if !console.IntegerInRange(t, v) {
		return console.Literal{}, Haltf("'%s' overflowed on %s", opcode, t)
	}
	//
	return console.NewInteger(t, v)
}

// wrappedInteger reduces an integer result into range via two's complement
// wrapping.
func wrappedInteger(t console.LiteralType, v *big.Int) (console.Literal, error) {
	return console.NewInteger(t, console.WrapInteger(t, v))
}

// ============================================================================
// Arithmetic
// ============================================================================

func nativeAdd(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	a, b := inputs[0], inputs[1]
	//
	switch t := a.Type(); {
	case t == console.FIELD:
		var (
			r      fr.Element
			af, bf = a.Field(), b.Field()
		)
		//
		r.Add(&af, &bf)
		//
		return console.NewField(r), nil
	case t == console.GROUP:
		var (
			r      twistededwards.PointAffine
			ag, bg = a.Group(), b.Group()
		)
		//
		r.Add(&ag, &bg)
		//
		return console.NewGroup(r), nil
	case t == console.SCALAR:
		return console.NewScalar(new(big.Int).Add(a.Scalar(), b.Scalar())), nil
	default:
		return checkedInteger("add", t, new(big.Int).Add(a.Integer(), b.Integer()))
	}
}

func nativeAddWrapped(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	a, b := inputs[0], inputs[1]
	return wrappedInteger(a.Type(), new(big.Int).Add(a.Integer(), b.Integer()))
}

func nativeSub(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	a, b := inputs[0], inputs[1]
	//
	switch t := a.Type(); {
	case t == console.FIELD:
		var (
			r      fr.Element
			af, bf = a.Field(), b.Field()
		)
		//
		r.Sub(&af, &bf)
		//
		return console.NewField(r), nil
	case t == console.GROUP:
		var (
			r      twistededwards.PointAffine
			ag, bg = a.Group(), b.Group()
		)
		//
		r.Neg(&bg)
		r.Add(&ag, &r)
		//
		return console.NewGroup(r), nil
	case t == console.SCALAR:
		return console.NewScalar(new(big.Int).Sub(a.Scalar(), b.Scalar())), nil
	default:
		return checkedInteger("sub", t, new(big.Int).Sub(a.Integer(), b.Integer()))
	}
}

func nativeSubWrapped(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	a, b := inputs[0], inputs[1]
	return wrappedInteger(a.Type(), new(big.Int).Sub(a.Integer(), b.Integer()))
}

func nativeMul(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	a, b := inputs[0], inputs[1]
	// Normalise (scalar, group) to (group, scalar).
	if a.Type() == console.SCALAR && b.Type() == console.GROUP {
		a, b = b, a
	}
	//
	switch t := a.Type(); {
	case t == console.FIELD:
		var (
			r      fr.Element
			af, bf = a.Field(), b.Field()
		)
		//
		r.Mul(&af, &bf)
		//
		return console.NewField(r), nil
	case t == console.GROUP:
		var (
			r  twistededwards.PointAffine
			ag = a.Group()
		)
		//
		r.ScalarMultiplication(&ag, b.Scalar())
		//
		return console.NewGroup(r), nil
	default:
		return checkedInteger("mul", t, new(big.Int).Mul(a.Integer(), b.Integer()))
	}
}

func nativeMulWrapped(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	a, b := inputs[0], inputs[1]
	return wrappedInteger(a.Type(), new(big.Int).Mul(a.Integer(), b.Integer()))
}

func nativeDiv(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	a, b := inputs[0], inputs[1]
	//
	if a.Type() == console.FIELD {
		var (
			r      fr.Element
			af, bf = a.Field(), b.Field()
		)
		//
		if bf.IsZero() {
			return console.Literal{}, Haltf("'div' by zero")
		}
		//
		r.Inverse(&bf)
		r.Mul(&af, &r)
		//
		return console.NewField(r), nil
	}
	//
	if b.Integer().Sign() == 0 {
		return console.Literal{}, Haltf("'div' by zero")
	}
	// Truncated division, as overflow check catches MIN / -1.
	return checkedInteger("div", a.Type(), new(big.Int).Quo(a.Integer(), b.Integer()))
}

func nativeDivWrapped(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	a, b := inputs[0], inputs[1]
	//
	if b.Integer().Sign() == 0 {
		return console.Literal{}, Haltf("'div.w' by zero")
	}
	//
	return wrappedInteger(a.Type(), new(big.Int).Quo(a.Integer(), b.Integer()))
}

func nativePow(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	a, b := inputs[0], inputs[1]
	//
	if a.Type() == console.FIELD {
		var (
			r  fr.Element
			af = a.Field()
			bf = b.Field()
		)
		//
		r.Exp(af, bf.BigInt(new(big.Int)))
		//
		return console.NewField(r), nil
	}
	//
	return integerPow("pow", a, b, false)
}

func nativePowWrapped(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	return integerPow("pow.w", inputs[0], inputs[1], true)
}

// integerPow exponentiates a fixed-width integer base by an unsigned
// magnitude.  Bases of magnitude at most one are resolved directly, so the
// checked multiply loop below runs at most bit-width iterations before
// either finishing or overflowing.
func integerPow(opcode string, a, b console.Literal, wrapped bool) (console.Literal, error) {
	var (
		t    = a.Type()
		base = a.Integer()
		exp  = b.Integer()
		one  = big.NewInt(1)
	)
	//
	switch {
	case exp.Sign() == 0:
		return console.NewInteger(t, one)
	case base.Sign() == 0:
		return console.NewInteger(t, big.NewInt(0))
	case base.CmpAbs(one) == 0:
		if base.Sign() > 0 || exp.Bit(0) == 0 {
			return console.NewInteger(t, one)
		}
		//
		return console.NewInteger(t, big.NewInt(-1))
	}
	//
	if wrapped {
		var (
			width   = uint(t.BitWidth())
			modulus = new(big.Int).Lsh(one, width)
			ubase   = console.ToUnsignedRepr(t, base)
			r       = new(big.Int).Exp(ubase, exp, modulus)
		)
		//
		return console.NewInteger(t, console.FromUnsignedRepr(t, r))
	}
	//
	var (
		r     = big.NewInt(1)
		count = new(big.Int).Set(exp)
	)
	//
	for count.Sign() > 0 {
		r.Mul(r, base)
		//
		if !console.IntegerInRange(t, r) {
			return console.Literal{}, Haltf("'%s' overflowed on %s", opcode, t)
		}
		//
		count.Sub(count, one)
	}
	//
	return console.NewInteger(t, r)
}

// ============================================================================
// Shifts
// ============================================================================

func nativeShl(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	var (
		a, b  = inputs[0], inputs[1]
		t     = a.Type()
		width = uint64(t.BitWidth())
	)
	//
	if b.Integer().Cmp(new(big.Int).SetUint64(width)) >= 0 {
		return console.Literal{}, Haltf("'shl' shifted past the boundary of %s", t)
	}
	//
	shift := uint(b.Integer().Uint64())
	//
	return wrappedInteger(t, new(big.Int).Lsh(a.Integer(), shift))
}

func nativeShlWrapped(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	var (
		a, b  = inputs[0], inputs[1]
		t     = a.Type()
		shift = maskShift(t, b.Integer())
	)
	//
	return wrappedInteger(t, new(big.Int).Lsh(a.Integer(), shift))
}

func nativeShr(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	var (
		a, b  = inputs[0], inputs[1]
		t     = a.Type()
		width = uint64(t.BitWidth())
	)
	//
	if b.Integer().Cmp(new(big.Int).SetUint64(width)) >= 0 {
		return console.Literal{}, Haltf("'shr' shifted past the boundary of %s", t)
	}
	//
	shift := uint(b.Integer().Uint64())
	// Rsh floors, which is an arithmetic shift on signed values.
	return console.NewInteger(t, new(big.Int).Rsh(a.Integer(), shift))
}

func nativeShrWrapped(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	var (
		a, b  = inputs[0], inputs[1]
		t     = a.Type()
		shift = maskShift(t, b.Integer())
	)
	//
	return console.NewInteger(t, new(big.Int).Rsh(a.Integer(), shift))
}

// maskShift reduces a shift magnitude to the low log2(width) bits of the
// shifted type.
func maskShift(t console.LiteralType, magnitude *big.Int) uint {
	mask := uint64(t.BitWidth()) - 1
	return uint(new(big.Int).And(magnitude, new(big.Int).SetUint64(mask)).Uint64())
}

// ============================================================================
// Unary arithmetic
// ============================================================================

func nativeAbs(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	a := inputs[0]
	return checkedInteger("abs", a.Type(), new(big.Int).Abs(a.Integer()))
}

func nativeAbsWrapped(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	a := inputs[0]
	return wrappedInteger(a.Type(), new(big.Int).Abs(a.Integer()))
}

func nativeNeg(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	a := inputs[0]
	//
	switch t := a.Type(); {
	case t == console.FIELD:
		var (
			r  fr.Element
			af = a.Field()
		)
		//
		r.Neg(&af)
		//
		return console.NewField(r), nil
	case t == console.GROUP:
		var (
			r  twistededwards.PointAffine
			ag = a.Group()
		)
		//
		r.Neg(&ag)
		//
		return console.NewGroup(r), nil
	default:
		return checkedInteger("neg", t, new(big.Int).Neg(a.Integer()))
	}
}

func nativeDouble(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	a := inputs[0]
	//
	if a.Type() == console.FIELD {
		var (
			r  fr.Element
			af = a.Field()
		)
		//
		r.Double(&af)
		//
		return console.NewField(r), nil
	}
	//
	var (
		r  twistededwards.PointAffine
		ag = a.Group()
	)
	//
	r.Double(&ag)
	//
	return console.NewGroup(r), nil
}

func nativeInv(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	af := inputs[0].Field()
	//
	if af.IsZero() {
		return console.Literal{}, Haltf("'inv' of zero")
	}
	//
	var r fr.Element
	r.Inverse(&af)
	//
	return console.NewField(r), nil
}

func nativeSquare(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	var (
		r  fr.Element
		af = inputs[0].Field()
	)
	//
	r.Square(&af)
	//
	return console.NewField(r), nil
}

func nativeSqrt(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	r, ok := console.CanonicalSqrt(inputs[0].Field())
	//
	if !ok {
		return console.Literal{}, Haltf("'sqrt' of a non-residue")
	}
	//
	return console.NewField(r), nil
}

// ============================================================================
// Comparisons
// ============================================================================

// compareNative orders two literals of the same comparable type, returning
// the sign of a - b.  Field elements compare on their canonical residue.
func compareNative(a, b console.Literal) int {
	if a.Type() == console.FIELD {
		af, bf := a.Field(), b.Field()
		return af.BigInt(new(big.Int)).Cmp(bf.BigInt(new(big.Int)))
	}
	//
	if a.Type() == console.SCALAR {
		return a.Scalar().Cmp(b.Scalar())
	}
	//
	return a.Integer().Cmp(b.Integer())
}

func nativeGt(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	return console.NewBoolean(compareNative(inputs[0], inputs[1]) > 0), nil
}

func nativeGte(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	return console.NewBoolean(compareNative(inputs[0], inputs[1]) >= 0), nil
}

func nativeLt(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	return console.NewBoolean(compareNative(inputs[0], inputs[1]) < 0), nil
}

func nativeLte(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	return console.NewBoolean(compareNative(inputs[0], inputs[1]) <= 0), nil
}

func nativeIsEq(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	return console.NewBoolean(inputs[0].Equal(&inputs[1])), nil
}

func nativeIsNeq(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	return console.NewBoolean(!inputs[0].Equal(&inputs[1])), nil
}

// ============================================================================
// Logic
// ============================================================================

// bitwiseNative applies a bitwise connective over the unsigned two's
// complement representations of two same-width integers.
func bitwiseNative(a, b console.Literal, fn func(r, x, y *big.Int) *big.Int) (console.Literal, error) {
	var (
		t  = a.Type()
		ua = console.ToUnsignedRepr(t, a.Integer())
		ub = console.ToUnsignedRepr(t, b.Integer())
		r  = fn(new(big.Int), ua, ub)
	)
	//
	return console.NewInteger(t, console.FromUnsignedRepr(t, r))
}

func nativeAnd(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	a, b := inputs[0], inputs[1]
	//
	if a.Type() == console.BOOLEAN {
		return console.NewBoolean(a.Bool() && b.Bool()), nil
	}
	//
	return bitwiseNative(a, b, (*big.Int).And)
}

func nativeOr(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	a, b := inputs[0], inputs[1]
	//
	if a.Type() == console.BOOLEAN {
		return console.NewBoolean(a.Bool() || b.Bool()), nil
	}
	//
	return bitwiseNative(a, b, (*big.Int).Or)
}

func nativeXor(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	a, b := inputs[0], inputs[1]
	//
	if a.Type() == console.BOOLEAN {
		return console.NewBoolean(a.Bool() != b.Bool()), nil
	}
	//
	return bitwiseNative(a, b, (*big.Int).Xor)
}

func nativeNand(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	return console.NewBoolean(!(inputs[0].Bool() && inputs[1].Bool())), nil
}

func nativeNor(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	return console.NewBoolean(!(inputs[0].Bool() || inputs[1].Bool())), nil
}

func nativeNot(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	a := inputs[0]
	//
	if a.Type() == console.BOOLEAN {
		return console.NewBoolean(!a.Bool()), nil
	}
	//
	var (
		t    = a.Type()
		ua   = console.ToUnsignedRepr(t, a.Integer())
		mask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(t.BitWidth())), big.NewInt(1))
	)
	//
	return console.NewInteger(t, console.FromUnsignedRepr(t, new(big.Int).Xor(ua, mask)))
}

// ============================================================================
// Ternary
// ============================================================================

func nativeTernary(_ *network.Config, inputs []console.Literal) (console.Literal, error) {
	if inputs[0].Bool() {
		return inputs[1], nil
	}
	//
	return inputs[2], nil
}
