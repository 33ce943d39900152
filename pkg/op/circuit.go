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

	tedwards "github.com/consensys/gnark-crypto/ecc/twistededwards"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/native/twistededwards"

	"github.com/coinsccg/snarkVM/pkg/circuit"
	"github.com/coinsccg/snarkVM/pkg/console"
	"github.com/coinsccg/snarkVM/pkg/network"
)

// builder bundles the frontend API with network parameters, and carries the
// shared integer gadgets used by the circuit evaluators.  Integer wires hold
// their unsigned two's complement representation and are always bounded by
// the width of their type.
type builder struct {
	api    frontend.API
	config *network.Config
}

func (p *builder) curve() (twistededwards.Curve, error) {
	return twistededwards.NewEdCurve(p.api, tedwards.BLS12_377)
}

// pow2 gives 2^n as a constant.
func pow2(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}

// width returns the bit width of an integer type.
func width(t console.LiteralType) uint {
	return uint(t.BitWidth())
}

// log2 returns the base-two logarithm of a (power of two) integer width.
func log2(w uint) int {
	n := 0
	//
	for 1<<n < int(w) {
		n++
	}
	//
	return n
}

// nonZero returns 1 when the wire is non-zero, else 0.
func (p *builder) nonZero(v frontend.Variable) frontend.Variable {
	return p.api.Sub(1, p.api.IsZero(v))
}

// signBit extracts the sign bit of a w-bit two's complement wire.
func (p *builder) signBit(v frontend.Variable, w uint) frontend.Variable {
	bits := p.api.ToBinary(v, int(w))
	return bits[w-1]
}

// signMag splits a w-bit two's complement wire into a sign bit and an
// unsigned magnitude in [0, 2^(w-1)].
func (p *builder) signMag(v frontend.Variable, w uint) (frontend.Variable, frontend.Variable) {
	s := p.signBit(v, w)
	return s, p.api.Select(s, p.api.Sub(pow2(w), v), v)
}

// applySign negates a magnitude in two's complement when the sign bit is
// set, reducing modulo 2^w.
func (p *builder) applySign(s, mag frontend.Variable, w uint) frontend.Variable {
	var (
		zero = p.api.IsZero(mag)
		neg  = p.api.Sub(pow2(w), mag)
	)
	//
	return p.api.Select(zero, 0, p.api.Select(s, neg, mag))
}

// gte returns 1 when a >= b, for w-bit unsigned wires.
func (p *builder) gte(a, b frontend.Variable, w uint) frontend.Variable {
	var (
		d    = p.api.Add(a, p.api.Sub(pow2(w), b))
		bits = p.api.ToBinary(d, int(w)+1)
	)
	//
	return bits[w]
}

// ordered maps a w-bit integer wire into [0, 2^w) such that the natural
// order of the wires matches the order of the represented values.  Unsigned
// wires are already ordered; signed wires have their sign bit flipped.
func (p *builder) ordered(v frontend.Variable, t console.LiteralType) frontend.Variable {
	if !t.IsSigned() {
		return v
	}
	//
	var (
		w    = width(t)
		s    = p.signBit(v, w)
		down = p.api.Sub(v, pow2(w-1))
		up   = p.api.Add(v, pow2(w-1))
	)
	//
	return p.api.Select(s, down, up)
}

// mulFull computes the full product of two w-bit unsigned wires, returning
// its low w bits and the spill above them.  Widths up to 64 fit the product
// in a single field element; 128-bit operands are split into 64-bit limbs
// with carry propagation.
func (p *builder) mulFull(a, b frontend.Variable, w uint) (frontend.Variable, frontend.Variable) {
	if w <= 64 {
		var (
			raw  = p.api.Mul(a, b)
			bits = p.api.ToBinary(raw, int(2*w))
			low  = p.api.FromBinary(bits[:w]...)
			high = p.api.FromBinary(bits[w:]...)
		)
		//
		return low, high
	}
	//
	var (
		abits = p.api.ToBinary(a, 128)
		bbits = p.api.ToBinary(b, 128)
		a0    = p.api.FromBinary(abits[:64]...)
		a1    = p.api.FromBinary(abits[64:]...)
		b0    = p.api.FromBinary(bbits[:64]...)
		b1    = p.api.FromBinary(bbits[64:]...)
		// Column sums of the 64-bit limb products.
		c0 = p.api.Mul(a0, b0)
		c1 = p.api.Add(p.api.Mul(a1, b0), p.api.Mul(a0, b1))
		c2 = p.api.Mul(a1, b1)
	)
	// Propagate carries column by column.
	c0bits := p.api.ToBinary(c0, 128)
	l0, k0 := p.api.FromBinary(c0bits[:64]...), p.api.FromBinary(c0bits[64:]...)
	//
	t1bits := p.api.ToBinary(p.api.Add(c1, k0), 130)
	l1, k1 := p.api.FromBinary(t1bits[:64]...), p.api.FromBinary(t1bits[64:]...)
	//
	t2bits := p.api.ToBinary(p.api.Add(c2, k1), 129)
	h0, h1 := p.api.FromBinary(t2bits[:64]...), p.api.FromBinary(t2bits[64:]...)
	//
	var (
		low  = p.api.Add(l0, p.api.Mul(l1, pow2(64)))
		high = p.api.Add(h0, p.api.Mul(h1, pow2(64)))
	)
	//
	return low, high
}

// divMag divides two unsigned w-bit wires, binding the hinted quotient and
// remainder with a == q*b + r and r < b.  The divisor must be non-zero for
// the system to be satisfiable.
func (p *builder) divMag(a, b frontend.Variable, w uint) (frontend.Variable, error) {
	outs, err := p.api.Compiler().NewHint(divRemHint, 2, a, b)
	if err != nil {
		return nil, err
	}
	//
	q, r := outs[0], outs[1]
	p.api.ToBinary(q, int(w))
	p.api.ToBinary(r, int(w))
	//
	low, high := p.mulFull(q, b, w)
	p.api.AssertIsEqual(high, 0)
	p.api.AssertIsEqual(p.api.Add(low, r), a)
	p.api.AssertIsLessOrEqual(r, p.api.Sub(b, 1))
	//
	return q, nil
}

// ============================================================================
// Arithmetic
// ============================================================================

// addSub lowers a w-bit addition or subtraction into a (w+1)-bit
// decomposition, returning the wrapped result together with the sign bits
// needed for overflow detection.
func (p *builder) addSub(a, b frontend.Variable, w uint, sub bool) (frontend.Variable, []frontend.Variable) {
	var raw frontend.Variable
	//
	if sub {
		raw = p.api.Add(a, p.api.Sub(pow2(w), b))
	} else {
		raw = p.api.Add(a, b)
	}
	//
	bits := p.api.ToBinary(raw, int(w)+1)
	//
	return p.api.FromBinary(bits[:w]...), bits
}

func (p *builder) integerAddSub(a, b frontend.Variable, t console.LiteralType, sub, checked bool) frontend.Variable {
	var (
		w            = width(t)
		wrapped, raw = p.addSub(a, b, w, sub)
	)
	//
	if !checked {
		return wrapped
	}
	//
	if !t.IsSigned() {
		// The top bit is the carry out, or the absent borrow when
		// subtracting.
		expected := 0
		if sub {
			expected = 1
		}
		//
		p.api.AssertIsEqual(raw[w], expected)
		//
		return wrapped
	}
	// Signed overflow inspects the sign bits.  Addition overflows when both
	// operands share a sign the result lacks; subtraction when the operand
	// signs differ and the result follows the subtrahend.
	var (
		sa       = p.signBit(a, w)
		sb       = p.signBit(b, w)
		sr       = raw[w-1]
		sameAB   = p.api.Sub(1, p.api.Xor(sa, sb))
		diffAR   = p.api.Xor(sa, sr)
		overflow frontend.Variable
	)
	//
	if sub {
		overflow = p.api.Mul(p.api.Xor(sa, sb), diffAR)
	} else {
		overflow = p.api.Mul(sameAB, diffAR)
	}
	//
	p.api.AssertIsEqual(overflow, 0)
	//
	return wrapped
}

func circuitAdd(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	var (
		b = &builder{api, config}
		t = inputs[0].Type()
	)
	//
	switch {
	case t == console.FIELD:
		return circuit.NewLiteral(t, api.Add(inputs[0].Wire(), inputs[1].Wire())), nil
	case t == console.GROUP:
		return b.groupAdd(inputs[0], inputs[1], false)
	case t == console.SCALAR:
		return b.scalarAddSub(inputs[0], inputs[1], false), nil
	default:
		return circuit.NewLiteral(t, b.integerAddSub(inputs[0].Wire(), inputs[1].Wire(), t, false, true)), nil
	}
}

func circuitAddWrapped(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	var (
		b = &builder{api, config}
		t = inputs[0].Type()
	)
	//
	return circuit.NewLiteral(t, b.integerAddSub(inputs[0].Wire(), inputs[1].Wire(), t, false, false)), nil
}

func circuitSub(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	var (
		b = &builder{api, config}
		t = inputs[0].Type()
	)
	//
	switch {
	case t == console.FIELD:
		return circuit.NewLiteral(t, api.Sub(inputs[0].Wire(), inputs[1].Wire())), nil
	case t == console.GROUP:
		return b.groupAdd(inputs[0], inputs[1], true)
	case t == console.SCALAR:
		return b.scalarAddSub(inputs[0], inputs[1], true), nil
	default:
		return circuit.NewLiteral(t, b.integerAddSub(inputs[0].Wire(), inputs[1].Wire(), t, true, true)), nil
	}
}

func circuitSubWrapped(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	var (
		b = &builder{api, config}
		t = inputs[0].Type()
	)
	//
	return circuit.NewLiteral(t, b.integerAddSub(inputs[0].Wire(), inputs[1].Wire(), t, true, false)), nil
}

func (p *builder) integerMul(a, b frontend.Variable, t console.LiteralType, checked bool) frontend.Variable {
	w := width(t)
	//
	if !t.IsSigned() {
		low, high := p.mulFull(a, b, w)
		//
		if checked {
			p.api.AssertIsEqual(high, 0)
		}
		//
		return low
	}
	//
	var (
		sa, ma    = p.signMag(a, w)
		sb, mb    = p.signMag(b, w)
		low, high = p.mulFull(ma, mb, w)
		s         = p.api.Xor(sa, sb)
	)
	//
	if checked {
		// The magnitude may reach 2^(w-1) only when the result is negative.
		p.api.AssertIsEqual(high, 0)
		p.api.AssertIsLessOrEqual(low, p.api.Add(new(big.Int).Sub(pow2(w-1), big.NewInt(1)), s))
	}
	//
	return p.applySign(s, low, w)
}

func circuitMul(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	var (
		b    = &builder{api, config}
		x, y = inputs[0], inputs[1]
	)
	// Normalise (scalar, group) to (group, scalar).
	if x.Type() == console.SCALAR && y.Type() == console.GROUP {
		x, y = y, x
	}
	//
	switch t := x.Type(); {
	case t == console.FIELD:
		return circuit.NewLiteral(t, api.Mul(x.Wire(), y.Wire())), nil
	case t == console.GROUP:
		curve, err := b.curve()
		if err != nil {
			return circuit.Literal{}, err
		}
		//
		px, py := x.Point()
		//
		r := curve.ScalarMul(twistededwards.Point{X: px, Y: py}, y.Wire())
		//
		return circuit.NewPointLiteral(console.GROUP, r.X, r.Y), nil
	default:
		return circuit.NewLiteral(t, b.integerMul(x.Wire(), y.Wire(), t, true)), nil
	}
}

func circuitMulWrapped(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	var (
		b = &builder{api, config}
		t = inputs[0].Type()
	)
	//
	return circuit.NewLiteral(t, b.integerMul(inputs[0].Wire(), inputs[1].Wire(), t, false)), nil
}

func (p *builder) integerDiv(a, b frontend.Variable, t console.LiteralType, checked bool) (frontend.Variable, error) {
	w := width(t)
	// Unsatisfiable on a zero divisor.
	p.api.AssertIsDifferent(b, 0)
	//
	if !t.IsSigned() {
		return p.divMag(a, b, w)
	}
	//
	var (
		sa, ma = p.signMag(a, w)
		sb, mb = p.signMag(b, w)
		s      = p.api.Xor(sa, sb)
	)
	//
	qm, err := p.divMag(ma, mb, w)
	if err != nil {
		return nil, err
	}
	//
	if checked {
		// Rules out MIN / -1.
		p.api.AssertIsLessOrEqual(qm, p.api.Add(new(big.Int).Sub(pow2(w-1), big.NewInt(1)), s))
	}
	//
	return p.applySign(s, qm, w), nil
}

func circuitDiv(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	var (
		b = &builder{api, config}
		t = inputs[0].Type()
	)
	//
	if t == console.FIELD {
		return circuit.NewLiteral(t, api.Div(inputs[0].Wire(), inputs[1].Wire())), nil
	}
	//
	r, err := b.integerDiv(inputs[0].Wire(), inputs[1].Wire(), t, true)
	if err != nil {
		return circuit.Literal{}, err
	}
	//
	return circuit.NewLiteral(t, r), nil
}

func circuitDivWrapped(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	var (
		b = &builder{api, config}
		t = inputs[0].Type()
	)
	//
	r, err := b.integerDiv(inputs[0].Wire(), inputs[1].Wire(), t, false)
	if err != nil {
		return circuit.Literal{}, err
	}
	//
	return circuit.NewLiteral(t, r), nil
}

// powMag raises a w-bit unsigned base to an exponent given by its bit
// decomposition, via square and multiply with wrapped steps.  The returned
// flag is set when any step on the evaluation chain spilled past w bits,
// which is exactly when the exact result would.
func (p *builder) powMag(base frontend.Variable, ebits []frontend.Variable, w uint) (frontend.Variable, frontend.Variable) {
	var (
		acc      = frontend.Variable(1)
		overflow = frontend.Variable(0)
	)
	//
	for i := len(ebits) - 1; i >= 0; i-- {
		low, high := p.mulFull(acc, acc, w)
		acc = low
		overflow = p.api.Or(overflow, p.nonZero(high))
		//
		low, high = p.mulFull(acc, base, w)
		spill := p.nonZero(high)
		//
		acc = p.api.Select(ebits[i], low, acc)
		overflow = p.api.Select(ebits[i], p.api.Or(overflow, spill), overflow)
	}
	//
	return acc, overflow
}

func (p *builder) integerPow(a, e frontend.Variable, t, et console.LiteralType, checked bool) frontend.Variable {
	var (
		w     = width(t)
		ebits = p.api.ToBinary(e, int(width(et)))
	)
	//
	if !t.IsSigned() {
		acc, overflow := p.powMag(a, ebits, w)
		//
		if checked {
			p.api.AssertIsEqual(overflow, 0)
		}
		//
		return acc
	}
	//
	var (
		sa, ma = p.signMag(a, w)
		// Negative base and odd exponent yield a negative result.
		s             = p.api.And(sa, ebits[0])
		acc, overflow = p.powMag(ma, ebits, w)
	)
	//
	if checked {
		p.api.AssertIsEqual(overflow, 0)
		p.api.AssertIsLessOrEqual(acc, p.api.Add(new(big.Int).Sub(pow2(w-1), big.NewInt(1)), s))
	}
	//
	return p.applySign(s, acc, w)
}

func circuitPow(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	var (
		b = &builder{api, config}
		t = inputs[0].Type()
	)
	//
	if t == console.FIELD {
		// Square and multiply over the exponent bits, most significant
		// first.
		var (
			base = inputs[0].Wire()
			bits = api.ToBinary(inputs[1].Wire(), config.FieldModulus.BitLen())
			acc  = frontend.Variable(1)
		)
		//
		for i := len(bits) - 1; i >= 0; i-- {
			acc = api.Mul(acc, acc)
			acc = api.Select(bits[i], api.Mul(acc, base), acc)
		}
		//
		return circuit.NewLiteral(t, acc), nil
	}
	//
	return circuit.NewLiteral(t, b.integerPow(inputs[0].Wire(), inputs[1].Wire(), t, inputs[1].Type(), true)), nil
}

func circuitPowWrapped(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	var (
		b = &builder{api, config}
		t = inputs[0].Type()
	)
	//
	return circuit.NewLiteral(t, b.integerPow(inputs[0].Wire(), inputs[1].Wire(), t, inputs[1].Type(), false)), nil
}

// ============================================================================
// Shifts
// ============================================================================

// shiftFactor converts a shift magnitude into the constant power 2^m.  When
// checked, the decomposition is unsatisfiable for magnitudes reaching the
// shifted width; otherwise the magnitude is masked to its low log2(w) bits.
func (p *builder) shiftFactor(mag frontend.Variable, mt console.LiteralType, w uint, checked bool) frontend.Variable {
	var bits []frontend.Variable
	//
	if checked {
		bits = p.api.ToBinary(mag, log2(w))
	} else {
		bits = p.api.ToBinary(mag, int(width(mt)))[:log2(w)]
	}
	//
	factor := frontend.Variable(1)
	//
	for i, bit := range bits {
		step := pow2(1 << i)
		factor = p.api.Mul(factor, p.api.Select(bit, step, 1))
	}
	//
	return factor
}

func (p *builder) integerShl(a, mag frontend.Variable, t, mt console.LiteralType, checked bool) frontend.Variable {
	var (
		w       = width(t)
		factor  = p.shiftFactor(mag, mt, w, checked)
		low, _  = p.mulFull(a, factor, w)
	)
	// Bits shifted past the boundary are dropped.
	return low
}

func (p *builder) integerShr(a, mag frontend.Variable, t, mt console.LiteralType, checked bool) (frontend.Variable, error) {
	var (
		w      = width(t)
		factor = p.shiftFactor(mag, mt, w, checked)
	)
	//
	q, err := p.divMag(a, factor, w)
	if err != nil {
		return nil, err
	}
	//
	if !t.IsSigned() {
		return q, nil
	}
	// Arithmetic shift fills the vacated bits with the sign, which in two's
	// complement is q + s*(2^w - 2^(w-m)).
	var (
		sa   = p.signBit(a, w)
		fill = p.api.Sub(pow2(w), p.api.Div(pow2(w), factor))
	)
	//
	return p.api.Add(q, p.api.Mul(sa, fill)), nil
}

func circuitShl(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	var (
		b = &builder{api, config}
		t = inputs[0].Type()
	)
	//
	return circuit.NewLiteral(t, b.integerShl(inputs[0].Wire(), inputs[1].Wire(), t, inputs[1].Type(), true)), nil
}

func circuitShlWrapped(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	var (
		b = &builder{api, config}
		t = inputs[0].Type()
	)
	//
	return circuit.NewLiteral(t, b.integerShl(inputs[0].Wire(), inputs[1].Wire(), t, inputs[1].Type(), false)), nil
}

func circuitShr(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	var (
		b = &builder{api, config}
		t = inputs[0].Type()
	)
	//
	r, err := b.integerShr(inputs[0].Wire(), inputs[1].Wire(), t, inputs[1].Type(), true)
	if err != nil {
		return circuit.Literal{}, err
	}
	//
	return circuit.NewLiteral(t, r), nil
}

func circuitShrWrapped(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	var (
		b = &builder{api, config}
		t = inputs[0].Type()
	)
	//
	r, err := b.integerShr(inputs[0].Wire(), inputs[1].Wire(), t, inputs[1].Type(), false)
	if err != nil {
		return circuit.Literal{}, err
	}
	//
	return circuit.NewLiteral(t, r), nil
}

// ============================================================================
// Unary arithmetic
// ============================================================================

func circuitAbs(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	var (
		b     = &builder{api, config}
		t     = inputs[0].Type()
		w     = width(t)
		_, ma = b.signMag(inputs[0].Wire(), w)
	)
	// The magnitude of MIN does not fit the positive range.
	api.AssertIsLessOrEqual(ma, new(big.Int).Sub(pow2(w-1), big.NewInt(1)))
	//
	return circuit.NewLiteral(t, ma), nil
}

func circuitAbsWrapped(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	var (
		b     = &builder{api, config}
		t     = inputs[0].Type()
		_, ma = b.signMag(inputs[0].Wire(), width(t))
	)
	// The magnitude of MIN is the representation of MIN itself.
	return circuit.NewLiteral(t, ma), nil
}

func circuitNeg(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	var (
		b = &builder{api, config}
		t = inputs[0].Type()
	)
	//
	switch {
	case t == console.FIELD:
		return circuit.NewLiteral(t, api.Neg(inputs[0].Wire())), nil
	case t == console.GROUP:
		curve, err := b.curve()
		if err != nil {
			return circuit.Literal{}, err
		}
		//
		px, py := inputs[0].Point()
		r := curve.Neg(twistededwards.Point{X: px, Y: py})
		//
		return circuit.NewPointLiteral(t, r.X, r.Y), nil
	default:
		w := width(t)
		// Unsatisfiable at MIN, whose negation does not fit.
		api.AssertIsDifferent(inputs[0].Wire(), pow2(w-1))
		//
		return circuit.NewLiteral(t, b.applySign(1, inputs[0].Wire(), w)), nil
	}
}

func circuitDouble(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	var (
		b = &builder{api, config}
		t = inputs[0].Type()
	)
	//
	if t == console.FIELD {
		return circuit.NewLiteral(t, api.Add(inputs[0].Wire(), inputs[0].Wire())), nil
	}
	//
	curve, err := b.curve()
	if err != nil {
		return circuit.Literal{}, err
	}
	//
	px, py := inputs[0].Point()
	r := curve.Double(twistededwards.Point{X: px, Y: py})
	//
	return circuit.NewPointLiteral(t, r.X, r.Y), nil
}

func circuitInv(api frontend.API, _ *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	return circuit.NewLiteral(console.FIELD, api.Inverse(inputs[0].Wire())), nil
}

func circuitSquare(api frontend.API, _ *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	return circuit.NewLiteral(console.FIELD, api.Mul(inputs[0].Wire(), inputs[0].Wire())), nil
}

func circuitSqrt(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	outs, err := api.Compiler().NewHint(sqrtHint, 1, inputs[0].Wire())
	if err != nil {
		return circuit.Literal{}, err
	}
	//
	y := outs[0]
	api.AssertIsEqual(api.Mul(y, y), inputs[0].Wire())
	// Pin the canonical root of the pair.
	half := new(big.Int).Rsh(new(big.Int).Sub(config.FieldModulus, big.NewInt(1)), 1)
	api.AssertIsLessOrEqual(y, half)
	//
	return circuit.NewLiteral(console.FIELD, y), nil
}

// ============================================================================
// Comparisons
// ============================================================================

// compare returns the pair (gte, lte) for two comparable wires.
func (p *builder) compare(a, b circuit.Literal) (frontend.Variable, frontend.Variable) {
	t := a.Type()
	//
	if t == console.FIELD || t == console.SCALAR {
		cmp := p.api.Cmp(a.Wire(), b.Wire())
		//
		var (
			lt = p.api.IsZero(p.api.Add(cmp, 1))
			gt = p.api.IsZero(p.api.Sub(cmp, 1))
		)
		//
		return p.api.Sub(1, lt), p.api.Sub(1, gt)
	}
	//
	var (
		w  = width(t)
		oa = p.ordered(a.Wire(), t)
		ob = p.ordered(b.Wire(), t)
	)
	//
	return p.gte(oa, ob, w), p.gte(ob, oa, w)
}

func circuitGt(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	b := &builder{api, config}
	_, lte := b.compare(inputs[0], inputs[1])
	//
	return circuit.NewLiteral(console.BOOLEAN, api.Sub(1, lte)), nil
}

func circuitGte(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	b := &builder{api, config}
	gte, _ := b.compare(inputs[0], inputs[1])
	//
	return circuit.NewLiteral(console.BOOLEAN, gte), nil
}

func circuitLt(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	b := &builder{api, config}
	gte, _ := b.compare(inputs[0], inputs[1])
	//
	return circuit.NewLiteral(console.BOOLEAN, api.Sub(1, gte)), nil
}

func circuitLte(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	b := &builder{api, config}
	_, lte := b.compare(inputs[0], inputs[1])
	//
	return circuit.NewLiteral(console.BOOLEAN, lte), nil
}

// eq returns 1 when two literals of the same type hold equal values.
func (p *builder) eq(a, b circuit.Literal) frontend.Variable {
	if t := a.Type(); t == console.GROUP || t == console.ADDRESS {
		var (
			ax, ay = a.Point()
			bx, by = b.Point()
			ex     = p.api.IsZero(p.api.Sub(ax, bx))
			ey     = p.api.IsZero(p.api.Sub(ay, by))
		)
		//
		return p.api.And(ex, ey)
	}
	//
	return p.api.IsZero(p.api.Sub(a.Wire(), b.Wire()))
}

func circuitIsEq(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	b := &builder{api, config}
	return circuit.NewLiteral(console.BOOLEAN, b.eq(inputs[0], inputs[1])), nil
}

func circuitIsNeq(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	b := &builder{api, config}
	return circuit.NewLiteral(console.BOOLEAN, api.Sub(1, b.eq(inputs[0], inputs[1]))), nil
}

// ============================================================================
// Logic
// ============================================================================

// bitwise applies a per-bit connective over two same-width integer wires.
func (p *builder) bitwise(a, b frontend.Variable, t console.LiteralType,
	fn func(x, y frontend.Variable) frontend.Variable) frontend.Variable {
	var (
		w     = width(t)
		abits = p.api.ToBinary(a, int(w))
		bbits = p.api.ToBinary(b, int(w))
		rbits = make([]frontend.Variable, w)
	)
	//
	for i := range rbits {
		rbits[i] = fn(abits[i], bbits[i])
	}
	//
	return p.api.FromBinary(rbits...)
}

func circuitAnd(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	b := &builder{api, config}
	t := inputs[0].Type()
	//
	if t == console.BOOLEAN {
		return circuit.NewLiteral(t, api.And(inputs[0].Wire(), inputs[1].Wire())), nil
	}
	//
	return circuit.NewLiteral(t, b.bitwise(inputs[0].Wire(), inputs[1].Wire(), t, api.And)), nil
}

func circuitOr(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	b := &builder{api, config}
	t := inputs[0].Type()
	//
	if t == console.BOOLEAN {
		return circuit.NewLiteral(t, api.Or(inputs[0].Wire(), inputs[1].Wire())), nil
	}
	//
	return circuit.NewLiteral(t, b.bitwise(inputs[0].Wire(), inputs[1].Wire(), t, api.Or)), nil
}

func circuitXor(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	b := &builder{api, config}
	t := inputs[0].Type()
	//
	if t == console.BOOLEAN {
		return circuit.NewLiteral(t, api.Xor(inputs[0].Wire(), inputs[1].Wire())), nil
	}
	//
	return circuit.NewLiteral(t, b.bitwise(inputs[0].Wire(), inputs[1].Wire(), t, api.Xor)), nil
}

func circuitNand(api frontend.API, _ *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	return circuit.NewLiteral(console.BOOLEAN, api.Sub(1, api.And(inputs[0].Wire(), inputs[1].Wire()))), nil
}

func circuitNor(api frontend.API, _ *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	return circuit.NewLiteral(console.BOOLEAN, api.Sub(1, api.Or(inputs[0].Wire(), inputs[1].Wire()))), nil
}

func circuitNot(api frontend.API, config *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	b := &builder{api, config}
	t := inputs[0].Type()
	//
	if t == console.BOOLEAN {
		return circuit.NewLiteral(t, api.Sub(1, inputs[0].Wire())), nil
	}
	//
	not := func(x, _ frontend.Variable) frontend.Variable { return api.Sub(1, x) }
	//
	return circuit.NewLiteral(t, b.bitwise(inputs[0].Wire(), inputs[0].Wire(), t, not)), nil
}

// ============================================================================
// Ternary
// ============================================================================

func circuitTernary(api frontend.API, _ *network.Config, inputs []circuit.Literal) (circuit.Literal, error) {
	var (
		cond = inputs[0].Wire()
		x, y = inputs[1], inputs[2]
		t    = x.Type()
	)
	//
	if t == console.GROUP || t == console.ADDRESS {
		var (
			xx, xy = x.Point()
			yx, yy = y.Point()
		)
		//
		return circuit.NewPointLiteral(t, api.Select(cond, xx, yx), api.Select(cond, xy, yy)), nil
	}
	//
	return circuit.NewLiteral(t, api.Select(cond, x.Wire(), y.Wire())), nil
}

// ============================================================================
// Group and scalar helpers
// ============================================================================

func (p *builder) groupAdd(a, b circuit.Literal, sub bool) (circuit.Literal, error) {
	curve, err := p.curve()
	if err != nil {
		return circuit.Literal{}, err
	}
	//
	var (
		ax, ay = a.Point()
		bx, by = b.Point()
		pa     = twistededwards.Point{X: ax, Y: ay}
		pb     = twistededwards.Point{X: bx, Y: by}
	)
	//
	if sub {
		pb = curve.Neg(pb)
	}
	//
	r := curve.Add(pa, pb)
	//
	return circuit.NewPointLiteral(console.GROUP, r.X, r.Y), nil
}

// scalarAddSub adds or subtracts two scalar wires modulo the subgroup
// order.  Scalar wires are canonical, so the raw result sits below twice
// the order and a single conditional reduction suffices.
func (p *builder) scalarAddSub(a, b circuit.Literal, sub bool) circuit.Literal {
	var (
		order = p.config.ScalarModulus
		raw   frontend.Variable
	)
	//
	if sub {
		raw = p.api.Sub(p.api.Add(a.Wire(), order), b.Wire())
	} else {
		raw = p.api.Add(a.Wire(), b.Wire())
	}
	//
	var (
		cmp    = p.api.Cmp(raw, new(big.Int).Sub(order, big.NewInt(1)))
		reduce = p.api.IsZero(p.api.Sub(cmp, 1))
		r      = p.api.Sub(raw, p.api.Mul(reduce, order))
	)
	//
	return circuit.NewLiteral(console.SCALAR, r)
}
