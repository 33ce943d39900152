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

package circuit

import (
	"fmt"
	"math/big"

	tedwards "github.com/consensys/gnark-crypto/ecc/twistededwards"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/native/twistededwards"

	"github.com/coinsccg/snarkVM/pkg/console"
	"github.com/coinsccg/snarkVM/pkg/network"
)

// Flatten encodes a console value as an ordered sequence of base field
// elements, matching the wire order consumed by Inject.  Booleans, field
// elements, scalars and integers contribute one element each (integers in
// unsigned two's complement form); group elements and addresses contribute
// their affine coordinate pair.  Strings have no field encoding and cannot
// be flattened.
func Flatten(value console.Value) ([]*big.Int, error) {
	if value.IsRecord() {
		var elements []*big.Int
		//
		record := value.Record()
		//
		for _, e := range record.Entries() {
			es, err := flattenPlaintext(e.Value)
			if err != nil {
				return nil, err
			}
			//
			elements = append(elements, es...)
		}
		//
		return elements, nil
	}
	//
	return flattenPlaintext(value.Plaintext())
}

func flattenPlaintext(p console.Plaintext) ([]*big.Int, error) {
	if !p.IsLiteral() {
		var elements []*big.Int
		//
		for _, m := range p.Members() {
			es, err := flattenPlaintext(m.Value)
			if err != nil {
				return nil, err
			}
			//
			elements = append(elements, es...)
		}
		//
		return elements, nil
	}
	//
	return flattenLiteral(p.Literal())
}

func flattenLiteral(l console.Literal) ([]*big.Int, error) {
	switch kind := l.Type(); {
	case kind == console.BOOLEAN:
		if l.Bool() {
			return []*big.Int{big.NewInt(1)}, nil
		}
		//
		return []*big.Int{big.NewInt(0)}, nil
	case kind == console.FIELD:
		fe := l.Field()
		return []*big.Int{fe.BigInt(new(big.Int))}, nil
	case kind == console.SCALAR:
		return []*big.Int{new(big.Int).Set(l.Scalar())}, nil
	case kind.IsInteger():
		return []*big.Int{console.ToUnsignedRepr(kind, l.Integer())}, nil
	case kind == console.GROUP:
		pt := l.Group()
		return []*big.Int{pt.X.BigInt(new(big.Int)), pt.Y.BigInt(new(big.Int))}, nil
	case kind == console.ADDRESS:
		pt := l.Address().Point()
		return []*big.Int{pt.X.BigInt(new(big.Int)), pt.Y.BigInt(new(big.Int))}, nil
	default:
		return nil, fmt.Errorf("type %s has no field encoding", kind)
	}
}

// WireCount returns the number of wires the given value type occupies, as
// produced by Flatten and consumed by Inject.
func WireCount(value console.Value) (int, error) {
	elements, err := Flatten(value)
	if err != nil {
		return 0, err
	}
	//
	return len(elements), nil
}

// Wires lists the wires of a circuit value in Flatten order.  Constant
// strings have no wires and cannot be listed.
func Wires(value Value) ([]frontend.Variable, error) {
	if value.IsRecord() {
		var wires []frontend.Variable
		//
		record := value.Record()
		//
		for _, e := range record.Entries {
			ws, err := plaintextWires(e.Value)
			if err != nil {
				return nil, err
			}
			//
			wires = append(wires, ws...)
		}
		//
		return wires, nil
	}
	//
	return plaintextWires(value.Plaintext())
}

func plaintextWires(pt Plaintext) ([]frontend.Variable, error) {
	if !pt.IsLiteral() {
		var wires []frontend.Variable
		//
		for _, m := range pt.Members() {
			ws, err := plaintextWires(m.Value)
			if err != nil {
				return nil, err
			}
			//
			wires = append(wires, ws...)
		}
		//
		return wires, nil
	}
	//
	literal := pt.Literal()
	//
	switch kind := literal.Type(); {
	case kind == console.GROUP, kind == console.ADDRESS:
		x, y := literal.Point()
		return []frontend.Variable{x, y}, nil
	case kind == console.STRING:
		return nil, fmt.Errorf("string literals have no wires")
	default:
		return []frontend.Variable{literal.Wire()}, nil
	}
}

// ============================================================================
// Injection
// ============================================================================

// Injector consumes pre-allocated witness wires and shapes them into circuit
// values, emitting the well-formedness constraints each literal kind
// requires.  The wire order is exactly that of Flatten, so a witness built
// by flattening a console value lines up with the injected circuit value.
type Injector struct {
	api     frontend.API
	config  *network.Config
	wires   []frontend.Variable
	// Wires consumed so far.
	consumed int
}

// NewInjector constructs an injector over the given wire sequence.
func NewInjector(api frontend.API, config *network.Config, wires []frontend.Variable) *Injector {
	return &Injector{api: api, config: config, wires: wires}
}

// Consumed returns the number of wires consumed so far.
func (p *Injector) Consumed() int {
	return p.consumed
}

func (p *Injector) next() (frontend.Variable, error) {
	if p.consumed >= len(p.wires) {
		return nil, fmt.Errorf("input wires exhausted (have %d)", len(p.wires))
	}
	//
	wire := p.wires[p.consumed]
	p.consumed++
	//
	return wire, nil
}

// Inject shapes wires into a circuit value of the same structure as the
// given console value.  With constant visibility the console value itself is
// embedded and no wires are consumed; otherwise wires are consumed in
// Flatten order.
func (p *Injector) Inject(value console.Value, mode console.Visibility) (Value, error) {
	if mode == console.CONSTANT {
		return Constant(value), nil
	}
	//
	if value.IsRecord() {
		var entries []RecordEntry
		//
		record := value.Record()
		//
		for _, e := range record.Entries() {
			pt, err := p.injectPlaintext(e.Value)
			if err != nil {
				return Value{}, err
			}
			//
			entries = append(entries, RecordEntry{Name: e.Name, Value: pt, Mode: e.Mode})
		}
		//
		return NewRecordValue(Record{Entries: entries}), nil
	}
	//
	pt, err := p.injectPlaintext(value.Plaintext())
	if err != nil {
		return Value{}, err
	}
	//
	return NewPlaintextValue(pt), nil
}

func (p *Injector) injectPlaintext(pt console.Plaintext) (Plaintext, error) {
	if !pt.IsLiteral() {
		var members []PlaintextMember
		//
		for _, m := range pt.Members() {
			mv, err := p.injectPlaintext(m.Value)
			if err != nil {
				return Plaintext{}, err
			}
			//
			members = append(members, PlaintextMember{Name: m.Name, Value: mv})
		}
		//
		return NewStructPlaintext(members), nil
	}
	//
	literal, err := p.injectLiteral(pt.Literal())
	if err != nil {
		return Plaintext{}, err
	}
	//
	return NewLiteralPlaintext(literal), nil
}

func (p *Injector) injectLiteral(l console.Literal) (Literal, error) {
	kind := l.Type()
	//
	switch {
	case kind == console.BOOLEAN:
		wire, err := p.next()
		if err != nil {
			return Literal{}, err
		}
		//
		p.api.AssertIsBoolean(wire)
		//
		return NewLiteral(kind, wire), nil
	case kind == console.FIELD:
		wire, err := p.next()
		if err != nil {
			return Literal{}, err
		}
		// Wires are base field elements already.
		return NewLiteral(kind, wire), nil
	case kind == console.SCALAR:
		wire, err := p.next()
		if err != nil {
			return Literal{}, err
		}
		// Enforce canonical form below the scalar field order.
		bound := new(big.Int).Sub(p.config.ScalarModulus, big.NewInt(1))
		p.api.AssertIsLessOrEqual(wire, bound)
		//
		return NewLiteral(kind, wire), nil
	case kind.IsInteger():
		wire, err := p.next()
		if err != nil {
			return Literal{}, err
		}
		// Range check via bit decomposition.
		p.api.ToBinary(wire, int(kind.BitWidth()))
		//
		return NewLiteral(kind, wire), nil
	case kind == console.GROUP, kind == console.ADDRESS:
		x, err := p.next()
		if err != nil {
			return Literal{}, err
		}
		//
		y, err := p.next()
		if err != nil {
			return Literal{}, err
		}
		//
		curve, err := twistededwards.NewEdCurve(p.api, tedwards.BLS12_377)
		if err != nil {
			return Literal{}, err
		}
		//
		curve.AssertIsOnCurve(twistededwards.Point{X: x, Y: y})
		//
		return NewPointLiteral(kind, x, y), nil
	default:
		return Literal{}, fmt.Errorf("type %s cannot be injected as a witness", kind)
	}
}

// ============================================================================
// Constants
// ============================================================================

// Constant embeds a console value into the circuit as constants, consuming
// no wires.
func Constant(value console.Value) Value {
	if value.IsRecord() {
		var entries []RecordEntry
		//
		record := value.Record()
		//
		for _, e := range record.Entries() {
			entries = append(entries, RecordEntry{
				Name:  e.Name,
				Value: ConstantPlaintext(e.Value),
				Mode:  e.Mode,
			})
		}
		//
		return NewRecordValue(Record{Entries: entries})
	}
	//
	return NewPlaintextValue(ConstantPlaintext(value.Plaintext()))
}

// ConstantPlaintext embeds a console plaintext into the circuit as constants.
func ConstantPlaintext(pt console.Plaintext) Plaintext {
	if !pt.IsLiteral() {
		var members []PlaintextMember
		//
		for _, m := range pt.Members() {
			members = append(members, PlaintextMember{Name: m.Name, Value: ConstantPlaintext(m.Value)})
		}
		//
		return NewStructPlaintext(members)
	}
	//
	return NewLiteralPlaintext(ConstantLiteral(pt.Literal()))
}

// ConstantLiteral embeds a console literal into the circuit as constants.
func ConstantLiteral(l console.Literal) Literal {
	kind := l.Type()
	//
	switch {
	case kind == console.BOOLEAN:
		if l.Bool() {
			return NewLiteral(kind, 1)
		}
		//
		return NewLiteral(kind, 0)
	case kind == console.FIELD:
		fe := l.Field()
		return NewLiteral(kind, fe.BigInt(new(big.Int)))
	case kind == console.SCALAR:
		return NewLiteral(kind, new(big.Int).Set(l.Scalar()))
	case kind.IsInteger():
		return NewLiteral(kind, console.ToUnsignedRepr(kind, l.Integer()))
	case kind == console.GROUP:
		pt := l.Group()
		return NewPointLiteral(kind, pt.X.BigInt(new(big.Int)), pt.Y.BigInt(new(big.Int)))
	case kind == console.ADDRESS:
		pt := l.Address().Point()
		return NewPointLiteral(kind, pt.X.BigInt(new(big.Int)), pt.Y.BigInt(new(big.Int)))
	default:
		return NewStringLiteral(l.Str())
	}
}
