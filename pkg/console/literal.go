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
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/twistededwards"
)

// Literal is a primitive typed value: a tagged union over the sixteen
// literal types.  The tag determines which of the variant slots is live, and
// which operations are type-legal on the value.
type Literal struct {
	kind LiteralType
	// Live when kind is BOOLEAN.
	boolean bool
	// Live when kind is FIELD.
	field fr.Element
	// Live when kind is GROUP.
	group twistededwards.PointAffine
	// Live when kind is ADDRESS.
	address Address
	// Live when kind is SCALAR or an integer type.
	integer big.Int
	// Live when kind is STRING.
	str string
}

// ============================================================================
// Constructors
// ============================================================================

// NewBoolean constructs a boolean literal.
func NewBoolean(b bool) Literal {
	return Literal{kind: BOOLEAN, boolean: b}
}

// NewField constructs a field literal.
func NewField(v fr.Element) Literal {
	return Literal{kind: FIELD, field: v}
}

// NewGroup constructs a group literal.
func NewGroup(p twistededwards.PointAffine) Literal {
	return Literal{kind: GROUP, group: p}
}

// NewAddressLiteral constructs an address literal.
func NewAddressLiteral(a Address) Literal {
	return Literal{kind: ADDRESS, address: a}
}

// NewScalar constructs a scalar literal, reducing the given value modulo the
// subgroup order.
func NewScalar(v *big.Int) Literal {
	var (
		curve = twistededwards.GetEdwardsCurve()
		lit   = Literal{kind: SCALAR}
	)
	//
	lit.integer.Mod(v, &curve.Order)
	//
	return lit
}

// NewInteger constructs a fixed-width integer literal, rejecting values
// outside the representable range of the given type.
func NewInteger(t LiteralType, v *big.Int) (Literal, error) {
	if !t.IsInteger() {
		return Literal{}, fmt.Errorf("type %s is not an integer type", t)
	}
	//
	if _, err := checkInteger(t, v); err != nil {
		return Literal{}, err
	}
	//
	lit := Literal{kind: t}
	lit.integer.Set(v)
	//
	return lit, nil
}

// NewString constructs a string literal.
func NewString(s string) Literal {
	return Literal{kind: STRING, str: s}
}

// ============================================================================
// Accessors
// ============================================================================

// Type returns the tag of this literal.
func (p *Literal) Type() LiteralType {
	return p.kind
}

// Bool unwraps a boolean literal.
func (p *Literal) Bool() bool {
	p.expect(BOOLEAN)
	return p.boolean
}

// Field unwraps a field literal.
func (p *Literal) Field() fr.Element {
	p.expect(FIELD)
	return p.field
}

// Group unwraps a group literal.
func (p *Literal) Group() twistededwards.PointAffine {
	p.expect(GROUP)
	return p.group
}

// Address unwraps an address literal.
func (p *Literal) Address() Address {
	p.expect(ADDRESS)
	return p.address
}

// Scalar unwraps a scalar literal.
func (p *Literal) Scalar() *big.Int {
	p.expect(SCALAR)
	return new(big.Int).Set(&p.integer)
}

// Integer unwraps a fixed-width integer literal.
func (p *Literal) Integer() *big.Int {
	if !p.kind.IsInteger() {
		panic(fmt.Sprintf("literal is a %s, not an integer", p.kind))
	}
	//
	return new(big.Int).Set(&p.integer)
}

// Str unwraps a string literal.
func (p *Literal) Str() string {
	p.expect(STRING)
	return p.str
}

func (p *Literal) expect(kind LiteralType) {
	if p.kind != kind {
		panic(fmt.Sprintf("literal is a %s, not a %s", p.kind, kind))
	}
}

// Equal determines whether two literals have the same tag and the same
// value.
func (p *Literal) Equal(other *Literal) bool {
	if p.kind != other.kind {
		return false
	}
	//
	switch p.kind {
	case BOOLEAN:
		return p.boolean == other.boolean
	case FIELD:
		return p.field.Equal(&other.field)
	case GROUP:
		return p.group.Equal(&other.group)
	case ADDRESS:
		return p.address.Equal(other.address)
	case STRING:
		return p.str == other.str
	default:
		return p.integer.Cmp(&other.integer) == 0
	}
}

// ============================================================================
// Text form
// ============================================================================

func (p Literal) String() string {
	switch p.kind {
	case ADDRESS:
		return p.address.String()
	case BOOLEAN:
		return strconv.FormatBool(p.boolean)
	case FIELD:
		return fmt.Sprintf("%sfield", p.field.String())
	case GROUP:
		return fmt.Sprintf("%sgroup", p.group.X.String())
	case SCALAR:
		return fmt.Sprintf("%sscalar", p.integer.String())
	case STRING:
		return strconv.Quote(p.str)
	default:
		return fmt.Sprintf("%s%s", p.integer.String(), p.kind)
	}
}

// ParseLiteral parses the text form of a literal (e.g. "5field", "true",
// "-3i8", "aleo1...").
func ParseLiteral(s string) (Literal, error) {
	switch {
	case s == "true":
		return NewBoolean(true), nil
	case s == "false":
		return NewBoolean(false), nil
	case strings.HasPrefix(s, "\""):
		unquoted, err := strconv.Unquote(s)
		//
		if err != nil {
			return Literal{}, fmt.Errorf("malformed string literal %s", s)
		}
		//
		return NewString(unquoted), nil
	case strings.HasPrefix(s, ADDRESS_HRP+"1"):
		addr, err := ParseAddress(s)
		//
		if err != nil {
			return Literal{}, err
		}
		//
		return NewAddressLiteral(addr), nil
	}
	// Remaining forms are "<number><type>".
	index := 0
	//
	if strings.HasPrefix(s, "-") {
		index = 1
	}
	//
	for index < len(s) && s[index] >= '0' && s[index] <= '9' {
		index++
	}
	//
	digits, suffix := s[:index], s[index:]
	//
	if digits == "" || digits == "-" {
		return Literal{}, fmt.Errorf("malformed literal '%s'", s)
	}
	//
	value, ok := new(big.Int).SetString(digits, 10)
	//
	if !ok {
		return Literal{}, fmt.Errorf("malformed literal '%s'", s)
	}
	//
	kind, ok := ParseLiteralType(suffix)
	//
	if !ok {
		return Literal{}, fmt.Errorf("unknown literal suffix '%s'", suffix)
	}
	//
	switch {
	case kind == FIELD:
		var el fr.Element
		//
		if value.Sign() < 0 {
			value.Mod(value, fr.Modulus())
		}
		//
		el.SetBigInt(value)
		//
		return NewField(el), nil
	case kind == GROUP:
		var x fr.Element
		//
		if value.Sign() < 0 {
			value.Mod(value, fr.Modulus())
		}
		//
		x.SetBigInt(value)
		//
		point, err := GroupFromX(x)
		//
		if err != nil {
			return Literal{}, err
		}
		//
		return NewGroup(point), nil
	case kind == SCALAR:
		return NewScalar(value), nil
	case kind.IsInteger():
		return NewInteger(kind, value)
	default:
		return Literal{}, fmt.Errorf("malformed literal '%s'", s)
	}
}

// ============================================================================
// Binary form
// ============================================================================

// WriteLE writes the binary form of this literal: its type tag, followed by
// a type-specific payload.
func (p *Literal) WriteLE(w io.Writer) error {
	if err := writeUint16LE(w, uint16(p.kind)); err != nil {
		return err
	}
	//
	switch p.kind {
	case ADDRESS:
		return p.address.WriteLE(w)
	case BOOLEAN:
		var b byte
		//
		if p.boolean {
			b = 1
		}
		//
		_, err := w.Write([]byte{b})
		//
		return err
	case FIELD:
		var v big.Int
		//
		p.field.BigInt(&v)
		//
		return writeBigLE(w, &v, 32)
	case GROUP:
		_, err := w.Write(p.group.Marshal())
		//
		return err
	case SCALAR:
		return writeBigLE(w, &p.integer, 32)
	case STRING:
		if err := writeUint32LE(w, uint32(len(p.str))); err != nil {
			return err
		}
		//
		_, err := w.Write([]byte(p.str))
		//
		return err
	default:
		repr := ToUnsignedRepr(p.kind, &p.integer)
		//
		return writeBigLE(w, repr, p.kind.BitWidth()/8)
	}
}

// ReadLiteralLE reads the binary form of a literal.
func ReadLiteralLE(r io.Reader) (Literal, error) {
	tag, err := readUint16LE(r)
	//
	if err != nil {
		return Literal{}, err
	}
	//
	kind := LiteralType(tag)
	//
	switch {
	case kind == ADDRESS:
		addr, err := ReadAddressLE(r)
		return NewAddressLiteral(addr), err
	case kind == BOOLEAN:
		var b [1]byte
		//
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return Literal{}, err
		} else if b[0] > 1 {
			return Literal{}, fmt.Errorf("invalid boolean byte '%d'", b[0])
		}
		//
		return NewBoolean(b[0] == 1), nil
	case kind == FIELD:
		v, err := readBigLE(r, 32)
		//
		if err != nil {
			return Literal{}, err
		} else if v.Cmp(fr.Modulus()) >= 0 {
			return Literal{}, fmt.Errorf("field value %s exceeds modulus", v)
		}
		//
		var el fr.Element
		//
		el.SetBigInt(v)
		//
		return NewField(el), nil
	case kind == GROUP:
		var (
			buf   [32]byte
			point twistededwards.PointAffine
		)
		//
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return Literal{}, err
		}
		//
		if err := point.Unmarshal(buf[:]); err != nil {
			return Literal{}, err
		}
		//
		return NewGroup(point), nil
	case kind == SCALAR:
		v, err := readBigLE(r, 32)
		//
		if err != nil {
			return Literal{}, err
		}
		//
		curve := twistededwards.GetEdwardsCurve()
		//
		if v.Cmp(&curve.Order) >= 0 {
			return Literal{}, fmt.Errorf("scalar value %s exceeds subgroup order", v)
		}
		//
		return NewScalar(v), nil
	case kind == STRING:
		n, err := readUint32LE(r)
		//
		if err != nil {
			return Literal{}, err
		}
		//
		buf := make([]byte, n)
		//
		if _, err := io.ReadFull(r, buf); err != nil {
			return Literal{}, err
		}
		//
		return NewString(string(buf)), nil
	case kind.IsInteger():
		repr, err := readBigLE(r, kind.BitWidth()/8)
		//
		if err != nil {
			return Literal{}, err
		}
		//
		return NewInteger(kind, FromUnsignedRepr(kind, repr))
	default:
		return Literal{}, fmt.Errorf("invalid literal type tag '%d'", tag)
	}
}
