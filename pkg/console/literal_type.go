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

import "fmt"

// LiteralType identifies one of the primitive value kinds of the virtual
// machine.  The tag of a literal determines exactly which operations are
// type-legal on it.
type LiteralType uint16

const (
	// ADDRESS is the type of account addresses (encoded group elements).
	ADDRESS LiteralType = iota
	// BOOLEAN is the type of truth values.
	BOOLEAN
	// FIELD is the type of base field elements.
	FIELD
	// GROUP is the type of curve points in the prime-order subgroup.
	GROUP
	// I8 is the type of 8bit signed integers.
	I8
	// I16 is the type of 16bit signed integers.
	I16
	// I32 is the type of 32bit signed integers.
	I32
	// I64 is the type of 64bit signed integers.
	I64
	// I128 is the type of 128bit signed integers.
	I128
	// U8 is the type of 8bit unsigned integers.
	U8
	// U16 is the type of 16bit unsigned integers.
	U16
	// U32 is the type of 32bit unsigned integers.
	U32
	// U64 is the type of 64bit unsigned integers.
	U64
	// U128 is the type of 128bit unsigned integers.
	U128
	// SCALAR is the type of scalar field elements.
	SCALAR
	// STRING is the type of string constants.
	STRING
)

// LITERAL_TYPES lists every literal type in tag order.
var LITERAL_TYPES = []LiteralType{
	ADDRESS, BOOLEAN, FIELD, GROUP,
	I8, I16, I32, I64, I128,
	U8, U16, U32, U64, U128,
	SCALAR, STRING,
}

var literalTypeNames = map[LiteralType]string{
	ADDRESS: "address", BOOLEAN: "boolean", FIELD: "field", GROUP: "group",
	I8: "i8", I16: "i16", I32: "i32", I64: "i64", I128: "i128",
	U8: "u8", U16: "u16", U32: "u32", U64: "u64", U128: "u128",
	SCALAR: "scalar", STRING: "string",
}

// ParseLiteralType maps a type name (e.g. "u64") onto its literal type.
func ParseLiteralType(name string) (LiteralType, bool) {
	for tag, n := range literalTypeNames {
		if n == name {
			return tag, true
		}
	}
	//
	return 0, false
}

func (p LiteralType) String() string {
	if name, ok := literalTypeNames[p]; ok {
		return name
	}
	//
	panic(fmt.Sprintf("unknown literal type (%d)", uint16(p)))
}

// IsInteger determines whether this is a fixed-width integer type.
func (p LiteralType) IsInteger() bool {
	return p >= I8 && p <= U128
}

// IsSigned determines whether this is a signed integer type.
func (p LiteralType) IsSigned() bool {
	return p >= I8 && p <= I128
}

// IsUnsigned determines whether this is an unsigned integer type.
func (p LiteralType) IsUnsigned() bool {
	return p >= U8 && p <= U128
}

// BitWidth returns the width (in bits) of a fixed-width integer type, or
// panics for any other type.
func (p LiteralType) BitWidth() uint {
	switch p {
	case I8, U8:
		return 8
	case I16, U16:
		return 16
	case I32, U32:
		return 32
	case I64, U64:
		return 64
	case I128, U128:
		return 128
	default:
		panic(fmt.Sprintf("type %s has no bit width", p))
	}
}
