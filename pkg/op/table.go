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
	"github.com/coinsccg/snarkVM/pkg/console"
)

var (
	integerTypes = []console.LiteralType{
		console.I8, console.I16, console.I32, console.I64, console.I128,
		console.U8, console.U16, console.U32, console.U64, console.U128,
	}
	//
	signedTypes = []console.LiteralType{
		console.I8, console.I16, console.I32, console.I64, console.I128,
	}
	//
	magnitudeTypes = []console.LiteralType{
		console.U8, console.U16, console.U32,
	}
	// Every type admissible in equality and ternary positions.
	comparableTypes = []console.LiteralType{
		console.ADDRESS, console.BOOLEAN, console.FIELD, console.GROUP,
		console.I8, console.I16, console.I32, console.I64, console.I128,
		console.U8, console.U16, console.U32, console.U64, console.U128,
		console.SCALAR,
	}
)

// closed builds the signatures (T, T) -> T for each given type.
func closed(types ...console.LiteralType) []Signature {
	var sigs []Signature
	//
	for _, t := range types {
		sigs = append(sigs, Signature{Inputs: []console.LiteralType{t, t}, Output: t})
	}
	//
	return sigs
}

// unary builds the signatures (T) -> T for each given type.
func unary(types ...console.LiteralType) []Signature {
	var sigs []Signature
	//
	for _, t := range types {
		sigs = append(sigs, Signature{Inputs: []console.LiteralType{t}, Output: t})
	}
	//
	return sigs
}

// predicate builds the signatures (T, T) -> Boolean for each given type.
func predicate(types ...console.LiteralType) []Signature {
	var sigs []Signature
	//
	for _, t := range types {
		sigs = append(sigs, Signature{Inputs: []console.LiteralType{t, t}, Output: console.BOOLEAN})
	}
	//
	return sigs
}

// magnitudes builds the signatures (T, M) -> T for each integer type T and
// magnitude type M.
func magnitudes(types []console.LiteralType) []Signature {
	var sigs []Signature
	//
	for _, t := range types {
		for _, m := range magnitudeTypes {
			sigs = append(sigs, Signature{Inputs: []console.LiteralType{t, m}, Output: t})
		}
	}
	//
	return sigs
}

// ternaries builds the signatures (Boolean, T, T) -> T for each given type.
func ternaries(types ...console.LiteralType) []Signature {
	var sigs []Signature
	//
	for _, t := range types {
		sigs = append(sigs, Signature{
			Inputs: []console.LiteralType{console.BOOLEAN, t, t},
			Output: t,
		})
	}
	//
	return sigs
}

func concat(groups ...[]Signature) []Signature {
	var sigs []Signature
	//
	for _, g := range groups {
		sigs = append(sigs, g...)
	}
	//
	return sigs
}

func init() {
	register(Operation{
		Name:  "abs",
		Arity: 1,
		Signatures: unary(signedTypes...),
		Native:     nativeAbs,
		Circuit:    circuitAbs,
	})
	register(Operation{
		Name:  "abs.w",
		Arity: 1,
		Signatures: unary(signedTypes...),
		Native:     nativeAbsWrapped,
		Circuit:    circuitAbsWrapped,
	})
	register(Operation{
		Name:  "add",
		Arity: 2,
		Signatures: concat(
			closed(console.FIELD, console.GROUP, console.SCALAR),
			closed(integerTypes...),
		),
		Native:  nativeAdd,
		Circuit: circuitAdd,
	})
	register(Operation{
		Name:  "add.w",
		Arity: 2,
		Signatures: closed(integerTypes...),
		Native:     nativeAddWrapped,
		Circuit:    circuitAddWrapped,
	})
	register(Operation{
		Name:  "and",
		Arity: 2,
		Signatures: closed(append([]console.LiteralType{console.BOOLEAN}, integerTypes...)...),
		Native:     nativeAnd,
		Circuit:    circuitAnd,
	})
	register(Operation{
		Name:  "div",
		Arity: 2,
		Signatures: concat(closed(console.FIELD), closed(integerTypes...)),
		Native:     nativeDiv,
		Circuit:    circuitDiv,
	})
	register(Operation{
		Name:  "div.w",
		Arity: 2,
		Signatures: closed(integerTypes...),
		Native:     nativeDivWrapped,
		Circuit:    circuitDivWrapped,
	})
	register(Operation{
		Name:  "double",
		Arity: 1,
		Signatures: unary(console.FIELD, console.GROUP),
		Native:     nativeDouble,
		Circuit:    circuitDouble,
	})
	register(Operation{
		Name:  "gt",
		Arity: 2,
		Signatures: concat(
			predicate(console.FIELD, console.SCALAR),
			predicate(integerTypes...),
		),
		Native:  nativeGt,
		Circuit: circuitGt,
	})
	register(Operation{
		Name:  "gte",
		Arity: 2,
		Signatures: concat(
			predicate(console.FIELD, console.SCALAR),
			predicate(integerTypes...),
		),
		Native:  nativeGte,
		Circuit: circuitGte,
	})
	register(Operation{
		Name:  "inv",
		Arity: 1,
		Signatures: unary(console.FIELD),
		Native:     nativeInv,
		Circuit:    circuitInv,
	})
	register(Operation{
		Name:  "is.eq",
		Arity: 2,
		Signatures: predicate(comparableTypes...),
		Native:     nativeIsEq,
		Circuit:    circuitIsEq,
	})
	register(Operation{
		Name:  "is.neq",
		Arity: 2,
		Signatures: predicate(comparableTypes...),
		Native:     nativeIsNeq,
		Circuit:    circuitIsNeq,
	})
	register(Operation{
		Name:  "lt",
		Arity: 2,
		Signatures: concat(
			predicate(console.FIELD, console.SCALAR),
			predicate(integerTypes...),
		),
		Native:  nativeLt,
		Circuit: circuitLt,
	})
	register(Operation{
		Name:  "lte",
		Arity: 2,
		Signatures: concat(
			predicate(console.FIELD, console.SCALAR),
			predicate(integerTypes...),
		),
		Native:  nativeLte,
		Circuit: circuitLte,
	})
	register(Operation{
		Name:  "mul",
		Arity: 2,
		Signatures: concat(
			closed(console.FIELD),
			[]Signature{
				{Inputs: []console.LiteralType{console.GROUP, console.SCALAR}, Output: console.GROUP},
				{Inputs: []console.LiteralType{console.SCALAR, console.GROUP}, Output: console.GROUP},
			},
			closed(integerTypes...),
		),
		Native:  nativeMul,
		Circuit: circuitMul,
	})
	register(Operation{
		Name:  "mul.w",
		Arity: 2,
		Signatures: closed(integerTypes...),
		Native:     nativeMulWrapped,
		Circuit:    circuitMulWrapped,
	})
	register(Operation{
		Name:  "nand",
		Arity: 2,
		Signatures: closed(console.BOOLEAN),
		Native:     nativeNand,
		Circuit:    circuitNand,
	})
	register(Operation{
		Name:  "neg",
		Arity: 1,
		Signatures: unary(append([]console.LiteralType{console.FIELD, console.GROUP}, signedTypes...)...),
		Native:     nativeNeg,
		Circuit:    circuitNeg,
	})
	register(Operation{
		Name:  "nor",
		Arity: 2,
		Signatures: closed(console.BOOLEAN),
		Native:     nativeNor,
		Circuit:    circuitNor,
	})
	register(Operation{
		Name:  "not",
		Arity: 1,
		Signatures: unary(append([]console.LiteralType{console.BOOLEAN}, integerTypes...)...),
		Native:     nativeNot,
		Circuit:    circuitNot,
	})
	register(Operation{
		Name:  "or",
		Arity: 2,
		Signatures: closed(append([]console.LiteralType{console.BOOLEAN}, integerTypes...)...),
		Native:     nativeOr,
		Circuit:    circuitOr,
	})
	register(Operation{
		Name:  "pow",
		Arity: 2,
		Signatures: concat(closed(console.FIELD), magnitudes(integerTypes)),
		Native:     nativePow,
		Circuit:    circuitPow,
	})
	register(Operation{
		Name:  "pow.w",
		Arity: 2,
		Signatures: magnitudes(integerTypes),
		Native:     nativePowWrapped,
		Circuit:    circuitPowWrapped,
	})
	register(Operation{
		Name:  "shl",
		Arity: 2,
		Signatures: magnitudes(integerTypes),
		Native:     nativeShl,
		Circuit:    circuitShl,
	})
	register(Operation{
		Name:  "shl.w",
		Arity: 2,
		Signatures: magnitudes(integerTypes),
		Native:     nativeShlWrapped,
		Circuit:    circuitShlWrapped,
	})
	register(Operation{
		Name:  "shr",
		Arity: 2,
		Signatures: magnitudes(integerTypes),
		Native:     nativeShr,
		Circuit:    circuitShr,
	})
	register(Operation{
		Name:  "shr.w",
		Arity: 2,
		Signatures: magnitudes(integerTypes),
		Native:     nativeShrWrapped,
		Circuit:    circuitShrWrapped,
	})
	register(Operation{
		Name:  "sqrt",
		Arity: 1,
		Signatures: unary(console.FIELD),
		Native:     nativeSqrt,
		Circuit:    circuitSqrt,
	})
	register(Operation{
		Name:  "square",
		Arity: 1,
		Signatures: unary(console.FIELD),
		Native:     nativeSquare,
		Circuit:    circuitSquare,
	})
	register(Operation{
		Name:  "sub",
		Arity: 2,
		Signatures: concat(
			closed(console.FIELD, console.GROUP, console.SCALAR),
			closed(integerTypes...),
		),
		Native:  nativeSub,
		Circuit: circuitSub,
	})
	register(Operation{
		Name:  "sub.w",
		Arity: 2,
		Signatures: closed(integerTypes...),
		Native:     nativeSubWrapped,
		Circuit:    circuitSubWrapped,
	})
	register(Operation{
		Name:  "ternary",
		Arity: 3,
		Signatures: ternaries(comparableTypes...),
		Native:     nativeTernary,
		Circuit:    circuitTernary,
	})
	register(Operation{
		Name:  "xor",
		Arity: 2,
		Signatures: closed(append([]console.LiteralType{console.BOOLEAN}, integerTypes...)...),
		Native:     nativeXor,
		Circuit:    circuitXor,
	})
}
