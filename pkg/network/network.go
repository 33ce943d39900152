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
package network

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/twistededwards"
)

// Config collects together every network-wide parameter the virtual machine
// depends upon: the moduli of the underlying algebra, the curve over which
// group elements live, and the structural limits applied during program
// validation.  A single Config value is passed (by reference) into the stack
// and operation dispatch, rather than being baked in as compile-time
// parameters.
type Config struct {
	// Name of this network (e.g. "testnet3").
	Name string
	// Edition of this network.
	Edition uint16
	// FieldModulus is the modulus of the base field, which is also the
	// modulus of the ambient constraint system.
	FieldModulus *big.Int
	// ScalarModulus is the order of the prime-order subgroup of the embedded
	// Edwards curve.
	ScalarModulus *big.Int
	// Curve gives the parameters of the embedded Edwards curve.
	Curve *twistededwards.CurveParams
	// MaxInputs bounds the number of inputs a closure or function may
	// declare.
	MaxInputs uint
	// MaxOutputs bounds the number of outputs a closure or function may
	// declare.
	MaxOutputs uint
	// MaxRecords bounds the number of record types a program may declare.
	// This is currently 1, but is a policy limit rather than an
	// architectural invariant.
	MaxRecords uint
}

// Testnet3 returns the canonical network configuration.  Field elements are
// drawn from the scalar field of BLS12-377, and group elements from the
// Edwards curve embedded over that field.
func Testnet3() *Config {
	curve := twistededwards.GetEdwardsCurve()
	//
	return &Config{
		Name:          "testnet3",
		Edition:       0,
		FieldModulus:  fr.Modulus(),
		ScalarModulus: new(big.Int).Set(&curve.Order),
		Curve:         &curve,
		MaxInputs:     16,
		MaxOutputs:    16,
		MaxRecords:    1,
	}
}
