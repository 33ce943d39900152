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

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/twistededwards"
)

// GroupIdentity returns the identity element of the embedded curve.
func GroupIdentity() twistededwards.PointAffine {
	var p twistededwards.PointAffine
	//
	p.X.SetZero()
	p.Y.SetOne()
	//
	return p
}

// GroupGenerator returns the base point of the prime-order subgroup.
func GroupGenerator() twistededwards.PointAffine {
	return twistededwards.GetEdwardsCurve().Base
}

// IsInGroup checks subgroup membership: the point must lie on the curve and
// be annihilated by the subgroup order.
func IsInGroup(p twistededwards.PointAffine) bool {
	if !p.IsOnCurve() {
		return false
	}
	//
	var (
		curve    = twistededwards.GetEdwardsCurve()
		multiple twistededwards.PointAffine
		identity = GroupIdentity()
	)
	//
	multiple.ScalarMultiplication(&p, &curve.Order)
	//
	return multiple.Equal(&identity)
}

// GroupFromX recovers the (unique) subgroup element with the given
// x-coordinate.  For a twisted Edwards curve ax^2 + y^2 = 1 + dx^2y^2, the
// two candidate points (x, y) and (x, -y) differ by low-order torsion, so at
// most one of them lies in the prime-order subgroup.
func GroupFromX(x fr.Element) (twistededwards.PointAffine, error) {
	var (
		curve           = twistededwards.GetEdwardsCurve()
		one, num, denom fr.Element
		ysquare, y      fr.Element
		point           twistededwards.PointAffine
	)
	//
	one.SetOne()
	// num = 1 - a.x^2
	num.Square(&x)
	num.Mul(&num, &curve.A)
	num.Sub(&one, &num)
	// denom = 1 - d.x^2
	denom.Square(&x)
	denom.Mul(&denom, &curve.D)
	denom.Sub(&one, &denom)
	//
	if denom.IsZero() {
		return point, fmt.Errorf("x-coordinate %s does not identify a group element", x.String())
	}
	//
	denom.Inverse(&denom)
	ysquare.Mul(&num, &denom)
	//
	if y.Sqrt(&ysquare) == nil {
		return point, fmt.Errorf("x-coordinate %s does not identify a group element", x.String())
	}
	// Try both roots, looking for the subgroup element.
	point.X = x
	point.Y = y
	//
	if IsInGroup(point) {
		return point, nil
	}
	//
	point.Y.Neg(&y)
	//
	if IsInGroup(point) {
		return point, nil
	}
	//
	return point, fmt.Errorf("x-coordinate %s does not identify a subgroup element", x.String())
}

// CanonicalSqrt computes the canonical square root of a field element (the
// root with the smaller canonical representation), returning false if the
// element is a non-residue.
func CanonicalSqrt(v fr.Element) (fr.Element, bool) {
	var root, neg fr.Element
	//
	if root.Sqrt(&v) == nil {
		return root, false
	}
	//
	neg.Neg(&root)
	//
	var a, b big.Int
	//
	root.BigInt(&a)
	neg.BigInt(&b)
	//
	if b.Cmp(&a) < 0 {
		return neg, true
	}
	//
	return root, true
}
