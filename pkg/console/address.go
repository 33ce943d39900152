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
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/twistededwards"
)

// ADDRESS_HRP is the human-readable prefix of every textual address.
const ADDRESS_HRP = "aleo"

// Address is an account address: a group element rendered as a bech32m
// string over its compressed form.
type Address struct {
	point twistededwards.PointAffine
}

// NewAddress wraps a group element as an address.
func NewAddress(point twistededwards.PointAffine) Address {
	return Address{point}
}

// ParseAddress decodes a textual address (e.g. "aleo1...").
func ParseAddress(s string) (Address, error) {
	var addr Address
	//
	if !strings.HasPrefix(s, ADDRESS_HRP+"1") {
		return addr, fmt.Errorf("malformed address '%s'", s)
	}
	//
	hrp, data, version, err := bech32.DecodeGeneric(s)
	//
	if err != nil {
		return addr, fmt.Errorf("malformed address '%s': %w", s, err)
	} else if hrp != ADDRESS_HRP {
		return addr, fmt.Errorf("invalid address prefix '%s'", hrp)
	} else if version != bech32.VersionM {
		return addr, fmt.Errorf("invalid address checksum variant")
	}
	// Regroup 5bit words into bytes.
	bytes, err := bech32.ConvertBits(data, 5, 8, false)
	//
	if err != nil {
		return addr, fmt.Errorf("malformed address '%s': %w", s, err)
	}
	//
	if err := addr.point.Unmarshal(bytes); err != nil {
		return addr, fmt.Errorf("address '%s' is not a valid group element: %w", s, err)
	}
	//
	return addr, nil
}

// Point returns the group element underlying this address.
func (p Address) Point() twistededwards.PointAffine {
	return p.point
}

// Equal determines whether two addresses denote the same group element.
func (p Address) Equal(other Address) bool {
	return p.point.Equal(&other.point)
}

func (p Address) String() string {
	words, err := bech32.ConvertBits(p.point.Marshal(), 8, 5, true)
	//
	if err == nil {
		var s string
		//
		if s, err = bech32.EncodeM(ADDRESS_HRP, words); err == nil {
			return s
		}
	}
	// Unreachable for a well-formed point.
	panic(fmt.Sprintf("failed to encode address: %v", err))
}

// WriteLE writes the compressed form of the underlying group element.
func (p Address) WriteLE(w io.Writer) error {
	_, err := w.Write(p.point.Marshal())
	//
	return err
}

// ReadAddressLE reads an address from its compressed binary form.
func ReadAddressLE(r io.Reader) (Address, error) {
	var (
		addr Address
		buf  [32]byte
	)
	//
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return addr, err
	}
	//
	if err := addr.point.Unmarshal(buf[:]); err != nil {
		return addr, err
	}
	//
	return addr, nil
}
