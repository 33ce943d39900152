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
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
)

// Utilities for the little-endian wire encoding shared by every entity in
// this package.

func writeUint16LE(w io.Writer, v uint16) error {
	var buf [2]byte
	//
	binary.LittleEndian.PutUint16(buf[:], v)
	//
	_, err := w.Write(buf[:])
	//
	return err
}

func readUint16LE(r io.Reader) (uint16, error) {
	var buf [2]byte
	//
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	//
	return binary.LittleEndian.Uint16(buf[:]), nil
}

func writeUint32LE(w io.Writer, v uint32) error {
	var buf [4]byte
	//
	binary.LittleEndian.PutUint32(buf[:], v)
	//
	_, err := w.Write(buf[:])
	//
	return err
}

func readUint32LE(r io.Reader) (uint32, error) {
	var buf [4]byte
	//
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	//
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func writeUvarint(w io.Writer, v uint64) error {
	var buf [binary.MaxVarintLen64]byte
	//
	n := binary.PutUvarint(buf[:], v)
	//
	_, err := w.Write(buf[:n])
	//
	return err
}

func readUvarint(r io.Reader) (uint64, error) {
	br, ok := r.(io.ByteReader)
	//
	if !ok {
		br = &byteReader{r}
	}
	//
	return binary.ReadUvarint(br)
}

type byteReader struct{ r io.Reader }

func (p *byteReader) ReadByte() (byte, error) {
	var buf [1]byte
	//
	_, err := io.ReadFull(p.r, buf[:])
	//
	return buf[0], err
}

// writeBigLE writes the (non-negative) value as exactly n little-endian
// bytes.
func writeBigLE(w io.Writer, v *big.Int, n uint) error {
	buf := make([]byte, n)
	//
	if uint(len(v.Bytes())) > n {
		return fmt.Errorf("value %s exceeds %d bytes", v, n)
	}
	// FillBytes produces big-endian form.
	v.FillBytes(buf)
	reverseBytes(buf)
	//
	_, err := w.Write(buf)
	//
	return err
}

// readBigLE reads exactly n little-endian bytes as a non-negative value.
func readBigLE(r io.Reader, n uint) (*big.Int, error) {
	buf := make([]byte, n)
	//
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	//
	reverseBytes(buf)
	//
	return new(big.Int).SetBytes(buf), nil
}

func reverseBytes(buf []byte) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
