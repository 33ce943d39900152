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

package program

import (
	"encoding/binary"
	"io"
)

func writeUint16LE(w io.Writer, v uint16) error {
	var buf [2]byte
	//
	binary.LittleEndian.PutUint16(buf[:], v)
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

func writeByte(w io.Writer, v byte) error {
	_, err := w.Write([]byte{v})
	return err
}

func readByte(r io.Reader) (byte, error) {
	var buf [1]byte
	//
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	//
	return buf[0], nil
}
