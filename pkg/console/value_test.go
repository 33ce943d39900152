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
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Value_01(t *testing.T) {
	value, err := ParseValue("5field")
	require.NoError(t, err)
	require.False(t, value.IsRecord())
	require.Equal(t, "5field", value.String())
}

func Test_Value_02(t *testing.T) {
	value, err := ParseValue("{ first: 2field, second: true }")
	require.NoError(t, err)
	require.False(t, value.IsRecord())
	//
	first, err := value.Find([]Identifier{"first"})
	require.NoError(t, err)
	require.Equal(t, "2field", first.String())
	//
	_, err = value.Find([]Identifier{"third"})
	require.Error(t, err)
}

func Test_Value_03(t *testing.T) {
	owner := NewAddress(GroupGenerator())
	text := fmt.Sprintf("{ owner: %s.private, balance: 5u64.private }", owner)
	//
	value, err := ParseValue(text)
	require.NoError(t, err)
	require.True(t, value.IsRecord())
	//
	record := value.Record()
	require.True(t, owner.Equal(record.Owner()))
	//
	balance, err := record.Find([]Identifier{"balance"})
	require.NoError(t, err)
	require.Equal(t, "5u64", balance.String())
}

// Mixing moded and unmoded members is neither a record nor a struct.
func Test_Value_04(t *testing.T) {
	owner := NewAddress(GroupGenerator())
	text := fmt.Sprintf("{ owner: %s.private, balance: 5u64 }", owner)
	//
	_, err := ParseValue(text)
	require.Error(t, err)
}

// The first entry of a record must be an address named owner.
func Test_Record_01(t *testing.T) {
	owner := NewAddress(GroupGenerator())
	entries := []RecordEntry{
		{"balance", NewLiteralPlaintext(mustLiteral(t, "5u64")), PRIVATE},
		{"owner", NewLiteralPlaintext(NewAddressLiteral(owner)), PRIVATE},
	}
	//
	_, err := NewRecord(entries)
	require.Error(t, err)
	//
	_, err = NewRecord([]RecordEntry{entries[1], entries[0]})
	require.NoError(t, err)
}

func Test_Record_02(t *testing.T) {
	entries := []RecordEntry{
		{"owner", NewLiteralPlaintext(mustLiteral(t, "5u64")), PRIVATE},
	}
	//
	_, err := NewRecord(entries)
	require.Error(t, err)
}

func Test_Value_BinaryRoundTrip(t *testing.T) {
	owner := NewAddress(GroupGenerator())
	texts := []string{
		"true",
		"{ first: 2field, second: { inner: 3u8 } }",
		fmt.Sprintf("{ owner: %s.private, balance: 5u64.public }", owner),
	}
	//
	for _, text := range texts {
		value, err := ParseValue(text)
		require.NoError(t, err)
		//
		var buf bytes.Buffer
		require.NoError(t, value.WriteLE(&buf))
		//
		back, err := ReadValueLE(&buf)
		require.NoError(t, err)
		require.True(t, value.Equal(&back), "binary round trip of %s", text)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func mustLiteral(t *testing.T, text string) Literal {
	literal, err := ParseLiteral(text)
	require.NoError(t, err)
	//
	return literal
}
