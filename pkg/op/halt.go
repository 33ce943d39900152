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
	"errors"
	"fmt"
)

// HaltError signals that evaluation halted on an illegal operation, such as
// a checked overflow, a divide by zero or the square root of a non-residue.
// A halt aborts the entire evaluation and is distinct from a malformed
// program, which is rejected before evaluation begins.
type HaltError struct {
	msg string
}

// Haltf constructs a halt with a formatted message.
func Haltf(format string, args ...any) *HaltError {
	return &HaltError{msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (p *HaltError) Error() string {
	return p.msg
}

// IsHalt determines whether the given error is (or wraps) a halt.
func IsHalt(err error) bool {
	var halt *HaltError
	return errors.As(err, &halt)
}
