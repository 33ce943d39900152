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
	"fmt"
	"io"

	"github.com/coinsccg/snarkVM/pkg/console"
)

// Import declares a dependency on another program.
type Import struct {
	// ProgramID of the imported program.
	ProgramID console.ProgramID
}

func (p *Import) String() string {
	return fmt.Sprintf("import %s;", p.ProgramID)
}

// WriteLE writes the binary form of this import.
func (p *Import) WriteLE(w io.Writer) error {
	return p.ProgramID.WriteLE(w)
}

// ReadImportLE reads the binary form of an import.
func ReadImportLE(r io.Reader) (Import, error) {
	id, err := console.ReadProgramIDLE(r)
	return Import{ProgramID: id}, err
}
