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
	"github.com/coinsccg/snarkVM/pkg/util/source"
	"github.com/coinsccg/snarkVM/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LINE_COMMENT signals "// ... \n"
const LINE_COMMENT uint = 2

// BLOCK_COMMENT signals "/* ... */"
const BLOCK_COMMENT uint = 3

// SEMICOLON signals ";"
const SEMICOLON uint = 4

// COLON signals ":"
const COLON uint = 5

// STRING signals a quoted string
const STRING uint = 6

// WORD signals any other token: keywords, identifiers, opcodes, registers
// and literals all lex as words and are told apart by the parser.  Lexing
// words coarsely keeps suffixed literals (5field, -3i8), dotted opcodes
// (is.eq), register members (r0.owner) and program identifiers
// (token.aleo) each in a single token.
const WORD uint = 7

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\r'), lex.Unit('\n')))

// Line comments start with '//' and continue until a newline or EOF.
var lineComment lex.Scanner[rune] = lex.And(lex.Unit('/', '/'), lex.Until('\n'))

// Block comments are bracketed by '/*' and '*/', and do not nest.
var blockComment lex.Scanner[rune] = func(items []rune) uint {
	if len(items) < 2 || items[0] != '/' || items[1] != '*' {
		return 0
	}
	//
	for i := 2; i+1 < len(items); i++ {
		if items[i] == '*' && items[i+1] == '/' {
			return uint(i + 2)
		}
	}
	// Unterminated comment fails, leaving text for the error path.
	return 0
}

var wordChar lex.Scanner[rune] = lex.Or(
	lex.Unit('_'),
	lex.Unit('.'),
	lex.Unit('-'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

// Rule for describing words
var word lex.Scanner[rune] = lex.And(wordChar, lex.Many(wordChar))

// Rule for describing strings in quotes
var strung lex.Scanner[rune] = lex.Sequence(lex.Unit('"'), lex.Many(lex.Not('"')), lex.Unit('"'))

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lineComment, LINE_COMMENT),
	lex.Rule(blockComment, BLOCK_COMMENT),
	lex.Rule(lex.Unit(';'), SEMICOLON),
	lex.Rule(lex.Unit(':'), COLON),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(strung, STRING),
	lex.Rule(word, WORD),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Lex a given source file into a sequence of zero or more tokens, along with
// any syntax errors arising.
func Lex(srcfile source.File) ([]lex.Token, []source.SyntaxError) {
	var (
		lexer = lex.NewLexer(srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		err := srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown text encountered")
		// errors
		return nil, []source.SyntaxError{*err}
	}
	// Remove whitespace and comments
	var kept []lex.Token
	//
	for _, t := range tokens {
		switch t.Kind {
		case WHITESPACE, LINE_COMMENT, BLOCK_COMMENT, END_OF:
			// drop
		default:
			kept = append(kept, t)
		}
	}
	// Done
	return kept, nil
}
