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
	"unicode"
)

// ParseValue parses the text form of a value: a literal ("5field"), an
// interface value ("{ first: 2field }"), or a record ("{ owner:
// aleo1....private, balance: 5u64.private }").  The entire input must be
// consumed.
func ParseValue(s string) (Value, error) {
	parser := &valueParser{[]rune(s), 0}
	//
	value, err := parser.parseValue()
	//
	if err != nil {
		return Value{}, err
	}
	//
	parser.skipWhitespace()
	//
	if parser.index != len(parser.runes) {
		return Value{}, fmt.Errorf("unexpected trailing input '%s'", string(parser.runes[parser.index:]))
	}
	//
	return value, nil
}

// ParsePlaintext parses the text form of a plaintext, requiring the entire
// input to be consumed.
func ParsePlaintext(s string) (Plaintext, error) {
	value, err := ParseValue(s)
	//
	if err != nil {
		return Plaintext{}, err
	} else if value.IsRecord() {
		return Plaintext{}, fmt.Errorf("expected plaintext, found record")
	}
	//
	return value.Plaintext(), nil
}

// ParseRecord parses the text form of a record, requiring the entire input
// to be consumed.
func ParseRecord(s string) (Record, error) {
	value, err := ParseValue(s)
	//
	if err != nil {
		return Record{}, err
	} else if !value.IsRecord() {
		return Record{}, fmt.Errorf("expected record, found plaintext")
	}
	//
	return value.Record(), nil
}

type valueParser struct {
	runes []rune
	index int
}

// entry is a parsed member which may (or may not) carry a visibility mode.
// Whether modes are present determines record versus interface value.
type valueEntry struct {
	name    Identifier
	value   Plaintext
	mode    Visibility
	hasMode bool
}

func (p *valueParser) parseValue() (Value, error) {
	p.skipWhitespace()
	//
	if p.lookahead() != '{' {
		literal, err := p.parseLiteralAtom()
		//
		if err != nil {
			return Value{}, err
		}
		//
		return NewPlaintextValue(NewLiteralPlaintext(literal)), nil
	}
	//
	entries, err := p.parseEntries(true)
	//
	if err != nil {
		return Value{}, err
	}
	// Determine record versus interface value.
	modes := 0
	//
	for _, e := range entries {
		if e.hasMode {
			modes++
		}
	}
	//
	switch modes {
	case 0:
		members := make([]PlaintextMember, len(entries))
		//
		for i, e := range entries {
			members[i] = PlaintextMember{e.name, e.value}
		}
		//
		return NewPlaintextValue(NewStructPlaintext(members)), nil
	case len(entries):
		recordEntries := make([]RecordEntry, len(entries))
		//
		for i, e := range entries {
			recordEntries[i] = RecordEntry{e.name, e.value, e.mode}
		}
		//
		record, err := NewRecord(recordEntries)
		//
		if err != nil {
			return Value{}, err
		}
		//
		return NewRecordValue(record), nil
	default:
		return Value{}, fmt.Errorf("record entries must all carry a visibility mode")
	}
}

// parseEntries parses "{ name: value, ... }", with visibility suffixes
// permitted only at the top level.
func (p *valueParser) parseEntries(topLevel bool) ([]valueEntry, error) {
	var entries []valueEntry
	//
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	//
	for {
		p.skipWhitespace()
		//
		if len(entries) > 0 {
			if p.lookahead() == '}' {
				break
			}
			//
			if err := p.expect(','); err != nil {
				return nil, err
			}
		}
		//
		entry, err := p.parseEntry(topLevel)
		//
		if err != nil {
			return nil, err
		}
		//
		entries = append(entries, entry)
		p.skipWhitespace()
		//
		if p.lookahead() == '}' {
			break
		}
	}
	//
	return entries, p.expect('}')
}

func (p *valueParser) parseEntry(topLevel bool) (valueEntry, error) {
	var (
		entry valueEntry
		err   error
	)
	//
	p.skipWhitespace()
	//
	if entry.name, err = p.parseIdentifier(); err != nil {
		return entry, err
	}
	//
	if err = p.expect(':'); err != nil {
		return entry, err
	}
	//
	p.skipWhitespace()
	//
	if p.lookahead() == '{' {
		inner, err := p.parseEntries(false)
		//
		if err != nil {
			return entry, err
		}
		//
		members := make([]PlaintextMember, len(inner))
		//
		for i, e := range inner {
			members[i] = PlaintextMember{e.name, e.value}
		}
		//
		entry.value = NewStructPlaintext(members)
	} else {
		// A literal atom may end with ".mode" at the top level; split that
		// suffix off before parsing the literal itself.
		atom := p.scanAtom()
		//
		if topLevel {
			atom, entry.mode, entry.hasMode = splitModeSuffix(atom)
		}
		//
		literal, err := ParseLiteral(atom)
		//
		if err != nil {
			return entry, err
		}
		//
		entry.value = NewLiteralPlaintext(literal)
		//
		return entry, nil
	}
	// Composite entries may also carry a mode suffix at the top level.
	if topLevel && p.lookahead() == '.' {
		p.index++
		//
		name, err := p.parseIdentifier()
		//
		if err != nil {
			return entry, err
		}
		//
		if entry.mode, entry.hasMode = ParseVisibility(string(name)); !entry.hasMode {
			return entry, fmt.Errorf("unknown visibility '%s'", name)
		}
	}
	//
	return entry, err
}

// splitModeSuffix splits a trailing ".constant", ".public" or ".private"
// from a literal atom, if present.
func splitModeSuffix(atom string) (string, Visibility, bool) {
	for _, mode := range []Visibility{CONSTANT, PUBLIC, PRIVATE} {
		suffix := "." + mode.String()
		//
		if len(atom) > len(suffix) && atom[len(atom)-len(suffix):] == suffix {
			return atom[:len(atom)-len(suffix)], mode, true
		}
	}
	//
	return atom, 0, false
}

func (p *valueParser) parseLiteralAtom() (Literal, error) {
	atom := p.scanAtom()
	//
	if atom == "" {
		return Literal{}, fmt.Errorf("expected literal at position %d", p.index)
	}
	//
	return ParseLiteral(atom)
}

func (p *valueParser) parseIdentifier() (Identifier, error) {
	p.skipWhitespace()
	//
	start := p.index
	//
	for p.index < len(p.runes) {
		c := p.runes[p.index]
		//
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			p.index++
		} else {
			break
		}
	}
	//
	return NewIdentifier(string(p.runes[start:p.index]))
}

// scanAtom consumes a literal atom: a quoted string, or a run of atom
// characters (letters, digits, sign and member dots).
func (p *valueParser) scanAtom() string {
	p.skipWhitespace()
	//
	start := p.index
	//
	if p.lookahead() == '"' {
		p.index++
		//
		for p.index < len(p.runes) && p.runes[p.index] != '"' {
			if p.runes[p.index] == '\\' {
				p.index++
			}
			//
			p.index++
		}
		//
		if p.index < len(p.runes) {
			p.index++
		}
		//
		return string(p.runes[start:p.index])
	}
	//
	for p.index < len(p.runes) {
		c := p.runes[p.index]
		//
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			p.index++
		case c == '-', c == '_', c == '.':
			p.index++
		default:
			return string(p.runes[start:p.index])
		}
	}
	//
	return string(p.runes[start:p.index])
}

func (p *valueParser) lookahead() rune {
	if p.index >= len(p.runes) {
		return 0
	}
	//
	return p.runes[p.index]
}

func (p *valueParser) expect(c rune) error {
	p.skipWhitespace()
	//
	if p.lookahead() != c {
		return fmt.Errorf("expected '%c' at position %d", c, p.index)
	}
	//
	p.index++
	//
	return nil
}

func (p *valueParser) skipWhitespace() {
	for p.index < len(p.runes) && unicode.IsSpace(p.runes[p.index]) {
		p.index++
	}
}
