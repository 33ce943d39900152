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
	"strconv"
	"strings"

	"github.com/coinsccg/snarkVM/pkg/console"
	"github.com/coinsccg/snarkVM/pkg/network"
	"github.com/coinsccg/snarkVM/pkg/op"
	"github.com/coinsccg/snarkVM/pkg/util/source"
	"github.com/coinsccg/snarkVM/pkg/util/source/lex"
)

// ParseProgram parses and validates the textual form of a program.  Every
// declaration passes through the same add operations as programmatic
// construction, hence a parsed program is always a valid one.
func ParseProgram(srcfile source.File, config *network.Config) (*Program, []source.SyntaxError) {
	tokens, errs := Lex(srcfile)
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	parser := &parser{srcfile: srcfile, tokens: tokens, config: config}
	//
	program, err := parser.parseProgram()
	if err != nil {
		return nil, []source.SyntaxError{*err}
	}
	//
	return program, nil
}

// parser walks a token sequence, building up declarations and handing them
// to the program under construction for validation.
type parser struct {
	srcfile source.File
	tokens  []lex.Token
	index   int
	config  *network.Config
}

// ============================================================================
// Declarations
// ============================================================================

func (p *parser) parseProgram() (*Program, *source.SyntaxError) {
	var imports []Import
	// Imports precede the program declaration.
	for p.matchesWord("import") {
		imp, err := p.parseImport()
		if err != nil {
			return nil, err
		}
		//
		imports = append(imports, imp)
	}
	//
	if _, err := p.expectWord("program"); err != nil {
		return nil, err
	}
	//
	tok, err := p.expect(WORD, "expected program identifier")
	if err != nil {
		return nil, err
	}
	//
	id, iderr := console.NewProgramID(p.text(tok))
	if iderr != nil {
		return nil, p.errorAt(tok, iderr.Error())
	}
	//
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	//
	program := New(p.config, id)
	//
	for _, imp := range imports {
		if aerr := program.AddImport(imp); aerr != nil {
			return nil, p.errorAt(tok, aerr.Error())
		}
	}
	//
	for p.index < len(p.tokens) {
		if err := p.parseDeclaration(program); err != nil {
			return nil, err
		}
	}
	//
	return program, nil
}

func (p *parser) parseImport() (Import, *source.SyntaxError) {
	if _, err := p.expectWord("import"); err != nil {
		return Import{}, err
	}
	//
	tok, err := p.expect(WORD, "expected program identifier")
	if err != nil {
		return Import{}, err
	}
	//
	id, iderr := console.NewProgramID(p.text(tok))
	if iderr != nil {
		return Import{}, p.errorAt(tok, iderr.Error())
	}
	//
	return Import{ProgramID: id}, p.semicolon()
}

func (p *parser) parseDeclaration(program *Program) *source.SyntaxError {
	tok := p.peek()
	//
	switch p.text(tok) {
	case "interface":
		return p.parseInterface(program)
	case "record":
		return p.parseRecord(program)
	case "closure":
		return p.parseClosure(program)
	case "function":
		return p.parseFunction(program)
	default:
		return p.errorAt(tok, "expected declaration")
	}
}

func (p *parser) parseInterface(program *Program) *source.SyntaxError {
	p.next()
	//
	nameTok, name, err := p.identifier()
	if err != nil {
		return err
	}
	//
	if _, err := p.expect(COLON, "expected ':'"); err != nil {
		return err
	}
	//
	var members []console.InterfaceMember
	//
	for p.atMemberLine() {
		_, mname, err := p.identifier()
		if err != nil {
			return err
		}
		//
		if _, err := p.expectWord("as"); err != nil {
			return err
		}
		//
		mtype, err := p.plaintextType()
		if err != nil {
			return err
		}
		//
		if err := p.semicolon(); err != nil {
			return err
		}
		//
		members = append(members, console.InterfaceMember{Name: mname, Type: mtype})
	}
	//
	itf, ierr := console.NewInterface(name, members)
	if ierr != nil {
		return p.errorAt(nameTok, ierr.Error())
	}
	//
	if aerr := program.AddInterface(itf); aerr != nil {
		return p.errorAt(nameTok, aerr.Error())
	}
	//
	return nil
}

func (p *parser) parseRecord(program *Program) *source.SyntaxError {
	p.next()
	//
	nameTok, name, err := p.identifier()
	if err != nil {
		return err
	}
	//
	if _, err := p.expect(COLON, "expected ':'"); err != nil {
		return err
	}
	//
	var entries []console.RecordEntryType
	//
	for p.atMemberLine() {
		tok := p.peek()
		//
		ename, eerr := console.NewIdentifier(p.text(tok))
		if eerr != nil {
			return p.errorAt(tok, eerr.Error())
		}
		//
		p.next()
		//
		if _, err := p.expectWord("as"); err != nil {
			return err
		}
		//
		etype, err := p.entryType()
		if err != nil {
			return err
		}
		//
		if err := p.semicolon(); err != nil {
			return err
		}
		//
		entries = append(entries, console.RecordEntryType{Name: ename, Type: etype})
	}
	//
	rt, rerr := console.NewRecordType(name, entries)
	if rerr != nil {
		return p.errorAt(nameTok, rerr.Error())
	}
	//
	if aerr := program.AddRecord(rt); aerr != nil {
		return p.errorAt(nameTok, aerr.Error())
	}
	//
	return nil
}

func (p *parser) parseClosure(program *Program) *source.SyntaxError {
	p.next()
	//
	nameTok, name, err := p.identifier()
	if err != nil {
		return err
	}
	//
	if _, err := p.expect(COLON, "expected ':'"); err != nil {
		return err
	}
	//
	var closure = Closure{Name: name}
	//
	for p.matchesWord("input") {
		p.next()
		//
		register, err := p.register()
		if err != nil {
			return err
		}
		//
		if _, err := p.expectWord("as"); err != nil {
			return err
		}
		//
		rtype, err := p.registerType()
		if err != nil {
			return err
		}
		//
		if err := p.semicolon(); err != nil {
			return err
		}
		//
		closure.Inputs = append(closure.Inputs, ClosureInput{Register: register, Type: rtype})
	}
	//
	instructions, err := p.instructions()
	if err != nil {
		return err
	}
	//
	closure.Instructions = instructions
	//
	for p.matchesWord("output") {
		p.next()
		//
		operand, err := p.operand()
		if err != nil {
			return err
		}
		//
		if _, err := p.expectWord("as"); err != nil {
			return err
		}
		//
		rtype, err := p.registerType()
		if err != nil {
			return err
		}
		//
		if err := p.semicolon(); err != nil {
			return err
		}
		//
		closure.Outputs = append(closure.Outputs, ClosureOutput{Operand: operand, Type: rtype})
	}
	//
	if aerr := program.AddClosure(closure); aerr != nil {
		return p.errorAt(nameTok, aerr.Error())
	}
	//
	return nil
}

func (p *parser) parseFunction(program *Program) *source.SyntaxError {
	p.next()
	//
	nameTok, name, err := p.identifier()
	if err != nil {
		return err
	}
	//
	if _, err := p.expect(COLON, "expected ':'"); err != nil {
		return err
	}
	//
	var fn = Function{Name: name}
	//
	for p.matchesWord("input") {
		p.next()
		//
		register, err := p.register()
		if err != nil {
			return err
		}
		//
		if _, err := p.expectWord("as"); err != nil {
			return err
		}
		//
		vtype, err := p.valueType()
		if err != nil {
			return err
		}
		//
		if err := p.semicolon(); err != nil {
			return err
		}
		//
		fn.Inputs = append(fn.Inputs, FunctionInput{Register: register, Type: vtype})
	}
	//
	instructions, err := p.instructions()
	if err != nil {
		return err
	}
	//
	fn.Instructions = instructions
	//
	for p.matchesWord("output") {
		p.next()
		//
		operand, err := p.operand()
		if err != nil {
			return err
		}
		//
		if _, err := p.expectWord("as"); err != nil {
			return err
		}
		//
		vtype, err := p.valueType()
		if err != nil {
			return err
		}
		//
		if err := p.semicolon(); err != nil {
			return err
		}
		//
		fn.Outputs = append(fn.Outputs, FunctionOutput{Operand: operand, Type: vtype})
	}
	//
	if aerr := program.AddFunction(fn); aerr != nil {
		return p.errorAt(nameTok, aerr.Error())
	}
	//
	return nil
}

// ============================================================================
// Instructions
// ============================================================================

func (p *parser) instructions() ([]Instruction, *source.SyntaxError) {
	var instructions []Instruction
	//
	for p.peek().Kind == WORD && op.IsOpcode(p.text(p.peek())) {
		insn, err := p.instruction()
		if err != nil {
			return nil, err
		}
		//
		instructions = append(instructions, insn)
	}
	//
	return instructions, nil
}

func (p *parser) instruction() (Instruction, *source.SyntaxError) {
	var insn Instruction
	//
	insn.Opcode = p.text(p.next())
	//
	if insn.Opcode == "call" {
		_, callee, err := p.identifier()
		if err != nil {
			return insn, err
		}
		//
		insn.Callee = callee
	}
	// Operands run until the 'into' marker.
	for !p.matchesWord("into") {
		operand, err := p.operand()
		if err != nil {
			return insn, err
		}
		//
		insn.Operands = append(insn.Operands, operand)
	}
	//
	p.next()
	// Destinations run until 'as' or the closing semicolon.
	for p.peek().Kind == WORD && p.text(p.peek()) != "as" {
		register, err := p.register()
		if err != nil {
			return insn, err
		}
		//
		insn.Destinations = append(insn.Destinations, register)
	}
	//
	if p.matchesWord("as") {
		p.next()
		//
		rtype, err := p.registerType()
		if err != nil {
			return insn, err
		}
		//
		insn.Cast = &rtype
	}
	//
	return insn, p.semicolon()
}

func (p *parser) operand() (console.Operand, *source.SyntaxError) {
	tok := p.peek()
	// Quoted strings become string literals.
	if tok.Kind == STRING {
		p.next()
		//
		unquoted, err := strconv.Unquote(p.text(tok))
		if err != nil {
			return console.Operand{}, p.errorAt(tok, "malformed string literal")
		}
		//
		return console.NewLiteralOperand(console.NewString(unquoted)), nil
	}
	//
	if tok.Kind != WORD {
		return console.Operand{}, p.errorAt(tok, "expected operand")
	}
	//
	p.next()
	//
	text := p.text(tok)
	// Register references win over literals.
	if register, ok := parseRegisterText(text); ok {
		return console.NewRegisterOperand(register), nil
	}
	//
	literal, err := console.ParseLiteral(text)
	if err != nil {
		return console.Operand{}, p.errorAt(tok, err.Error())
	}
	//
	return console.NewLiteralOperand(literal), nil
}

func (p *parser) register() (console.Register, *source.SyntaxError) {
	tok, err := p.expect(WORD, "expected register")
	if err != nil {
		return console.Register{}, err
	}
	//
	register, ok := parseRegisterText(p.text(tok))
	if !ok {
		return console.Register{}, p.errorAt(tok, "malformed register")
	}
	//
	return register, nil
}

// parseRegisterText recognises plain registers (r0) and register members
// (r0.owner).
func parseRegisterText(text string) (console.Register, bool) {
	if !strings.HasPrefix(text, "r") {
		return console.Register{}, false
	}
	//
	parts := strings.Split(text[1:], ".")
	//
	locator, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return console.Register{}, false
	}
	//
	var path []console.Identifier
	//
	for _, part := range parts[1:] {
		name, err := console.NewIdentifier(part)
		if err != nil {
			return console.Register{}, false
		}
		//
		path = append(path, name)
	}
	//
	return console.Register{Locator: locator, Path: path}, true
}

// ============================================================================
// Types
// ============================================================================

func (p *parser) plaintextType() (console.PlaintextType, *source.SyntaxError) {
	tok, err := p.expect(WORD, "expected type")
	if err != nil {
		return console.PlaintextType{}, err
	}
	//
	return p.plaintextTypeText(tok, p.text(tok))
}

func (p *parser) plaintextTypeText(tok lex.Token, text string) (console.PlaintextType, *source.SyntaxError) {
	if lt, ok := console.ParseLiteralType(text); ok {
		return console.NewLiteralPlaintextType(lt), nil
	}
	//
	name, err := console.NewIdentifier(text)
	if err != nil {
		return console.PlaintextType{}, p.errorAt(tok, err.Error())
	}
	//
	return console.NewInterfacePlaintextType(name), nil
}

func (p *parser) registerType() (console.RegisterType, *source.SyntaxError) {
	tok, err := p.expect(WORD, "expected type")
	if err != nil {
		return console.RegisterType{}, err
	}
	//
	text := p.text(tok)
	//
	if rest, ok := strings.CutSuffix(text, ".record"); ok {
		name, nerr := console.NewIdentifier(rest)
		if nerr != nil {
			return console.RegisterType{}, p.errorAt(tok, nerr.Error())
		}
		//
		return console.NewRecordRegisterType(name), nil
	}
	//
	pt, perr := p.plaintextTypeText(tok, text)
	if perr != nil {
		return console.RegisterType{}, perr
	}
	//
	return console.NewPlaintextRegisterType(pt), nil
}

func (p *parser) entryType() (console.EntryType, *source.SyntaxError) {
	tok, err := p.expect(WORD, "expected type")
	if err != nil {
		return console.EntryType{}, err
	}
	//
	text := p.text(tok)
	//
	i := strings.LastIndex(text, ".")
	if i < 0 {
		return console.EntryType{}, p.errorAt(tok, "expected visibility mode")
	}
	//
	mode, ok := console.ParseVisibility(text[i+1:])
	if !ok {
		return console.EntryType{}, p.errorAt(tok, "unknown visibility mode")
	}
	//
	pt, perr := p.plaintextTypeText(tok, text[:i])
	if perr != nil {
		return console.EntryType{}, perr
	}
	//
	return console.EntryType{Plaintext: pt, Mode: mode}, nil
}

func (p *parser) valueType() (console.ValueType, *source.SyntaxError) {
	tok, err := p.expect(WORD, "expected type")
	if err != nil {
		return console.ValueType{}, err
	}
	//
	text := p.text(tok)
	// Records are always private.
	if rest, ok := strings.CutSuffix(text, ".record"); ok {
		name, nerr := console.NewIdentifier(rest)
		if nerr != nil {
			return console.ValueType{}, p.errorAt(tok, nerr.Error())
		}
		//
		return console.ValueType{Type: console.NewRecordRegisterType(name), Mode: console.PRIVATE}, nil
	}
	//
	i := strings.LastIndex(text, ".")
	if i < 0 {
		return console.ValueType{}, p.errorAt(tok, "expected visibility mode")
	}
	//
	mode, ok := console.ParseVisibility(text[i+1:])
	if !ok {
		return console.ValueType{}, p.errorAt(tok, "unknown visibility mode")
	}
	//
	pt, perr := p.plaintextTypeText(tok, text[:i])
	if perr != nil {
		return console.ValueType{}, perr
	}
	//
	return console.ValueType{Type: console.NewPlaintextRegisterType(pt), Mode: mode}, nil
}

// ============================================================================
// Token helpers
// ============================================================================

func (p *parser) peek() lex.Token {
	if p.index < len(p.tokens) {
		return p.tokens[p.index]
	}
	// Synthetic end-of-file token.
	n := len(p.srcfile.Contents())
	//
	return lex.Token{Kind: END_OF, Span: source.NewSpan(n, n)}
}

func (p *parser) next() lex.Token {
	tok := p.peek()
	p.index++
	//
	return tok
}

func (p *parser) text(tok lex.Token) string {
	return string(p.srcfile.Contents()[tok.Span.Start():tok.Span.End()])
}

func (p *parser) matchesWord(text string) bool {
	tok := p.peek()
	//
	return tok.Kind == WORD && p.text(tok) == text
}

// atMemberLine determines whether the next tokens form a member line of an
// interface or record body, as opposed to the start of the next
// declaration.
func (p *parser) atMemberLine() bool {
	tok := p.peek()
	//
	if tok.Kind != WORD {
		return false
	}
	//
	switch p.text(tok) {
	case "interface", "record", "closure", "function":
		return false
	default:
		return true
	}
}

func (p *parser) identifier() (lex.Token, console.Identifier, *source.SyntaxError) {
	tok, err := p.expect(WORD, "expected identifier")
	if err != nil {
		return tok, "", err
	}
	//
	name, nerr := console.NewIdentifier(p.text(tok))
	if nerr != nil {
		return tok, "", p.errorAt(tok, nerr.Error())
	}
	//
	return tok, name, nil
}

func (p *parser) expect(kind uint, msg string) (lex.Token, *source.SyntaxError) {
	tok := p.peek()
	//
	if tok.Kind != kind {
		return tok, p.errorAt(tok, msg)
	}
	//
	p.next()
	//
	return tok, nil
}

func (p *parser) expectWord(text string) (lex.Token, *source.SyntaxError) {
	tok := p.peek()
	//
	if tok.Kind != WORD || p.text(tok) != text {
		return tok, p.errorAt(tok, "expected '"+text+"'")
	}
	//
	p.next()
	//
	return tok, nil
}

func (p *parser) semicolon() *source.SyntaxError {
	_, err := p.expect(SEMICOLON, "expected ';'")
	//
	return err
}

func (p *parser) errorAt(tok lex.Token, msg string) *source.SyntaxError {
	return p.srcfile.SyntaxError(tok.Span, msg)
}
