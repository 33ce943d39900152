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

// Package program defines the program model: interfaces, record types,
// closures and functions gathered under a single identifier namespace, with
// every add operation validating the whole definition before any state
// changes.  A validated program is immutable and safe for concurrent reads.
package program

import (
	"fmt"
	"strings"

	"github.com/coinsccg/snarkVM/pkg/console"
	"github.com/coinsccg/snarkVM/pkg/network"
	"github.com/coinsccg/snarkVM/pkg/op"
)

// keywords reserves the tokens of the text format, none of which may name a
// declaration or a member.
var keywords = []string{
	// Modes
	"const", "constant", "public", "private",
	// Literal types
	"address", "boolean", "field", "group",
	"i8", "i16", "i32", "i64", "i128",
	"u8", "u16", "u32", "u64", "u128",
	"scalar", "string",
	// Booleans
	"true", "false",
	// Statements
	"input", "output", "as", "into",
	// Declarations
	"function", "interface", "record", "closure", "program", "global",
	// Reserved for future use
	"return", "break", "assert", "continue", "let", "if", "else",
	"while", "for", "switch", "case", "default", "match", "enum",
	"struct", "union", "trait", "impl", "type",
}

// declKind discriminates the namespace entries of a program.
type declKind uint8

const (
	interfaceDecl declKind = iota
	recordDecl
	closureDecl
	functionDecl
)

// Program is a validated collection of declarations under one program
// identifier.  Declarations are held in insertion order, which also
// witnesses the acyclicity of type references and calls: a declaration can
// only reference declarations added strictly before it.
type Program struct {
	config *network.Config
	id     console.ProgramID
	// Imported programs, in declaration order.
	imports []Import
	// Insertion order across the whole namespace.
	order []console.Identifier
	kinds map[console.Identifier]declKind
	//
	interfaces map[console.Identifier]*console.Interface
	records    map[console.Identifier]*console.RecordType
	closures   map[console.Identifier]*Closure
	functions  map[console.Identifier]*Function
}

// New constructs an empty program with the given identifier.
func New(config *network.Config, id console.ProgramID) *Program {
	return &Program{
		config:     config,
		id:         id,
		kinds:      make(map[console.Identifier]declKind),
		interfaces: make(map[console.Identifier]*console.Interface),
		records:    make(map[console.Identifier]*console.RecordType),
		closures:   make(map[console.Identifier]*Closure),
		functions:  make(map[console.Identifier]*Function),
	}
}

// ID returns the identifier of this program.
func (p *Program) ID() console.ProgramID {
	return p.id
}

// Config returns the network configuration this program was built against.
func (p *Program) Config() *network.Config {
	return p.config
}

// Imports returns the imports of this program, in declaration order.
func (p *Program) Imports() []Import {
	return p.imports
}

// Interface finds a declared interface by name.
func (p *Program) Interface(name console.Identifier) (*console.Interface, bool) {
	itf, ok := p.interfaces[name]
	return itf, ok
}

// Record finds a declared record type by name.
func (p *Program) Record(name console.Identifier) (*console.RecordType, bool) {
	rt, ok := p.records[name]
	return rt, ok
}

// Closure finds a declared closure by name.
func (p *Program) Closure(name console.Identifier) (*Closure, bool) {
	c, ok := p.closures[name]
	return c, ok
}

// Function finds a declared function by name.
func (p *Program) Function(name console.Identifier) (*Function, bool) {
	f, ok := p.functions[name]
	return f, ok
}

// Functions returns the names of all declared functions, in declaration
// order.
func (p *Program) Functions() []console.Identifier {
	var names []console.Identifier
	//
	for _, name := range p.order {
		if p.kinds[name] == functionDecl {
			names = append(names, name)
		}
	}
	//
	return names
}

// ============================================================================
// Add operations
// ============================================================================

// AddImport records a dependency on another program.
func (p *Program) AddImport(imp Import) error {
	for _, existing := range p.imports {
		if existing.ProgramID == imp.ProgramID {
			return &StructuralError{fmt.Sprintf("duplicate import '%s'", imp.ProgramID)}
		}
	}
	//
	p.imports = append(p.imports, imp)
	//
	return nil
}

// AddInterface validates and adds an interface declaration.  Member types
// naming other interfaces must already be declared, which rules out cyclic
// type graphs by construction.
func (p *Program) AddInterface(itf console.Interface) error {
	if err := p.checkName(itf.Name()); err != nil {
		return err
	}
	//
	if len(itf.Members()) == 0 {
		return &StructuralError{fmt.Sprintf("interface '%s' has no members", itf.Name())}
	}
	//
	for _, m := range itf.Members() {
		if isKeyword(string(m.Name)) {
			return &StructuralError{fmt.Sprintf("member name '%s' is a reserved keyword", m.Name)}
		}
		//
		if err := p.checkPlaintextType(m.Type); err != nil {
			return err
		}
	}
	//
	p.interfaces[itf.Name()] = &itf
	p.insert(itf.Name(), interfaceDecl)
	//
	return nil
}

// AddRecord validates and adds a record type declaration.
func (p *Program) AddRecord(rt console.RecordType) error {
	if err := p.checkName(rt.Name()); err != nil {
		return err
	}
	//
	if uint(len(p.records)) >= p.config.MaxRecords {
		return &StructuralError{fmt.Sprintf("program '%s' already holds %d record type(s)", p.id, len(p.records))}
	}
	//
	if len(rt.Entries()) == 0 {
		return &StructuralError{fmt.Sprintf("record '%s' has no entries", rt.Name())}
	}
	//
	for i, e := range rt.Entries() {
		if i > 0 && isKeyword(string(e.Name)) {
			return &StructuralError{fmt.Sprintf("entry name '%s' is a reserved keyword", e.Name)}
		}
		//
		if err := p.checkPlaintextType(e.Type.Plaintext); err != nil {
			return err
		}
	}
	//
	p.records[rt.Name()] = &rt
	p.insert(rt.Name(), recordDecl)
	//
	return nil
}

// AddClosure validates and adds a closure declaration, type-checking its
// body against the operation signature tables.
func (p *Program) AddClosure(closure Closure) error {
	if err := p.checkName(closure.Name); err != nil {
		return err
	}
	//
	var (
		inputs  []console.RegisterType
		outputs []console.RegisterType
	)
	//
	for _, in := range closure.Inputs {
		inputs = append(inputs, in.Type)
	}
	//
	for _, out := range closure.Outputs {
		outputs = append(outputs, out.Type)
	}
	//
	if err := p.checkBody(closure.Name, inputs, closureInputRegisters(closure.Inputs),
		closure.Instructions, closureOutputOperands(closure.Outputs), outputs); err != nil {
		return err
	}
	//
	p.closures[closure.Name] = &closure
	p.insert(closure.Name, closureDecl)
	//
	return nil
}

// AddFunction validates and adds a function declaration.
func (p *Program) AddFunction(fn Function) error {
	if err := p.checkName(fn.Name); err != nil {
		return err
	}
	//
	var (
		inputs    []console.RegisterType
		registers []console.Register
		outputs   []console.RegisterType
		operands  []console.Operand
	)
	//
	for _, in := range fn.Inputs {
		inputs = append(inputs, in.Type.Type)
		registers = append(registers, in.Register)
	}
	//
	for _, out := range fn.Outputs {
		outputs = append(outputs, out.Type.Type)
		operands = append(operands, out.Operand)
	}
	//
	if err := p.checkBody(fn.Name, inputs, registers, fn.Instructions, operands, outputs); err != nil {
		return err
	}
	//
	p.functions[fn.Name] = &fn
	p.insert(fn.Name, functionDecl)
	//
	return nil
}

func (p *Program) insert(name console.Identifier, kind declKind) {
	p.order = append(p.order, name)
	p.kinds[name] = kind
}

func closureInputRegisters(inputs []ClosureInput) []console.Register {
	var registers []console.Register
	//
	for _, in := range inputs {
		registers = append(registers, in.Register)
	}
	//
	return registers
}

func closureOutputOperands(outputs []ClosureOutput) []console.Operand {
	var operands []console.Operand
	//
	for _, out := range outputs {
		operands = append(operands, out.Operand)
	}
	//
	return operands
}

// ============================================================================
// Validation
// ============================================================================

func isKeyword(name string) bool {
	for _, kw := range keywords {
		if name == kw {
			return true
		}
	}
	//
	return false
}

func isOpcodeRoot(name string) bool {
	for _, opcode := range op.Opcodes() {
		root, _, _ := strings.Cut(opcode, ".")
		//
		if name == root {
			return true
		}
	}
	//
	return false
}

// checkName enforces the namespace rules common to every declaration.
func (p *Program) checkName(name console.Identifier) error {
	if _, taken := p.kinds[name]; taken {
		return &StructuralError{fmt.Sprintf("'%s' is already declared", name)}
	}
	//
	if isKeyword(string(name)) {
		return &StructuralError{fmt.Sprintf("'%s' is a reserved keyword", name)}
	}
	//
	if isOpcodeRoot(string(name)) {
		return &StructuralError{fmt.Sprintf("'%s' collides with an opcode", name)}
	}
	//
	return nil
}

// checkPlaintextType requires any named interface to be declared already.
func (p *Program) checkPlaintextType(t console.PlaintextType) error {
	if t.IsLiteral() {
		return nil
	}
	//
	if _, ok := p.interfaces[t.Interface]; !ok {
		return &StructuralError{fmt.Sprintf("undefined interface '%s'", t.Interface)}
	}
	//
	return nil
}

// checkRegisterType requires any named interface or record to be declared
// already.
func (p *Program) checkRegisterType(t console.RegisterType) error {
	if t.IsRecord() {
		if _, ok := p.records[t.Record]; !ok {
			return &StructuralError{fmt.Sprintf("undefined record '%s'", t.Record)}
		}
		//
		return nil
	}
	//
	return p.checkPlaintextType(t.Plaintext)
}

// checkBody statically checks a closure or function body: input and output
// bounds, monotonic register allocation, operand initialization and the
// operation signature tables.
func (p *Program) checkBody(name console.Identifier, inputs []console.RegisterType,
	registers []console.Register, instructions []Instruction,
	outputs []console.Operand, outputTypes []console.RegisterType) error {
	//
	switch {
	case len(inputs) == 0:
		return &StructuralError{fmt.Sprintf("'%s' has no inputs", name)}
	case uint(len(inputs)) > p.config.MaxInputs:
		return &StructuralError{fmt.Sprintf("'%s' exceeds %d inputs", name, p.config.MaxInputs)}
	case len(instructions) == 0:
		return &StructuralError{fmt.Sprintf("'%s' has no instructions", name)}
	case uint(len(outputs)) > p.config.MaxOutputs:
		return &StructuralError{fmt.Sprintf("'%s' exceeds %d outputs", name, p.config.MaxOutputs)}
	}
	// Input registers allocate r0..rn in order.
	table := newRegisterTable(p)
	//
	for i, r := range registers {
		if r.IsMember() || r.Locator != uint64(i) {
			return &StructuralError{fmt.Sprintf("'%s' input %d must be register r%d", name, i, i)}
		}
		//
		if err := p.checkRegisterType(inputs[i]); err != nil {
			return err
		}
		//
		table.allocate(inputs[i])
	}
	//
	for i := range instructions {
		if err := p.checkInstruction(&instructions[i], table); err != nil {
			return err
		}
	}
	// Outputs load initialized registers of the declared types.
	for i, operand := range outputs {
		t, err := table.operandType(operand)
		if err != nil {
			return err
		}
		//
		if err := p.checkRegisterType(outputTypes[i]); err != nil {
			return err
		}
		//
		if t != outputTypes[i] {
			return &TypeError{fmt.Sprintf("output %d of '%s' is %s, not %s", i, name, t, outputTypes[i])}
		}
	}
	//
	return nil
}

// checkInstruction resolves operand types, dispatches them against the
// opcode's signature table (or callee/cast structure) and allocates the
// destination registers.
func (p *Program) checkInstruction(insn *Instruction, table *registerTable) error {
	var types []console.RegisterType
	//
	for i := range insn.Operands {
		t, err := table.operandType(insn.Operands[i])
		if err != nil {
			return err
		}
		//
		types = append(types, t)
	}
	//
	switch insn.Opcode {
	case "call":
		return p.checkCall(insn, types, table)
	case "cast":
		return p.checkCast(insn, types, table)
	}
	//
	operation, ok := op.Lookup(insn.Opcode)
	if !ok {
		return &TypeError{fmt.Sprintf("unknown opcode '%s'", insn.Opcode)}
	}
	// Registry operations act on literals only.
	var literals []console.LiteralType
	//
	for _, t := range types {
		if t.IsRecord() || !t.Plaintext.IsLiteral() {
			return &TypeError{fmt.Sprintf("opcode '%s' is not defined on %s", insn.Opcode, t)}
		}
		//
		literals = append(literals, t.Plaintext.Literal)
	}
	//
	sig, err := operation.SignatureFor(literals)
	if err != nil {
		return &TypeError{err.Error()}
	}
	//
	if len(insn.Destinations) != 1 {
		return &StructuralError{fmt.Sprintf("opcode '%s' writes exactly one register", insn.Opcode)}
	}
	//
	out := console.NewPlaintextRegisterType(console.NewLiteralPlaintextType(sig.Output))
	//
	return table.store(insn.Destinations[0], out)
}

func (p *Program) checkCall(insn *Instruction, types []console.RegisterType, table *registerTable) error {
	var (
		inputs  []console.RegisterType
		outputs []console.RegisterType
	)
	// Callees resolve against declarations made strictly earlier.
	if closure, ok := p.closures[insn.Callee]; ok {
		for _, in := range closure.Inputs {
			inputs = append(inputs, in.Type)
		}
		//
		for _, out := range closure.Outputs {
			outputs = append(outputs, out.Type)
		}
	} else if fn, ok := p.functions[insn.Callee]; ok {
		for _, in := range fn.Inputs {
			inputs = append(inputs, in.Type.Type)
		}
		//
		for _, out := range fn.Outputs {
			outputs = append(outputs, out.Type.Type)
		}
	} else {
		return &StructuralError{fmt.Sprintf("call target '%s' is not defined", insn.Callee)}
	}
	//
	if len(types) != len(inputs) {
		return &TypeError{fmt.Sprintf("'%s' expects %d operands, found %d", insn.Callee, len(inputs), len(types))}
	}
	//
	for i, t := range types {
		if t != inputs[i] {
			return &TypeError{fmt.Sprintf("operand %d of call '%s' is %s, not %s", i, insn.Callee, t, inputs[i])}
		}
	}
	//
	if len(insn.Destinations) != len(outputs) {
		return &TypeError{fmt.Sprintf("'%s' yields %d outputs, found %d destinations", insn.Callee, len(outputs), len(insn.Destinations))}
	}
	//
	for i, dest := range insn.Destinations {
		if err := table.store(dest, outputs[i]); err != nil {
			return err
		}
	}
	//
	return nil
}

func (p *Program) checkCast(insn *Instruction, types []console.RegisterType, table *registerTable) error {
	if insn.Cast == nil {
		return &StructuralError{"cast instruction names no destination type"}
	}
	//
	if len(insn.Destinations) != 1 {
		return &StructuralError{"cast writes exactly one register"}
	}
	//
	target := *insn.Cast
	//
	if err := p.checkRegisterType(target); err != nil {
		return err
	}
	//
	switch {
	case target.IsRecord():
		rt := p.records[target.Record]
		//
		if len(types) != len(rt.Entries()) {
			return &TypeError{fmt.Sprintf("record '%s' holds %d entries, found %d operands", rt.Name(), len(rt.Entries()), len(types))}
		}
		//
		for i, t := range types {
			entry := rt.Entries()[i]
			expected := console.NewPlaintextRegisterType(entry.Type.Plaintext)
			//
			if t != expected {
				return &TypeError{fmt.Sprintf("entry '%s' of record '%s' is %s, not %s", entry.Name, rt.Name(), expected, t)}
			}
		}
	case !target.Plaintext.IsLiteral():
		itf := p.interfaces[target.Plaintext.Interface]
		//
		if len(types) != len(itf.Members()) {
			return &TypeError{fmt.Sprintf("interface '%s' holds %d members, found %d operands", itf.Name(), len(itf.Members()), len(types))}
		}
		//
		for i, t := range types {
			member := itf.Members()[i]
			expected := console.NewPlaintextRegisterType(member.Type)
			//
			if t != expected {
				return &TypeError{fmt.Sprintf("member '%s' of interface '%s' is %s, not %s", member.Name, itf.Name(), expected, t)}
			}
		}
	default:
		// Literal casts narrow or widen a single literal at run time.
		if len(types) != 1 {
			return &TypeError{fmt.Sprintf("cast to %s takes one operand, found %d", target, len(types))}
		}
		//
		if types[0].IsRecord() || !types[0].Plaintext.IsLiteral() {
			return &TypeError{fmt.Sprintf("cannot cast %s to %s", types[0], target)}
		}
	}
	//
	return table.store(insn.Destinations[0], target)
}

// ============================================================================
// Register table
// ============================================================================

// registerTable tracks the declared type of every initialized register
// while a body is checked.  Registers allocate monotonically; reading an
// unallocated register or re-storing an allocated one is an error.
type registerTable struct {
	program *Program
	types   []console.RegisterType
}

func newRegisterTable(program *Program) *registerTable {
	return &registerTable{program: program}
}

func (p *registerTable) allocate(t console.RegisterType) {
	p.types = append(p.types, t)
}

func (p *registerTable) store(r console.Register, t console.RegisterType) error {
	if r.IsMember() {
		return &StructuralError{fmt.Sprintf("cannot write to register member %s", r.String())}
	}
	//
	if r.Locator != uint64(len(p.types)) {
		return &StructuralError{fmt.Sprintf("destination %s breaks monotonic allocation (next is r%d)", r.String(), len(p.types))}
	}
	//
	p.types = append(p.types, t)
	//
	return nil
}

// operandType resolves the declared type of an operand, projecting register
// member paths through interface and record declarations.
func (p *registerTable) operandType(operand console.Operand) (console.RegisterType, error) {
	if !operand.IsRegister() {
		literal := operand.Literal()
		return console.NewPlaintextRegisterType(console.NewLiteralPlaintextType(literal.Type())), nil
	}
	//
	r := operand.Register()
	//
	if r.Locator >= uint64(len(p.types)) {
		return console.RegisterType{}, &StructuralError{fmt.Sprintf("register r%d is not initialized", r.Locator)}
	}
	//
	t := p.types[r.Locator]
	//
	for _, name := range r.Path {
		pt, err := p.project(t, name)
		if err != nil {
			return console.RegisterType{}, err
		}
		//
		t = pt
	}
	//
	return t, nil
}

// project resolves one member access against a record or interface type.
func (p *registerTable) project(t console.RegisterType, name console.Identifier) (console.RegisterType, error) {
	if t.IsRecord() {
		rt, ok := p.program.records[t.Record]
		if !ok {
			return console.RegisterType{}, &StructuralError{fmt.Sprintf("undefined record '%s'", t.Record)}
		}
		//
		if et, ok := rt.Entry(name); ok {
			return console.NewPlaintextRegisterType(et.Plaintext), nil
		}
		//
		return console.RegisterType{}, &TypeError{fmt.Sprintf("record '%s' has no entry '%s'", t.Record, name)}
	}
	//
	if t.Plaintext.IsLiteral() {
		return console.RegisterType{}, &TypeError{fmt.Sprintf("cannot project '%s' out of %s", name, t)}
	}
	//
	itf, ok := p.program.interfaces[t.Plaintext.Interface]
	if !ok {
		return console.RegisterType{}, &StructuralError{fmt.Sprintf("undefined interface '%s'", t.Plaintext.Interface)}
	}
	//
	if mt, ok := itf.Member(name); ok {
		return console.NewPlaintextRegisterType(mt), nil
	}
	//
	return console.RegisterType{}, &TypeError{fmt.Sprintf("interface '%s' has no member '%s'", itf.Name(), name)}
}

// ============================================================================
// Errors
// ============================================================================

// StructuralError rejects a definition that breaks a namespace or shape
// rule: duplicate names, reserved keywords, undefined references, bound
// violations.
type StructuralError struct {
	msg string
}

// Error implements the error interface.
func (p *StructuralError) Error() string {
	return p.msg
}

// TypeError rejects a definition whose operand or output types fall outside
// an operation's signature table.
type TypeError struct {
	msg string
}

// Error implements the error interface.
func (p *TypeError) Error() string {
	return p.msg
}
