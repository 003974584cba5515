/*
File    : runac/codegen/context.go
Package : codegen
*/

package codegen

import (
	"fmt"

	"github.com/runalang/runac/parser"
	"github.com/runalang/runac/types"
)

const wordSize = 8

// argRegs is the System V AMD64 register-argument order (§4.4).
var argRegs = [6]string{"%rdi", "%rsi", "%rdx", "%rcx", "%r8", "%r9"}

// localVar describes one name visible inside the function currently being
// generated: where it lives and what it's statically typed as.
type localVar struct {
	offset    int // signed offset used verbatim in an `offset(%rbp)` operand
	typeName  string
	sizeBytes int
	isParam   bool
	isArray   bool
}

// funcCtx is the per-function generation state (§5: "Code generator's ...
// variable table, loop label stack, current function stack offset ...
// mutated only by the generator"). A fresh one is built for every Function.
type funcCtx struct {
	locals  map[string]localVar
	nextNeg int // next free (most positive) negative offset for allocation
	loops   []loopLabels
}

// loopLabels is one entry of the loop-context stack; Break/Continue resolve
// against its top (§4.4 Control flow).
type loopLabels struct {
	loopL string
	endL  string
}

func newFuncCtx() *funcCtx {
	return &funcCtx{locals: make(map[string]localVar), nextNeg: -wordSize}
}

// allocLocal reserves a contiguous, zero-padded-free block of size bytes
// (rounded up to a whole number of words) and registers name against its
// base offset — the lowest (most negative) address of the block, matching
// the no-padding ascending-offset convention struct/variant fields use
// (types.layoutStruct/layoutVariant), so `base+field.Offset` always lands
// inside the block.
func (fc *funcCtx) allocLocal(name, typeName string, size int) int {
	if size < wordSize {
		size = wordSize
	}
	slots := (size + wordSize - 1) / wordSize
	base := fc.nextNeg - (slots-1)*wordSize
	fc.locals[name] = localVar{offset: base, typeName: typeName, sizeBytes: slots * wordSize}
	fc.nextNeg = base - wordSize
	return base
}

// bindParam registers a parameter's name against an already-decided offset
// (a fresh local slot for the first six, a positive caller-stack offset for
// the rest — see genFunction).
func (fc *funcCtx) bindParam(name, typeName string, offset int, isArray bool) {
	fc.locals[name] = localVar{offset: offset, typeName: typeName, sizeBytes: wordSize, isParam: true, isArray: isArray}
}

func (fc *funcCtx) lookup(name string) (localVar, bool) {
	lv, ok := fc.locals[name]
	return lv, ok
}

func (fc *funcCtx) pushLoop(loopL, endL string) { fc.loops = append(fc.loops, loopLabels{loopL, endL}) }
func (fc *funcCtx) popLoop()                    { fc.loops = fc.loops[:len(fc.loops)-1] }
func (fc *funcCtx) currentLoop() (loopLabels, bool) {
	if len(fc.loops) == 0 {
		return loopLabels{}, false
	}
	return fc.loops[len(fc.loops)-1], true
}

// Generator holds everything the §4.4 algorithm mutates across a single
// Generate invocation: the string pool, the monotonic label counter, the
// function/global indexes used for name resolution, and (while a function
// body is being walked) that function's funcCtx.
type Generator struct {
	prog  *parser.Program
	table *types.Table
	opts  Options

	pool      *stringPool
	labelSeq  int
	functions map[string]*parser.Function
	globals   map[string]*parser.GlobalVariable

	fc *funcCtx

	warnings []string
	errors   []string
}

func newGenerator(prog *parser.Program, table *types.Table, opts Options) *Generator {
	g := &Generator{
		prog:      prog,
		table:     table,
		opts:      opts,
		pool:      newStringPool(),
		functions: make(map[string]*parser.Function),
		globals:   make(map[string]*parser.GlobalVariable),
	}
	for _, fn := range prog.Functions {
		g.functions[fn.Name] = fn
	}
	for _, gv := range prog.Globals {
		g.globals[gv.Name] = gv
	}
	return g
}

// nextLabel returns a fresh numeric suffix, unique for the lifetime of this
// Generator (§4.4 "Label counter is monotonic within a single generate
// invocation").
func (g *Generator) nextLabel() int {
	n := g.labelSeq
	g.labelSeq++
	return n
}

func (g *Generator) warnf(format string, args ...any) {
	g.warnings = append(g.warnings, fmt.Sprintf(format, args...))
}

func (g *Generator) errorf(format string, args ...any) {
	g.errors = append(g.errors, fmt.Sprintf(format, args...))
}
