/*
File    : runac/parser/parser_test.go
Package : parser
*/

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSimpleFunction(t *testing.T) {
	src := `
Process called "add" takes a as Integer, b as Integer returns Integer:
  Return a plus b
End Process
`
	p := NewParser(src)
	prog := p.ParseProgram()
	assert.Empty(t, p.Errors)
	assert.Len(t, prog.Functions, 1)

	fn := prog.Functions[0]
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, "Integer", fn.ReturnType)
	assert.Len(t, fn.Params, 2)
	assert.Equal(t, Parameter{Name: "a", TypeName: "Integer"}, fn.Params[0])

	ret, ok := fn.Body[0].(*Return)
	assert.True(t, ok)
	bin, ok := ret.Expr.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, OpPlus, bin.Op)
}

func TestFlatLeftFoldNoPrecedence(t *testing.T) {
	// 2 plus 3 multiplied by 4 must parse as ((2 plus 3) multiplied by 4),
	// not (2 plus (3 multiplied by 4)) — see §4.2.
	src := `
Process called "f" returns Integer:
  Return 2 plus 3 multiplied by 4
End Process
`
	p := NewParser(src)
	prog := p.ParseProgram()
	assert.Empty(t, p.Errors)

	ret := prog.Functions[0].Body[0].(*Return)
	outer, ok := ret.Expr.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, OpMul, outer.Op)

	inner, ok := outer.Left.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, OpPlus, inner.Op)

	innerLeft := inner.Left.(*Integer)
	assert.EqualValues(t, 2, innerLeft.Value)
}

func TestComparisonWords(t *testing.T) {
	cases := []struct {
		src string
		op  CompareOp
	}{
		{"n is equal to 2", CmpEq},
		{"n is not equal to 2", CmpNe},
		{"n is less than 2", CmpLt},
		{"n is less than or equal to 2", CmpLe},
		{"n is greater than 2", CmpGt},
		{"n is greater than or equal to 2", CmpGe},
	}
	for _, c := range cases {
		p := NewParser(c.src)
		expr := p.parseComparison()
		assert.Empty(t, p.Errors, c.src)
		cmp, ok := expr.(*Comparison)
		assert.True(t, ok, c.src)
		assert.Equal(t, c.op, cmp.Op, c.src)
	}
}

func TestIfOtherwiseIfChainLowersToNestedIf(t *testing.T) {
	src := `
Process called "classify" takes n as Integer returns Integer:
  If n is less than 0:
    Return 0
  Otherwise If n is equal to 0:
    Return 1
  Otherwise:
    Return 2
  End If
End Process
`
	p := NewParser(src)
	prog := p.ParseProgram()
	assert.Empty(t, p.Errors)

	outer := prog.Functions[0].Body[0].(*If)
	assert.Len(t, outer.Else, 1)

	nested, ok := outer.Else[0].(*If)
	assert.True(t, ok)
	assert.Len(t, nested.Then, 1)
	assert.Len(t, nested.Else, 1)
}

func TestWhileBreakContinue(t *testing.T) {
	src := `
Process called "loop" returns Integer:
  Let i be 0
  While i is less than 10:
    If i is equal to 5:
      Break
    End If
    Set i to i plus 1
    Continue
  End While
  Return i
End Process
`
	p := NewParser(src)
	prog := p.ParseProgram()
	assert.Empty(t, p.Errors)

	loop := prog.Functions[0].Body[1].(*While)
	assert.IsType(t, &If{}, loop.Body[0])
	assert.IsType(t, &Set{}, loop.Body[1])
	assert.IsType(t, &Continue{}, loop.Body[2])
}

func TestStructTypeDefinition(t *testing.T) {
	src := `
Type called "Point":
  x as Integer,
  y as Integer
End Type
`
	p := NewParser(src)
	prog := p.ParseProgram()
	assert.Empty(t, p.Errors)
	assert.Len(t, prog.Types, 1)

	def := prog.Types[0]
	assert.Equal(t, "Point", def.Name)
	assert.Equal(t, KindStruct, def.Kind)
	assert.Len(t, def.StructFields, 2)
	assert.Equal(t, "x", def.StructFields[0].Name)
}

func TestVariantTypeDefinitionAndConstructor(t *testing.T) {
	src := `
Type Shape is
  | Circle with radius as Integer
  | Square with side as Integer
Process called "make" returns Shape:
  Let s be Circle with radius as 5
  Return s
End Process
`
	p := NewParser(src)
	prog := p.ParseProgram()
	assert.Empty(t, p.Errors)

	def := prog.Types[0]
	assert.Equal(t, KindVariant, def.Kind)
	assert.Len(t, def.Variants, 2)
	assert.Equal(t, 0, def.Variants[0].Tag)
	assert.Equal(t, 1, def.Variants[1].Tag)

	let := prog.Functions[0].Body[0].(*Let)
	ctor, ok := let.Expr.(*VariantConstructor)
	assert.True(t, ok)
	assert.Equal(t, "Shape", ctor.TypeName)
	assert.Equal(t, "Circle", ctor.VariantName)
	assert.Equal(t, "radius", ctor.Fields[0].Name)
}

func TestMatchStatement(t *testing.T) {
	src := `
Type Shape is
  | Circle with radius as Integer
  | Square with side as Integer
Process called "area" takes s as Shape returns Integer:
  Match s:
  When Circle with radius as r:
    Return r multiplied by r multiplied by 3
  End When
  When Square with side as a:
    Return a multiplied by a
  End When
  End Match
End Process
`
	p := NewParser(src)
	prog := p.ParseProgram()
	assert.Empty(t, p.Errors)

	match := prog.Functions[0].Body[0].(*Match)
	assert.Len(t, match.Cases, 2)
	assert.Equal(t, "Circle", match.Cases[0].VariantName)
	assert.Equal(t, "radius", match.Cases[0].BoundFields[0].Name)
}

func TestFieldAccessChained(t *testing.T) {
	src := `
Process called "sum" takes p as Point returns Integer:
  Return p.x plus p.y
End Process
`
	p := NewParser(src)
	prog := p.ParseProgram()
	assert.Empty(t, p.Errors)

	ret := prog.Functions[0].Body[0].(*Return)
	bin := ret.Expr.(*Binary)
	left := bin.Left.(*FieldAccess)
	assert.Equal(t, "x", left.Field)
}

func TestArrayIndexAndFunctionCall(t *testing.T) {
	src := `
Process called "get" takes xs as Integer returns Integer:
  Return xs[0] plus helper(1, 2)
End Process
`
	p := NewParser(src)
	prog := p.ParseProgram()
	assert.Empty(t, p.Errors)

	ret := prog.Functions[0].Body[0].(*Return)
	bin := ret.Expr.(*Binary)
	_, ok := bin.Left.(*ArrayIndex)
	assert.True(t, ok)
	call, ok := bin.Right.(*FunctionCall)
	assert.True(t, ok)
	assert.Equal(t, "helper", call.Name)
	assert.Len(t, call.Args, 2)
}

func TestBuiltinCall(t *testing.T) {
	src := `
Process called "len" takes s as String returns Integer:
  Return string_length(s)
End Process
`
	p := NewParser(src)
	prog := p.ParseProgram()
	assert.Empty(t, p.Errors)

	ret := prog.Functions[0].Body[0].(*Return)
	call, ok := ret.Expr.(*BuiltinCall)
	assert.True(t, ok)
	assert.Equal(t, "string_length", call.Name)
}

func TestInlineAssembly(t *testing.T) {
	src := `
Process called "noop" returns Integer:
  Inline Assembly:
    "nop" Note: does nothing
    "nop" Note: still nothing
  End Assembly
  Return 0
End Process
`
	p := NewParser(src)
	prog := p.ParseProgram()
	assert.Empty(t, p.Errors)

	asm, ok := prog.Functions[0].Body[0].(*InlineAssembly)
	assert.True(t, ok)
	assert.Len(t, asm.Lines, 2)
	assert.Equal(t, "nop", asm.Lines[0].Instruction)
}

func TestGlobalVariable(t *testing.T) {
	src := `Let counter be 0`
	p := NewParser(src)
	prog := p.ParseProgram()
	assert.Empty(t, p.Errors)
	assert.Len(t, prog.Globals, 1)
	assert.Equal(t, "counter", prog.Globals[0].Name)
}

func TestImport(t *testing.T) {
	src := `Import "util.runa" as util`
	p := NewParser(src)
	prog := p.ParseProgram()
	assert.Empty(t, p.Errors)
	assert.Len(t, prog.Imports, 1)
	assert.Equal(t, "util.runa", prog.Imports[0].FileName)
	assert.Equal(t, "util", prog.Imports[0].Alias)
}

func TestTypeNameNeverShadowedByVariable(t *testing.T) {
	src := `
Type called "Point":
  x as Integer
End Type
Process called "f" returns Point:
  Let p be Point
  Return p
End Process
`
	p := NewParser(src)
	prog := p.ParseProgram()
	assert.Empty(t, p.Errors)

	let := prog.Functions[0].Body[0].(*Let)
	_, ok := let.Expr.(*TypeName)
	assert.True(t, ok)
}

func TestUnterminatedStringSurfacesAsLexerError(t *testing.T) {
	src := `
Process called "f" returns Integer:
  Print "unterminated
End Process
`
	p := NewParser(src)
	p.ParseProgram()
	assert.NotEmpty(t, p.Errors)
	assert.Contains(t, p.Errors[0], "[LEXER ERROR]")
	assert.Contains(t, p.Errors[0], "unterminated string literal")
	assert.NotContains(t, p.Errors[0], "[PARSER ERROR]")
}

func TestStrayCharacterSurfacesAsLexerError(t *testing.T) {
	src := `
Process called "f" returns Integer:
  Return 1 @ 2
End Process
`
	p := NewParser(src)
	p.ParseProgram()
	assert.NotEmpty(t, p.Errors)
	assert.Contains(t, p.Errors[0], "[LEXER ERROR]")
	assert.Contains(t, p.Errors[0], "@")
}
