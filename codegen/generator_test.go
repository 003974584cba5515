/*
File    : runac/codegen/generator_test.go
Package : codegen
*/

package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runalang/runac/parser"
	"github.com/runalang/runac/types"
)

// compile runs source through the parser and type table and returns the
// generated assembly text, failing the test on any parse or codegen error.
// §8.2's scenarios are asserted structurally (section presence, register
// usage, label shapes) rather than by assembling and running the output,
// since this environment never invokes an assembler or linker.
func compile(t *testing.T, src string, opts Options) string {
	t.Helper()
	p := parser.NewParser(src)
	prog := p.ParseProgram()
	require.Empty(t, p.Errors, "parse errors: %v", p.Errors)

	table, err := types.NewTable(prog.Types)
	require.NoError(t, err)

	out, _, err := Generate(prog, table, opts)
	require.NoError(t, err)
	return out
}

func TestSectionOrdering(t *testing.T) {
	src := `
Process called "main" returns Integer:
  Print "hi"
  Return 0
End Process
`
	out := compile(t, src, Defaults())

	rodata := strings.Index(out, ".section .rodata")
	data := strings.Index(out, ".section .data")
	bss := strings.Index(out, ".section .bss")
	text := strings.Index(out, ".text")
	note := strings.Index(out, ".section .note.GNU-stack")

	require.True(t, rodata >= 0 && data > rodata && bss > data && text > bss && note > text)
	assert.Contains(t, out, "print_string:")
	assert.Contains(t, out, "print_integer:")
}

func TestS1ArithmeticFoldLeftAssociative(t *testing.T) {
	src := `
Process called "main" returns Integer:
  Let x be 2 plus 3 multiplied by 4
  Return x
End Process
`
	out := compile(t, src, Defaults())
	// left-fold means the multiply is the outermost (last) combining
	// operation — its imulq must appear after the add's addq.
	addIdx := strings.Index(out, "addq %rbx, %rax")
	mulIdx := strings.Index(out, "imulq %rbx, %rax")
	require.True(t, addIdx >= 0 && mulIdx > addIdx)
}

func TestS2StringPrintDispatchesToPrintString(t *testing.T) {
	src := `
Process called "main" returns Integer:
  Print "Hello, world!"
  Return 0
End Process
`
	out := compile(t, src, Defaults())
	assert.Contains(t, out, `.string "Hello, world!"`)
	assert.Contains(t, out, "call print_string")
	assert.NotContains(t, out, "call print_integer")
}

func TestS3FactorialRecursion(t *testing.T) {
	src := `
Process called "fact" takes n as Integer returns Integer:
  If n is less than 2:
    Return 1
  End If
  Return n multiplied by fact(n minus 1)
End Process
Process called "main" returns Integer:
  Return fact(5)
End Process
`
	out := compile(t, src, Defaults())
	assert.Contains(t, out, "call fact\n")
	assert.Contains(t, out, "fact:\n")
	assert.Contains(t, out, "main:\n")
}

func TestS4StructFieldLayout(t *testing.T) {
	src := `
Type called "Point":
  x as Integer,
  y as Integer
End Type
Process called "main" returns Integer:
  Let p be Point
  Set p.x to 7
  Set p.y to 35
  Return p.x plus p.y
End Process
`
	out := compile(t, src, Defaults())
	// x at offset 0, y at offset 8 (§3.4 no-padding layout).
	assert.Contains(t, out, "addq $0, %rbx\n")
	assert.Contains(t, out, "addq $8, %rbx\n")
	assert.Contains(t, out, "movq 0(%rax), %rax\n")
	assert.Contains(t, out, "movq 8(%rax), %rax\n")
}

func TestS5VariantMatch(t *testing.T) {
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
Process called "main" returns Integer:
  Let c be Circle with radius as 4
  Return area(c)
End Process
`
	out := compile(t, src, Defaults())
	assert.Contains(t, out, "call allocate@PLT")
	assert.Contains(t, out, "movq $0, (%rax)") // Circle's tag, declared first
	assert.Contains(t, out, ".match_end_")
	assert.Contains(t, out, ".match_case_")
}

func TestS6WhileBreakContinueLabels(t *testing.T) {
	src := `
Process called "main" returns Integer:
  Let i be 0
  Let sum be 0
  While i is less than 10:
    Set i to i plus 1
    If i is equal to 5:
      Continue
    End If
    If i is greater than 8:
      Break
    End If
    Set sum to sum plus i
  End While
  Return sum
End Process
`
	out := compile(t, src, Defaults())
	assert.Contains(t, out, "_loop:\n")
	assert.True(t, strings.Count(out, "jmp") >= 2)
}

func TestDivisionByZeroGuard(t *testing.T) {
	src := `
Process called "main" takes n as Integer returns Integer:
  Return 10 divided by n
End Process
`
	out := compile(t, src, Defaults())
	assert.Contains(t, out, ".Ldiv_by_zero_")
	assert.Contains(t, out, ".Ldiv_done_")
	assert.Contains(t, out, "cqto")
	assert.Contains(t, out, "idivq %rcx")
}

func TestModuloByZeroGuard(t *testing.T) {
	src := `
Process called "main" takes n as Integer returns Integer:
  Return 10 modulo by n
End Process
`
	out := compile(t, src, Defaults())
	assert.Contains(t, out, ".Lmod_by_zero_")
	assert.Contains(t, out, ".Lmod_done_")
}

func TestStringPoolDeduplicates(t *testing.T) {
	src := `
Process called "main" returns Integer:
  Print "same"
  Print "same"
  Return 0
End Process
`
	out := compile(t, src, Defaults())
	assert.Equal(t, 1, strings.Count(out, ".STR0:"))
	assert.NotContains(t, out, ".STR1:")
}

func TestSyntheticMainWhenAbsent(t *testing.T) {
	src := `
Process called "compute" returns Integer:
  Return 42
End Process
`
	out := compile(t, src, Defaults())
	assert.Contains(t, out, "main:\n")
	assert.Contains(t, out, "call compute\n")
	assert.Contains(t, out, "call exit_with_code@PLT")
}

func TestBuiltinArityMismatchIsCodegenError(t *testing.T) {
	src := `
Process called "main" returns Integer:
  Return string_length()
End Process
`
	p := parser.NewParser(src)
	prog := p.ParseProgram()
	require.Empty(t, p.Errors)
	table, err := types.NewTable(prog.Types)
	require.NoError(t, err)

	_, _, err = Generate(prog, table, Defaults())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[CODEGEN ERROR]")
}

func TestLegacyFieldOffsetsGatedByOption(t *testing.T) {
	src := `
Process called "f" takes n as Integer returns Integer:
  Return n.value
End Process
`
	p := parser.NewParser(src)
	prog := p.ParseProgram()
	require.Empty(t, p.Errors)
	table, err := types.NewTable(prog.Types)
	require.NoError(t, err)

	_, _, err = Generate(prog, table, Defaults())
	assert.Error(t, err, "value is not a known field without LegacyOffsets")

	legacy := Defaults()
	legacy.LegacyOffsets = true
	out, _, err := Generate(prog, table, legacy)
	require.NoError(t, err)
	assert.Contains(t, out, "movq 8(%rax), %rax")
}

func TestMoreThanSixParamsWarns(t *testing.T) {
	src := `
Process called "many" takes a as Integer, b as Integer, c as Integer, d as Integer, e as Integer, f as Integer, g as Integer returns Integer:
  Return g
End Process
Process called "main" returns Integer:
  Return many(1, 2, 3, 4, 5, 6, 7)
End Process
`
	p := parser.NewParser(src)
	prog := p.ParseProgram()
	require.Empty(t, p.Errors)
	table, err := types.NewTable(prog.Types)
	require.NoError(t, err)

	out, warnings, err := Generate(prog, table, Defaults())
	require.NoError(t, err)
	assert.NotEmpty(t, warnings)
	assert.Contains(t, out, "16(%rbp)")
}
