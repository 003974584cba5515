/*
File    : runac/compiler/compiler_test.go
Package : compiler
*/

package compiler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runalang/runac/codegen"
)

// These mirror the six end-to-end scenarios verbatim. Since this
// environment never invokes an assembler or linker, each asserts on the
// generated assembly's structure — section presence, label shapes, register
// usage for the calling convention — rather than the expected exit code or
// stdout an assembled-and-run binary would produce.

func TestScenarioS1ArithmeticFold(t *testing.T) {
	src := `
Process called "main" returns Integer:
  Let x be 2 plus 3 multiplied by 4
  Return x
End Process
`
	out, warnings, err := New(src, codegen.Defaults()).Compile()
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Contains(t, out, "addq %rbx, %rax")
	assert.Contains(t, out, "imulq %rbx, %rax")
	assert.Contains(t, out, "main:\n")
}

func TestScenarioS2StringPrintRoundTrip(t *testing.T) {
	src := `
Process called "main" returns Integer:
  Print "Hello, world!"
  Return 0
End Process
`
	out, _, err := New(src, codegen.Defaults()).Compile()
	require.NoError(t, err)
	assert.Contains(t, out, `.string "Hello, world!"`)
	assert.Contains(t, out, "call print_string")
	assert.Contains(t, out, "print_string:\n")
}

func TestScenarioS3FactorialRecursion(t *testing.T) {
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
	out, _, err := New(src, codegen.Defaults()).Compile()
	require.NoError(t, err)
	assert.Contains(t, out, "fact:\n")
	assert.Contains(t, out, "call fact\n")
	assert.True(t, strings.Count(out, ".L") >= 2, "If lowering should emit at least an else/end label pair")
}

func TestScenarioS4StructFieldAccess(t *testing.T) {
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
	out, _, err := New(src, codegen.Defaults()).Compile()
	require.NoError(t, err)
	assert.Contains(t, out, "addq $0, %rbx")
	assert.Contains(t, out, "addq $8, %rbx")
}

func TestScenarioS5VariantAndMatch(t *testing.T) {
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
	out, _, err := New(src, codegen.Defaults()).Compile()
	require.NoError(t, err)
	assert.Contains(t, out, "call allocate@PLT")
	assert.Contains(t, out, ".match_case_")
	assert.Contains(t, out, ".match_end_")
}

func TestScenarioS6WhileBreakContinue(t *testing.T) {
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
	out, _, err := New(src, codegen.Defaults()).Compile()
	require.NoError(t, err)
	assert.Contains(t, out, "_loop:\n")
	assert.True(t, strings.Count(out, "jmp") >= 4, "loop + two If's + Break/Continue each need a jmp")
}

func TestParseErrorStopsBeforeCodegen(t *testing.T) {
	src := `
Process called "broken" returns Integer
  Return 1
End Process
`
	_, _, err := New(src, codegen.Defaults()).Compile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[PARSER ERROR]")
}

func TestUndefinedNameIsCodegenError(t *testing.T) {
	src := `
Process called "main" returns Integer:
  Return ghost
End Process
`
	_, _, err := New(src, codegen.Defaults()).Compile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[CODEGEN ERROR]")
}

func TestProgramAccessorReturnsParsedTree(t *testing.T) {
	src := `
Process called "main" returns Integer:
  Return 0
End Process
`
	c := New(src, codegen.Defaults())
	_, _, err := c.Compile()
	require.NoError(t, err)
	require.NotNil(t, c.Program())
	assert.Len(t, c.Program().Functions, 1)
}
