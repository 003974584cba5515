/*
File    : runac/parser/parser_controls.go
Package : parser
*/

package parser

import "github.com/runalang/runac/lexer"

// parseInlineAssembly parses an `Inline Assembly:` block. Each instruction
// is a string literal followed by a `Note:` and free-form commentary that
// runs until the next string literal, `End`, `Assembly`, or a constraint
// colon — the note text is never interpreted, only stored verbatim, since
// the generator discards it at emission time (§4.4). Up to three
// colon-separated constraint sections follow the instructions: outputs,
// inputs, clobbers.
func (par *Parser) parseInlineAssembly() *InlineAssembly {
	par.eat(lexer.INLINE)
	par.eat(lexer.ASSEMBLY)
	par.eat(lexer.COLON)

	asm := &InlineAssembly{}

	for par.at(lexer.STRING_LITERAL) {
		instr := par.eat(lexer.STRING_LITERAL)
		line := AssemblyLine{Instruction: instr.Literal}

		if par.at(lexer.NOTE) {
			par.advance()
			par.eat(lexer.COLON)
			line.Note = par.consumeNoteText()
		}
		asm.Lines = append(asm.Lines, line)
	}

	if par.at(lexer.COLON) {
		par.advance()
		asm.Outputs = par.parseConstraintList()
	}
	if par.at(lexer.COLON) {
		par.advance()
		asm.Inputs = par.parseConstraintList()
	}
	if par.at(lexer.COLON) {
		par.advance()
		asm.Clobbers = par.parseConstraintList()
	}

	par.eat(lexer.END)
	par.eat(lexer.ASSEMBLY)
	return asm
}

// consumeNoteText gathers every token's literal text up to (but not
// including) the next string literal, End, Assembly, or constraint colon.
func (par *Parser) consumeNoteText() string {
	text := ""
	for !par.atAny(lexer.STRING_LITERAL, lexer.END, lexer.ASSEMBLY, lexer.COLON, lexer.EOF) {
		if text != "" {
			text += " "
		}
		text += par.CurrToken.Literal
		par.advance()
	}
	return text
}

// parseConstraintList reads a comma-separated list of identifiers or
// string literals up to the next colon, End, or EOF.
func (par *Parser) parseConstraintList() []string {
	var items []string
	for !par.atAny(lexer.COLON, lexer.END, lexer.EOF) {
		items = append(items, par.CurrToken.Literal)
		par.advance()
		if par.at(lexer.COMMA) {
			par.advance()
		}
	}
	return items
}
