/*
File    : runac/parser/parser.go
Package : parser
*/

package parser

import (
	"fmt"

	"github.com/runalang/runac/diagnostics"
	"github.com/runalang/runac/lexer"
)

// Parser is a recursive-descent parser with one token of lookahead over a
// lexer.Lexer. Each non-terminal in the grammar (§4.2) is a method that
// consumes tokens and returns an owned AST node.
type Parser struct {
	Lex       lexer.Lexer
	CurrToken lexer.Token
	PeekToken lexer.Token

	// variantNames maps a variant-case name to its owning type, built up as
	// Type declarations are parsed. It disambiguates `IDENT with ...` as a
	// VariantConstructor per §4.2's disambiguation rule.
	variantNames map[string]string

	// typeNames records every declared struct/variant type name so a bare
	// identifier that names a type parses as TypeName, never Variable
	// (invariant 1: type names never shadow variables).
	typeNames map[string]bool

	Errors []string
}

// NewParser creates a Parser over src and primes the two-token lookahead.
func NewParser(src string) *Parser {
	par := &Parser{
		Lex:          lexer.NewLexer(src),
		variantNames: make(map[string]string),
		typeNames:    make(map[string]bool),
		Errors:       make([]string, 0),
	}
	par.advance()
	par.advance()
	return par
}

// advance shifts the lookahead window forward by one token.
func (par *Parser) advance() {
	par.CurrToken = par.PeekToken
	par.PeekToken = par.Lex.NextToken()
}

// errorf records a parse error at the current token's position. When the
// current token is itself a lexer-level ERROR token (unterminated string,
// stray character), the failure is surfaced as a [LEXER ERROR] carrying the
// offending character/message the lexer reported, rather than a generic
// "expected X, got ERROR" parser error — per §7's lexer failure semantics,
// which this prefix set is part of the observable contract for.
func (par *Parser) errorf(format string, args ...any) {
	if par.CurrToken.Kind == lexer.ERROR {
		par.Errors = append(par.Errors, fmt.Sprintf("%s %d:%d: %s",
			diagnostics.LexerError, par.CurrToken.Line, par.CurrToken.Column, par.CurrToken.Literal))
		return
	}
	msg := fmt.Sprintf(format, args...)
	par.Errors = append(par.Errors, fmt.Sprintf("%s %d:%d: %s", diagnostics.ParserError, par.CurrToken.Line, par.CurrToken.Column, msg))
}

// eat asserts the current token's kind and advances past it. On mismatch
// it records a fatal parse error and still advances, so the parser can
// keep collecting further errors instead of looping forever.
func (par *Parser) eat(kind lexer.TokenKind) lexer.Token {
	tok := par.CurrToken
	if tok.Kind != kind {
		par.errorf("expected %s, got %s", kind, tok.Kind)
	}
	par.advance()
	return tok
}

// at reports whether the current token has the given kind.
func (par *Parser) at(kind lexer.TokenKind) bool {
	return par.CurrToken.Kind == kind
}

// ParseProgram parses the entire token stream into a Program per the
// program grammar: `(import | type_def | global | function)*`.
func (par *Parser) ParseProgram() *Program {
	prog := &Program{}

	for !par.at(lexer.EOF) {
		switch par.CurrToken.Kind {
		case lexer.IMPORT:
			prog.Imports = append(prog.Imports, par.parseImport())
		case lexer.TYPE:
			prog.Types = append(prog.Types, par.parseTypeDefinition())
		case lexer.PROCESS:
			prog.Functions = append(prog.Functions, par.parseFunction())
		case lexer.LET:
			prog.Globals = append(prog.Globals, par.parseGlobalVariable())
		default:
			par.errorf("unexpected top-level token %s", par.CurrToken.Kind)
			par.advance()
		}
	}

	return prog
}

// parseImport parses `Import STRING as IDENT`.
func (par *Parser) parseImport() *Import {
	par.eat(lexer.IMPORT)
	file := par.eat(lexer.STRING_LITERAL)
	par.eat(lexer.AS)
	alias := par.eat(lexer.IDENTIFIER)
	return &Import{FileName: file.Literal, Alias: alias.Literal}
}

// parseGlobalVariable parses a top-level `Let IDENT be expression`. Its
// Type is left blank here — like a function-local Let, a global's type is
// inferred from its initializer by the generator (§4.3), not the parser.
func (par *Parser) parseGlobalVariable() *GlobalVariable {
	par.eat(lexer.LET)
	name := par.eat(lexer.IDENTIFIER)
	par.eat(lexer.BE)
	expr := par.parseExpression()
	return &GlobalVariable{Name: name.Literal, Init: expr}
}
