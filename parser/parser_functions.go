/*
File    : runac/parser/parser_functions.go
Package : parser
*/

package parser

import "github.com/runalang/runac/lexer"

// parseFunction parses:
//
//	function := 'Process' 'called' STRING
//	            ('takes' param (',' param)*)?
//	            'returns' type_ref ':'
//	            statement* 'End' 'Process'
func (par *Parser) parseFunction() *Function {
	par.eat(lexer.PROCESS)
	par.eat(lexer.CALLED)
	name := par.eat(lexer.STRING_LITERAL)

	fn := &Function{Name: name.Literal}

	if par.at(lexer.TAKES) {
		par.advance()
		fn.Params = append(fn.Params, par.parseParameter())
		for par.at(lexer.COMMA) {
			par.advance()
			fn.Params = append(fn.Params, par.parseParameter())
		}
	}

	par.eat(lexer.RETURNS)
	fn.ReturnType = par.parseTypeRef()
	par.eat(lexer.COLON)

	fn.Body = par.parseStatementsUntil(lexer.END)
	par.eat(lexer.END)
	par.eat(lexer.PROCESS)

	return fn
}

// parseParameter parses `IDENT 'as' type_ref`.
func (par *Parser) parseParameter() Parameter {
	name := par.eat(lexer.IDENTIFIER)
	par.eat(lexer.AS)
	typeName := par.parseTypeRef()
	return Parameter{Name: name.Literal, TypeName: typeName}
}

// parseTypeRef parses:
//
//	type_ref := 'Integer' | 'String' | 'Character' | IDENT
//	          | 'Pointer' 'of' type_ref | 'array' 'of' type_ref
//
// Pointer/array compound type names are recorded as a single string
// ("Pointer of Point", "array of Integer") rather than a nested node:
// every one of them is exactly one machine word wide at runtime (a
// pointer, or an array base address after the decay in §4.4), so the
// types table's word-size fallback already gives them the right size
// without a dedicated TypeDefinition per use site.
func (par *Parser) parseTypeRef() string {
	switch par.CurrToken.Kind {
	case lexer.INTEGER_TYPE, lexer.STRING_TYPE, lexer.CHARACTER_TYPE:
		tok := par.CurrToken
		par.advance()
		return tok.Literal
	case lexer.POINTER:
		par.advance()
		par.eat(lexer.OF)
		return "Pointer of " + par.parseTypeRef()
	case lexer.ARRAY:
		par.advance()
		par.eat(lexer.OF)
		return "array of " + par.parseTypeRef()
	case lexer.IDENTIFIER:
		tok := par.CurrToken
		par.advance()
		return tok.Literal
	default:
		par.errorf("expected a type name, got %s", par.CurrToken.Kind)
		par.advance()
		return ""
	}
}

// parseStatementsUntil parses statements until the current token is one of
// the given terminator kinds (not consumed).
func (par *Parser) parseStatementsUntil(terminators ...lexer.TokenKind) []Statement {
	var stmts []Statement
	for !par.atAny(terminators...) && !par.at(lexer.EOF) {
		stmts = append(stmts, par.parseStatement())
	}
	return stmts
}

func (par *Parser) atAny(kinds ...lexer.TokenKind) bool {
	for _, k := range kinds {
		if par.at(k) {
			return true
		}
	}
	return false
}
