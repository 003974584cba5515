/*
File    : runac/parser/parser_helpers.go
Package : parser
*/

package parser

import "github.com/runalang/runac/lexer"

// parseCallArgs parses a parenthesized, comma-separated argument list:
// `'(' (expression (',' expression)*)? ')'`.
func (par *Parser) parseCallArgs() []Expression {
	par.eat(lexer.LPAREN)
	var args []Expression
	if !par.at(lexer.RPAREN) {
		args = append(args, par.parseExpression())
		for par.at(lexer.COMMA) {
			par.advance()
			args = append(args, par.parseExpression())
		}
	}
	par.eat(lexer.RPAREN)
	return args
}

// parseFieldValues parses `field_pair ('and' field_pair)*` for a
// VariantConstructor, e.g. `radius as 5 and centre as p`.
func (par *Parser) parseFieldValues() []FieldValue {
	var fields []FieldValue
	fields = append(fields, par.parseFieldValue())
	for par.at(lexer.AND) {
		par.advance()
		fields = append(fields, par.parseFieldValue())
	}
	return fields
}

// parseFieldValue parses one `IDENT 'as' expression`.
func (par *Parser) parseFieldValue() FieldValue {
	name := par.eat(lexer.IDENTIFIER)
	par.eat(lexer.AS)
	return FieldValue{Name: name.Literal, Value: par.parseExpression()}
}
