/*
File    : runac/parser/parser_assignments.go
Package : parser
*/

package parser

import "github.com/runalang/runac/lexer"

// parseLet parses `Let IDENT be expression`.
func (par *Parser) parseLet() *Let {
	par.eat(lexer.LET)
	name := par.eat(lexer.IDENTIFIER)
	par.eat(lexer.BE)
	expr := par.parseExpression()
	return &Let{Name: name.Literal, Expr: expr}
}

// parseSet parses `Set expression to expression`, where the first
// expression must be an lvalue (Variable, FieldAccess, or ArrayIndex) —
// validated at codegen, not here, since the parser doesn't yet know types.
func (par *Parser) parseSet() *Set {
	par.eat(lexer.SET)
	target := par.parseExpression()
	par.eat(lexer.TO)
	expr := par.parseExpression()
	return &Set{Target: target, Expr: expr}
}
