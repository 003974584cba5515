/*
File    : runac/parser/parser_loops.go
Package : parser
*/

package parser

import "github.com/runalang/runac/lexer"

// parseWhile parses `While comparison ':' statement* 'End' 'While'`.
func (par *Parser) parseWhile() *While {
	par.eat(lexer.WHILE)
	cond := par.parseComparison()
	par.eat(lexer.COLON)
	body := par.parseStatementsUntil(lexer.END)
	par.eat(lexer.END)
	par.eat(lexer.WHILE)
	return &While{Condition: cond, Body: body}
}
