/*
File    : runac/parser/parser_literals.go
Package : parser
*/

package parser

import (
	"strconv"

	"github.com/runalang/runac/lexer"
)

// parseIntegerLiteral converts the current INTEGER token into an Integer
// node. The lexer only ever produces a run of decimal digits here, so a
// parse failure would indicate a lexer/parser mismatch, not bad input —
// it's reported the same way as any other parser error.
func (par *Parser) parseIntegerLiteral() *Integer {
	tok := par.eat(lexer.INT_LITERAL)
	value, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		par.errorf("malformed integer literal %q", tok.Literal)
	}
	return &Integer{Token: tok, Value: value}
}

// parseStringLiteral converts the current STRING_LITERAL token into a
// StringLiteral node.
func (par *Parser) parseStringLiteral() *StringLiteral {
	tok := par.eat(lexer.STRING_LITERAL)
	return &StringLiteral{Token: tok, Value: tok.Literal}
}
