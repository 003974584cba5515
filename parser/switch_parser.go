/*
File    : runac/parser/switch_parser.go
Package : parser
*/

package parser

import "github.com/runalang/runac/lexer"

// parseMatch parses:
//
//	match_stmt := 'Match' expression ':' match_case+ 'End' 'Match'
//	match_case := 'When' IDENT ('with' binding ('and' binding)*)? ':' statement* 'End' 'When'
//	binding    := IDENT 'as' IDENT
func (par *Parser) parseMatch() *Match {
	par.eat(lexer.MATCH)
	expr := par.parseExpression()
	par.eat(lexer.COLON)

	node := &Match{Expr: expr}
	for par.at(lexer.WHEN) {
		node.Cases = append(node.Cases, par.parseMatchCase())
	}

	par.eat(lexer.END)
	par.eat(lexer.MATCH)
	return node
}

// parseMatchCase parses one `When VariantName [with f1 as v1 and ...]:
// body End When`. The binding's local name is carried as a Variable so it
// reuses the same FieldValue shape as a VariantConstructor's field list.
func (par *Parser) parseMatchCase() MatchCase {
	par.eat(lexer.WHEN)
	variantName := par.eat(lexer.IDENTIFIER)

	caseNode := MatchCase{VariantName: variantName.Literal}
	if par.at(lexer.WITH) {
		par.advance()
		caseNode.BoundFields = append(caseNode.BoundFields, par.parseBinding())
		for par.at(lexer.AND) {
			par.advance()
			caseNode.BoundFields = append(caseNode.BoundFields, par.parseBinding())
		}
	}

	par.eat(lexer.COLON)
	caseNode.Body = par.parseStatementsUntil(lexer.END)
	par.eat(lexer.END)
	par.eat(lexer.WHEN)

	return caseNode
}

// parseBinding parses `IDENT 'as' IDENT` — a field name bound to a local
// variable name.
func (par *Parser) parseBinding() FieldValue {
	field := par.eat(lexer.IDENTIFIER)
	par.eat(lexer.AS)
	local := par.eat(lexer.IDENTIFIER)
	return FieldValue{Name: field.Literal, Value: &Variable{Token: local, Name: local.Literal}}
}
