/*
File    : runac/parser/parser_expressions.go
Package : parser
*/

package parser

import "github.com/runalang/runac/lexer"

// parseExpression parses `primary (binop primary)*` — a flat left-to-right
// fold with no precedence stratification (§4.2 "Operator precedence").
// `2 plus 3 multiplied by 4` parses as `((2 plus 3) multiplied by 4)`.
func (par *Parser) parseExpression() Expression {
	left := par.parsePrimary()

	for {
		op, ok := par.tryConsumeBinaryOp()
		if !ok {
			return left
		}
		right := par.parsePrimary()
		left = &Binary{Left: left, Op: op, Right: right}
	}
}

// tryConsumeBinaryOp consumes a binary operator (possibly multi-word, e.g.
// `multiplied by`) if the current token starts one, and reports which.
func (par *Parser) tryConsumeBinaryOp() (BinaryOp, bool) {
	switch par.CurrToken.Kind {
	case lexer.PLUS:
		par.advance()
		return OpPlus, true
	case lexer.MINUS:
		par.advance()
		return OpMinus, true
	case lexer.MULTIPLIED:
		par.advance()
		par.eat(lexer.BY)
		return OpMul, true
	case lexer.DIVIDED:
		par.advance()
		par.eat(lexer.BY)
		return OpDiv, true
	case lexer.MODULO:
		par.advance()
		par.eat(lexer.BY)
		return OpMod, true
	case lexer.BIT_AND:
		par.advance()
		return OpBitAnd, true
	case lexer.BIT_OR:
		par.advance()
		return OpBitOr, true
	case lexer.BIT_XOR:
		par.advance()
		return OpBitXor, true
	case lexer.BIT_SHIFT_LEFT:
		par.advance()
		par.eat(lexer.BY)
		return OpShl, true
	case lexer.BIT_SHIFT_RIGHT:
		par.advance()
		par.eat(lexer.BY)
		return OpShr, true
	default:
		return "", false
	}
}

// parseComparison parses `expression ('is' rel_op expression)?`. Only
// If/While conditions call this; every other context (Let, Set, Return,
// Print, call args, array index) uses a plain expression. Comparison
// binds looser than any arithmetic/bitwise operator since it's layered on
// top of a full parseExpression on each side.
func (par *Parser) parseComparison() Expression {
	left := par.parseExpression()
	if !par.at(lexer.IS) {
		return left
	}
	par.advance()

	negate := false
	if par.at(lexer.NOT) {
		negate = true
		par.advance()
	}

	op := par.parseRelOp()
	if negate {
		op = negateCompareOp(op)
	}

	right := par.parseExpression()
	return &Comparison{Left: left, Op: op, Right: right}
}

// parseRelOp parses the word-sequence following `is`/`is not`: `equal to`,
// `less than [or equal to]`, `greater than [or equal to]`.
func (par *Parser) parseRelOp() CompareOp {
	switch par.CurrToken.Kind {
	case lexer.EQUAL:
		par.advance()
		par.eat(lexer.TO)
		return CmpEq
	case lexer.LESS:
		par.advance()
		par.eat(lexer.THAN)
		if par.at(lexer.OR) {
			par.advance()
			par.eat(lexer.EQUAL)
			par.eat(lexer.TO)
			return CmpLe
		}
		return CmpLt
	case lexer.GREATER:
		par.advance()
		par.eat(lexer.THAN)
		if par.at(lexer.OR) {
			par.advance()
			par.eat(lexer.EQUAL)
			par.eat(lexer.TO)
			return CmpGe
		}
		return CmpGt
	default:
		par.errorf("expected a comparison word (equal/less/greater), got %s", par.CurrToken.Kind)
		par.advance()
		return CmpEq
	}
}

func negateCompareOp(op CompareOp) CompareOp {
	switch op {
	case CmpEq:
		return CmpNe
	case CmpNe:
		return CmpEq
	case CmpLt:
		return CmpGe
	case CmpLe:
		return CmpGt
	case CmpGt:
		return CmpLe
	case CmpGe:
		return CmpLt
	default:
		return op
	}
}

// parsePrimary parses:
//
//	primary := INTEGER | STRING | IDENT [ '(' args ')' ]
//	         | builtin '(' args ')'
//	         | IDENT 'with' field_pair ('and' field_pair)*
//	         | IDENT '.' IDENT
//	         | IDENT '[' expression ']'
func (par *Parser) parsePrimary() Expression {
	switch par.CurrToken.Kind {
	case lexer.INT_LITERAL:
		return par.parseIntegerLiteral()
	case lexer.STRING_LITERAL:
		return par.parseStringLiteral()
	case lexer.BUILTIN:
		name := par.CurrToken.Literal
		par.advance()
		return &BuiltinCall{Name: name, Args: par.parseCallArgs()}
	case lexer.IDENTIFIER:
		return par.parseIdentifierPrimary()
	default:
		par.errorf("expected an expression, got %s", par.CurrToken.Kind)
		tok := par.CurrToken
		par.advance()
		return &Integer{Token: tok, Value: 0}
	}
}

// parseIdentifierPrimary disambiguates the four IDENT-led primary forms.
// A variant constructor is recognized only when the name is a known
// variant (§4.2's disambiguation rule); otherwise `with` never follows a
// plain identifier in well-formed input. A bare name matching a declared
// type is a TypeName (invariant 1: type names never shadow variables).
func (par *Parser) parseIdentifierPrimary() Expression {
	tok := par.eat(lexer.IDENTIFIER)
	name := tok.Literal

	switch {
	case par.at(lexer.LPAREN):
		return &FunctionCall{Name: name, Args: par.parseCallArgs()}

	case par.at(lexer.WITH):
		if owner, ok := par.variantNames[name]; ok {
			par.advance()
			return &VariantConstructor{TypeName: owner, VariantName: name, Fields: par.parseFieldValues()}
		}
		par.errorf("%q is not a known variant name", name)
		par.advance()
		par.parseFieldValues()
		return &Variable{Token: tok, Name: name}

	case par.at(lexer.DOT):
		var expr Expression = &Variable{Token: tok, Name: name}
		for par.at(lexer.DOT) {
			par.advance()
			field := par.eat(lexer.IDENTIFIER)
			expr = &FieldAccess{Object: expr, Field: field.Literal}
		}
		return expr

	case par.at(lexer.LBRACKET):
		par.advance()
		index := par.parseExpression()
		par.eat(lexer.RBRACKET)
		return &ArrayIndex{Array: &Variable{Token: tok, Name: name}, Index: index}

	case par.typeNames[name]:
		return &TypeName{Name: name}

	default:
		return &Variable{Token: tok, Name: name}
	}
}
