/*
File    : runac/parser/enum_parser.go
Package : parser
*/

package parser

import "github.com/runalang/runac/lexer"

// parseVariantBody parses `IDENT 'is' variant_list`, where:
//
//	variant_list := ('|' IDENT ('with' field_pair ('and' field_pair)*)? )+
//
// Each variant's Tag is its position in declaration order. Every variant
// name is registered in par.variantNames so parsePrimary can tell a
// VariantConstructor apart from an ordinary call (§4.2 disambiguation
// rule).
func (par *Parser) parseVariantBody() *TypeDefinition {
	name := par.eat(lexer.IDENTIFIER)
	par.eat(lexer.IS)

	par.typeNames[name.Literal] = true
	def := &TypeDefinition{Name: name.Literal, Kind: KindVariant}

	tag := 0
	for par.at(lexer.PIPE) {
		par.advance()
		variantName := par.eat(lexer.IDENTIFIER)

		variant := VariantCase{Name: variantName.Literal, Tag: tag}
		if par.at(lexer.WITH) {
			par.advance()
			variant.Fields = append(variant.Fields, par.parseStructFieldPair())
			for par.at(lexer.AND) {
				par.advance()
				variant.Fields = append(variant.Fields, par.parseStructFieldPair())
			}
		}

		def.Variants = append(def.Variants, variant)
		par.variantNames[variantName.Literal] = def.Name
		tag++
	}

	return def
}

// parseStructFieldPair adapts fieldPair into the StructField shape used by
// VariantCase.Fields.
func (par *Parser) parseStructFieldPair() StructField {
	fp := par.parseFieldPair()
	return StructField{Name: fp.Name, Type: fp.Type}
}
