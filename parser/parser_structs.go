/*
File    : runac/parser/parser_structs.go
Package : parser
*/

package parser

import "github.com/runalang/runac/lexer"

// parseTypeDefinition parses:
//
//	type_def := 'Type' ('called' STRING ':' field_list 'End' 'Type'
//	                   | IDENT 'is' variant_list)
//
// The two forms are told apart by what follows 'Type': CALLED starts a
// struct, a bare IDENT followed by 'is' starts a variant.
func (par *Parser) parseTypeDefinition() *TypeDefinition {
	par.eat(lexer.TYPE)

	if par.at(lexer.CALLED) {
		return par.parseStructBody()
	}
	return par.parseVariantBody()
}

// parseStructBody parses `'called' STRING ':' field_list 'End' 'Type'`.
// Field offsets and total size are left zero here; the types package
// computes them per §3.4's no-padding layout rule once every type name is
// known (struct fields may reference types declared later in the file).
func (par *Parser) parseStructBody() *TypeDefinition {
	par.eat(lexer.CALLED)
	name := par.eat(lexer.STRING_LITERAL)
	par.eat(lexer.COLON)

	par.typeNames[name.Literal] = true
	def := &TypeDefinition{Name: name.Literal, Kind: KindStruct}
	for par.at(lexer.IDENTIFIER) {
		field := par.parseFieldPair()
		def.StructFields = append(def.StructFields, StructField{Name: field.Name, Type: field.Type})
		if par.at(lexer.COMMA) {
			par.advance()
		}
	}

	par.eat(lexer.END)
	par.eat(lexer.TYPE)
	return def
}

// fieldPair is `IDENT 'as' type_ref`, shared by struct field_list and
// variant constructor field values.
type fieldPair struct {
	Name string
	Type string
}

// parseFieldPair parses one `IDENT 'as' type_ref`.
func (par *Parser) parseFieldPair() fieldPair {
	name := par.eat(lexer.IDENTIFIER)
	par.eat(lexer.AS)
	typeName := par.parseTypeRef()
	return fieldPair{Name: name.Literal, Type: typeName}
}
