/*
File    : runac/lexer/token.go
Package : lexer
*/

// Package lexer turns source text for the source language into a stream of
// Tokens. Keyword recognition is exact, case-sensitive, and word-boundary
// anchored; multi-word operators ("multiplied by", "is equal to", ...) are
// lexed as two or more adjacent atomic tokens and assembled later by the
// parser.
package lexer

import (
	"fmt"

	"github.com/runalang/runac/abi"
)

// TokenKind identifies the category of a Token. It is a closed set: every
// kind the lexer can produce is listed below, grouped the way §3.1 of the
// specification groups them.
type TokenKind string

const (
	// Special
	EOF   TokenKind = "EOF"
	ERROR TokenKind = "ERROR"

	// Structural
	COLON    TokenKind = "COLON"
	LPAREN   TokenKind = "LPAREN"
	RPAREN   TokenKind = "RPAREN"
	LBRACKET TokenKind = "LBRACKET"
	RBRACKET TokenKind = "RBRACKET"
	DOT      TokenKind = "DOT"
	COMMA    TokenKind = "COMMA"
	PIPE     TokenKind = "PIPE"

	// Keywords
	PROCESS   TokenKind = "Process"
	CALLED    TokenKind = "called"
	RETURNS   TokenKind = "returns"
	RETURN    TokenKind = "Return"
	END       TokenKind = "End"
	LET       TokenKind = "Let"
	BE        TokenKind = "be"
	SET       TokenKind = "Set"
	TO        TokenKind = "to"
	IF        TokenKind = "If"
	OTHERWISE TokenKind = "Otherwise"
	WHILE     TokenKind = "While"
	BREAK     TokenKind = "Break"
	CONTINUE  TokenKind = "Continue"
	MATCH     TokenKind = "Match"
	WHEN      TokenKind = "When"
	WITH      TokenKind = "with"
	PRINT     TokenKind = "Print"
	TYPE      TokenKind = "Type"
	IMPORT    TokenKind = "Import"
	AS        TokenKind = "as"
	THAT      TokenKind = "that"
	TAKES     TokenKind = "takes"
	INLINE    TokenKind = "Inline"
	ASSEMBLY  TokenKind = "Assembly"
	NOTE      TokenKind = "Note"
	POINTER   TokenKind = "Pointer"
	OF        TokenKind = "of"
	ARRAY     TokenKind = "array"

	// Type names
	INTEGER_TYPE   TokenKind = "Integer"
	STRING_TYPE    TokenKind = "String"
	CHARACTER_TYPE TokenKind = "Character"

	// Word operators
	PLUS            TokenKind = "plus"
	MINUS           TokenKind = "minus"
	MULTIPLIED      TokenKind = "multiplied"
	DIVIDED         TokenKind = "divided"
	MODULO          TokenKind = "modulo"
	BIT_AND         TokenKind = "bit_and"
	BIT_OR          TokenKind = "bit_or"
	BIT_XOR         TokenKind = "bit_xor"
	BIT_SHIFT_LEFT  TokenKind = "bit_shift_left"
	BIT_SHIFT_RIGHT TokenKind = "bit_shift_right"
	BY              TokenKind = "by"

	// Comparison components (assembled into a single operator by the parser)
	IS      TokenKind = "is"
	NOT     TokenKind = "not"
	EQUAL   TokenKind = "equal"
	LESS    TokenKind = "less"
	GREATER TokenKind = "greater"
	THAN    TokenKind = "than"
	OR      TokenKind = "or"
	AND     TokenKind = "and"

	// Literals
	INT_LITERAL    TokenKind = "INTEGER"
	STRING_LITERAL TokenKind = "STRING_LITERAL"
	IDENTIFIER     TokenKind = "IDENTIFIER"

	// BUILTIN tags an identifier-shaped word that names a runtime builtin
	// (memory/string/list/file/math/system — enumerated in abi). The lexer
	// only needs to mark "this is a builtin, not a plain name"; the specific
	// arity and C symbol are resolved against the abi registry by the
	// parser and codegen.
	BUILTIN TokenKind = "BUILTIN"
)

// keywords is the exact, case-sensitive keyword table. A word that isn't in
// this table is checked against the abi registry before falling back to a
// plain IDENTIFIER.
var keywords = map[string]TokenKind{
	"Process": PROCESS, "called": CALLED, "returns": RETURNS,
	"Return": RETURN, "End": END, "Let": LET, "be": BE,
	"Set": SET, "to": TO, "If": IF, "Otherwise": OTHERWISE,
	"While": WHILE, "Break": BREAK, "Continue": CONTINUE,
	"Match": MATCH, "When": WHEN, "with": WITH, "Print": PRINT,
	"Type": TYPE, "Import": IMPORT, "as": AS, "that": THAT,
	"takes": TAKES, "Inline": INLINE, "Assembly": ASSEMBLY,
	"Note": NOTE, "Pointer": POINTER, "of": OF, "array": ARRAY,

	"Integer": INTEGER_TYPE, "String": STRING_TYPE, "Character": CHARACTER_TYPE,

	"plus": PLUS, "minus": MINUS, "multiplied": MULTIPLIED,
	"divided": DIVIDED, "modulo": MODULO, "bit_and": BIT_AND,
	"bit_or": BIT_OR, "bit_xor": BIT_XOR,
	"bit_shift_left": BIT_SHIFT_LEFT, "bit_shift_right": BIT_SHIFT_RIGHT,
	"by": BY,

	"is": IS, "not": NOT, "equal": EQUAL, "less": LESS,
	"greater": GREATER, "than": THAN, "or": OR, "and": AND,
}

// Token is a single lexical unit: a kind tag, the source text it came from
// (the punctuator itself for fixed punctuation, empty for EOF), and the
// 1-based line/column of its first character.
type Token struct {
	Kind    TokenKind
	Literal string
	Line    int
	Column  int
}

// New constructs a Token at the given source position.
func New(kind TokenKind, literal string, line, column int) Token {
	return Token{Kind: kind, Literal: literal, Line: line, Column: column}
}

// String renders a token for diagnostics, e.g. "IDENTIFIER(radius)@3:8".
func (t Token) String() string {
	if t.Literal == "" {
		return fmt.Sprintf("%s@%d:%d", t.Kind, t.Line, t.Column)
	}
	return fmt.Sprintf("%s(%s)@%d:%d", t.Kind, t.Literal, t.Line, t.Column)
}

// lookupWord classifies a scanned word as a keyword, a builtin name, or a
// plain identifier, in that priority order (keywords shadow builtins which
// shadow identifiers — this matches v0.0.7.3's lexer.c table order).
func lookupWord(word string) TokenKind {
	if kind, ok := keywords[word]; ok {
		return kind
	}
	if abi.IsName(word) {
		return BUILTIN
	}
	return IDENTIFIER
}
