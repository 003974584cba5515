/*
File: runac/lexer/lexer_utils.go
Package: lexer
*/
package lexer

// isWhitespace reports whether c is space, tab, CR, or LF (§4.1 contract).
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isWordStart reports whether c can begin an identifier/keyword/builtin
// word: a letter or underscore.
func isWordStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// isWordPart reports whether c can continue a word already begun by
// isWordStart: letters, digits, or underscores.
func isWordPart(c byte) bool {
	return isWordStart(c) || isDigit(c)
}
