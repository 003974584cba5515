package abi

// init registers the string builtins. Several of these (substring, concat,
// integer_to_string, replace, trim) are the ones §4.3's local type
// inference maps to a String-typed Let binding; string_split returns a
// List, and everything else in this category returns Integer.
func init() {
	for _, b := range []Builtin{
		{Name: "string_length", Arity: 1, Symbol: "string_length", PLT: true, Returns: ReturnsInteger, Category: String},
		{Name: "string_char_at", Arity: 2, Symbol: "string_char_at", PLT: true, Returns: ReturnsInteger, Category: String},
		{Name: "string_substring", Arity: 3, Symbol: "string_substring", PLT: true, Returns: ReturnsString, Category: String},
		{Name: "string_equals", Arity: 2, Symbol: "string_equals", PLT: true, Returns: ReturnsInteger, Category: String},
		{Name: "string_compare", Arity: 2, Symbol: "string_compare", PLT: true, Returns: ReturnsInteger, Category: String},
		{Name: "string_concat", Arity: 2, Symbol: "string_concat", PLT: true, Returns: ReturnsString, Category: String},
		{Name: "string_to_integer", Arity: 1, Symbol: "string_to_integer", PLT: true, Returns: ReturnsInteger, Category: String},
		{Name: "integer_to_string", Arity: 1, Symbol: "integer_to_string", PLT: true, Returns: ReturnsString, Category: String},
		{Name: "string_find", Arity: 2, Symbol: "string_find", PLT: true, Returns: ReturnsInteger, Category: String},
		{Name: "string_replace", Arity: 3, Symbol: "string_replace", PLT: true, Returns: ReturnsString, Category: String},
		{Name: "string_trim", Arity: 1, Symbol: "string_trim", PLT: true, Returns: ReturnsString, Category: String},
		{Name: "string_split", Arity: 2, Symbol: "string_split", PLT: true, Returns: ReturnsList, Category: String},
		{Name: "ascii_value_of", Arity: 1, Symbol: "ascii_value_of", PLT: true, Returns: ReturnsInteger, Category: String},
		{Name: "is_digit", Arity: 1, Symbol: "is_digit", PLT: true, Returns: ReturnsInteger, Category: String},
		{Name: "is_alpha", Arity: 1, Symbol: "is_alpha", PLT: true, Returns: ReturnsInteger, Category: String},
		{Name: "is_whitespace", Arity: 1, Symbol: "is_whitespace", PLT: true, Returns: ReturnsInteger, Category: String},
	} {
		register(b)
	}
}
