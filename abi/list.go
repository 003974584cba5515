package abi

// init registers the list builtins over the runtime's opaque List*, 64-bit
// element slots.
func init() {
	for _, b := range []Builtin{
		{Name: "list_create", Arity: 0, Symbol: "list_create", PLT: true, Returns: ReturnsList, Category: List},
		{Name: "list_append", Arity: 2, Symbol: "list_append", PLT: true, Returns: ReturnsInteger, Category: List},
		{Name: "list_get", Arity: 2, Symbol: "list_get", PLT: true, Returns: ReturnsInteger, Category: List},
		{Name: "list_get_integer", Arity: 2, Symbol: "list_get_integer", PLT: true, Returns: ReturnsInteger, Category: List},
		{Name: "list_length", Arity: 1, Symbol: "list_length", PLT: true, Returns: ReturnsInteger, Category: List},
		{Name: "list_destroy", Arity: 1, Symbol: "list_destroy", PLT: true, Returns: ReturnsInteger, Category: List},
		{Name: "list_set", Arity: 3, Symbol: "list_set", PLT: true, Returns: ReturnsInteger, Category: List},
		{Name: "list_insert", Arity: 3, Symbol: "list_insert", PLT: true, Returns: ReturnsInteger, Category: List},
		{Name: "list_remove", Arity: 2, Symbol: "list_remove", PLT: true, Returns: ReturnsInteger, Category: List},
		{Name: "list_clear", Arity: 1, Symbol: "list_clear", PLT: true, Returns: ReturnsInteger, Category: List},
		{Name: "list_find", Arity: 2, Symbol: "list_find", PLT: true, Returns: ReturnsInteger, Category: List},
		{Name: "list_sort", Arity: 1, Symbol: "list_sort", PLT: true, Returns: ReturnsInteger, Category: List},
		{Name: "list_reverse", Arity: 1, Symbol: "list_reverse", PLT: true, Returns: ReturnsInteger, Category: List},
		{Name: "list_copy", Arity: 1, Symbol: "list_copy", PLT: true, Returns: ReturnsList, Category: List},
		{Name: "list_merge", Arity: 2, Symbol: "list_merge", PLT: true, Returns: ReturnsList, Category: List},
	} {
		register(b)
	}
}
