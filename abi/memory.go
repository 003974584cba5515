package abi

// init registers the memory builtins: raw heap access used by struct and
// variant constructors, and by any inline assembly that needs to touch
// memory indirectly.
func init() {
	for _, b := range []Builtin{
		{Name: "allocate", Arity: 1, Symbol: "allocate", PLT: true, Returns: ReturnsInteger, Category: Memory},
		{Name: "deallocate", Arity: 1, Symbol: "deallocate", PLT: true, Returns: ReturnsInteger, Category: Memory},
		{Name: "reallocate", Arity: 3, Symbol: "reallocate", PLT: true, Returns: ReturnsInteger, Category: Memory},
		{Name: "memory_realloc", Arity: 2, Symbol: "memory_realloc", PLT: true, Returns: ReturnsInteger, Category: Memory},
		{Name: "memory_get_byte", Arity: 2, Symbol: "memory_get_byte", PLT: true, Returns: ReturnsInteger, Category: Memory},
		{Name: "memory_get_integer", Arity: 2, Symbol: "memory_get_integer", PLT: true, Returns: ReturnsInteger, Category: Memory},
		{Name: "memory_get_pointer", Arity: 2, Symbol: "memory_get_pointer", PLT: true, Returns: ReturnsInteger, Category: Memory},
		{Name: "memory_set_byte", Arity: 3, Symbol: "memory_set_byte", PLT: true, Returns: ReturnsInteger, Category: Memory},
		{Name: "memory_set_integer", Arity: 3, Symbol: "memory_set_integer", PLT: true, Returns: ReturnsInteger, Category: Memory},
		{Name: "memory_set_pointer", Arity: 3, Symbol: "memory_set_pointer", PLT: true, Returns: ReturnsInteger, Category: Memory},
		{Name: "memory_copy", Arity: 3, Symbol: "memory_copy", PLT: true, Returns: ReturnsInteger, Category: Memory},
		{Name: "memory_get_pointer_at_index", Arity: 2, Symbol: "memory_get_pointer_at_index", PLT: true, Returns: ReturnsInteger, Category: Memory},
		{Name: "memory_set_pointer_at_index", Arity: 3, Symbol: "memory_set_pointer_at_index", PLT: true, Returns: ReturnsInteger, Category: Memory},
	} {
		register(b)
	}
}
