package abi

// init registers the file builtins. Source-level names are shorter than
// their runtime_* C symbols (read_file -> runtime_read_file, and so on) —
// the registry is what bridges the two, resolving the §4.3 surface name to
// the §6.3 linkage symbol.
func init() {
	for _, b := range []Builtin{
		{Name: "read_file", Arity: 1, Symbol: "runtime_read_file", PLT: true, Returns: ReturnsString, Category: File},
		{Name: "write_file", Arity: 2, Symbol: "runtime_write_file", PLT: true, Returns: ReturnsInteger, Category: File},
		{Name: "file_open", Arity: 2, Symbol: "runtime_file_open", PLT: true, Returns: ReturnsInteger, Category: File},
		{Name: "file_close", Arity: 1, Symbol: "runtime_file_close", PLT: true, Returns: ReturnsInteger, Category: File},
		{Name: "file_read_line", Arity: 1, Symbol: "runtime_file_read_line", PLT: true, Returns: ReturnsString, Category: File},
		{Name: "file_write_line", Arity: 2, Symbol: "runtime_file_write_line", PLT: true, Returns: ReturnsInteger, Category: File},
		{Name: "file_exists", Arity: 1, Symbol: "runtime_file_exists", PLT: true, Returns: ReturnsInteger, Category: File},
		{Name: "file_delete", Arity: 1, Symbol: "runtime_file_delete", PLT: true, Returns: ReturnsInteger, Category: File},
		{Name: "file_size", Arity: 1, Symbol: "runtime_file_size", PLT: true, Returns: ReturnsInteger, Category: File},
		{Name: "file_seek", Arity: 3, Symbol: "runtime_file_seek", PLT: true, Returns: ReturnsInteger, Category: File},
		{Name: "file_tell", Arity: 1, Symbol: "runtime_file_tell", PLT: true, Returns: ReturnsInteger, Category: File},
		{Name: "file_eof", Arity: 1, Symbol: "runtime_file_eof", PLT: true, Returns: ReturnsInteger, Category: File},
	} {
		register(b)
	}
}
