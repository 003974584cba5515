package abi

// init registers the system/command-line builtins. set_command_line_args
// is never called directly by user code — the generator's function
// prologue emits the call itself when main takes two parameters (§6.3) —
// but it's registered anyway so the registry lists it alongside the other
// system builtins.
func init() {
	for _, b := range []Builtin{
		{Name: "set_command_line_args", Arity: 2, Symbol: "runtime_set_command_line_args", PLT: true, Returns: ReturnsInteger, Category: System},
		{Name: "command_line_arg_count", Arity: 0, Symbol: "get_command_line_arg_count", PLT: true, Returns: ReturnsInteger, Category: System},
		{Name: "command_line_arg", Arity: 1, Symbol: "get_command_line_arg", PLT: true, Returns: ReturnsString, Category: System},
		{Name: "exit_with_code", Arity: 1, Symbol: "exit_with_code", PLT: true, Returns: ReturnsInteger, Category: System},
		{Name: "panic", Arity: 1, Symbol: "panic", PLT: true, Returns: ReturnsInteger, Category: System},
		{Name: "assert", Arity: 2, Symbol: "assert", PLT: true, Returns: ReturnsInteger, Category: System},
	} {
		register(b)
	}
}
