package abi

// init registers the math builtins. Trig/log/exp are fixed-point at scale
// 1,000,000 — integer in, integer out, per §6.3 and the GLOSSARY entry for
// Fixed-point; the source language itself has no floating point (§1
// Non-goals).
func init() {
	for _, b := range []Builtin{
		{Name: "sin", Arity: 1, Symbol: "runtime_sin", PLT: true, Returns: ReturnsInteger, Category: Math},
		{Name: "cos", Arity: 1, Symbol: "runtime_cos", PLT: true, Returns: ReturnsInteger, Category: Math},
		{Name: "tan", Arity: 1, Symbol: "runtime_tan", PLT: true, Returns: ReturnsInteger, Category: Math},
		{Name: "sqrt", Arity: 1, Symbol: "runtime_sqrt", PLT: true, Returns: ReturnsInteger, Category: Math},
		{Name: "pow", Arity: 2, Symbol: "runtime_pow", PLT: true, Returns: ReturnsInteger, Category: Math},
		{Name: "abs", Arity: 1, Symbol: "runtime_abs", PLT: true, Returns: ReturnsInteger, Category: Math},
		{Name: "floor", Arity: 1, Symbol: "runtime_floor", PLT: true, Returns: ReturnsInteger, Category: Math},
		{Name: "ceil", Arity: 1, Symbol: "runtime_ceil", PLT: true, Returns: ReturnsInteger, Category: Math},
		{Name: "min", Arity: 2, Symbol: "runtime_min", PLT: true, Returns: ReturnsInteger, Category: Math},
		{Name: "max", Arity: 2, Symbol: "runtime_max", PLT: true, Returns: ReturnsInteger, Category: Math},
		{Name: "random", Arity: 0, Symbol: "runtime_random", PLT: true, Returns: ReturnsInteger, Category: Math},
		{Name: "log", Arity: 1, Symbol: "runtime_log", PLT: true, Returns: ReturnsInteger, Category: Math},
		{Name: "exp", Arity: 1, Symbol: "runtime_exp", PLT: true, Returns: ReturnsInteger, Category: Math},
	} {
		register(b)
	}
}

// FixedPointScale is the implicit denominator of every fixed-point value
// the math builtins return (see GLOSSARY: Fixed-point).
const FixedPointScale = 1_000_000
