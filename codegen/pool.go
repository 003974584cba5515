/*
File    : runac/codegen/pool.go
Package : codegen
*/

package codegen

import "fmt"

// stringPool deduplicates string literals by a linear scan on every
// insert (§4.4 "String pool"), matching the teacher's own constants map
// in spirit (skx-math-compiler's Compiler.constants) but keyed by
// insertion-order label instead of the literal value itself, since two
// distinct literals can't share a label but a map can't preserve the
// order labels were first seen in.
type stringPool struct {
	values []string
	index  map[string]int
}

func newStringPool() *stringPool {
	return &stringPool{index: make(map[string]int)}
}

// intern returns the label for s, reusing an existing one if s was already
// interned (§8.1 property 5: pool size == distinct literal count).
func (p *stringPool) intern(s string) string {
	if i, ok := p.index[s]; ok {
		return label(i)
	}
	i := len(p.values)
	p.values = append(p.values, s)
	p.index[s] = i
	return label(i)
}

func label(i int) string {
	return fmt.Sprintf(".STR%d", i)
}

// emit renders the .rodata section: every pooled literal plus the shared
// newline fragment the print helpers append to their output.
func (p *stringPool) emit() string {
	out := ".section .rodata\n"
	for i, v := range p.values {
		out += fmt.Sprintf("%s:\n\t.string %q\n", label(i), v)
	}
	out += ".newline:\n\t.string \"\\n\"\n"
	return out
}
