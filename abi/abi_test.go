package abi

import "testing"

func TestLookupKnownBuiltins(t *testing.T) {
	cases := []struct {
		name    string
		arity   int
		symbol  string
		returns ReturnKind
	}{
		{"allocate", 1, "allocate", ReturnsInteger},
		{"string_concat", 2, "string_concat", ReturnsString},
		{"list_create", 0, "list_create", ReturnsList},
		{"read_file", 1, "runtime_read_file", ReturnsString},
		{"sin", 1, "runtime_sin", ReturnsInteger},
		{"exit_with_code", 1, "exit_with_code", ReturnsInteger},
	}

	for _, c := range cases {
		b, ok := Lookup(c.name)
		if !ok {
			t.Fatalf("Lookup(%q): not found", c.name)
		}
		if b.Arity != c.arity {
			t.Errorf("Lookup(%q).Arity = %d, want %d", c.name, b.Arity, c.arity)
		}
		if b.Symbol != c.symbol {
			t.Errorf("Lookup(%q).Symbol = %q, want %q", c.name, b.Symbol, c.symbol)
		}
		if b.Returns != c.returns {
			t.Errorf("Lookup(%q).Returns = %q, want %q", c.name, b.Returns, c.returns)
		}
		if !b.PLT {
			t.Errorf("Lookup(%q).PLT = false, want true (all runtime builtins are @PLT calls)", c.name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("not_a_builtin"); ok {
		t.Fatal("Lookup of unregistered name should fail")
	}
	if IsName("not_a_builtin") {
		t.Fatal("IsName of unregistered name should be false")
	}
}

func TestIsNameMatchesRegistry(t *testing.T) {
	for _, b := range All() {
		if !IsName(b.Name) {
			t.Errorf("IsName(%q) = false, want true", b.Name)
		}
	}
}

func TestReallocateAndMemoryReallocAreDistinct(t *testing.T) {
	// See SPEC_FULL.md Supplemented Features #5 / Open Question 4: the
	// split is kept, not collapsed.
	r1, ok1 := Lookup("reallocate")
	r2, ok2 := Lookup("memory_realloc")
	if !ok1 || !ok2 {
		t.Fatal("both reallocate and memory_realloc must be registered")
	}
	if r1.Symbol == r2.Symbol {
		t.Fatal("reallocate and memory_realloc must map to distinct symbols")
	}
}
