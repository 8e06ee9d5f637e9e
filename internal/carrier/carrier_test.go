package carrier

import "testing"

func TestNewResolver_RejectsBadTables(t *testing.T) {
	tests := []struct {
		name        string
		dialingCode int
		table       map[string]string
	}{
		{"zero dialing code", 0, map[string]string{"0812": "Telkomsel"}},
		{"negative dialing code", -62, map[string]string{"0812": "Telkomsel"}},
		{"empty prefix", 62, map[string]string{"": "Telkomsel"}},
		{"non-digit prefix", 62, map[string]string{"08a2": "Telkomsel"}},
		{"empty carrier name", 62, map[string]string{"0812": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewResolver(tt.dialingCode, tt.table); err == nil {
				t.Error("NewResolver() should return error")
			}
		})
	}
}

func TestResolve_LongestPrefixWins(t *testing.T) {
	r, err := NewResolver(62, map[string]string{
		"081":  "Short Network",
		"0812": "Telkomsel",
	})
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	name, ok := r.Resolve("+628123456789")
	if !ok {
		t.Fatal("Resolve() should match")
	}
	if name != "Telkomsel" {
		t.Errorf("carrier = %q, want %q (longer prefix must win)", name, "Telkomsel")
	}

	// A number only the short prefix covers still resolves.
	name, ok = r.Resolve("+628193456789")
	if !ok {
		t.Fatal("Resolve() should match short prefix")
	}
	if name != "Short Network" {
		t.Errorf("carrier = %q, want %q", name, "Short Network")
	}
}

func TestResolve_OtherDialingCode(t *testing.T) {
	r, err := NewResolver(62, map[string]string{"0812": "Telkomsel"})
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	if _, ok := r.Resolve("+14155552671"); ok {
		t.Error("Resolve() should not match a number from another dialing code")
	}
}

func TestResolve_NoMatchingPrefix(t *testing.T) {
	r, err := NewResolver(62, map[string]string{"0812": "Telkomsel"})
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	if _, ok := r.Resolve("+629998887766"); ok {
		t.Error("Resolve() should not match an unconfigured range")
	}
}

func TestResolve_RestoresTrunkPrefix(t *testing.T) {
	// E.164 drops the national trunk "0" the table keys carry; the resolver
	// must put it back before matching.
	r, err := NewResolver(62, map[string]string{"0812": "Telkomsel"})
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	name, ok := r.Resolve("+6281234567890")
	if !ok {
		t.Fatal("Resolve() should match")
	}
	if name != "Telkomsel" {
		t.Errorf("carrier = %q, want %q", name, "Telkomsel")
	}
}

func TestResolve_EmptyAfterCode(t *testing.T) {
	r, err := NewResolver(62, map[string]string{"0812": "Telkomsel"})
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	if _, ok := r.Resolve("+62"); ok {
		t.Error("bare dialing code should not match")
	}
}

func TestIndonesia_TableIsWellFormed(t *testing.T) {
	table := Indonesia()
	if len(table) == 0 {
		t.Fatal("built-in table should not be empty")
	}

	r, err := NewResolver(IndonesiaDialingCode, table)
	if err != nil {
		t.Fatalf("built-in table should build a resolver: %v", err)
	}
	if r.Len() != len(table) {
		t.Errorf("resolver has %d prefixes, want %d", r.Len(), len(table))
	}

	for prefix, name := range table {
		if len(prefix) != 4 {
			t.Errorf("prefix %q has length %d, want 4", prefix, len(prefix))
		}
		if name == "" {
			t.Errorf("prefix %q has empty carrier name", prefix)
		}
	}
}

func TestIndonesia_KnownRanges(t *testing.T) {
	r, err := NewResolver(IndonesiaDialingCode, Indonesia())
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	tests := []struct {
		e164 string
		want string
	}{
		{"+6281234567890", "Telkomsel"},
		{"+6285612345678", "Indosat Ooredoo"},
		{"+6281712345678", "XL Axiata"},
		{"+6283112345678", "Axis"},
		{"+6289612345678", "Tri"},
		{"+6288112345678", "Smartfren"},
	}

	for _, tt := range tests {
		t.Run(tt.e164, func(t *testing.T) {
			name, ok := r.Resolve(tt.e164)
			if !ok {
				t.Fatalf("Resolve(%q) should match", tt.e164)
			}
			if name != tt.want {
				t.Errorf("carrier = %q, want %q", name, tt.want)
			}
		})
	}
}
