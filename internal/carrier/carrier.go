// Package carrier resolves mobile carrier names from a static prefix table.
// The table exists because numbering-plan carrier data is often stale or
// missing for virtual operators that acquired ranges through portability;
// a matching local prefix takes display precedence over the generic name.
package carrier

import (
	"fmt"
	"sort"
	"strings"
)

// Resolver matches national number prefixes to carrier names for a single
// dialing code. The table is fixed at construction and safe for any number
// of concurrent readers.
type Resolver struct {
	dialingCode int
	prefixes    []string // longest first, so specific ranges win
	carriers    map[string]string
}

// NewResolver builds a Resolver for the given dialing code. Table keys are
// national-format prefixes including the leading trunk "0" (e.g. "0812").
func NewResolver(dialingCode int, table map[string]string) (*Resolver, error) {
	if dialingCode <= 0 {
		return nil, fmt.Errorf("carrier: dialing code must be positive, got %d", dialingCode)
	}

	prefixes := make([]string, 0, len(table))
	carriers := make(map[string]string, len(table))
	for prefix, name := range table {
		if prefix == "" {
			return nil, fmt.Errorf("carrier: empty prefix for %q", name)
		}
		if !digitsOnly(prefix) {
			return nil, fmt.Errorf("carrier: prefix %q contains non-digits", prefix)
		}
		if name == "" {
			return nil, fmt.Errorf("carrier: prefix %q has no carrier name", prefix)
		}
		prefixes = append(prefixes, prefix)
		carriers[prefix] = name
	}

	// Longest prefix checked first: "0812" must win over "081" for a
	// number both match. Equal lengths sort lexically for determinism.
	sort.Slice(prefixes, func(i, j int) bool {
		if len(prefixes[i]) != len(prefixes[j]) {
			return len(prefixes[i]) > len(prefixes[j])
		}
		return prefixes[i] < prefixes[j]
	})

	return &Resolver{
		dialingCode: dialingCode,
		prefixes:    prefixes,
		carriers:    carriers,
	}, nil
}

// DialingCode returns the dialing code this resolver tracks.
func (r *Resolver) DialingCode() int {
	return r.dialingCode
}

// Len returns the number of prefixes in the table.
func (r *Resolver) Len() int {
	return len(r.prefixes)
}

// Resolve returns the carrier bound to the longest table prefix matching the
// given E.164 number. ok is false when the number belongs to a different
// dialing code or no prefix matches.
func (r *Resolver) Resolve(e164 string) (string, bool) {
	national, ok := r.national(e164)
	if !ok {
		return "", false
	}
	for _, prefix := range r.prefixes {
		if strings.HasPrefix(national, prefix) {
			return r.carriers[prefix], true
		}
	}
	return "", false
}

// national strips "+<code>" and restores the trunk "0" the table keys carry.
func (r *Resolver) national(e164 string) (string, bool) {
	rest, ok := strings.CutPrefix(e164, fmt.Sprintf("+%d", r.dialingCode))
	if !ok || rest == "" {
		return "", false
	}
	if !strings.HasPrefix(rest, "0") {
		rest = "0" + rest
	}
	return rest, true
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
