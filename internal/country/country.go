// Package country provides the static dialing-code directory used for the
// countries listing and for flag/name display when the numbering plan has no
// geocoding description for a number.
package country

import (
	"sort"
	"strconv"
	"strings"
)

// Info describes one dialing-code entry.
type Info struct {
	Code int    // international dialing code, e.g. 62
	Name string // display name, e.g. "Indonesia"
	Flag string // flag emoji
}

// Prefix returns the entry's dialing code with a leading "+".
func (i Info) Prefix() string {
	return "+" + strconv.Itoa(i.Code)
}

var directory = map[int]Info{
	1:   {1, "USA / Canada", "🇺🇸"},
	7:   {7, "Russia / Kazakhstan", "🇷🇺"},
	20:  {20, "Egypt", "🇪🇬"},
	27:  {27, "South Africa", "🇿🇦"},
	33:  {33, "France", "🇫🇷"},
	34:  {34, "Spain", "🇪🇸"},
	39:  {39, "Italy", "🇮🇹"},
	44:  {44, "United Kingdom", "🇬🇧"},
	49:  {49, "Germany", "🇩🇪"},
	55:  {55, "Brazil", "🇧🇷"},
	60:  {60, "Malaysia", "🇲🇾"},
	61:  {61, "Australia", "🇦🇺"},
	62:  {62, "Indonesia", "🇮🇩"},
	63:  {63, "Philippines", "🇵🇭"},
	65:  {65, "Singapore", "🇸🇬"},
	66:  {66, "Thailand", "🇹🇭"},
	81:  {81, "Japan", "🇯🇵"},
	82:  {82, "South Korea", "🇰🇷"},
	84:  {84, "Vietnam", "🇻🇳"},
	86:  {86, "China", "🇨🇳"},
	91:  {91, "India", "🇮🇳"},
	92:  {92, "Pakistan", "🇵🇰"},
	93:  {93, "Afghanistan", "🇦🇫"},
	94:  {94, "Sri Lanka", "🇱🇰"},
	95:  {95, "Myanmar", "🇲🇲"},
	98:  {98, "Iran", "🇮🇷"},
	234: {234, "Nigeria", "🇳🇬"},
	254: {254, "Kenya", "🇰🇪"},
}

// List returns all known entries in ascending dialing-code order.
func List() []Info {
	entries := make([]Info, 0, len(directory))
	for _, info := range directory {
		entries = append(entries, info)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Code < entries[j].Code
	})
	return entries
}

// ByCode looks up the entry for a dialing code.
func ByCode(code int) (Info, bool) {
	info, ok := directory[code]
	return info, ok
}

// Match returns the entry whose dialing code is the longest prefix of the
// given E.164 number. Longer codes are tried first so "+234..." resolves to
// Nigeria rather than a hypothetical shorter match.
func Match(e164 string) (Info, bool) {
	if !strings.HasPrefix(e164, "+") {
		return Info{}, false
	}
	digits := e164[1:]
	// Dialing codes are at most 3 digits.
	for l := 3; l >= 1; l-- {
		if len(digits) < l {
			continue
		}
		code, err := strconv.Atoi(digits[:l])
		if err != nil {
			return Info{}, false
		}
		if info, ok := directory[code]; ok {
			return info, true
		}
	}
	return Info{}, false
}
