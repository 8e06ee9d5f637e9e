package lookup

import "time"

// unknownCarrier is the displayed carrier when neither the local table nor
// the numbering plan has a name for the number's range.
const unknownCarrier = "unknown"

// Result is the immutable record of one completed lookup. It owns copies of
// every field; nothing references pipeline internals after assembly.
type Result struct {
	Input          string     `json:"input"`
	Normalized     string     `json:"normalized"`
	E164           string     `json:"e164"`
	International  string     `json:"international"`
	National       string     `json:"national"`
	Valid          bool       `json:"valid"`
	Possible       bool       `json:"possible"`
	RegionCode     string     `json:"region_code"`
	RegionName     string     `json:"region_name"`
	DialingCode    int        `json:"dialing_code"`
	NationalNumber uint64     `json:"national_number"`
	GenericCarrier string     `json:"generic_carrier,omitempty"`
	LocalCarrier   string     `json:"local_carrier,omitempty"`
	Carrier        string     `json:"carrier"`
	Timezones      []string   `json:"timezones"`
	Type           NumberType `json:"number_type"`
	LookedUpAt     time.Time  `json:"looked_up_at"`
}

// Assemble merges pipeline outputs into a Result. Displayed carrier
// precedence: local table override, then the numbering plan's generic name,
// then "unknown". The generic name is always carried alongside the override
// for transparency. now is caller-supplied so tests can fix the clock.
func Assemble(input, normalized string, facts Facts, localCarrier string, now time.Time) Result {
	displayed := localCarrier
	if displayed == "" {
		displayed = facts.Carrier
	}
	if displayed == "" {
		displayed = unknownCarrier
	}

	timezones := make([]string, len(facts.Timezones))
	copy(timezones, facts.Timezones)

	return Result{
		Input:          input,
		Normalized:     normalized,
		E164:           facts.E164,
		International:  facts.International,
		National:       facts.National,
		Valid:          facts.Valid,
		Possible:       facts.Possible,
		RegionCode:     facts.RegionCode,
		RegionName:     facts.RegionName,
		DialingCode:    facts.DialingCode,
		NationalNumber: facts.NationalNumber,
		GenericCarrier: facts.Carrier,
		LocalCarrier:   localCarrier,
		Carrier:        displayed,
		Timezones:      timezones,
		Type:           facts.Type,
		LookedUpAt:     now,
	}
}
