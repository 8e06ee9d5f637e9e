package lookup

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"

	"github.com/Githu836/Phone-Lookup/internal/country"
)

// NumberType classifies a number into the numbering plan's closed category set.
type NumberType string

const (
	TypeFixedLine         NumberType = "FIXED_LINE"
	TypeMobile            NumberType = "MOBILE"
	TypeFixedLineOrMobile NumberType = "FIXED_LINE_OR_MOBILE"
	TypeTollFree          NumberType = "TOLL_FREE"
	TypePremiumRate       NumberType = "PREMIUM_RATE"
	TypeSharedCost        NumberType = "SHARED_COST"
	TypeVoip              NumberType = "VOIP"
	TypePersonalNumber    NumberType = "PERSONAL_NUMBER"
	TypePager             NumberType = "PAGER"
	TypeUAN               NumberType = "UAN"
	TypeVoicemail         NumberType = "VOICEMAIL"
	TypeUnknown           NumberType = "UNKNOWN"
)

// unknownTimezone is the placeholder when the numbering plan resolves no
// timezone for a number.
const unknownTimezone = "unknown"

// Facts are the numbering-plan findings for one parsed number.
type Facts struct {
	E164           string
	International  string
	National       string
	Valid          bool
	Possible       bool
	RegionCode     string
	RegionName     string
	DialingCode    int
	NationalNumber uint64
	Carrier        string   // generic carrier name, empty when the plan has no data
	Timezones      []string // at least one entry
	Type           NumberType
}

// Classify parses number under defaultRegion and extracts all numbering-plan
// facts. It is a stateless translation layer over the phonenumbers library.
// A parse failure wraps ErrUnparseable and is local to this number; a
// metadata load failure wraps ErrOracleUnavailable and should abort the run.
func Classify(number, defaultRegion, locale string) (Facts, error) {
	parsed, err := phonenumbers.Parse(number, defaultRegion)
	if err != nil {
		return Facts{}, fmt.Errorf("%w: %q: %v", ErrUnparseable, number, err)
	}

	timezones, err := phonenumbers.GetTimezonesForNumber(parsed)
	if err != nil {
		return Facts{}, fmt.Errorf("%w: timezone data: %v", ErrOracleUnavailable, err)
	}
	if len(timezones) == 0 {
		timezones = []string{unknownTimezone}
	}

	genericCarrier, err := phonenumbers.GetCarrierForNumber(parsed, locale)
	if err != nil {
		return Facts{}, fmt.Errorf("%w: carrier data: %v", ErrOracleUnavailable, err)
	}

	regionName, err := phonenumbers.GetGeocodingForNumber(parsed, locale)
	if err != nil {
		return Facts{}, fmt.Errorf("%w: geocoding data: %v", ErrOracleUnavailable, err)
	}

	e164 := phonenumbers.Format(parsed, phonenumbers.E164)
	if regionName == "" {
		// The geocoder has no description for some valid ranges; fall back
		// to the static dialing-code directory.
		if info, ok := country.Match(e164); ok {
			regionName = info.Name
		}
	}

	return Facts{
		E164:           e164,
		International:  phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL),
		National:       phonenumbers.Format(parsed, phonenumbers.NATIONAL),
		Valid:          phonenumbers.IsValidNumber(parsed),
		Possible:       phonenumbers.IsPossibleNumber(parsed),
		RegionCode:     phonenumbers.GetRegionCodeForNumber(parsed),
		RegionName:     regionName,
		DialingCode:    int(parsed.GetCountryCode()),
		NationalNumber: parsed.GetNationalNumber(),
		Carrier:        genericCarrier,
		Timezones:      timezones,
		Type:           mapNumberType(phonenumbers.GetNumberType(parsed)),
	}, nil
}

// mapNumberType converts the library's enum to the closed NumberType set.
func mapNumberType(t phonenumbers.PhoneNumberType) NumberType {
	switch t {
	case phonenumbers.FIXED_LINE:
		return TypeFixedLine
	case phonenumbers.MOBILE:
		return TypeMobile
	case phonenumbers.FIXED_LINE_OR_MOBILE:
		return TypeFixedLineOrMobile
	case phonenumbers.TOLL_FREE:
		return TypeTollFree
	case phonenumbers.PREMIUM_RATE:
		return TypePremiumRate
	case phonenumbers.SHARED_COST:
		return TypeSharedCost
	case phonenumbers.VOIP:
		return TypeVoip
	case phonenumbers.PERSONAL_NUMBER:
		return TypePersonalNumber
	case phonenumbers.PAGER:
		return TypePager
	case phonenumbers.UAN:
		return TypeUAN
	case phonenumbers.VOICEMAIL:
		return TypeVoicemail
	default:
		return TypeUnknown
	}
}
