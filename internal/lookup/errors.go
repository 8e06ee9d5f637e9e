package lookup

import "errors"

var (
	// ErrInvalidFormat reports input rejected before the numbering plan is
	// consulted (empty after trimming).
	ErrInvalidFormat = errors.New("lookup: invalid number format")

	// ErrUnparseable reports input the numbering plan cannot match to any
	// plausible number. Local to one input; batch processing continues.
	ErrUnparseable = errors.New("lookup: number does not match any numbering plan")

	// ErrOracleUnavailable reports that numbering-plan metadata could not be
	// loaded. Fatal for the whole run: no lookup can proceed without it.
	ErrOracleUnavailable = errors.New("lookup: numbering-plan data unavailable")
)
