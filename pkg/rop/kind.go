package rop

import "strconv"

// Kind classifies an Error.
type Kind uint8

const (
	KindFailure Kind = iota
	KindUnexpected
	KindValidation
	KindConflict
	KindNotFound
	KindUnauthorized
	KindForbidden
	// KindCustom marks domain-specific errors. The discriminator is reported
	// by Error.NumericKind.
	KindCustom
)

var kindNames = [...]string{
	KindFailure:      "Failure",
	KindUnexpected:   "Unexpected",
	KindValidation:   "Validation",
	KindConflict:     "Conflict",
	KindNotFound:     "NotFound",
	KindUnauthorized: "Unauthorized",
	KindForbidden:    "Forbidden",
	KindCustom:       "Custom",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

type kindDefaults struct {
	code        string
	description string
}

var defaults = map[Kind]kindDefaults{
	KindFailure:      {"General.Failure", "A failure has occurred."},
	KindUnexpected:   {"General.Unexpected", "An unexpected error has occurred."},
	KindValidation:   {"General.Validation", "A validation error has occurred."},
	KindConflict:     {"General.Conflict", "A conflict error has occurred."},
	KindNotFound:     {"General.NotFound", "A 'Not Found' error has occurred."},
	KindUnauthorized: {"General.Unauthorized", "An 'Unauthorized' error has occurred."},
	KindForbidden:    {"General.Forbidden", "A 'Forbidden' error has occurred."},
}
