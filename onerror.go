package domextras

import (
	"fmt"
	"strings"
)

// OnError selects how extraction failures are surfaced to the caller.
type OnError int

const (
	// OnErrorRaise returns every failure as an error. This is the default.
	OnErrorRaise OnError = iota + 1

	// OnErrorIgnore swallows failures and returns zero values instead.
	OnErrorIgnore
)

// ParseOnError converts a policy name to an OnError value. Matching is
// case-insensitive; unrecognized names return ErrInvalidOnError.
func ParseOnError(s string) (OnError, error) {
	switch strings.ToLower(s) {
	case "raise":
		return OnErrorRaise, nil
	case "ignore":
		return OnErrorIgnore, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOnError, s)
}

// OnErrorFromAny normalizes a policy given either as an OnError value or as
// its string name. Any other type, or an out-of-range value, returns
// ErrInvalidOnError.
func OnErrorFromAny(v any) (OnError, error) {
	switch mode := v.(type) {
	case OnError:
		if mode != OnErrorRaise && mode != OnErrorIgnore {
			return 0, fmt.Errorf("%w: %d", ErrInvalidOnError, int(mode))
		}
		return mode, nil
	case string:
		return ParseOnError(mode)
	}
	return 0, fmt.Errorf("%w: %T", ErrInvalidOnError, v)
}

// String returns the canonical lowercase name of the policy.
func (o OnError) String() string {
	switch o {
	case OnErrorRaise:
		return "raise"
	case OnErrorIgnore:
		return "ignore"
	}
	return "invalid"
}
