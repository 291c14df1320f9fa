package domextras

import "errors"

// Common errors returned by the extraction functions. All of them are
// subject to the per-call error policy: under OnErrorRaise they surface
// (possibly wrapped, so test with errors.Is), under OnErrorIgnore the call
// returns zero values instead. The one exception is ErrInvalidOnError,
// which is returned unconditionally — the policy is not in force while it
// is being constructed.
var (
	// ErrInvalidOnError reports an unrecognized error-policy name or value.
	ErrInvalidOnError = errors.New("invalid value for OnError")

	// ErrXPathTooShort reports an expression without a base path and a
	// trailing attribute selector.
	ErrXPathTooShort = errors.New("invalid xpath: must have at least two valid parts")

	// ErrInvalidAttribute reports a trailing selector that is neither
	// text() nor an @attribute.
	ErrInvalidAttribute = errors.New("invalid xpath: attribute must be text() or @attribute")

	// ErrInvalidXPath wraps a syntax error from the underlying evaluator.
	ErrInvalidXPath = errors.New("invalid xpath")

	// ErrNoAttributesFound reports a query that ran but matched nothing.
	ErrNoAttributesFound = errors.New("no attributes found")

	// ErrNoElementsFound is the element-query counterpart of
	// ErrNoAttributesFound.
	ErrNoElementsFound = errors.New("no elements found")

	// ErrStringify reports a node with nothing to render.
	ErrStringify = errors.New("cannot stringify node")
)

// suppress applies the resolved error policy to a failure: Ignore swallows
// it, anything else lets it through.
func suppress(mode OnError, err error) error {
	if mode == OnErrorIgnore {
		return nil
	}
	return err
}
