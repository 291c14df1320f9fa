package domextras

// options collects the per-call settings shared by the extraction
// functions. Not every function reads every field; the zero value plus the
// defaults set in newOptions is a valid configuration.
type options struct {
	onError  any // OnError or string, resolved once per call
	limit    int
	xpath    string
	selector string
	ownTag   bool
}

// Option configures a single extraction call.
// This follows the functional options pattern.
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{
		onError:  OnErrorRaise,
		selector: "table",
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// errorMode resolves the configured policy, whether it was supplied as an
// OnError value or as a string.
func (o *options) errorMode() (OnError, error) {
	return OnErrorFromAny(o.onError)
}

// WithOnError sets the error policy for the call.
func WithOnError(mode OnError) Option {
	return func(o *options) {
		o.onError = mode
	}
}

// WithOnErrorString sets the error policy from its string name ("raise" or
// "ignore"). The name is resolved at the top of the call; an unrecognized
// name fails the call with ErrInvalidOnError regardless of what it said.
func WithOnErrorString(name string) Option {
	return func(o *options) {
		o.onError = name
	}
}

// WithLimit caps the number of results, preserving document order.
// Non-positive limits are ignored.
func WithLimit(limit int) Option {
	return func(o *options) {
		o.limit = limit
	}
}

// WithXPath overrides the default expression of ExtractLinks and
// ExtractImages.
func WithXPath(expr string) Option {
	return func(o *options) {
		o.xpath = expr
	}
}

// WithSelector overrides the CSS selector used by the table extraction
// functions (default "table").
func WithSelector(selector string) Option {
	return func(o *options) {
		o.selector = selector
	}
}

// WithOwnTag makes ToString include the node's own tag in the output
// instead of rendering only its contents.
func WithOwnTag() Option {
	return func(o *options) {
		o.ownTag = true
	}
}

// clip truncates s to at most limit entries. Non-positive limits and limits
// beyond len(s) leave it untouched.
func clip[T any](s []T, limit int) []T {
	if limit > 0 && limit < len(s) {
		return s[:limit]
	}
	return s
}
