// Package xmlextras mirrors the domextras extraction contract for XML
// documents parsed with github.com/beevik/etree. Paths use etree's path
// syntax; attribute extraction follows the same trailing-selector
// convention as the HTML side, and the error policy and sentinel errors
// are shared with the root package.
package xmlextras

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/mrjoshuak/domextras"
)

type options struct {
	onError any
	limit   int
}

// Option configures a single extraction call.
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{onError: domextras.OnErrorRaise}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithOnError sets the error policy for the call.
func WithOnError(mode domextras.OnError) Option {
	return func(o *options) {
		o.onError = mode
	}
}

// WithOnErrorString sets the error policy from its string name.
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

// ExtractAttributes extracts attribute or text values from an XML document.
// The path must end in @name or text(); the leading part selects elements,
// each of which contributes the named attribute's value (elements without
// it are skipped) or its text. Values come back in document order.
//
// The error behavior matches domextras.ExtractAttributes: ErrXPathTooShort,
// ErrInvalidAttribute, ErrInvalidXPath and ErrNoAttributesFound under
// OnErrorRaise, (nil, nil) under OnErrorIgnore.
func ExtractAttributes(doc *etree.Document, path string, opts ...Option) ([]string, error) {
	o := newOptions(opts)
	mode, err := domextras.OnErrorFromAny(o.onError)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(path)
	cut := strings.LastIndex(trimmed, "/")
	if cut < 0 || cut == len(trimmed)-1 {
		return nil, suppress(mode, domextras.ErrXPathTooShort)
	}
	base, sel := trimmed[:cut], trimmed[cut+1:]
	if sel != "text()" && !strings.HasPrefix(sel, "@") {
		return nil, suppress(mode, domextras.ErrInvalidAttribute)
	}

	compiled, err := etree.CompilePath(base)
	if err != nil {
		return nil, suppress(mode, fmt.Errorf("%w: %v", domextras.ErrInvalidXPath, err))
	}

	var values []string
	for _, el := range doc.FindElementsPath(compiled) {
		if sel == "text()" {
			if text := el.Text(); text != "" {
				values = append(values, text)
			}
			continue
		}
		if attr := el.SelectAttr(strings.TrimPrefix(sel, "@")); attr != nil {
			values = append(values, attr.Value)
		}
	}
	if len(values) == 0 {
		return nil, suppress(mode, domextras.ErrNoAttributesFound)
	}
	return clip(values, o.limit), nil
}

// ExtractElements extracts the elements matched by an etree path, in
// document order. A query with no matches returns ErrNoElementsFound.
func ExtractElements(doc *etree.Document, path string, opts ...Option) ([]*etree.Element, error) {
	o := newOptions(opts)
	mode, err := domextras.OnErrorFromAny(o.onError)
	if err != nil {
		return nil, err
	}

	compiled, err := etree.CompilePath(strings.TrimSpace(path))
	if err != nil {
		return nil, suppress(mode, fmt.Errorf("%w: %v", domextras.ErrInvalidXPath, err))
	}

	elements := doc.FindElementsPath(compiled)
	if len(elements) == 0 {
		return nil, suppress(mode, domextras.ErrNoElementsFound)
	}
	return clip(elements, o.limit), nil
}

func suppress(mode domextras.OnError, err error) error {
	if mode == domextras.OnErrorIgnore {
		return nil
	}
	return err
}

func clip[T any](s []T, limit int) []T {
	if limit > 0 && limit < len(s) {
		return s[:limit]
	}
	return s
}
