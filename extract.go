package domextras

import (
	"fmt"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
)

// Default expressions for the convenience extractors.
const (
	DefaultLinkXPath  = "//a/@href"
	DefaultImageXPath = "//img/@src"
)

// ExtractAttributes extracts attribute values from an HTML node using an
// XPath expression. The expression must end in an attribute selector
// (@name) or text(); the values of all matches are returned in document
// order. The input tree is never modified.
//
// Under OnErrorRaise (the default) a malformed expression returns
// ErrXPathTooShort or ErrInvalidAttribute, a syntax error from the
// evaluator wraps ErrInvalidXPath, and a query with no matches returns
// ErrNoAttributesFound. Under OnErrorIgnore all of these yield (nil, nil).
func ExtractAttributes(node *html.Node, expr string, opts ...Option) ([]string, error) {
	o := newOptions(opts)
	mode, err := o.errorMode()
	if err != nil {
		return nil, err
	}

	query, err := splitSelector(expr)
	if err != nil {
		return nil, suppress(mode, err)
	}

	sel, err := xpath.Compile(query)
	if err != nil {
		return nil, suppress(mode, fmt.Errorf("%w: %v", ErrInvalidXPath, err))
	}

	nodes := htmlquery.QuerySelectorAll(node, sel)
	if len(nodes) == 0 {
		return nil, suppress(mode, ErrNoAttributesFound)
	}

	values := make([]string, len(nodes))
	for i, n := range nodes {
		values[i] = htmlquery.InnerText(n)
	}
	return clip(values, o.limit), nil
}

// ExtractLinks extracts link targets, by default the href values of all
// anchor elements. Use WithXPath to select something else.
func ExtractLinks(node *html.Node, opts ...Option) ([]string, error) {
	return ExtractAttributes(node, xpathOf(opts, DefaultLinkXPath), opts...)
}

// ExtractImages extracts image sources, by default the src values of all
// img elements. Use WithXPath to select something else.
func ExtractImages(node *html.Node, opts ...Option) ([]string, error) {
	return ExtractAttributes(node, xpathOf(opts, DefaultImageXPath), opts...)
}

// ExtractFirstImage returns the first image source as a single string. It
// is ExtractImages with a limit of one; under OnErrorIgnore a page without
// images yields ("", nil).
func ExtractFirstImage(node *html.Node, opts ...Option) (string, error) {
	images, err := ExtractImages(node, append(opts, WithLimit(1))...)
	if err != nil || len(images) == 0 {
		return "", err
	}
	return images[0], nil
}

// ExtractElements extracts the nodes matched by an XPath expression, in
// document order. Unlike ExtractAttributes there is no shape requirement on
// the expression; a query with no matches returns ErrNoElementsFound.
func ExtractElements(node *html.Node, expr string, opts ...Option) ([]*html.Node, error) {
	o := newOptions(opts)
	mode, err := o.errorMode()
	if err != nil {
		return nil, err
	}

	sel, err := xpath.Compile(strings.TrimSpace(expr))
	if err != nil {
		return nil, suppress(mode, fmt.Errorf("%w: %v", ErrInvalidXPath, err))
	}

	nodes := htmlquery.QuerySelectorAll(node, sel)
	if len(nodes) == 0 {
		return nil, suppress(mode, ErrNoElementsFound)
	}
	return clip(nodes, o.limit), nil
}

// splitSelector checks that expr has a base path and a trailing attribute
// selector, and returns the trimmed expression ready for compilation.
func splitSelector(expr string) (string, error) {
	trimmed := strings.TrimSpace(expr)
	parts := strings.Split(trimmed, "/")
	last := parts[len(parts)-1]
	if len(parts) < 2 || last == "" {
		return "", ErrXPathTooShort
	}
	if last != "text()" && !strings.HasPrefix(last, "@") {
		return "", ErrInvalidAttribute
	}
	return trimmed, nil
}

// xpathOf returns the expression configured with WithXPath, or fallback.
func xpathOf(opts []Option, fallback string) string {
	if o := newOptions(opts); o.xpath != "" {
		return o.xpath
	}
	return fallback
}
