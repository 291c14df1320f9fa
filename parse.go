package domextras

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Parse reads HTML from r and returns the document node. The byte stream is
// sniffed for its character encoding and converted to UTF-8 before parsing,
// so trees built here are safe to query regardless of source encoding.
func Parse(r io.Reader) (*html.Node, error) {
	cr, err := charset.NewReader(r, "")
	if err != nil {
		return nil, err
	}
	return html.Parse(cr)
}

// ParseString parses an HTML string and returns the document node.
func ParseString(s string) (*html.Node, error) {
	return html.Parse(strings.NewReader(s))
}
