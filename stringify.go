package domextras

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	reLineBreaks = regexp.MustCompile(`[\n\r]`)
	reTagSpace   = regexp.MustCompile(`>\s+`)
)

// ToString renders a node to compact HTML: line breaks are removed and
// whitespace runs following a closing bracket are collapsed. By default the
// node's own tag is excluded, so the result is the node's inner HTML; pass
// WithOwnTag to include it. The input tree is never modified.
//
// A nil node, or a node with no children, returns ErrStringify (or "" under
// OnErrorIgnore).
func ToString(node *html.Node, opts ...Option) (string, error) {
	o := newOptions(opts)
	mode, err := o.errorMode()
	if err != nil {
		return "", err
	}
	if node == nil || node.FirstChild == nil {
		return "", suppress(mode, ErrStringify)
	}

	var buf strings.Builder
	if o.ownTag {
		err = html.Render(&buf, node)
	} else {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			// Whitespace-only text between elements is formatting noise.
			if c.Type == html.TextNode && strings.TrimSpace(c.Data) == "" {
				continue
			}
			if err = html.Render(&buf, c); err != nil {
				break
			}
		}
	}
	if err != nil {
		return "", suppress(mode, fmt.Errorf("%w: %v", ErrStringify, err))
	}

	out := reLineBreaks.ReplaceAllString(buf.String(), "")
	out = reTagSpace.ReplaceAllString(out, ">")
	return strings.TrimSpace(out), nil
}
