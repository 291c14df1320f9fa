/*
Package domextras provides shortcut functions for pulling attribute values
out of parsed HTML trees with XPath expressions. It does no parsing or query
evaluation of its own: trees are golang.org/x/net/html nodes and XPath
evaluation is delegated to github.com/antchfx/htmlquery. What this package
adds is the thin layer on top — validating that an expression actually
selects an attribute, applying a configurable error policy, and truncating
results.

Basic Usage:

	import "github.com/mrjoshuak/domextras"

	doc, err := domextras.ParseString(htmlString)
	if err != nil {
		// Handle error
	}

	// All href values of anchor elements, in document order
	links, err := domextras.ExtractLinks(doc)

	// First image source, or "" when the policy is Ignore
	src, err := domextras.ExtractFirstImage(doc)

	// Arbitrary attribute extraction
	ids, err := domextras.ExtractAttributes(doc, "//section/@id")

Error Policy:

Every extraction function resolves an error policy once per call. Under
OnErrorRaise (the default) any failure — a malformed expression, an invalid
XPath, a query with no matches — is returned as an error that can be tested
with errors.Is. Under OnErrorIgnore the same failures yield zero values and
a nil error:

	links, err := domextras.ExtractLinks(doc,
		domextras.WithOnError(domextras.OnErrorIgnore),
		domextras.WithLimit(10),
	)

The xmlextras subpackage offers the same extraction contract for XML
documents parsed with github.com/beevik/etree.
*/
package domextras
