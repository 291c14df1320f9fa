package domextras

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/mrjoshuak/domextras/internal/textutil"
)

// Table holds the data rows of one HTML table, each row keyed by the
// table's header names. Cell text is whitespace-normalized.
type Table []map[string]string

// ExtractTables extracts every table under node as a Table. Header names
// come from th cells; a table without any th consumes its first row as
// headers instead. Tables that end up with no headers or no data rows are
// skipped. When nothing usable remains the call returns ErrNoElementsFound
// (or nil under OnErrorIgnore).
//
// The tables are matched with a CSS selector (default "table", see
// WithSelector); WithLimit truncates the returned list of tables.
func ExtractTables(node *html.Node, opts ...Option) ([]Table, error) {
	o := newOptions(opts)
	mode, err := o.errorMode()
	if err != nil {
		return nil, err
	}

	var tables []Table
	goquery.NewDocumentFromNode(node).Find(o.selector).Each(func(_ int, sel *goquery.Selection) {
		if t := tableFromSelection(sel); len(t) > 0 {
			tables = append(tables, t)
		}
	})
	if len(tables) == 0 {
		return nil, suppress(mode, ErrNoElementsFound)
	}
	return clip(tables, o.limit), nil
}

// ExtractTableHeaders returns the header names of the first matched table,
// using the same th / first-row fallback as ExtractTables. A page without a
// matching table returns ErrNoElementsFound; a table without header
// candidates returns ErrNoAttributesFound.
func ExtractTableHeaders(node *html.Node, opts ...Option) ([]string, error) {
	o := newOptions(opts)
	mode, err := o.errorMode()
	if err != nil {
		return nil, err
	}

	table := goquery.NewDocumentFromNode(node).Find(o.selector).First()
	if table.Length() == 0 {
		return nil, suppress(mode, ErrNoElementsFound)
	}

	headers := cellText(table.Find("th"))
	if len(headers) == 0 {
		headers = cellText(table.Find("tr").First().Find("td"))
	}
	if len(headers) == 0 {
		return nil, suppress(mode, ErrNoAttributesFound)
	}
	return clip(headers, o.limit), nil
}

func tableFromSelection(sel *goquery.Selection) Table {
	headers := cellText(sel.Find("th"))
	rows := sel.Find("tr")

	// Without th cells the first row doubles as the header row.
	start := 0
	if len(headers) == 0 {
		headers = cellText(rows.First().Find("td"))
		start = 1
	}
	if len(headers) == 0 {
		return nil
	}

	var table Table
	rows.Each(func(i int, row *goquery.Selection) {
		if i < start {
			return
		}
		cells := cellText(row.Find("td"))
		if len(cells) == 0 {
			return
		}
		entry := make(map[string]string, len(headers))
		for j, name := range headers {
			if j < len(cells) {
				entry[name] = cells[j]
			}
		}
		table = append(table, entry)
	})
	return table
}

func cellText(cells *goquery.Selection) []string {
	var out []string
	cells.Each(func(_ int, cell *goquery.Selection) {
		out = append(out, textutil.NormalizeWhitespace(cell.Text()))
	})
	return out
}
