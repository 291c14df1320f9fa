package domextras_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrjoshuak/domextras"
)

const tablePage = `<html><body>
<table>
<thead><tr><th>Name</th><th>Age</th></tr></thead>
<tbody>
<tr><td>John</td><td>25</td></tr>
<tr><td>Jane</td><td>30</td></tr>
</tbody>
</table>
</body></html>`

func TestExtractTables(t *testing.T) {
	doc := parsePage(t, tablePage)

	tables, err := domextras.ExtractTables(doc)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	require.Len(t, tables[0], 2)
	assert.Equal(t, map[string]string{"Name": "John", "Age": "25"}, tables[0][0])
	assert.Equal(t, map[string]string{"Name": "Jane", "Age": "30"}, tables[0][1])
}

func TestExtractTablesHeaderFallback(t *testing.T) {
	doc := parsePage(t, `<html><body>
<table>
<tr><td>Name</td><td>Age</td></tr>
<tr><td>John</td><td>25</td></tr>
</table>
</body></html>`)

	tables, err := domextras.ExtractTables(doc)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	require.Len(t, tables[0], 1)
	assert.Equal(t, map[string]string{"Name": "John", "Age": "25"}, tables[0][0])
}

func TestExtractTablesWhitespace(t *testing.T) {
	doc := parsePage(t, `<html><body>
<table>
<tr><th>  Full
  Name </th></tr>
<tr><td>
  John   Smith
</td></tr>
</table>
</body></html>`)

	tables, err := domextras.ExtractTables(doc)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, map[string]string{"Full Name": "John Smith"}, tables[0][0])
}

func TestExtractTablesNone(t *testing.T) {
	doc := parsePage(t, samplePage)

	_, err := domextras.ExtractTables(doc)
	assert.ErrorIs(t, err, domextras.ErrNoElementsFound)

	tables, err := domextras.ExtractTables(doc, domextras.WithOnError(domextras.OnErrorIgnore))
	assert.NoError(t, err)
	assert.Nil(t, tables)
}

func TestExtractTablesLimit(t *testing.T) {
	doc := parsePage(t, `<html><body>
<table><tr><th>A</th></tr><tr><td>1</td></tr></table>
<table><tr><th>B</th></tr><tr><td>2</td></tr></table>
</body></html>`)

	tables, err := domextras.ExtractTables(doc)
	require.NoError(t, err)
	assert.Len(t, tables, 2)

	tables, err = domextras.ExtractTables(doc, domextras.WithLimit(1))
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, map[string]string{"A": "1"}, tables[0][0])
}

func TestExtractTablesSelector(t *testing.T) {
	doc := parsePage(t, `<html><body>
<table class="stats"><tr><th>K</th></tr><tr><td>v</td></tr></table>
<table><tr><th>Other</th></tr><tr><td>x</td></tr></table>
</body></html>`)

	tables, err := domextras.ExtractTables(doc, domextras.WithSelector("table.stats"))
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, map[string]string{"K": "v"}, tables[0][0])
}

func TestExtractTableHeaders(t *testing.T) {
	doc := parsePage(t, tablePage)

	headers, err := domextras.ExtractTableHeaders(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age"}, headers)
}

func TestExtractTableHeadersFallback(t *testing.T) {
	doc := parsePage(t, `<html><body>
<table><tr><td>Name</td><td>Age</td></tr><tr><td>John</td><td>25</td></tr></table>
</body></html>`)

	headers, err := domextras.ExtractTableHeaders(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age"}, headers)
}

func TestExtractTableHeadersNoTable(t *testing.T) {
	doc := parsePage(t, samplePage)

	_, err := domextras.ExtractTableHeaders(doc)
	assert.ErrorIs(t, err, domextras.ErrNoElementsFound)

	headers, err := domextras.ExtractTableHeaders(doc, domextras.WithOnError(domextras.OnErrorIgnore))
	assert.NoError(t, err)
	assert.Nil(t, headers)
}
