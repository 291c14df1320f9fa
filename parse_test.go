package domextras_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/mrjoshuak/domextras"
)

func TestParseString(t *testing.T) {
	doc, err := domextras.ParseString(`<html><body><a href="x">X</a></body></html>`)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, html.DocumentNode, doc.Type)

	links, err := domextras.ExtractLinks(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, links)
}

func TestParseReader(t *testing.T) {
	doc, err := domextras.Parse(bytes.NewReader([]byte(`<html><body><img src="a.png"/></body></html>`)))
	require.NoError(t, err)

	src, err := domextras.ExtractFirstImage(doc)
	require.NoError(t, err)
	assert.Equal(t, "a.png", src)
}

func TestParseDeclaredCharset(t *testing.T) {
	page := `<html><head><meta charset="utf-8"></head><body><a href="ü">Umlaut</a></body></html>`
	doc, err := domextras.Parse(strings.NewReader(page))
	require.NoError(t, err)

	links, err := domextras.ExtractLinks(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"ü"}, links)
}
