package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const renderSample = `# Title

## Executive Summary
Plain paragraph with [a link](https://example.com/a) and **bold** text.

## Key Findings
1. **First:** something happened.
2. **Second:** something else.
`

func TestRenderHTML(t *testing.T) {
	got := renderHTML(renderSample)

	assert.Contains(t, got, "<h1>Title</h1>")
	assert.Contains(t, got, "<h2>Executive Summary</h2>")
	assert.Contains(t, got, `<a href="https://example.com/a">a link</a>`)
	assert.Contains(t, got, "<strong>bold</strong>")
	assert.Contains(t, got, "<ol>")
	assert.Contains(t, got, "<li><strong>First:</strong> something happened.</li>")
}

func TestRenderHTML_EscapesMarkup(t *testing.T) {
	got := renderHTML("## Summary\n<script>alert(1)</script>\n")
	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "&lt;script&gt;")
}

func TestRenderText(t *testing.T) {
	got := renderText(renderSample)

	assert.NotContains(t, got, "#")
	assert.NotContains(t, got, "**")
	assert.Contains(t, got, "a link (https://example.com/a)")
	assert.Contains(t, got, "First: something happened.")
}

func TestValidFormat(t *testing.T) {
	for _, f := range []string{"json", "markdown", "html", "text"} {
		assert.True(t, validFormat(f), f)
	}
	assert.False(t, validFormat("pdf"))
	assert.False(t, validFormat(""))
}
