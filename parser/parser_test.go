package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internship-alert/parser"
)

const testPostHTML = `<!DOCTYPE html>
<html>
<head>
  <title>SWE Internship at InnovateTech</title>
  <meta property="og:image" content="https://example.com/banner.png"/>
</head>
<body>
  <nav><a href="/">Home</a><a href="/jobs">Jobs</a></nav>
  <article>
    <h1>SWE Internship at InnovateTech</h1>
    <p>We are looking for a talented software engineering intern to join our
    dynamic team. This is a great opportunity to work on cutting-edge projects
    and learn from experienced engineers over a twelve week program.</p>
    <p>Requirements: familiarity with React and Node.js, enrolled in a CS
    program. Application deadline is 2026-09-30.</p>
  </article>
  <footer>Copyright InnovateTech</footer>
</body>
</html>`

func TestParsePost(t *testing.T) {
	post, err := parser.ParsePost(testPostHTML)
	require.NoError(t, err)
	require.NotNil(t, post)

	assert.Contains(t, post.PlainText, "software engineering intern")
	assert.Contains(t, post.PlainText, "2026-09-30")
	assert.NotContains(t, post.PlainText, "Copyright")
}

func TestParsePost_EmptyDocument(t *testing.T) {
	post, err := parser.ParsePost("<html><body></body></html>")
	if err != nil {
		// Both extractors rejecting an empty document is acceptable.
		return
	}
	assert.Empty(t, post.PlainText)
}
