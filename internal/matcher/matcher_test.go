package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hueristiq/hq-go-urlscan/internal/matcher"
	"github.com/hueristiq/hq-go-urlscan/suffixlist"
)

func TestNewSetIndexesStaticAndSuffixMatchers(t *testing.T) {
	t.Parallel()

	rules := suffixlist.Default()

	set := matcher.New(rules)

	assert.Greater(t, set.Len(), len(rules))
}

func TestWebStartAcceptsBufferStartAndWhitespace(t *testing.T) {
	t.Parallel()

	text := []byte("http://example.com")
	assert.True(t, matcher.WebStart(text, 0))

	text = []byte("see http://example.com")
	assert.True(t, matcher.WebStart(text, 4))

	text = []byte("xhttp://example.com")
	assert.False(t, matcher.WebStart(text, 1))
}

func TestFileStartAlwaysAccepts(t *testing.T) {
	t.Parallel()

	text := []byte("xfile:///etc/passwd")
	assert.True(t, matcher.FileStart(text, 1))
	assert.True(t, matcher.FileStart(text, 0))
}

func TestWebEndParsesThroughLenientGrammar(t *testing.T) {
	t.Parallel()

	text := []byte("http://example.com/path more text")

	end, ok := matcher.WebEnd(text, 0)
	require.True(t, ok)
	assert.Equal(t, "http://example.com/path", string(text[:end]))
}

func TestFileEndStopsAtBracket(t *testing.T) {
	t.Parallel()

	text := []byte("(file:///etc/passwd)")

	end, ok := matcher.FileEnd(text, 1)
	require.True(t, ok)
	assert.Equal(t, "file:///etc/passwd", string(text[1:end]))
}

func TestTLDStartRejectsPathCrossing(t *testing.T) {
	t.Parallel()

	text := []byte("/path/example.com")

	_, ok := matcher.TLDStart(text, len("/path/example"))
	assert.False(t, ok)
}

func TestTLDStartWalksBackToLabelStart(t *testing.T) {
	t.Parallel()

	text := []byte("see example.com today")

	begin, ok := matcher.TLDStart(text, len("see example"))
	require.True(t, ok)
	assert.Equal(t, "example.com", string(text[begin:len("see example.com")]))
}

func TestTLDTerminatorAcceptsEndOfTextAndWhitespace(t *testing.T) {
	t.Parallel()

	text := []byte("example.com")
	_, ok := matcher.TLDTerminator(text, len(text))
	assert.True(t, ok)

	text = []byte("example.com more")
	_, ok = matcher.TLDTerminator(text, len("example.com"))
	assert.True(t, ok)

	text = []byte("example.computer")
	_, ok = matcher.TLDTerminator(text, len("example.com"))
	assert.False(t, ok)
}

func TestBareAtSpanGrowsLocalPartAndDomain(t *testing.T) {
	t.Parallel()

	text := []byte("contact me at user@example.com please")

	at := len("contact me at user")

	begin, end, ok := matcher.BareAtSpan(text, at)
	require.True(t, ok)
	assert.Equal(t, "user@example.com", string(text[begin:end]))
}

func TestMailtoEndCapturesUserInfo(t *testing.T) {
	t.Parallel()

	text := []byte("mailto:user@example.com")

	end, userInfoEnd, ok := matcher.MailtoEnd(text, 0)
	require.True(t, ok)
	assert.Equal(t, len(text), end)
	assert.Equal(t, "mailto:user", string(text[:userInfoEnd]))
}
