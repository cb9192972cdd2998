package urlscan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hueristiq/hq-go-urlscan/urlscan"
)

func TestNewEngineDefaultsToBuiltinSuffixList(t *testing.T) {
	t.Parallel()

	engine, err := urlscan.NewEngine()
	require.NoError(t, err)
	require.NotNil(t, engine)

	u, err := engine.ParseURL([]byte("http://example.com"))
	require.NoError(t, err)
	assert.Equal(t, "example.com", u.HostString())
}

func TestNewEngineWithRecursionDepthZeroDisablesRecursion(t *testing.T) {
	t.Parallel()

	engine, err := urlscan.NewEngine(urlscan.WithRecursionDepth(0))
	require.NoError(t, err)

	text := []byte("http://r.example.com/?u=http%3A%2F%2Fbad.example.net%2F")

	urls := engine.FindURLs(text, false)
	require.Len(t, urls, 1)
	assert.Equal(t, "r.example.com", urls[0].HostString())
}
