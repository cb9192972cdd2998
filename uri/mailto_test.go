package uri_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hueristiq/hq-go-urlscan/uri"
)

func TestParseMailtoBasic(t *testing.T) {
	t.Parallel()

	buf := []byte("mailto:alice@example.co.uk")

	res, err := uri.ParseMailto(buf, 0, true)
	require.NoError(t, err)

	assert.Equal(t, uri.SchemeMailto, res.Scheme)
	assert.Equal(t, "alice", string(res.UserInfo.Slice(buf)))
	assert.Equal(t, "example.co.uk", string(res.Host.Slice(buf)))
}

func TestParseMailtoWithDestinationPrefix(t *testing.T) {
	t.Parallel()

	buf := []byte("mailto:?to=bob@example.com")

	res, err := uri.ParseMailto(buf, 0, true)
	require.NoError(t, err)

	assert.Equal(t, "bob", string(res.UserInfo.Slice(buf)))
	assert.Equal(t, "example.com", string(res.Host.Slice(buf)))
}

func TestParseMailtoMissingPrefix(t *testing.T) {
	t.Parallel()

	buf := []byte("http://example.com")

	_, err := uri.ParseMailto(buf, 0, true)
	require.Error(t, err)
}

func TestParseMailtoEmptyLocalPart(t *testing.T) {
	t.Parallel()

	buf := []byte("mailto:@example.com")

	_, err := uri.ParseMailto(buf, 0, true)
	require.Error(t, err)
}
