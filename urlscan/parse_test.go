package urlscan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hueristiq/hq-go-urlscan/urlscan"
	"github.com/hueristiq/hq-go-urlscan/urlscan/errcode"
)

func newTestEngine(t *testing.T) *urlscan.Engine {
	t.Helper()

	engine, err := urlscan.NewEngine()
	require.NoError(t, err)

	return engine
}

func TestParseURLWebBasic(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	u, err := engine.ParseURL([]byte("http://example.com/path?x=1"))
	require.NoError(t, err)

	assert.Equal(t, "example.com", u.HostString())
	assert.Equal(t, "com", u.TLDString())
	assert.Equal(t, "/path", u.PathString())
	assert.Equal(t, "x=1", u.QueryString())
}

func TestParseURLMailto(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	u, err := engine.ParseURL([]byte("mailto:alice@example.co.uk"))
	require.NoError(t, err)

	assert.Equal(t, "alice", u.UserInfoString())
	assert.Equal(t, "example.co.uk", u.HostString())
	assert.Equal(t, "co.uk", u.TLDString())
}

func TestParseURLEmptyReturnsEmptyError(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	_, err := engine.ParseURL(nil)
	require.Error(t, err)

	var ce *errcode.Error

	require.ErrorAs(t, err, &ce)
	assert.Equal(t, errcode.Empty, ce.Kind())
}

func TestParseURLUnknownTLDFails(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	_, err := engine.ParseURL([]byte("http://example.bogus-tld-xyz"))
	require.Error(t, err)

	var ce *errcode.Error

	require.ErrorAs(t, err, &ce)
	assert.Equal(t, errcode.TLDMissing, ce.Kind())
}

func TestParseURLNumericObscuredHost(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	u, err := engine.ParseURL([]byte("http://0x7f.1/"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", u.HostString())
	assert.True(t, u.Flags&urlscan.NumericHost != 0)
	assert.True(t, u.Flags&urlscan.ObscuredHost != 0)
}

func TestParseURLHostLowercased(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	u, err := engine.ParseURL([]byte("http://EXAMPLE.COM/Path"))
	require.NoError(t, err)

	assert.Equal(t, "example.com", u.HostString())
}
