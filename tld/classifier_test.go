package tld_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hueristiq/hq-go-urlscan/suffixlist"
	"github.com/hueristiq/hq-go-urlscan/tld"
)

func TestClassifyPlainTLD(t *testing.T) {
	t.Parallel()

	c := tld.New(suffixlist.Default())

	res, err := c.Classify([]byte("example.com"))
	require.NoError(t, err)

	assert.Equal(t, "com", string(res.TLD.Slice([]byte("example.com"))))
	assert.Zero(t, res.Flags)
}

func TestClassifyStarMatchPullsExtraLabel(t *testing.T) {
	t.Parallel()

	c := tld.New(suffixlist.Default())

	host := []byte("foo.bar.ck")

	res, err := c.Classify(host)
	require.NoError(t, err)

	assert.Equal(t, "bar.ck", string(res.TLD.Slice(host)))
}

func TestClassifyStarMatchWithoutExtraLabelConsumesWholeHost(t *testing.T) {
	t.Parallel()

	c := tld.New(suffixlist.Default())

	host := []byte("bar.ck")

	res, err := c.Classify(host)
	require.NoError(t, err)

	assert.Equal(t, "bar.ck", string(res.TLD.Slice(host)))
}

func TestClassifyTrailingDotAccepted(t *testing.T) {
	t.Parallel()

	c := tld.New(suffixlist.Default())

	host := []byte("example.com.")

	res, err := c.Classify(host)
	require.NoError(t, err)

	assert.Equal(t, "com", string(res.TLD.Slice(host)))
}

func TestClassifyLiteralIPv4(t *testing.T) {
	t.Parallel()

	c := tld.New(suffixlist.Default())

	res, err := c.Classify([]byte("192.168.1.1"))
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.1", string(res.Host))
	assert.NotZero(t, res.Flags&tld.NumericHost)
	assert.Zero(t, res.Flags&tld.ObscuredHost)
}

func TestClassifyLiteralIPv6(t *testing.T) {
	t.Parallel()

	c := tld.New(suffixlist.Default())

	res, err := c.Classify([]byte("[::1]"))
	require.NoError(t, err)

	assert.Equal(t, "::1", string(res.Host))
	assert.NotZero(t, res.Flags&tld.NumericHost)
}

func TestClassifyObscuredIPv4HexDotted(t *testing.T) {
	t.Parallel()

	c := tld.New(suffixlist.Default())

	res, err := c.Classify([]byte("0x7f.1"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", string(res.Host))
	assert.NotZero(t, res.Flags&tld.NumericHost)
	assert.NotZero(t, res.Flags&tld.ObscuredHost)
}

func TestClassifyObscuredIPv4Octal(t *testing.T) {
	t.Parallel()

	c := tld.New(suffixlist.Default())

	res, err := c.Classify([]byte("0177.0.0.01"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", string(res.Host))
}

func TestClassifyUnknownHostErrors(t *testing.T) {
	t.Parallel()

	c := tld.New(suffixlist.Default())

	_, err := c.Classify([]byte("not-a-real-tld-zzz"))
	require.Error(t, err)
}
