package ahocorasick_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hueristiq/hq-go-urlscan/internal/ahocorasick"
)

func TestScanFindsAllMatches(t *testing.T) {
	t.Parallel()

	a := ahocorasick.Build([][]byte{
		[]byte("he"),
		[]byte("she"),
		[]byte("his"),
		[]byte("hers"),
	})

	text := []byte("ushers")

	var got []ahocorasick.Match

	cur := &ahocorasick.Cursor{}

	ahocorasick.Scan(a, text, cur, func(m ahocorasick.Match) bool {
		got = append(got, m)

		return false
	})

	require.Len(t, got, 3)

	var patterns []string

	for _, m := range got {
		patterns = append(patterns, string(a.Pattern(m.PatternIndex)))
	}

	assert.ElementsMatch(t, []string{"she", "he", "hers"}, patterns)
}

func TestScanStopsOnCallback(t *testing.T) {
	t.Parallel()

	a := ahocorasick.Build([][]byte{
		[]byte("foo"),
		[]byte("bar"),
	})

	text := []byte("foobar")

	cur := &ahocorasick.Cursor{}

	var calls int

	stopped := ahocorasick.Scan(a, text, cur, func(m ahocorasick.Match) bool {
		calls++

		return true
	})

	assert.True(t, stopped)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 3, cur.Pos)

	stopped = ahocorasick.Scan(a, text, cur, func(m ahocorasick.Match) bool {
		calls++

		return true
	})

	assert.True(t, stopped)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 6, cur.Pos)
}

func TestScanNoMatch(t *testing.T) {
	t.Parallel()

	a := ahocorasick.Build([][]byte{[]byte("zzz")})

	cur := &ahocorasick.Cursor{}

	stopped := ahocorasick.Scan(a, []byte("abcdef"), cur, func(ahocorasick.Match) bool {
		return true
	})

	assert.False(t, stopped)
	assert.Equal(t, 6, cur.Pos)
}
