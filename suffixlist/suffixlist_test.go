package suffixlist_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hueristiq/hq-go-urlscan/suffixlist"
)

func TestParseBasic(t *testing.T) {
	t.Parallel()

	data := "// comment\n\ncom\nco.uk\n*.ck\n!exception.example\n"

	rules, err := suffixlist.Parse(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rules, 3)

	assert.Equal(t, "com", rules[0].Suffix)
	assert.False(t, rules[0].Star)

	assert.Equal(t, "co.uk", rules[1].Suffix)

	assert.Equal(t, "ck", rules[2].Suffix)
	assert.True(t, rules[2].Star)
}

func TestRulePattern(t *testing.T) {
	t.Parallel()

	r := suffixlist.Rule{Suffix: "Com"}

	assert.Equal(t, ".com", string(r.Pattern()))
}

func TestDefaultIncludesCommonTLDs(t *testing.T) {
	t.Parallel()

	rules := suffixlist.Default()

	var found, star bool

	for _, r := range rules {
		if r.Suffix == "com" {
			found = true
		}

		if r.Suffix == "ck" && r.Star {
			star = true
		}
	}

	assert.True(t, found)
	assert.True(t, star)
}
