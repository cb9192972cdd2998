package charclass_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hueristiq/hq-go-urlscan/internal/charclass"
)

func TestIsDomain(t *testing.T) {
	t.Parallel()

	assert.True(t, charclass.IsDomain('a'))
	assert.True(t, charclass.IsDomain('Z'))
	assert.True(t, charclass.IsDomain('9'))
	assert.True(t, charclass.IsDomain('-'))
	assert.True(t, charclass.IsDomain('.'))
	assert.False(t, charclass.IsDomain('/'))
	assert.False(t, charclass.IsDomain('@'))
	assert.False(t, charclass.IsDomain(' '))
}

func TestIsDomainEnd(t *testing.T) {
	t.Parallel()

	assert.True(t, charclass.IsDomainEnd('/'))
	assert.True(t, charclass.IsDomainEnd(':'))
	assert.True(t, charclass.IsDomainEnd('?'))
	assert.False(t, charclass.IsDomainEnd('a'))
}

func TestIsURLSafe(t *testing.T) {
	t.Parallel()

	assert.True(t, charclass.IsURLSafe('a'))
	assert.True(t, charclass.IsURLSafe('%'))
	assert.False(t, charclass.IsURLSafe('@'))
}

func TestIsMailSafe(t *testing.T) {
	t.Parallel()

	assert.True(t, charclass.IsMailSafe('!'))
	assert.True(t, charclass.IsMailSafe('.'))
	assert.False(t, charclass.IsMailSafe('@'))
}

func TestIsLWSP(t *testing.T) {
	t.Parallel()

	assert.True(t, charclass.IsLWSP(' '))
	assert.True(t, charclass.IsLWSP('\t'))
	assert.False(t, charclass.IsLWSP('a'))
}

func TestHasCombinesFlags(t *testing.T) {
	t.Parallel()

	assert.True(t, charclass.Has('.', charclass.Domain|charclass.URLSafe|charclass.MailSafe))
	assert.False(t, charclass.Has('/', charclass.Domain))
}
