package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocale(t *testing.T) {
	locale, ok := ParseLocale("pt")
	assert.True(t, ok)
	assert.Equal(t, LocalePT, locale)

	locale, ok = ParseLocale("en")
	assert.True(t, ok)
	assert.Equal(t, LocaleEN, locale)

	_, ok = ParseLocale("fr")
	assert.False(t, ok)
}

func TestAltLocale(t *testing.T) {
	assert.Equal(t, LocaleEN, AltLocale(LocalePT))
	assert.Equal(t, LocalePT, AltLocale(LocaleEN))
}

func TestDictFor(t *testing.T) {
	assert.Equal(t, "Notícias", DictFor(LocalePT).NewsBadge)
	assert.Equal(t, "News", DictFor(LocaleEN).NewsBadge)
	// 未知语言回退葡语
	assert.Equal(t, "Notícias", DictFor(Locale("fr")).NewsBadge)
}
