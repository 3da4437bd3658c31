package web

// Locale 站点语言，公开站点支持葡语与英语，默认葡语
type Locale string

const (
	LocalePT Locale = "pt"
	LocaleEN Locale = "en"
)

// SupportedLocales 支持的语言列表
var SupportedLocales = []Locale{LocalePT, LocaleEN}

// Dict 页面文案字典
type Dict struct {
	HeroTitle       string
	HeroDescription string
	HeroCTA         string
	NavHome         string
	NavSwitch       string
	FeaturedBadge   string
	NewsBadge       string
	BackLabel       string
	PublishedOn     string
	NotFoundTitle   string
	NotFoundBack    string
	EmptyList       string
}

var dictionaries = map[Locale]Dict{
	LocaleEN: {
		HeroTitle:       "Welcome to Imagine.club",
		HeroDescription: "A premium editorial experience.",
		HeroCTA:         "Read More",
		NavHome:         "Home",
		NavSwitch:       "Switch to PT",
		FeaturedBadge:   "Featured Story",
		NewsBadge:       "News",
		BackLabel:       "← Back",
		PublishedOn:     "Published on",
		NotFoundTitle:   "Post Not Found",
		NotFoundBack:    "Return Home",
		EmptyList:       "No stories yet.",
	},
	LocalePT: {
		HeroTitle:       "Bem-vindo ao Imagine.club",
		HeroDescription: "Uma experiência editorial premium.",
		HeroCTA:         "Leia Mais",
		NavHome:         "Início",
		NavSwitch:       "Mudar para EN",
		FeaturedBadge:   "Destaque",
		NewsBadge:       "Notícias",
		BackLabel:       "← Voltar",
		PublishedOn:     "Publicado em",
		NotFoundTitle:   "Post não encontrado",
		NotFoundBack:    "Voltar ao início",
		EmptyList:       "Ainda não há histórias.",
	},
}

// ParseLocale 校验路径中的语言段
func ParseLocale(lang string) (Locale, bool) {
	for _, l := range SupportedLocales {
		if string(l) == lang {
			return l, true
		}
	}
	return "", false
}

// DictFor 取语言对应的文案
func DictFor(locale Locale) Dict {
	if d, ok := dictionaries[locale]; ok {
		return d
	}
	return dictionaries[LocalePT]
}

// AltLocale 返回切换目标语言
func AltLocale(locale Locale) Locale {
	if locale == LocalePT {
		return LocaleEN
	}
	return LocalePT
}
