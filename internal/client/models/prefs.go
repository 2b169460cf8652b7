package models

// Language is a UI language preference. The zero choice is LanguageAuto,
// which defers to the environment.
type Language string

const (
	LanguageEnglish    Language = "en"
	LanguageSpanish    Language = "es"
	LanguageFrench     Language = "fr"
	LanguageGerman     Language = "de"
	LanguagePortuguese Language = "pt"
	LanguageLatin      Language = "la"
	LanguageAuto       Language = "auto"
)

// Theme is a visual theme preference. ThemeAuto defers to the system default.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// Valid reports whether l is one of the supported language codes.
func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageSpanish, LanguageFrench,
		LanguageGerman, LanguagePortuguese, LanguageLatin, LanguageAuto:
		return true
	}
	return false
}

// Valid reports whether t is one of the supported themes.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeAuto:
		return true
	}
	return false
}

// ParseLanguage returns the language stored in s, or LanguageAuto when s is
// empty or not a known code. It never fails.
func ParseLanguage(s string) Language {
	if l := Language(s); l.Valid() {
		return l
	}
	return LanguageAuto
}

// ParseTheme returns the theme stored in s, or ThemeAuto when s is empty or
// not a known theme. It never fails.
func ParseTheme(s string) Theme {
	if t := Theme(s); t.Valid() {
		return t
	}
	return ThemeAuto
}
