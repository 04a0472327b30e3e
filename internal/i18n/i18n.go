package i18n

import "fmt"

// Language is a catalog key such as "en".
type Language string

const (
	LangEN Language = "en"
	LangZH Language = "zh"
)

var catalogs = map[Language]map[string]string{
	LangEN: en,
	LangZH: zh,
}

var current Language = LangEN

// Languages lists the selectable locales in display order.
func Languages() []string {
	return []string{string(LangEN), string(LangZH)}
}

// SetLanguage switches catalogs; anything unknown selects English.
func SetLanguage(lang string) {
	if _, ok := catalogs[Language(lang)]; ok {
		current = Language(lang)
		return
	}
	current = LangEN
}

// Current reports the catalog T reads from.
func Current() Language {
	return current
}

// T looks key up in the active catalog, then in English, and finally
// returns key unchanged.
func T(key string) string {
	if v, ok := catalogs[current][key]; ok {
		return v
	}
	if v, ok := en[key]; ok {
		return v
	}
	return key
}

// Tf is T followed by fmt.Sprintf.
func Tf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}
