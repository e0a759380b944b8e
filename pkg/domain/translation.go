package domain

// Carrier field names. A translated string is replaced in the output tree by
// {".tx": {"<lang>": "<translation>", ..., "_": "<original>"}}.
const (
	CarrierField  = ".tx"
	OriginalField = "_"
)

// Entry is one translatable text occurrence discovered in a tree.
type Entry struct {
	Key  string
	Text string
}

// Translations maps a translation key to its per-language strings.
type Translations map[string]map[string]string

// Add records the strings pulled for one language.
// Empty values are ignored: the vendor reports untranslated keys that way.
func (t Translations) Add(lang string, strings map[string]string) {
	for key, value := range strings {
		if value == "" {
			continue
		}
		perLang, ok := t[key]
		if !ok {
			perLang = make(map[string]string)
			t[key] = perLang
		}
		perLang[lang] = value
	}
}

// Carrier builds the object spliced in place of a translated string.
func Carrier(original string, perLang map[string]string) map[string]any {
	tx := make(map[string]any, len(perLang)+1)
	for lang, text := range perLang {
		tx[lang] = text
	}
	tx[OriginalField] = original
	return map[string]any{CarrierField: tx}
}
