package domain

// Translatable entry fields. Translation cache rows are keyed by
// (entry ID, language, field).
const (
	TranslationFieldTitle = "title"
	TranslationFieldBody  = "body"
)

// TranslatedFields maps a field name to its text in some language.
type TranslatedFields map[string]string

// HasAll reports whether every requested field is present and non-empty.
func (f TranslatedFields) HasAll(fields []string) bool {
	for _, name := range fields {
		if f[name] == "" {
			return false
		}
	}
	return true
}
