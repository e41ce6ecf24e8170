package model

// LanguageName is the closed set of film languages.
type LanguageName string

const (
	LanguageEnglish  LanguageName = "English"
	LanguageItalian  LanguageName = "Italian"
	LanguageJapanese LanguageName = "Japanese"
	LanguageMandarin LanguageName = "Mandarin"
	LanguageFrench   LanguageName = "French"
	LanguageGerman   LanguageName = "German"
)

// Valid reports whether n is a known language.
func (n LanguageName) Valid() bool {
	switch n {
	case LanguageEnglish, LanguageItalian, LanguageJapanese,
		LanguageMandarin, LanguageFrench, LanguageGerman:
		return true
	}
	return false
}

// Language represents a row of the language table.
type Language struct {
	ID         uint64       `json:"language_id" validate:"gt=0"`
	Name       LanguageName `json:"name" validate:"language"`
	LastUpdate Timestamp    `json:"last_update"`
}
