package forecast

// DefaultLanguage is used whenever the requested language is not supported
const DefaultLanguage = "en"

var supportedLanguages = map[string]struct{}{
	"ar": {}, "bg": {}, "cs": {}, "da": {}, "de": {}, "el": {}, "en": {},
	"es": {}, "fa": {}, "fi": {}, "fr": {}, "he": {}, "hu": {}, "it": {},
	"ja": {}, "ko": {}, "nl": {}, "pl": {}, "pt": {}, "ru": {}, "sk": {},
	"sr": {}, "sv": {}, "tr": {}, "uk": {}, "vi": {}, "zh": {},
}

// IsSupportedLanguage reports whether the provider accepts lang as a response language
func IsSupportedLanguage(lang string) bool {
	_, ok := supportedLanguages[lang]
	return ok
}

// NormalizeLanguage returns lang when supported and DefaultLanguage otherwise
func NormalizeLanguage(lang string) string {
	if IsSupportedLanguage(lang) {
		return lang
	}
	return DefaultLanguage
}
